package layout

// Layout holds the computed position and size after layout calculation.
// Positions are relative to the parent's border box.
type Layout struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
	Width  float64
	Height float64

	Margin  [edgeCount]float64
	Border  [edgeCount]float64
	Padding [edgeCount]float64

	Direction Direction
}

// Layout returns the last computed layout.
func (n *Node) Layout() Layout {
	return n.layout
}

func (n *Node) ComputedLeft() float64   { return n.layout.Left }
func (n *Node) ComputedTop() float64    { return n.layout.Top }
func (n *Node) ComputedRight() float64  { return n.layout.Right }
func (n *Node) ComputedBottom() float64 { return n.layout.Bottom }
func (n *Node) ComputedWidth() float64  { return n.layout.Width }
func (n *Node) ComputedHeight() float64 { return n.layout.Height }

func (n *Node) ComputedMargin(edge Edge) float64 {
	return n.layout.Margin[edge]
}

func (n *Node) ComputedBorder(edge Edge) float64 {
	return n.layout.Border[edge]
}

func (n *Node) ComputedPadding(edge Edge) float64 {
	return n.layout.Padding[edge]
}
