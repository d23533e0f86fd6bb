package layout

// Style setters mark the node dirty; getters report the stored value.

func (n *Node) SetFlexDirection(d FlexDirection) { n.style.FlexDirection = d; n.MarkDirty() }
func (n *Node) GetFlexDirection() FlexDirection  { return n.style.FlexDirection }

func (n *Node) SetJustifyContent(j Justify) { n.style.JustifyContent = j; n.MarkDirty() }
func (n *Node) GetJustifyContent() Justify  { return n.style.JustifyContent }

func (n *Node) SetAlignContent(a Align) { n.style.AlignContent = a; n.MarkDirty() }
func (n *Node) GetAlignContent() Align  { return n.style.AlignContent }

func (n *Node) SetAlignItems(a Align) { n.style.AlignItems = a; n.MarkDirty() }
func (n *Node) GetAlignItems() Align  { return n.style.AlignItems }

func (n *Node) SetAlignSelf(a Align) { n.style.AlignSelf = a; n.MarkDirty() }
func (n *Node) GetAlignSelf() Align  { return n.style.AlignSelf }

func (n *Node) SetPositionType(p PositionType) { n.style.PositionType = p; n.MarkDirty() }
func (n *Node) GetPositionType() PositionType  { return n.style.PositionType }

func (n *Node) SetFlexWrap(w Wrap) { n.style.FlexWrap = w; n.MarkDirty() }
func (n *Node) GetFlexWrap() Wrap  { return n.style.FlexWrap }

func (n *Node) SetOverflow(o Overflow) { n.style.Overflow = o; n.MarkDirty() }
func (n *Node) GetOverflow() Overflow  { return n.style.Overflow }

func (n *Node) SetDisplay(d Display) { n.style.Display = d; n.MarkDirty() }
func (n *Node) GetDisplay() Display  { return n.style.Display }

func (n *Node) SetFlexGrow(g float64) { n.style.FlexGrow = orZero(g); n.MarkDirty() }
func (n *Node) GetFlexGrow() float64  { return n.style.FlexGrow }

func (n *Node) SetFlexShrink(s float64) { n.style.FlexShrink = orZero(s); n.MarkDirty() }
func (n *Node) GetFlexShrink() float64  { return n.style.FlexShrink }

func (n *Node) SetAspectRatio(r float64) { n.style.AspectRatio = r; n.MarkDirty() }
func (n *Node) GetAspectRatio() float64  { return n.style.AspectRatio }

// SetFlexBasis sets a point basis. There is no separate auto setter: an
// undefined basis is auto.
func (n *Node) SetFlexBasis(v float64) {
	if !isDefined(v) {
		n.style.FlexBasis = Auto()
	} else {
		n.style.FlexBasis = Point(v)
	}
	n.MarkDirty()
}
func (n *Node) SetFlexBasisPercent(p float64) {
	if !isDefined(p) {
		n.style.FlexBasis = Auto()
	} else {
		n.style.FlexBasis = Percent(p)
	}
	n.MarkDirty()
}
func (n *Node) GetFlexBasis() Value { return n.style.FlexBasis }

func (n *Node) SetWidth(v float64)        { n.style.Width = Point(v); n.MarkDirty() }
func (n *Node) SetWidthPercent(p float64) { n.style.Width = Percent(p); n.MarkDirty() }
func (n *Node) SetWidthAuto()             { n.style.Width = Auto(); n.MarkDirty() }
func (n *Node) GetWidth() Value           { return n.style.Width }

func (n *Node) SetHeight(v float64)        { n.style.Height = Point(v); n.MarkDirty() }
func (n *Node) SetHeightPercent(p float64) { n.style.Height = Percent(p); n.MarkDirty() }
func (n *Node) SetHeightAuto()             { n.style.Height = Auto(); n.MarkDirty() }
func (n *Node) GetHeight() Value           { return n.style.Height }

func (n *Node) SetMinWidth(v float64)        { n.style.MinWidth = Point(v); n.MarkDirty() }
func (n *Node) SetMinWidthPercent(p float64) { n.style.MinWidth = Percent(p); n.MarkDirty() }
func (n *Node) GetMinWidth() Value           { return n.style.MinWidth }

func (n *Node) SetMinHeight(v float64)        { n.style.MinHeight = Point(v); n.MarkDirty() }
func (n *Node) SetMinHeightPercent(p float64) { n.style.MinHeight = Percent(p); n.MarkDirty() }
func (n *Node) GetMinHeight() Value           { return n.style.MinHeight }

func (n *Node) SetMaxWidth(v float64)        { n.style.MaxWidth = Point(v); n.MarkDirty() }
func (n *Node) SetMaxWidthPercent(p float64) { n.style.MaxWidth = Percent(p); n.MarkDirty() }
func (n *Node) GetMaxWidth() Value           { return n.style.MaxWidth }

func (n *Node) SetMaxHeight(v float64)        { n.style.MaxHeight = Point(v); n.MarkDirty() }
func (n *Node) SetMaxHeightPercent(p float64) { n.style.MaxHeight = Percent(p); n.MarkDirty() }
func (n *Node) GetMaxHeight() Value           { return n.style.MaxHeight }

func (n *Node) SetMargin(e Edge, v float64)        { n.style.Margin[e] = Point(v); n.MarkDirty() }
func (n *Node) SetMarginPercent(e Edge, p float64) { n.style.Margin[e] = Percent(p); n.MarkDirty() }
func (n *Node) SetMarginAuto(e Edge)               { n.style.Margin[e] = Auto(); n.MarkDirty() }
func (n *Node) GetMargin(e Edge) Value             { return n.style.Margin[e] }

func (n *Node) SetPadding(e Edge, v float64)        { n.style.Padding[e] = Point(v); n.MarkDirty() }
func (n *Node) SetPaddingPercent(e Edge, p float64) { n.style.Padding[e] = Percent(p); n.MarkDirty() }
func (n *Node) GetPadding(e Edge) Value             { return n.style.Padding[e] }

func (n *Node) SetPosition(e Edge, v float64)        { n.style.Position[e] = Point(v); n.MarkDirty() }
func (n *Node) SetPositionPercent(e Edge, p float64) { n.style.Position[e] = Percent(p); n.MarkDirty() }
func (n *Node) GetPosition(e Edge) Value             { return n.style.Position[e] }

func (n *Node) SetBorder(e Edge, v float64) { n.style.Border[e] = v; n.MarkDirty() }
func (n *Node) GetBorder(e Edge) float64    { return n.style.Border[e] }
