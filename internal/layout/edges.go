package layout

// Edge selects one side of a box for edge-qualified properties.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom

	edgeCount = 4
)

// edges holds resolved values for the four sides of a box, indexed by Edge.
type edges [edgeCount]float64

// resolveEdges resolves per-edge style values against the owner width,
// treating undefined and auto as zero.
func resolveEdges(values [edgeCount]Value, ownerWidth float64) edges {
	var e edges
	for i, v := range values {
		e[i] = orZero(v.Resolve(ownerWidth))
	}
	return e
}

func borderEdges(values [edgeCount]float64) edges {
	var e edges
	for i, v := range values {
		e[i] = orZero(v)
	}
	return e
}

// Horizontal returns the sum of Left and Right.
func (e edges) Horizontal() float64 {
	return e[EdgeLeft] + e[EdgeRight]
}

// Vertical returns the sum of Top and Bottom.
func (e edges) Vertical() float64 {
	return e[EdgeTop] + e[EdgeBottom]
}

// add returns the per-edge sum of e and other.
func (e edges) add(other edges) edges {
	for i := range e {
		e[i] += other[i]
	}
	return e
}
