package flex

import (
	"fmt"

	"github.com/grindlemire/go-flex/internal/layout"
)

// metric reads one computed value from the engine. Edge metrics need an Edge.
type metric struct {
	plain func(*layout.Node) float64
	edge  func(*layout.Node, layout.Edge) float64
}

var metrics = map[string]metric{
	"left":   {plain: (*layout.Node).ComputedLeft},
	"top":    {plain: (*layout.Node).ComputedTop},
	"right":  {plain: (*layout.Node).ComputedRight},
	"bottom": {plain: (*layout.Node).ComputedBottom},
	"width":  {plain: (*layout.Node).ComputedWidth},
	"height": {plain: (*layout.Node).ComputedHeight},

	"margin":  {edge: (*layout.Node).ComputedMargin},
	"border":  {edge: (*layout.Node).ComputedBorder},
	"padding": {edge: (*layout.Node).ComputedPadding},
}

// GetComputedLayout returns a value from the last layout pass in user units.
// margin, border and padding take the edge to read; other metrics ignore it.
func (n *Node) GetComputedLayout(name string, edge ...Edge) (float64, error) {
	if err := n.live(); err != nil {
		return 0, err
	}

	m, ok := metrics[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayoutMetric, name)
	}

	if m.edge == nil {
		return m.plain(n.native) * n.precision, nil
	}
	if len(edge) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrMissingEdge, name)
	}
	if edge[0] > EdgeBottom {
		return 0, fmt.Errorf("%w: %q got unknown edge %d", ErrMissingEdge, name, edge[0])
	}
	return m.edge(n.native, edge[0]) * n.precision, nil
}
