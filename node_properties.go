package flex

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Properties returns every property name a Node accepts, in sorted order.
func (n *Node) Properties() []string {
	return PropertyNames()
}

// SetProperty encodes value and stores it on the engine node. nil resets the
// property to its default. Nothing is changed when an error is returned.
func (n *Node) SetProperty(name string, value any) error {
	if err := n.live(); err != nil {
		return err
	}

	p, ok := properties[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	if p.Kind == KindMeasure {
		return n.setMeasureFunc(value)
	}

	encoded, err := Encode(name, value, p.Descriptor, n.precision)
	if err != nil {
		return err
	}
	if err := p.set(n.native, encoded); err != nil {
		return fmt.Errorf("property %q: %w", name, err)
	}
	return nil
}

// GetProperty returns the property's current value in user units.
func (n *Node) GetProperty(name string) (any, error) {
	if err := n.live(); err != nil {
		return nil, err
	}

	p, ok := properties[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	if p.Kind == KindMeasure {
		return nil, ErrMeasureFuncNotReadable
	}
	return Decode(name, p.get(n.native), p.Descriptor, n.precision)
}

func (n *Node) setMeasureFunc(value any) error {
	var fn MeasureFunc
	switch f := value.(type) {
	case nil:
	case MeasureFunc:
		fn = f
	case func(float64, MeasureMode, float64, MeasureMode) Size:
		fn = f
	default:
		return fmt.Errorf("%w: %T is not a measure function", ErrInvalidValueType, value)
	}

	if fn == nil {
		n.native.SetMeasureFunc(nil)
		return nil
	}

	precision := n.precision
	n.native.SetMeasureFunc(func(_ *layout.Node, w float64, wm layout.MeasureMode, h float64, hm layout.MeasureMode) layout.Size {
		size := fn(w*precision, wm, h*precision, hm)
		return layout.Size{
			Width:  ceilUnits(size.Width, precision),
			Height: ceilUnits(size.Height, precision),
		}
	})
	return nil
}

// ceilUnits converts a user size to whole engine units, rounding up so
// content is never clipped. Sizes that are already a multiple of precision
// keep their unit count.
func ceilUnits(v, precision float64) float64 {
	if r, ok := wholeUnits(v, precision); ok {
		return r
	}
	return math.Ceil(v / precision)
}
