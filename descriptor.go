package flex

import (
	"fmt"
	"maps"
	"slices"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Kind distinguishes how a property's values are represented.
type Kind uint8

const (
	// KindEnum properties take one label out of a fixed set.
	KindEnum Kind = iota
	// KindValue properties take a number, "auto", a percent string or nil.
	KindValue
	// KindMeasure is the write-only measurement callback.
	KindMeasure
)

// Descriptor describes a property's value kind and conversion rules.
// Descriptors are static; callers must not modify the Enum map.
type Descriptor struct {
	Kind Kind

	// Enum maps labels to engine constants (KindEnum only).
	Enum map[string]int

	// Default is the value a fresh node reports: an enum label, a number,
	// "auto" or nil.
	Default any

	// Units accepted by a KindValue property. Point values are scaled by
	// the node's precision; a KindValue property without Point takes plain
	// unscaled numbers.
	Point   bool
	Percent bool
	Auto    bool
}

var (
	alignLabels = map[string]int{
		"auto":         int(layout.AlignAuto),
		"flexStart":    int(layout.AlignFlexStart),
		"center":       int(layout.AlignCenter),
		"flexEnd":      int(layout.AlignFlexEnd),
		"stretch":      int(layout.AlignStretch),
		"baseline":     int(layout.AlignBaseline),
		"spaceBetween": int(layout.AlignSpaceBetween),
		"spaceAround":  int(layout.AlignSpaceAround),
	}
	justifyLabels = map[string]int{
		"flexStart":    int(layout.JustifyFlexStart),
		"center":       int(layout.JustifyCenter),
		"flexEnd":      int(layout.JustifyFlexEnd),
		"spaceBetween": int(layout.JustifySpaceBetween),
		"spaceAround":  int(layout.JustifySpaceAround),
		"spaceEvenly":  int(layout.JustifySpaceEvenly),
	}
	flexDirectionLabels = map[string]int{
		"column":        int(layout.FlexDirectionColumn),
		"columnReverse": int(layout.FlexDirectionColumnReverse),
		"row":           int(layout.FlexDirectionRow),
		"rowReverse":    int(layout.FlexDirectionRowReverse),
	}
	wrapLabels = map[string]int{
		"noWrap":      int(layout.WrapNoWrap),
		"wrap":        int(layout.WrapWrap),
		"wrapReverse": int(layout.WrapWrapReverse),
	}
	overflowLabels = map[string]int{
		"visible": int(layout.OverflowVisible),
		"hidden":  int(layout.OverflowHidden),
		"scroll":  int(layout.OverflowScroll),
	}
	displayLabels = map[string]int{
		"flex": int(layout.DisplayFlex),
		"none": int(layout.DisplayNone),
	}
	positionTypeLabels = map[string]int{
		"relative": int(layout.PositionTypeRelative),
		"absolute": int(layout.PositionTypeAbsolute),
	}
)

// LookupDescriptor returns the descriptor for a property name.
func LookupDescriptor(name string) (Descriptor, error) {
	p, ok := properties[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	return p.Descriptor, nil
}

// PropertyNames returns every settable property name in sorted order.
func PropertyNames() []string {
	return slices.Sorted(maps.Keys(properties))
}
