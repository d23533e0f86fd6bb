package flex

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grindlemire/go-flex/internal/layout"
)

const (
	measureFuncName = "measureFunc"
	flexBasisName   = "flexBasis"
)

// property binds a descriptor to the engine accessors that store it.
// get returns engine-native values (int constants, float64 or layout.Value);
// set takes the output of Encode.
type property struct {
	Descriptor
	get func(n *layout.Node) any
	set func(n *layout.Node, v any) error
}

// properties is built once and never mutated.
var properties = buildProperties()

func buildProperties() map[string]property {
	props := map[string]property{
		"alignContent":   enumProperty(alignLabels, "flexStart", (*layout.Node).GetAlignContent, (*layout.Node).SetAlignContent),
		"alignItems":     enumProperty(alignLabels, "stretch", (*layout.Node).GetAlignItems, (*layout.Node).SetAlignItems),
		"alignSelf":      enumProperty(alignLabels, "auto", (*layout.Node).GetAlignSelf, (*layout.Node).SetAlignSelf),
		"display":        enumProperty(displayLabels, "flex", (*layout.Node).GetDisplay, (*layout.Node).SetDisplay),
		"flexDirection":  enumProperty(flexDirectionLabels, "column", (*layout.Node).GetFlexDirection, (*layout.Node).SetFlexDirection),
		"flexWrap":       enumProperty(wrapLabels, "noWrap", (*layout.Node).GetFlexWrap, (*layout.Node).SetFlexWrap),
		"justifyContent": enumProperty(justifyLabels, "flexStart", (*layout.Node).GetJustifyContent, (*layout.Node).SetJustifyContent),
		"overflow":       enumProperty(overflowLabels, "visible", (*layout.Node).GetOverflow, (*layout.Node).SetOverflow),
		"positionType":   enumProperty(positionTypeLabels, "relative", (*layout.Node).GetPositionType, (*layout.Node).SetPositionType),

		"aspectRatio": numberProperty(nil, (*layout.Node).GetAspectRatio, (*layout.Node).SetAspectRatio),
		"flexGrow":    numberProperty(0.0, (*layout.Node).GetFlexGrow, (*layout.Node).SetFlexGrow),
		"flexShrink":  numberProperty(0.0, (*layout.Node).GetFlexShrink, (*layout.Node).SetFlexShrink),

		flexBasisName: unitProperty(nil, (*layout.Node).GetFlexBasis, unitSetters{
			point:   (*layout.Node).SetFlexBasis,
			percent: (*layout.Node).SetFlexBasisPercent,
		}),
		"width": unitProperty("auto", (*layout.Node).GetWidth, unitSetters{
			point:   (*layout.Node).SetWidth,
			percent: (*layout.Node).SetWidthPercent,
			auto:    (*layout.Node).SetWidthAuto,
		}),
		"height": unitProperty("auto", (*layout.Node).GetHeight, unitSetters{
			point:   (*layout.Node).SetHeight,
			percent: (*layout.Node).SetHeightPercent,
			auto:    (*layout.Node).SetHeightAuto,
		}),
		"minWidth": unitProperty(nil, (*layout.Node).GetMinWidth, unitSetters{
			point:   (*layout.Node).SetMinWidth,
			percent: (*layout.Node).SetMinWidthPercent,
		}),
		"minHeight": unitProperty(nil, (*layout.Node).GetMinHeight, unitSetters{
			point:   (*layout.Node).SetMinHeight,
			percent: (*layout.Node).SetMinHeightPercent,
		}),
		"maxWidth": unitProperty(nil, (*layout.Node).GetMaxWidth, unitSetters{
			point:   (*layout.Node).SetMaxWidth,
			percent: (*layout.Node).SetMaxWidthPercent,
		}),
		"maxHeight": unitProperty(nil, (*layout.Node).GetMaxHeight, unitSetters{
			point:   (*layout.Node).SetMaxHeight,
			percent: (*layout.Node).SetMaxHeightPercent,
		}),

		measureFuncName: {Descriptor: Descriptor{Kind: KindMeasure}},
	}

	for suffix, e := range edgeSuffixes {
		props["margin"+suffix] = unitProperty(nil, edgeGetter((*layout.Node).GetMargin, e), unitSetters{
			point:   edgeSetter((*layout.Node).SetMargin, e),
			percent: edgeSetter((*layout.Node).SetMarginPercent, e),
			auto:    func(n *layout.Node) { n.SetMarginAuto(e) },
		})
		props["padding"+suffix] = unitProperty(nil, edgeGetter((*layout.Node).GetPadding, e), unitSetters{
			point:   edgeSetter((*layout.Node).SetPadding, e),
			percent: edgeSetter((*layout.Node).SetPaddingPercent, e),
		})
		props["position"+suffix] = unitProperty(nil, edgeGetter((*layout.Node).GetPosition, e), unitSetters{
			point:   edgeSetter((*layout.Node).SetPosition, e),
			percent: edgeSetter((*layout.Node).SetPositionPercent, e),
		})
		props["border"+suffix] = property{
			Descriptor: Descriptor{Kind: KindValue, Point: true},
			get:        func(n *layout.Node) any { return n.GetBorder(e) },
			set:        floatSetter(edgeSetter((*layout.Node).SetBorder, e)),
		}
	}

	return props
}

// edgeSuffixes names the edge-qualified variants of margin, padding,
// position and border.
var edgeSuffixes = map[string]layout.Edge{
	"Left":   layout.EdgeLeft,
	"Top":    layout.EdgeTop,
	"Right":  layout.EdgeRight,
	"Bottom": layout.EdgeBottom,
}

func enumProperty[T ~uint8](labels map[string]int, def string, get func(*layout.Node) T, set func(*layout.Node, T)) property {
	return property{
		Descriptor: Descriptor{Kind: KindEnum, Enum: labels, Default: def},
		get:        func(n *layout.Node) any { return int(get(n)) },
		set: func(n *layout.Node, v any) error {
			c, ok := v.(int)
			if !ok {
				return fmt.Errorf("%w: %T is not an enum constant", ErrInvalidValueType, v)
			}
			set(n, T(c))
			return nil
		},
	}
}

// numberProperty binds a unitless number that is not scaled by precision.
func numberProperty(def any, get func(*layout.Node) float64, set func(*layout.Node, float64)) property {
	return property{
		Descriptor: Descriptor{Kind: KindValue, Default: def},
		get:        func(n *layout.Node) any { return get(n) },
		set:        floatSetter(set),
	}
}

type unitSetters struct {
	point   func(*layout.Node, float64)
	percent func(*layout.Node, float64)
	auto    func(*layout.Node)
}

func unitProperty(def any, get func(*layout.Node) layout.Value, s unitSetters) property {
	return property{
		Descriptor: Descriptor{
			Kind:    KindValue,
			Default: def,
			Point:   s.point != nil,
			Percent: s.percent != nil,
			Auto:    s.auto != nil,
		},
		get: func(n *layout.Node) any { return get(n) },
		set: s.apply,
	}
}

// apply dispatches an encoded value to the engine setter for its unit.
func (s unitSetters) apply(n *layout.Node, v any) error {
	switch x := v.(type) {
	case float64:
		s.point(n, x)
		return nil
	case string:
		if x == "auto" {
			if s.auto == nil {
				return fmt.Errorf("%w: auto is not supported", ErrInvalidValueType)
			}
			s.auto(n)
			return nil
		}
		if s.percent == nil || !strings.HasSuffix(x, "%") {
			return fmt.Errorf("%w: %q", ErrInvalidValueType, x)
		}
		p, err := strconv.ParseFloat(strings.TrimSuffix(x, "%"), 64)
		if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: %q is not a percentage", ErrInvalidValueType, x)
		}
		s.percent(n, p)
		return nil
	}
	return fmt.Errorf("%w: %T", ErrInvalidValueType, v)
}

func floatSetter(set func(*layout.Node, float64)) func(*layout.Node, any) error {
	return func(n *layout.Node, v any) error {
		f, ok := v.(float64)
		if !ok {
			return fmt.Errorf("%w: %T is not a number", ErrInvalidValueType, v)
		}
		set(n, f)
		return nil
	}
}

func edgeGetter(get func(*layout.Node, layout.Edge) layout.Value, e layout.Edge) func(*layout.Node) layout.Value {
	return func(n *layout.Node) layout.Value { return get(n, e) }
}

func edgeSetter(set func(*layout.Node, layout.Edge, float64), e layout.Edge) func(*layout.Node, float64) {
	return func(n *layout.Node, v float64) { set(n, e, v) }
}
