package flex

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Encode converts a user value into the form the engine setters take.
//
// A nil value becomes the descriptor's default. Enum labels become their
// int constant. Numbers become float64, divided by precision when the
// property holds points. Strings ("auto", "50%") pass through unchanged and
// an unset numeric value encodes as NaN.
func Encode(name string, value any, d Descriptor, precision float64) (any, error) {
	if value == nil {
		value = d.Default
	}

	switch d.Kind {
	case KindEnum:
		label, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %v is not a valid value for %q, expected a string", ErrInvalidValueType, value, name)
		}
		c, ok := d.Enum[label]
		if !ok {
			return nil, fmt.Errorf("%w: %q for property %q", ErrUnknownEnumValue, label, name)
		}
		return c, nil
	case KindValue:
	default:
		return nil, fmt.Errorf("%w: property %q has no encodable value", ErrInvalidValueType, name)
	}

	if value == nil {
		return math.NaN(), nil
	}
	if s, ok := value.(string); ok {
		return s, nil
	}

	f, ok := toFloat(value)
	if !ok {
		return nil, fmt.Errorf("%w: %T for property %q", ErrInvalidValueType, value, name)
	}
	if math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v for property %q", ErrInvalidValueType, f, name)
	}
	if !d.Point || math.IsNaN(f) {
		return f, nil
	}
	return toPoints(name, f, precision)
}

// Decode converts an engine value back into the user representation. It is
// the inverse of Encode for every value Encode accepts.
func Decode(name string, raw any, d Descriptor, precision float64) (any, error) {
	if v, ok := raw.(layout.Value); ok {
		switch v.Unit {
		case layout.UnitUndefined:
			return nil, nil
		case layout.UnitAuto:
			// the engine reports an unset flex basis as auto
			if name == flexBasisName {
				return nil, nil
			}
			return "auto", nil
		case layout.UnitPercent:
			return strconv.FormatFloat(v.Value, 'f', -1, 64) + "%", nil
		case layout.UnitPoint:
			raw = v.Value
		default:
			return nil, fmt.Errorf("%w: unit %d for property %q", ErrUnconvertibleValue, v.Unit, name)
		}
	}

	if d.Kind == KindEnum {
		if c, ok := toInt(raw); ok {
			for label, constant := range d.Enum {
				if constant == c {
					return label, nil
				}
			}
		}
		return nil, fmt.Errorf("%w: %v for property %q", ErrUnknownEnumConstant, raw, name)
	}

	f, ok := toFloat(raw)
	if !ok {
		return raw, nil
	}
	if math.IsNaN(f) {
		return nil, nil
	}
	if d.Point {
		return f * precision, nil
	}
	return f, nil
}

func toPoints(name string, v, precision float64) (float64, error) {
	r, ok := wholeUnits(v, precision)
	if !ok {
		return 0, fmt.Errorf("%w: %v for property %q with precision %v", ErrPrecisionMismatch, v, name, precision)
	}
	return r, nil
}

// wholeUnits returns v/precision rounded to an integer and whether that
// integer times precision gives back v. The comparison allows a few ulps of v
// so decimal precisions such as 0.1 accept 0.3, but never more.
func wholeUnits(v, precision float64) (float64, bool) {
	r := math.Round(v / precision)
	return r, math.Abs(r*precision-v) <= 4*ulp(v)
}

// ulp returns the distance from |v| to the next larger float64.
func ulp(v float64) float64 {
	v = math.Abs(v)
	return math.Nextafter(v, math.Inf(1)) - v
}

// toFloat normalises any Go numeric type to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
