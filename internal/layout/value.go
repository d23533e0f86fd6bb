package layout

import "math"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitUndefined Unit = iota // Not set; the engine falls back to its own rules
	UnitPoint                 // Absolute engine points
	UnitPercent               // Percentage of the owner's corresponding size
	UnitAuto                  // Size determined by content/flex
)

// Value is a unit-tagged style value as the engine stores and reports it.
// Undefined and auto values carry a zero Amount so that Values compare with ==.
type Value struct {
	Value float64
	Unit  Unit
}

// Undefined returns the unset Value.
func Undefined() Value {
	return Value{}
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Point returns an absolute Value. NaN yields Undefined.
func Point(v float64) Value {
	if math.IsNaN(v) {
		return Undefined()
	}
	return Value{Value: v, Unit: UnitPoint}
}

// Percent returns a percentage Value on a 0-100 scale (50.0 = 50%).
// NaN yields Undefined.
func Percent(p float64) Value {
	if math.IsNaN(p) {
		return Undefined()
	}
	return Value{Value: p, Unit: UnitPercent}
}

// Resolve computes the value in points against the owner size.
// Auto, undefined and percentages of an undefined owner size resolve to NaN.
func (v Value) Resolve(ownerSize float64) float64 {
	switch v.Unit {
	case UnitPoint:
		return v.Value
	case UnitPercent:
		return ownerSize * v.Value / 100.0
	default:
		return math.NaN()
	}
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsDefined returns true for point and percent values.
func (v Value) IsDefined() bool {
	return v.Unit == UnitPoint || v.Unit == UnitPercent
}

func isDefined(f float64) bool {
	return !math.IsNaN(f)
}

// orZero maps NaN to 0.
func orZero(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return f
}
