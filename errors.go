package flex

import "errors"

// Errors returned by Node and the property codec. They are wrapped with the
// offending property or value; match them with errors.Is.
var (
	// ErrUnknownProperty is returned for a property name with no descriptor.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrUnknownLayoutMetric is returned for a computed layout name the engine
	// does not report.
	ErrUnknownLayoutMetric = errors.New("unknown layout metric")

	// ErrInvalidValueType is returned when a value has a type the property
	// cannot hold, such as a number for an enum property.
	ErrInvalidValueType = errors.New("invalid value type")

	// ErrUnknownEnumValue is returned when an enum label has no engine constant.
	ErrUnknownEnumValue = errors.New("unknown enum value")

	// ErrUnknownEnumConstant is returned when an engine constant has no label.
	ErrUnknownEnumConstant = errors.New("unknown enum constant")

	// ErrPrecisionMismatch is returned when a point value is not an exact
	// multiple of the node's precision.
	ErrPrecisionMismatch = errors.New("value is not a multiple of the precision")

	// ErrMeasureFuncNotReadable is returned when reading the write-only
	// measureFunc property.
	ErrMeasureFuncNotReadable = errors.New("measureFunc cannot be read")

	// ErrUnconvertibleValue is returned when the engine reports a unit the
	// codec does not know.
	ErrUnconvertibleValue = errors.New("unconvertible engine value")

	// ErrUseAfterDestroy is returned by any call on a destroyed node.
	ErrUseAfterDestroy = errors.New("node used after Destroy")

	// ErrInvalidPrecision is returned by New for a precision that is not a
	// positive finite number.
	ErrInvalidPrecision = errors.New("precision must be a positive finite number")

	// ErrMissingEdge is returned when margin, border or padding is read without
	// a valid edge.
	ErrMissingEdge = errors.New("layout metric requires an edge")

	// ErrInvalidChild is returned when inserting nil, the node itself or one of
	// its ancestors.
	ErrInvalidChild = errors.New("invalid child node")
)
