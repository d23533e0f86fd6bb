// layout.go re-exports engine types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import "github.com/grindlemire/go-flex/internal/layout"

// Direction is the inline direction passed to CalculateLayout.
type Direction = layout.Direction

const (
	DirectionInherit = layout.DirectionInherit
	DirectionLTR     = layout.DirectionLTR
	DirectionRTL     = layout.DirectionRTL
)

// Edge selects one side of a box for edge-qualified layout metrics.
type Edge = layout.Edge

const (
	EdgeLeft   = layout.EdgeLeft
	EdgeTop    = layout.EdgeTop
	EdgeRight  = layout.EdgeRight
	EdgeBottom = layout.EdgeBottom
)

// MeasureMode describes the constraint passed to a MeasureFunc for one axis.
type MeasureMode = layout.MeasureMode

const (
	MeasureModeUndefined = layout.MeasureModeUndefined
	MeasureModeExactly   = layout.MeasureModeExactly
	MeasureModeAtMost    = layout.MeasureModeAtMost
)

// Size is a width/height pair returned from a MeasureFunc.
type Size = layout.Size

// Unit tags an engine value; Value is the tagged engine representation that
// Decode accepts.
type (
	Unit  = layout.Unit
	Value = layout.Value
)

const (
	UnitUndefined = layout.UnitUndefined
	UnitPoint     = layout.UnitPoint
	UnitPercent   = layout.UnitPercent
	UnitAuto      = layout.UnitAuto
)

// MeasureFunc computes the content size of a leaf node in user units.
// width and height are NaN when their mode is MeasureModeUndefined.
type MeasureFunc func(width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) Size
