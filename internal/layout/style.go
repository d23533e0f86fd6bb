package layout

import "math"

// Direction is the inline direction a tree is laid out in.
type Direction uint8

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

// FlexDirection specifies the main axis for laying out children.
type FlexDirection uint8

const (
	FlexDirectionColumn        FlexDirection = iota // Children laid out top-to-bottom
	FlexDirectionColumnReverse                      // Children laid out bottom-to-top
	FlexDirectionRow                                // Children laid out in the inline direction
	FlexDirectionRowReverse                         // Children laid out against the inline direction
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyFlexStart    Justify = iota // Pack at start
	JustifyCenter                      // Center children
	JustifyFlexEnd                     // Pack at end
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignAuto Align = iota // Defer to the parent's AlignItems
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
)

// PositionType selects between in-flow and absolute positioning.
type PositionType uint8

const (
	PositionTypeRelative PositionType = iota
	PositionTypeAbsolute
)

// Wrap controls whether children may wrap onto multiple lines.
type Wrap uint8

const (
	WrapNoWrap Wrap = iota
	WrapWrap
	WrapWrapReverse
)

// Overflow describes how content beyond the node's bounds is treated.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// Display toggles whether a node takes part in layout at all.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
)

// Style contains all layout properties for a node.
type Style struct {
	// Flex container properties
	FlexDirection  FlexDirection
	JustifyContent Justify
	AlignContent   Align
	AlignItems     Align
	FlexWrap       Wrap
	Overflow       Overflow

	// Flex item properties
	AlignSelf    Align
	PositionType PositionType
	Display      Display
	FlexGrow     float64
	FlexShrink   float64
	FlexBasis    Value
	AspectRatio  float64 // NaN = unset

	// Spacing, indexed by Edge
	Margin   [edgeCount]Value
	Position [edgeCount]Value
	Padding  [edgeCount]Value
	Border   [edgeCount]float64 // NaN = unset

	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value
}

// DefaultStyle returns the style a freshly created node starts with.
func DefaultStyle() Style {
	nan := math.NaN()
	return Style{
		FlexDirection: FlexDirectionColumn,
		AlignContent:  AlignFlexStart,
		AlignItems:    AlignStretch,
		AlignSelf:     AlignAuto,
		FlexBasis:     Auto(),
		AspectRatio:   nan,
		Border:        [edgeCount]float64{nan, nan, nan, nan},
		Width:         Auto(),
		Height:        Auto(),
	}
}
