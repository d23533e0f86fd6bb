package layout

import (
	"math"
	"testing"
)

type box struct {
	left, top, width, height float64
}

func boxOf(n *Node) box {
	return box{n.ComputedLeft(), n.ComputedTop(), n.ComputedWidth(), n.ComputedHeight()}
}

func newSizedNode(width, height float64) *Node {
	n := NewNode()
	n.SetWidth(width)
	n.SetHeight(height)
	return n
}

func appendChildren(parent *Node, children ...*Node) {
	for _, child := range children {
		parent.InsertChild(child, parent.ChildCount())
	}
}

func TestCalculate_SingleNode(t *testing.T) {
	type tc struct {
		setup          func(n *Node)
		availableW     float64
		availableH     float64
		expectedWidth  float64
		expectedHeight float64
	}

	tests := map[string]tc{
		"fixed width and height": {
			setup: func(n *Node) {
				n.SetWidth(50)
				n.SetHeight(30)
			},
			availableW:     100,
			availableH:     100,
			expectedWidth:  50,
			expectedHeight: 30,
		},
		"auto fills available space": {
			setup:          func(n *Node) {},
			availableW:     100,
			availableH:     80,
			expectedWidth:  100,
			expectedHeight: 80,
		},
		"percent of available": {
			setup: func(n *Node) {
				n.SetWidthPercent(50)
				n.SetHeightPercent(25)
			},
			availableW:     200,
			availableH:     100,
			expectedWidth:  100,
			expectedHeight: 25,
		},
		"max constrains available": {
			setup: func(n *Node) {
				n.SetMaxWidth(40)
			},
			availableW:     100,
			availableH:     100,
			expectedWidth:  40,
			expectedHeight: 100,
		},
		"aspect ratio derives height": {
			setup: func(n *Node) {
				n.SetWidth(60)
				n.SetAspectRatio(2)
			},
			availableW:     100,
			availableH:     100,
			expectedWidth:  60,
			expectedHeight: 30,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			node := NewNode()
			tt.setup(node)
			CalculateLayout(node, tt.availableW, tt.availableH, DirectionLTR)

			if got := node.ComputedWidth(); got != tt.expectedWidth {
				t.Errorf("ComputedWidth() = %v, want %v", got, tt.expectedWidth)
			}
			if got := node.ComputedHeight(); got != tt.expectedHeight {
				t.Errorf("ComputedHeight() = %v, want %v", got, tt.expectedHeight)
			}
			if node.ComputedLeft() != 0 || node.ComputedTop() != 0 {
				t.Errorf("position = (%v, %v), want (0, 0)", node.ComputedLeft(), node.ComputedTop())
			}
			if node.IsDirty() {
				t.Error("node should not be dirty after CalculateLayout")
			}
		})
	}
}

func TestCalculate_ColumnFlexGrow(t *testing.T) {
	parent := NewNode()
	child1 := NewNode()
	child1.SetFlexGrow(1)
	child2 := NewNode()
	child2.SetFlexGrow(1)
	appendChildren(parent, child1, child2)

	CalculateLayout(parent, 100, 100, DirectionLTR)

	if got, want := boxOf(child1), (box{0, 0, 100, 50}); got != want {
		t.Errorf("child1 = %+v, want %+v", got, want)
	}
	if got, want := boxOf(child2), (box{0, 50, 100, 50}); got != want {
		t.Errorf("child2 = %+v, want %+v", got, want)
	}
	if got := child1.ComputedBottom(); got != 50 {
		t.Errorf("child1 bottom = %v, want 50", got)
	}
}

func TestCalculate_RowFlex(t *testing.T) {
	type tc struct {
		children func() []*Node
		expected []box
	}

	tests := map[string]tc{
		"fixed and growing": {
			children: func() []*Node {
				fixed := NewNode()
				fixed.SetWidth(30)
				growing := NewNode()
				growing.SetFlexGrow(1)
				return []*Node{fixed, growing}
			},
			expected: []box{{0, 0, 30, 50}, {30, 0, 70, 50}},
		},
		"proportional grow": {
			children: func() []*Node {
				a := NewNode()
				a.SetFlexGrow(1)
				b := NewNode()
				b.SetFlexGrow(3)
				return []*Node{a, b}
			},
			expected: []box{{0, 0, 25, 50}, {25, 0, 75, 50}},
		},
		"shrink weighted by basis": {
			children: func() []*Node {
				a := NewNode()
				a.SetWidth(80)
				a.SetFlexShrink(1)
				b := NewNode()
				b.SetWidth(80)
				b.SetFlexShrink(1)
				return []*Node{a, b}
			},
			expected: []box{{0, 0, 50, 50}, {50, 0, 50, 50}},
		},
		"no shrink by default": {
			children: func() []*Node {
				a := NewNode()
				a.SetWidth(80)
				b := NewNode()
				b.SetWidth(80)
				return []*Node{a, b}
			},
			expected: []box{{0, 0, 80, 50}, {80, 0, 80, 50}},
		},
		"flex basis overrides width": {
			children: func() []*Node {
				a := NewNode()
				a.SetWidth(10)
				a.SetFlexBasis(40)
				return []*Node{a}
			},
			expected: []box{{0, 0, 40, 50}},
		},
		"max width caps growth": {
			children: func() []*Node {
				a := NewNode()
				a.SetFlexGrow(1)
				a.SetMaxWidth(30)
				return []*Node{a}
			},
			expected: []box{{0, 0, 30, 50}},
		},
		"percent width": {
			children: func() []*Node {
				a := NewNode()
				a.SetWidthPercent(25)
				return []*Node{a}
			},
			expected: []box{{0, 0, 25, 50}},
		},
		"display none takes no space": {
			children: func() []*Node {
				hidden := NewNode()
				hidden.SetWidth(30)
				hidden.SetDisplay(DisplayNone)
				growing := NewNode()
				growing.SetFlexGrow(1)
				return []*Node{hidden, growing}
			},
			expected: []box{{0, 0, 0, 0}, {0, 0, 100, 50}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := newSizedNode(100, 50)
			parent.SetFlexDirection(FlexDirectionRow)
			children := tt.children()
			appendChildren(parent, children...)

			CalculateLayout(parent, 200, 200, DirectionLTR)

			for i, child := range children {
				if got := boxOf(child); got != tt.expected[i] {
					t.Errorf("child %d = %+v, want %+v", i, got, tt.expected[i])
				}
			}
		})
	}
}

func TestCalculate_Justify(t *testing.T) {
	type tc struct {
		justify Justify
		lefts   []float64
	}

	tests := map[string]tc{
		"flex start":    {justify: JustifyFlexStart, lefts: []float64{0, 20}},
		"flex end":      {justify: JustifyFlexEnd, lefts: []float64{60, 80}},
		"center":        {justify: JustifyCenter, lefts: []float64{30, 50}},
		"space between": {justify: JustifySpaceBetween, lefts: []float64{0, 80}},
		"space around":  {justify: JustifySpaceAround, lefts: []float64{15, 65}},
		"space evenly":  {justify: JustifySpaceEvenly, lefts: []float64{20, 60}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := newSizedNode(100, 50)
			parent.SetFlexDirection(FlexDirectionRow)
			parent.SetJustifyContent(tt.justify)
			a := newSizedNode(20, 10)
			b := newSizedNode(20, 10)
			appendChildren(parent, a, b)

			CalculateLayout(parent, 100, 50, DirectionLTR)

			if a.ComputedLeft() != tt.lefts[0] || b.ComputedLeft() != tt.lefts[1] {
				t.Errorf("lefts = (%v, %v), want (%v, %v)",
					a.ComputedLeft(), b.ComputedLeft(), tt.lefts[0], tt.lefts[1])
			}
		})
	}
}

func TestCalculate_Align(t *testing.T) {
	type tc struct {
		alignItems Align
		alignSelf  Align
		height     float64 // NaN = auto
		expected   box
	}

	nan := math.NaN()
	tests := map[string]tc{
		"flex start":           {alignItems: AlignFlexStart, height: 10, expected: box{0, 0, 20, 10}},
		"center":               {alignItems: AlignCenter, height: 10, expected: box{0, 20, 20, 10}},
		"flex end":             {alignItems: AlignFlexEnd, height: 10, expected: box{0, 40, 20, 10}},
		"stretch fixed height": {alignItems: AlignStretch, height: 10, expected: box{0, 0, 20, 10}},
		"stretch auto height":  {alignItems: AlignStretch, height: nan, expected: box{0, 0, 20, 50}},
		"align self overrides": {alignItems: AlignFlexStart, alignSelf: AlignFlexEnd, height: 10, expected: box{0, 40, 20, 10}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := newSizedNode(100, 50)
			parent.SetFlexDirection(FlexDirectionRow)
			parent.SetAlignItems(tt.alignItems)
			child := NewNode()
			child.SetWidth(20)
			child.SetHeight(tt.height)
			child.SetAlignSelf(tt.alignSelf)
			appendChildren(parent, child)

			CalculateLayout(parent, 100, 50, DirectionLTR)

			if got := boxOf(child); got != tt.expected {
				t.Errorf("child = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestCalculate_PaddingBorderMargin(t *testing.T) {
	parent := NewNode()
	for _, e := range []Edge{EdgeLeft, EdgeTop, EdgeRight, EdgeBottom} {
		parent.SetPadding(e, 10)
	}
	parent.SetBorder(EdgeTop, 5)

	child := NewNode()
	child.SetFlexGrow(1)
	child.SetMargin(EdgeLeft, 4)
	appendChildren(parent, child)

	CalculateLayout(parent, 100, 100, DirectionLTR)

	if got, want := boxOf(child), (box{14, 15, 76, 75}); got != want {
		t.Errorf("child = %+v, want %+v", got, want)
	}
	if got := parent.ComputedPadding(EdgeLeft); got != 10 {
		t.Errorf("ComputedPadding(EdgeLeft) = %v, want 10", got)
	}
	if got := parent.ComputedBorder(EdgeTop); got != 5 {
		t.Errorf("ComputedBorder(EdgeTop) = %v, want 5", got)
	}
	if got := child.ComputedMargin(EdgeLeft); got != 4 {
		t.Errorf("ComputedMargin(EdgeLeft) = %v, want 4", got)
	}
}

func TestCalculate_AutoMargin(t *testing.T) {
	parent := newSizedNode(100, 50)
	parent.SetFlexDirection(FlexDirectionRow)
	child := newSizedNode(20, 10)
	child.SetMarginAuto(EdgeLeft)
	appendChildren(parent, child)

	CalculateLayout(parent, 100, 50, DirectionLTR)

	if got := child.ComputedLeft(); got != 80 {
		t.Errorf("ComputedLeft() = %v, want 80", got)
	}
	if got := child.ComputedMargin(EdgeLeft); got != 80 {
		t.Errorf("ComputedMargin(EdgeLeft) = %v, want 80", got)
	}
}

func TestCalculate_Reverse(t *testing.T) {
	type tc struct {
		direction FlexDirection
		layoutDir Direction
		expected  [2]box
	}

	tests := map[string]tc{
		"column reverse": {
			direction: FlexDirectionColumnReverse,
			layoutDir: DirectionLTR,
			expected:  [2]box{{0, 80, 20, 20}, {0, 60, 20, 20}},
		},
		"row reverse": {
			direction: FlexDirectionRowReverse,
			layoutDir: DirectionLTR,
			expected:  [2]box{{80, 0, 20, 20}, {60, 0, 20, 20}},
		},
		"row in rtl": {
			direction: FlexDirectionRow,
			layoutDir: DirectionRTL,
			expected:  [2]box{{80, 0, 20, 20}, {60, 0, 20, 20}},
		},
		"row reverse in rtl": {
			direction: FlexDirectionRowReverse,
			layoutDir: DirectionRTL,
			expected:  [2]box{{0, 0, 20, 20}, {20, 0, 20, 20}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := newSizedNode(100, 100)
			parent.SetFlexDirection(tt.direction)
			parent.SetAlignItems(AlignFlexStart)
			a := newSizedNode(20, 20)
			b := newSizedNode(20, 20)
			appendChildren(parent, a, b)

			CalculateLayout(parent, 100, 100, tt.layoutDir)

			if got := boxOf(a); got != tt.expected[0] {
				t.Errorf("first child = %+v, want %+v", got, tt.expected[0])
			}
			if got := boxOf(b); got != tt.expected[1] {
				t.Errorf("second child = %+v, want %+v", got, tt.expected[1])
			}
		})
	}
}

func TestCalculate_Positioning(t *testing.T) {
	type tc struct {
		setup    func(child *Node)
		expected box
	}

	tests := map[string]tc{
		"relative offset": {
			setup: func(child *Node) {
				child.SetPosition(EdgeLeft, 10)
				child.SetPosition(EdgeBottom, 5)
			},
			expected: box{10, -5, 30, 40},
		},
		"absolute from top left": {
			setup: func(child *Node) {
				child.SetPositionType(PositionTypeAbsolute)
				child.SetPosition(EdgeLeft, 10)
				child.SetPosition(EdgeTop, 20)
			},
			expected: box{10, 20, 30, 40},
		},
		"absolute from bottom right": {
			setup: func(child *Node) {
				child.SetPositionType(PositionTypeAbsolute)
				child.SetPosition(EdgeRight, 10)
				child.SetPosition(EdgeBottom, 10)
			},
			expected: box{60, 50, 30, 40},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := newSizedNode(100, 100)
			child := newSizedNode(30, 40)
			tt.setup(child)
			appendChildren(parent, child)

			CalculateLayout(parent, 100, 100, DirectionLTR)

			if got := boxOf(child); got != tt.expected {
				t.Errorf("child = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestCalculate_MeasureFunc(t *testing.T) {
	parent := newSizedNode(100, 100)
	parent.SetFlexDirection(FlexDirectionRow)
	parent.SetAlignItems(AlignFlexStart)

	var widthModes []MeasureMode
	leaf := NewNode()
	leaf.SetMeasureFunc(func(_ *Node, w float64, wm MeasureMode, h float64, hm MeasureMode) Size {
		widthModes = append(widthModes, wm)
		return Size{Width: 40, Height: 15}
	})
	appendChildren(parent, leaf)

	CalculateLayout(parent, 100, 100, DirectionLTR)

	if got, want := boxOf(leaf), (box{0, 0, 40, 15}); got != want {
		t.Errorf("leaf = %+v, want %+v", got, want)
	}
	if len(widthModes) == 0 || widthModes[0] != MeasureModeAtMost {
		t.Errorf("first width mode = %v, want MeasureModeAtMost", widthModes)
	}
}

func TestCalculate_ContentSizedRoot(t *testing.T) {
	root := NewNode()
	a := newSizedNode(30, 10)
	b := newSizedNode(20, 20)
	appendChildren(root, a, b)

	CalculateLayout(root, math.NaN(), math.NaN(), DirectionLTR)

	if root.ComputedWidth() != 30 || root.ComputedHeight() != 30 {
		t.Errorf("root = %vx%v, want 30x30", root.ComputedWidth(), root.ComputedHeight())
	}
	if got, want := boxOf(b), (box{0, 10, 20, 20}); got != want {
		t.Errorf("b = %+v, want %+v", got, want)
	}
}

func TestCalculate_CleanTreeIsSkipped(t *testing.T) {
	parent := newSizedNode(100, 100)
	calls := 0
	leaf := NewNode()
	leaf.SetMeasureFunc(func(_ *Node, w float64, wm MeasureMode, h float64, hm MeasureMode) Size {
		calls++
		return Size{Width: 10, Height: 10}
	})
	appendChildren(parent, leaf)

	CalculateLayout(parent, 100, 100, DirectionLTR)
	first := calls
	if first == 0 {
		t.Fatal("measure func should be called on first layout")
	}

	CalculateLayout(parent, 100, 100, DirectionLTR)
	if calls != first {
		t.Errorf("measure calls = %d after clean relayout, want %d", calls, first)
	}

	leaf.MarkDirty()
	CalculateLayout(parent, 100, 100, DirectionLTR)
	if calls == first {
		t.Error("measure func should be called again after MarkDirty")
	}
}

func TestCalculate_ReorderedChildren(t *testing.T) {
	parent := newSizedNode(100, 100)
	a := newSizedNode(10, 10)
	b := newSizedNode(10, 20)
	appendChildren(parent, a, b)
	CalculateLayout(parent, 100, 100, DirectionLTR)

	parent.RemoveChild(a)
	parent.InsertChild(a, 1)
	CalculateLayout(parent, 100, 100, DirectionLTR)

	if b.ComputedTop() != 0 || a.ComputedTop() != 20 {
		t.Errorf("tops = (b %v, a %v), want (0, 20)", b.ComputedTop(), a.ComputedTop())
	}
}
