package layout

import (
	"math"
	"testing"
)

func TestNewNode(t *testing.T) {
	node := NewNode()

	if !node.IsDirty() {
		t.Error("NewNode should be dirty")
	}
	if node.ChildCount() != 0 {
		t.Errorf("NewNode should have no children, got %d", node.ChildCount())
	}
	if node.Parent() != nil {
		t.Error("NewNode should have no parent")
	}
	if node.GetWidth() != Auto() {
		t.Errorf("GetWidth() = %+v, want Auto()", node.GetWidth())
	}
	if node.GetFlexBasis() != Auto() {
		t.Errorf("GetFlexBasis() = %+v, want Auto()", node.GetFlexBasis())
	}
	if node.GetMargin(EdgeTop) != Undefined() {
		t.Errorf("GetMargin(EdgeTop) = %+v, want Undefined()", node.GetMargin(EdgeTop))
	}
	if !math.IsNaN(node.GetBorder(EdgeLeft)) {
		t.Errorf("GetBorder(EdgeLeft) = %v, want NaN", node.GetBorder(EdgeLeft))
	}
	if node.GetFlexDirection() != FlexDirectionColumn {
		t.Errorf("GetFlexDirection() = %v, want FlexDirectionColumn", node.GetFlexDirection())
	}
	if node.GetAlignItems() != AlignStretch {
		t.Errorf("GetAlignItems() = %v, want AlignStretch", node.GetAlignItems())
	}
}

func TestNode_InsertChild(t *testing.T) {
	type tc struct {
		indexes  []int
		expected []int // positions of children 0..n in insertion order
	}

	tests := map[string]tc{
		"append in order": {
			indexes:  []int{0, 1, 2},
			expected: []int{0, 1, 2},
		},
		"insert at front": {
			indexes:  []int{0, 0, 0},
			expected: []int{2, 1, 0},
		},
		"index past end is clamped": {
			indexes:  []int{5, 9},
			expected: []int{0, 1},
		},
		"insert in middle": {
			indexes:  []int{0, 1, 1},
			expected: []int{0, 2, 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := NewNode()
			children := make([]*Node, len(tt.indexes))
			for i, idx := range tt.indexes {
				children[i] = NewNode()
				parent.InsertChild(children[i], idx)
			}

			for i, child := range children {
				if got := parent.ChildAt(tt.expected[i]); got != child {
					t.Errorf("ChildAt(%d) is not child %d", tt.expected[i], i)
				}
				if child.Parent() != parent {
					t.Errorf("child %d parent not set", i)
				}
			}
		})
	}
}

func TestNode_InsertChild_AlreadyAttachedPanics(t *testing.T) {
	a := NewNode()
	b := NewNode()
	child := NewNode()
	a.InsertChild(child, 0)

	defer func() {
		if recover() == nil {
			t.Error("InsertChild of an attached child should panic")
		}
	}()
	b.InsertChild(child, 0)
}

func TestNode_RemoveChild(t *testing.T) {
	parent := NewNode()
	child1 := NewNode()
	child2 := NewNode()
	child3 := NewNode()
	parent.InsertChild(child1, 0)
	parent.InsertChild(child2, 1)
	parent.InsertChild(child3, 2)

	if !parent.RemoveChild(child2) {
		t.Fatal("RemoveChild(child2) = false, want true")
	}
	if parent.RemoveChild(child2) {
		t.Error("second RemoveChild(child2) = true, want false")
	}
	if parent.ChildCount() != 2 {
		t.Errorf("ChildCount() = %d, want 2", parent.ChildCount())
	}
	if parent.ChildAt(0) != child1 || parent.ChildAt(1) != child3 {
		t.Error("RemoveChild should preserve the order of remaining children")
	}
	if child2.Parent() != nil {
		t.Error("removed child should have no parent")
	}
	if parent.ChildAt(2) != nil || parent.ChildAt(-1) != nil {
		t.Error("ChildAt out of range should return nil")
	}
}

func TestNode_MarkDirty_PropagatesToAncestors(t *testing.T) {
	root := NewNode()
	mid := NewNode()
	leaf := NewNode()
	root.InsertChild(mid, 0)
	mid.InsertChild(leaf, 0)

	CalculateLayout(root, 100, 100, DirectionLTR)
	for name, n := range map[string]*Node{"root": root, "mid": mid, "leaf": leaf} {
		if n.IsDirty() {
			t.Errorf("%s should be clean after CalculateLayout", name)
		}
	}

	leaf.SetFlexGrow(1)
	for name, n := range map[string]*Node{"root": root, "mid": mid, "leaf": leaf} {
		if !n.IsDirty() {
			t.Errorf("%s should be dirty after leaf style change", name)
		}
	}
}

func TestNode_Free(t *testing.T) {
	parent := NewNode()
	node := NewNode()
	child := NewNode()
	parent.InsertChild(node, 0)
	node.InsertChild(child, 0)
	node.SetContext("owner")

	node.Free()

	if !node.IsFreed() {
		t.Error("IsFreed() = false after Free")
	}
	if parent.ChildCount() != 0 {
		t.Errorf("parent.ChildCount() = %d, want 0", parent.ChildCount())
	}
	if child.Parent() != nil {
		t.Error("children of a freed node should be orphaned")
	}
	if node.Context() != nil {
		t.Error("Free should drop the context")
	}

	// Free is idempotent
	node.Free()
}

func TestNode_SetFlexBasis_NaNIsAuto(t *testing.T) {
	node := NewNode()
	node.SetFlexBasis(10)
	if node.GetFlexBasis() != Point(10) {
		t.Errorf("GetFlexBasis() = %+v, want Point(10)", node.GetFlexBasis())
	}
	node.SetFlexBasis(math.NaN())
	if node.GetFlexBasis() != Auto() {
		t.Errorf("GetFlexBasis() = %+v, want Auto()", node.GetFlexBasis())
	}
}

func TestNode_EdgeSetters(t *testing.T) {
	node := NewNode()
	node.SetMargin(EdgeTop, 5)
	node.SetMarginPercent(EdgeLeft, 10)
	node.SetMarginAuto(EdgeRight)
	node.SetPadding(EdgeBottom, 3)
	node.SetPosition(EdgeLeft, 7)
	node.SetBorder(EdgeTop, 2)

	if got := node.GetMargin(EdgeTop); got != Point(5) {
		t.Errorf("GetMargin(EdgeTop) = %+v, want Point(5)", got)
	}
	if got := node.GetMargin(EdgeLeft); got != Percent(10) {
		t.Errorf("GetMargin(EdgeLeft) = %+v, want Percent(10)", got)
	}
	if got := node.GetMargin(EdgeRight); got != Auto() {
		t.Errorf("GetMargin(EdgeRight) = %+v, want Auto()", got)
	}
	if got := node.GetMargin(EdgeBottom); got != Undefined() {
		t.Errorf("GetMargin(EdgeBottom) = %+v, want Undefined()", got)
	}
	if got := node.GetPadding(EdgeBottom); got != Point(3) {
		t.Errorf("GetPadding(EdgeBottom) = %+v, want Point(3)", got)
	}
	if got := node.GetPosition(EdgeLeft); got != Point(7) {
		t.Errorf("GetPosition(EdgeLeft) = %+v, want Point(7)", got)
	}
	if got := node.GetBorder(EdgeTop); got != 2 {
		t.Errorf("GetBorder(EdgeTop) = %v, want 2", got)
	}
}
