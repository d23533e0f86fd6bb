package layout

// MeasureMode describes the constraint passed to a MeasureFunc for one axis.
type MeasureMode uint8

const (
	MeasureModeUndefined MeasureMode = iota // No constraint; size is NaN
	MeasureModeExactly                      // The node must be exactly this size
	MeasureModeAtMost                       // The node may be at most this size
)

// Size is a width/height pair in engine points.
type Size struct {
	Width  float64
	Height float64
}

// MeasureFunc computes the content size of a leaf node. Width and height are
// content-box constraints interpreted according to their modes.
type MeasureFunc func(node *Node, width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) Size

// Node is one box in the engine's layout tree.
type Node struct {
	// Configuration (user-set)
	style    Style
	children []*Node
	measure  MeasureFunc
	context  any

	// Computed (set by layout engine)
	layout Layout

	// Internal state
	dirty  bool  // Needs recalculation
	freed  bool  // Free has been called; the node must not be used again
	parent *Node // Back-pointer for dirty propagation
	cache  layoutCache
}

// layoutCache remembers the constraints a node was last laid out with so a
// clean subtree given the same constraints can be skipped.
type layoutCache struct {
	width, height float64
	ownerWidth    float64
	dir           Direction
	valid         bool
}

// NewNode creates a new node with the default style.
func NewNode() *Node {
	return &Node{
		style: DefaultStyle(),
		dirty: true, // New nodes need layout
	}
}

// Free detaches the node from its parent and orphans its children.
// The node must not be used afterwards.
func (n *Node) Free() {
	if n.freed {
		return
	}
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	for _, child := range n.children {
		child.parent = nil
	}
	n.children = nil
	n.measure = nil
	n.context = nil
	n.freed = true
}

// IsFreed reports whether Free has been called.
func (n *Node) IsFreed() bool {
	return n.freed
}

// InsertChild attaches child at index, clamped to the valid range.
// The child must not currently have a parent.
func (n *Node) InsertChild(child *Node, index int) {
	if child.parent != nil {
		panic("layout: child already has a parent; remove it first")
	}
	if child == n {
		panic("layout: cannot insert a node into itself")
	}
	index = max(0, min(index, len(n.children)))
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	n.MarkDirty()
}

// RemoveChild detaches child, preserving the order of the remaining children.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			n.MarkDirty()
			return true
		}
	}
	return false
}

// ChildAt returns the child at index, or nil if there is none.
func (n *Node) ChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// ChildCount returns the number of attached children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Parent returns the node this one is attached to, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// SetContext stores an arbitrary owner value on the node.
func (n *Node) SetContext(ctx any) {
	n.context = ctx
}

// Context returns the value stored with SetContext.
func (n *Node) Context() any {
	return n.context
}

// SetMeasureFunc installs fn as the content measurement callback.
// A nil fn removes it.
func (n *Node) SetMeasureFunc(fn MeasureFunc) {
	n.measure = fn
	n.MarkDirty()
}

// HasMeasureFunc reports whether a measurement callback is installed.
func (n *Node) HasMeasureFunc() bool {
	return n.measure != nil
}

// MarkDirty marks this node and all ancestors as needing recalculation.
func (n *Node) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

// IsDirty returns whether this node needs recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// Style returns a copy of the node's style.
func (n *Node) Style() Style {
	return n.style
}
