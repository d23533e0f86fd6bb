package flex

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/grindlemire/go-flex/internal/debug"
	"github.com/grindlemire/go-flex/internal/layout"
)

// InsertChild declares child as a child of n. The child is moved out of any
// other node's declared children. Engine order follows OrderIndex and is
// applied on the next Reconcile.
func (n *Node) InsertChild(child *Node) error {
	if err := n.live(); err != nil {
		return err
	}
	if child == nil || child == n {
		return ErrInvalidChild
	}
	if err := child.live(); err != nil {
		return err
	}
	for p := n.pendingParent; p != nil; p = p.pendingParent {
		if p == child {
			return fmt.Errorf("%w: child is an ancestor", ErrInvalidChild)
		}
	}

	if child.pendingParent != nil {
		child.pendingParent.removePending(child)
	}
	child.pendingParent = n
	n.pending = append(n.pending, child)
	return nil
}

// RemoveChild removes child from n's declared children. It is detached from
// the engine tree on the next Reconcile. Removing a node that is not a child
// is a no-op.
func (n *Node) RemoveChild(child *Node) error {
	if err := n.live(); err != nil {
		return err
	}
	if child != nil && child.pendingParent == n {
		n.removePending(child)
	}
	return nil
}

func (n *Node) removePending(child *Node) {
	if i := slices.Index(n.pending, child); i >= 0 {
		n.pending = slices.Delete(n.pending, i, i+1)
	}
	child.pendingParent = nil
}

// SetOrderIndex sets the node's sort key among its siblings. Siblings with
// equal keys keep their insertion order.
func (n *Node) SetOrderIndex(i int) error {
	if err := n.live(); err != nil {
		return err
	}
	n.orderIndex = i
	return nil
}

// OrderIndex returns the node's sort key.
func (n *Node) OrderIndex() int {
	return n.orderIndex
}

// Children returns the declared children in the order the next Reconcile
// will apply.
func (n *Node) Children() []*Node {
	children := slices.Clone(n.pending)
	slices.SortStableFunc(children, byOrderIndex)
	return children
}

func byOrderIndex(a, b *Node) int {
	return cmp.Compare(a.orderIndex, b.orderIndex)
}

type reconcileStats struct {
	Attached int
	Detached int
	Freed    int
}

// Reconcile applies the declared children of n and all its descendants to
// the engine tree. Engine children already in the right position are left
// untouched.
func (n *Node) Reconcile() error {
	if err := n.live(); err != nil {
		return err
	}

	var stats reconcileStats
	n.reconcile(&stats)
	debug.Log("flex: reconcile %p attached=%d detached=%d freed=%d", n, stats.Attached, stats.Detached, stats.Freed)
	return nil
}

func (n *Node) reconcile(stats *reconcileStats) {
	slices.SortStableFunc(n.pending, byOrderIndex)

	var released []*Node
	for i := 0; ; {
		current := n.native.ChildAt(i)
		var desired *Node
		if i < len(n.pending) {
			desired = n.pending[i]
		}
		if current == nil && desired == nil {
			break
		}
		if current != nil && desired != nil && current == desired.native {
			i++
			continue
		}

		if current != nil {
			n.native.RemoveChild(current)
			stats.Detached++
			if owner := ownerOf(current); owner != nil && owner.state == stateDetachPending {
				released = append(released, owner)
			}
		}
		if desired != nil {
			if p := desired.native.Parent(); p != nil {
				p.RemoveChild(desired.native)
				stats.Detached++
			}
			n.native.InsertChild(desired.native, i)
			stats.Attached++
			i++
		}
	}

	for _, c := range n.pending {
		c.reconcile(stats)
	}

	// detached above, so each is freed with no engine parent
	for _, c := range released {
		c.free()
		stats.Freed++
	}
}

// CalculateLayout reconciles the tree rooted at n and lays it out within
// width and height, given in user units. NaN leaves a dimension unbounded.
func (n *Node) CalculateLayout(width, height float64, dir Direction) error {
	if err := n.Reconcile(); err != nil {
		return err
	}

	layout.CalculateLayout(n.native, width/n.precision, height/n.precision, dir)
	if debug.Enabled() {
		debug.Log("flex: layout %p\n%s", n, debug.Dump(n.native.Layout()))
	}
	return nil
}
