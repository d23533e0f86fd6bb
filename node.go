package flex

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-flex/internal/debug"
	"github.com/grindlemire/go-flex/internal/layout"
)

type nodeState uint8

const (
	stateLive nodeState = iota
	// stateDetachPending nodes wait for their engine parent to detach them
	// before their engine node is freed.
	stateDetachPending
	stateFreed
)

// Node is a layout node backed by one engine node.
//
// Properties are read and written in user units; the engine stores point
// values in multiples of the node's precision. Children declared with
// InsertChild are pending until the next Reconcile or CalculateLayout
// applies them to the engine tree.
//
// A Node is not safe for concurrent use. Separate trees may be used from
// separate goroutines.
type Node struct {
	native     *layout.Node
	precision  float64
	orderIndex int

	pending       []*Node // declared children, sorted on reconcile
	pendingParent *Node   // node whose pending list holds this one

	state nodeState
}

// New creates a node with the given precision. Point values set on the node
// must be multiples of precision.
func New(precision float64, opts ...Option) (*Node, error) {
	if !(precision > 0) || math.IsInf(precision, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrecision, precision)
	}

	n := &Node{
		native:    layout.NewNode(),
		precision: precision,
	}
	n.native.SetContext(n)

	for _, opt := range opts {
		if err := opt(n); err != nil {
			n.free()
			return nil, err
		}
	}
	return n, nil
}

// Precision returns the size of one engine unit in user units.
func (n *Node) Precision() float64 {
	return n.precision
}

// Destroy releases the node. It is removed from its parent's declared
// children and its engine node is freed once the parent's next reconcile has
// detached it, or immediately if it is not attached. Any later call on the
// node returns ErrUseAfterDestroy.
func (n *Node) Destroy() error {
	if err := n.live(); err != nil {
		return err
	}

	if n.pendingParent != nil {
		n.pendingParent.removePending(n)
	}
	n.state = stateDetachPending

	if n.native.Parent() == nil {
		n.free()
		debug.Log("flex: destroyed unattached node %p", n)
	} else {
		debug.Log("flex: node %p pending detach", n)
	}
	return nil
}

// free releases the engine node along with any attached children that were
// waiting on this node to detach them.
func (n *Node) free() {
	if n.state == stateFreed {
		return
	}

	var released []*Node
	for i := range n.native.ChildCount() {
		if c := ownerOf(n.native.ChildAt(i)); c != nil && c.state == stateDetachPending {
			released = append(released, c)
		}
	}
	for _, c := range n.pending {
		c.pendingParent = nil
	}
	n.pending = nil

	n.native.Free()
	n.state = stateFreed

	for _, c := range released {
		c.free()
	}
}

func (n *Node) live() error {
	if n.state != stateLive {
		return ErrUseAfterDestroy
	}
	return nil
}

// ownerOf returns the Node that created an engine node.
func ownerOf(native *layout.Node) *Node {
	if native == nil {
		return nil
	}
	owner, _ := native.Context().(*Node)
	return owner
}
