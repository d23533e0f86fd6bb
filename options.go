package flex

import (
	"maps"
	"slices"
)

// Option configures a Node at construction.
type Option func(*Node) error

// WithOrderIndex sets the node's initial sort key among its siblings.
func WithOrderIndex(i int) Option {
	return func(n *Node) error {
		n.orderIndex = i
		return nil
	}
}

// WithProperties sets each property in name order. The first failure aborts
// construction.
func WithProperties(props map[string]any) Option {
	return func(n *Node) error {
		for _, name := range slices.Sorted(maps.Keys(props)) {
			if err := n.SetProperty(name, props[name]); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithMeasureFunc installs a measure callback, making the node a leaf whose
// size comes from fn.
func WithMeasureFunc(fn MeasureFunc) Option {
	return func(n *Node) error {
		return n.SetProperty(measureFuncName, fn)
	}
}
