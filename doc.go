// Package flex provides typed, string-keyed access to a flexbox layout engine.
//
// Users import this single package for the complete public API: property
// encoding and decoding, layout nodes, child reconciliation and computed
// layout readback.
//
// Lengths are given in user units. Each Node has a precision, the size of one
// engine unit in user units, and point values must be multiples of it:
//
//	root, _ := flex.New(0.5, flex.WithProperties(map[string]any{
//		"flexDirection": "row",
//		"width":         "100%",
//	}))
//	child, _ := flex.New(0.5, flex.WithProperties(map[string]any{"flexGrow": 1}))
//	root.InsertChild(child)
//	root.CalculateLayout(80, 24, flex.DirectionLTR)
//	w, _ := child.GetComputedLayout("width")
package flex
