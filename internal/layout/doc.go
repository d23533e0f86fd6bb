// Package layout implements the pure-Go flexbox engine behind package flex.
//
// The engine works on handle-like [Node] values: callers create nodes, set
// per-property style values (point, percent or auto units, per-edge where the
// property has edges), attach and detach children by index, and install
// measurement callbacks for leaves. [CalculateLayout] then computes each
// attached node's box, readable through the Computed* accessors.
//
// It supports row/column directions (including reverse and RTL), justify and
// align modes, flex grow/shrink/basis, padding, border, margin (including auto
// margins), min/max constraints, aspect ratio, relative and absolute
// positioning, display none and intrinsic sizing. Lines never wrap.
package layout
