package layout

import "math"

// calc carries per-call state through a single CalculateLayout pass.
type calc struct {
	dir Direction
}

// CalculateLayout performs layout calculation on the tree rooted at root.
// The root and all attached descendants have their Layout populated.
// Only dirty subtrees, or subtrees whose allocated size changed, are
// recalculated.
//
// width and height are the space available to the root in engine points;
// NaN sizes the root to its content on that axis.
func CalculateLayout(root *Node, width, height float64, dir Direction) {
	if root == nil || root.freed {
		return
	}
	if dir == DirectionInherit {
		dir = DirectionLTR
	}
	c := &calc{dir: dir}

	// For the root node, resolve its width/height constraints against
	// the available space. This is different from child nodes, which
	// receive their size from the parent's flex calculations.
	style := &root.style
	margin := resolveEdges(style.Margin, width)
	w := style.Width.Resolve(width)
	h := style.Height.Resolve(height)
	w, h = applyAspectRatio(style.AspectRatio, w, h)
	if !isDefined(w) && isDefined(width) {
		w = width - margin.Horizontal()
	}
	if !isDefined(h) && isDefined(height) {
		h = height - margin.Vertical()
	}
	w, h = c.resolveSize(root, w, h, width-margin.Horizontal(), height-margin.Vertical(), width, height)

	c.layoutNode(root, w, h, width)
	root.layout.Margin = margin
	root.layout.Left = margin[EdgeLeft]
	root.layout.Top = margin[EdgeTop]
	root.layout.Right = margin[EdgeRight]
	root.layout.Bottom = margin[EdgeBottom]
}

// layoutNode sizes n's border box to width x height and lays out its children.
// The caller positions n within its parent.
func (c *calc) layoutNode(n *Node, width, height, ownerWidth float64) {
	n.layout.Width = width
	n.layout.Height = height
	n.layout.Direction = c.dir
	n.layout.Padding = resolveEdges(n.style.Padding, ownerWidth)
	n.layout.Border = borderEdges(n.style.Border)

	// Dirty propagates up, so a clean node guarantees a clean subtree
	key := layoutCache{width: width, height: height, ownerWidth: ownerWidth, dir: c.dir, valid: true}
	if !n.dirty && n.cache == key {
		return
	}

	if len(n.children) > 0 {
		c.layoutChildren(n)
	}

	n.cache = key
	n.dirty = false
}

// resolveSize fills in whichever of width/height is NaN from n's style,
// aspect ratio and content, then applies min/max constraints.
// availWidth/availHeight bound content measurement (NaN = unbounded);
// ownerWidth/ownerHeight resolve percentages.
func (c *calc) resolveSize(n *Node, width, height, availWidth, availHeight, ownerWidth, ownerHeight float64) (float64, float64) {
	style := &n.style
	if !isDefined(width) {
		width = style.Width.Resolve(ownerWidth)
	}
	if !isDefined(height) {
		height = style.Height.Resolve(ownerHeight)
	}
	width, height = applyAspectRatio(style.AspectRatio, width, height)

	if !isDefined(width) || !isDefined(height) {
		inset := resolveEdges(style.Padding, ownerWidth).add(borderEdges(style.Border))

		innerWidth, widthMode := innerConstraint(width, availWidth, inset.Horizontal())
		innerHeight, heightMode := innerConstraint(height, availHeight, inset.Vertical())
		contentWidth, contentHeight := c.contentSize(n, innerWidth, widthMode, innerHeight, heightMode)

		if !isDefined(width) {
			width = contentWidth + inset.Horizontal()
		}
		if !isDefined(height) {
			height = contentHeight + inset.Vertical()
		}
	}

	width = clamp(width, style.MinWidth.Resolve(ownerWidth), style.MaxWidth.Resolve(ownerWidth))
	height = clamp(height, style.MinHeight.Resolve(ownerHeight), style.MaxHeight.Resolve(ownerHeight))
	return width, height
}

// innerConstraint converts a border-box size (or the available space when the
// size is unknown) into a content-box constraint and its measure mode.
func innerConstraint(size, available, inset float64) (float64, MeasureMode) {
	switch {
	case isDefined(size):
		return math.Max(0, size-inset), MeasureModeExactly
	case isDefined(available):
		return math.Max(0, available-inset), MeasureModeAtMost
	default:
		return math.NaN(), MeasureModeUndefined
	}
}

// contentSize returns the natural content-box size of n: the measure callback
// for leaves, otherwise the extent of its in-flow children.
func (c *calc) contentSize(n *Node, width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) (float64, float64) {
	if n.measure != nil && len(n.children) == 0 {
		size := n.measure(n, width, widthMode, height, heightMode)
		return math.Max(0, orZero(size.Width)), math.Max(0, orZero(size.Height))
	}

	isRow := isRowDirection(n.style.FlexDirection)
	var main, cross float64
	for _, child := range n.children {
		if child.style.Display == DisplayNone || child.style.PositionType == PositionTypeAbsolute {
			continue
		}
		margin := resolveEdges(child.style.Margin, width)
		w, h := c.resolveSize(child, math.NaN(), math.NaN(),
			width-margin.Horizontal(), height-margin.Vertical(), width, height)
		w += margin.Horizontal()
		h += margin.Vertical()
		if isRow {
			main += w
			cross = math.Max(cross, h)
		} else {
			main += h
			cross = math.Max(cross, w)
		}
	}
	if isRow {
		return main, cross
	}
	return cross, main
}

// hide zeroes the layout of a display:none subtree.
func (c *calc) hide(n *Node) {
	n.layout = Layout{Direction: c.dir}
	n.cache = layoutCache{}
	n.dirty = false
	for _, child := range n.children {
		c.hide(child)
	}
}

// applyAspectRatio derives a missing dimension from the other one.
// ratio is width / height.
func applyAspectRatio(ratio, width, height float64) (float64, float64) {
	if !isDefined(ratio) || ratio <= 0 {
		return width, height
	}
	switch {
	case isDefined(width) && !isDefined(height):
		height = width / ratio
	case isDefined(height) && !isDefined(width):
		width = height * ratio
	}
	return width, height
}

// clamp restricts v to the range [minVal, maxVal]; NaN bounds are ignored.
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal float64) float64 {
	if isDefined(maxVal) && v > maxVal {
		v = maxVal
	}
	if isDefined(minVal) && v < minVal {
		v = minVal
	}
	return math.Max(0, v)
}
