package layout

import "math"

// flexItem holds intermediate calculation state for a child.
// This is stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	node     *Node
	margin   edges
	baseSize float64
	mainSize float64
	cross    float64
	mainPos  float64
	crossPos float64
	grow     float64
	shrink   float64

	autoMainLead, autoMainTrail   bool
	autoCrossLead, autoCrossTrail bool
}

// axis describes how a container maps main/cross onto physical edges.
type axis struct {
	isRow        bool
	reverse      bool // main axis runs against the physical direction
	crossReverse bool // cross axis runs right-to-left (column in RTL)
}

func isRowDirection(d FlexDirection) bool {
	return d == FlexDirectionRow || d == FlexDirectionRowReverse
}

func (c *calc) axisFor(d FlexDirection) axis {
	a := axis{isRow: isRowDirection(d)}
	a.reverse = d == FlexDirectionColumnReverse || d == FlexDirectionRowReverse
	if a.isRow && c.dir == DirectionRTL {
		a.reverse = !a.reverse
	}
	a.crossReverse = !a.isRow && c.dir == DirectionRTL
	return a
}

// mainEdges returns the physical edges at the start and end of the main axis
// in flow order.
func (a axis) mainEdges() (lead, trail Edge) {
	switch {
	case a.isRow && !a.reverse:
		return EdgeLeft, EdgeRight
	case a.isRow:
		return EdgeRight, EdgeLeft
	case !a.reverse:
		return EdgeTop, EdgeBottom
	default:
		return EdgeBottom, EdgeTop
	}
}

// crossEdges returns the physical edges at the start and end of the cross axis.
func (a axis) crossEdges() (lead, trail Edge) {
	switch {
	case a.isRow:
		return EdgeTop, EdgeBottom
	case a.crossReverse:
		return EdgeRight, EdgeLeft
	default:
		return EdgeLeft, EdgeRight
	}
}

// layoutChildren arranges the children of a node within its content box.
// This implements a single-line flexbox algorithm.
func (c *calc) layoutChildren(node *Node) {
	style := &node.style
	inset := edges(node.layout.Padding).add(edges(node.layout.Border))
	innerWidth := math.Max(0, node.layout.Width-inset.Horizontal())
	innerHeight := math.Max(0, node.layout.Height-inset.Vertical())

	ax := c.axisFor(style.FlexDirection)
	mainSize, crossSize := innerWidth, innerHeight
	if !ax.isRow {
		mainSize, crossSize = crossSize, mainSize
	}
	mainLead, mainTrail := ax.mainEdges()
	crossLead, crossTrail := ax.crossEdges()

	// Phase 1: Compute base sizes and flex factors
	// Margin is part of the child's "outer size" in the flex calculation.
	items := make([]flexItem, 0, len(node.children))
	var absolutes []*Node
	totalOuter := 0.0
	totalGrow := 0.0
	totalScaledShrink := 0.0

	for _, child := range node.children {
		if child.style.Display == DisplayNone {
			c.hide(child)
			continue
		}
		if child.style.PositionType == PositionTypeAbsolute {
			absolutes = append(absolutes, child)
			continue
		}

		item := flexItem{
			node:   child,
			margin: resolveEdges(child.style.Margin, innerWidth),
			grow:   child.style.FlexGrow,
			shrink: child.style.FlexShrink,
		}
		item.autoMainLead = child.style.Margin[mainLead].IsAuto()
		item.autoMainTrail = child.style.Margin[mainTrail].IsAuto()
		item.autoCrossLead = child.style.Margin[crossLead].IsAuto()
		item.autoCrossTrail = child.style.Margin[crossTrail].IsAuto()

		mainMargin := item.margin[mainLead] + item.margin[mainTrail]
		item.baseSize = c.flexBasis(child, ax, mainSize, innerWidth, innerHeight, item.margin)
		item.baseSize = clampMain(child, ax, item.baseSize, innerWidth, innerHeight)

		totalOuter += item.baseSize + mainMargin
		totalGrow += item.grow
		totalScaledShrink += item.shrink * item.baseSize
		items = append(items, item)
	}

	freeSpace := 0.0
	if isDefined(mainSize) {
		freeSpace = mainSize - totalOuter
	}

	// Phase 2: Distribute free space
	for i := range items {
		item := &items[i]
		item.mainSize = item.baseSize
		switch {
		case freeSpace > 0 && totalGrow > 0:
			item.mainSize += freeSpace * item.grow / totalGrow
		case freeSpace < 0 && totalScaledShrink > 0:
			item.mainSize += freeSpace * item.shrink * item.baseSize / totalScaledShrink
		}

		// Phase 3: Apply min/max constraints
		item.mainSize = clampMain(item.node, ax, item.mainSize, innerWidth, innerHeight)
	}

	// Recalculate free space after min/max constraints
	used := 0.0
	autoMargins := 0
	for i := range items {
		used += items[i].mainSize + items[i].margin[mainLead] + items[i].margin[mainTrail]
		if items[i].autoMainLead {
			autoMargins++
		}
		if items[i].autoMainTrail {
			autoMargins++
		}
	}
	remaining := 0.0
	if isDefined(mainSize) {
		remaining = mainSize - used
	}

	// Auto margins absorb free space before justification does
	if remaining > 0 && autoMargins > 0 {
		share := remaining / float64(autoMargins)
		for i := range items {
			if items[i].autoMainLead {
				items[i].margin[mainLead] = share
			}
			if items[i].autoMainTrail {
				items[i].margin[mainTrail] = share
			}
		}
		remaining = 0
	}

	// Phase 4: Position children along main axis (justify)
	offset := calculateJustifyOffset(style.JustifyContent, remaining, len(items))
	spacing := calculateJustifySpacing(style.JustifyContent, remaining, len(items))

	for i := range items {
		item := &items[i]
		offset += item.margin[mainLead]
		item.mainPos = offset
		offset += item.mainSize + item.margin[mainTrail] + spacing
	}

	// Phase 5: Cross-axis sizing and alignment
	for i := range items {
		c.alignCross(&items[i], node, ax, crossSize, innerWidth, innerHeight, crossLead, crossTrail)
	}

	// Phase 6: Convert to boxes and recurse
	for i := range items {
		item := &items[i]
		child := item.node

		mainPos := item.mainPos
		if ax.reverse {
			mainPos = mainSize - mainPos - item.mainSize
		}
		crossPos := item.crossPos
		if ax.crossReverse {
			crossPos = crossSize - crossPos - item.cross
		}

		var left, top, width, height float64
		if ax.isRow {
			left, top = inset[EdgeLeft]+mainPos, inset[EdgeTop]+crossPos
			width, height = item.mainSize, item.cross
		} else {
			left, top = inset[EdgeLeft]+crossPos, inset[EdgeTop]+mainPos
			width, height = item.cross, item.mainSize
		}
		left += relativeOffset(child.style.Position, EdgeLeft, EdgeRight, innerWidth)
		top += relativeOffset(child.style.Position, EdgeTop, EdgeBottom, innerHeight)

		c.layoutNode(child, width, height, innerWidth)
		c.place(node, child, item.margin, left, top)
	}

	for _, child := range absolutes {
		c.layoutAbsolute(node, child, inset, innerWidth, innerHeight)
	}
}

// flexBasis resolves the hypothetical main size of child before flexing.
func (c *calc) flexBasis(child *Node, ax axis, mainSize, innerWidth, innerHeight float64, margin edges) float64 {
	if basis := child.style.FlexBasis.Resolve(mainSize); isDefined(basis) {
		return basis
	}

	var styled float64
	if ax.isRow {
		styled = child.style.Width.Resolve(innerWidth)
	} else {
		styled = child.style.Height.Resolve(innerHeight)
	}
	if isDefined(styled) {
		return styled
	}

	w, h := c.resolveSize(child, math.NaN(), math.NaN(),
		innerWidth-margin.Horizontal(), innerHeight-margin.Vertical(), innerWidth, innerHeight)
	if ax.isRow {
		return w
	}
	return h
}

// alignCross sizes an item on the cross axis and computes its cross offset.
func (c *calc) alignCross(item *flexItem, parent *Node, ax axis, crossSize, innerWidth, innerHeight float64, crossLead, crossTrail Edge) {
	child := item.node
	crossMargin := item.margin[crossLead] + item.margin[crossTrail]

	align := child.style.AlignSelf
	if align == AlignAuto {
		align = parent.style.AlignItems
	}

	var styled float64
	if ax.isRow {
		styled = child.style.Height.Resolve(innerHeight)
	} else {
		styled = child.style.Width.Resolve(innerWidth)
	}
	hasAutoMargin := item.autoCrossLead || item.autoCrossTrail
	ratio := child.style.AspectRatio

	switch {
	case isDefined(styled):
		item.cross = styled
	case isDefined(ratio) && ratio > 0:
		if ax.isRow {
			item.cross = item.mainSize / ratio
		} else {
			item.cross = item.mainSize * ratio
		}
	case align == AlignStretch && !hasAutoMargin && isDefined(crossSize):
		item.cross = crossSize - crossMargin
	default:
		if ax.isRow {
			_, item.cross = c.resolveSize(child, item.mainSize, math.NaN(),
				item.mainSize, crossSize-crossMargin, innerWidth, innerHeight)
		} else {
			item.cross, _ = c.resolveSize(child, math.NaN(), item.mainSize,
				crossSize-crossMargin, item.mainSize, innerWidth, innerHeight)
		}
	}
	item.cross = clampCross(child, ax, item.cross, innerWidth, innerHeight)

	free := orZero(crossSize) - item.cross - crossMargin
	switch {
	case item.autoCrossLead && item.autoCrossTrail:
		item.margin[crossLead] += math.Max(0, free) / 2
		item.margin[crossTrail] += math.Max(0, free) / 2
	case item.autoCrossLead:
		item.margin[crossLead] += math.Max(0, free)
	case item.autoCrossTrail:
		item.margin[crossTrail] += math.Max(0, free)
	default:
		item.crossPos = calculateAlignOffset(align, free)
	}
	item.crossPos += item.margin[crossLead]
}

// layoutAbsolute sizes and positions an out-of-flow child against the
// parent's padding box.
func (c *calc) layoutAbsolute(parent, child *Node, inset edges, innerWidth, innerHeight float64) {
	style := &child.style
	border := edges(parent.layout.Border)
	boxWidth := parent.layout.Width - border.Horizontal()
	boxHeight := parent.layout.Height - border.Vertical()
	margin := resolveEdges(style.Margin, innerWidth)

	left := style.Position[EdgeLeft].Resolve(boxWidth)
	right := style.Position[EdgeRight].Resolve(boxWidth)
	top := style.Position[EdgeTop].Resolve(boxHeight)
	bottom := style.Position[EdgeBottom].Resolve(boxHeight)

	width := style.Width.Resolve(boxWidth)
	if !isDefined(width) && isDefined(left) && isDefined(right) {
		width = boxWidth - left - right - margin.Horizontal()
	}
	height := style.Height.Resolve(boxHeight)
	if !isDefined(height) && isDefined(top) && isDefined(bottom) {
		height = boxHeight - top - bottom - margin.Vertical()
	}
	width, height = c.resolveSize(child, width, height,
		boxWidth-margin.Horizontal(), boxHeight-margin.Vertical(), boxWidth, boxHeight)

	var x, y float64
	switch {
	case isDefined(left):
		x = border[EdgeLeft] + left + margin[EdgeLeft]
	case isDefined(right):
		x = parent.layout.Width - border[EdgeRight] - right - margin[EdgeRight] - width
	default:
		x = inset[EdgeLeft] + margin[EdgeLeft]
	}
	switch {
	case isDefined(top):
		y = border[EdgeTop] + top + margin[EdgeTop]
	case isDefined(bottom):
		y = parent.layout.Height - border[EdgeBottom] - bottom - margin[EdgeBottom] - height
	default:
		y = inset[EdgeTop] + margin[EdgeTop]
	}

	c.layoutNode(child, width, height, boxWidth)
	c.place(parent, child, margin, x, y)
}

// place records child's final position relative to parent's border box.
func (c *calc) place(parent, child *Node, margin edges, left, top float64) {
	child.layout.Margin = margin
	child.layout.Left = left
	child.layout.Top = top
	child.layout.Right = parent.layout.Width - left - child.layout.Width
	child.layout.Bottom = parent.layout.Height - top - child.layout.Height
}

// relativeOffset returns the shift a relatively positioned node receives on
// one axis. The leading edge wins over the trailing one.
func relativeOffset(position [edgeCount]Value, lead, trail Edge, ownerSize float64) float64 {
	if v := position[lead].Resolve(ownerSize); isDefined(v) {
		return v
	}
	if v := position[trail].Resolve(ownerSize); isDefined(v) {
		return -v
	}
	return 0
}

// clampMain applies the child's min/max constraints on the main axis.
func clampMain(child *Node, ax axis, v, innerWidth, innerHeight float64) float64 {
	if ax.isRow {
		return clamp(v, child.style.MinWidth.Resolve(innerWidth), child.style.MaxWidth.Resolve(innerWidth))
	}
	return clamp(v, child.style.MinHeight.Resolve(innerHeight), child.style.MaxHeight.Resolve(innerHeight))
}

// clampCross applies the child's min/max constraints on the cross axis.
func clampCross(child *Node, ax axis, v, innerWidth, innerHeight float64) float64 {
	if ax.isRow {
		return clamp(v, child.style.MinHeight.Resolve(innerHeight), child.style.MaxHeight.Resolve(innerHeight))
	}
	return clamp(v, child.style.MinWidth.Resolve(innerWidth), child.style.MaxWidth.Resolve(innerWidth))
}

// calculateJustifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func calculateJustifyOffset(justify Justify, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyFlexEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / float64(itemCount*2)
	case JustifySpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default: // JustifyFlexStart, JustifySpaceBetween
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func calculateJustifySpacing(justify Justify, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / float64(itemCount-1)
	case JustifySpaceAround:
		return freeSpace / float64(itemCount)
	case JustifySpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default: // JustifyFlexStart, JustifyFlexEnd, JustifyCenter
		return 0
	}
}

// calculateAlignOffset returns the offset for positioning a child on the
// cross axis given the free cross space around it.
func calculateAlignOffset(align Align, free float64) float64 {
	switch align {
	case AlignFlexEnd:
		return free
	case AlignCenter:
		return free / 2
	default: // AlignFlexStart, AlignStretch, AlignBaseline, AlignSpace*
		return 0
	}
}
