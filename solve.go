package mosaic

// Solve computes an absolute rectangle for every node in the tree, dividing
// bounds top-down. The solve is pure: the same tree structure and bounds
// always produce an identical mapping, which is what makes caching by
// generation valid.
//
// Within a split, Fixed and Percent children consume their share first in
// declaration order, clamped to the space still available; Min children
// reserve their floor the same way. When at least one Fill child exists,
// space left over is divided among Fill and Min children proportionally to
// their weights, rounding down, with the leftover cells handed one each to
// the first such children in order so the total always sums exactly. With
// no Fill child, leftover space stays unassigned. Overcommitted layouts
// never fail: children that run out of space are clipped to zero-size rects
// in declaration order.
func Solve(t *Tree, bounds Rect) map[NodeID]Rect {
	rects := make(map[NodeID]Rect, len(t.nodes))
	solveNode(t, t.root, bounds, rects)
	return rects
}

func solveNode(t *Tree, id NodeID, bounds Rect, rects map[NodeID]Rect) {
	n := &t.nodes[id]
	rects[id] = bounds

	switch n.kind {
	case nodeLeaf:
		return

	case nodeFloat:
		if len(n.children) > 0 {
			solveNode(t, n.children[0], bounds, rects)
		}
		return
	}

	var anchored []NodeID
	for _, c := range n.children {
		if t.nodes[c].kind == nodeFloat {
			// Floats are positioned against this split's bounds and take no
			// part in sibling space division.
			f := &t.nodes[c]
			r := Rect{X: bounds.X + f.rect.X, Y: bounds.Y + f.rect.Y, W: f.rect.W, H: f.rect.H}
			solveNode(t, c, r.Clamp(bounds), rects)
			continue
		}
		anchored = append(anchored, c)
	}
	if len(anchored) == 0 {
		return
	}

	length := bounds.W
	if n.axis == Vertical {
		length = bounds.H
	}

	extents := splitExtents(t, anchored, length)

	offset := 0
	for i, c := range anchored {
		var r Rect
		if n.axis == Horizontal {
			r = Rect{X: bounds.X + offset, Y: bounds.Y, W: extents[i], H: bounds.H}
		} else {
			r = Rect{X: bounds.X, Y: bounds.Y + offset, W: bounds.W, H: extents[i]}
		}
		offset += extents[i]
		solveNode(t, c, r, rects)
	}
}

// splitExtents divides length cells among the anchored children of a split.
func splitExtents(t *Tree, children []NodeID, length int) []int {
	extents := make([]int, len(children))
	remaining := length

	// First pass: up-front demands in declaration order. When demands exceed
	// the available length, later children are simply starved.
	for i, c := range children {
		con := t.nodes[c].constraint
		want := con.floor()
		if con.kind == constraintPercent {
			want = int(con.pct * float64(length))
		}
		if want > remaining {
			want = remaining
		}
		extents[i] = want
		remaining -= want
	}

	// Second pass: weighted distribution of what is left among Fill and Min
	// children. Only a Fill child triggers it; with none, Min children keep
	// their floors and the leftover stays unassigned.
	hasFill := false
	totalWeight := 0
	for _, c := range children {
		con := t.nodes[c].constraint
		if con.kind == constraintFill {
			hasFill = true
		}
		totalWeight += con.fillWeight()
	}
	if !hasFill || remaining <= 0 {
		return extents
	}

	distributed := 0
	for i, c := range children {
		w := t.nodes[c].constraint.fillWeight()
		if w == 0 {
			continue
		}
		share := remaining * w / totalWeight
		extents[i] += share
		distributed += share
	}

	// Leftover cells from rounding down go to the first sharing children in
	// declaration order, one each, so the extents sum exactly to length.
	leftover := remaining - distributed
	for i, c := range children {
		if leftover == 0 {
			break
		}
		if !t.nodes[c].constraint.IsFill() {
			continue
		}
		extents[i]++
		leftover--
	}

	return extents
}
