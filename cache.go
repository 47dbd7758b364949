package mosaic

// Cache memoizes solver output. A cached mapping is valid exactly when its
// generation matches the tree's current generation and the root rect used
// for the solve is unchanged; any tree mutation bumps the generation, which
// is the single invalidation rule.
type Cache struct {
	gen    uint64
	bounds Rect
	rects  map[NodeID]Rect
	solves int
}

// GetOrSolve returns the memoized rectangle mapping when it is still valid
// for (tree generation, bounds), re-invoking the solver otherwise. The
// returned map is shared; callers must not mutate it.
func (c *Cache) GetOrSolve(t *Tree, bounds Rect) map[NodeID]Rect {
	if c.rects != nil && c.gen == t.Generation() && c.bounds == bounds {
		return c.rects
	}
	c.rects = Solve(t, bounds)
	c.gen = t.Generation()
	c.bounds = bounds
	c.solves++
	return c.rects
}

// Solves returns how many times the solver has actually run. Useful for
// asserting cache behavior.
func (c *Cache) Solves() int {
	return c.solves
}

// Invalidate drops the memoized mapping, forcing the next GetOrSolve to
// re-solve even if the tree is unchanged.
func (c *Cache) Invalidate() {
	c.rects = nil
}
