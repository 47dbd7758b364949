package mosaic

// constraintKind discriminates the Constraint variants.
type constraintKind uint8

const (
	constraintFill constraintKind = iota
	constraintFixed
	constraintPercent
	constraintMin
)

// Constraint is a sizing rule for a split child along the split axis.
//
// Fixed and Percent consume their exact share of the available space first
// (clamped to what remains), Min enforces a floor honored before remaining
// space is divided, and Fill children share whatever is left in proportion
// to their weights. The zero value is Fill(1).
type Constraint struct {
	kind   constraintKind
	cells  int     // Fixed, Min
	pct    float64 // Percent, 0-1 range
	weight int     // Fill
}

// Fixed sizes a child to exactly n cells along the split axis.
func Fixed(n int) Constraint {
	if n < 0 {
		n = 0
	}
	return Constraint{kind: constraintFixed, cells: n}
}

// Percent sizes a child to a fraction of the split's axis length.
// p is clamped to the 0-1 range.
func Percent(p float64) Constraint {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return Constraint{kind: constraintPercent, pct: p}
}

// Fill gives a child a weighted share of the space left over after Fixed,
// Percent and Min demands are met. Weights below 1 are treated as 1.
func Fill(weight int) Constraint {
	if weight < 1 {
		weight = 1
	}
	return Constraint{kind: constraintFill, weight: weight}
}

// Min gives a child at least n cells, plus a Fill(1) share of leftover space.
func Min(n int) Constraint {
	if n < 0 {
		n = 0
	}
	return Constraint{kind: constraintMin, cells: n}
}

// IsFill reports whether the constraint can take a share of leftover space.
// Fill always does; Min does only when a Fill sibling triggers distribution.
func (c Constraint) IsFill() bool {
	return c.kind == constraintFill || c.kind == constraintMin
}

// fillWeight returns the weight used during leftover distribution.
func (c Constraint) fillWeight() int {
	if c.kind == constraintFill {
		return c.weight
	}
	if c.kind == constraintMin {
		return 1
	}
	return 0
}

// floor returns the cells the constraint demands up front, before any
// leftover distribution.
func (c Constraint) floor() int {
	switch c.kind {
	case constraintFixed, constraintMin:
		return c.cells
	}
	return 0
}
