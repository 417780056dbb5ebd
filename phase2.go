package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// innerSimplex repeatedly selects entering/leaving variable pairs and
// pivots until the dictionary is optimal or unbounded.
// Entering and leaving ties are both broken by Bland's rule: the
// smallest variable identifier among eligible candidates, never the
// smallest position. All comparisons against zero are exact.
func innerSimplex(c, b *mat.Dense, v *float64, bs *basis, tr Tracer) Status {
	_, cCols := c.Dims()
	bRows, bCols := b.Dims()

	for iter := 0; ; iter++ {
		enteringCol := -1
		minEnteringID := math.MaxInt
		allNonzero := true
		for j := 0; j < cCols; j++ {
			val := c.At(0, j)
			if val == 0 {
				allNonzero = false
			}
			if val > 0 && bs.N[j] < minEnteringID {
				enteringCol = j
				minEnteringID = bs.N[j]
			}
		}
		if enteringCol == -1 {
			if allNonzero {
				tr.Tracef("iteration %d: optimal, unique (v=%g)", iter, *v)
				return StatusSingle
			}
			tr.Tracef("iteration %d: optimal, degenerate (v=%g)", iter, *v)
			return StatusMulti
		}

		leavingRow := -1
		minLeavingID := math.MaxInt
		minRatio := math.Inf(1)
		for i := 0; i < bRows; i++ {
			coef := b.At(i, enteringCol)
			if coef <= 0 {
				continue
			}
			ratio := b.At(i, bCols-1) / coef
			if ratio < minRatio || (ratio == minRatio && bs.B[i] < minLeavingID) {
				minRatio = ratio
				minLeavingID = bs.B[i]
				leavingRow = i
			}
		}
		if leavingRow == -1 {
			tr.Tracef("iteration %d: unbounded on entering id %d", iter, bs.N[enteringCol])
			return StatusUnbounded
		}

		tr.Tracef("iteration %d: pivot row %d (id %d) x col %d (id %d)", iter, leavingRow, bs.B[leavingRow], enteringCol, bs.N[enteringCol])
		pivot(c, b, v, bs, leavingRow, enteringCol)
	}
}
