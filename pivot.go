package simplex

import "gonum.org/v1/gonum/mat"

// pivot transforms the dictionary encoded by (c, b, v, bs) so that
// x_B[leavingRow] becomes non-basic and x_N[enteringCol] becomes
// basic, preserving the encoded linear relations.
//
// c and b may be either the raw Phase I buffers (aux column included)
// or the logical Phase II views (aux column discarded) — the algebra
// is identical either way, since b is always exactly one column wider
// than c (the extra column being the right-hand side).
//
// Precondition: b.At(leavingRow, enteringCol) != 0.
func pivot(c, b *mat.Dense, v *float64, bs *basis, leavingRow, enteringCol int) {
	bRows, bCols := b.Dims()
	coef := b.At(leavingRow, enteringCol)

	// Step 1: rewrite the leaving row to express the new basic variable.
	for j := 0; j < bCols; j++ {
		if j == enteringCol {
			b.Set(leavingRow, j, 1/coef)
		} else {
			b.Set(leavingRow, j, b.At(leavingRow, j)/coef)
		}
	}

	// Step 2: eliminate the entering column from every other row.
	for i := 0; i < bRows; i++ {
		if i == leavingRow {
			continue
		}
		rowCoef := b.At(i, enteringCol)
		if rowCoef == 0 {
			continue
		}
		for j := 0; j < bCols; j++ {
			if j == enteringCol {
				b.Set(i, j, -rowCoef*b.At(leavingRow, j))
			} else {
				b.Set(i, j, b.At(i, j)-rowCoef*b.At(leavingRow, j))
			}
		}
	}

	// Step 3: eliminate the entering column from the objective row.
	objCoef := c.At(0, enteringCol)
	for j := 0; j < bCols-1; j++ {
		if j == enteringCol {
			c.Set(0, j, -objCoef*b.At(leavingRow, j))
		} else {
			c.Set(0, j, c.At(0, j)-objCoef*b.At(leavingRow, j))
		}
	}

	// Step 4: update the tracked objective value.
	*v += objCoef * b.At(leavingRow, bCols-1)

	// Step 5: swap the variable identifiers.
	bs.N[enteringCol], bs.B[leavingRow] = bs.B[leavingRow], bs.N[enteringCol]
}
