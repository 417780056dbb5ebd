package simplex

import "gonum.org/v1/gonum/mat"

// Solve maximizes cᵀx subject to A x ≤ b, x ≥ 0.
//
// objective is a 1×n row of coefficients c₁…cₙ. constraints is an
// m×(n+1) matrix whose first n columns are A and whose last column is
// b. Neither argument is modified.
//
// Solve returns a Status and, for StatusSingle and StatusMulti, the
// optimal vector x* (length n). For StatusUnbounded and
// StatusInfeasible the returned vector is nil.
//
// Argument-shape violations (objective not a single row, or a column
// count mismatch between objective and constraints) are reported as
// an error; they are not a solver outcome and are never retried.
func Solve(objective, constraints *mat.Dense) (Status, []float64, error) {
	rows, n := objective.Dims()
	if rows != 1 {
		return 0, nil, errObjectiveNotRow
	}
	if n == 0 {
		return 0, nil, errEmptyObjective
	}
	m, cols := constraints.Dims()
	if cols != n+1 {
		return 0, nil, errShapeMismatch
	}
	if m == 0 {
		return 0, nil, errNegativeRowCount
	}

	tr := defaultTracer

	t := newTableau(n, m)
	for j := 0; j < n; j++ {
		t.objRaw.Set(0, j+1, objective.At(0, j))
	}
	for i := 0; i < m; i++ {
		for j := 0; j <= n; j++ {
			t.bodyRaw.Set(i, j+1, constraints.At(i, j))
		}
	}

	bs, v, feasible := initialize(t, tr)
	if !feasible {
		return StatusInfeasible, nil, nil
	}

	c := t.logicalObjective()
	b := t.logicalBody()

	status := innerSimplex(c, b, &v, bs, tr)
	if status == StatusUnbounded {
		return StatusUnbounded, nil, nil
	}

	return status, extractSolution(n, bs, b), nil
}

// extractSolution reads x* from the final dictionary: for
// each original variable, its value if basic, zero otherwise.
func extractSolution(n int, bs *basis, b *mat.Dense) []float64 {
	_, bCols := b.Dims()
	x := make([]float64, n)
	for i := 1; i <= n; i++ {
		if pos := indexOf(bs.B, i); pos != -1 {
			x[i-1] = b.At(pos, bCols-1)
		}
	}
	return x
}
