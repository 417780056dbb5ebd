package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// initialize produces a feasible starting dictionary for the raw
// tableau t, or reports infeasibility. It operates
// entirely on the raw buffers (auxiliary column included); the caller
// takes logical views once it returns feasible.
//
// Returns the basis, the objective value v to carry into Phase II,
// and whether the problem is feasible.
func initialize(t *tableau, tr Tracer) (bs *basis, v float64, feasible bool) {
	n, m := t.n, t.m

	bs = &basis{
		N: make([]int, n+1),
		B: make([]int, m),
	}
	bs.N[0] = 0
	for i := 1; i <= n; i++ {
		bs.N[i] = i
	}
	for i := 0; i < m; i++ {
		bs.B[i] = n + 1 + i
	}

	rawC := t.objRaw
	rawB := t.bodyRaw
	_, bCols := rawB.Dims()
	rhsCol := bCols - 1

	k, min := 0, math.Inf(1)
	for i := 0; i < m; i++ {
		if val := rawB.At(i, rhsCol); val < min {
			min, k = val, i
		}
	}

	if rawB.At(k, rhsCol) >= 0 {
		tr.Tracef("phase I: origin feasible (min rhs row %d = %g)", k, min)
		bs.N = append([]int(nil), bs.N[1:]...)
		return bs, 0, true
	}

	tr.Tracef("phase I: origin infeasible (min rhs row %d = %g), building auxiliary problem", k, min)

	oldC := mat.DenseCopyOf(rawC)

	rawC.Zero()
	rawC.Set(0, 0, -1)
	for i := 0; i < m; i++ {
		rawB.Set(i, 0, -1)
	}

	pivot(rawC, rawB, &v, bs, k, 0)
	innerSimplex(rawC, rawB, &v, bs, tr)

	if p := indexOf(bs.B, 0); p != -1 {
		if rawB.At(p, rhsCol) > 0 {
			tr.Tracef("phase I: auxiliary optimum %g > 0, infeasible", rawB.At(p, rhsCol))
			return bs, v, false
		}
		pivot(rawC, rawB, &v, bs, p, 0)
	}

	q := indexOf(bs.N, 0)
	bs.N[q], bs.N[0] = bs.N[0], bs.N[q]
	swapColumns(rawC, q, 0)
	swapColumns(rawB, q, 0)

	rawC.Zero()
	v = 0
	for i := 1; i <= n; i++ {
		if q := indexOf(bs.N, i); q != -1 {
			rawC.Set(0, q, rawC.At(0, q)+oldC.At(0, i))
			continue
		}
		q := indexOf(bs.B, i)
		for col := 0; col <= n; col++ {
			rawC.Set(0, col, rawC.At(0, col)-oldC.At(0, i)*rawB.At(q, col))
		}
		v += oldC.At(0, i) * rawB.At(q, rhsCol)
	}

	bs.N = bs.N[1:]
	tr.Tracef("phase I: feasible dictionary built (v=%g)", v)
	return bs, v, true
}
