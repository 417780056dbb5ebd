package simplex

import "gonum.org/v1/gonum/mat"

// tableau is the dense working area for one simplex run: an objective
// row of raw width n+1 and a constraint block of raw width n+2. Column
// 0 of both buffers is reserved for the Phase I auxiliary variable x0;
// it is uninitialized until Phase I's slow path writes to it, and is
// simply never read again once the logical views below drop it.
type tableau struct {
	objRaw  *mat.Dense // 1 x (n+1)
	bodyRaw *mat.Dense // m x (n+2)
	n, m    int
}

func newTableau(n, m int) *tableau {
	return &tableau{
		objRaw:  mat.NewDense(1, n+1, nil),
		bodyRaw: mat.NewDense(m, n+2, nil),
		n:       n,
		m:       m,
	}
}

// logicalObjective returns the view of the objective row once the
// reserved auxiliary column has been discarded: width n.
func (t *tableau) logicalObjective() *mat.Dense {
	return t.objRaw.Slice(0, 1, 1, t.n+1).(*mat.Dense)
}

// logicalBody returns the view of the constraint block once the
// reserved auxiliary column has been discarded: width n+1 (the last
// column is the right-hand side).
func (t *tableau) logicalBody() *mat.Dense {
	return t.bodyRaw.Slice(0, t.m, 1, t.n+2).(*mat.Dense)
}

// swapColumns exchanges columns col1 and col2 across every row of m.
func swapColumns(m *mat.Dense, col1, col2 int) {
	if col1 == col2 {
		return
	}
	rows, _ := m.Dims()
	for i := 0; i < rows; i++ {
		a, b := m.At(i, col1), m.At(i, col2)
		m.Set(i, col1, b)
		m.Set(i, col2, a)
	}
}
