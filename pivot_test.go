package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// TestPivotBasicExchange pivots the textbook dictionary for
// maximize x1+2x2 s.t. x1+x2<=4, x2<=2 by hand and checks the
// resulting dictionary against the algebra by hand.
func TestPivotBasicExchange(t *testing.T) {
	// non-basic x1(1), x2(2); basic s1(3), s2(4)
	bs := &basis{N: []int{1, 2}, B: []int{3, 4}}
	c := mat.NewDense(1, 2, []float64{1, 2})
	b := mat.NewDense(2, 3, []float64{
		1, 1, 4,
		0, 1, 2,
	})
	var v float64

	// entering x2 (col 1), leaving s2 (row 1): s2's row has the
	// tightest ratio (2/1 < 4/1) on column x2.
	pivot(c, b, &v, bs, 1, 1)

	assert.Equal(t, []int{1, 4}, bs.N)
	assert.Equal(t, []int{3, 2}, bs.B)
	assert.InDelta(t, 4.0, v, 1e-12)
	assert.InDelta(t, 1.0, c.At(0, 0), 1e-12)
	assert.InDelta(t, -2.0, c.At(0, 1), 1e-12)
	assert.InDelta(t, 1.0, b.At(0, 0), 1e-12)
	assert.InDelta(t, -1.0, b.At(0, 1), 1e-12)
	assert.InDelta(t, 2.0, b.At(0, 2), 1e-12)
	assert.InDelta(t, 0.0, b.At(1, 0), 1e-12)
	assert.InDelta(t, 1.0, b.At(1, 1), 1e-12)
	assert.InDelta(t, 2.0, b.At(1, 2), 1e-12)
}

// TestPivotInvolution checks the pivot-involution property:
// pivoting back on the column/row that now hold the just-ousted
// variable restores the prior dictionary.
func TestPivotInvolution(t *testing.T) {
	bs := &basis{N: []int{1, 2}, B: []int{3, 4}}
	c := mat.NewDense(1, 2, []float64{1, 2})
	cOrig := mat.DenseCopyOf(c)
	b := mat.NewDense(2, 3, []float64{
		1, 1, 4,
		0, 1, 2,
	})
	bOrig := mat.DenseCopyOf(b)
	var v float64

	pivot(c, b, &v, bs, 1, 1)

	// x2 (id 2) is now basic at row 1; pivoting it back out by
	// entering the column that now holds id 4 (the ousted s2, now
	// non-basic at position 1) and leaving row 1 undoes the exchange.
	enteringCol := indexOf(bs.N, 4)
	pivot(c, b, &v, bs, 1, enteringCol)

	assert.Equal(t, []int{1, 2}, bs.N)
	assert.Equal(t, []int{3, 4}, bs.B)
	assert.InDelta(t, 0.0, v, 1e-9)
	for j := 0; j < 2; j++ {
		assert.InDelta(t, cOrig.At(0, j), c.At(0, j), 1e-9)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, bOrig.At(i, j), b.At(i, j), 1e-9)
		}
	}
}
