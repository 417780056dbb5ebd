package lpexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleProblem(t *testing.T) {
	p, err := Parse("maximize: 2x1 + 3x2", []string{
		"x1 + x2 <= 4",
		"x2 <= 2",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "x2"}, p.Variables)
	assert.Len(t, p.Constraints, 2)
	assert.Equal(t, []float64{4, 2}, p.RHS)

	objective, constraints := p.ToMatrices()
	assert.Equal(t, []float64{2, 3}, objective)
	assert.Equal(t, [][]float64{
		{1, 1, 4},
		{0, 1, 2},
	}, constraints)
}

func TestParseNegativeAndImplicitCoefficients(t *testing.T) {
	p, err := Parse("maximize: x1 - 2.5x2", []string{
		"-x1 + x2 <= 1",
	})
	require.NoError(t, err)

	objective, constraints := p.ToMatrices()
	assert.Equal(t, []float64{1, -2.5}, objective)
	assert.Equal(t, [][]float64{{-1, 1, 1}}, constraints)
}

func TestParseRejectsEquality(t *testing.T) {
	_, err := Parse("maximize: x1", []string{"x1 = 4"})
	assert.Error(t, err)
}

func TestParseRejectsGreaterEqual(t *testing.T) {
	_, err := Parse("maximize: x1", []string{"x1 >= 0"})
	assert.Error(t, err)
}

func TestParseRejectsMalformedTerm(t *testing.T) {
	_, err := Parse("maximize: 2*x1", nil)
	assert.Error(t, err)
}

func TestParseVariableOrderIsFirstAppearance(t *testing.T) {
	p, err := Parse("maximize: x2 + x1", []string{"x1 <= 1", "x3 <= 5"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x2", "x1", "x3"}, p.Variables)
}
