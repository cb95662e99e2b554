package svm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, -5, 6}

	assert.Equal(t, 12.0, Dot(a, b))
	assert.Equal(t, []float64{5, -3, 9}, Add(a, b))
	assert.Equal(t, []float64{2, 4, 6}, Scale(2, a))
	assert.Equal(t, []float64{6, -1, 12}, Sum([][]float64{a, b, a}))
	assert.InDelta(t, math.Sqrt(14), Norm(a), 1e-12)

	// Inputs are left untouched.
	assert.Equal(t, []float64{1, 2, 3}, a)
	assert.Equal(t, []float64{4, -5, 6}, b)
}

func TestVec_lengthMismatch(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{1, 2, 3}
	assert.Panics(t, func() { Dot(a, b) })
	assert.Panics(t, func() { Add(a, b) })
	assert.Panics(t, func() { Sum([][]float64{a, b}) })
	assert.Panics(t, func() { Sum(nil) })
}
