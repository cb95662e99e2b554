package svm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLabels(t *testing.T) {
	outputs, y, err := encodeLabels([]string{"cat", "dog", "cat"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, outputs)
	assert.Equal(t, []float64{1, -1, 1}, y)

	outputs, y, err = encodeLabels([]string{"cat", "dog", "cat"}, []string{"dog", "cat"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dog", "cat"}, outputs)
	assert.Equal(t, []float64{-1, 1, -1}, y)

	ints, y, err := encodeLabels([]int{7, 7}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, ints)
	assert.Equal(t, []float64{1, 1}, y)

	// An explicit pair need not include every label in training.
	ints, y, err = encodeLabels([]int{2, 2}, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ints)
	assert.Equal(t, []float64{-1, -1}, y)
}

func TestEncodeLabels_errors(t *testing.T) {
	_, _, err := encodeLabels([]string{}, nil)
	assert.ErrorIs(t, err, ErrEmpty)
	_, _, err = encodeLabels([]int{1, 2, 1, 3}, nil)
	assert.ErrorIs(t, err, ErrTooManyLabels)
	_, _, err = encodeLabels([]int{1, 2, 3}, []int{1, 2})
	assert.ErrorIs(t, err, ErrOutputs)
	_, _, err = encodeLabels([]int{1, 2}, []int{1, 2, 3})
	assert.ErrorIs(t, err, ErrOutputs)
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, distinct([]string{"b", "a", "b", "c", "a"}))
}

func TestClone_normalize(t *testing.T) {
	x := [][]float64{{3, 4}, {0, 0}}
	set := clone(Slice(x), true)
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, set.At(0), 1e-12)
	assert.Equal(t, []float64{0, 0}, set.At(1))
	assert.Equal(t, []float64{3, 4}, x[0])

	set = clone(Slice(x), false)
	set.At(0)[0] = 1
	assert.Equal(t, []float64{3, 4}, x[0])
}

func TestSample_distinct(t *testing.T) {
	c, err := New(Slice{{1}, {2}, {3}, {4}}, []int{0, 1, 0, 1}, Options[int]{K: 4})
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		assert.ElementsMatch(t, []int{0, 1, 2, 3}, c.sample())
	}
}
