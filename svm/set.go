package svm

import "fmt"

// Set is a read-only collection of training vectors.
type Set interface {
	Len() int
	Dim() int
	At(int) []float64
}

// Slice is a Set backed by an in-memory list of vectors.
type Slice [][]float64

func (set Slice) Len() int {
	return len(set)
}

func (set Slice) Dim() int {
	if len(set) == 0 {
		return 0
	}
	return len(set[0])
}

func (set Slice) At(i int) []float64 {
	return set[i]
}

// Dimension returns the dimension of
// the vectors in a set of examples.
// Returns an error if vectors of different dimension are found
// or there are no vectors.
func dimension(x Set) (int, error) {
	if x == nil || x.Len() == 0 {
		return 0, fmt.Errorf("%w: no training vectors", ErrEmpty)
	}
	n := len(x.At(0))
	for i := 0; i < x.Len(); i++ {
		if m := len(x.At(i)); n != m {
			return 0, fmt.Errorf("%w: vector %d has dim %d, want %d", ErrDimension, i, m, n)
		}
	}
	return n, nil
}

// clone copies the vectors so that the caller's slices are never aliased.
// If unit is set, every non-zero vector is scaled to unit L2 norm.
func clone(x Set, unit bool) Slice {
	set := make(Slice, x.Len())
	for i := range set {
		xi := x.At(i)
		if unit {
			set[i] = normalize(xi)
			continue
		}
		set[i] = append([]float64(nil), xi...)
	}
	return set
}

// Normalize returns x scaled to unit L2 norm.
// The zero vector is returned as a zero vector.
func normalize(x []float64) []float64 {
	n := Norm(x)
	if n == 0 {
		return make([]float64, len(x))
	}
	return Scale(1/n, x)
}
