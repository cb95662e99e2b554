package svm

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// The helpers below never modify their arguments.
// Dot, Add and Sum panic if the vectors differ in length.

func mustMatch(op string, a, b []float64) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("svm: %s: length mismatch: %d and %d", op, len(a), len(b)))
	}
}

// Dot returns the inner product of a and b.
func Dot(a, b []float64) float64 {
	mustMatch("dot", a, b)
	return floats.Dot(a, b)
}

// Add returns a new vector a + b.
func Add(a, b []float64) []float64 {
	mustMatch("add", a, b)
	return floats.AddTo(make([]float64, len(a)), a, b)
}

// Sum returns the element-wise sum of one or more vectors.
func Sum(vs [][]float64) []float64 {
	if len(vs) == 0 {
		panic("svm: sum: no vectors")
	}
	s := append([]float64(nil), vs[0]...)
	for _, v := range vs[1:] {
		mustMatch("sum", s, v)
		floats.Add(s, v)
	}
	return s
}

// Scale returns a new vector c * a.
func Scale(c float64, a []float64) []float64 {
	return floats.ScaleTo(make([]float64, len(a)), c, a)
}

// Norm returns the L2 norm of a.
func Norm(a []float64) float64 {
	return floats.Norm(a, 2)
}
