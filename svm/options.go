package svm

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
)

var (
	ErrEmpty         = errors.New("svm: empty training set")
	ErrDimension     = errors.New("svm: dimension mismatch")
	ErrTooManyLabels = errors.New("svm: too many distinct labels")
	ErrOutputs       = errors.New("svm: invalid outputs")
	ErrLambda        = errors.New("svm: invalid lambda")
	ErrBatchSize     = errors.New("svm: invalid batch size")
)

// Rand is the source of example indices.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Options configures a Classifier.
// The zero value selects the defaults.
type Options[L comparable] struct {
	// Lambda is the regularization strength.
	// Zero selects 1.
	Lambda float64
	// K is the number of examples drawn per iteration.
	// Zero selects 1.
	K int
	// Weights are the initial weights.
	// Nil selects the zero vector.
	Weights []float64
	// NoProjection disables projecting the weights
	// onto the ball of radius 1/sqrt(Lambda).
	NoProjection bool
	// Outputs fixes the label order: Outputs[0] is the positive class.
	// Nil selects the order in which labels first appear.
	Outputs []L
	// Normalize scales every training vector to unit L2 norm.
	// Vectors given to Predict and Decision are scaled the same way.
	Normalize bool
	// NoBias thresholds the decision at zero instead of
	// at the largest negative-class score.
	NoBias bool
	// Rand is the random source.
	// Nil selects the global source of math/rand.
	Rand Rand
	// Logger receives a summary line after every call to Train.
	Logger *log.Logger
}

// Settings resolves defaults and checks the numeric options
// against a training set of n examples of dimension dim.
func (opts Options[L]) settings(n, dim int) (lambda float64, k int, w []float64, err error) {
	lambda = opts.Lambda
	switch {
	case lambda == 0:
		lambda = 1
	case lambda < 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0):
		return 0, 0, nil, fmt.Errorf("%w: %g", ErrLambda, lambda)
	}

	k = opts.K
	if k == 0 {
		k = 1
	}
	if k < 0 || k > n {
		return 0, 0, nil, fmt.Errorf("%w: %d with %d examples", ErrBatchSize, k, n)
	}

	if opts.Weights == nil {
		w = make([]float64, dim)
	} else {
		if len(opts.Weights) != dim {
			return 0, 0, nil, fmt.Errorf("%w: weights have dim %d, want %d", ErrDimension, len(opts.Weights), dim)
		}
		w = append([]float64(nil), opts.Weights...)
	}
	return lambda, k, w, nil
}
