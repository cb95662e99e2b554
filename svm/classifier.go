package svm

import (
	"fmt"
	"log"
	"math"
)

// Classifier is a linear two-class SVM trained with Pegasos.
// It is not safe for concurrent use while Train is running.
type Classifier[L comparable] struct {
	x       Set
	y       []float64
	outputs []L

	lambda     float64
	k          int
	projection bool
	normalize  bool
	useBias    bool
	rand       Rand
	logger     *log.Logger

	w    []float64
	bias float64
}

// New creates a classifier for the examples x.At(i) with labels y[i].
// The vectors must all have the same dimension.
// At most two distinct labels may appear in y.
// The examples are copied.
func New[L comparable](x Set, y []L, opts Options[L]) (*Classifier[L], error) {
	dim, err := dimension(x)
	if err != nil {
		return nil, err
	}
	if len(y) != x.Len() {
		return nil, fmt.Errorf("%w: %d vectors, %d labels", ErrDimension, x.Len(), len(y))
	}
	outputs, enc, err := encodeLabels(y, opts.Outputs)
	if err != nil {
		return nil, err
	}
	lambda, k, w, err := opts.settings(x.Len(), dim)
	if err != nil {
		return nil, err
	}
	r := opts.Rand
	if r == nil {
		r = globalRand{}
	}
	return &Classifier[L]{
		x:          clone(x, opts.Normalize),
		y:          enc,
		outputs:    outputs,
		lambda:     lambda,
		k:          k,
		projection: !opts.NoProjection,
		normalize:  opts.Normalize,
		useBias:    !opts.NoBias,
		rand:       r,
		logger:     opts.Logger,
		w:          w,
	}, nil
}

// Weights returns a copy of the weight vector.
func (c *Classifier[L]) Weights() []float64 {
	return append([]float64(nil), c.w...)
}

// Bias returns the threshold fitted by the last call to Train.
func (c *Classifier[L]) Bias() float64 { return c.bias }

// Lambda returns the regularization strength in use.
func (c *Classifier[L]) Lambda() float64 { return c.lambda }

// K returns the number of examples drawn per iteration.
func (c *Classifier[L]) K() int { return c.k }

// Outputs returns the labels in encoding order.
// Outputs()[0] is the positive class.
func (c *Classifier[L]) Outputs() []L {
	return append([]L(nil), c.outputs...)
}

// Decision returns w·x - bias.
func (c *Classifier[L]) Decision(x []float64) (float64, error) {
	if len(x) != c.x.Dim() {
		return 0, fmt.Errorf("%w: input has dim %d, want %d", ErrDimension, len(x), c.x.Dim())
	}
	if c.normalize {
		x = normalize(x)
	}
	return Dot(c.w, x) - c.bias, nil
}

// Predict returns Outputs()[0] if Decision(x) > 0 and Outputs()[1] otherwise.
// If only one label was seen in training, it is always returned.
func (c *Classifier[L]) Predict(x []float64) (L, error) {
	var label L
	f, err := c.Decision(x)
	if err != nil {
		return label, err
	}
	if len(c.outputs) == 1 || f > 0 {
		return c.outputs[0], nil
	}
	return c.outputs[1], nil
}

// Objective evaluates the primal objective
//
//	lambda/2 |w|^2 + 1/n sum_i max(0, 1 - y[i] dot(x[i], w))
//
// on the training set.
func (c *Classifier[L]) Objective() float64 {
	return primal(c.w, c.x, c.y, c.lambda)
}

func primal(w []float64, x Set, y []float64, lambda float64) float64 {
	var loss float64
	for i := 0; i < x.Len(); i++ {
		loss += math.Max(0, 1-y[i]*Dot(x.At(i), w))
	}
	return 0.5*lambda*Dot(w, w) + loss/float64(x.Len())
}
