package svm

import "math"

// Largest integer that a float64 represents exactly.
const maxSafeInt = 1<<53 - 1

// Train runs iters+1 Pegasos updates and then refits the bias.
// The step size schedule starts afresh on every call.
// An iters that is negative or greater than 2^53-1
// leaves the classifier unchanged.
// Train returns the classifier to allow chaining.
func (c *Classifier[L]) Train(iters int) *Classifier[L] {
	if iters < 0 || int64(iters) > maxSafeInt {
		return c
	}
	mode := "single"
	if c.k == 1 {
		c.w = c.train(iters)
	} else {
		mode = "batch"
		c.w = c.trainBatch(iters)
	}
	c.bias = c.fitBias()

	if c.logger != nil {
		c.logger.Printf("mode: %s, k: %d, iters: %d, norm: %.6g, bias: %.6g, objective: %.6g",
			mode, c.k, iters, Norm(c.w), c.bias, c.Objective())
	}
	return c
}

// TrainFloat is like Train for a count held as a float64.
// Unless iters is a non-negative integer no greater than 2^53-1,
// the classifier is left unchanged.
func (c *Classifier[L]) TrainFloat(iters float64) *Classifier[L] {
	if !(iters >= 0 && iters <= maxSafeInt) || iters != math.Trunc(iters) {
		return c
	}
	return c.Train(int(iters))
}

// Train updates the weights using one example per iteration.
func (c *Classifier[L]) train(iters int) []float64 {
	w := append([]float64(nil), c.w...)
	for t := 0; t <= iters; t++ {
		i := c.rand.Intn(c.x.Len())
		x, y := c.x.At(i), c.y[i]

		eta := 1 / (c.lambda * float64(t+1))
		d := 1 - eta*c.lambda
		if y*Dot(w, x) < 1 {
			// Hinge loss is active.
			w = Add(Scale(d, w), Scale(eta*y, x))
		} else {
			w = Scale(d, w)
		}
		if c.projection {
			w = c.project(w)
		}
	}
	return w
}

// TrainBatch updates the weights using k distinct examples per iteration.
// An iteration in which no example violates the margin changes nothing,
// not even the decay.
func (c *Classifier[L]) trainBatch(iters int) []float64 {
	w := append([]float64(nil), c.w...)
	for t := 0; t <= iters; t++ {
		var steps [][]float64
		for _, i := range c.sample() {
			x, y := c.x.At(i), c.y[i]
			if y*Dot(w, x) < 1 {
				steps = append(steps, Scale(y, x))
			}
		}
		if len(steps) == 0 {
			continue
		}

		eta := 1 / (c.lambda * float64(t+1))
		d := 1 - eta*c.lambda
		w = Add(Scale(d, w), Scale(eta/float64(c.k), Sum(steps)))
		if c.projection {
			w = c.project(w)
		}
	}
	return w
}

// Sample draws k distinct indices by rejection.
// Requires k <= number of examples, which New enforces.
func (c *Classifier[L]) sample() []int {
	var (
		idx  = make([]int, 0, c.k)
		seen = make(map[int]bool, c.k)
	)
	for len(idx) < c.k {
		i := c.rand.Intn(c.x.Len())
		if seen[i] {
			continue
		}
		seen[i] = true
		idx = append(idx, i)
	}
	return idx
}

// Project scales w onto the ball of radius 1/sqrt(lambda)
// if it lies outside.
func (c *Classifier[L]) project(w []float64) []float64 {
	p := (1 / math.Sqrt(c.lambda)) / Norm(w)
	if p < 1 {
		return Scale(p, w)
	}
	return w
}

// FitBias returns the largest score of any example labelled -1.
// Returns zero if there are no such examples or the bias is disabled.
func (c *Classifier[L]) fitBias() float64 {
	if !c.useBias {
		return 0
	}
	var (
		bias  = math.Inf(-1)
		found bool
	)
	for i := 0; i < c.x.Len(); i++ {
		if c.y[i] != -1 {
			continue
		}
		bias = math.Max(bias, Dot(c.w, c.x.At(i)))
		found = true
	}
	if !found {
		return 0
	}
	return bias
}
