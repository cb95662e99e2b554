package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/jvlmdr/go-pegasos/svm"
)

func main() {
	var (
		numPos    = flag.Int("pos", 1000, "number of positive examples")
		numNeg    = flag.Int("neg", 1000, "number of negative examples")
		dim       = flag.Int("dim", 100, "dimension of the examples")
		sigma     = flag.Float64("sigma", 1, "standard deviation of each cloud")
		lambda    = flag.Float64("lambda", 1e-2, "regularization strength")
		iters     = flag.Int("iters", 10000, "number of iterations")
		batch     = flag.Int("k", 10, "mini-batch size")
		normalize = flag.Bool("normalize", false, "scale examples to unit norm")
		seed      = flag.Int64("seed", 1, "random seed")
	)
	flag.Parse()

	r := rand.New(rand.NewSource(*seed))
	u1 := randVec(r, *dim, 1)
	u2 := randVec(r, *dim, 1)
	x1 := randCloud(r, *numPos, u1, *sigma)
	x2 := randCloud(r, *numNeg, u2, *sigma)
	x, y := mergePosNeg(x1, x2)

	for i, j := range r.Perm(len(x)) {
		x[i], x[j] = x[j], x[i]
		y[i], y[j] = y[j], y[i]
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	for _, k := range []int{1, *batch} {
		c, err := svm.New(svm.Slice(x), y, svm.Options[string]{
			Lambda:    *lambda,
			K:         k,
			Outputs:   []string{"pos", "neg"},
			Normalize: *normalize,
			Rand:      r,
			Logger:    logger,
		})
		if err != nil {
			log.Fatal(err)
		}
		c.Train(*iters)

		acc, err := accuracy(c, x, y)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("k: %d, bias: %.6g, accuracy: %.4g", k, c.Bias(), acc)
		fmt.Println(c.Weights())
	}
}

func accuracy(c *svm.Classifier[string], x [][]float64, y []string) (float64, error) {
	var n int
	for i, xi := range x {
		label, err := c.Predict(xi)
		if err != nil {
			return 0, err
		}
		if label == y[i] {
			n++
		}
	}
	return float64(n) / float64(len(x)), nil
}

func randVec(r *rand.Rand, n int, sigma float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = sigma * r.NormFloat64()
	}
	return x
}

func randCloud(r *rand.Rand, n int, mean []float64, sigma float64) [][]float64 {
	x := make([][]float64, n)
	for i := range x {
		x[i] = make([]float64, len(mean))
		for j := range x[i] {
			x[i][j] = mean[j] + sigma*r.NormFloat64()
		}
	}
	return x
}

func mergePosNeg(pos, neg [][]float64) ([][]float64, []string) {
	x := make([][]float64, 0, len(pos)+len(neg))
	y := make([]string, 0, len(pos)+len(neg))
	for _, xi := range pos {
		x = append(x, xi)
		y = append(y, "pos")
	}
	for _, xi := range neg {
		x = append(x, xi)
		y = append(y, "neg")
	}
	return x, y
}
