// Package forest implements a small random forest classifier over dense
// feature vectors: bootstrapped CART trees with Gini impurity whose leaf class
// distributions are averaged at prediction time.
package forest

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

var (
	// ErrNoSamples is returned when Fit is called without training rows.
	ErrNoSamples = errors.New("forest: no training samples")

	// ErrShape is returned when rows and labels do not line up.
	ErrShape = errors.New("forest: inconsistent training data shape")
)

// Forest is a trained ensemble. It is immutable and safe for concurrent use.
type Forest struct {
	classes  []int
	features int
	trees    []tree
}

// Fit grows a forest on rows x with integer labels y. Labels are taken as
// given; any integer value becomes a class.
func Fit(x [][]float64, y []int, cfg Config) (*Forest, error) {
	if len(x) == 0 {
		return nil, ErrNoSamples
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d rows, %d labels", ErrShape, len(x), len(y))
	}
	features := len(x[0])
	if features == 0 {
		return nil, fmt.Errorf("%w: rows have no features", ErrShape)
	}
	for i, row := range x {
		if len(row) != features {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrShape, i, len(row), features)
		}
	}
	if cfg.Trees <= 0 {
		return nil, fmt.Errorf("forest: tree count must be > 0, got %d", cfg.Trees)
	}
	if cfg.MinSamplesSplit < 2 {
		cfg.MinSamplesSplit = 2
	}
	if cfg.MaxFeatures <= 0 {
		cfg.MaxFeatures = max(1, int(math.Sqrt(float64(features))))
	}
	cfg.MaxFeatures = min(cfg.MaxFeatures, features)

	classes := slices.Clone(y)
	slices.Sort(classes)
	classes = slices.Compact(classes)

	labels := make([]int, len(y))
	for i, label := range y {
		labels[i], _ = slices.BinarySearch(classes, label)
	}

	f := &Forest{
		classes:  classes,
		features: features,
		trees:    make([]tree, cfg.Trees),
	}
	n := len(x)
	for t := range f.trees {
		rng := rand.New(rand.NewPCG(cfg.Seed, uint64(t)))
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.IntN(n)
		}
		b := &builder{
			x:       x,
			labels:  labels,
			classes: len(classes),
			cfg:     cfg,
			rng:     rng,
		}
		b.grow(sample)
		f.trees[t] = tree{nodes: b.nodes}
	}
	return f, nil
}

// Classes returns the sorted set of labels seen during training.
func (f *Forest) Classes() []int {
	return slices.Clone(f.classes)
}

// Features returns the expected input vector length.
func (f *Forest) Features() int {
	return f.features
}

// Trees returns the number of trees in the ensemble.
func (f *Forest) Trees() int {
	return len(f.trees)
}

// PredictProba returns the averaged class probabilities for x, aligned with
// Classes(). Missing trailing features are read as zero.
func (f *Forest) PredictProba(x []float64) []float64 {
	proba := make([]float64, len(f.classes))
	for _, t := range f.trees {
		for c, p := range t.leaf(x).dist {
			proba[c] += p
		}
	}
	for c := range proba {
		proba[c] /= float64(len(f.trees))
	}
	return proba
}

// Predict returns the most probable label for x. Ties go to the smallest
// label.
func (f *Forest) Predict(x []float64) int {
	proba := f.PredictProba(x)
	best := 0
	for c := 1; c < len(proba); c++ {
		if proba[c] > proba[best] {
			best = c
		}
	}
	return f.classes[best]
}
