package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoClusters builds a separable dataset: class 0 near the origin on
// feature 0, class 1 high on feature 1.
func twoClusters() ([][]float64, []int) {
	var x [][]float64
	var y []int
	for i := 0; i < 10; i++ {
		d := float64(i) / 100
		x = append(x, []float64{0.9 - d, 0.1 + d, 0.5})
		y = append(y, 0)
		x = append(x, []float64{0.1 + d, 0.9 - d, 0.5})
		y = append(y, 1)
	}
	return x, y
}

func TestFit_Errors(t *testing.T) {
	cfg := DefaultConfig()

	_, err := Fit(nil, nil, cfg)
	require.ErrorIs(t, err, ErrNoSamples)

	_, err = Fit([][]float64{{1}, {2}}, []int{1}, cfg)
	require.ErrorIs(t, err, ErrShape)

	_, err = Fit([][]float64{{1, 2}, {2}}, []int{1, 0}, cfg)
	require.ErrorIs(t, err, ErrShape)

	_, err = Fit([][]float64{{}, {}}, []int{1, 0}, cfg)
	require.ErrorIs(t, err, ErrShape)

	cfg.Trees = 0
	_, err = Fit([][]float64{{1}, {2}}, []int{1, 0}, cfg)
	require.Error(t, err)
}

func TestFit_SeparableData(t *testing.T) {
	x, y := twoClusters()
	f, err := Fit(x, y, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, f.Classes())
	assert.Equal(t, 3, f.Features())
	assert.Equal(t, 100, f.Trees())

	assert.Equal(t, 0, f.Predict([]float64{0.95, 0.05, 0.5}))
	assert.Equal(t, 1, f.Predict([]float64{0.05, 0.95, 0.5}))
}

func TestPredictProba_SumsToOne(t *testing.T) {
	x, y := twoClusters()
	f, err := Fit(x, y, DefaultConfig())
	require.NoError(t, err)

	for _, in := range [][]float64{{0.5, 0.5, 0.5}, {0, 0, 0}, {1, 1, 1}} {
		sum := 0.0
		for _, p := range f.PredictProba(in) {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestFit_Deterministic(t *testing.T) {
	x, y := twoClusters()
	cfg := DefaultConfig()
	cfg.Trees = 25

	a, err := Fit(x, y, cfg)
	require.NoError(t, err)
	b, err := Fit(x, y, cfg)
	require.NoError(t, err)

	for _, in := range [][]float64{{0.5, 0.5, 0.5}, {0.3, 0.6, 0}, {0.7, 0.2, 1}} {
		assert.Equal(t, a.PredictProba(in), b.PredictProba(in))
	}
}

func TestFit_LabelsTakenAsGiven(t *testing.T) {
	x := [][]float64{{0}, {1}, {2}, {3}}
	y := []int{7, 7, -1, -1}
	f, err := Fit(x, y, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 7}, f.Classes())
}

func TestFit_SingleClass(t *testing.T) {
	x := [][]float64{{0, 1}, {1, 0}, {0.5, 0.5}}
	f, err := Fit(x, []int{2, 2, 2}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, f.Predict([]float64{9, 9}))
}

func TestPredict_TieGoesToSmallestLabel(t *testing.T) {
	f := &Forest{
		classes:  []int{1, 3},
		features: 1,
		trees:    []tree{{nodes: []node{{dist: []float64{0.5, 0.5}}}}},
	}
	assert.Equal(t, 1, f.Predict([]float64{0}))
}

func TestPredict_ShortInputReadsZero(t *testing.T) {
	f := &Forest{
		classes:  []int{0, 1},
		features: 2,
		trees: []tree{{nodes: []node{
			{feature: 1, threshold: 0.5, left: 1, right: 2},
			{dist: []float64{1, 0}},
			{dist: []float64{0, 1}},
		}}},
	}
	assert.Equal(t, 0, f.Predict([]float64{1}))
	assert.Equal(t, 1, f.Predict([]float64{0, 1}))
}

func TestGini(t *testing.T) {
	assert.InDelta(t, 0.0, gini([]int{4, 0}, 4), 1e-12)
	assert.InDelta(t, 0.5, gini([]int{2, 2}, 4), 1e-12)
	assert.InDelta(t, 0.0, gini([]int{0, 0}, 0), 1e-12)
}
