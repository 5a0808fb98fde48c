package forest

import (
	"math/rand/v2"
	"sort"
)

// node is either a split (left/right set) or a leaf (dist set).
type node struct {
	feature   int
	threshold float64
	left      int
	right     int
	dist      []float64
}

func (n *node) isLeaf() bool {
	return n.dist != nil
}

type tree struct {
	nodes []node
}

// leaf walks from the root to the leaf x falls into.
func (t tree) leaf(x []float64) *node {
	n := &t.nodes[0]
	for !n.isLeaf() {
		var v float64
		if n.feature < len(x) {
			v = x[n.feature]
		}
		if v <= n.threshold {
			n = &t.nodes[n.left]
		} else {
			n = &t.nodes[n.right]
		}
	}
	return n
}

// builder grows one tree depth-first into a flat node slice.
type builder struct {
	x       [][]float64
	labels  []int
	classes int
	cfg     Config
	rng     *rand.Rand
	nodes   []node
}

type split struct {
	feature   int
	threshold float64
	impurity  float64
}

// grow adds the subtree for sample and returns its root index.
func (b *builder) grow(sample []int) int {
	idx := len(b.nodes)
	b.nodes = append(b.nodes, node{})

	counts := b.count(sample)
	if len(sample) < b.cfg.MinSamplesSplit || pure(counts) {
		b.nodes[idx].dist = distribution(counts, len(sample))
		return idx
	}

	best, ok := b.bestSplit(sample)
	if !ok {
		b.nodes[idx].dist = distribution(counts, len(sample))
		return idx
	}

	var left, right []int
	for _, i := range sample {
		if b.x[i][best.feature] <= best.threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	l := b.grow(left)
	r := b.grow(right)
	b.nodes[idx] = node{feature: best.feature, threshold: best.threshold, left: l, right: r}
	return idx
}

// bestSplit examines features in random order until MaxFeatures non-constant
// ones have been scored, and returns the lowest weighted Gini split.
func (b *builder) bestSplit(sample []int) (split, bool) {
	features := len(b.x[0])
	order := b.rng.Perm(features)

	best := split{impurity: 2}
	found := false
	considered := 0
	sorted := make([]int, len(sample))

	for _, f := range order {
		if considered >= b.cfg.MaxFeatures {
			break
		}
		copy(sorted, sample)
		sort.SliceStable(sorted, func(a, c int) bool {
			return b.x[sorted[a]][f] < b.x[sorted[c]][f]
		})
		lo, hi := b.x[sorted[0]][f], b.x[sorted[len(sorted)-1]][f]
		if lo == hi {
			continue
		}
		considered++

		s, ok := b.scanFeature(f, sorted)
		if ok && s.impurity < best.impurity {
			best = s
			found = true
		}
	}
	return best, found
}

// scanFeature finds the best threshold on feature f for samples already
// sorted by that feature.
func (b *builder) scanFeature(f int, sorted []int) (split, bool) {
	n := len(sorted)
	right := b.count(sorted)
	left := make([]int, b.classes)

	best := split{feature: f, impurity: 2}
	found := false
	for i := 1; i < n; i++ {
		c := b.labels[sorted[i-1]]
		left[c]++
		right[c]--

		prev, cur := b.x[sorted[i-1]][f], b.x[sorted[i]][f]
		if prev == cur {
			continue
		}
		imp := (float64(i)*gini(left, i) + float64(n-i)*gini(right, n-i)) / float64(n)
		if imp < best.impurity {
			threshold := prev + (cur-prev)/2
			if threshold >= cur {
				threshold = prev
			}
			best.threshold = threshold
			best.impurity = imp
			found = true
		}
	}
	return best, found
}

func (b *builder) count(sample []int) []int {
	counts := make([]int, b.classes)
	for _, i := range sample {
		counts[b.labels[i]]++
	}
	return counts
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		sum += p * p
	}
	return 1 - sum
}

func pure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

func distribution(counts []int, n int) []float64 {
	dist := make([]float64, len(counts))
	if n == 0 {
		return dist
	}
	for c, k := range counts {
		dist[c] = float64(k) / float64(n)
	}
	return dist
}
