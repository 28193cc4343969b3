// Package tsp_test provides small fixtures shared across *_test.go files.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsolve/tsp"
)

const (
	// epsCost absorbs float summation order differences.
	epsCost = 1e-6

	// seedDet fixes every generated instance.
	seedDet = int64(7)
)

// fourNodes is the classic symmetric 4-node instance; its optimal tour
// 0→1→3→2→0 has length 80.
func fourNodes() [][]float64 {
	return [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}
}

func mustInstance(t *testing.T, dist [][]float64) *tsp.Instance {
	t.Helper()
	in, err := tsp.NewInstance(dist)
	require.NoError(t, err)
	return in
}

func mustTour(t *testing.T, in *tsp.Instance, nodes ...int) tsp.Tour {
	t.Helper()
	tour, err := tsp.NewTour(in, nodes)
	require.NoError(t, err)
	return tour
}

// euclid returns the Euclidean distance matrix of n random points in the
// unit square.
func euclid(n int, seed int64) [][]float64 {
	var (
		r    = rand.New(rand.NewSource(seed))
		pts  = make([][2]float64, n)
		dist = make([][]float64, n)
		i, j int
	)
	for i = range pts {
		pts[i] = [2]float64{r.Float64() * 100, r.Float64() * 100}
	}
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			dist[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
		}
	}
	return dist
}

// asymmetric returns a random asymmetric matrix with integer weights in [1,100].
func asymmetric(n int, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = float64(1 + r.Intn(100))
			}
		}
	}
	return dist
}

// hasArc reports whether the closed tour traverses from→to.
func hasArc(nodes []int, from, to int) bool {
	n := len(nodes)
	for i := range nodes {
		if nodes[i] == from && nodes[(i+1)%n] == to {
			return true
		}
	}
	return false
}
