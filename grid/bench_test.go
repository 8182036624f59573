package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// randomGrid builds an n×n grid with roughly density walls using a fixed seed.
func randomGrid(b *testing.B, n int, density float64) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			if rng.Float64() < density {
				values[r][c] = 1
			}
		}
	}
	values[0][0] = 0
	g, err := grid.From2D(values)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}
	return g
}

// BenchmarkReachable measures component collection on a 500×500 grid.
// Complexity: O(W×H)
func BenchmarkReachable(b *testing.B) {
	g := randomGrid(b, 500, 0.2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Reachable(grid.Cell{})
	}
}

// BenchmarkStepDistance measures corner-to-corner BFS on a 500×500 grid.
func BenchmarkStepDistance(b *testing.B) {
	g := randomGrid(b, 500, 0.2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.StepDistance(grid.Cell{}, grid.Cell{Row: 499, Col: 499})
	}
}
