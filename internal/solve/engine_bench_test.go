package solve_test

import (
	"testing"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/solve"
)

// BenchmarkEngineSolve benchmarks a full pipeline run, caches already warm.
func BenchmarkEngineSolve(b *testing.B) {
	benchmarks := []struct {
		name     string
		scramble string
		algo     solve.Algorithm
	}{
		{"thistlethwaite/2moves", "R U", solve.Thistlethwaite},
		{"thistlethwaite/4moves", "R U R' U'", solve.Thistlethwaite},
		{"kociemba/2moves", "R U", solve.Kociemba},
		{"kociemba/4moves", "R U R' U'", solve.Kociemba},
	}

	e := solve.NewEngine()
	e.Warm()

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			moves, _ := cube.ParseScramble(bm.scramble)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c := cube.NewCube(3)
				c.ApplyMoves(moves)
				if _, err := e.Solve(c, bm.algo); err != nil {
					b.Fatalf("solve failed: %v", err)
				}
			}
		})
	}
}
