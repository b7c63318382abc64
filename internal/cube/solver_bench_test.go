package cube

import (
	"testing"
)

// BenchmarkCubeOperations benchmarks core cube operations
func BenchmarkCubeOperations(b *testing.B) {
	b.Run("NewCube", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = NewCube(3)
		}
	})

	b.Run("IsSolved", func(b *testing.B) {
		cube := NewCube(3)
		moves, _ := ParseScramble("R U R' U'")
		cube.ApplyMoves(moves)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = cube.IsSolved()
		}
	})

	b.Run("String", func(b *testing.B) {
		cube := NewCube(3)
		moves, _ := ParseScramble("R U R' U'")
		cube.ApplyMoves(moves)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = cube.String()
		}
	})
}

// BenchmarkMoveOperations benchmarks move-related operations
func BenchmarkMoveOperations(b *testing.B) {
	b.Run("ParseScramble", func(b *testing.B) {
		scramble := "R U R' U' F R U R' U' F'"

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = ParseScramble(scramble)
		}
	})

	b.Run("ApplyMove", func(b *testing.B) {
		cube := NewCube(3)
		move := Move{Face: Right, Clockwise: true}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			cube.ApplyMove(move)
		}
	})

	b.Run("ApplyMoves", func(b *testing.B) {
		moves, _ := ParseScramble("R U R' U' F R U R' U' F'")

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			cube := NewCube(3)
			cube.ApplyMoves(moves)
		}
	})
}
