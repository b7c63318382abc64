package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/scramble"
	"github.com/cube-groups/solver/internal/solve"
	"github.com/spf13/cobra"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a fresh random scramble",
	Long: `Samples a uniformly random solvable cube, solves it with the
Thistlethwaite pipeline, and prints the inverse of that solution: a
scramble that takes a solved cube to the sampled random state.`,
	Run: func(cmd *cobra.Command, args []string) {
		seed, _ := cmd.Flags().GetInt64("seed")
		rng := rand.New(rand.NewSource(seed))
		if seed == 0 {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}

		c, err := scramble.Any(rng)
		if err != nil {
			fmt.Printf("Error sampling a random cube: %v\n", err)
			return
		}

		engine := solve.NewEngine()
		result, err := engine.Solve(c, solve.Thistlethwaite)
		if err != nil {
			fmt.Printf("Error solving sampled cube: %v\n", err)
			return
		}

		// Invert and collapse: the two stage-wise solves that produced
		// result.Moves do not know about each other's boundary move, so
		// inverting can leave adjacent same-face turns a scrambler would
		// never emit (e.g. "... R R' ..."); optimize them away.
		inverse := cube.OptimizeMoves(cube.InvertMoves(result.Moves))

		var sb strings.Builder
		for i, m := range inverse {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(m.String())
		}
		fmt.Println(sb.String())
	},
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().Int64("seed", 0, "Random seed (default: time-based)")
}
