package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/cube-groups/solver/internal/cfen"
	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/solve"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled cube using the specified algorithm.
The scramble may be given positionally or with --scramble.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble, _ := cmd.Flags().GetString("scramble")
		if len(args) == 1 {
			scramble = args[0]
		}
		algorithm, _ := cmd.Flags().GetString("algorithm")
		dimension, _ := cmd.Flags().GetInt("dimension")
		headless, _ := cmd.Flags().GetBool("headless")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")
		maskName, _ := cmd.Flags().GetString("mask")
		optimize, _ := cmd.Flags().GetBool("optimize")

		// Create cube from starting position
		var c *cube.Cube
		if startCfen != "" {
			// Parse starting CFEN
			cfenState, err := cfen.ParseCFEN(startCfen)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing starting CFEN: %v\n", err)
				}
				os.Exit(1)
			}

			// Validate dimension if specified
			if dimension != 3 && cfenState.Dimension != dimension {
				if !headless {
					fmt.Printf("CFEN dimension %d doesn't match specified dimension %d\n",
						cfenState.Dimension, dimension)
				}
				os.Exit(1)
			}
			dimension = cfenState.Dimension // Use CFEN dimension

			c, err = cfenState.ToCube()
			if err != nil {
				if !headless {
					fmt.Printf("Error converting CFEN to cube: %v\n", err)
				}
				os.Exit(1)
			}
		} else {
			// Start with solved cube
			c = cube.NewCube(dimension)
		}

		if !headless {
			fmt.Printf("Solving %dx%dx%d cube with scramble: %s\n", dimension, dimension, dimension, scramble)
			fmt.Printf("Using algorithm: %s\n", algorithm)
			if startCfen != "" {
				fmt.Printf("Starting from CFEN: %s\n", startCfen)
			}
		}

		// Apply scramble to cube
		if scramble != "" {
			moves, err := cube.ParseScramble(scramble)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing scramble: %v\n", err)
				}
				os.Exit(1)
			}
			c.ApplyMoves(moves)
		}

		if !headless {
			useColor, _ := cmd.Flags().GetBool("color")
			useLetters, _ := cmd.Flags().GetBool("letters")
			useUnicode := useColor && !useLetters

			fmt.Printf("\nCube state after scramble:\n%s\n", c.UnfoldedString(useColor, useUnicode))
		}

		if dimension != 3 {
			if !headless {
				fmt.Printf("Error: solving only supports 3x3x3 cubes (got dimension %d)\n", dimension)
			}
			os.Exit(1)
		}

		engine := solve.NewEngine()

		var result *solve.Result
		var err error
		if maskName != "" {
			if maskName != "white-cross" {
				if !headless {
					fmt.Printf("Error: unknown mask %q (want \"white-cross\")\n", maskName)
				}
				os.Exit(1)
			}
			result, err = engine.SolveWhiteCross(c)
		} else {
			var algo solve.Algorithm
			algo, err = solve.ParseAlgorithm(algorithm)
			if err == nil {
				result, err = engine.Solve(c, algo)
			}
		}
		if err != nil {
			if !headless {
				fmt.Printf("Error solving cube: %v\n", err)
			}
			os.Exit(1)
		}

		// Apply solution to get final state
		c.ApplyMoves(result.Moves)

		// Format solution; --optimize collapses same-face redundancy left
		// at stage boundaries without touching the cube state above, which
		// was already advanced with the authoritative, unoptimized moves.
		printedMoves := result.Moves
		if optimize {
			printedMoves = cube.OptimizeMoves(result.Moves)
		}
		var solutionStr strings.Builder
		for i, move := range printedMoves {
			if i > 0 {
				solutionStr.WriteString(" ")
			}
			solutionStr.WriteString(move.String())
		}

		if useCfenOutput {
			// CFEN output mode
			cfenStr, err := cfen.GenerateCFEN(c)
			if err != nil {
				if !headless {
					fmt.Printf("Error generating CFEN: %v\n", err)
				}
				os.Exit(1)
			}
			fmt.Print(cfenStr)
		} else if headless {
			// Headless mode: output only the space-separated move list
			fmt.Print(solutionStr.String())
		} else {
			// Normal mode: full output
			fmt.Printf("Solution: %s\n", solutionStr.String())
			if optimize && len(printedMoves) != len(result.Moves) {
				fmt.Printf("Steps: %d (optimized from %d)\n", len(printedMoves), len(result.Moves))
			} else {
				fmt.Printf("Steps: %d\n", len(printedMoves))
			}
			fmt.Printf("Stage lengths: %v\n", result.StageLengths)
			fmt.Printf("Time: %v\n", result.Duration)
		}
	},
}

func init() {
	solveCmd.Flags().StringP("algorithm", "a", "thistlethwaite", "Solving algorithm to use (thistlethwaite, kociemba)")
	solveCmd.Flags().IntP("dimension", "d", 3, "Cube dimension (solving supports 3x3x3 only)")
	solveCmd.Flags().BoolP("color", "c", false, "Use colored output (Unicode blocks by default)")
	solveCmd.Flags().Bool("letters", false, "Use letters instead of Unicode blocks when using --color")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("cfen", false, "Output final cube state as CFEN string instead of moves")
	solveCmd.Flags().String("start", "", "Starting cube state as CFEN string (default: solved)")
	solveCmd.Flags().String("scramble", "", "Scramble string (alternative to the positional argument)")
	solveCmd.Flags().String("mask", "", "Solve only a masked subgoal instead of the full cube (white-cross)")
	solveCmd.Flags().Bool("optimize", false, "Collapse redundant same-face moves left at stage boundaries before printing")
}
