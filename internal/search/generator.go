package search

// Generator names which directions a stage may turn freely (any of
// One/Two/Rev) and which it may only half-turn (Amt Two only, since a
// quarter turn there would leave the group the stage has already won).
type Generator struct {
	Free []Dir
	Half []Dir
}

// Moves lists every legal move for this generator. Half-turn-only
// directions are listed first since they're the cheaper, more
// goal-directed moves in every stage that has any.
func (g Generator) Moves() []Move {
	moves := make([]Move, 0, len(g.Half)+3*len(g.Free))
	for _, d := range g.Half {
		moves = append(moves, Move{Dir: d, Amt: Two})
	}
	for _, d := range g.Free {
		moves = append(moves, Move{Dir: d, Amt: One}, Move{Dir: d, Amt: Two}, Move{Dir: d, Amt: Rev})
	}
	return moves
}
