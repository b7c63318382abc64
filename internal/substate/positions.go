package substate

import "github.com/cube-groups/solver/internal/cube"

// CubePositions is the combined edge and corner permutation state used by
// the final stage of both pipelines, where orientation is already solved
// and only permutation parity remains.
type CubePositions struct {
	Edges   EdgePerm
	Corners CornerPerm
}

// SolvedCubePositions is both permutations at identity.
func SolvedCubePositions() CubePositions {
	return CubePositions{Edges: SolvedEdgePerm(), Corners: SolvedCornerPerm()}
}

// CubePositionsFromCube projects both permutations from a concrete cube.
func CubePositionsFromCube(c *cube.Cube) CubePositions {
	return CubePositions{Edges: EdgePermFromCube(c), Corners: CornerPermFromCube(c)}
}

// IsSolved reports whether both permutations are at identity.
func (s CubePositions) IsSolved() bool { return s.Edges.IsSolved() && s.Corners.IsSolved() }

func (s CubePositions) R() CubePositions {
	return CubePositions{Edges: s.Edges.R(), Corners: s.Corners.R()}
}

func (s CubePositions) L() CubePositions {
	return CubePositions{Edges: s.Edges.L(), Corners: s.Corners.L()}
}

func (s CubePositions) U() CubePositions {
	return CubePositions{Edges: s.Edges.U(), Corners: s.Corners.U()}
}

func (s CubePositions) D() CubePositions {
	return CubePositions{Edges: s.Edges.D(), Corners: s.Corners.D()}
}

func (s CubePositions) B() CubePositions {
	return CubePositions{Edges: s.Edges.B(), Corners: s.Corners.B()}
}

func (s CubePositions) F() CubePositions {
	return CubePositions{Edges: s.Edges.F(), Corners: s.Corners.F()}
}
