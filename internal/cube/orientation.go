package cube

import (
	"fmt"

	"github.com/cube-groups/solver/internal/solvererr"
)

// legalCornerTriples enumerates the eight legal (Up, Front, Right) corner
// color triples for a standard cube color scheme, per the external
// interface's color convention: a concrete cube is built from a front/top
// color pair, and the remaining four centers follow from these triples.
var legalCornerTriples = [8][3]Color{
	{Yellow, Green, Red},
	{Yellow, Orange, Green},
	{Yellow, Blue, Orange},
	{Yellow, Red, Blue},
	{White, Red, Green},
	{White, Green, Orange},
	{White, Orange, Blue},
	{White, Blue, Red},
}

// rightFromUpFront maps every legal (Up, Front) pair to the unique Right
// color forced by one of the eight corner triples (read in all three
// cyclic rotations, since each triple names one corner going clockwise).
var rightFromUpFront = buildRightFromUpFront()

func buildRightFromUpFront() map[[2]Color]Color {
	m := make(map[[2]Color]Color, 24)
	for _, t := range legalCornerTriples {
		rotations := [3][3]Color{t, {t[1], t[2], t[0]}, {t[2], t[0], t[1]}}
		for _, r := range rotations {
			up, front, right := r[0], r[1], r[2]
			m[[2]Color{up, front}] = right
		}
	}
	return m
}

// opposite returns the color on the opposite face in the standard scheme
// (Y<->W, R<->O, B<->G), matching the adjacent-index pairing of the Color
// enum itself.
func opposite(c Color) Color {
	return c ^ 1
}

// NewSolvedCubeOriented builds a solved 3x3x3 cube whose front center is
// `front` and whose top (Up) center is `top`. front and top must not be
// opposite colors. The remaining four centers are derived from the legal
// corner-triple table so the result is always a physically valid cube.
func NewSolvedCubeOriented(front, top Color) (*Cube, error) {
	if front == top || front == opposite(top) {
		return nil, fmt.Errorf("%w: front %s and top %s cannot share an axis", solvererr.ErrInvariantViolated, front, top)
	}
	right, ok := rightFromUpFront[[2]Color{top, front}]
	if !ok {
		return nil, fmt.Errorf("%w: no legal corner triple for top=%s front=%s", solvererr.ErrInvariantViolated, top, front)
	}

	c := &Cube{Size: 3}
	centers := map[Face]Color{
		Up:    top,
		Down:  opposite(top),
		Front: front,
		Back:  opposite(front),
		Right: right,
		Left:  opposite(right),
	}
	for face := Face(0); face < 6; face++ {
		color := centers[face]
		c.Faces[face] = make([][]Color, 3)
		for row := 0; row < 3; row++ {
			c.Faces[face][row] = make([]Color, 3)
			for col := 0; col < 3; col++ {
				c.Faces[face][row][col] = color
			}
		}
	}
	return c, nil
}
