// Package mask projects a cube down to a "shadowed" subset of facelets
// relevant to a particular subgoal — white cross today — blanking the
// rest to cube.Grey, the same wildcard CFEN already uses for "don't
// care." A masked cube is still a plain *cube.Cube, so it turns with the
// ordinary move algebra; only the solved-check and the no-op comparison
// the search uses need to know Grey is a wildcard.
package mask

import "github.com/cube-groups/solver/internal/cube"

var allEdges = [12]cube.EdgeLabel{
	cube.UF, cube.UB, cube.UL, cube.UR, cube.FL, cube.FR,
	cube.BL, cube.BR, cube.DF, cube.DB, cube.DL, cube.DR,
}

// ToWhiteCross projects c to the white-cross mask: the six centers and
// any edge with a white facelet stay known; everything else becomes Grey.
func ToWhiteCross(c *cube.Cube) *cube.Cube {
	var keep [6][3][3]bool
	for f := cube.Face(0); f < 6; f++ {
		keep[f][1][1] = true
	}
	for _, e := range allEdges {
		a, b := cube.EdgeCoords(e)
		if c.At(a) == cube.White || c.At(b) == cube.White {
			keep[a.Face][a.Row][a.Col] = true
			keep[b.Face][b.Row][b.Col] = true
		}
	}

	out := c.Clone()
	for f := cube.Face(0); f < 6; f++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if !keep[f][row][col] {
					out.Faces[f][row][col] = cube.Grey
				}
			}
		}
	}
	return out
}

// IsSolved reports whether every known facelet on each face matches that
// face's center, treating Grey as matching anything.
func IsSolved(m *cube.Cube) bool {
	for f := cube.Face(0); f < 6; f++ {
		center := m.Faces[f][1][1]
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				v := m.Faces[f][row][col]
				if v != cube.Grey && v != center {
					return false
				}
			}
		}
	}
	return true
}

// Equal does an exact facelet comparison, Grey included: two masked
// cubes are equal only if they agree everywhere, known or not. Used to
// detect a move that had no visible effect under the mask.
func Equal(a, b *cube.Cube) bool {
	for f := cube.Face(0); f < 6; f++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if a.Faces[f][row][col] != b.Faces[f][row][col] {
					return false
				}
			}
		}
	}
	return true
}
