package cube

// facelets.go ties the grid-based Cube model to the named edge/corner
// positions that the sub-state layer (internal/substate) projects from,
// fixing *which* of a pair/triple plays which semantic role (orientation
// "side" facelet vs. the adjacent one) so EdgeOrient/CornerOrient can
// read a consistent bit off each piece.

// EdgeLabel names one of the twelve edge positions.
type EdgeLabel int

const (
	UF EdgeLabel = iota
	UB
	UL
	UR
	FL
	FR
	BL
	BR
	DF
	DB
	DL
	DR
)

var edgeLabelNames = [...]string{"UF", "UB", "UL", "UR", "FL", "FR", "BL", "BR", "DF", "DB", "DL", "DR"}

func (e EdgeLabel) String() string { return edgeLabelNames[e] }

// CornerLabel names one of the eight corner positions.
type CornerLabel int

const (
	FUL CornerLabel = iota
	FUR
	FDL
	FDR
	BUL
	BUR
	BDL
	BDR
)

var cornerLabelNames = [...]string{"FUL", "FUR", "FDL", "FDR", "BUL", "BUR", "BDL", "BDR"}

func (c CornerLabel) String() string { return cornerLabelNames[c] }

// edgeCoord holds the two facelet coordinates of an edge, in the order the
// orientation test needs: for UF/UB/DF/DB the first coordinate is on the
// U/D face; for the other eight it's on the L/R face.
type edgeCoord struct {
	first, second Coord
}

var edgeCoords = [...]edgeCoord{
	UF: {Coord{Up, 2, 1}, Coord{Front, 0, 1}},
	UB: {Coord{Up, 0, 1}, Coord{Back, 0, 1}},
	DF: {Coord{Down, 0, 1}, Coord{Front, 2, 1}},
	DB: {Coord{Down, 2, 1}, Coord{Back, 2, 1}},

	UL: {Coord{Left, 0, 1}, Coord{Up, 1, 0}},
	UR: {Coord{Right, 0, 1}, Coord{Up, 1, 2}},
	FL: {Coord{Left, 1, 2}, Coord{Front, 1, 0}},
	FR: {Coord{Right, 1, 0}, Coord{Front, 1, 2}},
	BL: {Coord{Left, 1, 0}, Coord{Back, 1, 2}},
	BR: {Coord{Right, 1, 2}, Coord{Back, 1, 0}},
	DL: {Coord{Left, 2, 1}, Coord{Down, 1, 0}},
	DR: {Coord{Right, 2, 1}, Coord{Down, 1, 2}},
}

// cornerCoord holds the three facelet coordinates of a corner, plus which
// one is the "side" facelet (on L or R) and which is "next", the facelet
// clockwise from the side facelet looking at the cubelet face-on. These
// are the only two the orientation test reads; the third is used only by
// position lookup.
type cornerCoord struct {
	side, next, third Coord
}

var cornerCoords = [...]cornerCoord{
	FUL: {Coord{Left, 0, 2}, Coord{Up, 2, 0}, Coord{Front, 0, 0}},
	FUR: {Coord{Right, 0, 0}, Coord{Front, 0, 2}, Coord{Up, 2, 2}},
	FDL: {Coord{Left, 2, 2}, Coord{Front, 2, 0}, Coord{Down, 0, 0}},
	FDR: {Coord{Right, 2, 0}, Coord{Down, 0, 2}, Coord{Front, 2, 2}},
	BUL: {Coord{Left, 0, 0}, Coord{Back, 0, 2}, Coord{Up, 0, 0}},
	BUR: {Coord{Right, 0, 2}, Coord{Up, 0, 2}, Coord{Back, 0, 0}},
	BDL: {Coord{Left, 2, 0}, Coord{Down, 2, 0}, Coord{Back, 2, 2}},
	BDR: {Coord{Right, 2, 2}, Coord{Back, 2, 0}, Coord{Down, 2, 2}},
}

// At returns the color at a facelet coordinate.
func (c *Cube) At(co Coord) Color {
	return c.Faces[co.Face][co.Row][co.Col]
}

// EdgeFacelets returns the two facelet colors of the given edge position,
// in (U/D-or-L/R-face, other-face) order as described on edgeCoord.
func (c *Cube) EdgeFacelets(e EdgeLabel) (Color, Color) {
	ec := edgeCoords[e]
	return c.At(ec.first), c.At(ec.second)
}

// CornerOrientFacelets returns the (side, next) facelet colors used by the
// corner orientation test.
func (c *Cube) CornerOrientFacelets(cl CornerLabel) (Color, Color) {
	cc := cornerCoords[cl]
	return c.At(cc.side), c.At(cc.next)
}

// CornerFacelets returns all three facelet colors of a corner position,
// order-independent (used for position identification only).
func (c *Cube) CornerFacelets(cl CornerLabel) (Color, Color, Color) {
	cc := cornerCoords[cl]
	return c.At(cc.side), c.At(cc.next), c.At(cc.third)
}

// SetEdgeFacelets writes the two facelet colors of the given edge
// position, in the same (first, second) order EdgeFacelets reads them.
// Used by scramble construction to place a cubelet directly rather than
// via move application.
func (c *Cube) SetEdgeFacelets(e EdgeLabel, first, second Color) {
	ec := edgeCoords[e]
	c.Faces[ec.first.Face][ec.first.Row][ec.first.Col] = first
	c.Faces[ec.second.Face][ec.second.Row][ec.second.Col] = second
}

// SetCornerFacelets writes the three facelet colors of the given corner
// position, in (side, next, third) order.
func (c *Cube) SetCornerFacelets(cl CornerLabel, side, next, third Color) {
	cc := cornerCoords[cl]
	c.Faces[cc.side.Face][cc.side.Row][cc.side.Col] = side
	c.Faces[cc.next.Face][cc.next.Row][cc.next.Col] = next
	c.Faces[cc.third.Face][cc.third.Row][cc.third.Col] = third
}

// EdgeCoords returns the two facelet coordinates of the given edge
// position, in the same order EdgeFacelets reads them. Exposed for
// collaborators (like internal/mask) that need the coordinates themselves
// rather than the colors currently sitting at them.
func EdgeCoords(e EdgeLabel) (Coord, Coord) {
	ec := edgeCoords[e]
	return ec.first, ec.second
}

// CornerCoordsAll returns all three facelet coordinates of the given
// corner position, in (side, next, third) order.
func CornerCoordsAll(cl CornerLabel) (Coord, Coord, Coord) {
	cc := cornerCoords[cl]
	return cc.side, cc.next, cc.third
}

// CenterColor returns the color of the given face's center facelet.
func (c *Cube) CenterColor(f Face) Color {
	return c.Faces[f][1][1]
}
