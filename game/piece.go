// File: game/piece.go
package game

import (
	"github.com/lguibr/blockfall/utils"
)

// Shape is the closed set of falling pieces. The zero value is invalid so
// that Shape doubles as the cell tag of the landed piece.
type Shape int

const (
	ShapeI Shape = iota + 1
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// AllShapes lists the catalog in a stable order, used by the bag source.
var AllShapes = []Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	}
	return "?"
}

func (s Shape) Tag() Tag { return Tag(s) }

// shapeSpec holds the base offsets of a shape inside its square bounding
// box. Rotation happens inside the box, so the box size is part of the
// catalog entry.
type shapeSpec struct {
	box     int
	offsets [][2]int
}

var catalog = map[Shape]shapeSpec{
	ShapeI: {box: 4, offsets: [][2]int{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
	ShapeO: {box: 2, offsets: [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	ShapeT: {box: 3, offsets: [][2]int{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
	ShapeS: {box: 3, offsets: [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}}},
	ShapeZ: {box: 3, offsets: [][2]int{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	ShapeJ: {box: 3, offsets: [][2]int{{0, 0}, {0, 1}, {1, 1}, {2, 1}}},
	ShapeL: {box: 3, offsets: [][2]int{{2, 0}, {0, 1}, {1, 1}, {2, 1}}},
}

// Piece is a falling shape: its catalog identity, the offsets of its
// occupied cells in the current rotation, and the board position of its
// bounding box's top-left corner.
type Piece struct {
	Shape   Shape    `json:"shape"`
	Box     int      `json:"box"`
	Offsets [][2]int `json:"offsets"`
	Col     int      `json:"col"`
	Row     int      `json:"row"`
}

// NewPiece builds the spawn piece for a shape: centered horizontally,
// with its topmost occupied cells sitting on the top visible row.
func NewPiece(shape Shape, gridWidth int) Piece {
	spec, ok := catalog[shape]
	if !ok {
		panic("unknown shape in piece catalog")
	}
	offsets := make([][2]int, len(spec.offsets))
	copy(offsets, spec.offsets)

	topmost := spec.box
	for _, offset := range offsets {
		if offset[1] < topmost {
			topmost = offset[1]
		}
	}

	return Piece{
		Shape:   shape,
		Box:     spec.box,
		Offsets: offsets,
		Col:     (gridWidth - spec.box) / 2,
		Row:     -topmost,
	}
}

// Rotated returns a copy of the piece turned a quarter clockwise inside
// its bounding box: (x, y) -> (box-1-y, x). Pure; the input piece is
// untouched. Fully symmetric shapes come back with the same occupied
// set, so rotation is always well-defined, never an error.
func (p Piece) Rotated() Piece {
	rotated := p
	rotated.Offsets = make([][2]int, len(p.Offsets))
	for i, offset := range p.Offsets {
		x, y := utils.TransformVector(utils.RotationCW, offset[0], offset[1])
		rotated.Offsets[i] = [2]int{x + p.Box - 1, y}
	}
	return rotated
}

// Cells returns the absolute board coordinates of the occupied cells.
func (p Piece) Cells() [][2]int {
	cells := make([][2]int, len(p.Offsets))
	for i, offset := range p.Offsets {
		cells[i] = [2]int{p.Col + offset[0], p.Row + offset[1]}
	}
	return cells
}

// HasOffset reports whether the piece occupies the given box coordinate.
func (p Piece) HasOffset(x, y int) bool {
	for _, offset := range p.Offsets {
		if offset[0] == x && offset[1] == y {
			return true
		}
	}
	return false
}
