// File: game/piece_test.go
package game

import (
	"testing"
)

func TestPiece_CatalogShapes(t *testing.T) {
	for _, shape := range AllShapes {
		piece := NewPiece(shape, 10)
		if len(piece.Offsets) != 4 {
			t.Errorf("Shape %s: expected 4 offsets, got %d", shape, len(piece.Offsets))
		}
		seen := map[[2]int]bool{}
		for _, offset := range piece.Offsets {
			if offset[0] < 0 || offset[0] >= piece.Box || offset[1] < 0 || offset[1] >= piece.Box {
				t.Errorf("Shape %s: offset %v outside its %dx%d box", shape, offset, piece.Box, piece.Box)
			}
			if seen[offset] {
				t.Errorf("Shape %s: duplicate offset %v", shape, offset)
			}
			seen[offset] = true
		}
	}
}

func TestPiece_SpawnAnchor(t *testing.T) {
	testCases := []struct {
		shape       Shape
		gridWidth   int
		expectedCol int
	}{
		{ShapeI, 10, 3},
		{ShapeO, 10, 4},
		{ShapeT, 10, 3},
		{ShapeI, 8, 2},
		{ShapeI, 4, 0},
	}
	for _, tc := range testCases {
		piece := NewPiece(tc.shape, tc.gridWidth)
		if piece.Col != tc.expectedCol {
			t.Errorf("Shape %s on width %d: expected spawn col %d, got %d", tc.shape, tc.gridWidth, tc.expectedCol, piece.Col)
		}
		topmost := piece.Box
		for _, cell := range piece.Cells() {
			if cell[1] < topmost {
				topmost = cell[1]
			}
		}
		if topmost != 0 {
			t.Errorf("Shape %s: expected topmost spawn cells on row 0, got %d", tc.shape, topmost)
		}
	}
}

func TestPiece_SpawnCellsOfI(t *testing.T) {
	piece := NewPiece(ShapeI, 10)
	expected := [][2]int{{3, 0}, {4, 0}, {5, 0}, {6, 0}}
	cells := piece.Cells()
	for i, cell := range expected {
		if cells[i] != cell {
			t.Errorf("Expected I spawn cell %v, got %v", cell, cells[i])
		}
	}
}

func TestPiece_FourRotationsAreIdentity(t *testing.T) {
	for _, shape := range AllShapes {
		original := NewPiece(shape, 10)
		rotated := original.Rotated().Rotated().Rotated().Rotated()
		for i, offset := range original.Offsets {
			if rotated.Offsets[i] != offset {
				t.Errorf("Shape %s: four rotations changed offset %v into %v", shape, offset, rotated.Offsets[i])
			}
		}
	}
}

func TestPiece_RotationIsPure(t *testing.T) {
	piece := NewPiece(ShapeT, 10)
	before := make([][2]int, len(piece.Offsets))
	copy(before, piece.Offsets)

	_ = piece.Rotated()

	for i, offset := range piece.Offsets {
		if offset != before[i] {
			t.Errorf("Rotated mutated the input piece: offset %v became %v", before[i], offset)
		}
	}
}

func TestPiece_RotatingOIsANoOp(t *testing.T) {
	piece := NewPiece(ShapeO, 10)
	rotated := piece.Rotated()
	for _, offset := range piece.Offsets {
		if !rotated.HasOffset(offset[0], offset[1]) {
			t.Errorf("Rotating O lost offset %v", offset)
		}
	}
}

func TestPiece_RotatedIGoesVertical(t *testing.T) {
	piece := NewPiece(ShapeI, 10)
	rotated := piece.Rotated()
	for y := 0; y < 4; y++ {
		if !rotated.HasOffset(2, y) {
			t.Errorf("Expected vertical I to occupy box column 2 at y=%d, offsets: %v", y, rotated.Offsets)
		}
	}
}

func TestShape_TagsAndNames(t *testing.T) {
	for _, shape := range AllShapes {
		if shape.Tag() == TagEmpty {
			t.Errorf("Shape %s maps to the empty tag", shape)
		}
		if shape.String() == "?" {
			t.Errorf("Shape %d has no name", shape)
		}
	}
}
