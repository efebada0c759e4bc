// File: game/collision.go
package game

// Fits reports whether the piece, anchored at (col, row), is a legal
// position on the grid: every occupied cell must be inside the side and
// floor walls and must not overlap a landed cell. Cells above the top of
// the board are legal, so pieces may spawn partially off-grid.
//
// Fits is pure and total; it is the single legality check consulted
// before committing any move, rotation or gravity step.
func Fits(grid Grid, piece Piece, col, row int) bool {
	for _, offset := range piece.Offsets {
		if grid.Occupied(col+offset[0], row+offset[1]) {
			return false
		}
	}
	return true
}
