// File: game/placement.go
package game

// PlacementResult reports what happened when a piece locked into the grid.
type PlacementResult struct {
	// Cleared is the number of rows completed and removed by this
	// placement. Bounded by 4: a single piece spans at most four rows.
	Cleared int
	// ClearedRows holds the removed row indices, top to bottom.
	ClearedRows []int
	// AboveTop is set when any cell of the piece locked above the
	// visible board. Those cells are silently dropped, and the flag is
	// the top-out signal consumed by the session controller.
	AboveTop bool
}

// Place writes the piece's occupied cells into the grid at its current
// anchor, then detects and removes every completed row in a single
// pass. Cells above row 0 never reach the board; they only raise the
// AboveTop flag.
func Place(grid Grid, piece Piece) PlacementResult {
	result := PlacementResult{}

	for _, cell := range piece.Cells() {
		if cell[1] < 0 {
			result.AboveTop = true
			continue
		}
		grid.Set(cell[0], cell[1], piece.Shape.Tag())
	}

	full := grid.FullRows()
	if len(full) > 0 {
		grid.RemoveRows(full)
	}

	result.Cleared = len(full)
	result.ClearedRows = full
	return result
}
