// File: game/grid.go
package game

// Grid is the fixed-size occupancy matrix of the playing field, indexed
// [row][col] with row 0 at the top. Dimensions never change for the
// lifetime of a session; only the placement engine mutates cell content.
type Grid [][]Cell

// NewGrid creates an empty width x height grid. Non-positive dimensions
// indicate a host bug and panic.
func NewGrid(width, height int) Grid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}
	grid := make(Grid, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
		for x := range grid[y] {
			grid[y][x] = Cell{X: x, Y: y, Tag: TagEmpty}
		}
	}
	return grid
}

func (grid Grid) Width() int {
	if len(grid) == 0 {
		return 0
	}
	return len(grid[0])
}

func (grid Grid) Height() int { return len(grid) }

// Occupied treats out-of-bounds columns and the region below the floor as
// solid walls, and the region above the top as open space, so callers can
// probe any coordinate without bounds checks of their own.
func (grid Grid) Occupied(col, row int) bool {
	if col < 0 || col >= grid.Width() {
		return true
	}
	if row >= grid.Height() {
		return true
	}
	if row < 0 {
		return false
	}
	return !grid[row][col].Empty()
}

// Set writes a tag into an in-bounds cell. Out-of-bounds writes are a
// silent no-op; the placement engine relies on this to drop cells that
// lock above the visible board.
func (grid Grid) Set(col, row int, tag Tag) {
	if col < 0 || col >= grid.Width() || row < 0 || row >= grid.Height() {
		return
	}
	grid[row][col].Tag = tag
}

// FullRows scans every row once and returns the indices, top to bottom,
// of rows with no empty cell.
func (grid Grid) FullRows() []int {
	var full []int
	for y, row := range grid {
		complete := true
		for x := range row {
			if row[x].Empty() {
				complete = false
				break
			}
		}
		if complete {
			full = append(full, y)
		}
	}
	return full
}

// RemoveRows deletes the given rows in one batch and prepends the same
// number of empty rows at the top. Surviving rows keep their relative
// order. Removing all rows together avoids the index-shift bugs of
// one-at-a-time removal.
func (grid Grid) RemoveRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	remove := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < grid.Height() {
			remove[y] = true
		}
	}
	if len(remove) == 0 {
		return
	}

	kept := make([][]Cell, 0, grid.Height())
	for y, row := range grid {
		if !remove[y] {
			kept = append(kept, row)
		}
	}

	missing := grid.Height() - len(kept)
	width := grid.Width()
	for y := range grid {
		if y < missing {
			fresh := make([]Cell, width)
			for x := range fresh {
				fresh[x] = Cell{X: x, Y: y, Tag: TagEmpty}
			}
			grid[y] = fresh
			continue
		}
		row := kept[y-missing]
		for x := range row {
			row[x].Y = y
		}
		grid[y] = row
	}
}

// CountOccupied returns the number of non-empty cells.
func (grid Grid) CountOccupied() int {
	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if !cell.Empty() {
				count++
			}
		}
	}
	return count
}

// Compare checks if two grids are identical in size and cell content.
// Handles nil grids correctly.
func (grid Grid) Compare(comparedGrid Grid) bool {
	if grid == nil && comparedGrid == nil {
		return true
	}
	if grid == nil || comparedGrid == nil {
		return false
	}
	if len(grid) != len(comparedGrid) {
		return false
	}
	for y := range grid {
		if len(grid[y]) != len(comparedGrid[y]) {
			return false
		}
		for x := range grid[y] {
			if !grid[y][x].Compare(comparedGrid[y][x]) {
				return false
			}
		}
	}
	return true
}

// Tags flattens the grid into rows of tags for snapshots.
func (grid Grid) Tags() [][]Tag {
	tags := make([][]Tag, grid.Height())
	for y, row := range grid {
		tags[y] = make([]Tag, len(row))
		for x := range row {
			tags[y][x] = row[x].Tag
		}
	}
	return tags
}
