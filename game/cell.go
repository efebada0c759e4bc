// File: game/cell.go
package game

// Tag identifies what occupies a grid cell. TagEmpty marks free cells;
// every other value is the color identifier of the shape that landed there.
type Tag int

const TagEmpty Tag = 0

type Cell struct {
	X   int `json:"x"`
	Y   int `json:"y"`
	Tag Tag `json:"tag"`
}

func (c Cell) Empty() bool { return c.Tag == TagEmpty }

func NewCell(x, y int, tag Tag) Cell {
	return Cell{X: x, Y: y, Tag: tag}
}

func (c Cell) Compare(comparedCell Cell) bool {
	return c.X == comparedCell.X && c.Y == comparedCell.Y && c.Tag == comparedCell.Tag
}
