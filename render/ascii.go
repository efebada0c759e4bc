package render

import (
	"fmt"
	"strings"

	"github.com/lguibr/blockfall/game"
)

// shapeRunes maps each landed tag to its board character. Index 0 is the
// empty cell.
var shapeRunes = []rune{'.', 'I', 'O', 'T', 'S', 'Z', 'J', 'L'}

const activeRune = '#'

func runeForTag(tag game.Tag) rune {
	if int(tag) < 0 || int(tag) >= len(shapeRunes) {
		return '?'
	}
	return shapeRunes[tag]
}

// SnapshotString renders a session snapshot as a bordered ascii board
// with the falling piece overlaid, followed by a status line.
func SnapshotString(snap game.Snapshot) string {
	active := make(map[[2]int]bool)
	if snap.Active != nil {
		for _, cell := range snap.Active.Cells {
			active[cell] = true
		}
	}

	var b strings.Builder
	b.WriteString("+" + strings.Repeat("-", snap.Width) + "+\n")
	for y := 0; y < snap.Height; y++ {
		b.WriteRune('|')
		for x := 0; x < snap.Width; x++ {
			switch {
			case active[[2]int{x, y}]:
				b.WriteRune(activeRune)
			case y < len(snap.Cells) && x < len(snap.Cells[y]):
				b.WriteRune(runeForTag(snap.Cells[y][x]))
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString("+" + strings.Repeat("-", snap.Width) + "+\n")

	fmt.Fprintf(&b, "score %d  level %d  lines %d  combo %d  next %s",
		snap.Score, snap.Level, snap.Lines, snap.Combo, snap.Next)
	if snap.Paused {
		b.WriteString("  [paused]")
	}
	if snap.GameOver {
		b.WriteString("  [game over]")
	}
	b.WriteRune('\n')

	return b.String()
}
