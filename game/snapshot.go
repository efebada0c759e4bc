// File: game/snapshot.go
package game

// PieceView is the render-facing description of a piece: its identity
// and the absolute board cells it occupies.
type PieceView struct {
	Shape Shape    `json:"shape"`
	Name  string   `json:"name"`
	Cells [][2]int `json:"cells"`
}

// Snapshot is the read-only view of a session handed to renderers. It is
// a full copy; mutating it never touches session state.
type Snapshot struct {
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Cells    [][]Tag    `json:"cells"`
	Active   *PieceView `json:"active"`
	Next     string     `json:"next"`
	Score    int        `json:"score"`
	Level    int        `json:"level"`
	Lines    int        `json:"lines"`
	Combo    int        `json:"combo"`
	Paused   bool       `json:"paused"`
	GameOver bool       `json:"gameOver"`
}

// Snapshot captures the current session state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Width:    s.grid.Width(),
		Height:   s.grid.Height(),
		Cells:    s.grid.Tags(),
		Next:     s.next.String(),
		Score:    s.score,
		Level:    s.Level(),
		Lines:    s.lines,
		Combo:    s.combo,
		Paused:   s.paused,
		GameOver: s.gameOver,
	}
	if s.hasActive {
		snap.Active = &PieceView{
			Shape: s.active.Shape,
			Name:  s.active.Shape.String(),
			Cells: s.active.Cells(),
		}
	}
	return snap
}
