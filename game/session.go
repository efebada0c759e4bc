// File: game/session.go
package game

import (
	"time"

	"github.com/lguibr/blockfall/utils"
)

// Command is an abstract player input. Mapping device events to commands
// is the host's job.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	RotateCW
	SoftDrop
	HardDrop
	TogglePause
)

// CommandFromName resolves the internal command names produced by
// utils.CommandFromString.
func CommandFromName(name string) (Command, bool) {
	switch name {
	case "left":
		return MoveLeft, true
	case "right":
		return MoveRight, true
	case "rotate":
		return RotateCW, true
	case "soft":
		return SoftDrop, true
	case "hard":
		return HardDrop, true
	case "pause":
		return TogglePause, true
	}
	return 0, false
}

// Session is one run of the falling-block simulation. It owns the grid,
// the active and next pieces and all progression counters; the collision
// resolver and placement engine only ever see borrowed access. A session
// has no timer of its own: the host delivers gravity through Tick and
// player input through Apply, one event at a time, and each call runs
// its full move/commit/clear sequence before returning.
type Session struct {
	cfg    utils.Config
	rules  Ruleset
	grid   Grid
	source PieceSource
	ledger Ledger

	active    Piece
	hasActive bool
	next      Shape

	startLevel int
	score      int
	lines      int
	combo      int
	paused     bool
	gameOver   bool
}

// NewSession creates a session on an empty width x height grid and spawns
// the first piece. Non-positive dimensions are a host bug and panic. A
// nil source gets a time-seeded bag; a nil ledger gets NopLedger.
func NewSession(cfg utils.Config, width, height, startLevel int, source PieceSource, ledger Ledger) *Session {
	if source == nil {
		source = NewBagSource(time.Now().UnixNano())
	}
	if ledger == nil {
		ledger = NopLedger{}
	}
	if startLevel < 1 {
		startLevel = utils.MaxInt(1, cfg.StartLevel)
	}

	s := &Session{
		cfg:        cfg,
		rules:      NewRuleset(cfg),
		grid:       NewGrid(width, height),
		source:     source,
		ledger:     ledger,
		next:       source.Next(),
		startLevel: startLevel,
	}
	s.spawn()
	return s
}

// spawn promotes the next piece to active at the catalog spawn anchor.
// A blocked spawn is the board-full loss condition and ends the session.
func (s *Session) spawn() {
	piece := NewPiece(s.next, s.grid.Width())
	s.next = s.source.Next()

	if !Fits(s.grid, piece, piece.Col, piece.Row) {
		s.terminate()
		return
	}
	s.active = piece
	s.hasActive = true
}

// terminate flips the terminal flag and emits the single session-ended
// notification. The flag is never unset within a session.
func (s *Session) terminate() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.hasActive = false
	s.ledger.OnGameOver(s.score)
}

// lock commits the active piece into the grid, scores any cleared rows,
// and either tops out or spawns the next piece.
func (s *Session) lock() {
	result := Place(s.grid, s.active)
	s.hasActive = false

	if result.Cleared > 0 {
		delta := s.rules.ClearScore(result.Cleared, s.Level(), s.combo)
		s.score += delta
		s.lines += result.Cleared
		s.combo++
		s.ledger.OnLinesCleared(result.Cleared, delta)
	} else {
		s.combo = 0
	}

	if result.AboveTop {
		s.terminate()
		return
	}
	s.spawn()
}

// Apply processes one player command. It returns whether the command
// changed anything: rejected moves and rotations are silent no-ops, and
// every command after game over is refused. While paused only
// TogglePause is accepted.
func (s *Session) Apply(cmd Command) bool {
	if s.gameOver {
		return false
	}
	if cmd == TogglePause {
		s.paused = !s.paused
		return true
	}
	if s.paused || !s.hasActive {
		return false
	}

	switch cmd {
	case MoveLeft:
		return s.tryMove(-1, 0)
	case MoveRight:
		return s.tryMove(1, 0)
	case SoftDrop:
		return s.tryMove(0, 1)
	case RotateCW:
		rotated := s.active.Rotated()
		if !Fits(s.grid, rotated, rotated.Col, rotated.Row) {
			return false
		}
		s.active = rotated
		return true
	case HardDrop:
		for Fits(s.grid, s.active, s.active.Col, s.active.Row+1) {
			s.active.Row++
		}
		s.lock()
		return true
	}
	return false
}

func (s *Session) tryMove(dx, dy int) bool {
	if !Fits(s.grid, s.active, s.active.Col+dx, s.active.Row+dy) {
		return false
	}
	s.active.Col += dx
	s.active.Row += dy
	return true
}

// Tick applies one gravity step: the active piece moves down a row, or
// locks where it stands when it cannot. Ticks are ignored while paused.
// The return value is false once the session has ended.
func (s *Session) Tick() bool {
	if s.gameOver {
		return false
	}
	if s.paused || !s.hasActive {
		return true
	}
	if !s.tryMove(0, 1) {
		s.lock()
	}
	return !s.gameOver
}

// Level is derived from lines cleared; it only ever goes up.
func (s *Session) Level() int {
	return s.rules.Level(s.startLevel, s.lines)
}

// DropInterval is the gravity period the host should schedule Tick at.
func (s *Session) DropInterval() time.Duration {
	return s.rules.DropInterval(s.Level())
}

func (s *Session) Score() int   { return s.score }
func (s *Session) Lines() int   { return s.lines }
func (s *Session) Combo() int   { return s.combo }
func (s *Session) Paused() bool { return s.paused }
func (s *Session) Ended() bool  { return s.gameOver }

// Grid exposes the live grid. Hosts must treat it as read-only; tests
// use it to arrange board states.
func (s *Session) Grid() Grid { return s.grid }
