// File: game/scoring.go
package game

import (
	"time"

	"github.com/lguibr/blockfall/utils"
)

// Ruleset converts clear events into score deltas and drives the level
// and gravity curves. All arithmetic is integer; no fractional bonus is
// ever produced.
type Ruleset struct {
	cfg utils.Config
}

func NewRuleset(cfg utils.Config) Ruleset {
	return Ruleset{cfg: cfg}
}

// ClearScore returns the points awarded for a placement that cleared the
// given number of lines. The base table grows superlinearly with the
// line count, the whole base scales with the current level, and combo is
// the number of consecutive clearing placements before this one, each
// worth ComboStep extra per level. Zero lines score zero.
func (r Ruleset) ClearScore(lines, level, combo int) int {
	if lines <= 0 {
		return 0
	}
	if lines >= len(r.cfg.ClearScores) {
		lines = len(r.cfg.ClearScores) - 1
	}
	if level < 1 {
		level = 1
	}
	if combo < 0 {
		combo = 0
	}
	return r.cfg.ClearScores[lines]*level + r.cfg.ComboStep*combo*level
}

// Level derives the current level from the starting level and the total
// lines cleared: one step per LinesPerLevel lines, never decreasing.
func (r Ruleset) Level(startLevel, totalLines int) int {
	if startLevel < 1 {
		startLevel = 1
	}
	return startLevel + totalLines/r.cfg.LinesPerLevel
}

// DropInterval is the gravity period at a level: the base interval minus
// a fixed decay per level, floored at the configured minimum so the game
// stays playable at high levels.
func (r Ruleset) DropInterval(level int) time.Duration {
	interval := r.cfg.BaseDropInterval - time.Duration(level)*r.cfg.DropDecay
	if interval < r.cfg.MinDropInterval {
		return r.cfg.MinDropInterval
	}
	return interval
}
