// File: utils/config.go
package utils

import "time"

// Config holds all configurable game parameters.
type Config struct {
	// Board
	BoardWidth  int `json:"boardWidth"`  // Columns of the playing field
	BoardHeight int `json:"boardHeight"` // Visible rows of the playing field

	// Progression
	StartLevel    int `json:"startLevel"`    // Level a fresh session begins at
	LinesPerLevel int `json:"linesPerLevel"` // Cleared lines needed to advance one level

	// Gravity timing
	BaseDropInterval time.Duration `json:"baseDropInterval"` // Gravity period at level 0
	DropDecay        time.Duration `json:"dropDecay"`        // Gravity speed-up per level
	MinDropInterval  time.Duration `json:"minDropInterval"`  // Gravity period floor

	// Scoring
	ClearScores [5]int `json:"clearScores"` // Base points indexed by lines cleared (index 0 unused)
	ComboStep   int    `json:"comboStep"`   // Bonus per prior consecutive clearing placement

	// Hosting
	MaxSessions int `json:"maxSessions"` // Concurrent session cap for the arcade
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		// Board
		BoardWidth:  10,
		BoardHeight: 20,

		// Progression
		StartLevel:    1,
		LinesPerLevel: 10,

		// Gravity timing
		BaseDropInterval: 850 * time.Millisecond,
		DropDecay:        50 * time.Millisecond,
		MinDropInterval:  80 * time.Millisecond,

		// Scoring. The quad value is deliberately superlinear: clearing
		// four rows at once is worth far more than four singles.
		ClearScores: [5]int{0, 100, 300, 500, 800},
		ComboStep:   50,

		// Hosting
		MaxSessions: 75,
	}
}
