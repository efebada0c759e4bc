// File: game/ledger.go
package game

import "fmt"

// Ledger is the chip/life collaborator the session reports to. Clearing
// lines and ending the session are the only events the core emits; what
// they cost or pay out is entirely the collaborator's business.
// Implementations must not block: the session calls them synchronously
// from inside its event processing.
type Ledger interface {
	OnLinesCleared(count, scoreDelta int)
	OnGameOver(finalScore int)
}

// NopLedger ignores every event. The default when the host does not
// care about chip bookkeeping.
type NopLedger struct{}

func (NopLedger) OnLinesCleared(count, scoreDelta int) {}
func (NopLedger) OnGameOver(finalScore int)            {}

// ConsoleLedger logs events with a session label, the arcade's default
// collaborator when no real chip backend is wired in.
type ConsoleLedger struct {
	Label string
}

func (l ConsoleLedger) OnLinesCleared(count, scoreDelta int) {
	fmt.Printf("Ledger %s: %d lines cleared for %d points\n", l.Label, count, scoreDelta)
}

func (l ConsoleLedger) OnGameOver(finalScore int) {
	fmt.Printf("Ledger %s: session ended with final score %d\n", l.Label, finalScore)
}
