// File: game/session_actor.go
package game

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/lguibr/bollywood"
	"github.com/lguibr/blockfall/utils"
	"golang.org/x/net/websocket"
)

// SessionActor hosts one Session and one client connection. Its mailbox
// is the serial event queue of the simulation: gravity ticks and player
// commands arrive as messages and are processed one at a time, so the
// session never sees concurrent access. The actor owns the gravity
// ticker and re-arms it whenever the level speeds the session up.
type SessionActor struct {
	cfg       utils.Config
	engine    *bollywood.Engine
	arcadePID *bollywood.PID
	ws        *websocket.Conn
	source    PieceSource
	ledger    Ledger

	session      *Session
	ticker       *time.Ticker
	interval     time.Duration
	stopTickerCh chan struct{}
	selfPID      *bollywood.PID
	ended        bool
}

// NewSessionActorProducer creates a producer for a SessionActor bound to
// one connection. A nil source or ledger falls back to the session
// defaults.
func NewSessionActorProducer(engine *bollywood.Engine, cfg utils.Config, ws *websocket.Conn, arcadePID *bollywood.PID, source PieceSource, ledger Ledger) bollywood.Producer {
	return func() bollywood.Actor {
		return &SessionActor{
			cfg:          cfg,
			engine:       engine,
			arcadePID:    arcadePID,
			ws:           ws,
			source:       source,
			ledger:       ledger,
			stopTickerCh: make(chan struct{}),
		}
	}
}

func (a *SessionActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in SessionActor Receive: %v\nStack trace:\n%s\n", r, string(debug.Stack()))
		}
	}()

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.selfPID = ctx.Self()
		a.session = NewSession(a.cfg, a.cfg.BoardWidth, a.cfg.BoardHeight, a.cfg.StartLevel, a.source, a.ledger)
		a.broadcastSnapshot()
		if a.session.Ended() {
			// Board was unplayable from the first spawn.
			a.finish()
			return
		}
		a.interval = a.session.DropInterval()
		a.ticker = time.NewTicker(a.interval)
		go a.runTickerLoop()

	case GravityTick:
		if a.ended || a.session == nil {
			return
		}
		alive := a.session.Tick()
		a.broadcastSnapshot()
		if !alive {
			a.finish()
			return
		}
		a.adjustTicker()

	case ForwardedCommand:
		if a.ended || a.session == nil {
			return
		}
		cmd, ok := CommandFromName(msg.Command)
		if !ok {
			return
		}
		a.session.Apply(cmd)
		a.broadcastSnapshot()
		if a.session.Ended() {
			a.finish()
			return
		}
		a.adjustTicker()

	case bollywood.Stopping:
		a.stopTicker()

	case bollywood.Stopped:
		// Final message; nothing left to release.

	default:
		fmt.Printf("SessionActor %s: unknown message type %T\n", a.pidString(), msg)
	}
}

// runTickerLoop forwards ticker beats into the actor's own mailbox so
// gravity serializes with player input.
func (a *SessionActor) runTickerLoop() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in SessionActor %s ticker loop: %v\nStack trace:\n%s\n", a.pidString(), r, string(debug.Stack()))
		}
	}()

	for {
		select {
		case <-a.stopTickerCh:
			return
		case <-a.ticker.C:
			select {
			case <-a.stopTickerCh:
				return
			default:
				a.engine.Send(a.selfPID, GravityTick{}, nil)
			}
		}
	}
}

// adjustTicker re-arms gravity after a level change. Reset happens on the
// actor goroutine, never concurrently with the ticker loop reads.
func (a *SessionActor) adjustTicker() {
	if a.ticker == nil {
		return
	}
	if interval := a.session.DropInterval(); interval != a.interval {
		a.interval = interval
		a.ticker.Reset(interval)
	}
}

func (a *SessionActor) broadcastSnapshot() {
	if a.ws == nil || a.session == nil {
		return
	}
	msg := SnapshotMessage{MessageType: "snapshot", Snapshot: a.session.Snapshot()}
	if err := websocket.JSON.Send(a.ws, msg); err != nil {
		fmt.Printf("SessionActor %s: snapshot send failed: %v\n", a.pidString(), err)
	}
}

// finish runs once per session: it stops gravity, delivers the terminal
// message to the client and reports the final score upstream.
func (a *SessionActor) finish() {
	if a.ended {
		return
	}
	a.ended = true
	a.stopTicker()

	if a.ws != nil {
		msg := GameOverMessage{
			MessageType: "gameOver",
			FinalScore:  a.session.Score(),
			Lines:       a.session.Lines(),
			Level:       a.session.Level(),
		}
		if err := websocket.JSON.Send(a.ws, msg); err != nil {
			fmt.Printf("SessionActor %s: game over send failed: %v\n", a.pidString(), err)
		}
	}

	if a.arcadePID != nil {
		a.engine.Send(a.arcadePID, SessionEnded{PID: a.selfPID, FinalScore: a.session.Score()}, a.selfPID)
	}
}

func (a *SessionActor) stopTicker() {
	if a.ticker != nil {
		a.ticker.Stop()
	}
	select {
	case <-a.stopTickerCh:
	default:
		close(a.stopTickerCh)
	}
}

func (a *SessionActor) pidString() string {
	if a.selfPID != nil {
		return a.selfPID.String()
	}
	return "unknown"
}
