// File: game/arcade.go
package game

import (
	"encoding/json"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lguibr/bollywood"
	"github.com/lguibr/blockfall/utils"
	"golang.org/x/net/websocket"
)

// SessionInfo tracks one live session room.
type SessionInfo struct {
	PID       *bollywood.PID
	Conn      *websocket.Conn
	StartedAt time.Time
}

// ArcadeActor is the session floor manager: one SessionActor per client
// connection, capped at the configured maximum. It routes decoded
// commands to the owning session, tears sessions down on disconnect or
// game over, and keeps an HTTP-ready JSON view of the floor.
type ArcadeActor struct {
	engine    *bollywood.Engine
	cfg       utils.Config
	sessions  map[string]*SessionInfo
	byConn    map[*websocket.Conn]*bollywood.PID
	mu        sync.RWMutex
	selfPID   *bollywood.PID
	stateJSON atomic.Value
	counter   int
}

func NewArcadeActor(engine *bollywood.Engine, cfg utils.Config) *ArcadeActor {
	a := &ArcadeActor{
		engine:   engine,
		cfg:      cfg,
		sessions: make(map[string]*SessionInfo),
		byConn:   make(map[*websocket.Conn]*bollywood.PID),
	}
	a.updateStateJSON()
	return a
}

func (a *ArcadeActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in ArcadeActor Receive: %v\nStack trace:\n%s\n", r, string(debug.Stack()))
		}
	}()

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.selfPID = ctx.Self()
		fmt.Printf("ArcadeActor %s: open, capacity %d sessions.\n", a.selfPID, a.cfg.MaxSessions)

	case SessionConnectRequest:
		a.handleConnect(msg.WsConn)

	case ForwardedCommand:
		a.mu.RLock()
		pid := a.byConn[msg.WsConn]
		a.mu.RUnlock()
		if pid != nil {
			a.engine.Send(pid, msg, a.selfPID)
		}

	case SessionDisconnect:
		a.handleDisconnect(msg.WsConn)

	case SessionEnded:
		a.handleEnded(msg)

	case bollywood.Stopping:
		a.closeFloor()

	case bollywood.Stopped:

	default:
		fmt.Printf("ArcadeActor: unknown message type %T\n", msg)
	}
}

func (a *ArcadeActor) handleConnect(ws *websocket.Conn) {
	if ws == nil {
		return
	}

	a.mu.Lock()
	if len(a.sessions) >= a.cfg.MaxSessions {
		a.mu.Unlock()
		fmt.Printf("ArcadeActor: floor is full (%d sessions), refusing connection.\n", a.cfg.MaxSessions)
		_ = ws.Close()
		return
	}
	a.counter++
	label := fmt.Sprintf("session-%d", a.counter)
	a.mu.Unlock()

	producer := NewSessionActorProducer(a.engine, a.cfg, ws, a.selfPID, nil, ConsoleLedger{Label: label})
	pid := a.engine.Spawn(bollywood.NewProps(producer))
	if pid == nil {
		_ = ws.Close()
		return
	}

	a.mu.Lock()
	a.sessions[pid.ID] = &SessionInfo{PID: pid, Conn: ws, StartedAt: time.Now()}
	a.byConn[ws] = pid
	a.mu.Unlock()

	fmt.Printf("ArcadeActor: started %s as %s\n", label, pid)
	a.updateStateJSON()
}

func (a *ArcadeActor) handleDisconnect(ws *websocket.Conn) {
	if ws == nil {
		return
	}
	a.mu.Lock()
	pid := a.byConn[ws]
	delete(a.byConn, ws)
	if pid != nil {
		delete(a.sessions, pid.ID)
	}
	a.mu.Unlock()

	if pid != nil {
		a.engine.Stop(pid)
	}
	a.updateStateJSON()
}

func (a *ArcadeActor) handleEnded(msg SessionEnded) {
	if msg.PID == nil {
		return
	}
	a.mu.Lock()
	info := a.sessions[msg.PID.ID]
	delete(a.sessions, msg.PID.ID)
	if info != nil {
		delete(a.byConn, info.Conn)
	}
	a.mu.Unlock()

	fmt.Printf("ArcadeActor: %s ended with score %d\n", msg.PID, msg.FinalScore)
	a.engine.Stop(msg.PID)
	if info != nil && info.Conn != nil {
		_ = info.Conn.Close()
	}
	a.updateStateJSON()
}

func (a *ArcadeActor) closeFloor() {
	a.mu.Lock()
	pids := make([]*bollywood.PID, 0, len(a.sessions))
	conns := make([]*websocket.Conn, 0, len(a.sessions))
	for _, info := range a.sessions {
		pids = append(pids, info.PID)
		if info.Conn != nil {
			conns = append(conns, info.Conn)
		}
	}
	a.sessions = make(map[string]*SessionInfo)
	a.byConn = make(map[*websocket.Conn]*bollywood.PID)
	a.mu.Unlock()

	for _, pid := range pids {
		a.engine.Stop(pid)
	}
	for _, conn := range conns {
		_ = conn.Close()
	}
	a.updateStateJSON()
}

// SessionCount reports the number of live sessions.
func (a *ArcadeActor) SessionCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.sessions)
}

type arcadeState struct {
	Sessions int      `json:"sessions"`
	Capacity int      `json:"capacity"`
	Rooms    []string `json:"rooms"`
}

func (a *ArcadeActor) updateStateJSON() {
	a.mu.RLock()
	state := arcadeState{
		Sessions: len(a.sessions),
		Capacity: a.cfg.MaxSessions,
		Rooms:    make([]string, 0, len(a.sessions)),
	}
	for id := range a.sessions {
		state.Rooms = append(state.Rooms, id)
	}
	a.mu.RUnlock()

	data, err := json.Marshal(state)
	if err != nil {
		fmt.Printf("ArcadeActor: failed to marshal state: %v\n", err)
		return
	}
	a.stateJSON.Store(data)
}

// StateJSON retrieves the latest marshalled floor state for HTTP handlers.
func (a *ArcadeActor) StateJSON() []byte {
	val := a.stateJSON.Load()
	data, ok := val.([]byte)
	if !ok {
		return []byte(`{"error": "arcade state unavailable"}`)
	}
	return data
}
