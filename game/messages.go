// File: game/messages.go
package game

import (
	"github.com/lguibr/bollywood"
	"golang.org/x/net/websocket"
)

// --- WebSocket Messages (Client <-> Server) ---

// CommandMessage carries a key identifier from the client, e.g.
// {"command": "ArrowLeft"}.
type CommandMessage struct {
	Command string `json:"command"`
}

// SnapshotMessage is the per-event state broadcast to the client.
type SnapshotMessage struct {
	MessageType string   `json:"messageType"` // "snapshot"
	Snapshot    Snapshot `json:"snapshot"`
}

// GameOverMessage signals the end of the session.
type GameOverMessage struct {
	MessageType string `json:"messageType"` // "gameOver"
	FinalScore  int    `json:"finalScore"`
	Lines       int    `json:"lines"`
	Level       int    `json:"level"`
}

// --- Actor Messages (Internal Communication) ---

// SessionConnectRequest tells the ArcadeActor to start a session for a
// new WebSocket connection.
type SessionConnectRequest struct {
	WsConn *websocket.Conn
}

// SessionDisconnect tells the ArcadeActor that a connection was lost.
type SessionDisconnect struct {
	WsConn *websocket.Conn
}

// ForwardedCommand carries a decoded player command from the read loop to
// the ArcadeActor, which routes it to the owning SessionActor.
type ForwardedCommand struct {
	WsConn  *websocket.Conn
	Command string // internal command name, see utils.CommandFromString
}

// GravityTick signals the SessionActor to apply one gravity step.
type GravityTick struct{}

// SessionEnded notifies the ArcadeActor that a session hit game over.
type SessionEnded struct {
	PID        *bollywood.PID
	FinalScore int
}
