// File: server/server.go
package server

import (
	"time"

	"github.com/lguibr/bollywood"
	"github.com/lguibr/blockfall/game"
	"github.com/lguibr/blockfall/utils"
)

// Server wires the actor engine to the HTTP/WebSocket surface. One
// ArcadeActor manages every session behind it.
type Server struct {
	engine    *bollywood.Engine
	arcade    *game.ArcadeActor
	arcadePID *bollywood.PID
}

// New spawns the arcade on the given engine and returns the ready server.
func New(engine *bollywood.Engine, cfg utils.Config) *Server {
	arcade := game.NewArcadeActor(engine, cfg)
	pid := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return arcade }))
	return &Server{
		engine:    engine,
		arcade:    arcade,
		arcadePID: pid,
	}
}

func (s *Server) Engine() *bollywood.Engine { return s.engine }
func (s *Server) ArcadePID() *bollywood.PID { return s.arcadePID }
func (s *Server) Arcade() *game.ArcadeActor { return s.arcade }

// Shutdown stops every actor, sessions included.
func (s *Server) Shutdown(timeout time.Duration) {
	s.engine.Shutdown(timeout)
}
