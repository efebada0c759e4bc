// File: game/session_actor_test.go
package game

import (
	"testing"
	"time"

	"github.com/lguibr/bollywood"
	"github.com/lguibr/blockfall/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probeActor stands in for the arcade and records SessionEnded reports.
type probeActor struct {
	ended chan SessionEnded
}

func newProbeActor() *probeActor {
	return &probeActor{ended: make(chan SessionEnded, 4)}
}

func (p *probeActor) Receive(ctx bollywood.Context) {
	if msg, ok := ctx.Message().(SessionEnded); ok {
		p.ended <- msg
	}
}

func tinyBoardConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.BoardWidth = 4
	cfg.BoardHeight = 4
	return cfg
}

func spawnSessionActor(t *testing.T, engine *bollywood.Engine, cfg utils.Config, probePID *bollywood.PID, source PieceSource) *bollywood.PID {
	t.Helper()
	producer := NewSessionActorProducer(engine, cfg, nil, probePID, source, NopLedger{})
	pid := engine.Spawn(bollywood.NewProps(producer))
	require.NotNil(t, pid)
	return pid
}

func TestSessionActorHardDropsReportGameOver(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(2 * time.Second)

	cfg := tinyBoardConfig()
	cfg.BaseDropInterval = time.Hour // gravity stays out of the way

	probe := newProbeActor()
	probePID := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return probe }))
	require.NotNil(t, probePID)

	// On a 4x4 board the O piece stacks in the middle columns without
	// ever clearing; two drops fill the spawn area.
	sessionPID := spawnSessionActor(t, engine, cfg, probePID, FixedSource{Shape: ShapeO})

	engine.Send(sessionPID, ForwardedCommand{Command: "hard"}, nil)
	engine.Send(sessionPID, ForwardedCommand{Command: "hard"}, nil)

	select {
	case ended := <-probe.ended:
		assert.Equal(t, sessionPID.ID, ended.PID.ID)
		assert.Equal(t, 0, ended.FinalScore)
	case <-time.After(2 * time.Second):
		t.Fatal("no SessionEnded report after the board filled")
	}
}

func TestSessionActorGravityAloneEndsSession(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(2 * time.Second)

	cfg := tinyBoardConfig()
	cfg.BaseDropInterval = 2 * time.Millisecond
	cfg.MinDropInterval = time.Millisecond

	probe := newProbeActor()
	probePID := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return probe }))
	require.NotNil(t, probePID)

	spawnSessionActor(t, engine, cfg, probePID, FixedSource{Shape: ShapeO})

	select {
	case ended := <-probe.ended:
		assert.Equal(t, 0, ended.FinalScore)
	case <-time.After(5 * time.Second):
		t.Fatal("gravity never topped the board out")
	}
}

func TestSessionActorIgnoresUnknownCommands(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(2 * time.Second)

	cfg := tinyBoardConfig()
	cfg.BaseDropInterval = time.Hour

	probe := newProbeActor()
	probePID := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return probe }))
	require.NotNil(t, probePID)

	sessionPID := spawnSessionActor(t, engine, cfg, probePID, FixedSource{Shape: ShapeO})

	engine.Send(sessionPID, ForwardedCommand{Command: "warp"}, nil)
	engine.Send(sessionPID, ForwardedCommand{Command: ""}, nil)

	select {
	case <-probe.ended:
		t.Fatal("unknown commands must not end the session")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSessionActorStopsCleanly(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(2 * time.Second)

	cfg := tinyBoardConfig()
	cfg.BaseDropInterval = time.Millisecond
	cfg.MinDropInterval = time.Millisecond

	sessionPID := spawnSessionActor(t, engine, cfg, nil, FixedSource{Shape: ShapeI})
	time.Sleep(20 * time.Millisecond)

	engine.Stop(sessionPID)
	require.Eventually(t, func() bool {
		return engine.ActorCount() == 0
	}, 2*time.Second, 10*time.Millisecond, "session actor did not deregister")
}
