// File: test/stress_test.go
package test

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/lguibr/blockfall/game"
	"github.com/lguibr/blockfall/utils"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

const (
	stressClientCount    = 25
	stressDuration       = 5 * time.Second
	stressCommandPeriod  = 50 * time.Millisecond
	stressSettleTimeout  = 10 * time.Second
	stressShutdownWindow = 10 * time.Second
)

// clientWorker simulates one player hammering the server with commands.
func clientWorker(t *testing.T, wg *sync.WaitGroup, wsURL, origin string, stopCh <-chan struct{}) {
	defer wg.Done()
	t.Helper()

	ws, err := websocket.Dial(wsURL, "", origin)
	if err != nil {
		t.Logf("client failed to dial: %v", err)
		return
	}
	defer func() { _ = ws.Close() }()

	// Drain incoming snapshots so the server's writes never block.
	go func() {
		for {
			var msg serverMessage
			if err := ReadWsJSONMessage(t, ws, 2*time.Second, &msg); err != nil {
				return
			}
		}
	}()

	commands := []string{"ArrowLeft", "ArrowRight", "ArrowUp", "ArrowDown", "Space", "KeyP", "Nonsense"}
	randGen := rand.New(rand.NewSource(time.Now().UnixNano()))
	ticker := time.NewTicker(stressCommandPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			cmd := game.CommandMessage{Command: commands[randGen.Intn(len(commands))]}
			if err := websocket.JSON.Send(ws, cmd); err != nil {
				return
			}
		}
	}
}

func TestStress_ManySessionsUnderRandomInput(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping stress test in short mode")
	}

	cfg := utils.DefaultConfig()
	cfg.BaseDropInterval = 100 * time.Millisecond
	cfg.MinDropInterval = 50 * time.Millisecond
	setup := SetupE2ETest(t, cfg)
	defer TeardownE2ETest(t, setup, stressShutdownWindow)

	stopCh := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < stressClientCount; i++ {
		wg.Add(1)
		go clientWorker(t, &wg, setup.WsURL, setup.Origin, stopCh)
	}

	time.Sleep(stressDuration)
	close(stopCh)
	wg.Wait()

	// Every session ends by game over or disconnect; the floor must
	// drain either way.
	require.Eventually(t, func() bool {
		return setup.Server.Arcade().SessionCount() == 0
	}, stressSettleTimeout, 100*time.Millisecond)
}
