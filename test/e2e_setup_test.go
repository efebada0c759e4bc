// File: test/e2e_setup_test.go
package test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/bollywood"
	"github.com/lguibr/blockfall/server"
	"github.com/lguibr/blockfall/utils"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

// E2ESetupResult holds everything a test needs to talk to a running stack.
type E2ESetupResult struct {
	Engine   *bollywood.Engine
	Server   *server.Server
	HTTP     *httptest.Server
	WsURL    string
	StateURL string
	Origin   string
	Cfg      utils.Config
}

// SetupE2ETest boots the engine, the arcade and an httptest server with
// the full route set.
func SetupE2ETest(t *testing.T, cfg utils.Config) E2ESetupResult {
	t.Helper()

	engine := bollywood.NewEngine()
	srv := server.New(engine, cfg)
	require.NotNil(t, srv.ArcadePID(), "arcade PID should not be nil")
	time.Sleep(100 * time.Millisecond) // allow the arcade to start

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.HandleArcadeState())
	mux.HandleFunc("/health", srv.HandleHealth())
	mux.Handle("/subscribe", websocket.Handler(srv.HandleSubscribe()))
	s := httptest.NewServer(mux)

	return E2ESetupResult{
		Engine:   engine,
		Server:   srv,
		HTTP:     s,
		WsURL:    "ws" + strings.TrimPrefix(s.URL, "http") + "/subscribe",
		StateURL: s.URL + "/",
		Origin:   "http://localhost/",
		Cfg:      cfg,
	}
}

// TeardownE2ETest closes the HTTP server and shuts the engine down.
func TeardownE2ETest(t *testing.T, setup E2ESetupResult, shutdownTimeout time.Duration) {
	t.Helper()
	if setup.HTTP != nil {
		setup.HTTP.Close()
	}
	if setup.Engine != nil {
		setup.Engine.Shutdown(shutdownTimeout)
	}
}
