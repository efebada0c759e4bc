// File: server/handlers.go
package server

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/lguibr/blockfall/game"
	"github.com/lguibr/blockfall/utils"

	"golang.org/x/net/websocket"
)

// HandleSubscribe accepts a WebSocket connection, hands it to the arcade
// and then pumps decoded commands until the client goes away.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		connectionAddr := ws.RemoteAddr().String()
		fmt.Printf("HandleSubscribe: new connection from %s\n", connectionAddr)

		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("PANIC recovered in HandleSubscribe for %s: %v\nStack trace:\n%s\n", connectionAddr, r, string(debug.Stack()))
			}
			_ = ws.Close()
		}()

		s.engine.Send(s.arcadePID, game.SessionConnectRequest{WsConn: ws}, nil)
		s.readLoop(ws)
	}
}

// readLoop decodes CommandMessage frames and forwards the recognized ones
// to the arcade. It exits on any read error and reports the disconnect.
func (s *Server) readLoop(conn *websocket.Conn) {
	connectionAddr := conn.RemoteAddr().String()

	defer func() {
		s.engine.Send(s.arcadePID, game.SessionDisconnect{WsConn: conn}, nil)
		fmt.Printf("ReadLoop: finished for %s\n", connectionAddr)
	}()

	for {
		var cmdMsg game.CommandMessage
		err := websocket.JSON.Receive(conn, &cmdMsg)

		if err != nil {
			isClosedErr := err == io.EOF ||
				strings.Contains(err.Error(), "use of closed network connection") ||
				strings.Contains(err.Error(), "closed")
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				fmt.Printf("ReadLoop: read timeout for %s, assuming disconnect.\n", connectionAddr)
			} else if !isClosedErr {
				fmt.Printf("ReadLoop: error receiving from %s: %v\n", connectionAddr, err)
			}
			return
		}

		internalName := utils.CommandFromString(cmdMsg.Command)
		if internalName == "" {
			continue
		}
		s.engine.Send(s.arcadePID, game.ForwardedCommand{WsConn: conn, Command: internalName}, nil)
	}
}

// HandleArcadeState serves the arcade's latest JSON state.
func (s *Server) HandleArcadeState() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				fmt.Printf("PANIC recovered in HandleArcadeState: %v\nStack trace:\n%s\n", rec, string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(s.arcade.StateJSON()); err != nil {
			fmt.Println("Error writing arcade state:", err)
		}
	}
}

// HandleHealth is a liveness probe.
func (s *Server) HandleHealth() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": "ok"}`))
	}
}
