// File: test/helpers_test.go
package test

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/websocket"
)

// ReadWsJSONMessage reads one JSON message from the WebSocket with a
// timeout. It handles setting/clearing read deadlines and checks for
// common closed-connection errors.
func ReadWsJSONMessage(t *testing.T, ws *websocket.Conn, timeout time.Duration, v interface{}) error {
	t.Helper()
	if ws == nil {
		return errors.New("websocket connection is nil")
	}

	readDone := make(chan error, 1)

	go func() {
		if err := ws.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			if errors.Is(err, net.ErrClosed) || strings.Contains(err.Error(), "use of closed network connection") {
				readDone <- io.EOF
				return
			}
			readDone <- fmt.Errorf("failed to set read deadline: %w", err)
			return
		}

		err := websocket.JSON.Receive(ws, v)
		_ = ws.SetReadDeadline(time.Time{})
		readDone <- err
	}()

	select {
	case err := <-readDone:
		return err
	case <-time.After(timeout + 500*time.Millisecond):
		_ = ws.Close()
		return fmt.Errorf("websocket read timeout after %v (Receive call blocked)", timeout)
	}
}
