package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/lguibr/bollywood"
	"github.com/lguibr/blockfall/server"
	"github.com/lguibr/blockfall/utils"
	"golang.org/x/net/websocket"
)

func main() {
	cfg := utils.DefaultConfig()
	engine := bollywood.NewEngine()
	defer engine.Shutdown(5 * time.Second)

	srv := server.New(engine, cfg)

	fmt.Printf("Blockfall arcade open: %dx%d board, up to %d sessions\n",
		cfg.BoardWidth, cfg.BoardHeight, cfg.MaxSessions)

	http.HandleFunc("/", srv.HandleArcadeState())
	http.HandleFunc("/health", srv.HandleHealth())
	http.Handle("/subscribe", websocket.Handler(srv.HandleSubscribe()))

	panic(http.ListenAndServe(":3001", nil))
}
