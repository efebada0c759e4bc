package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/blockfall/game"
	"github.com/lguibr/blockfall/render"
	"golang.org/x/net/websocket"
	"golang.org/x/sys/unix"
)

type serverMessage struct {
	MessageType string         `json:"messageType"`
	Snapshot    *game.Snapshot `json:"snapshot"`
	FinalScore  int            `json:"finalScore"`
	Lines       int            `json:"lines"`
	Level       int            `json:"level"`
}

func setRawMode(fileDescriptor uintptr) (*unix.Termios, error) {
	terminalSettings, err := unix.IoctlGetTermios(int(fileDescriptor), unix.TCGETS)
	if err != nil {
		return nil, err
	}
	savedTerminalSettings := *terminalSettings
	terminalSettings.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	terminalSettings.Oflag &^= unix.OPOST
	terminalSettings.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	terminalSettings.Cflag &^= unix.CSIZE | unix.PARENB
	terminalSettings.Cflag |= unix.CS8
	terminalSettings.Oflag |= unix.ONLCR

	if err := unix.IoctlSetTermios(int(fileDescriptor), unix.TCSETS, terminalSettings); err != nil {
		return nil, err
	}
	return &savedTerminalSettings, nil
}

func main() {
	websocketConnection, err := websocket.Dial("ws://localhost:3001/subscribe", "", "http://localhost/")
	if err != nil {
		fmt.Println("Error connecting to server:", err)
		return
	}
	defer websocketConnection.Close()

	go func() {
		for {
			var message serverMessage
			if err := websocket.JSON.Receive(websocketConnection, &message); err != nil {
				fmt.Println("\rConnection closed:", err)
				return
			}
			switch message.MessageType {
			case "snapshot":
				if message.Snapshot != nil {
					helpers.ClearScreen()
					fmt.Print(render.SnapshotString(*message.Snapshot))
				}
			case "gameOver":
				fmt.Printf("\rGame over! score %d, %d lines, level %d\n",
					message.FinalScore, message.Lines, message.Level)
			}
		}
	}()

	savedTerminalSettings, err := setRawMode(os.Stdin.Fd())
	if err != nil {
		fmt.Println("Error setting raw mode:", err)
		return
	}
	defer unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, savedTerminalSettings)

	interruptSignalChannel := make(chan os.Signal, 1)
	signal.Notify(interruptSignalChannel, os.Interrupt)
	go func() {
		<-interruptSignalChannel
		unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, savedTerminalSettings)
		os.Exit(0)
	}()

	for {
		singleByteBuffer := make([]byte, 1)
		if _, err := os.Stdin.Read(singleByteBuffer); err != nil {
			return
		}

		var key string
		switch singleByteBuffer[0] {
		case 'a', 'A':
			key = "ArrowLeft"
		case 'd', 'D':
			key = "ArrowRight"
		case 'w', 'W':
			key = "ArrowUp"
		case 's', 'S':
			key = "ArrowDown"
		case ' ':
			key = "Space"
		case 'p', 'P':
			key = "KeyP"
		case 'q', 'Q', 'c', 'C':
			fmt.Println("Quitting game")
			unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, savedTerminalSettings)
			os.Exit(0)
		default:
			continue
		}

		if err := websocket.JSON.Send(websocketConnection, game.CommandMessage{Command: key}); err != nil {
			fmt.Println("Error sending to server:", err)
			return
		}
	}
}
