package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/golife/life"
	"github.com/lguibr/golife/render"
	"github.com/lguibr/golife/utils"
	"golang.org/x/net/websocket"
	"golang.org/x/sys/unix"
)

// Glider cell offsets, drawn relative to a random origin.
var gliderOffsets = [5][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

var palette = []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff", "#00ffff"}

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

// publishCells sends an AddCells envelope on the board add topic.
func publishCells(conn *websocket.Conn, cells []life.CellUpdate) {
	payload, err := json.Marshal(life.AddCellsPayload{Cells: cells})
	if err != nil {
		fmt.Println("Error encoding cells:", err)
		return
	}
	env := life.Envelope{Topic: life.TopicBoardAdd, Payload: payload}
	if err := websocket.JSON.Send(conn, &env); err != nil {
		fmt.Println("Error publishing cells:", err)
	}
}

func randomCell(gridSize int) life.CellUpdate {
	return life.CellUpdate{
		X: rand.Intn(gridSize),
		Y: rand.Intn(gridSize),
		C: palette[rand.Intn(len(palette))],
	}
}

func randomGlider(gridSize int) []life.CellUpdate {
	originX := rand.Intn(gridSize - 3)
	originY := rand.Intn(gridSize - 3)
	color := palette[rand.Intn(len(palette))]
	cells := make([]life.CellUpdate, 0, len(gliderOffsets))
	for _, off := range gliderOffsets {
		cells = append(cells, life.CellUpdate{X: originX + off[0], Y: originY + off[1], C: color})
	}
	return cells
}

func main() {
	rand.Seed(time.Now().UnixNano())
	gridSize := utils.DefaultConfig().GridSize

	websocketConnection, err := websocket.Dial("ws://localhost:3001/subscribe", "", "http://localhost/")
	if err != nil {
		fmt.Println("Error connecting to server:", err)
		return
	}
	defer websocketConnection.Close()

	go func() {
		for {
			var env life.Envelope
			if err := websocket.JSON.Receive(websocketConnection, &env); err != nil {
				fmt.Println("Error reading from server:", err)
				return
			}
			if env.Topic != life.TopicBoardUpdate {
				continue
			}
			var update life.BoardUpdate
			if err := json.Unmarshal(env.Payload, &update); err != nil {
				fmt.Println("Error decoding board update:", err)
				continue
			}
			helpers.ClearScreen()
			fmt.Print(render.RenderBoard(update.Board.Cells, gridSize))
			fmt.Println("[c] add cell  [g] add glider  [q] quit")
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

	buffer := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buffer); err != nil {
			return
		}
		switch buffer[0] {
		case 'c':
			publishCells(websocketConnection, []life.CellUpdate{randomCell(gridSize)})
		case 'g':
			publishCells(websocketConnection, randomGlider(gridSize))
		case 'q', 3: // 3 is Ctrl-C in raw mode
			return
		}
	}
}
