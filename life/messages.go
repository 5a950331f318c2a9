// File: life/messages.go
package life

import (
	"encoding/json"

	"golang.org/x/net/websocket"
)

// --- Gateway Wire Format ---

// Topics on the board exchange. Dispatch is always a closed match over this
// set with an explicit unhandled branch, never an open-ended string switch.
const (
	TopicBoardAdd    = "life.board.add"
	TopicBoardUpdate = "life.board.update"
)

// Envelope frames every message crossing the gateway, inbound and outbound.
type Envelope struct {
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload"`
}

// AddCellsPayload is the payload clients publish on TopicBoardAdd.
type AddCellsPayload struct {
	Cells []CellUpdate `json:"cells"`
}

// --- BoardActor Messages ---

// BoardTick signals the board actor to advance the grid by one generation.
type BoardTick struct{}

// AddCells carries decoded client cell writes to the board actor. The writes
// apply in order; there is no "kill" variant in the protocol.
type AddCells struct {
	Cells []CellUpdate
}

// --- BroadcasterActor Messages ---

// AddClient tells the broadcaster to start sending board updates to a new
// connection. Adding the same connection twice is a no-op.
type AddClient struct {
	Conn *websocket.Conn
}

// RemoveClient tells the broadcaster to stop sending updates to a connection.
type RemoveClient struct {
	Conn *websocket.Conn
}

// BroadcastUpdateCommand carries a fresh board snapshot from the board actor
// to the broadcaster.
type BroadcastUpdateCommand struct {
	Update BoardUpdate
}
