// File: life/broadcaster_actor.go
package life

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/lguibr/golife/bollywood"
	"golang.org/x/net/websocket"
)

// BroadcasterActor is the outbound half of the gateway: it owns the set of
// subscribed connections and fans each board update out to all of them. It
// also keeps the latest encoded board so the HTTP endpoint and freshly
// subscribed clients can be served without asking the board actor.
type BroadcasterActor struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex // Protects the clients map
	selfPID *bollywood.PID
	latest  atomic.Value // life.Envelope of the last update
	boardJS atomic.Value // []byte of the last BoardUpdate JSON
}

// NewBroadcasterActor builds the actor instance. It is returned directly
// (rather than hidden behind the producer) so the server can read
// LatestBoardJSON outside the actor loop.
func NewBroadcasterActor() *BroadcasterActor {
	a := &BroadcasterActor{
		clients: make(map[*websocket.Conn]bool),
	}
	a.storeUpdate(BoardUpdate{Board: BoardState{Cells: []CellUpdate{}}})
	return a
}

// Producer wraps the instance for engine.Spawn.
func (a *BroadcasterActor) Producer() bollywood.Producer {
	return func() bollywood.Actor { return a }
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:

	case AddClient:
		if msg.Conn == nil {
			return
		}
		a.mu.Lock()
		_, known := a.clients[msg.Conn]
		a.clients[msg.Conn] = true
		a.mu.Unlock()
		if !known {
			// Push the current board so new subscribers don't wait a
			// full tick for their first frame.
			if env, ok := a.latest.Load().(Envelope); ok {
				if err := websocket.JSON.Send(msg.Conn, &env); err != nil {
					fmt.Printf("Broadcaster %s: initial push to %s failed: %v\n", a.selfPID, msg.Conn.RemoteAddr(), err)
				}
			}
		}

	case RemoveClient:
		if msg.Conn == nil {
			return
		}
		a.mu.Lock()
		delete(a.clients, msg.Conn)
		a.mu.Unlock()

	case BroadcastUpdateCommand:
		a.storeUpdate(msg.Update)
		a.broadcast()

	case bollywood.Stopping:
		a.closeAllConnections()

	case bollywood.Stopped:

	default:
		fmt.Printf("BroadcasterActor %s: ignoring unknown message type %T\n", a.selfPID, msg)
	}
}

// LatestBoardJSON returns the most recent encoded board payload. Safe to
// call from any goroutine.
func (a *BroadcasterActor) LatestBoardJSON() []byte {
	if b, ok := a.boardJS.Load().([]byte); ok {
		return b
	}
	return []byte(`{"board":{"cells":[]}}`)
}

// ClientCount reports the number of subscribed connections.
func (a *BroadcasterActor) ClientCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.clients)
}

// storeUpdate encodes the update once and caches both the bare payload and
// the topic envelope.
func (a *BroadcasterActor) storeUpdate(update BoardUpdate) {
	payload, err := json.Marshal(update)
	if err != nil {
		fmt.Printf("Broadcaster %s: failed to encode board update: %v\n", a.selfPID, err)
		return
	}
	a.boardJS.Store(payload)
	a.latest.Store(Envelope{Topic: TopicBoardUpdate, Payload: payload})
}

// broadcast sends the cached envelope to every subscribed connection,
// dropping connections that look closed.
func (a *BroadcasterActor) broadcast() {
	env, ok := a.latest.Load().(Envelope)
	if !ok {
		return
	}

	a.mu.RLock()
	clientsToSend := make([]*websocket.Conn, 0, len(a.clients))
	for conn := range a.clients {
		clientsToSend = append(clientsToSend, conn)
	}
	a.mu.RUnlock()

	var disconnected []*websocket.Conn
	for _, ws := range clientsToSend {
		if err := websocket.JSON.Send(ws, &env); err != nil {
			if isClosedConnError(err) {
				disconnected = append(disconnected, ws)
			} else {
				fmt.Printf("Broadcaster %s: failed to write update to %s: %v\n", a.selfPID, ws.RemoteAddr(), err)
			}
		}
	}

	if len(disconnected) > 0 {
		a.mu.Lock()
		for _, ws := range disconnected {
			delete(a.clients, ws)
		}
		a.mu.Unlock()
	}
}

// closeAllConnections closes every subscribed connection during shutdown.
func (a *BroadcasterActor) closeAllConnections() {
	a.mu.Lock()
	clientsToClose := make([]*websocket.Conn, 0, len(a.clients))
	for conn := range a.clients {
		clientsToClose = append(clientsToClose, conn)
	}
	a.clients = make(map[*websocket.Conn]bool)
	a.mu.Unlock()

	if len(clientsToClose) > 0 {
		fmt.Printf("Broadcaster %s: closing %d connections.\n", a.selfPID, len(clientsToClose))
		for _, ws := range clientsToClose {
			_ = ws.Close()
		}
	}
}

// isClosedConnError matches the error strings the websocket package surfaces
// for connections that are already gone.
func isClosedConnError(err error) bool {
	s := err.Error()
	return strings.Contains(s, "use of closed network connection") ||
		strings.Contains(s, "broken pipe") ||
		strings.Contains(s, "connection reset by peer") ||
		strings.Contains(s, "EOF")
}
