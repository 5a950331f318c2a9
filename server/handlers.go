// File: server/handlers.go
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/lguibr/golife/life"

	"golang.org/x/net/websocket"
)

// HandleSubscribe returns the websocket handler for /subscribe. The
// connection is registered with the broadcaster (which pushes the current
// board immediately), then the read loop feeds inbound envelopes to the
// topic dispatcher until the client goes away.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		connectionAddr := ws.RemoteAddr().String()
		fmt.Printf("HandleSubscribe: new connection from %s\n", connectionAddr)

		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("PANIC recovered in HandleSubscribe for %s: %v\nStack trace:\n%s\n", connectionAddr, r, string(debug.Stack()))
			}
			s.engine.Send(s.broadcasterPID, life.RemoveClient{Conn: ws}, nil)
			_ = ws.Close()
			fmt.Printf("HandleSubscribe: connection %s closed\n", connectionAddr)
		}()

		s.engine.Send(s.broadcasterPID, life.AddClient{Conn: ws}, nil)
		s.readLoop(ws)
	}
}

// readLoop reads envelopes off one connection. A malformed frame is logged
// and dropped without touching the connection or any applied state; only
// transport errors end the loop.
func (s *Server) readLoop(conn *websocket.Conn) {
	connectionAddr := conn.RemoteAddr().String()
	for {
		var env life.Envelope
		err := websocket.JSON.Receive(conn, &env)
		if err != nil {
			if isDecodeError(err) {
				fmt.Printf("ReadLoop: dropping malformed message from %s: %v\n", connectionAddr, err)
				continue
			}
			if err != io.EOF && !isClosedErr(err) {
				fmt.Printf("ReadLoop: error receiving from %s: %v\n", connectionAddr, err)
			}
			return
		}
		s.dispatch(connectionAddr, env)
	}
}

// dispatch routes one inbound envelope by topic. The topic set is closed;
// anything unrecognized is logged and ignored.
func (s *Server) dispatch(from string, env life.Envelope) {
	switch env.Topic {
	case life.TopicBoardAdd:
		var payload life.AddCellsPayload
		if err := json.Unmarshal(env.Payload, &payload); err != nil {
			fmt.Printf("Server: dropping malformed %s payload from %s: %v\n", life.TopicBoardAdd, from, err)
			return
		}
		s.engine.Send(s.supervisorPID, life.AddCells{Cells: payload.Cells}, nil)
	default:
		fmt.Printf("Server: ignoring message from %s on unhandled topic %q\n", from, env.Topic)
	}
}

// HandleGetBoard serves the latest board snapshot over plain HTTP.
func (s *Server) HandleGetBoard() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.broadcaster == nil {
			http.Error(w, "board not started", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(s.broadcaster.LatestBoardJSON()); err != nil {
			fmt.Println("Error writing HTTP board state:", err)
		}
	}
}

// isDecodeError reports whether the receive failure came from JSON decoding
// rather than the transport.
func isDecodeError(err error) bool {
	switch err.(type) {
	case *json.SyntaxError, *json.UnmarshalTypeError:
		return true
	}
	return false
}

// isClosedErr matches transport errors from connections that are gone.
func isClosedErr(err error) bool {
	s := err.Error()
	return strings.Contains(s, "use of closed network connection") ||
		strings.Contains(s, "closed") ||
		strings.Contains(s, "connection reset by peer")
}
