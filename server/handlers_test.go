// File: server/handlers_test.go
package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/golife/life"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func dialSubscribe(t *testing.T, srv *Server) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(websocket.Handler(srv.HandleSubscribe()))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/"
	conn, err := websocket.Dial(url, "", "http://localhost/")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func receiveEnvelope(t *testing.T, conn *websocket.Conn) life.Envelope {
	t.Helper()
	var env life.Envelope
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	require.NoError(t, websocket.JSON.Receive(conn, &env))
	return env
}

func boardCells(t *testing.T, env life.Envelope) []life.CellUpdate {
	t.Helper()
	require.Equal(t, life.TopicBoardUpdate, env.Topic)
	var update life.BoardUpdate
	require.NoError(t, json.Unmarshal(env.Payload, &update))
	return update.Board.Cells
}

func TestSubscribeReceivesInitialBoardState(t *testing.T) {
	srv := startServer(t)
	conn := dialSubscribe(t, srv)

	cells := boardCells(t, receiveEnvelope(t, conn))
	assert.Empty(t, cells, "a fresh board pushes an empty snapshot on subscribe")
}

func TestSubscribePublishAndReceiveUpdate(t *testing.T) {
	srv := startServer(t)
	conn := dialSubscribe(t, srv)

	// Initial push first.
	receiveEnvelope(t, conn)

	payload, err := json.Marshal(life.AddCellsPayload{Cells: []life.CellUpdate{
		{X: 5, Y: 5, C: "#ff0000"},
		{X: 6, Y: 5, C: "#00ff00"},
	}})
	require.NoError(t, err)
	require.NoError(t, websocket.JSON.Send(conn, &life.Envelope{Topic: life.TopicBoardAdd, Payload: payload}))

	cells := boardCells(t, receiveEnvelope(t, conn))
	assert.Equal(t, []life.CellUpdate{
		{X: 5, Y: 5, C: "#ff0000"},
		{X: 6, Y: 5, C: "#00ff00"},
	}, cells)
}

func TestSubscribeSurvivesMalformedMessage(t *testing.T) {
	srv := startServer(t)
	conn := dialSubscribe(t, srv)

	receiveEnvelope(t, conn)

	// Raw garbage, not JSON: the message is dropped but the connection and
	// the board keep working.
	require.NoError(t, websocket.Message.Send(conn, "this is not json"))

	payload, err := json.Marshal(life.AddCellsPayload{Cells: []life.CellUpdate{{X: 1, Y: 1, C: "#0000ff"}}})
	require.NoError(t, err)
	require.NoError(t, websocket.JSON.Send(conn, &life.Envelope{Topic: life.TopicBoardAdd, Payload: payload}))

	cells := boardCells(t, receiveEnvelope(t, conn))
	assert.Equal(t, []life.CellUpdate{{X: 1, Y: 1, C: "#0000ff"}}, cells)
}

func TestHandleGetBoard(t *testing.T) {
	srv := startServer(t)

	payload, err := json.Marshal(life.AddCellsPayload{Cells: []life.CellUpdate{{X: 9, Y: 0, C: "#abcdef"}}})
	require.NoError(t, err)
	srv.dispatch("test", life.Envelope{Topic: life.TopicBoardAdd, Payload: payload})
	waitFor(t, 2*time.Second, func() bool {
		return strings.Contains(string(srv.broadcaster.LatestBoardJSON()), `"x":9`)
	}, "board snapshot refresh")

	recorder := httptest.NewRecorder()
	srv.HandleGetBoard()(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"board":{"cells":[{"x":9,"y":0,"c":"#abcdef"}]}}`, recorder.Body.String())
}
