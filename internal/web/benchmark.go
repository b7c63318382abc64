package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cube-groups/solver/internal/benchrun"
	"github.com/gorilla/websocket"
)

// benchmarkUpgrader upgrades /api/benchmark/stream connections. Origin
// checking is left permissive, matching handleSolve and the rest of this
// server's handlers, none of which authenticate callers either.
var benchmarkUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// benchmarkStreamEvent is one JSON message sent down the socket per
// finished (scramble, algorithm) pair, plus a final event with Done set
// (and Error set if the run failed) once every pair has finished.
type benchmarkStreamEvent struct {
	Index     int    `json:"index,omitempty"`
	Total     int    `json:"total,omitempty"`
	Scramble  string `json:"scramble,omitempty"`
	Algorithm string `json:"algorithm,omitempty"`
	Moves     int    `json:"moves,omitempty"`
	Done      bool   `json:"done,omitempty"`
	Error     string `json:"error,omitempty"`
}

// handleBenchmarkStream upgrades to a websocket connection and streams one
// event per (scramble, algorithm) pair as internal/benchrun.Run works through the corpus,
// reusing the same worker pool the CLI's benchmark subcommand drives.
func (s *Server) handleBenchmarkStream(w http.ResponseWriter, r *http.Request) {
	conn, err := benchmarkUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("benchmark stream upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	progress := make(chan benchrun.ProgressEvent, 4)
	runErr := make(chan error, 1)

	go func() {
		_, err := benchrun.Run(ctx, s.engine, progress)
		close(progress)
		runErr <- err
	}()

	for ev := range progress {
		msg := benchmarkStreamEvent{
			Index:     ev.Index,
			Total:     ev.Total,
			Scramble:  ev.Scramble,
			Algorithm: string(ev.Algorithm),
		}
		if ev.Result != nil {
			msg.Moves = len(ev.Result.Moves)
		}
		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}

	final := benchmarkStreamEvent{Done: true}
	if err := <-runErr; err != nil {
		final.Error = err.Error()
	}
	if data, err := json.Marshal(final); err == nil {
		conn.WriteMessage(websocket.TextMessage, data)
	}
}
