// Package observer provides reference cellpotts.Observer implementations.
// Rendering itself stays an external collaborator;
// WebSocketObserver only streams the arrays a renderer needs to draw the
// lattice, never drawing anything itself.
package observer

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/vellum-sim/cellpotts"
)

// StepSnapshot is the payload streamed to a connected renderer after every
// model step.
type StepSnapshot struct {
	Step  uint64   `json:"step"`
	IDs   []uint32 `json:"array_ids"`
	Types []uint32 `json:"array_types"`
}

// WebSocketObserver streams array_ids/array_types snapshots over an
// already-established *websocket.Conn. It owns no HTTP server or upgrade
// logic; the caller is responsible for accepting the connection.
type WebSocketObserver struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// NewWebSocketObserver wraps an established connection.
func NewWebSocketObserver(conn *websocket.Conn) *WebSocketObserver {
	return &WebSocketObserver{conn: conn}
}

// OnStep implements cellpotts.Observer. Write errors are swallowed (a
// disconnected renderer must not interrupt the simulation) and are not
// recorded anywhere on the observer.
func (o *WebSocketObserver) OnStep(s *cellpotts.Simulation) {
	snap := StepSnapshot{
		Step:  s.StepCount(),
		IDs:   s.ArrayIDs(),
		Types: s.ArrayTypes(),
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	_ = o.conn.WriteJSON(snap)
}

// Close closes the underlying connection.
func (o *WebSocketObserver) Close() error {
	return o.conn.Close()
}

var _ cellpotts.Observer = (*WebSocketObserver)(nil)
