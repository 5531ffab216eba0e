// Package ws supervises websocket connections: it upgrades requests,
// feeds every inbound message to the dispatcher, and cleans up on
// disconnect.
package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"activies-backend/internal/dispatch"
)

type Handler struct {
	dispatcher *dispatch.Dispatcher
	upgrader   websocket.Upgrader
}

func NewHandler(dispatcher *dispatch.Dispatcher) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and runs the read loop until the client
// goes away. Each inbound message becomes an independent request task, so
// replies may interleave in any order. There is no per-connection pooled
// state to tear down afterwards.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WARN] WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[INFO] Client connected: %s", conn.RemoteAddr())

	writeMu := &sync.Mutex{}
	ctx := r.Context()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}

		go h.dispatcher.Dispatch(ctx, raw, NewReplier(conn, writeMu))
	}

	log.Printf("[INFO] Client disconnected: %s", conn.RemoteAddr())
}
