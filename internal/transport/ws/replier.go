package ws

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/gorilla/websocket"
)

// ErrAlreadyReplied is returned when a second send is attempted for the
// same logical request.
var ErrAlreadyReplied = errors.New("reply already sent for this request")

// messageWriter is the slice of *websocket.Conn the replier needs.
type messageWriter interface {
	WriteMessage(messageType int, data []byte) error
}

// Replier delivers at most one reply for one logical request. Writes from
// concurrent requests on the same connection serialize on the shared
// write mutex (the connection allows only one concurrent writer).
type Replier struct {
	conn    messageWriter
	writeMu *sync.Mutex

	mu   sync.Mutex
	sent bool
}

// NewReplier wires a replier to a connection. writeMu must be the mutex
// shared by every replier of that connection.
func NewReplier(conn messageWriter, writeMu *sync.Mutex) *Replier {
	return &Replier{conn: conn, writeMu: writeMu}
}

// Send marshals the payload and transmits it. The first call wins: any
// later call returns ErrAlreadyReplied without touching the connection.
// A transport failure is reported to the caller and also consumes the
// single attempt; no further reply will go out for this request.
func (r *Replier) Send(payload any) error {
	r.mu.Lock()
	if r.sent {
		r.mu.Unlock()
		return ErrAlreadyReplied
	}
	r.sent = true
	r.mu.Unlock()

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	return r.conn.WriteMessage(websocket.TextMessage, data)
}
