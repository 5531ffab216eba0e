package ws

import (
	"errors"
	"sync"
	"testing"
)

type fakeConn struct {
	mu     sync.Mutex
	writes [][]byte
	err    error
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, data)
	return f.err
}

func TestReplier_SingleSend(t *testing.T) {
	conn := &fakeConn{}
	r := NewReplier(conn, &sync.Mutex{})

	if err := r.Send(map[string]string{"status": "ok"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := r.Send(map[string]string{"status": "ok"}); !errors.Is(err, ErrAlreadyReplied) {
		t.Errorf("second send error = %v, want %v", err, ErrAlreadyReplied)
	}

	if len(conn.writes) != 1 {
		t.Errorf("wrote %d frames, want 1", len(conn.writes))
	}
	if string(conn.writes[0]) != `{"status":"ok"}` {
		t.Errorf("frame = %s", conn.writes[0])
	}
}

func TestReplier_WriteFailureConsumesAttempt(t *testing.T) {
	writeErr := errors.New("connection closed")
	conn := &fakeConn{err: writeErr}
	r := NewReplier(conn, &sync.Mutex{})

	if err := r.Send("payload"); !errors.Is(err, writeErr) {
		t.Errorf("error = %v, want %v", err, writeErr)
	}

	// The failed attempt was the one attempt; nothing more goes out.
	if err := r.Send("payload"); !errors.Is(err, ErrAlreadyReplied) {
		t.Errorf("second send error = %v, want %v", err, ErrAlreadyReplied)
	}
	if len(conn.writes) != 1 {
		t.Errorf("wrote %d frames, want 1", len(conn.writes))
	}
}

func TestReplier_ConcurrentSendsWriteOnce(t *testing.T) {
	conn := &fakeConn{}
	r := NewReplier(conn, &sync.Mutex{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Send("payload")
		}()
	}
	wg.Wait()

	if len(conn.writes) != 1 {
		t.Errorf("wrote %d frames, want exactly 1", len(conn.writes))
	}
}
