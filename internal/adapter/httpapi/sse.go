package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// EventWriter frames JSON payloads as server-sent events on one response.
type EventWriter struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	rc      *http.ResponseController
	started bool
}

func NewEventWriter(w http.ResponseWriter) *EventWriter {
	return &EventWriter{w: w, rc: http.NewResponseController(w)}
}

func (e *EventWriter) open() {
	if e.started {
		return
	}
	e.started = true
	h := e.w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	e.w.WriteHeader(http.StatusOK)
}

// Send writes `data: <json>\n\n` and flushes it to the client.
func (e *EventWriter) Send(payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.open()
	if _, err := fmt.Fprintf(e.w, "data: %s\n\n", data); err != nil {
		return err
	}
	if err := e.rc.Flush(); err != nil {
		return fmt.Errorf("flush event: %w", err)
	}
	return nil
}

// Started reports whether the stream headers have been sent.
func (e *EventWriter) Started() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.started
}
