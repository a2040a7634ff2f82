package web

import (
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Hub fans the re-rendered subscriptions fragment out to every connected
// Server-Sent Events client. Slow clients are skipped rather than blocked on;
// they catch up on the next broadcast.
type Hub struct {
	log *zerolog.Logger

	mu      sync.Mutex
	clients map[chan string]struct{}
}

func NewHub(logger *zerolog.Logger) *Hub {
	hubLog := logger.With().Str("component", "SSEHub").Logger()
	return &Hub{
		log:     &hubLog,
		clients: make(map[chan string]struct{}),
	}
}

// Broadcast queues the fragment for every connected client.
func (h *Hub) Broadcast(fragment string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- fragment:
		default:
		}
	}
}

// ClientCount reports the number of connected event streams.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) subscribe() chan string {
	ch := make(chan string, 4)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
}

// ServeHTTP streams subscription fragments until the client disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := h.subscribe()
	defer h.unsubscribe(ch)
	h.log.Debug().Msg("sse client connected")

	for {
		select {
		case <-r.Context().Done():
			h.log.Debug().Msg("sse client disconnected")
			return
		case fragment := <-ch:
			writeEvent(w, "subscriptions", fragment)
			flusher.Flush()
		}
	}
}

// writeEvent emits one SSE event. Multi-line payloads become one data: line
// per payload line, per the SSE wire format.
func writeEvent(w http.ResponseWriter, event, data string) {
	w.Write([]byte("event: " + event + "\n"))
	for _, line := range strings.Split(data, "\n") {
		w.Write([]byte("data: " + line + "\n"))
	}
	w.Write([]byte("\n"))
}
