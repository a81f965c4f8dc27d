// Package spectate streams match snapshots to read-only viewers over a
// websocket.
package spectate

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"

	"github.com/jtestard/pong-series/pong"
)

// Hub fans snapshots out to connected viewers. Slow viewers only ever see the
// latest snapshot; Publish never blocks the game loop.
type Hub struct {
	mu      sync.Mutex
	viewers map[uuid.UUID]chan pong.Snapshot
	last    *pong.Snapshot
}

func NewHub() *Hub {
	return &Hub{viewers: make(map[uuid.UUID]chan pong.Snapshot)}
}

// Publish hands s to every viewer, replacing anything they have not sent yet
func (h *Hub) Publish(s pong.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = &s
	for _, ch := range h.viewers {
		offer(ch, s)
	}
}

// offer drops the pending snapshot, if any, in favour of s
func offer(ch chan pong.Snapshot, s pong.Snapshot) {
	select {
	case ch <- s:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- s:
	default:
	}
}

// Viewers reports how many viewers are connected
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

func (h *Hub) join() (uuid.UUID, chan pong.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.New()
	ch := make(chan pong.Snapshot, 1)
	if h.last != nil {
		ch <- *h.last
	}
	h.viewers[id] = ch
	return id, ch
}

func (h *Hub) leave(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.viewers, id)
}

// Handler returns the websocket endpoint. Each viewer receives the latest
// snapshot as JSON whenever one is published. Anything a viewer sends is
// ignored.
func (h *Hub) Handler() websocket.Handler {
	return func(ws *websocket.Conn) {
		defer ws.Close()

		id, ch := h.join()
		defer h.leave(id)
		log.Printf("viewer %s connected from %s", id, ws.Request().RemoteAddr)

		gone := make(chan struct{})
		go func() {
			defer close(gone)
			var discard []byte
			for {
				if err := websocket.Message.Receive(ws, &discard); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case s := <-ch:
				if err := websocket.JSON.Send(ws, s); err != nil {
					log.Printf("viewer %s dropped: %v", id, err)
					return
				}
			case <-gone:
				log.Printf("viewer %s disconnected", id)
				return
			}
		}
	}
}
