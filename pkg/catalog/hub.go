package catalog

import (
	"sync"

	"github.com/rihla/rihla/pkg/core"
)

// Update announces that a snapshot was installed for a kind. Live search
// sessions use it to re-run their committed query when the searchable set
// grows under them.
type Update struct {
	Kind  core.Kind `json:"kind"`
	Count int       `json:"count"`
}

// UpdateHub fans updates out to subscribers, best effort: a subscriber whose
// buffer is full misses that update rather than backpressuring installs.
type UpdateHub struct {
	mu        sync.RWMutex
	listeners map[uint64]chan Update
	nextID    uint64
	bufSize   int
}

// NewUpdateHub constructs a hub with the given per-listener buffer size;
// sizes <= 0 fall back to 8.
func NewUpdateHub(bufSize int) *UpdateHub {
	if bufSize <= 0 {
		bufSize = 8
	}
	return &UpdateHub{
		listeners: make(map[uint64]chan Update),
		bufSize:   bufSize,
	}
}

func (h *UpdateHub) Register() (uint64, <-chan Update) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	ch := make(chan Update, h.bufSize)
	h.listeners[id] = ch
	return id, ch
}

// Unregister is safe to call twice; unknown ids are ignored.
func (h *UpdateHub) Unregister(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.listeners[id]; ok {
		delete(h.listeners, id)
		close(ch)
	}
}

func (h *UpdateHub) Broadcast(update Update) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.listeners {
		select {
		case ch <- update:
		default:
			// Drop for slow listener.
		}
	}
}

func (h *UpdateHub) Size() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}
