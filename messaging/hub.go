package messaging

import (
	"sync"

	"github.com/ddt-go/ddt/label"
)

// Hub is the shared-memory message fabric the splaying engine runs over:
// one inbox queue per destination tile, one broadcast pool shared by every
// tile (each tracking its own read cursor into it), and a dedup set per
// (source, destination) pair so the same point is never queued twice for
// the same destination from the same source.
//
// Hub is safe for concurrent use: every exported method takes the single
// mutex for the duration of its bookkeeping.
type Hub struct {
	mu sync.Mutex

	inboxes map[label.Index][]Item
	sent    map[label.Index]map[label.Index]map[key]struct{}

	broadcast []Item
	cursor    map[label.Index]int
}

// New returns an empty Hub.
func New() *Hub {
	return &Hub{
		inboxes: make(map[label.Index][]Item),
		sent:    make(map[label.Index]map[label.Index]map[key]struct{}),
		cursor:  make(map[label.Index]int),
	}
}

// Inbox drains and returns every item currently queued for tile t.
func (h *Hub) Inbox(t label.Index) []Item {
	h.mu.Lock()
	defer h.mu.Unlock()
	items := h.inboxes[t]
	delete(h.inboxes, t)
	return items
}

// SendOne enqueues, for each destination in targets, the items not already
// sent from src to that destination, and returns how many items were
// actually newly enqueued (across all destinations).
func (h *Hub) SendOne(src label.Index, targets map[label.Index][]Item) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	sentFromSrc, ok := h.sent[src]
	if !ok {
		sentFromSrc = make(map[label.Index]map[key]struct{})
		h.sent[src] = sentFromSrc
	}

	n := 0
	for dst, items := range targets {
		seen, ok := sentFromSrc[dst]
		if !ok {
			seen = make(map[key]struct{})
			sentFromSrc[dst] = seen
		}
		for _, it := range items {
			k := itemKey(it)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			h.inboxes[dst] = append(h.inboxes[dst], it)
			n++
		}
	}
	return n
}

// SendAll appends items to the shared broadcast pool; every tile will pick
// them up the next time it advances its BroadcastCursor.
func (h *Hub) SendAll(items []Item) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broadcast = append(h.broadcast, items...)
}

// BroadcastCursor returns the broadcast-pool items tile t has not yet
// consumed, and advances its cursor past them.
func (h *Hub) BroadcastCursor(t label.Index) []Item {
	h.mu.Lock()
	defer h.mu.Unlock()
	pos := h.cursor[t]
	if pos >= len(h.broadcast) {
		return nil
	}
	out := append([]Item(nil), h.broadcast[pos:]...)
	h.cursor[t] = len(h.broadcast)
	return out
}

// Pending reports whether any of tiles has unread inbox or broadcast
// items — the shared-memory termination condition the splaying engine
// polls. Callers pass the full tile set since the Hub itself only learns
// of a tile once something is queued for or consumed by it.
func (h *Hub) Pending(tiles []label.Index) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, t := range tiles {
		if len(h.inboxes[t]) > 0 {
			return true
		}
		if h.cursor[t] < len(h.broadcast) {
			return true
		}
	}
	return false
}
