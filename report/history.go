package report

import (
	"sync"
	"time"
)

// HistoryItem is one entry of the recent-generation list shown on the
// reports page.
type HistoryItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Period    string    `json:"period"`
	Format    string    `json:"format"`
	SizeLabel string    `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// History is a session-scoped, newest-first list of generated reports.
// It is a convenience view, not a system of record; the reports table is
// authoritative. No deduplication is performed.
type History struct {
	mu    sync.RWMutex
	items []HistoryItem
	limit int
}

// NewHistory creates a history capped at limit entries (0 = unbounded)
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Prepend inserts the item at index 0
func (h *History) Prepend(item HistoryItem) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = append([]HistoryItem{item}, h.items...)
	if h.limit > 0 && len(h.items) > h.limit {
		h.items = h.items[:h.limit]
	}
}

// Items returns a copy of the list, newest first
func (h *History) Items() []HistoryItem {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]HistoryItem, len(h.items))
	copy(out, h.items)
	return out
}

// Len returns the number of stored items
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.items)
}
