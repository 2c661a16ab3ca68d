package server

import (
	"sync"
	"time"
)

// uploadSummary describes a processed upload for the admin listing.
type uploadSummary struct {
	RequestID    string    `json:"requestId"`
	User         string    `json:"user"`
	OriginalName string    `json:"originalName"`
	SizeBytes    int64     `json:"sizeBytes"`
	Format       string    `json:"format"`
	HasEXIF      bool      `json:"hasExif"`
	HasGPS       bool      `json:"hasGps"`
	At           time.Time `json:"at"`
}

// recentUploads is a fixed size ring of upload summaries.
type recentUploads struct {
	mu   sync.Mutex
	ring []uploadSummary
	next int
	full bool
}

func newRecentUploads(n int) *recentUploads {
	if n < 1 {
		n = 1
	}
	return &recentUploads{ring: make([]uploadSummary, n)}
}

func (ru *recentUploads) add(s uploadSummary) {
	ru.mu.Lock()
	defer ru.mu.Unlock()
	ru.ring[ru.next] = s
	ru.next = (ru.next + 1) % len(ru.ring)
	if ru.next == 0 {
		ru.full = true
	}
}

// list returns the summaries, newest first.
func (ru *recentUploads) list() []uploadSummary {
	ru.mu.Lock()
	defer ru.mu.Unlock()
	n := ru.next
	if ru.full {
		n = len(ru.ring)
	}
	out := make([]uploadSummary, 0, n)
	for i := 1; i <= n; i++ {
		idx := (ru.next - i + len(ru.ring)) % len(ru.ring)
		out = append(out, ru.ring[idx])
	}
	return out
}
