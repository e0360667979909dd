package core

import "sync"

// Feed hands snapshots from the simulating goroutine to readers.
// Publish replaces the latest snapshot; readers never see a partial tick.
type Feed struct {
	mu      sync.RWMutex
	latest  Snapshot
	has     bool
	updates chan struct{}
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{updates: make(chan struct{}, 1)}
}

// Publish stores snap as the latest snapshot and wakes one waiting reader.
// Notifications coalesce: a slow reader only ever sees the newest snapshot.
func (f *Feed) Publish(snap Snapshot) {
	f.mu.Lock()
	f.latest = snap
	f.has = true
	f.mu.Unlock()

	select {
	case f.updates <- struct{}{}:
	default:
	}
}

// Latest returns the most recent snapshot and whether one was published.
func (f *Feed) Latest() (Snapshot, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.latest, f.has
}

// Updates signals after each Publish.
func (f *Feed) Updates() <-chan struct{} {
	return f.updates
}
