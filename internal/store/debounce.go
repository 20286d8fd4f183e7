package store

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of writes per key, running only the last
// function triggered within the delay window
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	pending map[string]*pendingWrite
}

type pendingWrite struct {
	timer *time.Timer
	fn    func()
}

// NewDebouncer creates a debouncer with the given trailing delay
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:   delay,
		pending: make(map[string]*pendingWrite),
	}
}

// Trigger schedules fn to run after the delay, replacing any write already
// pending for the same key
func (d *Debouncer) Trigger(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
	}

	p := &pendingWrite{fn: fn}
	p.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.pending[key] == p {
			delete(d.pending, key)
		}
		d.mu.Unlock()
		fn()
	})
	d.pending[key] = p
}

// Flush runs every pending write immediately. Used on shutdown so coalesced
// writes are not lost.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	flushed := make([]func(), 0, len(d.pending))
	for key, p := range d.pending {
		if p.timer.Stop() {
			flushed = append(flushed, p.fn)
		}
		delete(d.pending, key)
	}
	d.mu.Unlock()

	for _, fn := range flushed {
		fn()
	}
}
