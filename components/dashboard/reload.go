package dashboard

import (
	"sync"
	"time"
)

// DefaultReloadDelay is the pause between a manual refresh and the reload.
const DefaultReloadDelay = time.Second

// ReloadScheduler runs one delayed reload per session key. Scheduling again
// before the delay elapses replaces the pending reload.
type ReloadScheduler struct {
	mu      sync.Mutex
	delay   time.Duration
	pending map[SessionKey]*time.Timer
	closed  bool
}

// NewReloadScheduler builds a scheduler with the given delay.
func NewReloadScheduler(delay time.Duration) *ReloadScheduler {
	if delay <= 0 {
		delay = DefaultReloadDelay
	}
	return &ReloadScheduler{
		delay:   delay,
		pending: make(map[SessionKey]*time.Timer),
	}
}

// Schedule arranges for fire to run after the delay. It reports false when
// the scheduler is closed.
func (r *ReloadScheduler) Schedule(key SessionKey, fire func()) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	if prev, ok := r.pending[key]; ok {
		prev.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(r.delay, func() {
		r.mu.Lock()
		current, ok := r.pending[key]
		if !ok || current != timer {
			r.mu.Unlock()
			return
		}
		delete(r.pending, key)
		r.mu.Unlock()
		fire()
	})
	r.pending[key] = timer
	return true
}

// Pending reports whether a reload is waiting for key.
func (r *ReloadScheduler) Pending(key SessionKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pending[key]
	return ok
}

// Cancel drops the pending reload for key.
func (r *ReloadScheduler) Cancel(key SessionKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if timer, ok := r.pending[key]; ok {
		timer.Stop()
		delete(r.pending, key)
	}
}

// Close cancels every pending reload and rejects new ones.
func (r *ReloadScheduler) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	for key, timer := range r.pending {
		timer.Stop()
		delete(r.pending, key)
	}
}
