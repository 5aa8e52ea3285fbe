package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultNotificationDelay is how long a notification stays visible.
const DefaultNotificationDelay = 3 * time.Second

// Notification is a transient message shown to a single viewer.
type Notification struct {
	ID          string    `json:"id"`
	Page        PageID    `json:"page,omitempty"`
	Message     string    `json:"message"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Notifier keeps at most one visible notification per viewer and dismisses
// it after a fixed delay. Showing a new notification cancels the pending
// dismissal of the previous one.
type Notifier struct {
	mu     sync.Mutex
	hook   RefreshHook
	delay  time.Duration
	now    func() time.Time
	active map[string]*activeNotification
	closed bool
}

type activeNotification struct {
	note  Notification
	timer *time.Timer
}

// NewNotifier builds a notifier publishing through hook.
func NewNotifier(hook RefreshHook, delay time.Duration) *Notifier {
	if hook == nil {
		hook = noopRefreshHook{}
	}
	if delay <= 0 {
		delay = DefaultNotificationDelay
	}
	return &Notifier{
		hook:   hook,
		delay:  delay,
		now:    time.Now,
		active: make(map[string]*activeNotification),
	}
}

// Show replaces the viewer's notification and schedules its dismissal.
func (n *Notifier) Show(ctx context.Context, viewer string, page PageID, message, description string) (Notification, error) {
	if viewer == "" {
		return Notification{}, ErrMissingViewer
	}
	now := n.now()
	note := Notification{
		ID:          uuid.NewString(),
		Page:        page,
		Message:     message,
		Description: description,
		CreatedAt:   now,
		ExpiresAt:   now.Add(n.delay),
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return Notification{}, ErrServiceClosed
	}
	if prev, ok := n.active[viewer]; ok {
		prev.timer.Stop()
	}
	entry := &activeNotification{note: note}
	entry.timer = time.AfterFunc(n.delay, func() { n.expire(viewer, note.ID) })
	n.active[viewer] = entry
	n.mu.Unlock()

	err := n.hook.DashboardUpdated(ctx, DashboardEvent{
		Page:         page,
		Viewer:       viewer,
		Reason:       EventNotification,
		Notification: &note,
		At:           now,
	})
	return note, err
}

// Current returns the viewer's visible notification.
func (n *Notifier) Current(viewer string) (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	entry, ok := n.active[viewer]
	if !ok {
		return Notification{}, false
	}
	return entry.note, true
}

// Dismiss hides the viewer's notification immediately.
func (n *Notifier) Dismiss(ctx context.Context, viewer string) error {
	n.mu.Lock()
	entry, ok := n.active[viewer]
	if ok {
		entry.timer.Stop()
		delete(n.active, viewer)
	}
	n.mu.Unlock()
	if !ok {
		return nil
	}
	return n.publishDismiss(ctx, viewer, entry.note)
}

// Close stops every pending dismissal timer.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	for key, entry := range n.active {
		entry.timer.Stop()
		delete(n.active, key)
	}
}

func (n *Notifier) expire(viewer, id string) {
	n.mu.Lock()
	entry, ok := n.active[viewer]
	if !ok || entry.note.ID != id {
		n.mu.Unlock()
		return
	}
	delete(n.active, viewer)
	n.mu.Unlock()
	_ = n.publishDismiss(context.Background(), viewer, entry.note)
}

func (n *Notifier) publishDismiss(ctx context.Context, viewer string, note Notification) error {
	return n.hook.DashboardUpdated(ctx, DashboardEvent{
		Page:         note.Page,
		Viewer:       viewer,
		Reason:       EventNotificationDismiss,
		Notification: &note,
		At:           n.now(),
	})
}
