package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dismissedIDs(r *eventRecorder) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, e := range r.events {
		if e.Reason == EventNotificationDismiss && e.Notification != nil {
			ids = append(ids, e.Notification.ID)
		}
	}
	return ids
}

func TestNotifierNewNoteCancelsPendingDismissal(t *testing.T) {
	hook := &eventRecorder{}
	notifier := NewNotifier(hook, 200*time.Millisecond)
	defer notifier.Close()
	ctx := context.Background()

	first, err := notifier.Show(ctx, "u", PageOverview, "Filter applied: Europe", "")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)
	second, err := notifier.Show(ctx, "u", PageOverview, "Layout updated", "Dashboard layout has been updated")
	require.NoError(t, err)

	// Past the first note's deadline, before the second's.
	time.Sleep(150 * time.Millisecond)
	current, ok := notifier.Current("u")
	require.True(t, ok, "second note must survive the first note's timer")
	assert.Equal(t, second.ID, current.ID)
	assert.Empty(t, dismissedIDs(hook))

	require.Eventually(t, func() bool { return len(dismissedIDs(hook)) > 0 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{second.ID}, dismissedIDs(hook))
	assert.NotContains(t, dismissedIDs(hook), first.ID)
	_, ok = notifier.Current("u")
	assert.False(t, ok)
}

func TestNotifierDismissAndClose(t *testing.T) {
	hook := &eventRecorder{}
	notifier := NewNotifier(hook, time.Minute)
	ctx := context.Background()

	note, err := notifier.Show(ctx, "u", PageOverview, "Refreshing dashboard", "")
	require.NoError(t, err)
	assert.Equal(t, note.CreatedAt.Add(time.Minute), note.ExpiresAt)
	require.NoError(t, notifier.Dismiss(ctx, "u"))
	assert.Equal(t, []string{note.ID}, dismissedIDs(hook))
	require.NoError(t, notifier.Dismiss(ctx, "u"), "dismissing twice is a no-op")

	_, err = notifier.Show(ctx, "", PageOverview, "x", "")
	assert.ErrorIs(t, err, ErrMissingViewer)

	notifier.Close()
	_, err = notifier.Show(ctx, "u", PageOverview, "x", "")
	assert.ErrorIs(t, err, ErrServiceClosed)
}
