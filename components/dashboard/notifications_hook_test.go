package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClient struct {
	mu       sync.Mutex
	channels []string
	events   []DashboardEvent
}

func (c *recordingClient) PublishNotification(_ context.Context, channel string, event DashboardEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channels = append(c.channels, channel)
	c.events = append(c.events, event)
	return nil
}

func TestNotificationsHookForwardsOnlyNotifications(t *testing.T) {
	client := &recordingClient{}
	hook := &NotificationsHook{Client: client, Channel: "sales"}
	ctx := context.Background()

	note := Notification{ID: "n1", Message: "Filter applied: Europe"}
	require.NoError(t, hook.DashboardUpdated(ctx, DashboardEvent{Reason: EventFilter}))
	require.NoError(t, hook.DashboardUpdated(ctx, DashboardEvent{Reason: EventNotificationDismiss, Notification: &note}))
	require.NoError(t, hook.DashboardUpdated(ctx, DashboardEvent{Reason: EventNotification, Viewer: "u", Notification: &note}))

	require.Len(t, client.events, 1)
	assert.Equal(t, "sales", client.channels[0])
	assert.Equal(t, "u", client.events[0].Viewer)

	var unset *NotificationsHook
	assert.NoError(t, unset.DashboardUpdated(ctx, DashboardEvent{Reason: EventNotification, Notification: &note}))
}

func TestServiceToastReachesNotificationsClient(t *testing.T) {
	client := &recordingClient{}
	recorder := &eventRecorder{}
	svc := newTestService(t, Options{RefreshHook: MultiHook{recorder, &NotificationsHook{Client: client}}})

	_, err := svc.ReorderWidgets(context.Background(), ViewerContext{UserID: "u"}, PageOverview, "sales-card", "revenue-card")
	require.NoError(t, err)

	client.mu.Lock()
	defer client.mu.Unlock()
	require.Len(t, client.events, 1)
	assert.Equal(t, "Layout updated", client.events[0].Notification.Message)
	assert.True(t, recorder.has(EventReorder))
}

func TestWebhookClientPostsJSON(t *testing.T) {
	var got webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode webhook body: %v", err)
		}
		if got.Message == "fail" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewWebhookClient(server.URL, time.Second)
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	event := DashboardEvent{
		Page:         PageOverview,
		Viewer:       "u",
		Reason:       EventNotification,
		Notification: &Notification{Message: "Refreshing dashboard", Description: "Data will reload shortly"},
		At:           at,
	}
	require.NoError(t, client.PublishNotification(context.Background(), "ops", event))
	assert.Equal(t, webhookPayload{Channel: "ops", Viewer: "u", Page: PageOverview, Message: "Refreshing dashboard", Description: "Data will reload shortly", At: at}, got)

	event.Notification = &Notification{Message: "fail"}
	assert.Error(t, client.PublishNotification(context.Background(), "ops", event))
}
