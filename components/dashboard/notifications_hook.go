package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// NotificationsClient is the minimal interface needed from an external
// notification service (chat webhook, push gateway).
type NotificationsClient interface {
	PublishNotification(ctx context.Context, channel string, event DashboardEvent) error
}

// NotificationsHook forwards toast notifications to an external client.
// Every other event reason is ignored.
type NotificationsHook struct {
	Client  NotificationsClient
	Channel string
}

// DashboardUpdated implements RefreshHook.
func (h *NotificationsHook) DashboardUpdated(ctx context.Context, event DashboardEvent) error {
	if h == nil || h.Client == nil {
		return nil
	}
	if event.Reason != EventNotification || event.Notification == nil {
		return nil
	}
	return h.Client.PublishNotification(ctx, h.Channel, event)
}

// WebhookClient posts notifications as JSON to a URL.
type WebhookClient struct {
	URL  string
	HTTP *http.Client
}

// NewWebhookClient builds a client with a bounded request timeout.
func NewWebhookClient(url string, timeout time.Duration) *WebhookClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WebhookClient{URL: url, HTTP: &http.Client{Timeout: timeout}}
}

type webhookPayload struct {
	Channel     string    `json:"channel,omitempty"`
	Viewer      string    `json:"viewer"`
	Page        PageID    `json:"page,omitempty"`
	Message     string    `json:"message"`
	Description string    `json:"description,omitempty"`
	At          time.Time `json:"at"`
}

// PublishNotification implements NotificationsClient.
func (c *WebhookClient) PublishNotification(ctx context.Context, channel string, event DashboardEvent) error {
	body, err := json.Marshal(webhookPayload{
		Channel:     channel,
		Viewer:      event.Viewer,
		Page:        event.Page,
		Message:     event.Notification.Message,
		Description: event.Notification.Description,
		At:          event.At,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("dashboard: notifications webhook: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("dashboard: notifications webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("dashboard: notifications webhook returned %s", resp.Status)
	}
	return nil
}
