package sendseven

import (
	"context"
	"errors"
	"net/http"
)

// WebhookPayload is the request body for registering a webhook subscription.
type WebhookPayload struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
	Secret string   `json:"secret,omitempty"`
}

func (c *Client) CreateWebhook(ctx context.Context, payload WebhookPayload) (map[string]any, error) {
	return c.requestData(ctx, "POST", "/webhooks", nil, payload)
}

func (c *Client) ListWebhooks(ctx context.Context) ([]map[string]any, error) {
	return c.RequestAllItems(ctx, "GET", "/webhooks", nil)
}

// DeleteWebhook removes a subscription. A 404 counts as success so that
// teardown stays idempotent when the subscription is already gone.
func (c *Client) DeleteWebhook(ctx context.Context, id string) error {
	err := c.Request(ctx, "DELETE", "/webhooks/"+id, nil, nil, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return nil
	}
	return err
}
