package sendseven

import (
	"context"
	"net/url"
)

// TicketPayload is the request body for opening a support ticket.
type TicketPayload struct {
	Subject     string `json:"subject"`
	Description string `json:"description,omitempty"`
	ContactID   string `json:"contact_id,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

func (c *Client) CreateTicket(ctx context.Context, payload TicketPayload) (map[string]any, error) {
	return c.requestData(ctx, "POST", "/tickets", nil, payload)
}

func (c *Client) ListTickets(ctx context.Context, status string) ([]map[string]any, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	return c.RequestAllItems(ctx, "GET", "/tickets", q)
}
