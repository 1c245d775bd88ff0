package sendseven

import (
	"context"
	"net/url"
)

// ContactPayload is the request body for creating or updating a contact.
// Empty fields are omitted so the API keeps its own defaults.
type ContactPayload struct {
	Name         string         `json:"name,omitempty"`
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	FirstName    string         `json:"first_name,omitempty"`
	LastName     string         `json:"last_name,omitempty"`
	Company      string         `json:"company,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
}

// ContactListOptions filters a contact listing.
type ContactListOptions struct {
	Search string
	Tag    string
}

func (o ContactListOptions) query() url.Values {
	q := url.Values{}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Tag != "" {
		q.Set("tag", o.Tag)
	}
	return q
}

func (c *Client) CreateContact(ctx context.Context, payload ContactPayload) (map[string]any, error) {
	return c.requestData(ctx, "POST", "/contacts", nil, payload)
}

func (c *Client) GetContact(ctx context.Context, id string) (map[string]any, error) {
	return c.requestData(ctx, "GET", "/contacts/"+id, nil, nil)
}

func (c *Client) UpdateContact(ctx context.Context, id string, payload ContactPayload) (map[string]any, error) {
	return c.requestData(ctx, "PATCH", "/contacts/"+id, nil, payload)
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.Request(ctx, "DELETE", "/contacts/"+id, nil, nil, nil)
}

func (c *Client) ListContacts(ctx context.Context, opts ContactListOptions) ([]map[string]any, error) {
	return c.RequestAllItems(ctx, "GET", "/contacts", opts.query())
}
