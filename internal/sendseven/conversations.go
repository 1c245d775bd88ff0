package sendseven

import (
	"context"
	"net/url"
)

// ConversationListOptions filters a conversation listing.
type ConversationListOptions struct {
	ChannelID string
	Status    string
	ContactID string
}

func (o ConversationListOptions) query() url.Values {
	q := url.Values{}
	if o.ChannelID != "" {
		q.Set("channel_id", o.ChannelID)
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	if o.ContactID != "" {
		q.Set("contact_id", o.ContactID)
	}
	return q
}

func (c *Client) GetConversation(ctx context.Context, id string) (map[string]any, error) {
	return c.requestData(ctx, "GET", "/conversations/"+id, nil, nil)
}

func (c *Client) ListConversations(ctx context.Context, opts ConversationListOptions) ([]map[string]any, error) {
	return c.RequestAllItems(ctx, "GET", "/conversations", opts.query())
}

// AssignConversation assigns a conversation to a teammate.
func (c *Client) AssignConversation(ctx context.Context, id, assigneeID string) (map[string]any, error) {
	body := map[string]string{"assignee_id": assigneeID}
	return c.requestData(ctx, "POST", "/conversations/"+id+"/assign", nil, body)
}

// SetConversationStatus opens, closes or snoozes a conversation.
func (c *Client) SetConversationStatus(ctx context.Context, id, status string) (map[string]any, error) {
	body := map[string]string{"status": status}
	return c.requestData(ctx, "POST", "/conversations/"+id+"/status", nil, body)
}

// AddConversationTags attaches tags to a conversation.
func (c *Client) AddConversationTags(ctx context.Context, id string, tags []string) (map[string]any, error) {
	body := map[string]any{"tags": tags}
	return c.requestData(ctx, "POST", "/conversations/"+id+"/tags", nil, body)
}
