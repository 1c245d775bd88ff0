package sendseven

import (
	"context"
	"net/url"
)

// Attachment references a file to send alongside a message.
type Attachment struct {
	URL      string `json:"url"`
	Type     string `json:"type,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// MessagePayload is the request body for sending a message. A message is
// addressed either to an existing conversation or to a contact on a channel.
type MessagePayload struct {
	ConversationID string       `json:"conversation_id,omitempty"`
	ContactID      string       `json:"contact_id,omitempty"`
	ChannelID      string       `json:"channel_id,omitempty"`
	Type           string       `json:"type,omitempty"`
	Text           string       `json:"text,omitempty"`
	Attachments    []Attachment `json:"attachments,omitempty"`
}

func (c *Client) SendMessage(ctx context.Context, payload MessagePayload) (map[string]any, error) {
	return c.requestData(ctx, "POST", "/messages", nil, payload)
}

// ListMessages returns every message of a conversation.
func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("conversation_id", conversationID)
	return c.RequestAllItems(ctx, "GET", "/messages", q)
}
