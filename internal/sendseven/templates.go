package sendseven

import "context"

// TemplateLanguage selects the template translation to send.
type TemplateLanguage struct {
	Code string `json:"code"`
}

// TemplateParameter is one substituted value inside a template component.
type TemplateParameter struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// TemplateComponent groups the parameters for one part of a WhatsApp
// template (body, header, button).
type TemplateComponent struct {
	Type       string              `json:"type"`
	Parameters []TemplateParameter `json:"parameters"`
}

// TemplatePayload identifies the template and its substitutions.
type TemplatePayload struct {
	Name       string              `json:"name"`
	Language   TemplateLanguage    `json:"language"`
	Components []TemplateComponent `json:"components,omitempty"`
}

// TemplateMessagePayload is the request body for sending a WhatsApp
// template message.
type TemplateMessagePayload struct {
	ContactID string          `json:"contact_id,omitempty"`
	ChannelID string          `json:"channel_id,omitempty"`
	To        string          `json:"to,omitempty"`
	Template  TemplatePayload `json:"template"`
}

func (c *Client) SendTemplate(ctx context.Context, payload TemplateMessagePayload) (map[string]any, error) {
	return c.requestData(ctx, "POST", "/messages/template", nil, payload)
}

func (c *Client) ListTemplates(ctx context.Context) ([]map[string]any, error) {
	return c.RequestAllItems(ctx, "GET", "/templates", nil)
}
