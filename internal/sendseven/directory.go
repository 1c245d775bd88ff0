package sendseven

import "context"

// Directory endpoints back the dynamic dropdowns in the host UI.

func (c *Client) ListChannels(ctx context.Context) ([]map[string]any, error) {
	return c.RequestAllItems(ctx, "GET", "/channels", nil)
}

func (c *Client) ListTags(ctx context.Context) ([]map[string]any, error) {
	return c.RequestAllItems(ctx, "GET", "/tags", nil)
}

func (c *Client) ListTeammates(ctx context.Context) ([]map[string]any, error) {
	return c.RequestAllItems(ctx, "GET", "/teammates", nil)
}
