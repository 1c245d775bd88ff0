package sendseven

import "context"

func (c *Client) ListCampaigns(ctx context.Context) ([]map[string]any, error) {
	return c.RequestAllItems(ctx, "GET", "/campaigns", nil)
}

// AddContactToCampaign enrolls a contact in a campaign.
func (c *Client) AddContactToCampaign(ctx context.Context, campaignID, contactID string) (map[string]any, error) {
	body := map[string]string{"contact_id": contactID}
	return c.requestData(ctx, "POST", "/campaigns/"+campaignID+"/contacts", nil, body)
}
