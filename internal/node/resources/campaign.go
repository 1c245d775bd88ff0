package resources

import (
	"context"
	"fmt"

	"sendseven/internal/node"
	"sendseven/internal/sendseven"
	"sendseven/internal/types"
)

// Campaign exposes the campaign operations of the SendSeven API.
type Campaign struct {
	client *sendseven.Client
}

func NewCampaign(client *sendseven.Client) *Campaign {
	return &Campaign{client: client}
}

func (c *Campaign) Name() string { return "campaign" }

func (c *Campaign) Operations() []types.OperationDef {
	return []types.OperationDef{
		{
			Name:        "getAll",
			Description: "List campaigns",
		},
		{
			Name:        "addContact",
			Description: "Enroll a contact in a campaign",
			Params: map[string]types.FieldDef{
				"campaignId": {Type: "string", Description: "Campaign ID", Required: true},
				"contactId":  {Type: "string", Description: "Contact ID", Required: true},
			},
		},
	}
}

func (c *Campaign) Execute(ctx context.Context, operation string, params map[string]any) ([]map[string]any, error) {
	switch operation {
	case "getAll":
		return c.client.ListCampaigns(ctx)

	case "addContact":
		enrolled, err := c.client.AddContactToCampaign(ctx,
			node.StringParam(params, "campaignId"),
			node.StringParam(params, "contactId"))
		if err != nil {
			return nil, err
		}
		return one(enrolled), nil

	default:
		return nil, fmt.Errorf("campaign resource: unknown operation %q", operation)
	}
}
