package resources

import (
	"context"
	"fmt"

	"sendseven/internal/node"
	"sendseven/internal/sendseven"
	"sendseven/internal/types"
)

// Ticket exposes the ticket operations of the SendSeven API.
type Ticket struct {
	client *sendseven.Client
}

func NewTicket(client *sendseven.Client) *Ticket {
	return &Ticket{client: client}
}

func (t *Ticket) Name() string { return "ticket" }

func (t *Ticket) Operations() []types.OperationDef {
	return []types.OperationDef{
		{
			Name:        "create",
			Description: "Open a support ticket",
			Params: map[string]types.FieldDef{
				"subject":     {Type: "string", Description: "Ticket subject", Required: true},
				"description": {Type: "string", Description: "Ticket body"},
				"contactId":   {Type: "string", Description: "Related contact"},
				"priority":    {Type: "string", Description: "low, normal, high or urgent"},
			},
		},
		{
			Name:        "getAll",
			Description: "List tickets",
			Params: map[string]types.FieldDef{
				"status": {Type: "string", Description: "Filter by status"},
			},
		},
	}
}

func (t *Ticket) Execute(ctx context.Context, operation string, params map[string]any) ([]map[string]any, error) {
	switch operation {
	case "create":
		created, err := t.client.CreateTicket(ctx, sendseven.TicketPayload{
			Subject:     node.StringParam(params, "subject"),
			Description: node.StringParam(params, "description"),
			ContactID:   node.StringParam(params, "contactId"),
			Priority:    node.StringParam(params, "priority"),
		})
		if err != nil {
			return nil, err
		}
		return one(created), nil

	case "getAll":
		return t.client.ListTickets(ctx, node.StringParam(params, "status"))

	default:
		return nil, fmt.Errorf("ticket resource: unknown operation %q", operation)
	}
}
