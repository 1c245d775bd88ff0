package resources

import (
	"context"
	"fmt"

	"sendseven/internal/node"
	"sendseven/internal/sendseven"
	"sendseven/internal/types"
)

// Conversation exposes the conversation operations of the SendSeven API.
type Conversation struct {
	client *sendseven.Client
}

func NewConversation(client *sendseven.Client) *Conversation {
	return &Conversation{client: client}
}

func (c *Conversation) Name() string { return "conversation" }

func (c *Conversation) Operations() []types.OperationDef {
	return []types.OperationDef{
		{
			Name:        "get",
			Description: "Fetch a conversation by ID",
			Params: map[string]types.FieldDef{
				"conversationId": {Type: "string", Description: "Conversation ID", Required: true},
			},
		},
		{
			Name:        "getAll",
			Description: "List conversations",
			Params: map[string]types.FieldDef{
				"channelId": {Type: "string", Description: "Filter by channel"},
				"status":    {Type: "string", Description: "Filter by status (open, closed, snoozed)"},
				"contactId": {Type: "string", Description: "Filter by contact"},
			},
		},
		{
			Name:        "assign",
			Description: "Assign a conversation to a teammate",
			Params: map[string]types.FieldDef{
				"conversationId": {Type: "string", Description: "Conversation ID", Required: true},
				"assigneeId":     {Type: "string", Description: "Teammate ID", Required: true},
			},
		},
		{
			Name:        "setStatus",
			Description: "Open, close or snooze a conversation",
			Params: map[string]types.FieldDef{
				"conversationId": {Type: "string", Description: "Conversation ID", Required: true},
				"status":         {Type: "string", Description: "New status", Required: true},
			},
		},
		{
			Name:        "addTags",
			Description: "Attach tags to a conversation",
			Params: map[string]types.FieldDef{
				"conversationId": {Type: "string", Description: "Conversation ID", Required: true},
				"tags":           {Type: "array", Description: "Tag names", Required: true},
			},
		},
	}
}

func (c *Conversation) Execute(ctx context.Context, operation string, params map[string]any) ([]map[string]any, error) {
	id := node.StringParam(params, "conversationId")

	switch operation {
	case "get":
		conv, err := c.client.GetConversation(ctx, id)
		if err != nil {
			return nil, err
		}
		return one(conv), nil

	case "getAll":
		return c.client.ListConversations(ctx, sendseven.ConversationListOptions{
			ChannelID: node.StringParam(params, "channelId"),
			Status:    node.StringParam(params, "status"),
			ContactID: node.StringParam(params, "contactId"),
		})

	case "assign":
		conv, err := c.client.AssignConversation(ctx, id, node.StringParam(params, "assigneeId"))
		if err != nil {
			return nil, err
		}
		return one(conv), nil

	case "setStatus":
		conv, err := c.client.SetConversationStatus(ctx, id, node.StringParam(params, "status"))
		if err != nil {
			return nil, err
		}
		return one(conv), nil

	case "addTags":
		conv, err := c.client.AddConversationTags(ctx, id, node.StringSliceParam(params, "tags"))
		if err != nil {
			return nil, err
		}
		return one(conv), nil

	default:
		return nil, fmt.Errorf("conversation resource: unknown operation %q", operation)
	}
}
