package resources

import (
	"context"
	"fmt"

	"sendseven/internal/node"
	"sendseven/internal/sendseven"
	"sendseven/internal/types"
)

// Message exposes the message operations of the SendSeven API.
type Message struct {
	client *sendseven.Client
}

func NewMessage(client *sendseven.Client) *Message {
	return &Message{client: client}
}

func (m *Message) Name() string { return "message" }

func (m *Message) Operations() []types.OperationDef {
	return []types.OperationDef{
		{
			Name:        "send",
			Description: "Send a message to a conversation or contact",
			Params: map[string]types.FieldDef{
				"text":           {Type: "string", Description: "Message text", Required: true},
				"conversationId": {Type: "string", Description: "Target conversation"},
				"contactId":      {Type: "string", Description: "Target contact (with channelId)"},
				"channelId":      {Type: "string", Description: "Channel to send through"},
				"attachments":    {Type: "array", Description: "Attachment URLs"},
			},
		},
		{
			Name:        "getAll",
			Description: "List messages in a conversation",
			Params: map[string]types.FieldDef{
				"conversationId": {Type: "string", Description: "Conversation ID", Required: true},
			},
		},
	}
}

func (m *Message) Execute(ctx context.Context, operation string, params map[string]any) ([]map[string]any, error) {
	switch operation {
	case "send":
		payload, err := BuildMessagePayload(params)
		if err != nil {
			return nil, err
		}
		sent, err := m.client.SendMessage(ctx, payload)
		if err != nil {
			return nil, err
		}
		return one(sent), nil

	case "getAll":
		return m.client.ListMessages(ctx, node.StringParam(params, "conversationId"))

	default:
		return nil, fmt.Errorf("message resource: unknown operation %q", operation)
	}
}

// BuildMessagePayload maps the send parameters onto the API body. A message
// needs either a conversation or a contact+channel pair as its target.
func BuildMessagePayload(params map[string]any) (sendseven.MessagePayload, error) {
	payload := sendseven.MessagePayload{
		ConversationID: node.StringParam(params, "conversationId"),
		ContactID:      node.StringParam(params, "contactId"),
		ChannelID:      node.StringParam(params, "channelId"),
		Type:           "text",
		Text:           node.StringParam(params, "text"),
	}

	if payload.ConversationID == "" && (payload.ContactID == "" || payload.ChannelID == "") {
		return sendseven.MessagePayload{}, fmt.Errorf("message needs either conversationId or both contactId and channelId")
	}

	for _, u := range node.StringSliceParam(params, "attachments") {
		payload.Attachments = append(payload.Attachments, sendseven.Attachment{URL: u})
	}
	if len(payload.Attachments) > 0 {
		payload.Type = "attachment"
	}

	return payload, nil
}
