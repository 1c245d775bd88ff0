package resources

import (
	"context"
	"fmt"

	"sendseven/internal/node"
	"sendseven/internal/sendseven"
	"sendseven/internal/types"
)

// Template exposes WhatsApp template operations of the SendSeven API.
type Template struct {
	client *sendseven.Client
}

func NewTemplate(client *sendseven.Client) *Template {
	return &Template{client: client}
}

func (t *Template) Name() string { return "template" }

func (t *Template) Operations() []types.OperationDef {
	return []types.OperationDef{
		{
			Name:        "send",
			Description: "Send a WhatsApp template message",
			Params: map[string]types.FieldDef{
				"templateName": {Type: "string", Description: "Approved template name", Required: true},
				"language":     {Type: "string", Description: "Template language code (default en)"},
				"contactId":    {Type: "string", Description: "Target contact"},
				"channelId":    {Type: "string", Description: "WhatsApp channel to send through"},
				"to":           {Type: "string", Description: "Raw phone number target"},
				"variables":    {Type: "array", Description: "Body variable values, in order"},
			},
		},
		{
			Name:        "getAll",
			Description: "List approved templates",
		},
	}
}

func (t *Template) Execute(ctx context.Context, operation string, params map[string]any) ([]map[string]any, error) {
	switch operation {
	case "send":
		payload := BuildTemplatePayload(params)
		sent, err := t.client.SendTemplate(ctx, payload)
		if err != nil {
			return nil, err
		}
		return one(sent), nil

	case "getAll":
		return t.client.ListTemplates(ctx)

	default:
		return nil, fmt.Errorf("template resource: unknown operation %q", operation)
	}
}

// BuildTemplatePayload maps the send parameters onto the API body. Each
// configured variable becomes exactly one body component parameter of type
// "text" carrying the stringified value.
func BuildTemplatePayload(params map[string]any) sendseven.TemplateMessagePayload {
	language := node.StringParam(params, "language")
	if language == "" {
		language = "en"
	}

	payload := sendseven.TemplateMessagePayload{
		ContactID: node.StringParam(params, "contactId"),
		ChannelID: node.StringParam(params, "channelId"),
		To:        node.StringParam(params, "to"),
		Template: sendseven.TemplatePayload{
			Name:     node.StringParam(params, "templateName"),
			Language: sendseven.TemplateLanguage{Code: language},
		},
	}

	variables, _ := params["variables"].([]any)
	if len(variables) == 0 {
		return payload
	}

	component := sendseven.TemplateComponent{
		Type:       "body",
		Parameters: make([]sendseven.TemplateParameter, 0, len(variables)),
	}
	for _, v := range variables {
		component.Parameters = append(component.Parameters, sendseven.TemplateParameter{
			Type: "text",
			Text: fmt.Sprintf("%v", v),
		})
	}
	payload.Template.Components = []sendseven.TemplateComponent{component}

	return payload
}
