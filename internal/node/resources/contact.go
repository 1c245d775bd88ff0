package resources

import (
	"context"
	"fmt"

	"sendseven/internal/node"
	"sendseven/internal/sendseven"
	"sendseven/internal/types"
)

// Contact exposes the contact operations of the SendSeven API.
type Contact struct {
	client *sendseven.Client
}

func NewContact(client *sendseven.Client) *Contact {
	return &Contact{client: client}
}

func (c *Contact) Name() string { return "contact" }

func (c *Contact) Operations() []types.OperationDef {
	return []types.OperationDef{
		{
			Name:        "create",
			Description: "Create a contact",
			Params: map[string]types.FieldDef{
				"name":             {Type: "string", Description: "Display name", Required: true},
				"email":            {Type: "string", Description: "Email address"},
				"phone":            {Type: "string", Description: "Phone number in E.164 format"},
				"additionalFields": {Type: "object", Description: "firstName, lastName, company, notes, customFields"},
			},
		},
		{
			Name:        "get",
			Description: "Fetch a contact by ID",
			Params: map[string]types.FieldDef{
				"contactId": {Type: "string", Description: "Contact ID", Required: true},
			},
		},
		{
			Name:        "getAll",
			Description: "List contacts",
			Params: map[string]types.FieldDef{
				"search": {Type: "string", Description: "Free-text search"},
				"tag":    {Type: "string", Description: "Filter by tag"},
			},
		},
		{
			Name:        "update",
			Description: "Update a contact",
			Params: map[string]types.FieldDef{
				"contactId":        {Type: "string", Description: "Contact ID", Required: true},
				"name":             {Type: "string", Description: "Display name"},
				"email":            {Type: "string", Description: "Email address"},
				"phone":            {Type: "string", Description: "Phone number in E.164 format"},
				"additionalFields": {Type: "object", Description: "firstName, lastName, company, notes, customFields"},
			},
		},
		{
			Name:        "delete",
			Description: "Delete a contact",
			Params: map[string]types.FieldDef{
				"contactId": {Type: "string", Description: "Contact ID", Required: true},
			},
		},
	}
}

func (c *Contact) Execute(ctx context.Context, operation string, params map[string]any) ([]map[string]any, error) {
	switch operation {
	case "create":
		payload, err := BuildContactPayload(params)
		if err != nil {
			return nil, err
		}
		created, err := c.client.CreateContact(ctx, payload)
		if err != nil {
			return nil, err
		}
		return one(created), nil

	case "get":
		contact, err := c.client.GetContact(ctx, node.StringParam(params, "contactId"))
		if err != nil {
			return nil, err
		}
		return one(contact), nil

	case "getAll":
		return c.client.ListContacts(ctx, sendseven.ContactListOptions{
			Search: node.StringParam(params, "search"),
			Tag:    node.StringParam(params, "tag"),
		})

	case "update":
		payload, err := BuildContactPayload(params)
		if err != nil {
			return nil, err
		}
		updated, err := c.client.UpdateContact(ctx, node.StringParam(params, "contactId"), payload)
		if err != nil {
			return nil, err
		}
		return one(updated), nil

	case "delete":
		id := node.StringParam(params, "contactId")
		if err := c.client.DeleteContact(ctx, id); err != nil {
			return nil, err
		}
		return one(map[string]any{"deleted": true, "id": id}), nil

	default:
		return nil, fmt.Errorf("contact resource: unknown operation %q", operation)
	}
}

// BuildContactPayload maps node parameters onto the API's contact body.
// Empty fields stay unset so the wire payload omits them, and a
// string-typed customFields value is parsed as JSON before sending.
func BuildContactPayload(params map[string]any) (sendseven.ContactPayload, error) {
	payload := sendseven.ContactPayload{
		Name:  node.StringParam(params, "name"),
		Email: node.StringParam(params, "email"),
		Phone: node.StringParam(params, "phone"),
	}

	additional, err := node.ObjectParam(params, "additionalFields")
	if err != nil {
		return sendseven.ContactPayload{}, err
	}
	if additional == nil {
		return payload, nil
	}

	payload.FirstName = node.StringParam(additional, "firstName")
	payload.LastName = node.StringParam(additional, "lastName")
	payload.Company = node.StringParam(additional, "company")
	payload.Notes = node.StringParam(additional, "notes")

	customFields, err := node.ObjectParam(additional, "customFields")
	if err != nil {
		return sendseven.ContactPayload{}, err
	}
	payload.CustomFields = customFields

	return payload, nil
}
