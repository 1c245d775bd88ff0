// Package resources implements the action resources the connector exposes
// to the host: parameter-to-payload mapping over the SendSeven client.
package resources

import (
	"sendseven/internal/node"
	"sendseven/internal/sendseven"
)

func one(m map[string]any) []map[string]any {
	return []map[string]any{m}
}

// DefaultRegistry builds a registry holding every resource of the connector.
func DefaultRegistry(client *sendseven.Client) *node.Registry {
	r := node.NewRegistry()
	r.Register(NewContact(client))
	r.Register(NewConversation(client))
	r.Register(NewMessage(client))
	r.Register(NewTemplate(client))
	r.Register(NewTicket(client))
	r.Register(NewCampaign(client))
	return r
}
