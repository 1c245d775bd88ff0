// Package trigger turns inbound SendSeven webhook deliveries into workflow
// events and manages the subscription lifecycle behind them.
package trigger

import (
	"strings"

	"sendseven/internal/types"
)

// Events the SendSeven API can deliver to a webhook subscription.
var KnownEvents = []string{
	"contact.created",
	"contact.updated",
	"conversation.created",
	"conversation.updated",
	"message.created",
	"ticket.created",
}

// Dispatch reshapes a delivery into the workflow event shape. A delivery
// whose event differs from the subscribed event produces no output.
func Dispatch(delivery types.Delivery, subscribedEvent string) *types.TriggerEvent {
	if delivery.Event == "" || delivery.Event != subscribedEvent {
		return nil
	}

	// The payload keys the resource object by its name ("message.created"
	// carries data.message). Fall back to the first object present.
	resourceName, _, _ := strings.Cut(delivery.Event, ".")
	resource, ok := delivery.Data[resourceName]
	if !ok {
		for _, obj := range delivery.Data {
			resource = obj
			break
		}
	}

	return &types.TriggerEvent{
		Event:     delivery.Event,
		Resource:  CamelizeKeys(resource),
		Timestamp: delivery.Timestamp,
		EventID:   delivery.EventID,
	}
}

// CamelizeKeys renames every snake_case key of a resource object to
// camelCase, recursing into nested objects and arrays. Values are never
// touched; the rename is display formatting only.
func CamelizeKeys(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[toCamel(k)] = camelizeValue(v)
	}
	return out
}

func camelizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CamelizeKeys(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = camelizeValue(elem)
		}
		return out
	default:
		return v
	}
}

func toCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
