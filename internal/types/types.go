package types

import "time"

// FieldDef describes a single parameter or output field of an operation.
type FieldDef struct {
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description" json:"description"`
	Required    bool   `yaml:"required" json:"required"`
}

// OperationDef describes one operation a resource supports.
type OperationDef struct {
	Name        string
	Description string
	Params      map[string]FieldDef
	Output      map[string]FieldDef
}

// Item is one unit of workflow data flowing through an operation.
type Item map[string]any

// ItemResult holds the outcome of running an operation for a single input
// item. One input item may produce several output items (list operations).
type ItemResult struct {
	Index  int              `json:"index"`
	Status string           `json:"status"`
	Output []map[string]any `json:"output,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// RunResult holds the result of running one operation over a batch of items.
type RunResult struct {
	Resource    string       `json:"resource"`
	Operation   string       `json:"operation"`
	Status      string       `json:"status"`
	StartedAt   time.Time    `json:"started_at"`
	CompletedAt time.Time    `json:"completed_at"`
	Items       []ItemResult `json:"items"`
	Error       string       `json:"error,omitempty"`
}

// Delivery is the inbound webhook payload shape posted by SendSeven.
type Delivery struct {
	Event     string                    `json:"event"`
	Data      map[string]map[string]any `json:"data"`
	Timestamp string                    `json:"timestamp"`
	EventID   string                    `json:"event_id,omitempty"`
}

// TriggerEvent is the workflow-facing event emitted for a matching delivery.
type TriggerEvent struct {
	Event     string         `json:"event"`
	Resource  map[string]any `json:"resource"`
	Timestamp string         `json:"timestamp"`
	EventID   string         `json:"eventId,omitempty"`
}

// OptionItem is one entry of a dynamically loaded dropdown.
type OptionItem struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
