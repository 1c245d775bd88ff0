package node

import (
	"context"
	"fmt"
	"time"

	"sendseven/internal/types"
)

// Runner executes one operation over a batch of input items, one item at a
// time, the way the host feeds items to a node.
type Runner struct {
	Registry *Registry

	// ContinueOnFail records a failed item's error on its output slot and
	// moves on instead of aborting the whole run.
	ContinueOnFail bool
}

// NewRunner creates a runner over the given registry.
func NewRunner(registry *Registry) *Runner {
	return &Runner{Registry: registry}
}

// Run executes resource.operation once per input item. Parameters are
// resolved against each item before validation; validation failures are
// rejected without touching the network.
func (r *Runner) Run(ctx context.Context, resource, operation string, params map[string]any, items []types.Item) (*types.RunResult, error) {
	res, ok := r.Registry.Get(resource)
	if !ok {
		return nil, fmt.Errorf("resource %q not found", resource)
	}

	def, err := r.Registry.Operation(resource, operation)
	if err != nil {
		return nil, err
	}

	result := &types.RunResult{
		Resource:  resource,
		Operation: operation,
		Status:    "success",
		StartedAt: time.Now().UTC(),
		Items:     make([]types.ItemResult, 0, len(items)),
	}

	for i, item := range items {
		ir := r.runItem(ctx, res, def, params, item, i)
		result.Items = append(result.Items, ir)

		if ir.Status == "error" && !r.ContinueOnFail {
			result.Status = "failed"
			result.Error = fmt.Sprintf("item %d failed: %s", i, ir.Error)
			result.CompletedAt = time.Now().UTC()
			return result, nil
		}
		if ir.Status == "error" {
			result.Status = "partial"
		}
	}

	result.CompletedAt = time.Now().UTC()
	return result, nil
}

func (r *Runner) runItem(ctx context.Context, res Resource, def *types.OperationDef, params map[string]any, item types.Item, index int) types.ItemResult {
	ir := types.ItemResult{Index: index, Status: "success"}

	resolved, err := ResolveParams(params, item)
	if err != nil {
		ir.Status = "error"
		ir.Error = err.Error()
		return ir
	}

	if err := ValidateParams(def, resolved); err != nil {
		ir.Status = "error"
		ir.Error = err.Error()
		return ir
	}

	output, err := res.Execute(ctx, def.Name, resolved)
	if err != nil {
		ir.Status = "error"
		ir.Error = err.Error()
		return ir
	}

	ir.Output = output
	return ir
}
