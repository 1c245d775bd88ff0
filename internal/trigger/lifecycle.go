package trigger

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"sendseven/internal/sendseven"
	"sendseven/internal/statedata"
)

// Lifecycle manages the webhook subscription a workflow's trigger depends
// on: existence check, registration, teardown. The host calls these around
// workflow activation.
type Lifecycle struct {
	Client *sendseven.Client
	Store  *statedata.Store
}

func NewLifecycle(client *sendseven.Client, store *statedata.Store) *Lifecycle {
	return &Lifecycle{Client: client, Store: store}
}

// CheckExists reports whether the workflow's stored subscription is still
// registered remotely. Stale local state is cleared.
func (l *Lifecycle) CheckExists(ctx context.Context, workflowID string) (bool, error) {
	state, err := l.Store.Get(workflowID)
	if err != nil {
		return false, err
	}
	if state == nil || state.WebhookID == "" {
		return false, nil
	}

	hooks, err := l.Client.ListWebhooks(ctx)
	if err != nil {
		return false, fmt.Errorf("checking webhook %s: %w", state.WebhookID, err)
	}
	for _, hook := range hooks {
		if id, _ := hook["id"].(string); id == state.WebhookID {
			return true, nil
		}
	}

	log.Printf("webhook %s for workflow %s no longer exists remotely, clearing state", state.WebhookID, workflowID)
	if err := l.Store.Clear(workflowID); err != nil {
		return false, err
	}
	return false, nil
}

// Create registers a subscription for the given event, generating a fresh
// shared secret, and persists the registration for later teardown.
func (l *Lifecycle) Create(ctx context.Context, workflowID, callbackURL, event string) error {
	secret := uuid.NewString()

	created, err := l.Client.CreateWebhook(ctx, sendseven.WebhookPayload{
		URL:    callbackURL,
		Events: []string{event},
		Secret: secret,
	})
	if err != nil {
		return fmt.Errorf("registering webhook: %w", err)
	}

	webhookID, _ := created["id"].(string)
	if webhookID == "" {
		return fmt.Errorf("registering webhook: response carried no id")
	}

	return l.Store.Save(&statedata.WebhookState{
		WorkflowID: workflowID,
		WebhookID:  webhookID,
		Secret:     secret,
	})
}

// Delete tears the subscription down. A subscription that is already gone
// remotely counts as successfully deleted; local state is cleared either way
// on success.
func (l *Lifecycle) Delete(ctx context.Context, workflowID string) error {
	state, err := l.Store.Get(workflowID)
	if err != nil {
		return err
	}
	if state == nil || state.WebhookID == "" {
		return nil
	}

	if err := l.Client.DeleteWebhook(ctx, state.WebhookID); err != nil {
		return fmt.Errorf("deleting webhook %s: %w", state.WebhookID, err)
	}

	return l.Store.Clear(workflowID)
}

// Secret returns the stored shared secret for a workflow, if any.
func (l *Lifecycle) Secret(workflowID string) (string, error) {
	state, err := l.Store.Get(workflowID)
	if err != nil {
		return "", err
	}
	if state == nil {
		return "", nil
	}
	return state.Secret, nil
}
