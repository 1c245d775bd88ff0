package sendseven

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteWebhookIdempotent(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "webhook not found"})
	}))
	defer srv.Close()

	err := client.DeleteWebhook(context.Background(), "gone")
	assert.NoError(t, err, "deleting an already-removed webhook must succeed")
}

func TestDeleteWebhookOtherErrorSurfaces(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"detail": "insufficient scope"})
	}))
	defer srv.Close()

	err := client.DeleteWebhook(context.Background(), "wh1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient scope")
}

func TestCreateWebhook(t *testing.T) {
	var got WebhookPayload
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": "wh-9"}})
	}))
	defer srv.Close()

	created, err := client.CreateWebhook(context.Background(), WebhookPayload{
		URL:    "https://host.example/webhook/wf-1",
		Events: []string{"message.created"},
		Secret: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "wh-9", created["id"])
	assert.Equal(t, []string{"message.created"}, got.Events)
	assert.Equal(t, "s3cret", got.Secret)
}
