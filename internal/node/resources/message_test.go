package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessagePayloadConversationTarget(t *testing.T) {
	payload, err := BuildMessagePayload(map[string]any{
		"conversationId": "conv-1",
		"text":           "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "conv-1", payload.ConversationID)
	assert.Equal(t, "text", payload.Type)
	assert.Equal(t, "hello", payload.Text)
}

func TestBuildMessagePayloadRequiresTarget(t *testing.T) {
	_, err := BuildMessagePayload(map[string]any{"text": "hello"})
	assert.Error(t, err)

	// contactId alone is not enough, the channel is needed too
	_, err = BuildMessagePayload(map[string]any{"text": "hello", "contactId": "c1"})
	assert.Error(t, err)

	_, err = BuildMessagePayload(map[string]any{"text": "hello", "contactId": "c1", "channelId": "ch1"})
	assert.NoError(t, err)
}

func TestBuildMessagePayloadAttachments(t *testing.T) {
	payload, err := BuildMessagePayload(map[string]any{
		"conversationId": "conv-1",
		"text":           "see attached",
		"attachments":    []any{"https://example.com/a.pdf", "https://example.com/b.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, "attachment", payload.Type)
	require.Len(t, payload.Attachments, 2)
	assert.Equal(t, "https://example.com/a.pdf", payload.Attachments[0].URL)
}
