package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTemplatePayloadSingleVariable(t *testing.T) {
	payload := BuildTemplatePayload(map[string]any{
		"templateName": "order_update",
		"contactId":    "c1",
		"variables":    []any{42},
	})

	assert.Equal(t, "order_update", payload.Template.Name)
	assert.Equal(t, "en", payload.Template.Language.Code)

	require.Len(t, payload.Template.Components, 1)
	component := payload.Template.Components[0]
	assert.Equal(t, "body", component.Type)
	require.Len(t, component.Parameters, 1)
	assert.Equal(t, "text", component.Parameters[0].Type)
	assert.Equal(t, "42", component.Parameters[0].Text)
}

func TestBuildTemplatePayloadNoVariables(t *testing.T) {
	payload := BuildTemplatePayload(map[string]any{
		"templateName": "welcome",
		"language":     "de",
	})

	assert.Equal(t, "de", payload.Template.Language.Code)
	assert.Empty(t, payload.Template.Components)
}

func TestBuildTemplatePayloadStringifiesAllVariables(t *testing.T) {
	payload := BuildTemplatePayload(map[string]any{
		"templateName": "receipt",
		"variables":    []any{"Ada", 19.99, true},
	})

	require.Len(t, payload.Template.Components, 1)
	params := payload.Template.Components[0].Parameters
	require.Len(t, params, 3)
	assert.Equal(t, "Ada", params[0].Text)
	assert.Equal(t, "19.99", params[1].Text)
	assert.Equal(t, "true", params[2].Text)
	for _, p := range params {
		assert.Equal(t, "text", p.Type)
	}
}
