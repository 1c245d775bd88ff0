package resources

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContactPayloadOmitsEmptyFields(t *testing.T) {
	payload, err := BuildContactPayload(map[string]any{
		"name":  "Ada Lovelace",
		"email": "",
		"additionalFields": map[string]any{
			"firstName": "Ada",
			"lastName":  "",
			"notes":     "",
		},
	})
	require.NoError(t, err)

	encoded, err := json.Marshal(payload)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(encoded, &wire))

	assert.Equal(t, "Ada Lovelace", wire["name"])
	assert.Equal(t, "Ada", wire["first_name"])
	for _, absent := range []string{"email", "phone", "last_name", "company", "notes", "custom_fields"} {
		assert.NotContains(t, wire, absent)
	}
}

func TestBuildContactPayloadParsesCustomFieldsJSON(t *testing.T) {
	payload, err := BuildContactPayload(map[string]any{
		"name": "Ada",
		"additionalFields": map[string]any{
			"customFields": `{"plan":"pro","seats":3}`,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, payload.CustomFields)
	assert.Equal(t, "pro", payload.CustomFields["plan"])
	assert.Equal(t, float64(3), payload.CustomFields["seats"])
}

func TestBuildContactPayloadCustomFieldsObjectPassthrough(t *testing.T) {
	payload, err := BuildContactPayload(map[string]any{
		"name": "Ada",
		"additionalFields": map[string]any{
			"customFields": map[string]any{"plan": "free"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "free", payload.CustomFields["plan"])
}

func TestBuildContactPayloadInvalidCustomFieldsJSON(t *testing.T) {
	_, err := BuildContactPayload(map[string]any{
		"name": "Ada",
		"additionalFields": map[string]any{
			"customFields": `{not json`,
		},
	})
	assert.Error(t, err)
}
