package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrefersOAuth2(t *testing.T) {
	set := &Set{
		APIKey: &APIKey{Key: "api-key-123"},
		OAuth2: &OAuth2{AccessToken: "oauth-token-456"},
	}

	resolved, err := set.Resolve()
	require.NoError(t, err)
	assert.Equal(t, TypeOAuth2, resolved.Type)
	assert.Equal(t, "Bearer oauth-token-456", resolved.AuthorizationHeader())
}

func TestResolveFallsBackToAPIKey(t *testing.T) {
	t.Run("oauth2 absent", func(t *testing.T) {
		set := &Set{APIKey: &APIKey{Key: "api-key-123"}}

		resolved, err := set.Resolve()
		require.NoError(t, err)
		assert.Equal(t, TypeAPIKey, resolved.Type)
		assert.Equal(t, "Bearer api-key-123", resolved.AuthorizationHeader())
	})

	t.Run("oauth2 present but no token", func(t *testing.T) {
		set := &Set{
			APIKey: &APIKey{Key: "api-key-123"},
			OAuth2: &OAuth2{ClientID: "client", ClientSecret: "secret"},
		}

		resolved, err := set.Resolve()
		require.NoError(t, err)
		assert.Equal(t, TypeAPIKey, resolved.Type)
	})
}

func TestResolveNoCredentials(t *testing.T) {
	_, err := (&Set{}).Resolve()
	assert.Error(t, err)

	var nilSet *Set
	_, err = nilSet.Resolve()
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "creds.yaml")
	content := []byte("api_key:\n  key: from-file\noauth2:\n  access_token: token-from-file\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	set, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, set.APIKey)
	assert.Equal(t, "from-file", set.APIKey.Key)
	require.NotNil(t, set.OAuth2)
	assert.Equal(t, "token-from-file", set.OAuth2.AccessToken)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SENDSEVEN_API_KEY", "env-key")
	t.Setenv("SENDSEVEN_ACCESS_TOKEN", "")

	set := FromEnv()
	require.NotNil(t, set.APIKey)
	assert.Equal(t, "env-key", set.APIKey.Key)
	assert.Nil(t, set.OAuth2)
}
