package credentials

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Type identifies which credential kind authorized a request.
type Type string

const (
	TypeAPIKey Type = "apiKey"
	TypeOAuth2 Type = "oauth2"
)

// APIKey is the bearer-token credential.
type APIKey struct {
	Key string `yaml:"key"`
}

// OAuth2 is the authorization-code credential. Token acquisition is the
// host's job; the connector only consumes an already-issued access token.
type OAuth2 struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	AccessToken  string `yaml:"access_token"`
	RefreshToken string `yaml:"refresh_token"`
}

// Set holds every credential configured for the connector instance.
type Set struct {
	APIKey *APIKey `yaml:"api_key"`
	OAuth2 *OAuth2 `yaml:"oauth2"`
}

// Resolved is a ready-to-use authorization for one request.
type Resolved struct {
	Type  Type
	Token string
}

// AuthorizationHeader returns the value for the Authorization header.
func (r Resolved) AuthorizationHeader() string {
	return "Bearer " + r.Token
}

// Load reads a YAML credentials file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file %s: %w", path, err)
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing credentials file %s: %w", path, err)
	}

	return &set, nil
}

// FromEnv builds a Set from environment variables. Used when no credentials
// file is configured.
func FromEnv() *Set {
	set := &Set{}
	if key := os.Getenv("SENDSEVEN_API_KEY"); key != "" {
		set.APIKey = &APIKey{Key: key}
	}
	if token := os.Getenv("SENDSEVEN_ACCESS_TOKEN"); token != "" {
		set.OAuth2 = &OAuth2{AccessToken: token}
	}
	return set
}

// Resolve picks the credential to use for a request. OAuth2 is preferred;
// when it is absent or has no usable token, the API key is used instead.
func (s *Set) Resolve() (Resolved, error) {
	if s == nil {
		return Resolved{}, fmt.Errorf("no credentials configured")
	}

	if s.OAuth2 != nil && s.OAuth2.AccessToken != "" {
		return Resolved{Type: TypeOAuth2, Token: s.OAuth2.AccessToken}, nil
	}

	if s.APIKey != nil && s.APIKey.Key != "" {
		return Resolved{Type: TypeAPIKey, Token: s.APIKey.Key}, nil
	}

	return Resolved{}, fmt.Errorf("no credentials configured: set either an OAuth2 access token or an API key")
}
