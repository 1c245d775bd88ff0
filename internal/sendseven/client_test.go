package sendseven

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sendseven/internal/credentials"
)

func testCredentials() *credentials.Set {
	return &credentials.Set{APIKey: &credentials.APIKey{Key: "test-key"}}
}

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, testCredentials()), srv
}

func pageOf(n int) []map[string]any {
	rows := make([]map[string]any, n)
	for i := range rows {
		rows[i] = map[string]any{"id": strconv.Itoa(i)}
	}
	return rows
}

func TestRequestAllItemsPaginationEnvelope(t *testing.T) {
	const totalPages = 3
	requests := 0

	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		require.Equal(t, "100", r.URL.Query().Get("page_size"))

		size := 100
		if page == totalPages {
			size = 40 // short final page
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data":       pageOf(size),
			"pagination": map[string]int{"page": page, "total_pages": totalPages},
		})
	}))
	defer srv.Close()

	items, err := client.RequestAllItems(context.Background(), "GET", "/contacts", nil)
	require.NoError(t, err)
	assert.Len(t, items, 240)
	assert.Equal(t, totalPages, requests)
}

func TestRequestAllItemsBrokenEnvelopeCapped(t *testing.T) {
	requests := 0

	// The envelope always claims more pages exist. The client must still
	// stop after 100 requests.
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(map[string]any{
			"data":       pageOf(100),
			"pagination": map[string]int{"page": page, "total_pages": page + 1},
		})
	}))
	defer srv.Close()

	items, err := client.RequestAllItems(context.Background(), "GET", "/contacts", nil)
	require.NoError(t, err)
	assert.Equal(t, 100, requests)
	assert.Len(t, items, 100*100)
}

func TestRequestAllItemsFullPageHeuristic(t *testing.T) {
	requests := 0

	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size := 100
		if page == 2 {
			size = 7
		}
		json.NewEncoder(w).Encode(map[string]any{"items": pageOf(size)})
	}))
	defer srv.Close()

	items, err := client.RequestAllItems(context.Background(), "GET", "/tags", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, requests)
	assert.Len(t, items, 107)
}

func TestRequestAllItemsEmptyFirstPage(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"items": []map[string]any{}})
	}))
	defer srv.Close()

	items, err := client.RequestAllItems(context.Background(), "GET", "/tags", nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRequestUsesAPIKeyWhenOAuthAbsent(t *testing.T) {
	var gotAuth string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := client.Request(context.Background(), "GET", "/contacts/1", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestRequestPrefersOAuthToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	creds := &credentials.Set{
		APIKey: &credentials.APIKey{Key: "test-key"},
		OAuth2: &credentials.OAuth2{AccessToken: "oauth-token"},
	}
	client := NewClient(srv.URL, creds)

	err := client.Request(context.Background(), "GET", "/contacts/1", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer oauth-token", gotAuth)
}

func TestRequestNoCredentialsNoCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewClient(srv.URL, &credentials.Set{})
	err := client.Request(context.Background(), "GET", "/contacts", nil, nil, nil)
	assert.Error(t, err)
	assert.False(t, called)
}

func TestAPIErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"detail preferred", `{"detail":"contact not found","message":"other"}`, "contact not found"},
		{"message fallback", `{"message":"invalid phone number"}`, "invalid phone number"},
		{"raw body fallback", `plain text failure`, "plain text failure"},
		{"generic fallback", ``, "request failed with 422 Unprocessable Entity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			err := client.Request(context.Background(), "POST", "/contacts", nil, map[string]string{"x": "y"}, nil)
			require.Error(t, err)
			apiErr, ok := err.(*APIError)
			require.True(t, ok, "expected *APIError, got %T", err)
			assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestRequestDataUnwrapsEnvelope(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": "c1", "name": "Ada"}})
	}))
	defer srv.Close()

	contact, err := client.GetContact(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", contact["name"])
}
