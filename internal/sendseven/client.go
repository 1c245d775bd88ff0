package sendseven

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"sendseven/internal/credentials"
)

// DefaultBaseURL is the production SendSeven API endpoint.
const DefaultBaseURL = "https://api.sendseven.com/api/v1"

const (
	pageSize = 100
	maxPages = 100 // hard stop, even if the pagination envelope misbehaves
)

// Client talks to the SendSeven API.
type Client struct {
	BaseURL     string
	Credentials *credentials.Set
	HTTPClient  *http.Client
}

// NewClient creates a SendSeven API client.
func NewClient(baseURL string, creds *credentials.Set) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Credentials: creds,
		HTTPClient:  http.DefaultClient,
	}
}

// APIError is returned for any non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sendseven API error (status %d): %s", e.StatusCode, e.Message)
}

// extractMessage pulls the most useful error message out of a response body,
// preferring the API's "detail" field, then "message", then the raw body.
func extractMessage(body []byte, status string) string {
	var envelope struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Detail != "" {
			return envelope.Detail
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return trimmed
	}
	return "request failed with " + status
}

// Request performs a single API call and decodes the JSON response into out
// (skipped when out is nil). All API errors surface as *APIError.
func (c *Client) Request(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resolved, err := c.Credentials.Resolve()
	if err != nil {
		return err
	}

	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return fmt.Errorf("building request URL: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", resolved.AuthorizationHeader())
	req.Header.Set("Accept", "application/json")
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(respBody, resp.Status),
		}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// listEnvelope matches both list response shapes the API uses: a "data"
// array with a pagination envelope, or a bare "items" array.
type listEnvelope struct {
	Data       []map[string]any `json:"data"`
	Items      []map[string]any `json:"items"`
	Pagination *Pagination      `json:"pagination"`
}

// Pagination is the API's page-counting envelope.
type Pagination struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

func (e *listEnvelope) rows() []map[string]any {
	if e.Data != nil {
		return e.Data
	}
	return e.Items
}

// RequestAllItems fetches every page of a list endpoint. Paging stops when
// the pagination envelope says the last page was reached, or - for "items"
// responses without an envelope - when a short page comes back. It never
// issues more than maxPages requests.
func (c *Client) RequestAllItems(ctx context.Context, method, path string, query url.Values) ([]map[string]any, error) {
	if query == nil {
		query = url.Values{}
	}

	var all []map[string]any
	for page := 1; page <= maxPages; page++ {
		query.Set("page", strconv.Itoa(page))
		query.Set("page_size", strconv.Itoa(pageSize))

		var envelope listEnvelope
		if err := c.Request(ctx, method, path, query, nil, &envelope); err != nil {
			return nil, err
		}

		rows := envelope.rows()
		all = append(all, rows...)

		if envelope.Pagination != nil {
			if envelope.Pagination.Page >= envelope.Pagination.TotalPages {
				break
			}
			continue
		}
		if len(rows) < pageSize {
			break
		}
	}

	return all, nil
}

// requestData performs a call whose response wraps a single resource in a
// "data" envelope and returns the unwrapped object.
func (c *Client) requestData(ctx context.Context, method, path string, query url.Values, body any) (map[string]any, error) {
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := c.Request(ctx, method, path, query, body, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return map[string]any{}, nil
	}
	return envelope.Data, nil
}
