// Package dictapi is the HTTP client for the dictionary REST API.
package dictapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mmcdole/lexi/internal/domain"
	"github.com/mmcdole/lexi/internal/route"
)

// Client implements domain.EntryRepository and domain.SuggestionRepository
// over the dictionary REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new dictionary API client. No client-side timeout is
// set; callers bound requests through their context.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// response is a fully read HTTP response.
type response struct {
	status int
	header http.Header
	body   []byte
}

// doRequest performs one HTTP request against the API. Transport failures
// become domain.ErrServerOffline; non-2xx responses become *domain.APIError
// carrying the Message header.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body any) (*response, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	return c.do(ctx, method, reqURL, body)
}

func (c *Client) do(ctx context.Context, method, reqURL string, body any) (*response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("dictionary request", "method", method, "url", reqURL, "requestID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logger.Error("dictionary request failed", "method", method, "url", reqURL, "requestID", requestID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrServerOffline, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	r := &response{status: resp.StatusCode, header: resp.Header, body: data}
	if resp.StatusCode >= 400 {
		apiErr := &domain.APIError{
			Status:  resp.StatusCode,
			Message: resp.Header.Get(MessageHeader),
		}
		c.logger.Warn("dictionary request rejected",
			"method", method,
			"url", reqURL,
			"requestID", requestID,
			"status", resp.StatusCode,
			"message", apiErr.Message,
		)
		return r, apiErr
	}

	return r, nil
}

// ListEntries returns one page of entries for the query
func (c *Client) ListEntries(ctx context.Context, query domain.EntryQuery) (*domain.Page[domain.Entry], error) {
	req := route.BuildRequest(query.Normalize())

	resp, err := c.do(ctx, http.MethodGet, c.baseURL+req.String(), nil)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound && resp != nil {
			apiErr.Alternatives = parseAlternatives(resp.body)
		}
		return nil, err
	}

	var page PageResponse[EntryResponse]
	if err := json.Unmarshal(resp.body, &page); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return MapEntryPage(page), nil
}

// parseAlternatives reads the page of similar words a failed word search
// returns. An empty or unparsable body yields no alternatives.
func parseAlternatives(body []byte) []string {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	var page PageResponse[string]
	if err := json.Unmarshal(body, &page); err != nil {
		return nil
	}
	return page.Content
}

// Suggest returns search-ahead suggestions for partial
func (c *Client) Suggest(ctx context.Context, partial string) ([]string, error) {
	path := "/entries/search/" + url.PathEscape(partial)
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var words []string
	if err := json.Unmarshal(resp.body, &words); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return words, nil
}

// GetEntry returns a single entry
func (c *Client) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, entryPath(id), nil, nil)
	if err != nil {
		return nil, err
	}

	var entry EntryResponse
	if err := json.Unmarshal(resp.body, &entry); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	result := MapEntry(entry)
	return &result, nil
}

// CreateEntry creates a new entry
func (c *Client) CreateEntry(ctx context.Context, input domain.EntryInput) (*domain.Entry, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/entries", nil, MapEntryInput(input))
	if err != nil {
		return nil, err
	}

	var entry EntryResponse
	if err := json.Unmarshal(resp.body, &entry); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	result := MapEntry(entry)
	return &result, nil
}

// ReplaceEntry replaces every field of an entry
func (c *Client) ReplaceEntry(ctx context.Context, id int64, input domain.EntryInput) error {
	_, err := c.doRequest(ctx, http.MethodPut, entryPath(id), nil, MapEntryInput(input))
	return err
}

// PatchDefinition replaces only the definition of an entry
func (c *Client) PatchDefinition(ctx context.Context, id int64, definition string) error {
	query := url.Values{}
	query.Set("newDefinition", definition)
	_, err := c.doRequest(ctx, http.MethodPatch, entryPath(id), query, nil)
	return err
}

// DeleteEntry deletes an entry
func (c *Client) DeleteEntry(ctx context.Context, id int64) error {
	_, err := c.doRequest(ctx, http.MethodDelete, entryPath(id), nil, nil)
	return err
}

// Ping checks that baseURL serves the dictionary listing endpoint.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/entries", nil, nil)
	if err != nil {
		return err
	}

	var page map[string]json.RawMessage
	if err := json.Unmarshal(resp.body, &page); err != nil {
		return fmt.Errorf("not a dictionary API: %w", err)
	}
	if _, ok := page["content"]; !ok {
		return errors.New("not a dictionary API: response has no content")
	}
	return nil
}

func entryPath(id int64) string {
	return "/entries/" + strconv.FormatInt(id, 10)
}
