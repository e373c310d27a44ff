package dictapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/lexi/internal/domain"
	"github.com/mmcdole/lexi/internal/log"
)

// recorded is what the fake API saw for one request.
type recorded struct {
	method    string
	uri       string
	body      string
	requestID string
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Client, *[]recorded) {
	t.Helper()
	var seen []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		seen = append(seen, recorded{
			method:    r.Method,
			uri:       r.URL.RequestURI(),
			body:      string(body),
			requestID: r.Header.Get(RequestIDHeader),
		})
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", log.NullLogger()), &seen
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

const springPage = `{
	"content": [
		{"id": 1, "word": "cat", "wordtype": "noun", "definition": "A feline."},
		{"id": 2, "word": "catch", "wordtype": "verb", "definition": "To seize."}
	],
	"pageable": {"pageNumber": 2, "pageSize": 10, "offset": 20},
	"number": 2,
	"size": 10,
	"totalPages": 5,
	"totalElements": 42,
	"first": false,
	"last": false,
	"empty": false
}`

func TestListEntries(t *testing.T) {
	client, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, springPage)
	})

	page, err := client.ListEntries(context.Background(), domain.EntryQuery{Word: "cat", Letter: "X", Page: 3})
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	assert.Equal(t, http.MethodGet, (*seen)[0].method)
	assert.Equal(t, "/entries/word?word=cat&page=2", (*seen)[0].uri)
	assert.NotEmpty(t, (*seen)[0].requestID)

	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, 5, page.TotalPages)
	assert.Equal(t, 42, page.TotalElements)
	require.Len(t, page.Content, 2)
	assert.Equal(t, domain.Entry{ID: 2, Word: "catch", WordType: "verb", Definition: "To seize."}, page.Content[1])
}

func TestListEntries_PageableFallback(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"content":[],"pageable":{"pageNumber":4},"totalPages":9,"first":false,"last":false}`)
	})

	page, err := client.ListEntries(context.Background(), domain.EntryQuery{Page: 5})
	require.NoError(t, err)
	assert.Equal(t, 4, page.PageNumber)
	assert.True(t, page.IsEmpty())
}

func TestListEntries_NotFoundWithAlternatives(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(MessageHeader, `Entries not found with word "kat"`)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"content":["cat","kit"],"pageable":"INSTANCE","totalPages":1,"first":true,"last":true}`)
	})

	_, err := client.ListEntries(context.Background(), domain.EntryQuery{Word: "kat"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, `Entries not found with word "kat"`, apiErr.Message)
	assert.Equal(t, []string{"cat", "kit"}, apiErr.Alternatives)
}

func TestListEntries_NotFoundWithoutBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(MessageHeader, `No similar word found for request "qqq"`)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.ListEntries(context.Background(), domain.EntryQuery{Word: "qqq"})
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Empty(t, apiErr.Alternatives)
	assert.Equal(t, `404: No similar word found for request "qqq"`, apiErr.Error())
}

func TestSuggest(t *testing.T) {
	client, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []string{"cat", "catch"})
	})

	words, err := client.Suggest(context.Background(), "ca t")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "catch"}, words)
	assert.Equal(t, "/entries/search/ca%20t", (*seen)[0].uri)
}

func TestGetEntry(t *testing.T) {
	client, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, EntryResponse{ID: 7, Word: "dog", WordType: "noun", Definition: "A canine."})
	})

	entry, err := client.GetEntry(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "/entries/7", (*seen)[0].uri)
	assert.Equal(t, "dog", entry.Word)
}

func TestCreateEntry(t *testing.T) {
	client, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, EntryResponse{ID: 11, Word: "owl", WordType: "noun", Definition: "A bird."})
	})

	entry, err := client.CreateEntry(context.Background(), domain.EntryInput{Word: "owl", WordType: "noun", Definition: "A bird."})
	require.NoError(t, err)
	assert.Equal(t, int64(11), entry.ID)

	req := (*seen)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/entries", req.uri)
	assert.JSONEq(t, `{"word":"owl","wordtype":"noun","definition":"A bird."}`, req.body)
}

func TestCreateEntry_Conflict(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(MessageHeader, "Entry already exists")
		w.WriteHeader(http.StatusConflict)
	})

	_, err := client.CreateEntry(context.Background(), domain.EntryInput{Word: "owl", WordType: "noun", Definition: "A bird."})
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Entry already exists", apiErr.Message)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestReplacePatchDelete(t *testing.T) {
	client, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()

	require.NoError(t, client.ReplaceEntry(ctx, 3, domain.EntryInput{Word: "a", WordType: "b", Definition: "c"}))
	require.NoError(t, client.PatchDefinition(ctx, 3, "new & improved"))
	require.NoError(t, client.DeleteEntry(ctx, 3))

	require.Len(t, *seen, 3)
	assert.Equal(t, http.MethodPut, (*seen)[0].method)
	assert.Equal(t, "/entries/3", (*seen)[0].uri)
	assert.JSONEq(t, `{"word":"a","wordtype":"b","definition":"c"}`, (*seen)[0].body)

	assert.Equal(t, http.MethodPatch, (*seen)[1].method)
	assert.Equal(t, "/entries/3?newDefinition=new+%26+improved", (*seen)[1].uri)
	assert.Empty(t, (*seen)[1].body)

	assert.Equal(t, http.MethodDelete, (*seen)[2].method)
	assert.Equal(t, "/entries/3", (*seen)[2].uri)
}

func TestServerOffline(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, log.NullLogger())
	_, err := client.ListEntries(context.Background(), domain.EntryQuery{})
	assert.ErrorIs(t, err, domain.ErrServerOffline)
}

func TestCancelledContextIsNotOffline(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []string{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Suggest(ctx, "ca")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrServerOffline)
}

func TestPing(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, springPage)
	})
	assert.NoError(t, client.Ping(context.Background()))

	other, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"ok"}`)
	})
	assert.Error(t, other.Ping(context.Background()))
}
