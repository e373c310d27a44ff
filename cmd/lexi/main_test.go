package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command against a scratch home directory
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LEXI_LOGGING_FILE", filepath.Join(home, "lexi.log"))
	t.Setenv("LEXI_HISTORY_FILE", filepath.Join(home, "history.db"))

	cfgFile, outputFormat, apiURL = "", "text", ""
	entryWord, entryWordType, entryDefinition = "", "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func newFakeAPI(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var requests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.RequestURI())
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/entries/word":
			_, _ = w.Write([]byte(`{"content":[{"id":7,"word":"cat","wordtype":"n.","definition":"A feline."}],
				"pageable":{"pageNumber":0},"totalPages":1,"totalElements":1,"first":true,"last":true}`))
		case r.Method == http.MethodGet && r.URL.Path == "/entries/search/ca":
			_, _ = w.Write([]byte(`["cat","cater"]`))
		case r.Method == http.MethodDelete && r.URL.Path == "/entries/7":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.Header().Set("Message", "no such thing")
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lexi "+Version)
}

func TestListCommand_JSON(t *testing.T) {
	srv, requests := newFakeAPI(t)

	out, err := execute(t, "--api", srv.URL, "-o", "json", "list", "--word", "cat")
	require.NoError(t, err)

	var page struct {
		Content []struct {
			Word string `json:"word"`
		} `json:"content"`
		TotalPages int `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	require.Len(t, page.Content, 1)
	assert.Equal(t, "cat", page.Content[0].Word)
	assert.Equal(t, []string{"GET /entries/word?word=cat"}, *requests)
}

func TestSuggestCommand_Text(t *testing.T) {
	srv, _ := newFakeAPI(t)

	out, err := execute(t, "--api", srv.URL, "suggest", "ca")
	require.NoError(t, err)
	assert.Equal(t, "cat\ncater\n", out)
}

func TestDeleteCommand(t *testing.T) {
	srv, requests := newFakeAPI(t)

	out, err := execute(t, "--api", srv.URL, "delete", "7")
	require.NoError(t, err)
	assert.Equal(t, "Entry 7 deleted\n", out)
	assert.Equal(t, []string{"DELETE /entries/7"}, *requests)
}

func TestShowCommand_APIError(t *testing.T) {
	srv, _ := newFakeAPI(t)

	_, err := execute(t, "--api", srv.URL, "show", "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404: no such thing")
}

func TestAddCommand_RequiresEveryField(t *testing.T) {
	srv, requests := newFakeAPI(t)

	_, err := execute(t, "--api", srv.URL, "add", "--word", "dog")
	require.Error(t, err)
	assert.Empty(t, *requests)
}

func TestCommands_RequireAPIURL(t *testing.T) {
	t.Setenv("LEXI_API_URL", "")
	_, err := execute(t, "suggest", "ca")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}
