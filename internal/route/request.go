// Package route maps navigation locations to API requests and back to route strings.
package route

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/mmcdole/lexi/internal/domain"
)

const entriesPath = "/entries"

// Request is a canonical API listing request: a path relative to the API base
// URL plus an ordered query string.
type Request struct {
	Path  string
	Query string
}

// String renders the request as path[?query].
func (r Request) String() string {
	if r.Query == "" {
		return r.Path
	}
	return r.Path + "?" + r.Query
}

// BuildRequest maps a query to exactly one listing request. Word takes
// priority over Letter. The 1-based Page becomes a 0-based page parameter and
// is omitted when Page is 0.
func BuildRequest(q domain.EntryQuery) Request {
	var params []string

	var path string
	switch {
	case q.Word != "":
		path = entriesPath + "/word"
		params = append(params, "word="+url.QueryEscape(q.Word))
	case q.Letter != "":
		path = entriesPath + "/letter/" + url.PathEscape(q.Letter)
	default:
		path = entriesPath
	}

	if q.Page > 0 {
		params = append(params, "page="+strconv.Itoa(q.Page-1))
	}

	return Request{Path: path, Query: strings.Join(params, "&")}
}
