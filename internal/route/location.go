package route

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mmcdole/lexi/internal/domain"
)

// View identifies which screen a location opens
type View int

const (
	ViewList View = iota
	ViewAdd
	ViewEdit
)

// Location is the navigation intent derived from a route string. It is the only
// input to list fetching and to every redirect target.
type Location struct {
	View    View
	Query   domain.EntryQuery
	EntryID int64
}

// Home is the unfiltered first page of the listing.
var Home = Location{View: ViewList}

// ListOf returns a list location for the query.
func ListOf(q domain.EntryQuery) Location {
	return Location{View: ViewList, Query: q.Normalize()}
}

// Word returns the list location for a word search.
func Word(word string) Location {
	return ListOf(domain.EntryQuery{Word: word})
}

// Letter returns the list location for a first-letter filter.
func Letter(letter string) Location {
	return ListOf(domain.EntryQuery{Letter: letter})
}

// Add returns the add-entry location.
func Add() Location {
	return Location{View: ViewAdd}
}

// Edit returns the edit location for an entry.
func Edit(id int64) Location {
	return Location{View: ViewEdit, EntryID: id}
}

// WithPage returns a list location for the same filter at a 0-based page index.
func (l Location) WithPage(index int) Location {
	return ListOf(l.Query.WithPage(index + 1))
}

// Request returns the API listing request for a list location.
func (l Location) Request() Request {
	return BuildRequest(l.Query)
}

// Path formats the location as a route string. Page segments are 1-based.
func (l Location) Path() string {
	switch l.View {
	case ViewAdd:
		return entriesPath + "/add"
	case ViewEdit:
		return entriesPath + "/id/" + strconv.FormatInt(l.EntryID, 10)
	}

	q := l.Query.Normalize()
	path := entriesPath
	switch {
	case q.Word != "":
		path += "/word/" + url.PathEscape(q.Word)
	case q.Letter != "":
		path += "/letter/" + url.PathEscape(q.Letter)
	}
	if q.Page > 0 {
		path += "/page/" + strconv.Itoa(q.Page)
	}
	return path
}

func (l Location) String() string {
	return l.Path()
}

// Parse turns a route string into a Location. The empty route and "/" map to Home.
func Parse(path string) (Location, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "/" {
		return Home, nil
	}

	segs := strings.Split(strings.Trim(path, "/"), "/")
	if segs[0] != "entries" {
		return Location{}, fmt.Errorf("unknown route %q", path)
	}
	segs = segs[1:]

	var q domain.EntryQuery
	switch {
	case len(segs) == 0:
		return Home, nil

	case segs[0] == "add" && len(segs) == 1:
		return Add(), nil

	case segs[0] == "id" && len(segs) == 2:
		id, err := strconv.ParseInt(segs[1], 10, 64)
		if err != nil || id <= 0 {
			return Location{}, fmt.Errorf("invalid entry id %q", segs[1])
		}
		return Edit(id), nil

	case (segs[0] == "word" || segs[0] == "letter") && len(segs) >= 2:
		value, err := url.PathUnescape(segs[1])
		if err != nil || value == "" {
			return Location{}, fmt.Errorf("invalid %s segment %q", segs[0], segs[1])
		}
		if segs[0] == "word" {
			q.Word = value
		} else {
			q.Letter = value
		}
		segs = segs[2:]
	}

	if len(segs) == 0 {
		return ListOf(q), nil
	}
	if len(segs) != 2 || segs[0] != "page" {
		return Location{}, fmt.Errorf("unknown route %q", path)
	}
	page, err := strconv.Atoi(segs[1])
	if err != nil || page < 1 {
		return Location{}, fmt.Errorf("invalid page %q", segs[1])
	}
	q.Page = page
	return ListOf(q), nil
}
