package tui

import (
	"github.com/mmcdole/lexi/internal/domain"
	"github.com/mmcdole/lexi/internal/route"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// NavigateMsg asks the app to show a location
type NavigateMsg struct {
	Location route.Location
}

// EntriesLoadedMsg carries the listing fetched for navigation Seq
type EntriesLoadedMsg struct {
	Seq      uint64
	Location route.Location
	Page     *domain.Page[domain.Entry]
	Err      error
}

// EntryLoadedMsg carries the entry fetched for the edit form of navigation Seq
type EntryLoadedMsg struct {
	Seq   uint64
	Entry *domain.Entry
	Err   error
}

// SuggestionsMsg carries the suggestions for query Seq
type SuggestionsMsg struct {
	Seq         uint64
	Suggestions []string
	Err         error
}

// SubmitDoneMsg reports the result of a form submission
type SubmitDoneMsg struct {
	Seq uint64
	Err error
}

// EntryDeletedMsg reports the result of a delete
type EntryDeletedMsg struct {
	Seq uint64
	ID  int64
	// LastOnPage is set when the entry was the only one on its page
	LastOnPage bool
	Err        error
}

// TickMsg drives the loading spinner
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
