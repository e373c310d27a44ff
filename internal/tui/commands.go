package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/lexi/internal/domain"
	"github.com/mmcdole/lexi/internal/form"
	"github.com/mmcdole/lexi/internal/inflight"
	"github.com/mmcdole/lexi/internal/route"
	"github.com/mmcdole/lexi/internal/service"
	"github.com/mmcdole/lexi/internal/suggest"
)

// Command factories for async operations. Requests are bound to a context
// from the tracker, so starting a newer one cancels the older.

// NavigateCmd emits a NavigateMsg
func NavigateCmd(loc route.Location) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Location: loc}
	}
}

// LoadEntriesCmd fetches the listing for loc
func LoadEntriesCmd(svc *service.EntryService, tracker *inflight.Tracker, loc route.Location, seq uint64) tea.Cmd {
	ctx := tracker.Start(context.Background(), seq)
	return func() tea.Msg {
		defer tracker.Done(seq)
		page, err := svc.List(ctx, loc.Query)
		return EntriesLoadedMsg{Seq: seq, Location: loc, Page: page, Err: err}
	}
}

// LoadEntryCmd fetches the entry to edit
func LoadEntryCmd(svc *service.EntryService, tracker *inflight.Tracker, id int64, seq uint64) tea.Cmd {
	ctx := tracker.Start(context.Background(), seq)
	return func() tea.Msg {
		defer tracker.Done(seq)
		entry, err := svc.Get(ctx, id)
		return EntryLoadedMsg{Seq: seq, Entry: entry, Err: err}
	}
}

// SuggestCmd fetches suggestions for q
func SuggestCmd(svc *service.SearchService, tracker *inflight.Tracker, q suggest.Query) tea.Cmd {
	ctx := tracker.Start(context.Background(), q.Seq)
	return func() tea.Msg {
		defer tracker.Done(q.Seq)
		words, err := svc.Suggest(ctx, q.Input)
		return SuggestionsMsg{Seq: q.Seq, Suggestions: words, Err: err}
	}
}

// SubmitCmd sends the request a form submission planned
func SubmitCmd(svc *service.EntryService, action form.Action, seq uint64) tea.Cmd {
	return func() tea.Msg {
		err := svc.Apply(context.Background(), action)
		return SubmitDoneMsg{Seq: seq, Err: err}
	}
}

// DeleteEntryCmd deletes an entry
func DeleteEntryCmd(svc *service.EntryService, entry domain.Entry, lastOnPage bool, seq uint64) tea.Cmd {
	return func() tea.Msg {
		err := svc.Delete(context.Background(), entry.ID)
		return EntryDeletedMsg{Seq: seq, ID: entry.ID, LastOnPage: lastOnPage, Err: err}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
