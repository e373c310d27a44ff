package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/lexi/internal/domain"
	"github.com/mmcdole/lexi/internal/inflight"
	"github.com/mmcdole/lexi/internal/route"
	"github.com/mmcdole/lexi/internal/service"
	"github.com/mmcdole/lexi/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
	StateConfirmDelete
)

// Pane is a focusable area of the list view
type Pane int

const (
	PaneList Pane = iota
	PanePager
	PaneAlphabet
	PaneAlternatives
)

// Layout constants
const (
	HeaderHeight = 2 // title line + search input
	ChromeHeight = 3 // header spacing, pager and footer

	maxBackStack = 50
)

// Services bundles what the UI talks to
type Services struct {
	Entries *service.EntryService
	Search  *service.SearchService
	History *service.HistoryService
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	EntrySvc   *service.EntryService
	SearchSvc  *service.SearchService
	HistorySvc *service.HistoryService

	// Navigation
	Location  route.Location
	backStack []route.Location
	start     route.Location
	navSeq    uint64 // bumped on every navigation; responses for older values are dropped

	listReqs    *inflight.Tracker
	suggestReqs *inflight.Tracker

	// Listing state for the current location
	Page         *domain.Page[domain.Entry]
	ListErr      error
	Alternatives []string
	altCursor    int

	// UI Components
	Search       components.SearchBox
	List         components.EntryList
	Pager        components.Pager
	Alphabet     components.Alphabet
	Form         *components.EntryForm
	HistoryModal components.HistoryModal
	PageInput    components.PageInputModal
	Focus        Pane

	pendingDelete *domain.Entry

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	Loading      bool
	SpinnerFrame int
}

// NewModel creates a new application model that opens at start
func NewModel(svcs Services, start route.Location) Model {
	return Model{
		State:        StateBrowsing,
		EntrySvc:     svcs.Entries,
		SearchSvc:    svcs.Search,
		HistorySvc:   svcs.History,
		start:        start,
		listReqs:     inflight.NewTracker(),
		suggestReqs:  inflight.NewTracker(),
		Search:       components.NewSearchBox(),
		List:         components.NewEntryList().SetFocused(true),
		Pager:        components.NewPager(),
		Alphabet:     components.NewAlphabet(),
		HistoryModal: components.NewHistoryModal(),
		PageInput:    components.NewPageInputModal(),
		Focus:        PaneList,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		NavigateCmd(m.start),
		TickCmd(100*time.Millisecond),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case NavigateMsg:
		return m.navigate(msg.Location, true)

	case EntriesLoadedMsg:
		if msg.Seq != m.navSeq {
			return m, nil
		}
		m.Loading = false
		m.applyListing(msg.Page, msg.Err)
		return m, nil

	case EntryLoadedMsg:
		if msg.Seq != m.navSeq {
			return m, nil
		}
		m.Loading = false
		if msg.Err != nil {
			m.ListErr = msg.Err
			return m, nil
		}
		f := components.NewEditForm(*msg.Entry).SetWidth(m.Width)
		m.Form = &f
		return m, nil

	case SuggestionsMsg:
		if msg.Err != nil {
			if !errors.Is(msg.Err, context.Canceled) {
				slog.Debug("suggestions failed", "seq", msg.Seq, "error", msg.Err)
			}
			m.Search = m.Search.Fail(msg.Seq)
			return m, nil
		}
		m.Search = m.Search.Resolve(msg.Seq, msg.Suggestions)
		return m, nil

	case SubmitDoneMsg:
		if msg.Seq != m.navSeq || m.Form == nil {
			return m, nil
		}
		if msg.Err != nil {
			f := m.Form.Failed(failure(msg.Err))
			m.Form = &f
			return m, nil
		}
		target := m.Form.Form().SuccessLocation()
		m.StatusMsg = "Saved " + target.Query.Word
		m.StatusIsErr = false
		var cmd tea.Cmd
		m, cmd = m.navigate(target, false)
		return m, tea.Batch(cmd, ClearStatusCmd(3*time.Second))

	case EntryDeletedMsg:
		if msg.Err != nil {
			m.StatusMsg = ErrMsg{Err: msg.Err, Context: "delete failed"}.Error()
			m.StatusIsErr = true
			return m, ClearStatusCmd(5 * time.Second)
		}
		m.StatusMsg = fmt.Sprintf("Deleted entry #%d", msg.ID)
		m.StatusIsErr = false
		if msg.Seq != m.navSeq {
			// The user has moved on; leave the current view alone
			return m, ClearStatusCmd(3 * time.Second)
		}
		target := m.Location
		if msg.LastOnPage {
			target = route.Home
		}
		var cmd tea.Cmd
		m, cmd = m.navigate(target, false)
		return m, tea.Batch(cmd, ClearStatusCmd(3*time.Second))

	case ErrMsg:
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		m.Loading = false
		return m, ClearStatusCmd(5 * time.Second)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and other component messages
	var cmds []tea.Cmd
	if m.Form != nil {
		f, cmd, _ := m.Form.Update(msg)
		m.Form = &f
		cmds = append(cmds, cmd)
	}
	if m.Search.Focused() {
		var cmd tea.Cmd
		m.Search, cmd, _ = m.Search.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// failure splits an error into the status and message shown on the form.
func failure(err error) (int, string) {
	if apiErr, ok := domain.AsAPIError(err); ok {
		return apiErr.Status, apiErr.Message
	}
	return 0, err.Error()
}

// applyListing stores the outcome of a listing fetch
func (m *Model) applyListing(page *domain.Page[domain.Entry], err error) {
	m.Alternatives = nil
	m.altCursor = 0

	if err != nil {
		m.Page = nil
		m.ListErr = err
		m.List = m.List.SetEntries(nil)
		m.Pager = m.Pager.SetPage(0, 0, 0)
		if apiErr, ok := domain.AsAPIError(err); ok && m.Location.Query.Word != "" {
			m.Alternatives = apiErr.Alternatives
		}
		if len(m.Alternatives) > 0 {
			m.setFocus(PaneAlternatives)
		} else if m.Focus == PaneAlternatives {
			m.setFocus(PaneList)
		}
		return
	}

	m.ListErr = nil
	m.Page = page
	m.List = m.List.SetEntries(page.Content)
	m.Pager = m.Pager.SetPage(page.PageNumber, page.TotalPages, page.TotalElements)
	if m.Focus == PaneAlternatives {
		m.setFocus(PaneList)
	}
}

// navigate shows loc. With push the current location is remembered for Back.
func (m Model) navigate(loc route.Location, push bool) (Model, tea.Cmd) {
	if push && m.navSeq > 0 && loc != m.Location {
		m.backStack = append(m.backStack, m.Location)
		if len(m.backStack) > maxBackStack {
			m.backStack = m.backStack[1:]
		}
	}

	m.Location = loc
	m.navSeq++
	m.ListErr = nil
	m.Form = nil
	m.pendingDelete = nil
	m.State = StateBrowsing
	slog.Debug("navigate", "route", loc.Path(), "seq", m.navSeq)

	switch loc.View {
	case route.ViewAdd:
		m.listReqs.CancelAll()
		m.Loading = false
		f := components.NewAddForm().SetWidth(m.Width)
		m.Form = &f
		return m, nil

	case route.ViewEdit:
		m.Loading = true
		return m, LoadEntryCmd(m.EntrySvc, m.listReqs, loc.EntryID, m.navSeq)

	default:
		m.Loading = true
		m.Alphabet = m.Alphabet.SetActive(loc.Query.Letter)
		return m, LoadEntriesCmd(m.EntrySvc, m.listReqs, loc, m.navSeq)
	}
}

// reload fetches the current location again
func (m Model) reload() (Model, tea.Cmd) {
	return m.navigate(m.Location, false)
}

// back returns to the previous location, if any
func (m Model) back() (Model, tea.Cmd) {
	if len(m.backStack) == 0 {
		return m, nil
	}
	prev := m.backStack[len(m.backStack)-1]
	m.backStack = m.backStack[:len(m.backStack)-1]
	return m.navigate(prev, false)
}

// CanGoBack reports whether a previous location exists
func (m Model) CanGoBack() bool {
	return len(m.backStack) > 0
}

// NavSeq returns the sequence number of the current navigation
func (m Model) NavSeq() uint64 {
	return m.navSeq
}
