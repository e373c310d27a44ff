package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/lexi/internal/form"
	"github.com/mmcdole/lexi/internal/route"
	"github.com/mmcdole/lexi/internal/suggest"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle state-specific keys
	switch m.State {
	case StateHelp:
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil

	case StateConfirmDelete:
		switch {
		case key.Matches(msg, Keys.Confirm):
			entry := *m.pendingDelete
			lastOnPage := len(m.List.Entries()) == 1
			m.pendingDelete = nil
			m.State = StateBrowsing
			m.StatusMsg = "Deleting " + entry.Word + "..."
			m.StatusIsErr = false
			return m, DeleteEntryCmd(m.EntrySvc, entry, lastOnPage, m.navSeq)
		case key.Matches(msg, Keys.Deny):
			m.pendingDelete = nil
			m.State = StateBrowsing
		}
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	if m.Location.View != route.ViewList {
		return m.handleFormKey(msg)
	}

	if m.Search.Focused() {
		return m.handleSearchKey(msg)
	}

	if m.List.FilterEditing() {
		var cmd tea.Cmd
		m.List, cmd = m.List.Update(msg)
		return m, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if m.List.IsFiltering() {
			m.List = m.List.ClearFilter()
		}
		return m, nil

	case key.Matches(msg, Keys.Search):
		var q *suggest.Query
		m.Search, q = m.Search.Focus()
		return m, m.suggestCmd(q)

	case key.Matches(msg, Keys.Filter):
		m.setFocus(PaneList)
		var cmd tea.Cmd
		m.List, cmd = m.List.StartFilter()
		return m, cmd

	case key.Matches(msg, Keys.History):
		m.HistoryModal.Show(m.HistorySvc.Find(""))
		m.HistoryModal.SetSize(m.Width, m.Height)
		return m, nil

	case key.Matches(msg, Keys.Add):
		return m.navigate(route.Add(), true)

	case key.Matches(msg, Keys.Edit):
		if entry, ok := m.List.Selected(); ok {
			return m.navigate(route.Edit(entry.ID), true)
		}
		return m, nil

	case key.Matches(msg, Keys.Delete):
		if entry, ok := m.List.Selected(); ok {
			m.pendingDelete = &entry
			m.State = StateConfirmDelete
		}
		return m, nil

	case key.Matches(msg, Keys.Retry):
		return m.reload()

	case key.Matches(msg, Keys.Back):
		return m.back()

	case key.Matches(msg, Keys.Home):
		return m.navigate(route.Home, true)

	case key.Matches(msg, Keys.PrevPage):
		if target, ok := m.Pager.Step(-1); ok {
			return m.navigate(m.Location.WithPage(target), true)
		}
		return m, nil

	case key.Matches(msg, Keys.NextPage):
		if target, ok := m.Pager.Step(1); ok {
			return m.navigate(m.Location.WithPage(target), true)
		}
		return m, nil

	case key.Matches(msg, Keys.GoToPage):
		if m.Page != nil && m.Page.TotalPages > 1 {
			m.PageInput.Show(m.Page.TotalPages)
		}
		return m, nil

	case key.Matches(msg, Keys.NextPane):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, Keys.PrevPane):
		m.cycleFocus(-1)
		return m, nil
	}

	return m.handlePaneKey(msg)
}

// handlePaneKey handles keys for the focused pane of the list view
func (m Model) handlePaneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Focus {
	case PanePager:
		switch {
		case key.Matches(msg, Keys.Left, Keys.Up):
			m.Pager = m.Pager.Prev()
		case key.Matches(msg, Keys.Right, Keys.Down):
			m.Pager = m.Pager.Next()
		case key.Matches(msg, Keys.Enter):
			if target, ok := m.Pager.Selected(); ok {
				return m.navigate(m.Location.WithPage(target), true)
			}
		}
		return m, nil

	case PaneAlphabet:
		switch {
		case key.Matches(msg, Keys.Up):
			m.Alphabet = m.Alphabet.Up()
		case key.Matches(msg, Keys.Down):
			m.Alphabet = m.Alphabet.Down()
		case key.Matches(msg, Keys.Enter):
			return m.navigate(m.Alphabet.Selected(), true)
		}
		return m, nil

	case PaneAlternatives:
		switch {
		case key.Matches(msg, Keys.Up):
			if m.altCursor > 0 {
				m.altCursor--
			}
		case key.Matches(msg, Keys.Down):
			if m.altCursor < len(m.Alternatives)-1 {
				m.altCursor++
			}
		case key.Matches(msg, Keys.Enter):
			if m.altCursor < len(m.Alternatives) {
				return m.navigate(route.Word(m.Alternatives[m.altCursor]), true)
			}
		}
		return m, nil
	}

	if key.Matches(msg, Keys.Enter) {
		if entry, ok := m.List.Selected(); ok && m.Location.Query.Word != entry.Word {
			return m.navigate(route.Word(entry.Word), true)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// handleSearchKey forwards keys to the focused search box
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	search, cmd, ev := m.Search.Update(msg)
	m.Search = search

	if ev.Submit != "" {
		m.suggestReqs.CancelAll()
		next, navCmd := m.navigate(route.Word(ev.Submit), true)
		return next, tea.Batch(cmd, navCmd)
	}
	if ev.Closed {
		m.suggestReqs.CancelAll()
		return m, cmd
	}
	return m, tea.Batch(cmd, m.suggestCmd(ev.Query))
}

func (m Model) suggestCmd(q *suggest.Query) tea.Cmd {
	if q == nil {
		return nil
	}
	return SuggestCmd(m.SearchSvc, m.suggestReqs, *q)
}

// handleFormKey handles keys on the add and edit screens
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Form == nil {
		// Edit form still loading or failed to load
		switch {
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, Keys.Retry):
			return m.reload()
		case key.Matches(msg, Keys.Escape, Keys.Back):
			if m.CanGoBack() {
				return m.back()
			}
			return m.navigate(route.Home, false)
		}
		return m, nil
	}

	f, cmd, ev := m.Form.Update(msg)
	m.Form = &f

	switch {
	case ev.Cancel:
		return m.navigate(f.Form().CancelLocation(), false)

	case ev.Submit != nil:
		if ev.Submit.Kind == form.ActionNone {
			// Nothing changed; treat as saved without a request
			next, navCmd := m.navigate(f.Form().SuccessLocation(), false)
			return next, tea.Batch(cmd, navCmd)
		}
		return m, tea.Batch(cmd, SubmitCmd(m.EntrySvc, *ev.Submit, m.navSeq))
	}
	return m, cmd
}

// routeToModal sends keys to a visible modal. It reports whether one handled it.
func (m Model) routeToModal(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	if m.PageInput.IsVisible() {
		var cmd tea.Cmd
		var submitted bool
		m.PageInput, cmd, submitted = m.PageInput.Update(msg)
		if submitted {
			idx, _ := m.PageInput.Page()
			m.PageInput.Hide()
			next, navCmd := m.navigate(m.Location.WithPage(idx), true)
			return true, next, navCmd
		}
		return true, m, cmd
	}

	if m.HistoryModal.IsVisible() {
		modal, cmd, selected, changed := m.HistoryModal.Update(msg)
		m.HistoryModal = modal
		if changed {
			m.HistoryModal.SetWords(m.HistorySvc.Find(m.HistoryModal.Query()))
		}
		if selected {
			word, _ := m.HistoryModal.Selected()
			m.HistoryModal.Hide()
			next, navCmd := m.navigate(route.Word(word), true)
			return true, next, navCmd
		}
		return true, m, cmd
	}

	return false, m, nil
}

// panes returns the focusable panes in tab order
func (m Model) panes() []Pane {
	if len(m.Alternatives) > 0 {
		return []Pane{PaneAlternatives, PaneList, PanePager, PaneAlphabet}
	}
	return []Pane{PaneList, PanePager, PaneAlphabet}
}

func (m *Model) cycleFocus(dir int) {
	panes := m.panes()
	idx := 0
	for i, p := range panes {
		if p == m.Focus {
			idx = i
		}
	}
	idx = (idx + dir + len(panes)) % len(panes)
	m.setFocus(panes[idx])
}

func (m *Model) setFocus(p Pane) {
	m.Focus = p
	m.List = m.List.SetFocused(p == PaneList)
	m.Pager = m.Pager.SetFocused(p == PanePager)
	m.Alphabet = m.Alphabet.SetFocused(p == PaneAlphabet)
}
