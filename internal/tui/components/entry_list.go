package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/lexi/internal/domain"
	"github.com/mmcdole/lexi/internal/tui/styles"
)

// EntryList shows the entries of one page with an optional fuzzy filter
type EntryList struct {
	entries []domain.Entry
	cursor  int
	offset  int
	focused bool
	width   int
	height  int

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filteredIdx  []int   // nil when not filtering
	matched      [][]int // matched word indexes, parallel to filteredIdx
}

// NewEntryList creates an empty entry list
func NewEntryList() EntryList {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.Placeholder = "filter this page"
	ti.PlaceholderStyle = styles.DimStyle
	ti.CharLimit = 50

	return EntryList{filterInput: ti}
}

// SetEntries replaces the listed entries and clears the filter
func (l EntryList) SetEntries(entries []domain.Entry) EntryList {
	l.entries = entries
	l.cursor = 0
	l.offset = 0
	return l.ClearFilter()
}

// Entries returns every entry of the page, ignoring the filter
func (l EntryList) Entries() []domain.Entry {
	return l.entries
}

// SetSize updates the list dimensions
func (l EntryList) SetSize(width, height int) EntryList {
	l.width = width
	l.height = height
	l.filterInput.Width = max(10, width-6)
	return l.ensureVisible()
}

// SetFocused marks the list as the focused pane
func (l EntryList) SetFocused(focused bool) EntryList {
	l.focused = focused
	return l
}

// Selected returns the entry under the cursor
func (l EntryList) Selected() (domain.Entry, bool) {
	if l.count() == 0 {
		return domain.Entry{}, false
	}
	return l.entries[l.mapIndex(l.cursor)], true
}

// Len returns the number of visible entries
func (l EntryList) Len() int {
	return l.count()
}

// IsFiltering reports whether the filter input is active
func (l EntryList) IsFiltering() bool {
	return l.filterActive
}

// StartFilter opens the filter input
func (l EntryList) StartFilter() (EntryList, tea.Cmd) {
	l.filterActive = true
	cmd := l.filterInput.Focus()
	return l, cmd
}

// ClearFilter closes the filter input and shows every entry again
func (l EntryList) ClearFilter() EntryList {
	l.filterActive = false
	l.filteredIdx = nil
	l.matched = nil
	l.filterInput.SetValue("")
	l.filterInput.Blur()
	return l
}

// MoveUp moves the cursor up one entry
func (l EntryList) MoveUp() EntryList {
	if l.cursor > 0 {
		l.cursor--
	}
	return l.ensureVisible()
}

// MoveDown moves the cursor down one entry
func (l EntryList) MoveDown() EntryList {
	if l.cursor < l.count()-1 {
		l.cursor++
	}
	return l.ensureVisible()
}

// Update handles navigation and filter keys while focused
func (l EntryList) Update(msg tea.Msg) (EntryList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	if l.filterActive && l.filterInput.Focused() {
		switch {
		case key.Matches(keyMsg, EntryListKeys.Escape):
			return l.ClearFilter(), nil
		case key.Matches(keyMsg, EntryListKeys.Enter):
			l.filterInput.Blur()
			return l, nil
		}
		var cmd tea.Cmd
		l.filterInput, cmd = l.filterInput.Update(msg)
		return l.applyFilter(), cmd
	}

	switch {
	case key.Matches(keyMsg, EntryListKeys.Up):
		return l.MoveUp(), nil
	case key.Matches(keyMsg, EntryListKeys.Down):
		return l.MoveDown(), nil
	case key.Matches(keyMsg, EntryListKeys.Home):
		l.cursor = 0
		return l.ensureVisible(), nil
	case key.Matches(keyMsg, EntryListKeys.End):
		l.cursor = max(0, l.count()-1)
		return l.ensureVisible(), nil
	case key.Matches(keyMsg, EntryListKeys.Escape):
		if l.filterActive {
			return l.ClearFilter(), nil
		}
	}
	return l, nil
}

// FilterEditing reports whether keys are going to the filter input
func (l EntryList) FilterEditing() bool {
	return l.filterActive && l.filterInput.Focused()
}

func (l EntryList) applyFilter() EntryList {
	query := l.filterInput.Value()
	if query == "" {
		l.filteredIdx = nil
		l.matched = nil
		return l
	}

	// fuzzy matches case-insensitively and reports byte offsets into each word
	words := make([]string, len(l.entries))
	for i, e := range l.entries {
		words[i] = e.Word
	}

	matches := fuzzy.Find(query, words)
	l.filteredIdx = make([]int, len(matches))
	l.matched = make([][]int, len(matches))
	for i, match := range matches {
		l.filteredIdx[i] = match.Index
		l.matched[i] = match.MatchedIndexes
	}

	l.cursor = 0
	l.offset = 0
	return l
}

func (l EntryList) count() int {
	if l.filteredIdx != nil {
		return len(l.filteredIdx)
	}
	return len(l.entries)
}

func (l EntryList) mapIndex(i int) int {
	if l.filteredIdx != nil && i < len(l.filteredIdx) {
		return l.filteredIdx[i]
	}
	return i
}

// rowHeight is two lines per entry: word line and definition line
const rowHeight = 2

func (l EntryList) maxVisible() int {
	h := l.height
	if l.filterActive {
		h--
	}
	return max(1, h/rowHeight)
}

func (l EntryList) ensureVisible() EntryList {
	if l.height <= 0 {
		return l
	}
	visible := l.maxVisible()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+visible {
		l.offset = l.cursor - visible + 1
	}
	return l
}

// View renders the list
func (l EntryList) View() string {
	var lines []string

	if l.filterActive {
		lines = append(lines, l.filterInput.View())
	}

	if l.count() == 0 {
		msg := "No entries"
		if l.filteredIdx != nil {
			msg = "No matches on this page"
		}
		lines = append(lines, styles.DimStyle.Render("  "+msg))
		return lipgloss.NewStyle().Width(l.width).Height(l.height).Render(strings.Join(lines, "\n"))
	}

	end := min(l.count(), l.offset+l.maxVisible())
	for i := l.offset; i < end; i++ {
		entry := l.entries[l.mapIndex(i)]
		var matched []int
		if l.matched != nil {
			matched = l.matched[i]
		}
		selected := l.focused && i == l.cursor
		lines = append(lines, l.renderEntry(entry, matched, selected)...)
	}

	return lipgloss.NewStyle().Width(l.width).Height(l.height).Render(strings.Join(lines, "\n"))
}

func (l EntryList) renderEntry(e domain.Entry, matched []int, selected bool) []string {
	parts := highlightWord(e.Word, matched)
	if e.WordType != "" {
		parts = append(parts, styles.RowPart{Text: " "})
		parts = append(parts, styles.RowPart{
			Text:       fmt.Sprintf("(%s)", e.WordType),
			Foreground: &styles.Amber,
			Style:      styles.WordTypeStyle,
		})
	}
	wordLine := styles.RenderListRow(parts, selected, l.width)

	def := styles.Truncate(e.Summary(), l.width-4)
	defLine := styles.RenderListRow([]styles.RowPart{{Text: "  " + def, Foreground: &styles.DimGray}}, selected, l.width)

	return []string{wordLine, defLine}
}

// highlightWord splits word into row parts, emphasizing the runes at matched.
func highlightWord(word string, matched []int) []styles.RowPart {
	if len(matched) == 0 {
		return []styles.RowPart{{Text: word, Style: styles.WordStyle}}
	}

	hit := make(map[int]bool, len(matched))
	for _, idx := range matched {
		hit[idx] = true
	}

	var parts []styles.RowPart
	var run strings.Builder
	runHit := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		part := styles.RowPart{Text: run.String(), Style: styles.WordStyle}
		if runHit {
			part.Style = styles.MatchHighlightStyle
			part.Foreground = &styles.Ink
		}
		parts = append(parts, part)
		run.Reset()
	}

	for i, r := range word {
		if hit[i] != runHit {
			flush()
			runHit = hit[i]
		}
		run.WriteRune(r)
	}
	flush()
	return parts
}
