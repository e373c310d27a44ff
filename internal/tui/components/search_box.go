package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/lexi/internal/suggest"
	"github.com/mmcdole/lexi/internal/tui/styles"
)

// MaxSuggestions caps the dropdown height
const MaxSuggestions = 8

// SearchEvent reports what a key press in the search box asks the app to do.
type SearchEvent struct {
	// Query is set when a suggestion request should be sent
	Query *suggest.Query
	// Submit is the word to search for when the user pressed enter
	Submit string
	// Closed is set when the box gave up focus
	Closed bool
}

// SearchBox is the word search input with its suggestion dropdown
type SearchBox struct {
	input textinput.Model
	box   suggest.Box
	width int
}

// NewSearchBox creates a new search box
func NewSearchBox() SearchBox {
	ti := textinput.New()
	ti.Placeholder = "Search a word..."
	ti.CharLimit = 100
	ti.Width = 30
	ti.Prompt = "s "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBox{
		input: ti,
		box:   suggest.New(),
	}
}

// Focus focuses the input. With text already typed it asks for suggestions.
func (s SearchBox) Focus() (SearchBox, *suggest.Query) {
	s.input.Focus()
	var q *suggest.Query
	s.box, q = s.box.Focus()
	return s, q
}

// Blur removes focus and closes the dropdown
func (s SearchBox) Blur() SearchBox {
	s.input.Blur()
	s.box = s.box.Blur()
	return s
}

// Focused reports whether the box has focus
func (s SearchBox) Focused() bool {
	return s.box.Focused()
}

// SetWidth updates the input width
func (s SearchBox) SetWidth(width int) SearchBox {
	s.width = width
	s.input.Width = max(10, width-4)
	return s
}

// State exposes the suggestion state machine
func (s SearchBox) State() suggest.Box {
	return s.box
}

// Value returns the typed text
func (s SearchBox) Value() string {
	return s.input.Value()
}

// Resolve applies suggestions for query seq
func (s SearchBox) Resolve(seq uint64, words []string) SearchBox {
	// Only what the dropdown can show is selectable
	if len(words) > MaxSuggestions {
		words = words[:MaxSuggestions]
	}
	s.box = s.box.Resolve(seq, words)
	return s
}

// Fail closes the dropdown if seq was the pending query
func (s SearchBox) Fail(seq uint64) SearchBox {
	s.box = s.box.Fail(seq)
	return s
}

// Update handles key input while focused
func (s SearchBox) Update(msg tea.Msg) (SearchBox, tea.Cmd, SearchEvent) {
	if !s.box.Focused() {
		return s, nil, SearchEvent{}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd, SearchEvent{}
	}

	switch {
	case key.Matches(keyMsg, SearchBoxKeys.Escape):
		s = s.Blur()
		return s, nil, SearchEvent{Closed: true}

	case key.Matches(keyMsg, SearchBoxKeys.Enter):
		word, ok := s.box.Accept()
		if !ok {
			return s, nil, SearchEvent{}
		}
		s.input.SetValue("")
		s.box = s.box.Reset()
		s = s.Blur()
		return s, nil, SearchEvent{Submit: word, Closed: true}

	case key.Matches(keyMsg, SearchBoxKeys.Down):
		s.box = s.box.Next()
		return s, nil, SearchEvent{}

	case key.Matches(keyMsg, SearchBoxKeys.Up):
		s.box = s.box.Prev()
		return s, nil, SearchEvent{}

	case key.Matches(keyMsg, SearchBoxKeys.Accept):
		if !s.box.Open() {
			return s, nil, SearchEvent{}
		}
		if s.box.Cursor() < 0 {
			s.box = s.box.Next()
		}
		word, _ := s.box.Accept()
		s.input.SetValue(word)
		s.input.CursorEnd()
		return s.syncInput(nil)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s.syncInput(cmd)
}

func (s SearchBox) syncInput(cmd tea.Cmd) (SearchBox, tea.Cmd, SearchEvent) {
	var q *suggest.Query
	s.box, q = s.box.SetInput(s.input.Value())
	return s, cmd, SearchEvent{Query: q}
}

// View renders the input and, when open, the suggestion dropdown
func (s SearchBox) View() string {
	var b strings.Builder
	b.WriteString(s.input.View())

	if !s.box.Open() {
		return b.String()
	}

	typedInput := strings.TrimLeft(s.box.Input(), " ")
	words := s.box.Suggestions()
	for i, word := range words {
		typed, completion := suggest.Split(typedInput, word)
		selected := i == s.box.Cursor()

		parts := []styles.RowPart{
			{Text: typed, Style: lipgloss.NewStyle().Bold(true)},
			{Text: completion},
		}
		b.WriteString("\n")
		b.WriteString(styles.RenderListRow(parts, selected, s.width))
	}
	return b.String()
}
