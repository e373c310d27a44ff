package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/lexi/internal/tui/styles"
)

// HistoryModal lists recently looked-up words, narrowed by typed text
type HistoryModal struct {
	input   textinput.Model
	words   []string
	cursor  int
	visible bool
	width   int
	height  int
}

// NewHistoryModal creates a new history modal
func NewHistoryModal() HistoryModal {
	ti := textinput.New()
	ti.Placeholder = "Type to narrow..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return HistoryModal{input: ti}
}

// Show opens the modal with the given words
func (h *HistoryModal) Show(words []string) {
	h.visible = true
	h.input.SetValue("")
	h.input.Focus()
	h.SetWords(words)
}

// Hide closes the modal
func (h *HistoryModal) Hide() {
	h.visible = false
	h.input.Blur()
}

// IsVisible returns whether the modal is shown
func (h HistoryModal) IsVisible() bool {
	return h.visible
}

// SetWords replaces the listed words
func (h *HistoryModal) SetWords(words []string) {
	h.words = words
	h.cursor = 0
}

// SetSize updates the modal dimensions
func (h *HistoryModal) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Query returns the typed text
func (h HistoryModal) Query() string {
	return h.input.Value()
}

// Selected returns the highlighted word
func (h HistoryModal) Selected() (string, bool) {
	if h.cursor < 0 || h.cursor >= len(h.words) {
		return "", false
	}
	return h.words[h.cursor], true
}

// Update handles key input. It reports whether a word was chosen and whether
// the query text changed.
func (h HistoryModal) Update(msg tea.Msg) (modal HistoryModal, cmd tea.Cmd, selected, queryChanged bool) {
	if !h.visible {
		return h, nil, false, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, ModalKeys.Escape):
			h.Hide()
			return h, nil, false, false
		case key.Matches(keyMsg, ModalKeys.Enter):
			_, ok := h.Selected()
			return h, nil, ok, false
		case key.Matches(keyMsg, ModalKeys.Down):
			if h.cursor < len(h.words)-1 {
				h.cursor++
			}
			return h, nil, false, false
		case key.Matches(keyMsg, ModalKeys.Up):
			if h.cursor > 0 {
				h.cursor--
			}
			return h, nil, false, false
		}
	}

	before := h.input.Value()
	h.input, cmd = h.input.Update(msg)
	return h, cmd, false, h.input.Value() != before
}

// View renders the modal
func (h HistoryModal) View() string {
	if !h.visible {
		return ""
	}

	modalWidth := min(max(h.width/2, 40), 70)
	maxRows := 10

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Recent lookups"))
	b.WriteString("\n")
	b.WriteString(h.input.View())
	b.WriteString("\n\n")

	switch {
	case len(h.words) == 0 && h.input.Value() != "":
		b.WriteString(styles.DimStyle.Render("No matches"))
	case len(h.words) == 0:
		b.WriteString(styles.DimStyle.Render("No lookups yet"))
	}

	for i, w := range h.words {
		if i >= maxRows {
			b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... and %d more", len(h.words)-maxRows)))
			break
		}
		style := styles.NormalItemStyle
		if i == h.cursor {
			style = styles.SelectedItemStyle
		}
		b.WriteString(style.Render(styles.Truncate(w, modalWidth-8)))
		b.WriteString("\n")
	}

	content := lipgloss.NewStyle().Width(modalWidth - 4).Render(b.String())
	return styles.ModalStyle.Width(modalWidth).Render(content)
}
