package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/lexi/internal/tui/styles"
)

// PageInputModal asks for a 1-based page number to jump to
type PageInputModal struct {
	visible bool
	total   int
	input   textinput.Model
	err     string
}

// NewPageInputModal creates a new page input modal
func NewPageInputModal() PageInputModal {
	ti := textinput.New()
	ti.Placeholder = "page"
	ti.CharLimit = 6
	ti.Width = 10
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	ti.Validate = func(s string) error {
		if s == "" {
			return nil
		}
		_, err := strconv.Atoi(s)
		return err
	}

	return PageInputModal{input: ti}
}

// Show displays the modal for a listing with total pages
func (m *PageInputModal) Show(total int) {
	m.visible = true
	m.total = total
	m.err = ""
	m.input.SetValue("")
	m.input.Focus()
}

// Hide dismisses the modal
func (m *PageInputModal) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns whether the modal is shown
func (m PageInputModal) IsVisible() bool {
	return m.visible
}

// Page returns the entered page as a 0-based index
func (m PageInputModal) Page() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
	if err != nil || n < 1 || (m.total > 0 && n > m.total) {
		return 0, false
	}
	return n - 1, true
}

// Update handles input events, returns (modal, cmd, submitted)
func (m PageInputModal) Update(msg tea.Msg) (PageInputModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, ModalKeys.Enter):
			if _, ok := m.Page(); !ok {
				m.err = "Enter a page between 1 and " + strconv.Itoa(max(1, m.total))
				return m, nil, false
			}
			return m, nil, true
		case key.Matches(keyMsg, ModalKeys.Escape):
			m.Hide()
			return m, nil, false
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = ""
	return m, cmd, false
}

// View renders the input modal
func (m PageInputModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 36

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.White).
		Bold(true).
		Width(modalWidth).
		Background(styles.SlateDark)

	lineStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark)

	status := ""
	if m.err != "" {
		status = styles.ErrorStyle.Render(m.err)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Go to page (1-"+strconv.Itoa(max(1, m.total))+")"),
		lineStyle.Render(""),
		lineStyle.Render(m.input.View()),
		lineStyle.Render(status),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Ink).
		Background(styles.SlateDark).
		Padding(1, 2).
		Render(content)
}
