package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/lexi/internal/domain"
	"github.com/mmcdole/lexi/internal/route"
	"github.com/mmcdole/lexi/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	height := m.bodyHeight(lipgloss.Height(header))

	var body string
	if m.Location.View == route.ViewList {
		body = m.renderListBody(height)
	} else {
		body = m.renderFormBody(height)
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		body,
		m.renderFooter(),
	)

	switch {
	case m.State == StateConfirmDelete:
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.renderDeleteConfirmation())
	case m.HistoryModal.IsVisible():
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.HistoryModal.View())
	case m.PageInput.IsVisible():
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.PageInput.View())
	}

	return view
}

// renderHeader renders the title line and the search box
func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render("lexi") + "  " + styles.AccentStyle.Render(m.Location.Path())
	if m.Page != nil && m.Location.View == route.ViewList && m.Page.TotalPages > 0 {
		title += styles.DimStyle.Render(fmt.Sprintf("  page %d of %d", m.Page.PageNumber+1, m.Page.TotalPages))
	}
	if m.Loading {
		title += " " + RenderSpinner(m.SpinnerFrame)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.Search.View())
}

// renderListBody renders the alphabet sidebar next to the entries and pager
func (m Model) renderListBody(height int) string {
	width := m.listWidth()

	var main string
	switch {
	case m.ListErr != nil:
		main = lipgloss.NewStyle().Width(width).Height(height + 1).Render(m.renderListError(width))
	case m.Page == nil:
		main = lipgloss.NewStyle().Width(width).Height(height + 1).Render(
			RenderSpinner(m.SpinnerFrame) + styles.DimStyle.Render(" Loading entries..."))
	default:
		list := m.List.SetSize(width, height)
		main = lipgloss.JoinVertical(lipgloss.Left, list.View(), " "+m.Pager.View())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, m.Alphabet.SetHeight(height+1).View(), main)
}

// renderListError renders a failed listing, with alternatives for unknown words
func (m Model) renderListError(width int) string {
	var b strings.Builder

	var apiErr *domain.APIError
	switch {
	case errors.As(m.ListErr, &apiErr):
		b.WriteString(styles.ErrorStyle.Render(apiErr.Error()))
		b.WriteString("\n")
		if len(m.Alternatives) > 0 {
			b.WriteString("\n")
			b.WriteString(styles.SubtitleStyle.Render("Perhaps you mean:"))
			b.WriteString("\n")
			for i, alt := range m.Alternatives {
				selected := m.Focus == PaneAlternatives && i == m.altCursor
				b.WriteString(styles.RenderListRow([]styles.RowPart{{Text: alt}}, selected, min(width, 40)))
				b.WriteString("\n")
			}
		}
	case errors.Is(m.ListErr, domain.ErrServerOffline):
		b.WriteString(styles.WarningStyle.Render("The dictionary API is not reachable."))
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("Press r to retry."))
	default:
		b.WriteString(RenderError(m.ListErr, width))
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("Press r to retry."))
	}

	return b.String()
}

// renderFormBody renders the add/edit form or its loading state
func (m Model) renderFormBody(height int) string {
	var content string
	switch {
	case m.Form != nil:
		content = m.Form.View()
	case m.ListErr != nil:
		content = RenderError(m.ListErr, m.Width) + "\n" +
			styles.DimStyle.Render("Press r to retry, esc to go back.")
	default:
		content = RenderSpinner(m.SpinnerFrame) + styles.DimStyle.Render(" Loading entry...")
	}
	return lipgloss.NewStyle().Height(height + 1).Render(content)
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	}

	var center string
	if m.Location.View == route.ViewList && !m.Search.Focused() {
		hints := []string{
			styles.AccentStyle.Render("s") + styles.DimStyle.Render(" search"),
			styles.AccentStyle.Render("a") + styles.DimStyle.Render(" add"),
		}
		if _, ok := m.List.Selected(); ok {
			hints = append(hints,
				styles.AccentStyle.Render("e")+styles.DimStyle.Render(" edit"),
				styles.AccentStyle.Render("x")+styles.DimStyle.Render(" delete"))
		}
		center = strings.Join(hints, "  ")
	}

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		gap := max(0, m.Width-leftWidth-rightWidth)
		return left + strings.Repeat(" ", gap) + right
	}

	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
BROWSING                        ENTRIES
  j/k        Up/down               a      Add entry
  tab        Next pane             e      Edit entry
  [ / ]      Previous/next page    x      Delete entry
  p          Go to page            enter  Open word
  ~          All entries
  b          Back

SEARCH                          OTHER
  s          Search a word         r      Reload / retry
  /          Filter this page      q      Quit
  C-r        Recent lookups        ?      This help
  tab        Complete suggestion   esc    Close / cancel

FORM
  tab        Next field            C-s    Save
  esc        Cancel

Press ? or esc to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

// renderDeleteConfirmation renders the delete confirmation modal
func (m Model) renderDeleteConfirmation() string {
	word := ""
	if m.pendingDelete != nil {
		word = m.pendingDelete.Word
	}
	modal := fmt.Sprintf(`
     Delete "%s"?

   [Y] Yes      [N] No
`, styles.Truncate(word, 30))

	return styles.ModalStyle.Render(modal)
}

// RenderSpinner renders the spinner animation
func RenderSpinner(frame int) string {
	return styles.SpinnerStyle.Render(styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
}

// RenderError renders an error message
func RenderError(err error, width int) string {
	return styles.ErrorStyle.Width(max(10, width-4)).Render("Error: " + err.Error())
}
