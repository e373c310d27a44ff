package tui

import "github.com/mmcdole/lexi/internal/tui/components"

// listWidth is the width left for entries beside the alphabet sidebar
func (m Model) listWidth() int {
	return max(20, m.Width-components.AlphabetWidth-1)
}

// bodyHeight is the height between the header and the footer
func (m Model) bodyHeight(headerHeight int) int {
	return max(3, m.Height-headerHeight-ChromeHeight)
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	body := m.bodyHeight(HeaderHeight)
	m.Search = m.Search.SetWidth(min(60, m.Width/2))
	m.List = m.List.SetSize(m.listWidth(), body)
	m.Alphabet = m.Alphabet.SetHeight(body + 1)
	m.HistoryModal.SetSize(m.Width, m.Height)
	if m.Form != nil {
		f := m.Form.SetWidth(min(80, m.Width))
		m.Form = &f
	}
}
