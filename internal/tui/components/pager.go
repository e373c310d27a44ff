package components

import (
	"fmt"
	"strings"

	"github.com/mmcdole/lexi/internal/pagination"
	"github.com/mmcdole/lexi/internal/tui/styles"
)

// Pager renders the page-link bar and tracks which link is highlighted
type Pager struct {
	links   []pagination.Link
	cursor  int // index into links; always a selectable link when any exists
	focused bool
	total   int
	count   int // total elements
}

// NewPager creates an empty pager
func NewPager() Pager {
	return Pager{links: pagination.Plan(0, 0, pagination.DefaultNeighbors), cursor: -1}
}

// SetPage plans links for a listing at 0-based page current of total.
func (p Pager) SetPage(current, total, elements int) Pager {
	p.links = pagination.Plan(current, total, pagination.DefaultNeighbors)
	p.total = total
	p.count = elements
	p.cursor = -1
	// Start on the next link if it can be followed, otherwise the first selectable
	for i, l := range p.links {
		if l.Kind == pagination.KindNext && l.Selectable() {
			p.cursor = i
		}
	}
	if p.cursor < 0 {
		p.cursor = p.firstSelectable(0, 1)
	}
	return p
}

// Links returns the planned links
func (p Pager) Links() []pagination.Link {
	return p.links
}

// SetFocused marks the pager as the focused pane
func (p Pager) SetFocused(focused bool) Pager {
	p.focused = focused
	return p
}

// Next highlights the next selectable link
func (p Pager) Next() Pager {
	if i := p.firstSelectable(p.cursor+1, 1); i >= 0 {
		p.cursor = i
	}
	return p
}

// Prev highlights the previous selectable link
func (p Pager) Prev() Pager {
	if i := p.firstSelectable(p.cursor-1, -1); i >= 0 {
		p.cursor = i
	}
	return p
}

// Selected returns the 0-based page the highlighted link points at
func (p Pager) Selected() (int, bool) {
	if p.cursor < 0 || p.cursor >= len(p.links) || !p.links[p.cursor].Selectable() {
		return 0, false
	}
	return p.links[p.cursor].Target, true
}

// Step returns the target of the previous (-1) or next (+1) link, if enabled.
func (p Pager) Step(dir int) (int, bool) {
	kind := pagination.KindNext
	if dir < 0 {
		kind = pagination.KindPrevious
	}
	for _, l := range p.links {
		if l.Kind == kind && l.Selectable() {
			return l.Target, true
		}
	}
	return 0, false
}

func (p Pager) firstSelectable(from, step int) int {
	for i := from; i >= 0 && i < len(p.links); i += step {
		if p.links[i].Selectable() {
			return i
		}
	}
	return -1
}

// View renders the link bar on one line
func (p Pager) View() string {
	var b strings.Builder
	for i, l := range p.links {
		style := styles.PageLinkStyle
		switch {
		case l.Active:
			style = styles.PageActiveStyle
		case l.Disabled:
			style = styles.PageDisabledStyle
		case p.focused && i == p.cursor:
			style = styles.PageCursorStyle
		}
		b.WriteString(style.Render(l.Label))
	}
	if p.count > 0 {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  %d entries", p.count)))
	}
	return b.String()
}
