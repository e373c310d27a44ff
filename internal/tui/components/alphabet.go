package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/lexi/internal/route"
	"github.com/mmcdole/lexi/internal/tui/styles"
)

// AlphabetWidth is the width of the letter sidebar
const AlphabetWidth = 5

// Alphabet is the A..Z sidebar linking to letter listings
type Alphabet struct {
	links   []route.AlphabetLink
	cursor  int
	active  string // letter of the current listing, if any
	focused bool
	height  int
}

// NewAlphabet creates the letter sidebar
func NewAlphabet() Alphabet {
	return Alphabet{links: route.Alphabet()}
}

// SetActive marks letter as the current listing
func (a Alphabet) SetActive(letter string) Alphabet {
	a.active = strings.ToUpper(letter)
	for i, l := range a.links {
		if l.Letter == a.active {
			a.cursor = i
		}
	}
	return a
}

func (a Alphabet) SetFocused(focused bool) Alphabet {
	a.focused = focused
	return a
}

func (a Alphabet) SetHeight(height int) Alphabet {
	a.height = height
	return a
}

// Up moves the cursor to the previous letter, wrapping around
func (a Alphabet) Up() Alphabet {
	a.cursor = (a.cursor - 1 + len(a.links)) % len(a.links)
	return a
}

// Down moves the cursor to the next letter, wrapping around
func (a Alphabet) Down() Alphabet {
	a.cursor = (a.cursor + 1) % len(a.links)
	return a
}

// Jump moves the cursor to letter if it exists
func (a Alphabet) Jump(letter string) (Alphabet, bool) {
	letter = strings.ToUpper(letter)
	for i, l := range a.links {
		if l.Letter == letter {
			a.cursor = i
			return a, true
		}
	}
	return a, false
}

// Selected returns the location of the letter under the cursor
func (a Alphabet) Selected() route.Location {
	return a.links[a.cursor].Location
}

// View renders the letters in one column, scrolled to keep the cursor visible
func (a Alphabet) View() string {
	visible := len(a.links)
	if a.height > 0 && a.height < visible {
		visible = a.height
	}
	start := 0
	if a.cursor >= visible {
		start = a.cursor - visible + 1
	}

	lines := make([]string, 0, visible)
	for i := start; i < start+visible; i++ {
		l := a.links[i]
		style := styles.DimStyle
		switch {
		case a.focused && i == a.cursor:
			style = styles.PageCursorStyle
		case l.Letter == a.active:
			style = styles.AccentStyle.Bold(true)
		}
		lines = append(lines, " "+style.Render(l.Letter))
	}
	return lipgloss.NewStyle().Width(AlphabetWidth).Render(strings.Join(lines, "\n"))
}
