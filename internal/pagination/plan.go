// Package pagination plans the page-link bar shown under a listing.
package pagination

import "strconv"

// DefaultNeighbors is how many pages are shown on each side of the current one.
const DefaultNeighbors = 3

// LinkKind distinguishes the elements of a page-link bar
type LinkKind int

const (
	KindPrevious LinkKind = iota
	KindPage
	KindEllipsis
	KindNext
)

// Link is one element of a page-link bar. Target is a 0-based page index and
// is only meaningful when HasTarget is true.
type Link struct {
	Kind      LinkKind
	Label     string
	Target    int
	HasTarget bool
	Active    bool
	Disabled  bool
}

// Selectable reports whether following the link navigates somewhere new.
func (l Link) Selectable() bool {
	return l.HasTarget && !l.Disabled && !l.Active
}

const (
	previousLabel = "«"
	nextLabel     = "»"
	ellipsisLabel = "…"
)

// Plan returns the ordered page-link bar for a listing.
// current is 0-based; total may be 0. Labels are 1-based page numbers.
func Plan(current, total, neighbors int) []Link {
	if neighbors < 0 {
		neighbors = 0
	}

	collapsible := total > 2*neighbors+1
	hasLeftSpan := collapsible && current > neighbors
	hasRightSpan := collapsible && current < total-neighbors-1

	links := make([]Link, 0, 2*neighbors+7)

	prev := Link{Kind: KindPrevious, Label: previousLabel, Disabled: total == 0 || current <= 0}
	if !prev.Disabled {
		prev.Target, prev.HasTarget = current-1, true
	}
	links = append(links, prev)

	if hasLeftSpan {
		links = append(links, pageLink(0, current), ellipsis())
	}

	if total > 0 {
		start := max(0, current-neighbors)
		end := min(total-1, current+neighbors)
		for i := start; i <= end; i++ {
			links = append(links, pageLink(i, current))
		}
	}

	if hasRightSpan {
		links = append(links, ellipsis(), pageLink(total-1, current))
	}

	next := Link{Kind: KindNext, Label: nextLabel, Disabled: total == 0 || current >= total-1}
	if !next.Disabled {
		next.Target, next.HasTarget = current+1, true
	}
	links = append(links, next)

	return links
}

func pageLink(index, current int) Link {
	return Link{
		Kind:      KindPage,
		Label:     strconv.Itoa(index + 1),
		Target:    index,
		HasTarget: true,
		Active:    index == current,
	}
}

func ellipsis() Link {
	return Link{Kind: KindEllipsis, Label: ellipsisLabel, Disabled: true}
}
