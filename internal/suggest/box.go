// Package suggest models the search-ahead suggestion box as an immutable value.
//
// Every transition returns a new Box. Queries are numbered with a monotonically
// increasing sequence and a response only applies if it answers the latest
// query while the box is still waiting for it, so a slow response for an old
// input can never overwrite or reopen the box.
package suggest

import "strings"

// State of the suggestion box
type State int

const (
	Idle State = iota
	Querying
	Showing
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Querying:
		return "querying"
	case Showing:
		return "showing"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Query is a request the caller must issue for the box.
type Query struct {
	Seq   uint64
	Input string
}

// Box is the suggestion box state.
type Box struct {
	state       State
	input       string
	focused     bool
	seq         uint64
	suggestions []string
	cursor      int // -1 when nothing is highlighted
}

// New returns an idle, unfocused box.
func New() Box {
	return Box{state: Idle, cursor: -1}
}

func (b Box) State() State          { return b.state }
func (b Box) Input() string         { return b.input }
func (b Box) Focused() bool         { return b.focused }
func (b Box) Seq() uint64           { return b.seq }
func (b Box) Open() bool            { return b.state == Showing && len(b.suggestions) > 0 }
func (b Box) Cursor() int           { return b.cursor }
func (b Box) Suggestions() []string { return b.suggestions }

// Focus gives the box focus and, with non-empty input, starts a query.
func (b Box) Focus() (Box, *Query) {
	b.focused = true
	return b.request()
}

// Blur removes focus and closes the box. Pending responses are ignored afterwards.
func (b Box) Blur() Box {
	b.focused = false
	return b.close()
}

// SetInput records new input text. Non-empty input while focused starts a
// query; empty input closes the box.
func (b Box) SetInput(input string) (Box, *Query) {
	if input == b.input {
		return b, nil
	}
	b.input = input
	return b.request()
}

// Resolve applies the response to query seq.
func (b Box) Resolve(seq uint64, suggestions []string) Box {
	if seq != b.seq || b.state != Querying {
		return b
	}
	if len(suggestions) == 0 {
		return b.close()
	}
	b.state = Showing
	b.suggestions = suggestions
	b.cursor = -1
	return b
}

// Fail closes the box if seq is the query it was waiting for.
func (b Box) Fail(seq uint64) Box {
	if seq != b.seq || b.state != Querying {
		return b
	}
	return b.close()
}

// Next highlights the next suggestion.
func (b Box) Next() Box {
	if !b.Open() {
		return b
	}
	b.cursor = (b.cursor + 1) % len(b.suggestions)
	return b
}

// Prev highlights the previous suggestion.
func (b Box) Prev() Box {
	if !b.Open() {
		return b
	}
	if b.cursor <= 0 {
		b.cursor = len(b.suggestions) - 1
	} else {
		b.cursor--
	}
	return b
}

// Accept returns the highlighted suggestion, or the trimmed input when nothing
// is highlighted. ok is false when there is nothing to search for.
func (b Box) Accept() (word string, ok bool) {
	if b.Open() && b.cursor >= 0 {
		return b.suggestions[b.cursor], true
	}
	word = strings.TrimSpace(b.input)
	return word, word != ""
}

// Reset clears input and closes the box, keeping focus and sequence.
func (b Box) Reset() Box {
	b.input = ""
	return b.close()
}

func (b Box) request() (Box, *Query) {
	if !b.focused || strings.TrimSpace(b.input) == "" {
		return b.close(), nil
	}
	b.seq++
	b.state = Querying
	return b, &Query{Seq: b.seq, Input: b.input}
}

func (b Box) close() Box {
	b.state = Closed
	b.suggestions = nil
	b.cursor = -1
	return b
}

// Split divides a suggestion into the part matching the typed prefix and the
// completion that follows it. When the suggestion does not start with the
// input (ignoring case) the whole suggestion is the completion.
func Split(input, suggestion string) (typed, completion string) {
	if len(input) <= len(suggestion) && strings.EqualFold(suggestion[:len(input)], input) {
		return suggestion[:len(input)], suggestion[len(input):]
	}
	return "", suggestion
}
