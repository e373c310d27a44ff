// Package output renders command results as text, YAML or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/mmcdole/lexi/internal/domain"
	"github.com/mmcdole/lexi/internal/pagination"
)

// Format defines the output format for CLI commands.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// ParseFormat validates a --output flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, yaml or json)", s)
	}
}

// Printer writes results to w in one format.
type Printer struct {
	w      io.Writer
	format Format
	width  int
}

// NewPrinter creates a printer. Text output wraps to the terminal width when w
// is a terminal.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format, width: terminalWidth(w)}
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// Structured reports whether the format is YAML or JSON.
func (p *Printer) Structured() bool {
	return p.format == FormatYAML || p.format == FormatJSON
}

// Data writes v in the structured format. Text format falls back to YAML.
func (p *Printer) Data(v any) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
}

// Page writes one page of entries.
func (p *Printer) Page(page *domain.Page[domain.Entry]) error {
	if p.Structured() {
		return p.Data(page)
	}

	if page.IsEmpty() {
		_, err := fmt.Fprintln(p.w, "No entries.")
		return err
	}
	for _, e := range page.Content {
		if err := p.writeEntry(e); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(p.w, "%s  page %d of %d, %d entries\n",
		PlanLine(page.PageNumber, page.TotalPages), page.PageNumber+1, page.TotalPages, page.TotalElements)
	return err
}

// Entry writes a single entry.
func (p *Printer) Entry(e *domain.Entry) error {
	if p.Structured() {
		return p.Data(e)
	}
	return p.writeEntry(*e)
}

// Words writes a list of words, one per line in text format.
func (p *Printer) Words(words []string) error {
	if p.Structured() {
		if words == nil {
			words = []string{}
		}
		return p.Data(words)
	}
	for _, w := range words {
		if _, err := fmt.Fprintln(p.w, w); err != nil {
			return err
		}
	}
	return nil
}

// Result writes a short confirmation. Structured formats get the value instead.
func (p *Printer) Result(message string, v any) error {
	if p.Structured() {
		return p.Data(v)
	}
	_, err := fmt.Fprintln(p.w, message)
	return err
}

func (p *Printer) writeEntry(e domain.Entry) error {
	head := fmt.Sprintf("%s (%s)  #%d", e.Word, e.WordType, e.ID)
	body := lipgloss.NewStyle().
		Width(max(20, p.width-2)).
		PaddingLeft(2).
		Render(strings.TrimSpace(e.Definition))
	_, err := fmt.Fprintf(p.w, "%s\n%s\n\n", head, body)
	return err
}

// PlanLine renders the page-link bar as plain text, marking the current page
// with brackets.
func PlanLine(current, total int) string {
	links := pagination.Plan(current, total, pagination.DefaultNeighbors)
	labels := make([]string, len(links))
	for i, l := range links {
		if l.Active {
			labels[i] = "[" + l.Label + "]"
		} else {
			labels[i] = l.Label
		}
	}
	return strings.Join(labels, " ")
}
