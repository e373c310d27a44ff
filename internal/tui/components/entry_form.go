package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/lexi/internal/domain"
	"github.com/mmcdole/lexi/internal/form"
	"github.com/mmcdole/lexi/internal/tui/styles"
)

// FormEvent reports what a key press in the form asks the app to do.
type FormEvent struct {
	// Submit is set when a valid submission produced a request plan
	Submit *form.Action
	Cancel bool
}

// EntryForm is the add/edit form view
type EntryForm struct {
	form       form.Form
	word       textinput.Model
	wordType   textinput.Model
	definition textarea.Model
	focus      form.Field
	submitting bool
	width      int
}

// NewAddForm creates an empty add form
func NewAddForm() EntryForm {
	return newEntryForm(form.NewAdd())
}

// NewEditForm creates an edit form prefilled from entry
func NewEditForm(entry domain.Entry) EntryForm {
	return newEntryForm(form.NewEdit(entry))
}

func newEntryForm(f form.Form) EntryForm {
	word := newFieldInput("cat")
	word.SetValue(f.Value(form.FieldWord))

	wordType := newFieldInput("n.")
	wordType.SetValue(f.Value(form.FieldWordType))

	def := textarea.New()
	def.Placeholder = "A small domesticated feline."
	def.ShowLineNumbers = false
	def.CharLimit = 2000
	def.SetHeight(5)
	def.SetValue(f.Value(form.FieldDefinition))

	ef := EntryForm{
		form:       f,
		word:       word,
		wordType:   wordType,
		definition: def,
		focus:      form.FieldWord,
	}
	return ef.focusField(form.FieldWord)
}

func newFieldInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	return ti
}

// Form returns the underlying form state
func (f EntryForm) Form() form.Form {
	return f.form
}

// Submitting reports whether a request is in flight
func (f EntryForm) Submitting() bool {
	return f.submitting
}

// Failed records a failed request. Status is 0 for transport failures.
func (f EntryForm) Failed(status int, message string) EntryForm {
	f.form = f.form.Failed(status, message)
	f.submitting = false
	return f
}

// SetWidth updates the input widths
func (f EntryForm) SetWidth(width int) EntryForm {
	f.width = width
	inner := max(20, width-8)
	f.word.Width = inner
	f.wordType.Width = inner
	f.definition.SetWidth(inner)
	return f
}

func (f EntryForm) focusField(field form.Field) EntryForm {
	f.focus = field
	f.word.Blur()
	f.wordType.Blur()
	f.definition.Blur()
	switch field {
	case form.FieldWord:
		f.word.Focus()
	case form.FieldWordType:
		f.wordType.Focus()
	case form.FieldDefinition:
		f.definition.Focus()
	}
	return f
}

// Update handles key input
func (f EntryForm) Update(msg tea.Msg) (EntryForm, tea.Cmd, FormEvent) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, EntryFormKeys.Cancel):
			return f, nil, FormEvent{Cancel: true}

		case key.Matches(keyMsg, EntryFormKeys.Submit):
			if f.submitting {
				return f, nil, FormEvent{}
			}
			next, action, ok := f.form.Submit()
			f.form = next
			if !ok {
				return f, nil, FormEvent{}
			}
			f.form = f.form.Failed(0, "")
			f.submitting = true
			return f, nil, FormEvent{Submit: &action}

		case key.Matches(keyMsg, EntryFormKeys.Next):
			return f.focusField((f.focus + 1) % 3), nil, FormEvent{}

		case key.Matches(keyMsg, EntryFormKeys.Prev):
			return f.focusField((f.focus + 2) % 3), nil, FormEvent{}

		case keyMsg.Type == tea.KeyEnter && f.focus != form.FieldDefinition:
			return f.focusField(f.focus + 1), nil, FormEvent{}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case form.FieldWord:
		f.word, cmd = f.word.Update(msg)
		f.form = f.form.Set(form.FieldWord, f.word.Value())
	case form.FieldWordType:
		f.wordType, cmd = f.wordType.Update(msg)
		f.form = f.form.Set(form.FieldWordType, f.wordType.Value())
	case form.FieldDefinition:
		f.definition, cmd = f.definition.Update(msg)
		f.form = f.form.Set(form.FieldDefinition, f.definition.Value())
	}
	return f, cmd, FormEvent{}
}

// View renders the form
func (f EntryForm) View() string {
	var b strings.Builder

	title := "Add entry"
	if orig := f.form.Original(); orig != nil {
		title = fmt.Sprintf("Edit entry #%d", orig.ID)
	}
	b.WriteString(styles.ModalTitleStyle.Render(title))
	b.WriteString("\n")

	for _, field := range form.Fields {
		label := styles.SubtitleStyle
		if field == f.focus {
			label = styles.AccentStyle.Bold(true)
		}
		b.WriteString(label.Render(field.Label()))
		if msg := f.form.FieldError(field); msg != "" {
			b.WriteString("  ")
			b.WriteString(styles.ErrorStyle.Render(msg))
		}
		b.WriteString("\n")

		switch field {
		case form.FieldWord:
			b.WriteString(f.word.View())
		case form.FieldWordType:
			b.WriteString(f.wordType.View())
		case form.FieldDefinition:
			b.WriteString(f.definition.View())
		}
		b.WriteString("\n\n")
	}

	switch {
	case f.submitting:
		b.WriteString(styles.DimStyle.Render("Saving..."))
	case f.form.Status > 0:
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("Status: %d %s", f.form.Status, f.form.Message)))
	case f.form.Message != "":
		b.WriteString(styles.ErrorStyle.Render(f.form.Message + " (C-s to retry)"))
	}
	b.WriteString("\n")

	hints := []string{
		styles.HelpKeyStyle.Render("tab") + styles.HelpDescStyle.Render(" next field"),
		styles.HelpKeyStyle.Render("C-s") + styles.HelpDescStyle.Render(" save"),
		styles.HelpKeyStyle.Render("esc") + styles.HelpDescStyle.Render(" cancel"),
	}
	b.WriteString(strings.Join(hints, "   "))

	return lipgloss.NewStyle().Width(f.width).Padding(1, 2).Render(b.String())
}
