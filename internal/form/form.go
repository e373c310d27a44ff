// Package form holds the add/edit entry form state and decides which request a
// submission issues.
package form

import (
	"strings"

	"github.com/mmcdole/lexi/internal/domain"
	"github.com/mmcdole/lexi/internal/route"
)

// Mode selects between creating and editing an entry
type Mode int

const (
	ModeAdd Mode = iota
	ModeEdit
)

// Field identifies one input of the form
type Field int

const (
	FieldWord Field = iota
	FieldWordType
	FieldDefinition
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldWord, FieldWordType, FieldDefinition}

func (f Field) Label() string {
	switch f {
	case FieldWord:
		return "Word"
	case FieldWordType:
		return "Word type"
	case FieldDefinition:
		return "Definition"
	default:
		return ""
	}
}

// EmptyFieldMessage is shown next to every empty field after a rejected submit.
const EmptyFieldMessage = "This field can not be empty!"

// ActionKind is the request a submission issues
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionCreate
	ActionReplace
	ActionPatchDefinition
)

func (k ActionKind) String() string {
	switch k {
	case ActionCreate:
		return "create"
	case ActionReplace:
		return "replace"
	case ActionPatchDefinition:
		return "patch"
	default:
		return "none"
	}
}

// Action is the outcome of a submit: which request to send, with what.
type Action struct {
	Kind       ActionKind
	EntryID    int64
	Input      domain.EntryInput
	Definition string
}

// Form is the add/edit form state. It is a value; every change returns a copy.
type Form struct {
	mode     Mode
	original *domain.Entry
	values   [3]string
	rejected bool

	// Status and Message describe the last failed request; Status is 0 when
	// there is nothing to report.
	Status  int
	Message string
}

// NewAdd returns an empty add form.
func NewAdd() Form {
	return Form{mode: ModeAdd}
}

// NewEdit returns an edit form prefilled from entry.
func NewEdit(entry domain.Entry) Form {
	e := entry
	f := Form{mode: ModeEdit, original: &e}
	f.values = [3]string{entry.Word, entry.WordType, entry.Definition}
	return f
}

func (f Form) Mode() Mode { return f.mode }

// Original returns the entry being edited, or nil in add mode.
func (f Form) Original() *domain.Entry { return f.original }

// Value returns the current text of a field.
func (f Form) Value(field Field) string {
	return f.values[field]
}

// Set returns a copy of the form with field set to value.
func (f Form) Set(field Field, value string) Form {
	f.values[field] = value
	return f
}

// Input returns the current field values as a request body. Word and word
// type are trimmed; the definition is sent as typed.
func (f Form) Input() domain.EntryInput {
	return domain.EntryInput{
		Word:       strings.TrimSpace(f.values[FieldWord]),
		WordType:   strings.TrimSpace(f.values[FieldWordType]),
		Definition: f.values[FieldDefinition],
	}
}

// FieldError returns the inline validation message for field, if any.
func (f Form) FieldError(field Field) string {
	if f.rejected && isBlank(f.values[field]) {
		return EmptyFieldMessage
	}
	return ""
}

// Valid reports whether every field is non-empty.
func (f Form) Valid() bool {
	for _, v := range f.values {
		if isBlank(v) {
			return false
		}
	}
	return true
}

// Submit validates the form and returns the request to issue. An invalid form
// returns ActionNone and marks its empty fields; ok is false in that case.
func (f Form) Submit() (Form, Action, bool) {
	if !f.Valid() {
		f.rejected = true
		return f, Action{Kind: ActionNone}, false
	}
	f.rejected = false

	input := f.Input()
	if f.mode == ModeAdd {
		return f, Action{Kind: ActionCreate, Input: input}, true
	}

	orig := f.original
	switch {
	case orig.Word != input.Word || orig.WordType != input.WordType:
		return f, Action{Kind: ActionReplace, EntryID: orig.ID, Input: input}, true
	case orig.Definition != input.Definition:
		return f, Action{Kind: ActionPatchDefinition, EntryID: orig.ID, Definition: input.Definition}, true
	default:
		return f, Action{Kind: ActionNone, EntryID: orig.ID}, true
	}
}

// Failed records a failed request. Status is 0 for transport failures.
func (f Form) Failed(status int, message string) Form {
	f.Status = status
	f.Message = message
	return f
}

// Succeeded reports whether status is a success per the API (below 400).
func Succeeded(status int) bool {
	return status < 400
}

// SuccessLocation is where the UI goes after a successful submit: the word
// search for the submitted word.
func (f Form) SuccessLocation() route.Location {
	return route.Word(strings.TrimSpace(f.values[FieldWord]))
}

// CancelLocation is where the UI goes when the form is abandoned.
func (f Form) CancelLocation() route.Location {
	if f.mode == ModeEdit && f.original != nil {
		return route.Word(f.original.Word)
	}
	return route.Home
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
