package domain

import "strings"

// Entry is a dictionary record owned by the server.
type Entry struct {
	ID         int64  `json:"id" yaml:"id"`
	Word       string `json:"word" yaml:"word"`
	WordType   string `json:"wordtype" yaml:"wordtype"`
	Definition string `json:"definition" yaml:"definition"`
}

// EntryInput is the request body for creating or replacing an entry.
type EntryInput struct {
	Word       string `json:"word"`
	WordType   string `json:"wordtype"`
	Definition string `json:"definition"`
}

// Summary returns the first line of the definition.
func (e Entry) Summary() string {
	def := strings.TrimSpace(e.Definition)
	if i := strings.IndexByte(def, '\n'); i >= 0 {
		return def[:i]
	}
	return def
}
