package domain

// EntryQuery is the filter driving a listing request.
// Word and Letter are mutually exclusive; Word wins when both are set.
// Page is 1-based, 0 means not supplied.
type EntryQuery struct {
	Word   string `json:"word,omitempty" yaml:"word,omitempty"`
	Letter string `json:"letter,omitempty" yaml:"letter,omitempty"`
	Page   int    `json:"page,omitempty" yaml:"page,omitempty"`
}

// Normalize drops Letter when Word is set and clamps Page to be non-negative.
func (q EntryQuery) Normalize() EntryQuery {
	if q.Word != "" {
		q.Letter = ""
	}
	if q.Page < 0 {
		q.Page = 0
	}
	return q
}

// WithPage returns a copy of q pointing at the given 1-based page.
func (q EntryQuery) WithPage(page int) EntryQuery {
	q.Page = page
	return q
}
