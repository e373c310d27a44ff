package route

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/lexi/internal/domain"
)

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name  string
		query domain.EntryQuery
		want  string
	}{
		{"listing", domain.EntryQuery{}, "/entries"},
		{"listing page", domain.EntryQuery{Page: 3}, "/entries?page=2"},
		{"word", domain.EntryQuery{Word: "cat"}, "/entries/word?word=cat"},
		{"word page", domain.EntryQuery{Word: "cat", Page: 1}, "/entries/word?word=cat&page=0"},
		{"letter", domain.EntryQuery{Letter: "B"}, "/entries/letter/B"},
		{"letter page", domain.EntryQuery{Letter: "B", Page: 5}, "/entries/letter/B?page=4"},
		{"word wins over letter", domain.EntryQuery{Word: "dog", Letter: "Z", Page: 2}, "/entries/word?word=dog&page=1"},
		{"word escaped", domain.EntryQuery{Word: "ice cream&co"}, "/entries/word?word=ice+cream%26co"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildRequest(tt.query).String())
		})
	}
}

func TestBuildRequest_WordIgnoresLetter(t *testing.T) {
	for _, letter := range []string{"", "A", "q", "Ж"} {
		for page := 0; page < 4; page++ {
			got := BuildRequest(domain.EntryQuery{Word: "tree", Letter: letter, Page: page})
			assert.Equal(t, "/entries/word", got.Path)
			assert.Contains(t, got.Query, "word=tree")
		}
	}
}

func TestBuildRequest_PageIsZeroBased(t *testing.T) {
	for page := 1; page <= 50; page++ {
		for _, q := range []domain.EntryQuery{{}, {Word: "a"}, {Letter: "A"}} {
			got := BuildRequest(q.WithPage(page))
			assert.True(t, strings.HasSuffix(got.Query, "page="+strconv.Itoa(page-1)), got.String())
		}
	}

	for _, q := range []domain.EntryQuery{{}, {Word: "a"}, {Letter: "A"}} {
		assert.NotContains(t, BuildRequest(q).String(), "page=")
	}
}
