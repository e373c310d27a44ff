package pagination

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// labels renders a plan compactly, marking the active page with brackets.
func labels(links []Link) string {
	parts := make([]string, len(links))
	for i, l := range links {
		if l.Active {
			parts[i] = "[" + l.Label + "]"
		} else {
			parts[i] = l.Label
		}
	}
	return strings.Join(parts, " ")
}

func TestPlan_NoCollapse(t *testing.T) {
	links := Plan(2, 5, DefaultNeighbors)
	assert.Equal(t, "« 1 2 [3] 4 5 »", labels(links))
	for _, l := range links {
		assert.NotEqual(t, KindEllipsis, l.Kind)
	}
}

func TestPlan_BothSpans(t *testing.T) {
	links := Plan(10, 20, DefaultNeighbors)
	assert.Equal(t, "« 1 … 8 9 10 [11] 12 13 14 … 20 »", labels(links))

	require.Equal(t, KindEllipsis, links[2].Kind)
	assert.True(t, links[2].Disabled)
	assert.False(t, links[2].HasTarget)
	assert.Equal(t, 19, links[len(links)-2].Target)
}

func TestPlan_Table(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{0, 0, "« »"},
		{0, 1, "« [1] »"},
		{0, 20, "« [1] 2 3 4 … 20 »"},
		{3, 20, "« 1 2 3 [4] 5 6 7 … 20 »"},
		{4, 20, "« 1 … 2 3 4 [5] 6 7 8 … 20 »"},
		{16, 20, "« 1 … 14 15 16 [17] 18 19 20 »"},
		{19, 20, "« 1 … 17 18 19 [20] »"},
		{0, 7, "« [1] 2 3 4 »"},
		{6, 7, "« 4 5 6 [7] »"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, labels(Plan(tt.current, tt.total, DefaultNeighbors)))
		})
	}
}

func TestPlan_PreviousNextBoundaries(t *testing.T) {
	for total := 1; total <= 25; total++ {
		for current := 0; current < total; current++ {
			links := Plan(current, total, DefaultNeighbors)
			prev, next := links[0], links[len(links)-1]

			require.Equal(t, KindPrevious, prev.Kind)
			require.Equal(t, KindNext, next.Kind)
			assert.Equal(t, current == 0, prev.Disabled, "prev current=%d total=%d", current, total)
			assert.Equal(t, current == total-1, next.Disabled, "next current=%d total=%d", current, total)

			if !prev.Disabled {
				assert.Equal(t, current-1, prev.Target)
			}
			if !next.Disabled {
				assert.Equal(t, current+1, next.Target)
			}
		}
	}
}

func TestPlan_Invariants(t *testing.T) {
	for total := 0; total <= 30; total++ {
		for current := 0; current < max(total, 1); current++ {
			links := Plan(current, total, DefaultNeighbors)

			var prevCount, nextCount, activeCount int
			seen := map[int]bool{}
			for _, l := range links {
				switch l.Kind {
				case KindPrevious:
					prevCount++
				case KindNext:
					nextCount++
				case KindPage:
					assert.False(t, seen[l.Target], "page %d emitted twice (current=%d total=%d)", l.Target, current, total)
					seen[l.Target] = true
					assert.GreaterOrEqual(t, l.Target, 0)
					assert.Less(t, l.Target, total)
					if l.Active {
						activeCount++
					}
				}
			}

			assert.Equal(t, 1, prevCount)
			assert.Equal(t, 1, nextCount)
			if total > 0 {
				assert.Equal(t, 1, activeCount)
			}
		}
	}
}

func TestPlan_ZeroTotalDisablesBoth(t *testing.T) {
	links := Plan(0, 0, DefaultNeighbors)
	require.Len(t, links, 2)
	assert.True(t, links[0].Disabled)
	assert.True(t, links[1].Disabled)
	assert.False(t, links[0].Selectable())
	assert.False(t, links[1].Selectable())
}
