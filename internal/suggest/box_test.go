package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func focused(t *testing.T) Box {
	t.Helper()
	b, q := New().Focus()
	require.Nil(t, q)
	return b
}

func TestBox_QueryThenShow(t *testing.T) {
	b := focused(t)

	b, q := b.SetInput("ca")
	require.NotNil(t, q)
	assert.Equal(t, "ca", q.Input)
	assert.Equal(t, Querying, b.State())

	b = b.Resolve(q.Seq, []string{"cat", "car"})
	assert.Equal(t, Showing, b.State())
	assert.True(t, b.Open())
	assert.Equal(t, []string{"cat", "car"}, b.Suggestions())
}

func TestBox_EmptyResultCloses(t *testing.T) {
	b := focused(t)
	b, q := b.SetInput("zzz")
	b = b.Resolve(q.Seq, nil)
	assert.Equal(t, Closed, b.State())
	assert.False(t, b.Open())
}

func TestBox_UnfocusedInputDoesNotQuery(t *testing.T) {
	b, q := New().SetInput("cat")
	assert.Nil(t, q)
	assert.Equal(t, Closed, b.State())
}

func TestBox_SupersededResponseIgnored(t *testing.T) {
	b := focused(t)
	b, first := b.SetInput("c")
	b, second := b.SetInput("ca")
	require.Greater(t, second.Seq, first.Seq)

	// The response for "c" arrives after "ca" was issued.
	b = b.Resolve(first.Seq, []string{"cow", "cup"})
	assert.Equal(t, Querying, b.State())
	assert.Empty(t, b.Suggestions())

	b = b.Resolve(second.Seq, []string{"cat"})
	assert.Equal(t, []string{"cat"}, b.Suggestions())

	// A late response for "c" after "ca" resolved still changes nothing.
	b = b.Resolve(first.Seq, []string{"cow"})
	assert.Equal(t, []string{"cat"}, b.Suggestions())
}

func TestBox_BlurClosesAndLateResponseCannotReopen(t *testing.T) {
	b := focused(t)
	b, q := b.SetInput("ca")
	b = b.Blur()
	assert.Equal(t, Closed, b.State())

	b = b.Resolve(q.Seq, []string{"cat"})
	assert.Equal(t, Closed, b.State())
	assert.False(t, b.Open())
}

func TestBox_ClearingInputClosesAndLateResponseCannotReopen(t *testing.T) {
	b := focused(t)
	b, q := b.SetInput("ca")
	b, none := b.SetInput("")
	assert.Nil(t, none)
	assert.Equal(t, Closed, b.State())

	b = b.Resolve(q.Seq, []string{"cat"})
	assert.Equal(t, Closed, b.State())
}

func TestBox_RefocusRequeries(t *testing.T) {
	b := focused(t)
	b, first := b.SetInput("ca")
	b = b.Resolve(first.Seq, []string{"cat"})
	b = b.Blur()

	b, q := b.Focus()
	require.NotNil(t, q)
	assert.Greater(t, q.Seq, first.Seq)
	assert.Equal(t, Querying, b.State())
}

func TestBox_SameInputDoesNotRequery(t *testing.T) {
	b := focused(t)
	b, q := b.SetInput("ca")
	require.NotNil(t, q)
	_, again := b.SetInput("ca")
	assert.Nil(t, again)
}

func TestBox_FailCloses(t *testing.T) {
	b := focused(t)
	b, first := b.SetInput("c")
	b, second := b.SetInput("ca")

	b = b.Fail(first.Seq)
	assert.Equal(t, Querying, b.State())

	b = b.Fail(second.Seq)
	assert.Equal(t, Closed, b.State())
}

func TestBox_CursorAndAccept(t *testing.T) {
	b := focused(t)
	b, q := b.SetInput("ca")
	b = b.Resolve(q.Seq, []string{"cat", "car", "cab"})

	word, ok := b.Accept()
	assert.True(t, ok)
	assert.Equal(t, "ca", word)

	b = b.Next()
	b = b.Next()
	word, _ = b.Accept()
	assert.Equal(t, "car", word)

	b = b.Prev().Prev()
	assert.Equal(t, 2, b.Cursor())
	word, _ = b.Accept()
	assert.Equal(t, "cab", word)

	b = b.Next()
	assert.Equal(t, 0, b.Cursor())
}

func TestBox_AcceptEmpty(t *testing.T) {
	b, _ := focused(t).SetInput("   ")
	_, ok := b.Accept()
	assert.False(t, ok)
}

func TestSplit(t *testing.T) {
	typed, rest := Split("ca", "cattle")
	assert.Equal(t, "ca", typed)
	assert.Equal(t, "ttle", rest)

	typed, rest = Split("Ca", "cattle")
	assert.Equal(t, "ca", typed)
	assert.Equal(t, "ttle", rest)

	typed, rest = Split("dog", "cat")
	assert.Empty(t, typed)
	assert.Equal(t, "cat", rest)

	typed, rest = Split("catalog", "cat")
	assert.Empty(t, typed)
	assert.Equal(t, "cat", rest)
}
