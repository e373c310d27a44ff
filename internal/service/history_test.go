package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/lexi/internal/log"
)

func TestHistoryService_Find(t *testing.T) {
	hist := &memoryHistory{}
	svc := NewHistoryService(hist, log.NullLogger())
	for _, w := range []string{"catalog", "dog", "cat", "concatenate"} {
		svc.Record(w)
	}

	assert.Equal(t, []string{"concatenate", "cat", "dog", "catalog"}, svc.Find(""))

	matches := svc.Find("cat")
	require.NotEmpty(t, matches)
	assert.Equal(t, "cat", matches[0], "exact match ranks first")
	assert.ElementsMatch(t, []string{"cat", "catalog", "concatenate"}, matches)
	assert.NotContains(t, matches, "dog")
}

func TestHistoryService_FindIsCaseInsensitive(t *testing.T) {
	svc := NewHistoryService(&memoryHistory{}, log.NullLogger())
	svc.Record("Aardvark")
	assert.Equal(t, []string{"Aardvark"}, svc.Find("aard"))
}

func TestHistoryService_Disabled(t *testing.T) {
	var nilSvc *HistoryService
	nilSvc.Record("cat")
	assert.Nil(t, nilSvc.Recent(10))
	assert.NoError(t, nilSvc.Clear())

	svc := NewHistoryService(nil, log.NullLogger())
	svc.Record("cat")
	assert.Nil(t, svc.Find("cat"))
	assert.NoError(t, svc.Close())
}

func TestHistoryService_Clear(t *testing.T) {
	svc := NewHistoryService(&memoryHistory{}, log.NullLogger())
	svc.Record("cat")
	require.NoError(t, svc.Clear())
	assert.Empty(t, svc.Recent(0))
}
