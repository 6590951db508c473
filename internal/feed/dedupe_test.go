package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlinks/planner/internal/model"
)

func TestDedupeByID(t *testing.T) {
	posts := []*model.Post{
		{ID: "1", AuthorID: "amy", Title: "hello", CreatedAt: 100},
		{ID: "1", AuthorID: "amy", Title: "hello", CreatedAt: 100},
		{ID: "2", AuthorID: "amy", Title: "hello", CreatedAt: 200},
	}

	got := Dedupe(posts)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID) // newest first
	assert.Equal(t, "1", got[1].ID)
}

func TestDedupeWithoutIDUsesContentFingerprint(t *testing.T) {
	posts := []*model.Post{
		{AuthorID: "amy", Title: "  sunset  ", Images: []string{"a.jpg"}, CreatedAt: 10},
		{AuthorID: "amy", Title: "sunset", Images: []string{"a.jpg"}, CreatedAt: 20},
		{AuthorID: "amy", Title: "sunset", Images: []string{"b.jpg"}, CreatedAt: 30},
		{AuthorID: "ben", Title: "sunset", Images: []string{"a.jpg"}, CreatedAt: 40},
	}

	got := Dedupe(posts)
	require.Len(t, got, 3)
	// first occurrence wins; title whitespace is not significant
	assert.Equal(t, int64(40), got[0].CreatedAt)
	assert.Equal(t, int64(30), got[1].CreatedAt)
	assert.Equal(t, int64(10), got[2].CreatedAt)
}

func TestDedupeEmpty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}
