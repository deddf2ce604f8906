package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLiteSaveAndGetRender(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	saved, err := s.SaveRender(ctx, Render{
		Title:    "Consulting Agreement",
		Document: "## Basics\n\nName: Ada\n\n",
		Answered: 3,
		Visible:  5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := s.GetRender(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Consulting Agreement", got.Title)
	assert.Equal(t, saved.Document, got.Document)
	assert.Equal(t, 3, got.Answered)
	assert.Equal(t, 5, got.Visible)
}

func TestSQLiteGetRenderNotFound(t *testing.T) {
	s := newTestSQLite(t)

	_, err := s.GetRender(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteListRenders(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	for range 3 {
		_, err := s.SaveRender(ctx, Render{Title: "A", Document: "doc"})
		require.NoError(t, err)
	}
	_, err := s.SaveRender(ctx, Render{Title: "B", Document: "doc"})
	require.NoError(t, err)

	all, err := s.ListRenders(ctx, RenderFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	onlyA, err := s.ListRenders(ctx, RenderFilter{Title: "A"})
	require.NoError(t, err)
	assert.Len(t, onlyA, 3)

	limited, err := s.ListRenders(ctx, RenderFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSQLiteListRendersEmpty(t *testing.T) {
	s := newTestSQLite(t)

	renders, err := s.ListRenders(context.Background(), RenderFilter{})
	require.NoError(t, err)
	assert.Empty(t, renders)
}
