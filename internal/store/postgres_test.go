package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_SaveRender(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO renders`).
		WithArgs(pgxmock.AnyArg(), "Consulting Agreement", "doc text", 2, 4, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	saved, err := s.SaveRender(context.Background(), Render{
		Title:    "Consulting Agreement",
		Document: "doc text",
		Answered: 2,
		Visible:  4,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetRender(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, title, document, answered, visible, created_at FROM renders WHERE id = \$1`).
		WithArgs("render-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "document", "answered", "visible", "created_at"}).
			AddRow("render-1", "T", "doc", 1, 2, now))

	got, err := s.GetRender(context.Background(), "render-1")
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "doc", got.Document)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetRender_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, title, document, answered, visible, created_at FROM renders WHERE id = \$1`).
		WithArgs("nonexistent").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetRender(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListRenders(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, title, document, answered, visible, created_at FROM renders WHERE 1=1 AND title = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("T", 10).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "document", "answered", "visible", "created_at"}).
			AddRow("r1", "T", "doc1", 1, 1, now).
			AddRow("r2", "T", "doc2", 2, 2, now))

	renders, err := s.ListRenders(context.Background(), RenderFilter{Title: "T", Limit: 10})
	require.NoError(t, err)
	require.Len(t, renders, 2)
	assert.Equal(t, "r1", renders[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
