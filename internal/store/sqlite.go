package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS renders (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	document   TEXT NOT NULL,
	answered   INTEGER NOT NULL DEFAULT 0,
	visible    INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_renders_title ON renders(title);
CREATE INDEX IF NOT EXISTS idx_renders_created_at ON renders(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveRender(ctx context.Context, r Render) (*Render, error) {
	r.ID = uuid.New().String()
	r.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO renders (id, title, document, answered, visible, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Title, r.Document, r.Answered, r.Visible, r.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert render")
	}
	return &r, nil
}

func (s *SQLiteStore) GetRender(ctx context.Context, id string) (*Render, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, document, answered, visible, created_at FROM renders WHERE id = ?`,
		id,
	)

	var r Render
	err := row.Scan(&r.ID, &r.Title, &r.Document, &r.Answered, &r.Visible, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.Errorf("render not found: %s", id)
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: get render")
	}
	return &r, nil
}

func (s *SQLiteStore) ListRenders(ctx context.Context, filter RenderFilter) ([]Render, error) {
	query := `SELECT id, title, document, answered, visible, created_at FROM renders WHERE 1=1`
	var args []any

	if filter.Title != "" {
		query += ` AND title = ?`
		args = append(args, filter.Title)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list renders")
	}
	defer rows.Close()

	var renders []Render
	for rows.Next() {
		var r Render
		if err := rows.Scan(&r.ID, &r.Title, &r.Document, &r.Answered, &r.Visible, &r.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan render")
		}
		renders = append(renders, r)
	}
	return renders, eris.Wrap(rows.Err(), "sqlite: list renders iterate")
}
