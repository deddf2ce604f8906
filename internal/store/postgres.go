package store

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/draft-cli/internal/db"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool db.Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS renders (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	document   TEXT NOT NULL,
	answered   INTEGER NOT NULL DEFAULT 0,
	visible    INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_renders_title ON renders(title);
CREATE INDEX IF NOT EXISTS idx_renders_created_at ON renders(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveRender(ctx context.Context, r Render) (*Render, error) {
	r.ID = uuid.New().String()
	r.CreatedAt = time.Now().UTC()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO renders (id, title, document, answered, visible, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.Title, r.Document, r.Answered, r.Visible, r.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert render")
	}
	return &r, nil
}

func (s *PostgresStore) GetRender(ctx context.Context, id string) (*Render, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, title, document, answered, visible, created_at FROM renders WHERE id = $1`,
		id,
	)

	var r Render
	err := row.Scan(&r.ID, &r.Title, &r.Document, &r.Answered, &r.Visible, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.Errorf("render not found: %s", id)
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: get render")
	}
	return &r, nil
}

func (s *PostgresStore) ListRenders(ctx context.Context, filter RenderFilter) ([]Render, error) {
	query := `SELECT id, title, document, answered, visible, created_at FROM renders WHERE 1=1`
	var args []any
	arg := func(v any) int {
		args = append(args, v)
		return len(args)
	}

	if filter.Title != "" {
		query += ` AND title = $` + strconv.Itoa(arg(filter.Title))
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT $` + strconv.Itoa(arg(limit))

	if filter.Offset > 0 {
		query += ` OFFSET $` + strconv.Itoa(arg(filter.Offset))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list renders")
	}
	defer rows.Close()

	var renders []Render
	for rows.Next() {
		var r Render
		if err := rows.Scan(&r.ID, &r.Title, &r.Document, &r.Answered, &r.Visible, &r.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan render")
		}
		renders = append(renders, r)
	}
	return renders, eris.Wrap(rows.Err(), "postgres: list renders iterate")
}

