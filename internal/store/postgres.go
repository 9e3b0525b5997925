package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// maxConns caps concurrent live connections; requests beyond the cap queue
// inside the pool until one frees.
const maxConns = 5

const connectTimeout = 10 * time.Second

// Postgres is the pgx-backed Store. It is safe for concurrent use.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect opens a bounded connection pool against databaseURL and verifies
// the database is reachable.
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	cfg.MaxConns = maxConns

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Close releases the underlying pool.
func (p *Postgres) Close() { p.pool.Close() }

func (p *Postgres) Create(ctx context.Context, title string) (Todo, error) {
	var t Todo
	err := p.pool.QueryRow(ctx,
		`insert into todos (title) values ($1) returning id, title, completed`,
		title).Scan(&t.ID, &t.Title, &t.Completed)
	return t, err
}

func (p *Postgres) List(ctx context.Context) ([]Todo, error) {
	rows, err := p.pool.Query(ctx, `select id, title, completed from todos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Todo{}
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (p *Postgres) Get(ctx context.Context, id int) (Todo, error) {
	var t Todo
	err := p.pool.QueryRow(ctx,
		`select id, title, completed from todos where id = $1`,
		id).Scan(&t.ID, &t.Title, &t.Completed)
	if errors.Is(err, pgx.ErrNoRows) {
		return Todo{}, ErrNotFound
	}
	return t, err
}

// Update replaces the title and forces completed back to false.
func (p *Postgres) Update(ctx context.Context, id int, title string) (Todo, error) {
	var t Todo
	err := p.pool.QueryRow(ctx,
		`update todos set title = $1, completed = false where id = $2 returning id, title, completed`,
		title, id).Scan(&t.ID, &t.Title, &t.Completed)
	if errors.Is(err, pgx.ErrNoRows) {
		return Todo{}, ErrNotFound
	}
	return t, err
}

func (p *Postgres) Delete(ctx context.Context, id int) error {
	tag, err := p.pool.Exec(ctx, `delete from todos where id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
