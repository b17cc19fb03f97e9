package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/satwik073/Priscus-server/internal/projects/domain"
	"github.com/satwik073/Priscus-server/internal/storage"
	"github.com/satwik073/Priscus-server/internal/storage/postgres"
)

const projectsSchema = `
create table if not exists projects (
  id          uuid primary key,
  title       text not null,
  description text not null,
  analysis    jsonb,
  kanban      jsonb,
  workflow    jsonb,
  created_at  timestamptz not null,
  updated_at  timestamptz not null
);
create index if not exists projects_created_at_idx on projects (created_at desc);
`

// PostgresStore keeps projects in a single table with jsonb artifact columns.
type PostgresStore struct {
	conn *storage.Lazy[*pgxpool.Pool]
	now  Clock
}

func NewPostgresStore(opt postgres.Options, lazy storage.Options) *PostgresStore {
	dial := postgres.Dial(opt)
	return newPostgresStore(storage.NewLazy(func(ctx context.Context) (*pgxpool.Pool, error) {
		pool, err := dial(ctx)
		if err != nil {
			return nil, err
		}
		if _, err := pool.Exec(ctx, projectsSchema); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		return pool, nil
	}, postgres.Close, lazy))
}

func newPostgresStore(conn *storage.Lazy[*pgxpool.Pool]) *PostgresStore {
	return &PostgresStore{conn: conn, now: utcNow}
}

func (s *PostgresStore) Connect(ctx context.Context) error {
	_, err := s.conn.Connect(ctx)
	return err
}

func (s *PostgresStore) Create(ctx context.Context, p *domain.Project) (string, error) {
	db, err := s.conn.Get(ctx)
	if err != nil {
		return "", err
	}

	prepareNew(p, s.now())
	analysis, kanban, workflow, err := artifactColumns(p)
	if err != nil {
		return "", err
	}

	const q = `
insert into projects (id, title, description, analysis, kanban, workflow, created_at, updated_at)
values ($1::uuid, $2, $3, nullif($4,'')::jsonb, nullif($5,'')::jsonb, nullif($6,'')::jsonb, $7, $8);
`
	if _, err := db.Exec(ctx, q, p.ID, p.Title, p.Description, analysis, kanban, workflow, p.CreatedAt, p.UpdatedAt); err != nil {
		return "", fmt.Errorf("insert project: %w", err)
	}
	return p.ID, nil
}

func (s *PostgresStore) Update(ctx context.Context, id string, u domain.ProjectUpdate) error {
	id, err := domain.NormalizeID(id)
	if err != nil {
		return err
	}
	db, err := s.conn.Get(ctx)
	if err != nil {
		return err
	}

	args := []any{id, s.now()}
	sets := []string{"updated_at = greatest($2, created_at)"}
	add := func(col string, v any, cast string) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d%s", col, len(args), cast))
	}

	if u.Title != nil {
		add("title", *u.Title, "")
	}
	if u.Description != nil {
		add("description", *u.Description, "")
	}
	if u.Analysis != nil {
		v, err := encodeArtifact(u.Analysis)
		if err != nil {
			return err
		}
		add("analysis", v, "::jsonb")
	}
	if u.Kanban != nil {
		v, err := encodeArtifact(u.Kanban)
		if err != nil {
			return err
		}
		add("kanban", v, "::jsonb")
	}
	if u.Workflow != nil {
		v, err := encodeArtifact(u.Workflow)
		if err != nil {
			return err
		}
		add("workflow", v, "::jsonb")
	}

	q := "update projects set " + strings.Join(sets, ", ") + " where id = $1::uuid;"
	if _, err := db.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

const selectProject = `
select id::text, title, description,
       coalesce(analysis::text, ''), coalesce(kanban::text, ''), coalesce(workflow::text, ''),
       created_at, updated_at
from projects
`

func (s *PostgresStore) Get(ctx context.Context, id string) (*domain.Project, error) {
	id, err := domain.NormalizeID(id)
	if err != nil {
		return nil, err
	}
	db, err := s.conn.Get(ctx)
	if err != nil {
		return nil, err
	}

	p, err := scanProject(db.QueryRow(ctx, selectProject+"where id = $1::uuid;", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]domain.Project, error) {
	db, err := s.conn.Get(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, selectProject+"order by created_at desc;")
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	id, err := domain.NormalizeID(id)
	if err != nil {
		return err
	}
	db, err := s.conn.Get(ctx)
	if err != nil {
		return err
	}

	if _, err := db.Exec(ctx, "delete from projects where id = $1::uuid;", id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	db, err := s.conn.Get(ctx)
	if err != nil {
		return err
	}
	return db.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	return s.conn.Close()
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	var analysis, kanban, workflow string
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &analysis, &kanban, &workflow, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if err := fillArtifacts(&p, analysis, kanban, workflow); err != nil {
		return nil, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}
