package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/satwik073/Priscus-server/internal/projects/domain"
)

// Store is durable CRUD over project documents. Every operation connects
// lazily when the underlying handle allows it, and every id argument is
// validated before any round-trip.
type Store interface {
	Connect(ctx context.Context) error
	Create(ctx context.Context, p *domain.Project) (string, error)
	Update(ctx context.Context, id string, u domain.ProjectUpdate) error
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close() error
}

// Clock supplies timestamps; stores default to UTC wall time.
type Clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }

// prepareNew stamps a project for insertion.
func prepareNew(p *domain.Project, now time.Time) {
	p.ID = domain.NewID()
	p.CreatedAt = now
	p.UpdatedAt = now
}

func encodeArtifact[T any](v *T) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode artifact: %w", err)
	}
	return string(b), nil
}

func decodeArtifact[T any](s string) (*T, error) {
	if s == "" || s == "null" {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return &v, nil
}

// artifactColumns renders the three artifacts of p as JSON text ("" when absent).
func artifactColumns(p *domain.Project) (analysis, kanban, workflow string, err error) {
	if analysis, err = encodeArtifact(p.Analysis); err != nil {
		return
	}
	if kanban, err = encodeArtifact(p.Kanban); err != nil {
		return
	}
	workflow, err = encodeArtifact(p.Workflow)
	return
}

func fillArtifacts(p *domain.Project, analysis, kanban, workflow string) error {
	var err error
	if p.Analysis, err = decodeArtifact[domain.ProjectAnalysis](analysis); err != nil {
		return err
	}
	if p.Kanban, err = decodeArtifact[domain.KanbanData](kanban); err != nil {
		return err
	}
	p.Workflow, err = decodeArtifact[domain.WorkflowData](workflow)
	return err
}
