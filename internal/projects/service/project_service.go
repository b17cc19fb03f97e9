package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/satwik073/Priscus-server/internal/generation"
	"github.com/satwik073/Priscus-server/internal/logging"
	"github.com/satwik073/Priscus-server/internal/projects/domain"
	"github.com/satwik073/Priscus-server/internal/projects/repository"
)

const defaultTitle = "Project"

// ProjectService sequences the store and the artifact generator.
type ProjectService struct {
	store repository.Store
	gen   *generation.Generator
}

// NewProjectService creates a new project service
func NewProjectService(store repository.Store, gen *generation.Generator) *ProjectService {
	return &ProjectService{
		store: store,
		gen:   gen,
	}
}

// SubmitResult is the outcome of a project submission.
type SubmitResult struct {
	ProjectID string
	Analysis  domain.ProjectAnalysis
	Source    generation.Source
}

// Submit saves a new project, analyzes it and attaches the analysis.
// A failed attach is returned as an error and not retried.
func (s *ProjectService) Submit(ctx context.Context, title, description string) (*SubmitResult, error) {
	logger := logging.NewLogger(ctx)

	p := &domain.Project{Title: title, Description: description}
	id, err := s.store.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	out := s.gen.AnalyzeProject(ctx, title, description)
	if err := s.store.Update(ctx, id, domain.ProjectUpdate{Analysis: &out.Value}); err != nil {
		logger.LogErrorf("submit_project", "project_id=%s saved without analysis error=%v", id, err)
		return nil, fmt.Errorf("attach analysis: %w", err)
	}

	logger.LogInfof("submit_project", "project_id=%s source=%s score=%v", id, out.Source, out.Value.Score)
	return &SubmitResult{ProjectID: id, Analysis: out.Value, Source: out.Source}, nil
}

// ArtifactRequest asks for a kanban board or workflow for a stored project.
// Analysis and Title are optional; missing values are taken from the stored project.
type ArtifactRequest struct {
	ProjectID   string
	Analysis    *domain.ProjectAnalysis
	Title       string
	Description string
}

type artifactInput struct {
	id          string
	analysis    *domain.ProjectAnalysis
	title       string
	description string
}

func (s *ProjectService) resolve(ctx context.Context, req ArtifactRequest) (*artifactInput, error) {
	if strings.TrimSpace(req.ProjectID) == "" {
		return nil, domain.ErrAnalysisRequired
	}
	id, err := domain.NormalizeID(req.ProjectID)
	if err != nil {
		return nil, err
	}

	in := &artifactInput{id: id, analysis: req.Analysis, title: req.Title, description: req.Description}
	if in.analysis != nil && in.title != "" {
		return in, nil
	}

	p, err := s.store.Get(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound) && in.analysis != nil:
		// The caller supplied everything generation needs.
	case err != nil:
		return nil, err
	default:
		if in.analysis == nil {
			in.analysis = p.Analysis
		}
		if in.title == "" {
			in.title = p.Title
		}
		if in.description == "" {
			in.description = p.Description
		}
	}

	if in.analysis == nil {
		return nil, domain.ErrAnalysisRequired
	}
	if in.title == "" {
		in.title = defaultTitle
	}
	return in, nil
}

// GenerateKanban builds a kanban board for a project and attaches it.
func (s *ProjectService) GenerateKanban(ctx context.Context, req ArtifactRequest) (generation.Outcome[domain.KanbanData], error) {
	in, err := s.resolve(ctx, req)
	if err != nil {
		return generation.Outcome[domain.KanbanData]{}, err
	}

	out := s.gen.GenerateKanban(ctx, in.analysis, in.title, in.description)
	if err := s.store.Update(ctx, in.id, domain.ProjectUpdate{Kanban: &out.Value}); err != nil {
		return out, fmt.Errorf("attach kanban: %w", err)
	}

	logging.NewLogger(ctx).LogInfof("generate_kanban", "project_id=%s source=%s tasks=%d", in.id, out.Source, len(out.Value.Tasks))
	return out, nil
}

// GenerateWorkflow builds the workflow diagrams for a project and attaches them.
func (s *ProjectService) GenerateWorkflow(ctx context.Context, req ArtifactRequest) (generation.Outcome[domain.WorkflowData], error) {
	in, err := s.resolve(ctx, req)
	if err != nil {
		return generation.Outcome[domain.WorkflowData]{}, err
	}

	out := s.gen.GenerateWorkflow(ctx, in.analysis, in.title, in.description)
	if err := s.store.Update(ctx, in.id, domain.ProjectUpdate{Workflow: &out.Value}); err != nil {
		return out, fmt.Errorf("attach workflow: %w", err)
	}

	logging.NewLogger(ctx).LogInfof("generate_workflow", "project_id=%s source=%s entities=%d",
		in.id, out.Source, len(out.Value.SchemaDiagram.Entities))
	return out, nil
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.List(ctx)
}

// Get returns a single project.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.store.Get(ctx, id)
}

// Delete removes a project. Deleting a missing project is not an error.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
