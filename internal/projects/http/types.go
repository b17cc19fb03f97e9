package http

import (
	"github.com/satwik073/Priscus-server/internal/generation"
	"github.com/satwik073/Priscus-server/internal/projects/domain"
	"github.com/satwik073/Priscus-server/internal/projects/service"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

type analyzeReq struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"min=10"`
}

type artifactReq struct {
	ProjectID   string                  `json:"projectId"`
	Analysis    *domain.ProjectAnalysis `json:"analysis"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
}

func (r artifactReq) toService() service.ArtifactRequest {
	return service.ArtifactRequest{
		ProjectID:   r.ProjectID,
		Analysis:    r.Analysis,
		Title:       r.Title,
		Description: r.Description,
	}
}

// Issue is one field-level validation failure.
type Issue struct {
	Path    []string `json:"path"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
}

type analyzeResp struct {
	Success   bool                   `json:"success"`
	Data      domain.ProjectAnalysis `json:"data"`
	ProjectID string                 `json:"projectId"`
}

type dataResp[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

type errorResp struct {
	Success bool `json:"success"`
	Error   any  `json:"error"`
}

type messageResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// sampleSchema is served by the database schema endpoint.
func sampleSchema() domain.SchemaDiagram { return generation.DatabaseSchema() }
