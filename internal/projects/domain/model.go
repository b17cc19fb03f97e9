package domain

import "time"

// Project is a submitted project pitch together with the artifacts generated for it.
// It is storage-agnostic and shared by the repository, service and HTTP layers.
type Project struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Analysis    *ProjectAnalysis `json:"analysis,omitempty"`
	Kanban      *KanbanData      `json:"kanban,omitempty"`
	Workflow    *WorkflowData    `json:"workflow,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ProjectUpdate carries a partial update. Nil fields are left untouched.
type ProjectUpdate struct {
	Title       *string
	Description *string
	Analysis    *ProjectAnalysis
	Kanban      *KanbanData
	Workflow    *WorkflowData
}

// Apply merges the supplied fields into p and refreshes UpdatedAt.
func (p *Project) Apply(u ProjectUpdate, now time.Time) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Analysis != nil {
		p.Analysis = u.Analysis
	}
	if u.Kanban != nil {
		p.Kanban = u.Kanban
	}
	if u.Workflow != nil {
		p.Workflow = u.Workflow
	}
	p.UpdatedAt = UpdatedAt(p.CreatedAt, now)
}

// UpdatedAt clamps now so that updatedAt never precedes createdAt.
func UpdatedAt(createdAt, now time.Time) time.Time {
	if now.Before(createdAt) {
		return createdAt
	}
	return now
}
