package domain

import "errors"

var (
	ErrNotFound         = errors.New("project not found")
	ErrInvalidID        = errors.New("invalid project ID format")
	ErrAnalysisRequired = errors.New("analysis and projectId are required")
)
