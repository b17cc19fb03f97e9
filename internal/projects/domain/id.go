package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a fresh project identifier in canonical form.
func NewID() string {
	return uuid.NewString()
}

// NormalizeID validates id and returns its canonical string form.
func NormalizeID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return u.String(), nil
}
