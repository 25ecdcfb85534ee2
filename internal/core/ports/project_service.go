package ports

import (
	"context"

	"github.com/appforge/appforge-api/internal/core/domain"
)

// CreateProjectInput carries the data for a manually created project.
// Manual projects start in DRAFT with no generated code.
type CreateProjectInput struct {
	UserID      string
	Name        string
	Description string
}

// UpdateProjectInput carries a partial update; nil fields are left
// untouched.
type UpdateProjectInput struct {
	UserID        string
	ProjectID     string
	Name          *string
	Description   *string
	GeneratedCode *string
	Status        *domain.ProjectStatus
}

// ListProjectsInput carries the parameters for the listing endpoint.
type ListProjectsInput struct {
	UserID string
	Status string // optional, case-insensitive status label
	Search string // optional free-text term
}

// ProjectService defines use-case operations for projects. Every operation
// that names a project enforces the ownership invariant: a non-owner gets
// domain.ErrForbidden, an unknown id domain.ErrProjectNotFound.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, userID, projectID string) (*domain.Project, error)
	List(ctx context.Context, input ListProjectsInput) ([]*domain.Project, error)
	Update(ctx context.Context, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, userID, projectID string) error
}
