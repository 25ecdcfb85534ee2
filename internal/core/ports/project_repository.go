package ports

import (
	"context"

	"github.com/appforge/appforge-api/internal/core/domain"
)

// ListProjectsFilter carries the query parameters for listing projects.
// UserID is always enforced by the service layer (ownership).
type ListProjectsFilter struct {
	UserID string
	Status domain.ProjectStatus // optional: filter by status
	Search string               // optional: case-insensitive substring on name or description
}

// ProjectRepository defines persistence operations for projects.
// Implementations translate storage errors to domain sentinels and own the
// status-enum mapping between application and storage representations.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns the user's projects matching filter, most recently
	// updated first.
	List(ctx context.Context, filter ListProjectsFilter) ([]*domain.Project, error)
	// Update persists the full row; the last write to complete wins.
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
