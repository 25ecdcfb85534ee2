package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/appforge/appforge-api/internal/core/domain"
	"github.com/appforge/appforge-api/internal/core/ports"
)

// ProjectService implements project CRUD with ownership enforcement.
type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

// Create stores a manually created project in DRAFT. The prompt defaults to
// the description so a later generation call has something to start from.
func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	now := time.Now().UTC()
	project := &domain.Project{
		Name:        input.Name,
		Description: input.Description,
		Prompt:      input.Description,
		UserID:      input.UserID,
		Status:      domain.StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("user_id", input.UserID).Msg("project created")
	return created, nil
}

// Get returns the project when the caller owns it. An unknown id yields
// ErrProjectNotFound; an existing project owned by someone else yields
// ErrForbidden, never a 404 disguise.
func (s *ProjectService) Get(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	return s.ownedProject(ctx, userID, projectID)
}

// List returns the caller's projects, newest update first, optionally
// narrowed by status label and a free-text search term.
func (s *ProjectService) List(ctx context.Context, input ports.ListProjectsInput) ([]*domain.Project, error) {
	filter := ports.ListProjectsFilter{UserID: input.UserID, Search: input.Search}

	if input.Status != "" {
		status, err := domain.ParseStatus(input.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}

	return s.repo.List(ctx, filter)
}

// Update applies a partial update to an owned project. Unset fields are
// left untouched; concurrent updates resolve as last-write-wins.
func (s *ProjectService) Update(ctx context.Context, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.ownedProject(ctx, input.UserID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.GeneratedCode != nil {
		project.GeneratedCode = *input.GeneratedCode
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	project.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, project)
}

// Delete removes an owned project. Deleting an already-deleted id returns
// ErrProjectNotFound on every call.
func (s *ProjectService) Delete(ctx context.Context, userID, projectID string) error {
	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, projectID); err != nil {
		return err
	}

	s.logger.Info().Str("project_id", projectID).Str("user_id", userID).Msg("project deleted")
	return nil
}

func (s *ProjectService) ownedProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return project, nil
}
