package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/appforge/appforge-api/internal/core/domain"
	"github.com/appforge/appforge-api/internal/core/ports"
)

type stubProjectRepo struct {
	createFn   func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	findByIDFn func(ctx context.Context, id string) (*domain.Project, error)
	listFn     func(ctx context.Context, filter ports.ListProjectsFilter) ([]*domain.Project, error)
	updateFn   func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (s *stubProjectRepo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	return s.createFn(ctx, p)
}

func (s *stubProjectRepo) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubProjectRepo) List(ctx context.Context, filter ports.ListProjectsFilter) ([]*domain.Project, error) {
	return s.listFn(ctx, filter)
}

func (s *stubProjectRepo) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	return s.updateFn(ctx, p)
}

func (s *stubProjectRepo) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestProjectService_Create_StartsAsDraft(t *testing.T) {
	repo := &stubProjectRepo{
		createFn: func(ctx context.Context, p *domain.Project) (*domain.Project, error) {
			p.ID = "project_1"
			return p, nil
		},
	}
	svc := NewProjectService(repo, zerolog.Nop())

	project, err := svc.Create(context.Background(), ports.CreateProjectInput{
		UserID:      "user_1",
		Name:        "Todo app",
		Description: "a simple todo list",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if project.Status != domain.StatusDraft {
		t.Fatalf("expected DRAFT, got %s", project.Status)
	}
	if project.Prompt != "a simple todo list" {
		t.Fatalf("prompt should default to description, got %q", project.Prompt)
	}
	if project.GeneratedCode != "" {
		t.Fatalf("new project should have no code")
	}
}

func TestProjectService_Get_Ownership(t *testing.T) {
	repo := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Project, error) {
			if id == "missing" {
				return nil, domain.ErrProjectNotFound
			}
			return &domain.Project{ID: id, UserID: "user_1"}, nil
		},
	}
	svc := NewProjectService(repo, zerolog.Nop())

	if _, err := svc.Get(context.Background(), "user_1", "project_1"); err != nil {
		t.Fatalf("owner should read own project: %v", err)
	}

	// Existing project, wrong owner: forbidden, not a 404 disguise.
	if _, err := svc.Get(context.Background(), "user_2", "project_1"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if _, err := svc.Get(context.Background(), "user_1", "missing"); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_List_ParsesStatusLabel(t *testing.T) {
	var gotFilter ports.ListProjectsFilter
	repo := &stubProjectRepo{
		listFn: func(ctx context.Context, filter ports.ListProjectsFilter) ([]*domain.Project, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	svc := NewProjectService(repo, zerolog.Nop())

	// Lowercase label is accepted.
	if _, err := svc.List(context.Background(), ports.ListProjectsInput{UserID: "user_1", Status: "completed", Search: "todo"}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotFilter.Status != domain.StatusCompleted || gotFilter.Search != "todo" {
		t.Fatalf("unexpected filter: %+v", gotFilter)
	}

	// Unknown label is rejected before the repository is consulted.
	if _, err := svc.List(context.Background(), ports.ListProjectsInput{UserID: "user_1", Status: "shipped"}); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestProjectService_Update_PartialAndOwnership(t *testing.T) {
	repo := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return &domain.Project{
				ID:          id,
				UserID:      "user_1",
				Name:        "Old name",
				Description: "old description",
				Status:      domain.StatusDraft,
			}, nil
		},
		updateFn: func(ctx context.Context, p *domain.Project) (*domain.Project, error) {
			return p, nil
		},
	}
	svc := NewProjectService(repo, zerolog.Nop())

	name := "New name"
	updated, err := svc.Update(context.Background(), ports.UpdateProjectInput{
		UserID:    "user_1",
		ProjectID: "project_1",
		Name:      &name,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "New name" {
		t.Fatalf("name not updated: %s", updated.Name)
	}
	if updated.Description != "old description" {
		t.Fatalf("unset field was clobbered: %s", updated.Description)
	}

	if _, err := svc.Update(context.Background(), ports.UpdateProjectInput{
		UserID:    "user_2",
		ProjectID: "project_1",
		Name:      &name,
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProjectService_Delete_SecondCallNotFound(t *testing.T) {
	deleted := false
	repo := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Project, error) {
			if deleted {
				return nil, domain.ErrProjectNotFound
			}
			return &domain.Project{ID: id, UserID: "user_1"}, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	svc := NewProjectService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "user_1", "project_1"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(context.Background(), "user_1", "project_1"); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound on repeat delete, got %v", err)
	}
}
