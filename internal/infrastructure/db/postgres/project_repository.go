package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/appforge/appforge-api/internal/core/domain"
	"github.com/appforge/appforge-api/internal/core/ports"
)

// ProjectRepository implements ports.ProjectRepository on PostgreSQL.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	model := projectModelFromDomain(p)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	var model ProjectModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *ProjectRepository) List(ctx context.Context, filter ports.ListProjectsFilter) ([]*domain.Project, error) {
	query := r.db.WithContext(ctx).
		Model(&ProjectModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.Status != "" {
		query = query.Where("status = ?", statusToStorage(filter.Status))
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	var models []ProjectModel
	if err := query.Order("updated_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]*domain.Project, len(models))
	for i := range models {
		projects[i] = models[i].ToDomain()
	}
	return projects, nil
}

// Update saves the full row; concurrent writers resolve as last write wins.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	model := projectModelFromDomain(p)

	res := r.db.WithContext(ctx).Model(&ProjectModel{}).Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":        model.Name,
			"description": model.Description,
			"prompt":      model.Prompt,
			"code":        model.Code,
			"status":      model.Status,
			"updated_at":  model.UpdatedAt,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("update project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrProjectNotFound
	}

	return model.ToDomain(), nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ProjectModel{})
	if res.Error != nil {
		return fmt.Errorf("delete project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
