package postgres

import (
	"strings"
	"time"

	"github.com/appforge/appforge-api/internal/core/domain"
)

// UserModel maps the users table.
type UserModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) ToDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func userModelFromDomain(u *domain.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ProjectModel maps the projects table. Status is stored lowercase; this
// layer owns the translation to and from the domain enum.
type ProjectModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	Prompt      string
	Code        string
	UserID      string `gorm:"type:uuid;index;not null"`
	Status      string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProjectModel) TableName() string { return "projects" }

func (m *ProjectModel) ToDomain() *domain.Project {
	return &domain.Project{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Prompt:        m.Prompt,
		GeneratedCode: m.Code,
		UserID:        m.UserID,
		Status:        statusFromStorage(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func projectModelFromDomain(p *domain.Project) *ProjectModel {
	return &ProjectModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Prompt:      p.Prompt,
		Code:        p.GeneratedCode,
		UserID:      p.UserID,
		Status:      statusToStorage(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func statusToStorage(s domain.ProjectStatus) string {
	return strings.ToLower(string(s))
}

// statusFromStorage reads unknown stored values as DRAFT rather than
// failing the whole row.
func statusFromStorage(s string) domain.ProjectStatus {
	status, err := domain.ParseStatus(s)
	if err != nil {
		return domain.StatusDraft
	}
	return status
}
