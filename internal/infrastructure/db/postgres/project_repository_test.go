package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/appforge/appforge-api/internal/core/domain"
	"github.com/appforge/appforge-api/internal/core/ports"
)

const (
	projectID = "7b1c9f3a-0000-0000-0000-000000000001"
	ownerID   = "3f2a4c9e-0000-0000-0000-000000000001"
)

func TestProjectRepository_Create_StoresLowercaseStatus(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	repo := NewProjectRepository(db)

	mock.ExpectExec(`INSERT INTO "projects"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := repo.Create(context.Background(), &domain.Project{
		Name:   "Todo app",
		UserID: ownerID,
		Status: domain.StatusCompleted,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusCompleted, created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_FindByID_NotFound(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	repo := NewProjectRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.FindByID(context.Background(), projectID)

	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectRepository_FindByID_TranslatesStatus(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	repo := NewProjectRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "user_id", "status"}).
		AddRow(projectID, "Todo app", ownerID, "generating")

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE id = \$1 ORDER BY .* LIMIT .*`).
		WithArgs(projectID, 1).
		WillReturnRows(rows)

	project, err := repo.FindByID(context.Background(), projectID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusGenerating, project.Status)
}

func TestProjectRepository_List_AppliesFilters(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	repo := NewProjectRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "user_id", "status"}).
		AddRow(projectID, "Dark dashboard", ownerID, "draft")

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE user_id = \$1 AND status = \$2 AND \(LOWER\(name\) LIKE \$3 OR LOWER\(description\) LIKE \$4\) ORDER BY updated_at DESC`).
		WithArgs(ownerID, "draft", "%dark%", "%dark%").
		WillReturnRows(rows)

	projects, err := repo.List(context.Background(), ports.ListProjectsFilter{
		UserID: ownerID,
		Status: domain.StatusDraft,
		Search: "Dark",
	})

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, domain.StatusDraft, projects[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Update_NotFound(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	repo := NewProjectRepository(db)

	mock.ExpectExec(`UPDATE "projects"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), &domain.Project{
		ID:        projectID,
		Status:    domain.StatusCompleted,
		UpdatedAt: time.Now().UTC(),
	})

	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectRepository_Delete(t *testing.T) {
	t.Run("deletes existing row", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewProjectRepository(db)

		mock.ExpectExec(`DELETE FROM "projects"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), projectID))
	})

	t.Run("missing row maps to ErrProjectNotFound", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewProjectRepository(db)

		mock.ExpectExec(`DELETE FROM "projects"`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), projectID), domain.ErrProjectNotFound)
	})
}
