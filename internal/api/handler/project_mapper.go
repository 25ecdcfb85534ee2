package handler

import (
	"github.com/appforge/appforge-api/internal/core/domain"
	"github.com/appforge/appforge-api/internal/core/ports"
)

// --- Request → Service input ---

// toUpdateInput converts the partial-update payload. A present but invalid
// status label fails the whole request.
func toUpdateInput(userID, projectID string, req updateProjectRequest) (ports.UpdateProjectInput, error) {
	input := ports.UpdateProjectInput{
		UserID:        userID,
		ProjectID:     projectID,
		Name:          req.Name,
		Description:   req.Description,
		GeneratedCode: req.GeneratedCode,
	}
	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return ports.UpdateProjectInput{}, err
		}
		input.Status = &status
	}
	return input, nil
}

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Prompt:        p.Prompt,
		GeneratedCode: p.GeneratedCode,
		UserID:        p.UserID,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt.UTC(),
		UpdatedAt:     p.UpdatedAt.UTC(),
	}
}

func toListResponse(projects []*domain.Project) listProjectsResponse {
	items := make([]projectResponse, len(projects))
	for i, p := range projects {
		items[i] = toProjectResponse(p)
	}
	return listProjectsResponse{Projects: items}
}
