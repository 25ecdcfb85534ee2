package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses outside the auth and generate endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// authResponse is returned by register and login. The token is also set
// as an HTTP-only cookie; it is duplicated in the body for non-browser
// clients.
type authResponse struct {
	Success bool         `json:"success"`
	User    userResponse `json:"user"`
	Token   string       `json:"token"`
}

// authErrorResponse is the failure envelope for auth and generate
// endpoints.
type authErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type createProjectRequest struct {
	Name        string `json:"name"        validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// updateProjectRequest is a partial update; absent fields stay untouched.
type updateProjectRequest struct {
	Name          *string `json:"name"          validate:"omitempty,min=1,max=200"`
	Description   *string `json:"description"   validate:"omitempty,max=2000"`
	GeneratedCode *string `json:"generatedCode"`
	Status        *string `json:"status"`
}

// projectResponse is the JSON contract for a single project. Field names
// are camelCase to match the web client.
type projectResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Prompt        string    `json:"prompt"`
	GeneratedCode string    `json:"generatedCode"`
	UserID        string    `json:"userId"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type listProjectsResponse struct {
	Projects []projectResponse `json:"projects"`
}

// successResponse acknowledges operations that return no entity, such as
// project deletion and logout.
type successResponse struct {
	Success bool `json:"success"`
}

type generateRequest struct {
	Prompt    string `json:"prompt"    validate:"required,min=10,max=5000"`
	ProjectID string `json:"projectId" validate:"omitempty,uuid"`
}

type generateResponse struct {
	Success   bool   `json:"success"`
	Code      string `json:"code"`
	ProjectID string `json:"projectId"`
}
