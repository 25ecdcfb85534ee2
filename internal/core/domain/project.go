package domain

import (
	"errors"
	"strings"
	"time"
)

// ProjectStatus is the lifecycle label of a project. It is a plain state
// label, not a coordinated state machine: concurrent generation requests for
// the same project race on the row with last-write-wins semantics.
type ProjectStatus string

const (
	StatusDraft      ProjectStatus = "DRAFT"
	StatusGenerating ProjectStatus = "GENERATING"
	StatusCompleted  ProjectStatus = "COMPLETED"
	StatusError      ProjectStatus = "ERROR"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidStatus = errors.New("invalid project status")

// ParseStatus resolves a case-insensitive status label.
func ParseStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusDraft:
		return StatusDraft, nil
	case StatusGenerating:
		return StatusGenerating, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusError:
		return StatusError, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Project is the core aggregate: a user prompt plus the source code the
// model generated for it. Every project has exactly one owner; only the
// owner may read, modify, or delete it.
type Project struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Prompt        string        `json:"prompt"`
	GeneratedCode string        `json:"generatedCode"`
	UserID        string        `json:"userId"`
	Status        ProjectStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
