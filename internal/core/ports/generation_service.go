package ports

import "context"

// GenerateInput is the DTO passed from the transport layer to the
// generation service. ProjectID is captured once at bind time; the failure
// path reuses it rather than re-reading the request body.
type GenerateInput struct {
	UserID    string
	Prompt    string
	ProjectID string // optional: regenerate into an existing project
}

// GenerateResult is returned on successful generation.
type GenerateResult struct {
	Code      string
	ProjectID string
}

// GenerationService runs the prompt → code → project flow.
type GenerationService interface {
	Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error)
}
