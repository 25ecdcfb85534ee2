package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/appforge/appforge-api/internal/core/domain"
	"github.com/appforge/appforge-api/internal/core/ports"
)

const maxProjectNameLen = 50

// RequestLimiter abstracts the per-user generation rate limiter (Redis).
type RequestLimiter interface {
	Allow(ctx context.Context, userID string) (bool, error)
}

type generationService struct {
	generator   ports.CodeGenerator
	projectRepo ports.ProjectRepository
	limiter     RequestLimiter
	log         zerolog.Logger
}

// NewGenerationService returns a GenerationService implementation.
// limiter may be nil, in which case no request limiting is applied.
func NewGenerationService(
	generator ports.CodeGenerator,
	projectRepo ports.ProjectRepository,
	limiter RequestLimiter,
	log zerolog.Logger,
) ports.GenerationService {
	return &generationService{
		generator:   generator,
		projectRepo: projectRepo,
		limiter:     limiter,
		log:         log,
	}
}

// Generate runs one prompt → code → project pass. The project id is taken
// from the input exactly once; the failure path reuses it to mark the
// project ERROR instead of re-reading the request.
func (s *generationService) Generate(ctx context.Context, in ports.GenerateInput) (*ports.GenerateResult, error) {
	// 1. Per-user request limit (fail open when the limiter store is down).
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, in.UserID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("rate limit check failed, allowing request")
		} else if !allowed {
			return nil, domain.ErrTooManyRequests
		}
	}

	// 2. Resolve the target project up front; ownership is checked before
	// any status write.
	var project *domain.Project
	if in.ProjectID != "" {
		existing, err := s.projectRepo.FindByID(ctx, in.ProjectID)
		if err != nil {
			return nil, err
		}
		if existing.UserID != in.UserID {
			return nil, domain.ErrForbidden
		}
		project = existing

		project.Status = domain.StatusGenerating
		project.UpdatedAt = time.Now().UTC()
		if _, err := s.projectRepo.Update(ctx, project); err != nil {
			s.log.Warn().Err(err).Str("project_id", project.ID).Msg("failed to mark project generating")
		}
	}

	// 3. Call the model.
	code, err := s.generator.Generate(ctx, in.Prompt)
	if err != nil {
		s.markError(ctx, project)
		return nil, err
	}
	if code == "" {
		s.markError(ctx, project)
		return nil, fmt.Errorf("%w: no code was generated, try a more specific prompt", domain.ErrGenerationFailed)
	}

	// 4. Persist the result.
	now := time.Now().UTC()
	if project != nil {
		project.GeneratedCode = code
		project.Status = domain.StatusCompleted
		project.UpdatedAt = now

		updated, err := s.projectRepo.Update(ctx, project)
		if err != nil {
			return nil, err
		}
		s.log.Info().Str("project_id", updated.ID).Msg("project regenerated")
		return &ports.GenerateResult{Code: code, ProjectID: updated.ID}, nil
	}

	created, err := s.projectRepo.Create(ctx, &domain.Project{
		Name:          projectName(in.Prompt),
		Description:   in.Prompt,
		Prompt:        in.Prompt,
		GeneratedCode: code,
		UserID:        in.UserID,
		Status:        domain.StatusCompleted,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", created.ID).Str("user_id", in.UserID).Msg("project generated")
	return &ports.GenerateResult{Code: code, ProjectID: created.ID}, nil
}

// markError is best-effort: a failed status write must not mask the
// generation error itself.
func (s *generationService) markError(ctx context.Context, project *domain.Project) {
	if project == nil {
		return
	}
	project.Status = domain.StatusError
	project.UpdatedAt = time.Now().UTC()
	if _, err := s.projectRepo.Update(ctx, project); err != nil {
		s.log.Warn().Err(err).Str("project_id", project.ID).Msg("failed to mark project error")
	}
}

// projectName derives a display name from the prompt, truncated to fit.
// Truncation counts runes, not bytes, so multi-byte prompts are never cut
// mid-character.
func projectName(prompt string) string {
	runes := []rune(prompt)
	if len(runes) > maxProjectNameLen {
		return string(runes[:maxProjectNameLen-3]) + "..."
	}
	return prompt
}
