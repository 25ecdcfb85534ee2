package domain

import "errors"

// Generation errors are sentinels so the HTTP layer can translate upstream
// model failures deterministically (429/500/503).

// ErrGeneratorNotConfigured means the model API key is missing or rejected.
var ErrGeneratorNotConfigured = errors.New("generation service is not configured")

// ErrGeneratorRateLimited means the upstream model refused the call with a
// rate-limit response.
var ErrGeneratorRateLimited = errors.New("generation service rate limit exceeded")

// ErrGenerationFailed wraps any failure to produce acceptable code,
// including an empty reply and hard post-processing validation failures.
var ErrGenerationFailed = errors.New("code generation failed")

// ErrTooManyRequests is returned by the per-user request limiter on the
// generation endpoint.
var ErrTooManyRequests = errors.New("too many generation requests")
