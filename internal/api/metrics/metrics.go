// Package metrics defines and registers all custom Prometheus metrics for
// the AppForge API. It is the single source of truth for metric names,
// labels, and help strings; promauto registers everything with the default
// registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "appforge"

// GenerationsTotal counts generation requests by outcome.
// Label:
//   - outcome: "completed", "error", or "rate_limited"
var GenerationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generations_total",
		Help:      "Total number of code generation requests, by outcome.",
	},
	[]string{"outcome"},
)

// GenerationDuration measures the wall time of the full generation flow,
// including the upstream model call and post-processing.
var GenerationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Duration of the generation flow including the model call.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
	},
)

// AuthAttemptsTotal counts authentication attempts.
// Labels:
//   - action: "login" or "register"
//   - outcome: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login and registration attempts.",
	},
	[]string{"action", "outcome"},
)

// ProjectsCreatedTotal counts newly created projects, both via the CRUD
// endpoint and as a side effect of generation.
var ProjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created.",
	},
)
