// Package metrics defines and registers all custom Prometheus metrics
// for the user API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at package init; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userapi"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts accounts created through registration or
// admin creation.
// Label:
//   - type: privilege type of the new account ("user" or "admin")
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of accounts created, by privilege type.",
	},
	[]string{"type"},
)

// UsersDeletedTotal counts accounts removed from the store.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of accounts deleted.",
	},
)

// GuardRejectionsTotal counts requests rejected by the session guard.
// Label:
//   - reason: "invalid_token", "account_not_found" or "stale_token"
var GuardRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_rejections_total",
		Help:      "Total number of requests rejected by the session guard, by reason.",
	},
	[]string{"reason"},
)
