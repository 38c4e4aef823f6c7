// Package metrics defines the custom Prometheus metrics for the
// dealership site. It is the single source of truth for metric names,
// labels, and help strings; request-level metrics come from the
// echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dealership"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "rejected" (validation or duplicate email) or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account registration attempts, by result.",
	},
	[]string{"result"},
)

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

// ValidationFailuresTotal counts form submissions rejected by the
// validation pipeline.
// Label:
//   - form: the form name (e.g. "register", "add_inventory")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of form submissions rejected by validation, by form.",
	},
	[]string{"form"},
)

// GateRedirectsTotal counts requests turned away by the role gates.
// Label:
//   - gate: "login" or "employee"
var GateRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_redirects_total",
		Help:      "Total number of requests redirected to login by a role gate.",
	},
	[]string{"gate"},
)
