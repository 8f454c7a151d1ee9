// Package metrics defines the Prometheus metrics exported by the auth
// service. All metrics register with the default registry at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success", "invalid_credentials" or "locked"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - outcome: "success" or "duplicate"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts by outcome.",
	},
	[]string{"outcome"},
)
