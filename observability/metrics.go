// Package observability exposes runtime telemetry for the presence engine.
// Collectors are registered on the default prometheus registry and served
// by the internal debug server.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PresenceTransitions counts durable ONLINE/OFFLINE flips, labelled by
	// target state. Only 0<->1 session transitions increment it.
	PresenceTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatcore_presence_transitions_total",
		Help: "Durable presence state transitions, by target state",
	}, []string{"state"})

	// OpenSessions tracks the number of registered websocket sessions.
	OpenSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chatcore_open_sessions",
		Help: "Currently registered sessions across all users",
	})

	// Deliveries counts per-recipient fan-out outcomes.
	Deliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatcore_deliveries_total",
		Help: "Notification delivery attempts, by result",
	}, []string{"result"})

	// GraceRechecks counts delayed offline re-checks, by outcome.
	GraceRechecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatcore_grace_rechecks_total",
		Help: "Delayed offline re-checks fired, by outcome",
	}, []string{"outcome"})

	// ProcessRSSBytes and ProcessCPUPercent are fed by the heartbeat worker.
	ProcessRSSBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chatcore_process_rss_bytes",
		Help: "Resident memory of the process",
	})
	ProcessCPUPercent = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chatcore_process_cpu_percent",
		Help: "CPU usage of the process",
	})
)

const (
	ResultDelivered = "delivered"
	ResultFailed    = "failed"
	ResultDropped   = "dropped"

	OutcomeOffline     = "offline"
	OutcomeReconnected = "reconnected"
	OutcomeSuperseded  = "superseded"
)
