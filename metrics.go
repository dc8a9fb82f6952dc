package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var sessionInvalidationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "inkwell_client",
		Name:      "session_invalidations_total",
		Help:      "Session teardowns from logout or 401 responses.",
	},
)
