package retry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	retriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "inkwell_client",
			Name:      "retries_total",
			Help:      "Retry waits entered after a transient failure.",
		},
	)

	probesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "inkwell_client",
			Name:      "wake_probes_total",
			Help:      "Recovery probes issued between retry attempts.",
		},
	)
)
