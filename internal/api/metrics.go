package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "inkwell_client",
		Name:      "requests_total",
		Help:      "Dispatched requests by outcome kind.",
	},
	[]string{"outcome"},
)
