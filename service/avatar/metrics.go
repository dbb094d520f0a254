package avatar

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "neatar",
		Name:      "identicon_requests_total",
	}, []string{"format"})
	generatedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "neatar",
		Name:      "identicons_generated_total",
	}, []string{"format"})
)
