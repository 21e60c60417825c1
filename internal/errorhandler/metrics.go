package errorhandler

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	responses *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		responses: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "http_error_responses_total",
			Help: "The total number of error responses by error code and HTTP status",
		}, []string{"code", "status"}),
	}
}

func (m *metrics) observe(p Problem) {
	m.responses.WithLabelValues(string(p.Code), strconv.Itoa(p.Status)).Inc()
}
