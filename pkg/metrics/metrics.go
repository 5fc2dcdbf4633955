package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Admission metrics
	AdmissionsTotal    prometheus.Counter
	DischargesTotal    prometheus.Counter
	CapacityRejections prometheus.Counter

	// Billing metrics
	BillsComputed *prometheus.CounterVec
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		AdmissionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admissions_total",
			Help:      "Total number of inpatient admissions",
		}),
		DischargesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discharges_total",
			Help:      "Total number of inpatient discharges",
		}),
		CapacityRejections: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capacity_rejections_total",
			Help:      "Total number of admissions refused because a room was full",
		}),
		BillsComputed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bills_computed_total",
			Help:      "Total number of bills computed",
		}, []string{"kind"}),
	}
}
