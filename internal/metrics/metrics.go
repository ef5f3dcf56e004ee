package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	LabelStrategy = "strategy"
	LabelOutcome  = "outcome"
	LabelReason   = "reason"
)

// Rejection reasons.
const (
	ReasonInvalidChar = "invalid_char"
	ReasonShortRecord = "short_record"
)

// Metrics holds the tournament counters. Each instance has its own registry
// so a run's textfile only carries that run.
type Metrics struct {
	Registry *prometheus.Registry

	RoundsScored    *prometheus.CounterVec
	Points          *prometheus.CounterVec
	Outcomes        *prometheus.CounterVec
	RecordsRejected *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		RoundsScored: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rps_rounds_scored_total",
				Help: "Total rounds scored per decoding strategy",
			},
			[]string{LabelStrategy},
		),
		Points: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rps_points_total",
				Help: "Total points awarded per decoding strategy",
			},
			[]string{LabelStrategy},
		),
		Outcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rps_outcomes_total",
				Help: "Total round outcomes per decoding strategy",
			},
			[]string{LabelStrategy, LabelOutcome},
		),
		RecordsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rps_records_rejected_total",
				Help: "Total input records rejected",
			},
			[]string{LabelReason},
		),
	}
}

// ObserveRound counts one scored round.
func (m *Metrics) ObserveRound(strategy, outcome string, points int) {
	m.RoundsScored.WithLabelValues(strategy).Inc()
	m.Points.WithLabelValues(strategy).Add(float64(points))
	m.Outcomes.WithLabelValues(strategy, outcome).Inc()
}

func (m *Metrics) ObserveRejected(reason string) {
	m.RecordsRejected.WithLabelValues(reason).Inc()
}

// WriteTextfile writes all metrics in the node exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
