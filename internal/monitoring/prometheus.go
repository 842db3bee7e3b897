package monitoring

import (
	"github.com/osmike/cronpick/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus counts published expressions and exposes them as metrics.
type Prometheus struct {
	changes    *prometheus.CounterVec
	lastChange *prometheus.GaugeVec
}

// NewPrometheus creates the collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Prometheus{
		changes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cronpick",
				Name:      "expression_changes_total",
				Help:      "Total number of cron expressions published by pickers",
			},
			[]string{"dialect", "type"},
		),
		lastChange: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "cronpick",
				Name:      "last_change_timestamp_seconds",
				Help:      "Unix time of the last published cron expression",
			},
			[]string{"dialect"},
		),
	}

	for _, c := range []prometheus.Collector{m.changes, m.lastChange} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Prometheus) SaveChange(dto domain.ChangeDTO) {
	m.changes.WithLabelValues(string(dto.Dialect), string(dto.Type)).Inc()
	m.lastChange.WithLabelValues(string(dto.Dialect)).Set(float64(dto.At.Unix()))
}

// Multi fans a change out to several sinks in order.
type Multi []domain.Monitoring

func (m Multi) SaveChange(dto domain.ChangeDTO) {
	for _, mon := range m {
		if mon != nil {
			mon.SaveChange(dto)
		}
	}
}
