package batch

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счётчики выполнения заданий
type Metrics struct {
	runs   prometheus.Counter
	steps  *prometheus.CounterVec
	errors *prometheus.CounterVec
}

// NewMetrics создаёт счётчики и регистрирует их в reg, если он задан
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "batch",
			Name:      "runs_total",
			Help:      "Число выполненных заданий.",
		}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "batch",
			Name:      "steps_total",
			Help:      "Число выполненных шагов по операциям.",
		}, []string{"op"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "batch",
			Name:      "step_errors_total",
			Help:      "Число неудачных шагов по операциям и видам ошибок.",
		}, []string{"op", "kind"}),
	}

	if reg != nil {
		reg.MustRegister(m.runs, m.steps, m.errors)
	}
	return m
}

// WriteTextfile сохраняет метрики в формате textfile-коллектора node_exporter
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
