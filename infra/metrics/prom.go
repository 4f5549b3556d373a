package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	coremetrics "github.com/kilianp07/energy-predict/core/metrics"
)

// DefaultPushJob is the Pushgateway job name used when none is configured.
const DefaultPushJob = "energy_predict"

// PromConfig configures the Prometheus sink.
type PromConfig struct {
	// PushgatewayURL is the Pushgateway base URL. Metrics are only kept in
	// memory when empty.
	PushgatewayURL string `json:"pushgateway_url"`
	Job            string `json:"job"`
}

// PromSink records predictions in Prometheus metrics held by a private
// registry. The process is short lived, so the registry is pushed to a
// Pushgateway on Close instead of being scraped. A sink that recorded nothing
// never pushes, so the last values stored under the job are kept.
type PromSink struct {
	reg         *prometheus.Registry
	predictions prometheus.Counter
	usage       prometheus.Gauge
	hour        prometheus.Gauge
	pusher      *push.Pusher
	recorded    int
}

// NewPromSink registers prediction metrics on a new registry.
func NewPromSink(cfg PromConfig) (*PromSink, error) {
	reg := prometheus.NewRegistry()
	s := &PromSink{
		reg: reg,
		predictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "energy_predictions_total",
			Help: "Total number of energy usage predictions",
		}),
		usage: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "energy_predicted_usage",
			Help: "Last predicted energy usage",
		}),
		hour: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "energy_prediction_hour",
			Help: "Hour of day of the last prediction",
		}),
	}
	for _, c := range []prometheus.Collector{s.predictions, s.usage, s.hour} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register prometheus collector: %w", err)
		}
	}
	if cfg.PushgatewayURL != "" {
		job := cfg.Job
		if job == "" {
			job = DefaultPushJob
		}
		s.pusher = push.New(cfg.PushgatewayURL, job).Gatherer(reg)
	}
	return s, nil
}

// Gatherer exposes the sink registry.
func (s *PromSink) Gatherer() prometheus.Gatherer { return s.reg }

// RecordPrediction updates the counters and gauges.
func (s *PromSink) RecordPrediction(ev coremetrics.PredictionEvent) error {
	s.predictions.Inc()
	s.usage.Set(ev.Usage)
	s.hour.Set(ev.Hour)
	s.recorded++
	return nil
}

// Close pushes the collected metrics when a Pushgateway is configured and at
// least one prediction was recorded.
func (s *PromSink) Close() error {
	if s.pusher == nil || s.recorded == 0 {
		return nil
	}
	if err := s.pusher.Push(); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
