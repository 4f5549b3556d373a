// Package metrics defines the events emitted after each prediction and the
// MetricsSink interface that backends implement. Sinks are built from
// configuration through NewMetricsSink; the Prometheus and InfluxDB
// implementations live in infra/metrics and register themselves on import.
// Several configured sinks are combined into a MultiSink.
package metrics
