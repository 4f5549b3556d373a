package metrics

import (
	"github.com/kilianp07/energy-predict/core/factory"
	coremetrics "github.com/kilianp07/energy-predict/core/metrics"
	"github.com/kilianp07/energy-predict/infra/logger"
)

// init registers built-in metrics sinks.
func init() {
	_ = coremetrics.RegisterMetricsSink("nop", func(map[string]any) (coremetrics.MetricsSink, error) {
		return coremetrics.NopSink{}, nil
	})

	_ = coremetrics.RegisterMetricsSink("prometheus", func(conf map[string]any) (coremetrics.MetricsSink, error) {
		var c PromConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewPromSink(c)
	})

	_ = coremetrics.RegisterMetricsSink("influx", func(conf map[string]any) (coremetrics.MetricsSink, error) {
		var c InfluxConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewInfluxSinkWithFallback(c, sinkLogger("influx-sink")), nil
	})
}

// sinkLogger is replaced by SetLogger once the application logger is configured.
var sinkLogger = func(component string) logger.Logger { return logger.NopLogger{} }

// SetLogger makes sinks created afterwards log through newLogger.
func SetLogger(newLogger func(component string) logger.Logger) {
	if newLogger != nil {
		sinkLogger = newLogger
	}
}
