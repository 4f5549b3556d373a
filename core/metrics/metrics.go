package metrics

import (
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
)

// PredictionEvent describes one evaluated prediction.
type PredictionEvent struct {
	ID        string
	Hour      float64
	Usage     float64
	Slope     float64
	Intercept float64
	Time      time.Time
}

// NewPredictionEvent stamps an event with a fresh ID and the current time.
func NewPredictionEvent(hour, usage, slope, intercept float64) PredictionEvent {
	return PredictionEvent{
		ID:        uuid.NewString(),
		Hour:      hour,
		Usage:     usage,
		Slope:     slope,
		Intercept: intercept,
		Time:      time.Now(),
	}
}

// MetricsSink records prediction events for observability purposes.
type MetricsSink interface {
	RecordPrediction(ev PredictionEvent) error
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) RecordPrediction(PredictionEvent) error { return nil }

// CloseSink flushes the sink when it buffers or pushes on close.
func CloseSink(s MetricsSink) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// MultiSink fans events out to several sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPrediction forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordPrediction(ev PredictionEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordPrediction(ev); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink and joins their errors.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.Sinks {
		if err := CloseSink(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
