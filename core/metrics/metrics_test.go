package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordSink struct {
	events []PredictionEvent
	err    error
	closed bool
}

func (r *recordSink) RecordPrediction(ev PredictionEvent) error {
	r.events = append(r.events, ev)
	return r.err
}

func (r *recordSink) Close() error {
	r.closed = true
	return r.err
}

func TestNewPredictionEvent(t *testing.T) {
	a := NewPredictionEvent(5, 2.2, 0.26, 0.97)
	b := NewPredictionEvent(5, 2.2, 0.26, 0.97)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 5.0, a.Hour)
	assert.False(t, a.Time.IsZero())
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2, NopSink{})
	require.NoError(t, m.RecordPrediction(PredictionEvent{ID: "p1"}))
	require.NoError(t, CloseSink(m))
	assert.Len(t, s1.events, 1)
	assert.Len(t, s2.events, 1)
	assert.True(t, s1.closed)
	assert.True(t, s2.closed)
}

func TestMultiSink_Errors(t *testing.T) {
	boom := errors.New("boom")
	failing := &recordSink{err: boom}
	after := &recordSink{}
	m := NewMultiSink(failing, after)
	assert.ErrorIs(t, m.RecordPrediction(PredictionEvent{}), boom)
	assert.Empty(t, after.events)
	assert.ErrorIs(t, m.Close(), boom)
	assert.True(t, after.closed)
}

func TestCloseSink_NotCloser(t *testing.T) {
	assert.NoError(t, CloseSink(NopSink{}))
}
