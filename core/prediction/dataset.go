package prediction

// Point is one observation of energy usage at an hour of day.
type Point struct {
	Hour  float64
	Usage float64
}

// TrainingSet is an ordered list of observations.
type TrainingSet []Point

var defaultPoints = [...]Point{
	{Hour: 1, Usage: 1.2},
	{Hour: 2, Usage: 1.5},
	{Hour: 3, Usage: 1.7},
	{Hour: 4, Usage: 2.0},
	{Hour: 5, Usage: 2.3},
	{Hour: 6, Usage: 2.6},
	{Hour: 7, Usage: 2.9},
	{Hour: 8, Usage: 3.1},
	{Hour: 9, Usage: 3.3},
	{Hour: 10, Usage: 3.5},
}

// DefaultTrainingSet returns a copy of the built-in hourly usage dataset.
func DefaultTrainingSet() TrainingSet {
	ts := make(TrainingSet, len(defaultPoints))
	copy(ts, defaultPoints[:])
	return ts
}

// Hours returns the hour column.
func (ts TrainingSet) Hours() []float64 {
	out := make([]float64, len(ts))
	for i, p := range ts {
		out[i] = p.Hour
	}
	return out
}

// Usages returns the usage column.
func (ts TrainingSet) Usages() []float64 {
	out := make([]float64, len(ts))
	for i, p := range ts {
		out[i] = p.Usage
	}
	return out
}
