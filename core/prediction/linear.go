package prediction

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// LinearModel is a straight line fitted by ordinary least squares.
type LinearModel struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	// R2 is the coefficient of determination on the training data.
	R2 float64 `json:"r2"`
}

// Fit computes the least squares line through the training set.
func Fit(ts TrainingSet) (LinearModel, error) {
	if len(ts) < 2 {
		return LinearModel{}, fmt.Errorf("%w: need at least 2 points, got %d", ErrInsufficientData, len(ts))
	}
	xs, ys := ts.Hours(), ts.Usages()
	if stat.Variance(xs, nil) == 0 {
		return LinearModel{}, fmt.Errorf("%w: all hours are equal", ErrInsufficientData)
	}
	// gonum returns the intercept first: y = alpha + beta*x.
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return LinearModel{
		Slope:     beta,
		Intercept: alpha,
		R2:        stat.RSquared(xs, ys, nil, alpha, beta),
	}, nil
}

// NewDefaultModel fits the built-in training set.
func NewDefaultModel() (LinearModel, error) {
	return Fit(DefaultTrainingSet())
}

// Predict evaluates the line at hour.
func (m LinearModel) Predict(hour float64) float64 {
	return m.Slope*hour + m.Intercept
}
