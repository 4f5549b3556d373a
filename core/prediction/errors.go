package prediction

import "errors"

var (
	// ErrInvalidArgument is returned when the requested hour is missing or not a number.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInsufficientData indicates the training set cannot determine a line.
	ErrInsufficientData = errors.New("insufficient training data")
)
