package prediction

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseHour converts a command line argument into an hour value.
// Non-finite values are rejected.
func ParseHour(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: hour is required", ErrInvalidArgument)
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: hour %q is not a number", ErrInvalidArgument, raw)
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, fmt.Errorf("%w: hour %q is not finite", ErrInvalidArgument, raw)
	}
	return h, nil
}
