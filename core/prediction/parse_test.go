package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHour(t *testing.T) {
	valid := map[string]float64{
		"1":    1,
		"5.5":  5.5,
		" 7 ":  7,
		"-1":   -1,
		"1e1":  10,
		"0":    0,
		"23.5": 23.5,
	}
	for in, want := range valid {
		got, err := ParseHour(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseHour_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "5h", "NaN", "inf", "-Inf", "1e400"} {
		_, err := ParseHour(in)
		assert.ErrorIs(t, err, ErrInvalidArgument, in)
	}
}
