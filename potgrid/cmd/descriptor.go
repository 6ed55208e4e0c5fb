package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// parseTypeList parses a comma-separated list of integer type codes.
func parseTypeList(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("at least one potential type is required")
	}

	parts := strings.Split(s, ",")
	codes := make([]int, len(parts))

	for i, part := range parts {
		code, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad type code %q: %w", part, err)
		}

		codes[i] = code
	}

	return codes, nil
}

// parseFloatList parses a comma-separated list of parameters. An empty
// string is an empty buffer.
func parseFloatList(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	values := make([]float64, len(parts))

	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad parameter %q: %w", part, err)
		}

		values[i] = v
	}

	return values, nil
}

// linspace builds n evenly spaced coordinates over [lo, hi].
func linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("axis needs at least 1 point, got %d", n)
	}

	axis := make([]float64, n)

	if n == 1 {
		axis[0] = lo
		return axis, nil
	}

	step := (hi - lo) / float64(n-1)
	for i := range axis {
		axis[i] = lo + float64(i)*step
	}
	axis[n-1] = hi

	return axis, nil
}
