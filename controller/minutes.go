package controller

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/meghashyamc/gridtimer/timer"
)

const DefaultMinutes = 25.0

// NormalizeMinutes turns raw entry text into a countdown length. Empty input
// becomes defaultMinutes; the returned text is what the entry should show.
func NormalizeMinutes(raw string, defaultMinutes float64) (string, time.Duration, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		text = strconv.FormatFloat(defaultMinutes, 'f', -1, 64)
	}

	minutes, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return raw, 0, fmt.Errorf("parse minutes %q: %w", raw, timer.ErrInvalidDuration)
	}
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) || minutes <= 0 {
		return raw, 0, fmt.Errorf("minutes %q: %w", raw, timer.ErrInvalidDuration)
	}

	d := time.Duration(minutes * float64(time.Minute))
	if d <= 0 {
		return raw, 0, fmt.Errorf("minutes %q too small: %w", raw, timer.ErrInvalidDuration)
	}

	return text, d, nil
}
