package utils

import (
	"fmt"
	"time"
)

// ParseDurationString converts config values like "15m" or "24h" into a
// duration, wrapping the error with the offending value.
func ParseDurationString(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid time duration '%s': %s", value, err.Error())
	}
	return d, nil
}
