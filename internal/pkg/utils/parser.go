package utils

import (
	"continuity-engine/internal/pkg/exceptions"
	"fmt"
	"strconv"
	"time"
)

// ParseValidityWindowHours parses the validity_window_hours query value.
// An empty value falls back to defaultHours; anything non-positive or
// non-numeric is rejected.
func ParseValidityWindowHours(raw string, defaultHours int) (time.Duration, error) {
	if raw == "" {
		return time.Duration(defaultHours) * time.Hour, nil
	}
	hours, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrInvalidValidityWindow(err)
	}
	if hours <= 0 {
		return 0, exceptions.ErrInvalidValidityWindow(fmt.Errorf("got %d", hours))
	}
	return time.Duration(hours) * time.Hour, nil
}

// ParsePositiveIntQuery parses paging query values. Anything empty,
// non-numeric or non-positive falls back to the default.
func ParsePositiveIntQuery(raw string, defaultValue int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
