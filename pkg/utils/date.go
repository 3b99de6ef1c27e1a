package utils

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned when no supported layout matches
var ErrInvalidDate = errors.New("invalid date")

// Accepted launch date layouts, tried in order
var launchDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	DATE_LAYOUT_ISO,
	DATE_LAYOUT_LONG,
	DATE_LAYOUT_SHORT,
	DATE_LAYOUT_LONG_DAY_FIRST,
}

// ParseLaunchDate parses a caller-supplied launch date. Dates without a zone are UTC.
func ParseLaunchDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}

	for _, layout := range launchDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
