// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import (
	"strings"
	"time"
)

// TimeRange bounds a log analytics query.
type TimeRange struct {
	Begin time.Time
	End   time.Time
}

// ParseTime parses an RFC 3339 timestamp such as 2026-10-01T00:00:00Z.
func ParseTime(name, raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, malformed(name, raw, "expected an RFC 3339 timestamp such as 2026-10-01T00:00:00Z")
	}
	return t, nil
}

// ValidateTimeRange requires End to be strictly after Begin. A zero End means
// the query is open ended.
func ValidateTimeRange(r TimeRange) error {
	if r.End.IsZero() {
		return nil
	}
	if !r.End.After(r.Begin) {
		return invalid("date_time_end", r.End.Format(time.RFC3339), "must be after date_time_begin %s", r.Begin.Format(time.RFC3339))
	}
	return nil
}
