// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive integer bound.
type Range struct {
	Min int
	Max int
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}

// Contains reports whether v lies within r.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Bounds enforced locally. Uniqueness of priorities among sibling rules is
// left to the service.
var (
	WAFRulePriorityRange    = Range{Min: 1, Max: 1000}
	RuleOrderRange          = Range{Min: 1, Max: 1000}
	OriginPriorityRange     = Range{Min: 1, Max: 5}
	OriginWeightRange       = Range{Min: 1, Max: 1000}
	PortRange               = Range{Min: 1, Max: 65535}
	ProbeIntervalRange      = Range{Min: 1, Max: 255}
	ResponseTimeoutRange    = Range{Min: 16, Max: 240}
	SampleSizeRange         = Range{Min: 1, Max: 255}
	AdditionalLatencyRange  = Range{Min: 0, Max: 1000}
	RateLimitThresholdRange = Range{Min: 1, Max: 5000000}
	MaxRankingRange         = Range{Min: 1, Max: 1000}
	FailoverThresholdRange  = Range{Min: 0, Max: 100}
)

// ParsePriority parses raw as an integer within r. Both a non-integer and an
// out of range value are reported as a ValidationError.
func ParsePriority(name, raw string, r Range) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, invalid(name, raw, "must be an integer in %s", r)
	}
	if err := ValidatePriority(name, v, r); err != nil {
		return 0, err
	}
	return v, nil
}

// ValidatePriority checks that value lies in r.
func ValidatePriority(field string, value int, r Range) error {
	if !r.Contains(value) {
		return invalid(field, strconv.Itoa(value), "must be in range %s", r)
	}
	return nil
}
