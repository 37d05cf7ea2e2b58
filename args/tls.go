// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import "strings"

// MinTLSVersion is the minimum TLS version accepted on a custom domain.
type MinTLSVersion string

const (
	MinTLSVersionNone MinTLSVersion = "none"
	MinTLSVersion10   MinTLSVersion = "1.0"
	MinTLSVersion12   MinTLSVersion = "1.2"
)

// MinTLSVersions lists the accepted spellings in help order.
var MinTLSVersions = []string{string(MinTLSVersionNone), string(MinTLSVersion10), string(MinTLSVersion12)}

// ServiceValue is the spelling the management API uses.
func (v MinTLSVersion) ServiceValue() string {
	switch v {
	case MinTLSVersion10:
		return "TLS10"
	case MinTLSVersion12:
		return "TLS12"
	default:
		return "None"
	}
}

// ParseMinTLSVersion accepts none, 1.0 and 1.2, case-insensitively, as well as
// the service spellings TLS10 and TLS12.
func ParseMinTLSVersion(name, raw string) (MinTLSVersion, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none":
		return MinTLSVersionNone, nil
	case "1.0", "tls10":
		return MinTLSVersion10, nil
	case "1.2", "tls12":
		return MinTLSVersion12, nil
	}
	return "", invalid(name, raw, "must be one of %s", strings.Join(MinTLSVersions, ", "))
}
