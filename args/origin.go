// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import (
	"strconv"
	"strings"
)

const (
	DefaultHTTPPort  = 80
	DefaultHTTPSPort = 443

	maxOriginFields = 6
)

// OriginSpec is one backend parsed from an origin token. Empty strings mean
// the private link field was not supplied.
type OriginSpec struct {
	Host                  string `json:"host"`
	HTTPPort              int    `json:"httpPort"`
	HTTPSPort             int    `json:"httpsPort"`
	PrivateLinkResourceID string `json:"privateLinkResourceId,omitempty"`
	PrivateLinkLocation   string `json:"privateLinkLocation,omitempty"`
	PrivateLinkMessage    string `json:"privateLinkMessage,omitempty"`
}

// HasPrivateLink reports whether any private link field is set.
func (o OriginSpec) HasPrivateLink() bool {
	return o.PrivateLinkResourceID != "" || o.PrivateLinkLocation != "" || o.PrivateLinkMessage != ""
}

// ParseOrigin parses
//
//	HOST[ HTTP_PORT[ HTTPS_PORT[ PRIVATE_LINK_ID[ PRIVATE_LINK_LOCATION[ PRIVATE_LINK_MESSAGE]]]]]
//
// Omitted ports default to 80 and 443. The result is not validated, see
// ValidateOrigin.
func ParseOrigin(name, raw string) (OriginSpec, error) {
	fields, err := splitFields(raw)
	if err != nil {
		return OriginSpec{}, malformed(name, raw, "%v", err)
	}
	if len(fields) == 0 || fields[0] == "" {
		return OriginSpec{}, malformed(name, raw, "host is required")
	}
	if len(fields) > maxOriginFields {
		return OriginSpec{}, malformed(name, raw, "expected at most %d sub-fields, got %d", maxOriginFields, len(fields))
	}

	origin := OriginSpec{
		Host:      fields[0],
		HTTPPort:  DefaultHTTPPort,
		HTTPSPort: DefaultHTTPSPort,
	}
	if len(fields) > 1 {
		if origin.HTTPPort, err = strconv.Atoi(fields[1]); err != nil {
			return OriginSpec{}, malformed(name, raw, "http port %q is not an integer", fields[1])
		}
	}
	if len(fields) > 2 {
		if origin.HTTPSPort, err = strconv.Atoi(fields[2]); err != nil {
			return OriginSpec{}, malformed(name, raw, "https port %q is not an integer", fields[2])
		}
	}
	if len(fields) > 3 {
		origin.PrivateLinkResourceID = fields[3]
	}
	if len(fields) > 4 {
		origin.PrivateLinkLocation = fields[4]
	}
	if len(fields) > 5 {
		origin.PrivateLinkMessage = fields[5]
	}
	return origin, nil
}

// ParseOrigins parses each token independently and keeps input order.
// Duplicates are kept.
func ParseOrigins(name string, raw []string) ([]OriginSpec, error) {
	origins := make([]OriginSpec, 0, len(raw))
	for _, r := range raw {
		o, err := ParseOrigin(name, r)
		if err != nil {
			return nil, err
		}
		origins = append(origins, o)
	}
	return origins, nil
}

// FormatOrigin renders o back into the positional form accepted by
// ParseOrigin. Trailing private link fields that are unset are omitted.
func FormatOrigin(o OriginSpec) string {
	fields := []string{
		quoteField(o.Host),
		strconv.Itoa(o.HTTPPort),
		strconv.Itoa(o.HTTPSPort),
	}
	trailing := []string{o.PrivateLinkResourceID, o.PrivateLinkLocation, o.PrivateLinkMessage}
	last := -1
	for i, f := range trailing {
		if f != "" {
			last = i
		}
	}
	for i := 0; i <= last; i++ {
		fields = append(fields, quoteField(trailing[i]))
	}
	return strings.Join(fields, " ")
}
