// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import (
	"regexp"
	"strings"
)

// Delivery rule action names.
const (
	ActionCacheExpiration      = "CacheExpiration"
	ActionCacheKeyQueryString  = "CacheKeyQueryString"
	ActionModifyRequestHeader  = "ModifyRequestHeader"
	ActionModifyResponseHeader = "ModifyResponseHeader"
	ActionRequestHeader        = "RequestHeader"
	ActionResponseHeader       = "ResponseHeader"
	ActionOriginGroupOverride  = "OriginGroupOverride"
	ActionURLRedirect          = "UrlRedirect"
	ActionURLRewrite           = "UrlRewrite"
)

// Field names of rule action parameters.
const (
	FieldActionName          = "action_name"
	FieldCacheBehavior       = "cache_behavior"
	FieldCacheDuration       = "cache_duration"
	FieldHeaderAction        = "header_action"
	FieldHeaderName          = "header_name"
	FieldHeaderValue         = "header_value"
	FieldRedirectType        = "redirect_type"
	FieldCustomPath          = "custom_path"
	FieldCustomQueryString   = "custom_querystring"
	FieldCustomFragment      = "custom_fragment"
	FieldQueryStringBehavior = "query_string_behavior"
	FieldQueryParameters     = "query_parameters"
	FieldSourcePattern       = "source_pattern"
	FieldDestination         = "destination"
	FieldOriginGroup         = "origin_group"
)

const (
	cacheBehaviorBypass = "BypassCache"
	headerActionDelete  = "Delete"
)

// cacheDurationRegex matches [d.]hh:mm:ss.
var cacheDurationRegex = regexp.MustCompile(`^(\d+\.)?([01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)

// RuleAction is the single action of a delivery rule together with the
// parameters given for it. Parameters that do not belong to Name are ignored.
type RuleAction struct {
	Name string

	CacheBehavior string
	CacheDuration string

	HeaderAction string
	HeaderName   string
	HeaderValue  string

	RedirectType      string
	RedirectProtocol  string
	CustomHostname    string
	CustomPath        string
	CustomQueryString string
	CustomFragment    string

	QueryStringBehavior string
	QueryParameters     string

	SourcePattern         string
	Destination           string
	PreserveUnmatchedPath bool

	OriginGroup string
}

// IsRequestHeader reports whether a modifies request headers.
func (a RuleAction) IsRequestHeader() bool {
	return a.Name == ActionModifyRequestHeader || a.Name == ActionRequestHeader
}

// IsResponseHeader reports whether a modifies response headers.
func (a RuleAction) IsResponseHeader() bool {
	return a.Name == ActionModifyResponseHeader || a.Name == ActionResponseHeader
}

// ValidateRuleAction checks that the parameters required by the action are
// present and well formed.
func ValidateRuleAction(a RuleAction) error {
	name, ok := Canonical(RuleActionNames, a.Name)
	if !ok {
		return invalid(FieldActionName, a.Name, "must be one of %s", strings.Join(RuleActionNames, ", "))
	}
	a.Name = name

	switch {
	case a.Name == ActionCacheExpiration:
		return validateCacheExpiration(a)
	case a.IsRequestHeader() || a.IsResponseHeader():
		if a.HeaderAction == "" {
			return invalid(FieldHeaderAction, "", "required by action %s", a.Name)
		}
		if a.HeaderName == "" {
			return invalid(FieldHeaderName, "", "required by action %s", a.Name)
		}
		if a.HeaderValue == "" && !strings.EqualFold(a.HeaderAction, headerActionDelete) {
			return invalid(FieldHeaderValue, "", "required unless the header action is %s", headerActionDelete)
		}
	case a.Name == ActionURLRedirect:
		return validateRedirect(a)
	case a.Name == ActionURLRewrite:
		if !strings.HasPrefix(a.SourcePattern, "/") {
			return invalid(FieldSourcePattern, a.SourcePattern, "required by action %s and must start with /", a.Name)
		}
		if !strings.HasPrefix(a.Destination, "/") {
			return invalid(FieldDestination, a.Destination, "required by action %s and must start with /", a.Name)
		}
	case a.Name == ActionCacheKeyQueryString:
		if a.QueryStringBehavior == "" {
			return invalid(FieldQueryStringBehavior, "", "required by action %s", a.Name)
		}
		selective := strings.EqualFold(a.QueryStringBehavior, "Include") || strings.EqualFold(a.QueryStringBehavior, "Exclude")
		if selective && a.QueryParameters == "" {
			return invalid(FieldQueryParameters, "", "required when the query string behavior is %s", a.QueryStringBehavior)
		}
	case a.Name == ActionOriginGroupOverride:
		if a.OriginGroup == "" {
			return invalid(FieldOriginGroup, "", "required by action %s", a.Name)
		}
	}
	return nil
}

func validateCacheExpiration(a RuleAction) error {
	if a.CacheBehavior == "" {
		return invalid(FieldCacheBehavior, "", "required by action %s", a.Name)
	}
	if strings.EqualFold(a.CacheBehavior, cacheBehaviorBypass) {
		if a.CacheDuration != "" {
			return invalid(FieldCacheDuration, a.CacheDuration, "must be empty when the cache behavior is %s", cacheBehaviorBypass)
		}
		return nil
	}
	if !cacheDurationRegex.MatchString(a.CacheDuration) {
		return invalid(FieldCacheDuration, a.CacheDuration, "must be [d.]hh:mm:ss when the cache behavior is %s", a.CacheBehavior)
	}
	return nil
}

func validateRedirect(a RuleAction) error {
	if a.RedirectType == "" {
		return invalid(FieldRedirectType, "", "required by action %s", a.Name)
	}
	if a.CustomPath != "" && !strings.HasPrefix(a.CustomPath, "/") {
		return invalid(FieldCustomPath, a.CustomPath, "must start with /")
	}
	if strings.HasPrefix(a.CustomQueryString, "?") {
		return invalid(FieldCustomQueryString, a.CustomQueryString, "must not start with ?")
	}
	if strings.HasPrefix(a.CustomFragment, "#") {
		return invalid(FieldCustomFragment, a.CustomFragment, "must not start with #")
	}
	return nil
}
