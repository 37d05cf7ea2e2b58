// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import (
	"strconv"
	"strings"
)

// Field names used in ValidationError.
const (
	FieldHost                  = "host"
	FieldHTTPPort              = "http_port"
	FieldHTTPSPort             = "https_port"
	FieldPrivateLinkResourceID = "private_link_resource_id"
	FieldPrivateLinkLocation   = "private_link_location"
	FieldMatchValues           = "match_values"
	FieldOverrideState         = "override_state"
	FieldSuccessfulSamples     = "successful_samples_required"
	FieldSampleSize            = "sample_size"
)

// ValidateOrigin enforces that private link fields come as a set: once any of
// them is given, both the resource id and its location are required. Ports
// must be valid TCP ports.
func ValidateOrigin(o OriginSpec) error {
	if strings.TrimSpace(o.Host) == "" {
		return invalid(FieldHost, o.Host, "host is required")
	}
	if err := ValidatePriority(FieldHTTPPort, o.HTTPPort, PortRange); err != nil {
		return err
	}
	if err := ValidatePriority(FieldHTTPSPort, o.HTTPSPort, PortRange); err != nil {
		return err
	}
	if !o.HasPrivateLink() {
		return nil
	}
	if o.PrivateLinkResourceID == "" {
		return invalid(FieldPrivateLinkResourceID, "", "required when a private link location or message is set for origin %s", o.Host)
	}
	if o.PrivateLinkLocation == "" {
		return invalid(FieldPrivateLinkLocation, "", "required when private link resource %s is set for origin %s", o.PrivateLinkResourceID, o.Host)
	}
	return nil
}

// ValidateOrigins validates each origin in order and stops at the first error.
func ValidateOrigins(origins []OriginSpec) error {
	for _, o := range origins {
		if err := ValidateOrigin(o); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMatchCondition checks value arity against the operator.
func ValidateMatchCondition(mc MatchCondition) error {
	if strings.EqualFold(mc.Operator, operatorAny) {
		if len(mc.Values) > 0 {
			return invalid(FieldMatchValues, strings.Join(mc.Values, ","), "operator Any takes no match values")
		}
		return nil
	}
	if len(mc.Values) == 0 {
		return invalid(FieldMatchValues, "", "operator %s requires at least one match value", mc.Operator)
	}
	for i, v := range mc.Values {
		if strings.TrimSpace(v) == "" {
			return invalid(FieldMatchValues, strings.Join(mc.Values, ","), "value %d is empty", i+1)
		}
	}
	return nil
}

// ValidateMatchConditions validates each condition in order.
func ValidateMatchConditions(conditions []MatchCondition) error {
	for _, mc := range conditions {
		if err := ValidateMatchCondition(mc); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRuleOverride checks every state against OverrideStates.
func ValidateRuleOverride(o RuleOverride) error {
	for _, id := range o.RuleIDs() {
		state := o.Overrides[id]
		if _, ok := Canonical(OverrideStates, state); !ok {
			return invalid(FieldOverrideState, state, "rule %s in group %s must be one of %s", id, o.RuleGroup, strings.Join(OverrideStates, ", "))
		}
	}
	return nil
}

// ValidateRuleOverrides validates each override in order.
func ValidateRuleOverrides(overrides []RuleOverride) error {
	for _, o := range overrides {
		if err := ValidateRuleOverride(o); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSampleCounts checks the load balancing sample settings of an
// origin group.
func ValidateSampleCounts(sampleSize, successful int) error {
	if err := ValidatePriority(FieldSampleSize, sampleSize, SampleSizeRange); err != nil {
		return err
	}
	if successful < 1 || successful > sampleSize {
		return invalid(FieldSuccessfulSamples, strconv.Itoa(successful), "must be between 1 and sample_size %d", sampleSize)
	}
	return nil
}
