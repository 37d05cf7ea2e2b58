// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package commands

import (
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/Azure/azure-cdn-cli/args"
	"github.com/Azure/azure-cdn-cli/registry"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/pkg/errors"
)

// Parser names.
const (
	ParseOrigin             = "origin"
	ParseMatchCondition     = "match-condition"
	ParseRuleOverride       = "rule-override"
	ParseMinTLSVersion      = "min-tls-version"
	ParseTime               = "time"
	ParseWAFRulePriority    = "waf-rule-priority"
	ParseRuleOrder          = "rule-order"
	ParseOriginPriority     = "origin-priority"
	ParseOriginWeight       = "origin-weight"
	ParsePort               = "port"
	ParseProbeInterval      = "probe-interval"
	ParseResponseTimeout    = "response-timeout"
	ParseSampleSize         = "sample-size"
	ParseAdditionalLatency  = "additional-latency"
	ParseRateLimitThreshold = "rate-limit-threshold"
	ParseMaxRanking         = "max-ranking"
	ParseFailoverThreshold  = "failover-threshold"
)

// Validator names.
const (
	ValidateOrigin         = "origin"
	ValidateMatchCondition = "match-condition"
	ValidateRuleOverride   = "rule-override"
	ValidateResourceName   = "resource-name"
	ValidateURL            = "url"
	ValidateResourceID     = "resource-id"
	ValidateHostName       = "host-name"
)

// Cross validator names.
const (
	CrossCDNOrigin    = "cdn-origin"
	CrossAFDOrigin    = "afd-origin"
	CrossSampleCounts = "sample-counts"
	CrossTimeRange    = "time-range"
	CrossRuleAction   = "rule-action"
	CrossSecret       = "secret"
)

var (
	resourceNameRegex = regexp.MustCompile(`^[a-zA-Z0-9]+(-*[a-zA-Z0-9])*$`)
	hostNameRegex     = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,63}$`)
)

const maxResourceNameLength = 260

// Funcs is the static mapping from the names used in the tables to parsers
// and validators.
var Funcs = registry.Funcs{
	Parsers: map[string]registry.ParseFunc{
		ParseOrigin: func(name string, raw []string) (interface{}, error) {
			o, err := args.ParseOrigins(name, raw)
			if err != nil {
				return nil, err
			}
			return o, nil
		},
		ParseMatchCondition: func(name string, raw []string) (interface{}, error) {
			mc, err := args.ParseMatchConditions(name, raw)
			if err != nil {
				return nil, err
			}
			return mc, nil
		},
		ParseRuleOverride: func(name string, raw []string) (interface{}, error) {
			o, err := args.ParseRuleOverrides(name, raw)
			if err != nil {
				return nil, err
			}
			return o, nil
		},
		ParseMinTLSVersion: func(name string, raw []string) (interface{}, error) {
			v, err := args.ParseMinTLSVersion(name, raw[0])
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		ParseTime: func(name string, raw []string) (interface{}, error) {
			t, err := args.ParseTime(name, raw[0])
			if err != nil {
				return nil, err
			}
			return t, nil
		},
		ParseWAFRulePriority:    rangeParser(args.WAFRulePriorityRange),
		ParseRuleOrder:          rangeParser(args.RuleOrderRange),
		ParseOriginPriority:     rangeParser(args.OriginPriorityRange),
		ParseOriginWeight:       rangeParser(args.OriginWeightRange),
		ParsePort:               rangeParser(args.PortRange),
		ParseProbeInterval:      rangeParser(args.ProbeIntervalRange),
		ParseResponseTimeout:    rangeParser(args.ResponseTimeoutRange),
		ParseSampleSize:         rangeParser(args.SampleSizeRange),
		ParseAdditionalLatency:  rangeParser(args.AdditionalLatencyRange),
		ParseRateLimitThreshold: rangeParser(args.RateLimitThresholdRange),
		ParseMaxRanking:         rangeParser(args.MaxRankingRange),
		ParseFailoverThreshold:  rangeParser(args.FailoverThresholdRange),
	},
	Validators: map[string]registry.ValidateFunc{
		ValidateOrigin: func(_ string, value interface{}) error {
			return args.ValidateOrigins(value.([]args.OriginSpec))
		},
		ValidateMatchCondition: func(_ string, value interface{}) error {
			return args.ValidateMatchConditions(value.([]args.MatchCondition))
		},
		ValidateRuleOverride: func(_ string, value interface{}) error {
			return args.ValidateRuleOverrides(value.([]args.RuleOverride))
		},
		ValidateResourceName: validateResourceName,
		ValidateURL:          validateURL,
		ValidateResourceID:   validateResourceID,
		ValidateHostName:     validateHostName,
	},
	CrossValidators: map[string]registry.CrossValidateFunc{
		CrossCDNOrigin:    validateCDNOrigin,
		CrossAFDOrigin:    validateAFDOrigin,
		CrossSampleCounts: validateSampleCounts,
		CrossTimeRange:    validateTimeRange,
		CrossRuleAction:   validateRuleAction,
		CrossSecret:       validateSecret,
	},
}

func rangeParser(r args.Range) registry.ParseFunc {
	return func(name string, raw []string) (interface{}, error) {
		v, err := args.ParsePriority(name, raw[0], r)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func validateResourceName(name string, value interface{}) error {
	s, _ := value.(string)
	if len(s) > maxResourceNameLength || !resourceNameRegex.MatchString(s) {
		return &args.ValidationError{
			Field:      name,
			Value:      s,
			Constraint: "must contain only alphanumeric characters and hyphens, start and end with an alphanumeric character, and be at most " + strconv.Itoa(maxResourceNameLength) + " characters",
		}
	}
	return nil
}

func validateURL(name string, value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &args.ValidationError{Field: name, Value: s, Constraint: "must be an absolute http or https URL"}
	}
	return nil
}

// validateResourceID accepts a single id or a list of ids.
func validateResourceID(name string, value interface{}) error {
	ids, ok := value.([]string)
	if !ok {
		s, _ := value.(string)
		ids = []string{s}
	}
	for _, id := range ids {
		if _, err := arm.ParseResourceID(id); err != nil {
			return &args.ValidationError{Field: name, Value: id, Constraint: "must be a resource ID: " + err.Error()}
		}
	}
	return nil
}

func validateHostName(name string, value interface{}) error {
	s, _ := value.(string)
	if !hostNameRegex.MatchString(s) {
		return &args.ValidationError{Field: name, Value: s, Constraint: "must be a fully qualified domain name"}
	}
	return nil
}

func validateRuleAction(values registry.Values) error {
	return args.ValidateRuleAction(ruleAction(values))
}

// validateSecret requires exactly one way of picking the certificate version.
func validateSecret(values registry.Values) error {
	latest, version := values.Bool(FlagUseLatestVersion), values.String(FlagSecretVersion)
	if latest && version != "" {
		return &args.ValidationError{Field: FlagSecretVersion, Value: version, Constraint: "must not be set together with --" + FlagUseLatestVersion}
	}
	if !latest && version == "" {
		return &args.ValidationError{Field: FlagSecretVersion, Constraint: "required unless --" + FlagUseLatestVersion + " is set"}
	}
	return nil
}

// validateCDNOrigin assembles the flat origin flags of `cdn origin create`
// into an OriginSpec and checks it.
func validateCDNOrigin(values registry.Values) error {
	return args.ValidateOrigin(cdnOriginSpec(values))
}

func cdnOriginSpec(values registry.Values) args.OriginSpec {
	return args.OriginSpec{
		Host:                  values.String(FlagHostName),
		HTTPPort:              values.Int(FlagHTTPPort),
		HTTPSPort:             values.Int(FlagHTTPSPort),
		PrivateLinkResourceID: values.String(FlagPrivateLinkResourceID),
		PrivateLinkLocation:   values.String(FlagPrivateLinkLocation),
		PrivateLinkMessage:    values.String(FlagPrivateLinkApprovalMessage),
	}
}

// validateAFDOrigin does the same for `afd origin create`, where private link
// is switched on by --enable-private-link.
func validateAFDOrigin(values registry.Values) error {
	o := afdOriginSpec(values)
	if err := args.ValidateOrigin(o); err != nil {
		return err
	}
	if values.Bool(FlagEnablePrivateLink) && o.PrivateLinkResourceID == "" {
		return &args.ValidationError{Field: args.FieldPrivateLinkResourceID, Constraint: "required when --" + FlagEnablePrivateLink + " is set"}
	}
	if !values.Bool(FlagEnablePrivateLink) && o.HasPrivateLink() {
		return &args.ValidationError{Field: FlagEnablePrivateLink, Constraint: "must be set when private link fields are given"}
	}
	return nil
}

func afdOriginSpec(values registry.Values) args.OriginSpec {
	return args.OriginSpec{
		Host:                  values.String(FlagHostName),
		HTTPPort:              values.Int(FlagHTTPPort),
		HTTPSPort:             values.Int(FlagHTTPSPort),
		PrivateLinkResourceID: values.String(FlagPrivateLinkResource),
		PrivateLinkLocation:   values.String(FlagPrivateLinkLocation),
		PrivateLinkMessage:    values.String(FlagPrivateLinkRequestMessage),
	}
}

func validateSampleCounts(values registry.Values) error {
	if !values.Has(FlagSampleSize) && !values.Has(FlagSuccessfulSamplesRequired) {
		return nil
	}
	return args.ValidateSampleCounts(values.Int(FlagSampleSize), values.Int(FlagSuccessfulSamplesRequired))
}

func validateTimeRange(values registry.Values) error {
	r, err := timeRange(values)
	if err != nil {
		return err
	}
	return args.ValidateTimeRange(r)
}

func timeRange(values registry.Values) (args.TimeRange, error) {
	var r args.TimeRange
	begin, ok := values[FlagDateTimeBegin].(time.Time)
	if !ok {
		return r, errors.Errorf("--%s is required", FlagDateTimeBegin)
	}
	r.Begin = begin
	if end, ok := values[FlagDateTimeEnd].(time.Time); ok {
		r.End = end
	}
	return r, nil
}
