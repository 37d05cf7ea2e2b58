// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package commands

import (
	"context"
	"strconv"

	"github.com/Azure/azure-cdn-cli/args"
	"github.com/Azure/azure-cdn-cli/cdnclient"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cdn/armcdn"
	"github.com/pkg/errors"
)

// wafPolicyLocation is the only location CDN WAF policies are created in.
const wafPolicyLocation = "Global"

func buildCDNProfile(req Request) (interface{}, error) {
	v := req.Values
	return &armcdn.Profile{
		Location: optionalString(v, FlagLocation),
		SKU:      &armcdn.SKU{Name: to.Ptr(armcdn.SKUName(v.String(FlagSKU)))},
	}, nil
}

func buildCDNEndpoint(req Request) (interface{}, error) {
	v := req.Values
	origins, _ := v[FlagOrigin].([]args.OriginSpec)
	return &armcdn.Endpoint{
		Location: optionalString(v, FlagLocation),
		Properties: &armcdn.EndpointProperties{
			Origins:              cdnclient.DeepCreatedOrigins(origins),
			OriginHostHeader:     optionalString(v, FlagOriginHostHeader),
			IsHTTPAllowed:        to.Ptr(!v.Bool(FlagNoHTTP)),
			IsHTTPSAllowed:       to.Ptr(!v.Bool(FlagNoHTTPS)),
			IsCompressionEnabled: to.Ptr(v.Bool(FlagEnableCompression)),
		},
	}, nil
}

func buildCDNOrigin(req Request) (interface{}, error) {
	v := req.Values
	props := cdnclient.OriginProperties(cdnOriginSpec(v))
	props.OriginHostHeader = optionalString(v, FlagOriginHostHeader)
	props.Priority = optionalInt32(v, FlagPriority)
	props.Weight = optionalInt32(v, FlagWeight)
	props.Enabled = to.Ptr(!v.Bool(FlagDisabled))
	return &armcdn.Origin{Properties: props}, nil
}

func submitCDNOrigin(ctx context.Context, s cdnclient.Submitter, req Request, payload interface{}) (interface{}, error) {
	v := req.Values
	target := cdnclient.OriginTarget{
		ResourceGroup: v.String(FlagResourceGroup),
		Profile:       v.String(FlagProfileName),
		Endpoint:      v.String(FlagEndpointName),
		Name:          v.String(FlagName),
	}
	return s.CreateOrigin(ctx, target, *payload.(*armcdn.Origin))
}

func buildCDNCustomDomainHTTPS(req Request) (interface{}, error) {
	v := req.Values
	version, _ := v[FlagMinTLSVersion].(args.MinTLSVersion)
	return &armcdn.ManagedHTTPSParameters{
		CertificateSource: to.Ptr(armcdn.CertificateSource("Cdn")),
		ProtocolType:      to.Ptr(armcdn.ProtocolType(v.String(FlagUserCertProtocolType))),
		CertificateSourceParameters: &armcdn.CertificateSourceParameters{
			CertificateType: to.Ptr(armcdn.CertificateType(v.String(FlagUserCertType))),
			TypeName:        to.Ptr(armcdn.CdnCertificateSourceParametersTypeName("CdnCertificateSourceParameters")),
		},
		MinimumTLSVersion: cdnclient.MinimumTLSVersion(version),
	}, nil
}

func buildCDNWAFPolicy(req Request) (interface{}, error) {
	v := req.Values
	settings := &armcdn.PolicySettings{
		EnabledState:       to.Ptr(armcdn.PolicyEnabledState(enabledState(v.Bool(FlagDisabled)))),
		Mode:               to.Ptr(armcdn.PolicyMode(v.String(FlagMode))),
		DefaultRedirectURL: optionalString(v, FlagRedirectURL),
	}
	if code := v.String(FlagBlockResponseStatusCode); code != "" {
		n, err := strconv.Atoi(code)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --%s", FlagBlockResponseStatusCode)
		}
		settings.DefaultCustomBlockResponseStatusCode = to.Ptr(armcdn.PolicySettingsDefaultCustomBlockResponseStatusCode(int32(n)))
	}
	return &armcdn.WebApplicationFirewallPolicy{
		Location: to.Ptr(wafPolicyLocation),
		SKU:      &armcdn.SKU{Name: to.Ptr(armcdn.SKUName(v.String(FlagSKU)))},
		Properties: &armcdn.WebApplicationFirewallPolicyProperties{
			PolicySettings: settings,
		},
	}, nil
}

func submitCDNWAFPolicy(ctx context.Context, s cdnclient.Submitter, req Request, payload interface{}) (interface{}, error) {
	v := req.Values
	return s.CreateWAFPolicy(ctx, v.String(FlagResourceGroup), v.String(FlagName), *payload.(*armcdn.WebApplicationFirewallPolicy))
}

func buildCDNWAFManagedRuleSet(req Request) (interface{}, error) {
	v := req.Values
	overrides, _ := v[FlagRuleOverride].([]args.RuleOverride)
	set := &armcdn.ManagedRuleSet{
		RuleSetType:    to.Ptr(v.String(FlagRuleSetType)),
		RuleSetVersion: to.Ptr(v.String(FlagRuleSetVersion)),
	}
	if len(overrides) > 0 {
		set.RuleGroupOverrides = cdnclient.ManagedRuleGroupOverrides(overrides)
	}
	return set, nil
}

func buildCDNWAFCustomRule(req Request) (interface{}, error) {
	v := req.Values
	conditions, _ := v[FlagMatchCondition].([]args.MatchCondition)
	return &armcdn.CustomRule{
		Name:            to.Ptr(v.String(FlagName)),
		Action:          to.Ptr(armcdn.ActionType(v.String(FlagAction))),
		Priority:        to.Ptr(int32(v.Int(FlagPriority))),
		EnabledState:    to.Ptr(armcdn.CustomRuleEnabledState("Enabled")),
		MatchConditions: cdnclient.MatchConditions(conditions),
	}, nil
}

func buildCDNWAFRateLimitRule(req Request) (interface{}, error) {
	v := req.Values
	conditions, _ := v[FlagMatchCondition].([]args.MatchCondition)
	duration, err := strconv.Atoi(v.String(FlagRateLimitDuration))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", FlagRateLimitDuration)
	}
	return &armcdn.RateLimitRule{
		Name:                       to.Ptr(v.String(FlagName)),
		Action:                     to.Ptr(armcdn.ActionType(v.String(FlagAction))),
		Priority:                   to.Ptr(int32(v.Int(FlagPriority))),
		EnabledState:               to.Ptr(armcdn.CustomRuleEnabledState("Enabled")),
		MatchConditions:            cdnclient.MatchConditions(conditions),
		RateLimitThreshold:         to.Ptr(int32(v.Int(FlagRateLimitThreshold))),
		RateLimitDurationInMinutes: to.Ptr(int32(duration)),
	}, nil
}

// buildCDNOriginGroup resolves origin names against the endpoint.
func buildCDNOriginGroup(req Request) (interface{}, error) {
	v := req.Values
	endpoint := v.String(FlagEndpointName)
	props := &armcdn.OriginGroupProperties{
		HealthProbeSettings: &armcdn.HealthProbeParameters{
			ProbePath:              optionalString(v, FlagProbePath),
			ProbeIntervalInSeconds: optionalInt32(v, FlagProbeInterval),
		},
	}
	if m := v.String(FlagProbeMethod); m != "" {
		props.HealthProbeSettings.ProbeRequestType = to.Ptr(armcdn.HealthProbeRequestType(m))
	}
	if p := v.String(FlagProbeProtocol); p != "" {
		props.HealthProbeSettings.ProbeProtocol = to.Ptr(armcdn.ProbeProtocol(p))
	}
	for _, o := range v.Strings(FlagOrigins) {
		props.Origins = append(props.Origins, &armcdn.ResourceReference{
			ID: to.Ptr(profileResourceID(req, "endpoints/"+endpoint+"/origins", o)),
		})
	}
	if v.Has(FlagDetectionType) || v.Has(FlagFailoverThreshold) {
		props.ResponseBasedOriginErrorDetectionSettings = &armcdn.ResponseBasedOriginErrorDetectionParameters{
			ResponseBasedFailoverThresholdPercentage: optionalInt32(v, FlagFailoverThreshold),
		}
		if d := v.String(FlagDetectionType); d != "" {
			props.ResponseBasedOriginErrorDetectionSettings.ResponseBasedDetectedErrorTypes = to.Ptr(armcdn.ResponseBasedDetectedErrorTypes(d))
		}
	}
	return &armcdn.OriginGroup{Properties: props}, nil
}

func buildCDNCustomDomain(req Request) (interface{}, error) {
	return &armcdn.CustomDomainParameters{
		Properties: &armcdn.CustomDomainPropertiesParameters{
			HostName: to.Ptr(req.Values.String(FlagHostname)),
		},
	}, nil
}
