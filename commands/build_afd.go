// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package commands

import (
	"time"

	"github.com/Azure/azure-cdn-cli/args"
	"github.com/Azure/azure-cdn-cli/cdnclient"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cdn/armcdn"
)

// afdLocation is the location of every AFD profile and endpoint.
const afdLocation = "Global"

// MetricsQuery is the log analytics query of `afd log-analytic metric list`.
type MetricsQuery struct {
	Metrics       []armcdn.LogMetric           `json:"metrics"`
	DateTimeBegin time.Time                    `json:"dateTimeBegin"`
	DateTimeEnd   *time.Time                   `json:"dateTimeEnd,omitempty"`
	Granularity   armcdn.LogMetricsGranularity `json:"granularity"`
	CustomDomains []string                     `json:"customDomains"`
	Protocols     []string                     `json:"protocols"`
}

// LogRankingQuery is the log analytics query of
// `afd log-analytic ranking list`.
type LogRankingQuery struct {
	Metrics       []armcdn.LogRankingMetric `json:"metrics"`
	Rankings      []armcdn.LogRanking       `json:"rankings"`
	DateTimeBegin time.Time                 `json:"dateTimeBegin"`
	DateTimeEnd   *time.Time                `json:"dateTimeEnd,omitempty"`
	MaxRanking    int32                     `json:"maxRanking"`
	CustomDomains []string                  `json:"customDomains,omitempty"`
}

// RankingQuery is the WAF ranking query of
// `afd waf-log-analytic ranking list`.
type RankingQuery struct {
	Metrics       []armcdn.WafMetric      `json:"metrics"`
	Rankings      []armcdn.WafRankingType `json:"rankings"`
	DateTimeBegin time.Time               `json:"dateTimeBegin"`
	DateTimeEnd   *time.Time              `json:"dateTimeEnd,omitempty"`
	MaxRanking    int32                   `json:"maxRanking"`
	Actions       []armcdn.WafAction      `json:"actions,omitempty"`
}

func buildAFDProfile(req Request) (interface{}, error) {
	v := req.Values
	return &armcdn.Profile{
		Location: to.Ptr(afdLocation),
		SKU:      &armcdn.SKU{Name: to.Ptr(armcdn.SKUName(v.String(FlagSKU)))},
		Properties: &armcdn.ProfileProperties{
			OriginResponseTimeoutSeconds: optionalInt32(v, FlagOriginResponseTimeoutSeconds),
		},
	}, nil
}

func buildAFDEndpoint(req Request) (interface{}, error) {
	return &armcdn.AFDEndpoint{
		Location: to.Ptr(afdLocation),
		Properties: &armcdn.AFDEndpointProperties{
			EnabledState: to.Ptr(armcdn.EnabledState(req.Values.String(FlagEnabledState))),
		},
	}, nil
}

func buildAFDOriginGroup(req Request) (interface{}, error) {
	v := req.Values
	return &armcdn.AFDOriginGroup{
		Properties: &armcdn.AFDOriginGroupProperties{
			HealthProbeSettings: &armcdn.HealthProbeParameters{
				ProbePath:              optionalString(v, FlagProbePath),
				ProbeProtocol:          to.Ptr(armcdn.ProbeProtocol(v.String(FlagProbeProtocol))),
				ProbeRequestType:       to.Ptr(armcdn.HealthProbeRequestType(v.String(FlagProbeRequestType))),
				ProbeIntervalInSeconds: optionalInt32(v, FlagProbeIntervalInSeconds),
			},
			LoadBalancingSettings: &armcdn.LoadBalancingSettingsParameters{
				SampleSize:                      optionalInt32(v, FlagSampleSize),
				SuccessfulSamplesRequired:       optionalInt32(v, FlagSuccessfulSamplesRequired),
				AdditionalLatencyInMilliseconds: optionalInt32(v, FlagAdditionalLatencyInMilliseconds),
			},
		},
	}, nil
}

func buildAFDOrigin(req Request) (interface{}, error) {
	v := req.Values
	o := afdOriginSpec(v)
	return &armcdn.AFDOrigin{
		Properties: &armcdn.AFDOriginProperties{
			HostName:                  to.Ptr(o.Host),
			HTTPPort:                  to.Ptr(int32(o.HTTPPort)),
			HTTPSPort:                 to.Ptr(int32(o.HTTPSPort)),
			OriginHostHeader:          optionalString(v, FlagOriginHostHeader),
			Priority:                  optionalInt32(v, FlagPriority),
			Weight:                    optionalInt32(v, FlagWeight),
			EnabledState:              to.Ptr(armcdn.EnabledState(v.String(FlagEnabledState))),
			SharedPrivateLinkResource: cdnclient.SharedPrivateLink(o, v.String(FlagPrivateLinkSubResourceType)),
		},
	}, nil
}

func buildAFDCustomDomain(req Request) (interface{}, error) {
	v := req.Values
	version, _ := v[FlagMinimumTLSVersion].(args.MinTLSVersion)
	return &armcdn.AFDDomain{
		Properties: &armcdn.AFDDomainProperties{
			HostName: to.Ptr(v.String(FlagHostName)),
			TLSSettings: &armcdn.AFDDomainHTTPSParameters{
				CertificateType:   to.Ptr(armcdn.AfdCertificateType(v.String(FlagCertificateType))),
				MinimumTLSVersion: cdnclient.AFDMinimumTLSVersion(version),
			},
		},
	}, nil
}

func buildAFDRoute(req Request) (interface{}, error) {
	v := req.Values
	props := &armcdn.RouteProperties{
		OriginGroup:         &armcdn.ResourceReference{ID: to.Ptr(profileResourceID(req, "originGroups", v.String(FlagOriginGroup)))},
		PatternsToMatch:     to.SliceOfPtrs(v.Strings(FlagPatternsToMatch)...),
		ForwardingProtocol:  to.Ptr(armcdn.ForwardingProtocol(v.String(FlagForwardingProtocol))),
		HTTPSRedirect:       to.Ptr(armcdn.HTTPSRedirect(v.String(FlagHTTPSRedirect))),
		LinkToDefaultDomain: to.Ptr(armcdn.LinkToDefaultDomain(v.String(FlagLinkToDefaultDomain))),
		EnabledState:        to.Ptr(armcdn.EnabledState(v.String(FlagEnabledState))),
	}
	for _, p := range v.Strings(FlagSupportedProtocols) {
		props.SupportedProtocols = append(props.SupportedProtocols, to.Ptr(armcdn.AFDEndpointProtocols(p)))
	}
	for _, rs := range v.Strings(FlagRuleSets) {
		props.RuleSets = append(props.RuleSets, &armcdn.ResourceReference{ID: to.Ptr(profileResourceID(req, "ruleSets", rs))})
	}
	for _, cd := range v.Strings(FlagCustomDomains) {
		props.CustomDomains = append(props.CustomDomains, &armcdn.ActivatedResourceReference{ID: to.Ptr(profileResourceID(req, "customDomains", cd))})
	}
	return &armcdn.Route{Properties: props}, nil
}

func buildAFDRuleSet(req Request) (interface{}, error) {
	return &armcdn.RuleSet{Name: to.Ptr(req.Values.String(FlagRuleSetName))}, nil
}

func buildAFDMetricsQuery(req Request) (interface{}, error) {
	v := req.Values
	r, err := timeRange(v)
	if err != nil {
		return nil, err
	}
	q := &MetricsQuery{
		DateTimeBegin: r.Begin,
		DateTimeEnd:   optionalTime(r.End),
		Granularity:   armcdn.LogMetricsGranularity(v.String(FlagGranularity)),
		CustomDomains: v.Strings(FlagCustomDomains),
		Protocols:     v.Strings(FlagProtocols),
	}
	for _, m := range v.Strings(FlagMetrics) {
		q.Metrics = append(q.Metrics, armcdn.LogMetric(m))
	}
	return q, nil
}

func buildAFDLogRankingQuery(req Request) (interface{}, error) {
	v := req.Values
	r, err := timeRange(v)
	if err != nil {
		return nil, err
	}
	q := &LogRankingQuery{
		DateTimeBegin: r.Begin,
		DateTimeEnd:   optionalTime(r.End),
		MaxRanking:    int32(v.Int(FlagMaxRanking)),
		CustomDomains: v.Strings(FlagCustomDomains),
	}
	for _, m := range v.Strings(FlagMetrics) {
		q.Metrics = append(q.Metrics, armcdn.LogRankingMetric(m))
	}
	for _, rk := range v.Strings(FlagRankings) {
		q.Rankings = append(q.Rankings, armcdn.LogRanking(rk))
	}
	return q, nil
}

func buildAFDRankingQuery(req Request) (interface{}, error) {
	v := req.Values
	r, err := timeRange(v)
	if err != nil {
		return nil, err
	}
	q := &RankingQuery{
		DateTimeBegin: r.Begin,
		DateTimeEnd:   optionalTime(r.End),
		MaxRanking:    int32(v.Int(FlagMaxRanking)),
	}
	for _, m := range v.Strings(FlagMetrics) {
		q.Metrics = append(q.Metrics, armcdn.WafMetric(m))
	}
	for _, rk := range v.Strings(FlagRankings) {
		q.Rankings = append(q.Rankings, armcdn.WafRankingType(rk))
	}
	for _, a := range v.Strings(FlagActions) {
		q.Actions = append(q.Actions, armcdn.WafAction(a))
	}
	return q, nil
}

// buildAFDSecurityPolicy associates every domain with the WAF policy on all
// paths.
func buildAFDSecurityPolicy(req Request) (interface{}, error) {
	v := req.Values
	association := &armcdn.SecurityPolicyWebApplicationFirewallAssociation{
		PatternsToMatch: []*string{to.Ptr("/*")},
	}
	for _, d := range v.Strings(FlagDomains) {
		association.Domains = append(association.Domains, &armcdn.ActivatedResourceReference{ID: to.Ptr(d)})
	}
	return &armcdn.SecurityPolicy{
		Properties: &armcdn.SecurityPolicyProperties{
			Parameters: &armcdn.SecurityPolicyWebApplicationFirewallParameters{
				Type:         to.Ptr(armcdn.SecurityPolicyTypeWebApplicationFirewall),
				WafPolicy:    &armcdn.ResourceReference{ID: to.Ptr(v.String(FlagWAFPolicy))},
				Associations: []*armcdn.SecurityPolicyWebApplicationFirewallAssociation{association},
			},
		},
	}, nil
}

func buildAFDSecret(req Request) (interface{}, error) {
	v := req.Values
	return &armcdn.Secret{
		Properties: &armcdn.SecretProperties{
			Parameters: &armcdn.CustomerCertificateParameters{
				Type:             to.Ptr(armcdn.SecretTypeCustomerCertificate),
				SecretSource:     &armcdn.ResourceReference{ID: to.Ptr(v.String(FlagSecretSource))},
				SecretVersion:    optionalString(v, FlagSecretVersion),
				UseLatestVersion: to.Ptr(v.Bool(FlagUseLatestVersion)),
			},
		},
	}, nil
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
