// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package commands

// Command paths.
const (
	PathCDNProfileCreate           = "cdn profile create"
	PathCDNEndpointCreate          = "cdn endpoint create"
	PathCDNEndpointRuleAdd         = "cdn endpoint rule add"
	PathCDNOriginCreate            = "cdn origin create"
	PathCDNOriginGroupCreate       = "cdn origin-group create"
	PathCDNCustomDomainCreate      = "cdn custom-domain create"
	PathCDNCustomDomainHTTPS       = "cdn custom-domain enable-https"
	PathCDNWAFPolicyCreate         = "cdn waf policy create"
	PathCDNWAFManagedRuleSetAdd    = "cdn waf policy managed-rule-set add"
	PathCDNWAFRuleGroupOverrideSet = "cdn waf policy managed-rule-set rule-group-override set"
	PathCDNWAFCustomRuleSet        = "cdn waf policy custom-rule set"
	PathCDNWAFRateLimitRuleSet     = "cdn waf policy rate-limit-rule set"
	PathAFDProfileCreate           = "afd profile create"
	PathAFDEndpointCreate          = "afd endpoint create"
	PathAFDOriginGroupCreate       = "afd origin-group create"
	PathAFDOriginCreate            = "afd origin create"
	PathAFDCustomDomainCreate      = "afd custom-domain create"
	PathAFDRouteCreate             = "afd route create"
	PathAFDRuleSetCreate           = "afd rule-set create"
	PathAFDRuleCreate              = "afd rule create"
	PathAFDSecurityPolicyCreate    = "afd security-policy create"
	PathAFDSecretCreate            = "afd secret create"
	PathAFDLogAnalyticMetricList   = "afd log-analytic metric list"
	PathAFDLogAnalyticRankList     = "afd log-analytic ranking list"
	PathAFDWAFLogAnalyticRankList  = "afd waf-log-analytic ranking list"
)
