// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package commands

// Flag names.
const (
	FlagName          = "name"
	FlagResourceGroup = "resource-group"
	FlagLocation      = "location"
	FlagSKU           = "sku"
	FlagProfileName   = "profile-name"
	FlagEndpointName  = "endpoint-name"

	FlagOrigin                     = "origin"
	FlagHostName                   = "host-name"
	FlagHTTPPort                   = "http-port"
	FlagHTTPSPort                  = "https-port"
	FlagOriginHostHeader           = "origin-host-header"
	FlagPriority                   = "priority"
	FlagWeight                     = "weight"
	FlagDisabled                   = "disabled"
	FlagPrivateLinkResourceID      = "private-link-resource-id"
	FlagPrivateLinkLocation        = "private-link-location"
	FlagPrivateLinkApprovalMessage = "private-link-approval-message"
	FlagNoHTTP                     = "no-http"
	FlagNoHTTPS                    = "no-https"
	FlagEnableCompression          = "enable-compression"
	FlagMinTLSVersion              = "min-tls-version"
	FlagUserCertProtocolType       = "user-cert-protocol-type"
	FlagUserCertType               = "user-cert-type"

	FlagPolicyName              = "policy-name"
	FlagMode                    = "mode"
	FlagRedirectURL             = "redirect-url"
	FlagBlockResponseStatusCode = "block-response-status-code"
	FlagAction                  = "action"
	FlagMatchCondition          = "match-condition"
	FlagRuleSetType             = "rule-set-type"
	FlagRuleSetVersion          = "rule-set-version"
	FlagRuleOverride            = "rule-override"
	FlagRateLimitThreshold      = "rate-limit-threshold"
	FlagRateLimitDuration       = "rate-limit-duration"

	FlagOriginGroupName                 = "origin-group-name"
	FlagOriginName                      = "origin-name"
	FlagEnabledState                    = "enabled-state"
	FlagEnablePrivateLink               = "enable-private-link"
	FlagPrivateLinkResource             = "private-link-resource"
	FlagPrivateLinkRequestMessage       = "private-link-request-message"
	FlagPrivateLinkSubResourceType      = "private-link-sub-resource-type"
	FlagProbeRequestType                = "probe-request-type"
	FlagProbeProtocol                   = "probe-protocol"
	FlagProbeIntervalInSeconds          = "probe-interval-in-seconds"
	FlagProbePath                       = "probe-path"
	FlagSampleSize                      = "sample-size"
	FlagSuccessfulSamplesRequired       = "successful-samples-required"
	FlagAdditionalLatencyInMilliseconds = "additional-latency-in-milliseconds"
	FlagOriginResponseTimeoutSeconds    = "origin-response-timeout-seconds"
	FlagCustomDomainName                = "custom-domain-name"
	FlagCertificateType                 = "certificate-type"
	FlagMinimumTLSVersion               = "minimum-tls-version"
	FlagRouteName                       = "route-name"
	FlagOriginGroup                     = "origin-group"
	FlagSupportedProtocols              = "supported-protocols"
	FlagPatternsToMatch                 = "patterns-to-match"
	FlagForwardingProtocol              = "forwarding-protocol"
	FlagHTTPSRedirect                   = "https-redirect"
	FlagLinkToDefaultDomain             = "link-to-default-domain"
	FlagRuleSets                        = "rule-sets"
	FlagCustomDomains                   = "custom-domains"
	FlagRuleSetName                     = "rule-set-name"
	FlagRuleName                        = "rule-name"
	FlagOrder                           = "order"
	FlagActionName                      = "action-name"
	FlagMatchProcessingBehavior         = "match-processing-behavior"
	FlagSecurityPolicyName              = "security-policy-name"
	FlagWAFPolicy                       = "waf-policy"
	FlagDomains                         = "domains"
	FlagSecretName                      = "secret-name"
	FlagSecretSource                    = "secret-source"
	FlagSecretVersion                   = "secret-version"
	FlagUseLatestVersion                = "use-latest-version"

	FlagHostname          = "hostname"
	FlagOrigins           = "origins"
	FlagProbeMethod       = "probe-method"
	FlagProbeInterval     = "probe-interval"
	FlagFailoverThreshold = "failover-threshold"
	FlagDetectionType     = "detection-type"

	FlagCacheBehavior         = "cache-behavior"
	FlagCacheDuration         = "cache-duration"
	FlagHeaderAction          = "header-action"
	FlagHeaderName            = "header-name"
	FlagHeaderValue           = "header-value"
	FlagRedirectType          = "redirect-type"
	FlagRedirectProtocol      = "redirect-protocol"
	FlagCustomHostname        = "custom-hostname"
	FlagCustomPath            = "custom-path"
	FlagCustomQueryString     = "custom-querystring"
	FlagCustomFragment        = "custom-fragment"
	FlagQueryStringBehavior   = "query-string-behavior"
	FlagQueryParameters       = "query-parameters"
	FlagSourcePattern         = "source-pattern"
	FlagDestination           = "destination"
	FlagPreserveUnmatchedPath = "preserve-unmatched-path"

	FlagMetrics       = "metrics"
	FlagRankings      = "rankings"
	FlagDateTimeBegin = "date-time-begin"
	FlagDateTimeEnd   = "date-time-end"
	FlagGranularity   = "granularity"
	FlagProtocols     = "protocols"
	FlagMaxRanking    = "max-ranking"
	FlagActions       = "actions"
)
