// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import "strings"

// CatalogAPIVersion is the Microsoft.Cdn API version the enumerations below
// were taken from. Bump it together with the lists.
const CatalogAPIVersion = "2024-02-01"

// WAF custom rule match variables.
var WAFMatchVariables = []string{
	"RemoteAddr",
	"SocketAddr",
	"RequestMethod",
	"RequestHeader",
	"RequestUri",
	"QueryString",
	"RequestBody",
	"Cookies",
	"PostArgs",
}

// WAF custom rule operators.
var WAFOperators = []string{
	"Any",
	"IPMatch",
	"GeoMatch",
	"Equal",
	"Contains",
	"LessThan",
	"GreaterThan",
	"LessThanOrEqual",
	"GreaterThanOrEqual",
	"BeginsWith",
	"EndsWith",
	"RegEx",
}

// DeliveryRuleMatchVariables are the condition names accepted by AFD rules.
var DeliveryRuleMatchVariables = []string{
	"ClientPort",
	"Cookies",
	"HostName",
	"HttpVersion",
	"IsDevice",
	"PostArgs",
	"QueryString",
	"RemoteAddress",
	"RequestBody",
	"RequestHeader",
	"RequestMethod",
	"RequestScheme",
	"RequestUri",
	"ServerPort",
	"SocketAddr",
	"SslProtocol",
	"UrlFileExtension",
	"UrlFileName",
	"UrlPath",
}

// RuleActionNames are the delivery rule actions that can be configured from
// the command line. RequestHeader and ResponseHeader are the classic CDN
// spellings of the header actions.
var RuleActionNames = []string{
	ActionCacheExpiration,
	ActionCacheKeyQueryString,
	ActionModifyRequestHeader,
	ActionModifyResponseHeader,
	ActionRequestHeader,
	ActionResponseHeader,
	ActionOriginGroupOverride,
	ActionURLRedirect,
	ActionURLRewrite,
}

// Delivery rule action parameters.
var (
	CacheBehaviors       = []string{"BypassCache", "Override", "SetIfMissing"}
	HeaderActions        = []string{"Append", "Overwrite", "Delete"}
	RedirectTypes        = []string{"Moved", "Found", "TemporaryRedirect", "PermanentRedirect"}
	RedirectProtocols    = []string{"MatchRequest", "Http", "Https"}
	QueryStringBehaviors = []string{"Include", "IncludeAll", "Exclude", "ExcludeAll"}
)

// WAFActions are the actions a custom or rate limit rule can take.
var WAFActions = []string{"Allow", "Block", "Log", "Redirect"}

// OverrideStates are the states a managed rule override may set. Enabled and
// Disabled toggle the rule, the rest replace its action.
var OverrideStates = []string{"Enabled", "Disabled", "Allow", "Block", "Log", "Redirect"}

// WAF policy modes.
var WAFPolicyModes = []string{"Detection", "Prevention"}

// CDN and AFD profile SKUs.
var (
	CDNSKUs = []string{
		"Standard_Akamai",
		"Standard_Microsoft",
		"Standard_Verizon",
		"Premium_Verizon",
		"Standard_ChinaCdn",
		"Standard_955BandWidth_ChinaCdn",
		"Standard_AvgBandWidth_ChinaCdn",
		"StandardPlus_ChinaCdn",
		"StandardPlus_955BandWidth_ChinaCdn",
		"StandardPlus_AvgBandWidth_ChinaCdn",
	}
	AFDSKUs = []string{"Standard_AzureFrontDoor", "Premium_AzureFrontDoor"}
	WAFSKUs = []string{"Standard_Microsoft"}
)

// Enabled state used by AFD endpoints, origins and routes.
var EnabledStates = []string{"Enabled", "Disabled"}

// Health check settings.
var (
	ProbeProtocols    = []string{"Http", "Https", "NotSet"}
	ProbeRequestTypes = []string{"GET", "HEAD", "NotSet"}
)

// Route settings.
var (
	ForwardingProtocols      = []string{"HttpOnly", "HttpsOnly", "MatchRequest"}
	SupportedProtocols       = []string{"Http", "Https"}
	MatchProcessingBehaviors = []string{"Continue", "Stop"}
)

// AFD custom domain certificate types.
var CertificateTypes = []string{"ManagedCertificate", "CustomerCertificate", "AzureFirstPartyManagedCertificate"}

// Classic CDN origin group failover detection.
var DetectionTypes = []string{"TcpErrorsOnly", "TcpAndHttpErrors"}

// Classic CDN custom domain certificate options.
var (
	CDNCertificateTypes = []string{"Dedicated", "Shared"}
	CDNProtocolTypes    = []string{"ServerNameIndication", "IPBased"}
)

// Log analytics query enumerations.
var (
	LogAnalyticsMetrics = []string{
		"clientRequestCount",
		"clientRequestTraffic",
		"clientRequestBandwidth",
		"originRequestTraffic",
		"originRequestBandwidth",
		"totalLatency",
	}
	LogAnalyticsGranularities = []string{"PT5M", "PT1H", "P1D"}
	LogAnalyticsProtocols     = []string{"http", "https"}
	LogRankingMetrics         = []string{"clientRequestCount", "clientRequestTraffic", "hitCount", "missCount", "userErrorCount", "errorCount"}
	LogRankings               = []string{"url", "referrer", "browser", "userAgent", "countryOrRegion"}
	WAFLogAnalyticsMetrics    = []string{"clientRequestCount"}
	WAFRankings               = []string{"action", "ruleGroup", "ruleId", "userAgent", "clientIp", "url", "country", "ruleType"}
	WAFRateLimitDurations     = []string{"1", "5"}
)

// Canonical returns the catalog spelling of value, matched case-insensitively.
func Canonical(catalog []string, value string) (string, bool) {
	for _, c := range catalog {
		if strings.EqualFold(c, value) {
			return c, true
		}
	}
	return "", false
}
