// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package commands

// Help text shared between CDN and AFD commands.

const (
	// Common
	ResourceGroupDescription = "Name of resource group. You can configure the default group using `az configure --defaults group=<name>`."
	LocationDescription      = "Location. Values from: `az account list-locations`."
	ProfileNameDescription   = "Name of the CDN profile which is unique within the resource group."
	EndpointNameDescription  = "Name of the endpoint under the profile which is unique globally."
	SKUDescription           = "The pricing tier (defines a CDN provider, feature list and rate) of the profile."

	// Origins
	OriginDescription = "Endpoint origin specified by the following space-delimited 6 tuple: " +
		"`www.example.com http_port https_port private_link_resource_id private_link_location private_link_approval_message`. " +
		"The HTTP and HTTPS ports and the private link resource ID and location are optional. " +
		"The HTTP and HTTPS ports default to 80 and 443, respectively. " +
		"Private link fields are only valid for the sku Standard_Microsoft, and private_link_location is required if private_link_resource_id is set. " +
		"Sub-fields follow shell quoting rules."
	OriginNameDescription             = "Name of the origin."
	OriginGroupNameDescription        = "Name of the origin group."
	HostNameDescription               = "The address of the origin. Domain names, IPv4 addresses, and IPv6 addresses are supported."
	HTTPPortDescription               = "The port used for http requests to the origin."
	HTTPSPortDescription              = "The port used for https requests to the origin."
	OriginHostHeaderDescription       = "The Host header to send for requests to this origin. If you leave this blank, the request hostname determines this value."
	OriginPriorityDescription         = "Priority of origin in given origin group for load balancing. Higher priorities will not be used for load balancing if any lower priority origin is healthy."
	OriginWeightDescription           = "Weight of the origin in given origin group for load balancing."
	OriginDisabledDescription         = "Don't use the origin for load balancing."
	PrivateLinkResourceDescription    = "The resource ID of the origin that will be connected to using the private link."
	PrivateLinkLocationDescription    = "The location of the origin that will be connected to using the private link."
	PrivateLinkMessageDescription     = "The message that is shown to the approver of the private link request."
	PrivateLinkSubResourceDescription = "The sub-resource type of the origin that will be connected to using the private link."
	EnablePrivateLinkDescription      = "Indicates whether private link is enabled on that origin."

	// Endpoints
	NoHTTPDescription            = "Disable HTTP traffic. Indicates whether HTTP traffic is allowed on the endpoint."
	NoHTTPSDescription           = "Disable HTTPS traffic. Indicates whether HTTPS traffic is allowed on the endpoint."
	EnableCompressionDescription = "If compression is enabled, content will be served as compressed if user requests for a compressed version."
	EnabledStateDescription      = "Whether to enable this resource."

	// Custom domains
	CustomDomainNameDescription = "Name of the custom domain."
	MinTLSVersionDescription    = "The minimum TLS version required for the custom domain."
	CertificateTypeDescription  = "Defines the source of the SSL certificate."
	UserCertProtocolDescription = "The protocol type of the certificate."
	UserCertTypeDescription     = "The type of the CDN managed certificate."

	// Origin groups
	ProbeIntervalDescription     = "The number of seconds between health probes."
	ProbePathDescription         = "The path relative to the origin that is used to determine the health of the origin."
	ProbeProtocolDescription     = "Protocol to use for health probe."
	ProbeRequestTypeDescription  = "The type of health probe request that is made."
	SampleSizeDescription        = "The number of samples to consider for load balancing decisions."
	SuccessfulSamplesDescription = "The number of samples within the sample period that must succeed."
	AdditionalLatencyDescription = "The additional latency in milliseconds for probes to fall into the lowest latency bucket."
	ResponseTimeoutDescription   = "Send and receive timeout on forwarding request to the origin."

	// WAF
	WAFPolicyNameDescription      = "The name of the CDN WAF policy."
	WAFModeDescription            = "Describes if it is in detection mode or prevention mode at policy level."
	WAFRedirectURLDescription     = "If action type is redirect, this field represents the default redirect URL for the client."
	WAFBlockStatusDescription     = "If the action type is block, customer can override the response status code."
	WAFDisabledDescription        = "Disable the policy."
	WAFRuleNameDescription        = "The name of the custom rule."
	WAFActionDescription          = "The action to take when the rule is matched."
	WAFPriorityDescription        = "The priority of the rule. Lower values are evaluated first."
	WAFRuleSetTypeDescription     = "The type of the managed rule set."
	WAFRuleSetVersionDescription  = "The version of the managed rule set type."
	WAFAnomalyScoreDescription    = "Verizon only: if the rule set supports anomaly detection mode, the minimum threshold for blocking requests."
	RateLimitThresholdDescription = "The rate limit threshold."
	RateLimitDurationDescription  = "The rate limit duration in minutes."
	RuleOverrideDescription       = "Override of a managed rule group, in the form `<rule-group>[;<rule-id>=<state>]*` where state is one of " +
		"Enabled, Disabled, Allow, Block, Log or Redirect. Can be repeated. A rule ID repeated within one override keeps the last state."
	MatchConditionDescription = "Match condition for the rule, in the form `VARIABLE[:SELECTOR] [not] OPERATOR [VALUE[,VALUE...]] [TRANSFORM[,TRANSFORM...]]`. " +
		"The Any operator takes no values. Transforms are Lowercase and Uppercase. Sub-fields follow shell quoting rules. Can be repeated."

	// Routes and rules
	RouteNameDescription               = "Name of the route."
	SupportedProtocolsDescription      = "List of supported protocols for this route."
	PatternsToMatchDescription         = "The route patterns of the rule."
	ForwardingProtocolDescription      = "Protocol this rule will use when forwarding traffic to backends."
	HTTPSRedirectDescription           = "Whether to automatically redirect HTTP traffic to HTTPS traffic."
	LinkToDefaultDomainDescription     = "Whether this route will be linked to the default endpoint domain."
	RuleSetsDescription                = "Collection of ID or name of rule set referenced by the route."
	CustomDomainsDescription           = "Custom domains referenced by this endpoint."
	RuleSetNameDescription             = "Name of the rule set."
	RuleNameDescription                = "Name of the rule."
	RuleOrderDescription               = "The order in which the rules are applied for the endpoint. A rule with a lesser order will be applied before a rule with a greater order."
	RuleActionDescription              = "The name of the action for the delivery rule."
	MatchProcessingBehaviorDescription = "Indicate whether rules engine should continue to run the remaining rules or stop if matched."

	// Rule actions
	CacheBehaviorDescription         = "Caching behavior for the requests."
	CacheDurationDescription         = "The duration for which the content needs to be cached. Allowed format is [d.]hh:mm:ss."
	HeaderActionDescription          = "Header action for the requests."
	HeaderNameDescription            = "Name of the header to modify."
	HeaderValueDescription           = "Value of the header."
	RedirectTypeDescription          = "The redirect type the rule will use when redirecting traffic."
	RedirectProtocolDescription      = "Protocol to use for the redirect."
	CustomHostnameDescription        = "Host to redirect. Leave empty to use the incoming host as the destination host."
	CustomPathDescription            = "The full path to redirect. Path must start with /. Leave empty to use the incoming path as destination path."
	CustomQueryStringDescription     = "The set of query strings to be placed in the redirect URL, without the leading ?. Leave empty to preserve the incoming query string."
	CustomFragmentDescription        = "Fragment to add to the redirect URL, without the leading #."
	QueryStringBehaviorDescription   = "Query string behavior for the requests."
	QueryParametersDescription       = "Query parameters to include or exclude (comma separated)."
	SourcePatternDescription         = "A request URI pattern that identifies the type of requests that may be rewritten."
	DestinationDescription           = "The destination path to be used in the rewrite."
	PreserveUnmatchedPathDescription = "If true, the remaining path after the source pattern will be appended to the new destination path."
	OriginGroupOverrideDescription   = "Name or ID of the origin group that would override the default origin group."

	// Classic origin groups
	OriginGroupOriginsDescription   = "The origins load balanced by this origin group, as names or IDs of origins of the endpoint."
	ProbeMethodDescription          = "The request method used by the health probe."
	FailoverThresholdDescription    = "The percentage of failed requests in the sample where failover should trigger."
	DetectionTypeDescription        = "The type of response errors for real user requests for which origin will be deemed unhealthy."
	CustomDomainHostnameDescription = "The host name of the custom domain. Must be a domain name."

	// Security policies and secrets
	SecurityPolicyNameDescription = "Name of the security policy."
	WAFPolicyIDDescription        = "The ID of Front Door WAF policy."
	DomainsDescription            = "The domains to associate with the WAF policy. Could either be the ID of an endpoint (default domain will be used in that case) or ID of a custom domain."
	SecretNameDescription         = "Name of the secret."
	SecretSourceDescription       = "ID of the Azure key vault certificate."
	SecretVersionDescription      = "Version of the certificate to be used."
	UseLatestVersionDescription   = "Whether to use the latest version for the certificate."

	// Log analytics
	MetricsDescription        = "Metrics to retrieve."
	RankingMetricsDescription = "Metrics to rank by."
	RankingsDescription       = "Dimensions to rank by."
	DateTimeBeginDescription  = "The start date time used to query the metrics, in RFC 3339 format."
	DateTimeEndDescription    = "The end date time used to query the metrics, in RFC 3339 format."
	GranularityDescription    = "The interval granularity."
	ProtocolsDescription      = "The protocols of the query."
	MaxRankingDescription     = "The maximum number of records to return."
	ActionsDescription        = "The WAF actions to filter by."
)
