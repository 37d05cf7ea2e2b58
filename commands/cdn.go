// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package commands

import (
	"github.com/Azure/azure-cdn-cli/args"
	"github.com/Azure/azure-cdn-cli/registry"
)

var cdnCommands = registry.CommandList{
	{Path: "cdn", Short: "Manage Azure Content Delivery Networks (CDNs).", Group: true},
	{Path: "cdn profile", Short: "Manage CDN profiles to define an edge network.", Group: true},
	{Path: PathCDNProfileCreate, Short: "Create a new CDN profile."},
	{Path: "cdn endpoint", Short: "Manage CDN endpoints.", Group: true},
	{Path: PathCDNEndpointCreate, Short: "Create a named endpoint to connect to a CDN."},
	{Path: "cdn endpoint rule", Short: "Manage delivery rules for an endpoint.", Group: true},
	{Path: PathCDNEndpointRuleAdd, Short: "Add a delivery rule to a CDN endpoint.", CrossValidators: []string{CrossRuleAction}},
	{Path: "cdn origin", Short: "List or show existing origins related to CDN endpoints.", Group: true},
	{Path: PathCDNOriginCreate, Short: "Create an origin.", CrossValidators: []string{CrossCDNOrigin}},
	{Path: "cdn origin-group", Short: "Manage origin groups of an endpoint.", Group: true},
	{Path: PathCDNOriginGroupCreate, Short: "Create an origin group."},
	{Path: "cdn custom-domain", Short: "Manage Azure CDN Custom Domains to provide custom host names for endpoints.", Group: true},
	{Path: PathCDNCustomDomainCreate, Short: "Create a new custom domain to provide a hostname for a CDN endpoint."},
	{Path: PathCDNCustomDomainHTTPS, Short: "Enable HTTPS for a custom domain."},
	{Path: "cdn waf", Short: "Manage CDN WAF.", Group: true},
	{Path: "cdn waf policy", Short: "Manage CDN WAF policies.", Group: true},
	{Path: PathCDNWAFPolicyCreate, Short: "Create a new CDN WAF policy."},
	{Path: "cdn waf policy managed-rule-set", Short: "Manage managed rule sets of a CDN WAF policy.", Group: true},
	{Path: PathCDNWAFManagedRuleSetAdd, Short: "Add a managed rule set to a CDN WAF policy."},
	{Path: "cdn waf policy managed-rule-set rule-group-override", Short: "Manage WAF managed rule group overrides.", Group: true},
	{Path: PathCDNWAFRuleGroupOverrideSet, Short: "Add or update a rule group override to a managed rule set."},
	{Path: "cdn waf policy custom-rule", Short: "Manage custom rules of a CDN WAF policy.", Group: true},
	{Path: PathCDNWAFCustomRuleSet, Short: "Add a custom rule to a CDN WAF policy."},
	{Path: "cdn waf policy rate-limit-rule", Short: "Manage rate limit rules of a CDN WAF policy.", Group: true},
	{Path: PathCDNWAFRateLimitRuleSet, Short: "Add a rate limit rule to a CDN WAF policy."},
}

var cdnArguments = registry.ArgumentList{
	// cdn profile create
	nameArg(PathCDNProfileCreate, ProfileNameDescription),
	resourceGroupArg(PathCDNProfileCreate),
	locationArg(PathCDNProfileCreate),
	{
		Command:      PathCDNProfileCreate,
		Name:         FlagSKU,
		Description:  SKUDescription,
		Type:         registry.KindEnum,
		DefaultValue: "Standard_Akamai",
		Choices:      args.CDNSKUs,
	},

	// cdn endpoint create
	nameArg(PathCDNEndpointCreate, EndpointNameDescription),
	resourceGroupArg(PathCDNEndpointCreate),
	profileNameArg(PathCDNEndpointCreate),
	locationArg(PathCDNEndpointCreate),
	{
		Command:     PathCDNEndpointCreate,
		Name:        FlagOrigin,
		Description: OriginDescription,
		Type:        registry.KindList,
		Required:    true,
		Repeated:    true,
		Parser:      ParseOrigin,
		Validator:   ValidateOrigin,
	},
	{
		Command:     PathCDNEndpointCreate,
		Name:        FlagOriginHostHeader,
		Description: OriginHostHeaderDescription,
		Type:        registry.KindString,
	},
	{
		Command:     PathCDNEndpointCreate,
		Name:        FlagNoHTTP,
		Description: NoHTTPDescription,
		Type:        registry.KindBool,
	},
	{
		Command:     PathCDNEndpointCreate,
		Name:        FlagNoHTTPS,
		Description: NoHTTPSDescription,
		Type:        registry.KindBool,
	},
	{
		Command:     PathCDNEndpointCreate,
		Name:        FlagEnableCompression,
		Description: EnableCompressionDescription,
		Type:        registry.KindBool,
	},

	// cdn origin create
	nameArg(PathCDNOriginCreate, OriginNameDescription),
	resourceGroupArg(PathCDNOriginCreate),
	profileNameArg(PathCDNOriginCreate),
	endpointNameArg(PathCDNOriginCreate),
	hostNameArg(PathCDNOriginCreate),
	httpPortArg(PathCDNOriginCreate),
	httpsPortArg(PathCDNOriginCreate),
	{
		Command:     PathCDNOriginCreate,
		Name:        FlagOriginHostHeader,
		Description: OriginHostHeaderDescription,
		Type:        registry.KindString,
	},
	originPriorityArg(PathCDNOriginCreate),
	originWeightArg(PathCDNOriginCreate),
	{
		Command:     PathCDNOriginCreate,
		Name:        FlagDisabled,
		Description: OriginDisabledDescription,
		Type:        registry.KindBool,
	},
	{
		Command:     PathCDNOriginCreate,
		Name:        FlagPrivateLinkResourceID,
		Shorthand:   "p",
		Description: PrivateLinkResourceDescription,
		Type:        registry.KindString,
	},
	{
		Command:     PathCDNOriginCreate,
		Name:        FlagPrivateLinkLocation,
		Shorthand:   "L",
		Description: PrivateLinkLocationDescription,
		Type:        registry.KindString,
	},
	{
		Command:     PathCDNOriginCreate,
		Name:        FlagPrivateLinkApprovalMessage,
		Shorthand:   "m",
		Description: PrivateLinkMessageDescription,
		Type:        registry.KindString,
	},

	// cdn endpoint rule add
	nameArg(PathCDNEndpointRuleAdd, EndpointNameDescription),
	resourceGroupArg(PathCDNEndpointRuleAdd),
	profileNameArg(PathCDNEndpointRuleAdd),

	// cdn origin-group create
	nameArg(PathCDNOriginGroupCreate, OriginGroupNameDescription),
	resourceGroupArg(PathCDNOriginGroupCreate),
	profileNameArg(PathCDNOriginGroupCreate),
	endpointNameArg(PathCDNOriginGroupCreate),
	{
		Command:     PathCDNOriginGroupCreate,
		Name:        FlagOrigins,
		Description: OriginGroupOriginsDescription,
		Type:        registry.KindList,
		Required:    true,
	},
	{
		Command:     PathCDNOriginGroupCreate,
		Name:        FlagProbePath,
		Description: ProbePathDescription,
		Type:        registry.KindString,
	},
	{
		Command:     PathCDNOriginGroupCreate,
		Name:        FlagProbeMethod,
		Description: ProbeMethodDescription,
		Type:        registry.KindEnum,
		Choices:     args.ProbeRequestTypes,
	},
	{
		Command:     PathCDNOriginGroupCreate,
		Name:        FlagProbeProtocol,
		Description: ProbeProtocolDescription,
		Type:        registry.KindEnum,
		Choices:     args.ProbeProtocols,
	},
	{
		Command:     PathCDNOriginGroupCreate,
		Name:        FlagProbeInterval,
		Description: ProbeIntervalDescription + " Range: " + args.ProbeIntervalRange.String() + ".",
		Type:        registry.KindInt,
		Parser:      ParseProbeInterval,
	},
	{
		Command:     PathCDNOriginGroupCreate,
		Name:        FlagFailoverThreshold,
		Description: FailoverThresholdDescription + " Range: " + args.FailoverThresholdRange.String() + ".",
		Type:        registry.KindInt,
		Parser:      ParseFailoverThreshold,
	},
	{
		Command:     PathCDNOriginGroupCreate,
		Name:        FlagDetectionType,
		Description: DetectionTypeDescription,
		Type:        registry.KindEnum,
		Choices:     args.DetectionTypes,
	},

	// cdn custom-domain create
	nameArg(PathCDNCustomDomainCreate, CustomDomainNameDescription),
	resourceGroupArg(PathCDNCustomDomainCreate),
	profileNameArg(PathCDNCustomDomainCreate),
	endpointNameArg(PathCDNCustomDomainCreate),
	{
		Command:     PathCDNCustomDomainCreate,
		Name:        FlagHostname,
		Description: CustomDomainHostnameDescription,
		Type:        registry.KindString,
		Required:    true,
		Validator:   ValidateHostName,
	},

	// cdn custom-domain enable-https
	nameArg(PathCDNCustomDomainHTTPS, CustomDomainNameDescription),
	resourceGroupArg(PathCDNCustomDomainHTTPS),
	profileNameArg(PathCDNCustomDomainHTTPS),
	endpointNameArg(PathCDNCustomDomainHTTPS),
	{
		Command:      PathCDNCustomDomainHTTPS,
		Name:         FlagMinTLSVersion,
		Description:  MinTLSVersionDescription + " Allowed values: " + joinChoices(args.MinTLSVersions) + ".",
		Type:         registry.KindString,
		DefaultValue: args.MinTLSVersion12,
		Parser:       ParseMinTLSVersion,
	},
	{
		Command:      PathCDNCustomDomainHTTPS,
		Name:         FlagUserCertProtocolType,
		Description:  UserCertProtocolDescription,
		Type:         registry.KindEnum,
		DefaultValue: "ServerNameIndication",
		Choices:      args.CDNProtocolTypes,
	},
	{
		Command:      PathCDNCustomDomainHTTPS,
		Name:         FlagUserCertType,
		Description:  UserCertTypeDescription,
		Type:         registry.KindEnum,
		DefaultValue: "Dedicated",
		Choices:      args.CDNCertificateTypes,
	},

	// cdn waf policy create
	nameArg(PathCDNWAFPolicyCreate, WAFPolicyNameDescription),
	resourceGroupArg(PathCDNWAFPolicyCreate),
	{
		Command:      PathCDNWAFPolicyCreate,
		Name:         FlagSKU,
		Description:  SKUDescription,
		Type:         registry.KindEnum,
		DefaultValue: "Standard_Microsoft",
		Choices:      args.WAFSKUs,
	},
	{
		Command:      PathCDNWAFPolicyCreate,
		Name:         FlagMode,
		Description:  WAFModeDescription,
		Type:         registry.KindEnum,
		DefaultValue: "Detection",
		Choices:      args.WAFPolicyModes,
	},
	{
		Command:     PathCDNWAFPolicyCreate,
		Name:        FlagRedirectURL,
		Description: WAFRedirectURLDescription,
		Type:        registry.KindString,
		Validator:   ValidateURL,
	},
	{
		Command:     PathCDNWAFPolicyCreate,
		Name:        FlagBlockResponseStatusCode,
		Description: WAFBlockStatusDescription,
		Type:        registry.KindEnum,
		Choices:     []string{"200", "403", "405", "406", "429"},
	},
	{
		Command:     PathCDNWAFPolicyCreate,
		Name:        FlagDisabled,
		Description: WAFDisabledDescription,
		Type:        registry.KindBool,
	},

	// cdn waf policy managed-rule-set add
	policyNameArg(PathCDNWAFManagedRuleSetAdd),
	resourceGroupArg(PathCDNWAFManagedRuleSetAdd),
	{
		Command:     PathCDNWAFManagedRuleSetAdd,
		Name:        FlagRuleSetType,
		Description: WAFRuleSetTypeDescription,
		Type:        registry.KindString,
		Required:    true,
	},
	{
		Command:     PathCDNWAFManagedRuleSetAdd,
		Name:        FlagRuleSetVersion,
		Description: WAFRuleSetVersionDescription,
		Type:        registry.KindString,
		Required:    true,
	},

	// cdn waf policy managed-rule-set rule-group-override set
	policyNameArg(PathCDNWAFRuleGroupOverrideSet),
	resourceGroupArg(PathCDNWAFRuleGroupOverrideSet),
	{
		Command:     PathCDNWAFRuleGroupOverrideSet,
		Name:        FlagRuleSetType,
		Description: WAFRuleSetTypeDescription,
		Type:        registry.KindString,
		Required:    true,
	},
	{
		Command:     PathCDNWAFRuleGroupOverrideSet,
		Name:        FlagRuleSetVersion,
		Description: WAFRuleSetVersionDescription,
		Type:        registry.KindString,
		Required:    true,
	},
	{
		Command:     PathCDNWAFRuleGroupOverrideSet,
		Name:        FlagRuleOverride,
		Shorthand:   "r",
		Description: RuleOverrideDescription,
		Type:        registry.KindList,
		Required:    true,
		Repeated:    true,
		Parser:      ParseRuleOverride,
		Validator:   ValidateRuleOverride,
	},

	// cdn waf policy custom-rule set
	nameArg(PathCDNWAFCustomRuleSet, WAFRuleNameDescription),
	policyNameArg(PathCDNWAFCustomRuleSet),
	resourceGroupArg(PathCDNWAFCustomRuleSet),
	wafActionArg(PathCDNWAFCustomRuleSet),
	wafPriorityArg(PathCDNWAFCustomRuleSet),
	wafMatchConditionArg(PathCDNWAFCustomRuleSet),

	// cdn waf policy rate-limit-rule set
	nameArg(PathCDNWAFRateLimitRuleSet, WAFRuleNameDescription),
	policyNameArg(PathCDNWAFRateLimitRuleSet),
	resourceGroupArg(PathCDNWAFRateLimitRuleSet),
	wafActionArg(PathCDNWAFRateLimitRuleSet),
	wafPriorityArg(PathCDNWAFRateLimitRuleSet),
	wafMatchConditionArg(PathCDNWAFRateLimitRuleSet),
	{
		Command:     PathCDNWAFRateLimitRuleSet,
		Name:        FlagRateLimitThreshold,
		Description: RateLimitThresholdDescription,
		Type:        registry.KindInt,
		Required:    true,
		Parser:      ParseRateLimitThreshold,
	},
	{
		Command:     PathCDNWAFRateLimitRuleSet,
		Name:        FlagRateLimitDuration,
		Description: RateLimitDurationDescription,
		Type:        registry.KindEnum,
		Required:    true,
		Choices:     args.WAFRateLimitDurations,
	},
}
