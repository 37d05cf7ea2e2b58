// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package commands

import (
	"github.com/Azure/azure-cdn-cli/args"
	"github.com/Azure/azure-cdn-cli/registry"
)

var afdCommands = registry.CommandList{
	{Path: "afd", Short: "Manage Azure Front Door Standard/Premium.", Group: true},
	{Path: "afd profile", Short: "Manage AFD profiles.", Group: true},
	{Path: PathAFDProfileCreate, Short: "Create a new Azure Front Door Standard/Premium profile."},
	{Path: "afd endpoint", Short: "Manage AFD endpoints within the specified profile.", Group: true},
	{Path: PathAFDEndpointCreate, Short: "Create an AFD endpoint within the specified profile."},
	{Path: "afd origin-group", Short: "Manage origin groups under the specified profile.", Group: true},
	{Path: PathAFDOriginGroupCreate, Short: "Create a new origin group within the specified profile.", CrossValidators: []string{CrossSampleCounts}},
	{Path: "afd origin", Short: "Manage origins within the specified origin group.", Group: true},
	{Path: PathAFDOriginCreate, Short: "Create a new origin within the specified origin group.", CrossValidators: []string{CrossAFDOrigin}},
	{Path: "afd custom-domain", Short: "Manage custom domains within the specified profile.", Group: true},
	{Path: PathAFDCustomDomainCreate, Short: "Create a custom domain within the specified profile."},
	{Path: "afd route", Short: "Manage routes under an AFD endpoint.", Group: true},
	{Path: PathAFDRouteCreate, Short: "Create a new route with the specified route name under the specified subscription, resource group, profile, and AFD endpoint."},
	{Path: "afd rule-set", Short: "Manage rule set for the specified profile.", Group: true},
	{Path: PathAFDRuleSetCreate, Short: "Create a new rule set under the specified profile."},
	{Path: "afd rule", Short: "Manage delivery rules within the specified rule set.", Group: true},
	{Path: PathAFDRuleCreate, Short: "Create a new delivery rule within the specified rule set.", CrossValidators: []string{CrossRuleAction}},
	{Path: "afd security-policy", Short: "Manage security policies within the specified profile.", Group: true},
	{Path: PathAFDSecurityPolicyCreate, Short: "Create a new security policy within the specified profile."},
	{Path: "afd secret", Short: "Manage secrets within the specified profile.", Group: true},
	{Path: PathAFDSecretCreate, Short: "Create a new secret within the specified profile.", CrossValidators: []string{CrossSecret}},
	{Path: "afd log-analytic", Short: "Manage afd log analytic results.", Group: true},
	{Path: "afd log-analytic metric", Short: "Manage metric statistics.", Group: true},
	{Path: PathAFDLogAnalyticMetricList, Short: "List log analytics metrics of an AFD profile.", CrossValidators: []string{CrossTimeRange}},
	{Path: "afd log-analytic ranking", Short: "Manage ranking statistics.", Group: true},
	{Path: PathAFDLogAnalyticRankList, Short: "List log analytics ranking statistics of an AFD profile.", CrossValidators: []string{CrossTimeRange}},
	{Path: "afd waf-log-analytic", Short: "Manage afd WAF related log analytic results.", Group: true},
	{Path: "afd waf-log-analytic ranking", Short: "Manage WAF related ranking statistics.", Group: true},
	{Path: PathAFDWAFLogAnalyticRankList, Short: "List WAF ranking statistics of an AFD profile.", CrossValidators: []string{CrossTimeRange}},
}

var afdArguments = registry.ArgumentList{
	// afd profile create
	namedArg(PathAFDProfileCreate, FlagProfileName, ProfileNameDescription),
	resourceGroupArg(PathAFDProfileCreate),
	{
		Command:     PathAFDProfileCreate,
		Name:        FlagSKU,
		Description: SKUDescription,
		Type:        registry.KindEnum,
		Required:    true,
		Choices:     args.AFDSKUs,
	},
	{
		Command:      PathAFDProfileCreate,
		Name:         FlagOriginResponseTimeoutSeconds,
		Description:  ResponseTimeoutDescription + " Range: " + args.ResponseTimeoutRange.String() + ".",
		Type:         registry.KindInt,
		DefaultValue: 60,
		Parser:       ParseResponseTimeout,
	},

	// afd endpoint create
	namedArg(PathAFDEndpointCreate, FlagEndpointName, EndpointNameDescription),
	profileNameArg(PathAFDEndpointCreate),
	resourceGroupArg(PathAFDEndpointCreate),
	enabledStateArg(PathAFDEndpointCreate),

	// afd origin-group create
	namedArg(PathAFDOriginGroupCreate, FlagOriginGroupName, OriginGroupNameDescription),
	profileNameArg(PathAFDOriginGroupCreate),
	resourceGroupArg(PathAFDOriginGroupCreate),
	{
		Command:      PathAFDOriginGroupCreate,
		Name:         FlagProbeRequestType,
		Description:  ProbeRequestTypeDescription,
		Type:         registry.KindEnum,
		DefaultValue: "HEAD",
		Choices:      args.ProbeRequestTypes,
	},
	{
		Command:      PathAFDOriginGroupCreate,
		Name:         FlagProbeProtocol,
		Description:  ProbeProtocolDescription,
		Type:         registry.KindEnum,
		DefaultValue: "Http",
		Choices:      args.ProbeProtocols,
	},
	{
		Command:      PathAFDOriginGroupCreate,
		Name:         FlagProbeIntervalInSeconds,
		Description:  ProbeIntervalDescription + " Range: " + args.ProbeIntervalRange.String() + ".",
		Type:         registry.KindInt,
		DefaultValue: 100,
		Parser:       ParseProbeInterval,
	},
	{
		Command:      PathAFDOriginGroupCreate,
		Name:         FlagProbePath,
		Description:  ProbePathDescription,
		Type:         registry.KindString,
		DefaultValue: "/",
	},
	{
		Command:      PathAFDOriginGroupCreate,
		Name:         FlagSampleSize,
		Description:  SampleSizeDescription,
		Type:         registry.KindInt,
		DefaultValue: 4,
		Parser:       ParseSampleSize,
	},
	{
		Command:      PathAFDOriginGroupCreate,
		Name:         FlagSuccessfulSamplesRequired,
		Description:  SuccessfulSamplesDescription,
		Type:         registry.KindInt,
		DefaultValue: 3,
		Parser:       ParseSampleSize,
	},
	{
		Command:      PathAFDOriginGroupCreate,
		Name:         FlagAdditionalLatencyInMilliseconds,
		Description:  AdditionalLatencyDescription,
		Type:         registry.KindInt,
		DefaultValue: 50,
		Parser:       ParseAdditionalLatency,
	},

	// afd origin create
	namedArg(PathAFDOriginCreate, FlagOriginName, OriginNameDescription),
	namedArg(PathAFDOriginCreate, FlagOriginGroupName, OriginGroupNameDescription),
	profileNameArg(PathAFDOriginCreate),
	resourceGroupArg(PathAFDOriginCreate),
	hostNameArg(PathAFDOriginCreate),
	httpPortArg(PathAFDOriginCreate),
	httpsPortArg(PathAFDOriginCreate),
	{
		Command:     PathAFDOriginCreate,
		Name:        FlagOriginHostHeader,
		Description: OriginHostHeaderDescription,
		Type:        registry.KindString,
	},
	originPriorityArg(PathAFDOriginCreate),
	originWeightArg(PathAFDOriginCreate),
	enabledStateArg(PathAFDOriginCreate),
	{
		Command:     PathAFDOriginCreate,
		Name:        FlagEnablePrivateLink,
		Description: EnablePrivateLinkDescription,
		Type:        registry.KindBool,
	},
	{
		Command:     PathAFDOriginCreate,
		Name:        FlagPrivateLinkResource,
		Description: PrivateLinkResourceDescription,
		Type:        registry.KindString,
	},
	{
		Command:     PathAFDOriginCreate,
		Name:        FlagPrivateLinkLocation,
		Description: PrivateLinkLocationDescription,
		Type:        registry.KindString,
	},
	{
		Command:     PathAFDOriginCreate,
		Name:        FlagPrivateLinkRequestMessage,
		Description: PrivateLinkMessageDescription,
		Type:        registry.KindString,
	},
	{
		Command:     PathAFDOriginCreate,
		Name:        FlagPrivateLinkSubResourceType,
		Description: PrivateLinkSubResourceDescription,
		Type:        registry.KindEnum,
		Choices:     []string{"blob", "blob_secondary", "sites", "web"},
	},

	// afd custom-domain create
	namedArg(PathAFDCustomDomainCreate, FlagCustomDomainName, CustomDomainNameDescription),
	profileNameArg(PathAFDCustomDomainCreate),
	resourceGroupArg(PathAFDCustomDomainCreate),
	hostNameArg(PathAFDCustomDomainCreate),
	{
		Command:      PathAFDCustomDomainCreate,
		Name:         FlagCertificateType,
		Description:  CertificateTypeDescription,
		Type:         registry.KindEnum,
		DefaultValue: "ManagedCertificate",
		Choices:      args.CertificateTypes,
	},
	{
		Command:      PathAFDCustomDomainCreate,
		Name:         FlagMinimumTLSVersion,
		Description:  MinTLSVersionDescription + " Allowed values: " + joinChoices(args.MinTLSVersions) + ".",
		Type:         registry.KindString,
		DefaultValue: args.MinTLSVersion12,
		Parser:       ParseMinTLSVersion,
	},

	// afd route create
	namedArg(PathAFDRouteCreate, FlagRouteName, RouteNameDescription),
	endpointNameArg(PathAFDRouteCreate),
	profileNameArg(PathAFDRouteCreate),
	resourceGroupArg(PathAFDRouteCreate),
	{
		Command:     PathAFDRouteCreate,
		Name:        FlagOriginGroup,
		Description: OriginGroupNameDescription,
		Type:        registry.KindString,
		Required:    true,
	},
	{
		Command:     PathAFDRouteCreate,
		Name:        FlagSupportedProtocols,
		Description: SupportedProtocolsDescription,
		Type:        registry.KindList,
		Required:    true,
		Choices:     args.SupportedProtocols,
	},
	{
		Command:      PathAFDRouteCreate,
		Name:         FlagPatternsToMatch,
		Description:  PatternsToMatchDescription,
		Type:         registry.KindList,
		DefaultValue: []string{"/*"},
	},
	{
		Command:     PathAFDRouteCreate,
		Name:        FlagForwardingProtocol,
		Description: ForwardingProtocolDescription,
		Type:        registry.KindEnum,
		Required:    true,
		Choices:     args.ForwardingProtocols,
	},
	{
		Command:     PathAFDRouteCreate,
		Name:        FlagHTTPSRedirect,
		Description: HTTPSRedirectDescription,
		Type:        registry.KindEnum,
		Required:    true,
		Choices:     args.EnabledStates,
	},
	{
		Command:     PathAFDRouteCreate,
		Name:        FlagLinkToDefaultDomain,
		Description: LinkToDefaultDomainDescription,
		Type:        registry.KindEnum,
		Required:    true,
		Choices:     args.EnabledStates,
	},
	{
		Command:     PathAFDRouteCreate,
		Name:        FlagRuleSets,
		Description: RuleSetsDescription,
		Type:        registry.KindList,
	},
	{
		Command:     PathAFDRouteCreate,
		Name:        FlagCustomDomains,
		Description: CustomDomainsDescription,
		Type:        registry.KindList,
	},
	enabledStateArg(PathAFDRouteCreate),

	// afd rule-set create
	namedArg(PathAFDRuleSetCreate, FlagRuleSetName, RuleSetNameDescription),
	profileNameArg(PathAFDRuleSetCreate),
	resourceGroupArg(PathAFDRuleSetCreate),

	// afd rule create
	namedArg(PathAFDRuleCreate, FlagRuleSetName, RuleSetNameDescription),
	profileNameArg(PathAFDRuleCreate),
	resourceGroupArg(PathAFDRuleCreate),
	{
		Command:      PathAFDRuleCreate,
		Name:         FlagMatchProcessingBehavior,
		Description:  MatchProcessingBehaviorDescription,
		Type:         registry.KindEnum,
		DefaultValue: "Continue",
		Choices:      args.MatchProcessingBehaviors,
	},

	// afd security-policy create
	namedArg(PathAFDSecurityPolicyCreate, FlagSecurityPolicyName, SecurityPolicyNameDescription),
	profileNameArg(PathAFDSecurityPolicyCreate),
	resourceGroupArg(PathAFDSecurityPolicyCreate),
	{
		Command:     PathAFDSecurityPolicyCreate,
		Name:        FlagWAFPolicy,
		Description: WAFPolicyIDDescription,
		Type:        registry.KindString,
		Required:    true,
		Validator:   ValidateResourceID,
	},
	{
		Command:     PathAFDSecurityPolicyCreate,
		Name:        FlagDomains,
		Description: DomainsDescription,
		Type:        registry.KindList,
		Required:    true,
		Validator:   ValidateResourceID,
	},

	// afd secret create
	namedArg(PathAFDSecretCreate, FlagSecretName, SecretNameDescription),
	profileNameArg(PathAFDSecretCreate),
	resourceGroupArg(PathAFDSecretCreate),
	{
		Command:     PathAFDSecretCreate,
		Name:        FlagSecretSource,
		Description: SecretSourceDescription,
		Type:        registry.KindString,
		Required:    true,
		Validator:   ValidateResourceID,
	},
	{
		Command:     PathAFDSecretCreate,
		Name:        FlagSecretVersion,
		Description: SecretVersionDescription,
		Type:        registry.KindString,
	},
	{
		Command:     PathAFDSecretCreate,
		Name:        FlagUseLatestVersion,
		Description: UseLatestVersionDescription,
		Type:        registry.KindBool,
	},

	// afd log-analytic metric list
	profileNameArg(PathAFDLogAnalyticMetricList),
	resourceGroupArg(PathAFDLogAnalyticMetricList),
	{
		Command:     PathAFDLogAnalyticMetricList,
		Name:        FlagMetrics,
		Description: MetricsDescription,
		Type:        registry.KindList,
		Required:    true,
		Choices:     args.LogAnalyticsMetrics,
	},
	dateTimeBeginArg(PathAFDLogAnalyticMetricList),
	dateTimeEndArg(PathAFDLogAnalyticMetricList),
	{
		Command:     PathAFDLogAnalyticMetricList,
		Name:        FlagGranularity,
		Description: GranularityDescription,
		Type:        registry.KindEnum,
		Required:    true,
		Choices:     args.LogAnalyticsGranularities,
	},
	{
		Command:     PathAFDLogAnalyticMetricList,
		Name:        FlagCustomDomains,
		Description: CustomDomainsDescription,
		Type:        registry.KindList,
		Required:    true,
	},
	{
		Command:     PathAFDLogAnalyticMetricList,
		Name:        FlagProtocols,
		Description: ProtocolsDescription,
		Type:        registry.KindList,
		Required:    true,
		Choices:     args.LogAnalyticsProtocols,
	},

	// afd log-analytic ranking list
	profileNameArg(PathAFDLogAnalyticRankList),
	resourceGroupArg(PathAFDLogAnalyticRankList),
	{
		Command:     PathAFDLogAnalyticRankList,
		Name:        FlagMetrics,
		Description: RankingMetricsDescription,
		Type:        registry.KindList,
		Required:    true,
		Choices:     args.LogRankingMetrics,
	},
	{
		Command:     PathAFDLogAnalyticRankList,
		Name:        FlagRankings,
		Description: RankingsDescription,
		Type:        registry.KindList,
		Required:    true,
		Choices:     args.LogRankings,
	},
	dateTimeBeginArg(PathAFDLogAnalyticRankList),
	dateTimeEndArg(PathAFDLogAnalyticRankList),
	{
		Command:      PathAFDLogAnalyticRankList,
		Name:         FlagMaxRanking,
		Description:  MaxRankingDescription,
		Type:         registry.KindInt,
		DefaultValue: 5,
		Parser:       ParseMaxRanking,
	},
	{
		Command:     PathAFDLogAnalyticRankList,
		Name:        FlagCustomDomains,
		Description: CustomDomainsDescription,
		Type:        registry.KindList,
	},

	// afd waf-log-analytic ranking list
	profileNameArg(PathAFDWAFLogAnalyticRankList),
	resourceGroupArg(PathAFDWAFLogAnalyticRankList),
	{
		Command:     PathAFDWAFLogAnalyticRankList,
		Name:        FlagMetrics,
		Description: MetricsDescription,
		Type:        registry.KindList,
		Required:    true,
		Choices:     args.WAFLogAnalyticsMetrics,
	},
	{
		Command:     PathAFDWAFLogAnalyticRankList,
		Name:        FlagRankings,
		Description: RankingsDescription,
		Type:        registry.KindList,
		Required:    true,
		Choices:     args.WAFRankings,
	},
	dateTimeBeginArg(PathAFDWAFLogAnalyticRankList),
	dateTimeEndArg(PathAFDWAFLogAnalyticRankList),
	{
		Command:      PathAFDWAFLogAnalyticRankList,
		Name:         FlagMaxRanking,
		Description:  MaxRankingDescription,
		Type:         registry.KindInt,
		DefaultValue: 5,
		Parser:       ParseMaxRanking,
	},
	{
		Command:     PathAFDWAFLogAnalyticRankList,
		Name:        FlagActions,
		Description: ActionsDescription,
		Type:        registry.KindList,
		Choices:     args.WAFActions,
	},
}

func dateTimeBeginArg(path string) registry.Argument {
	return registry.Argument{
		Command:     path,
		Name:        FlagDateTimeBegin,
		Description: DateTimeBeginDescription,
		Type:        registry.KindString,
		Required:    true,
		Parser:      ParseTime,
	}
}

func dateTimeEndArg(path string) registry.Argument {
	return registry.Argument{
		Command:     path,
		Name:        FlagDateTimeEnd,
		Description: DateTimeEndDescription,
		Type:        registry.KindString,
		Parser:      ParseTime,
	}
}
