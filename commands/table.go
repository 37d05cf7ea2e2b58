// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package commands

import (
	"github.com/Azure/azure-cdn-cli/registry"
	"go.uber.org/zap"
)

var handlers = map[string]handler{
	PathCDNProfileCreate:           {build: buildCDNProfile},
	PathCDNEndpointCreate:          {build: buildCDNEndpoint},
	PathCDNOriginCreate:            {build: buildCDNOrigin, submit: submitCDNOrigin},
	PathCDNCustomDomainHTTPS:       {build: buildCDNCustomDomainHTTPS},
	PathCDNWAFPolicyCreate:         {build: buildCDNWAFPolicy, submit: submitCDNWAFPolicy},
	PathCDNEndpointRuleAdd:         {build: buildCDNEndpointRule},
	PathCDNOriginGroupCreate:       {build: buildCDNOriginGroup},
	PathCDNCustomDomainCreate:      {build: buildCDNCustomDomain},
	PathCDNWAFManagedRuleSetAdd:    {build: buildCDNWAFManagedRuleSet},
	PathCDNWAFRuleGroupOverrideSet: {build: buildCDNWAFManagedRuleSet},
	PathCDNWAFCustomRuleSet:        {build: buildCDNWAFCustomRule},
	PathCDNWAFRateLimitRuleSet:     {build: buildCDNWAFRateLimitRule},
	PathAFDProfileCreate:           {build: buildAFDProfile},
	PathAFDEndpointCreate:          {build: buildAFDEndpoint},
	PathAFDOriginGroupCreate:       {build: buildAFDOriginGroup},
	PathAFDOriginCreate:            {build: buildAFDOrigin},
	PathAFDCustomDomainCreate:      {build: buildAFDCustomDomain},
	PathAFDRouteCreate:             {build: buildAFDRoute},
	PathAFDRuleSetCreate:           {build: buildAFDRuleSet},
	PathAFDRuleCreate:              {build: buildAFDRule},
	PathAFDSecurityPolicyCreate:    {build: buildAFDSecurityPolicy},
	PathAFDSecretCreate:            {build: buildAFDSecret},
	PathAFDLogAnalyticMetricList:   {build: buildAFDMetricsQuery},
	PathAFDLogAnalyticRankList:     {build: buildAFDLogRankingQuery},
	PathAFDWAFLogAnalyticRankList:  {build: buildAFDRankingQuery},
}

// CommandRows returns every command row of the CLI.
func CommandRows() registry.CommandList {
	rows := make(registry.CommandList, 0, len(cdnCommands)+len(afdCommands))
	rows = append(rows, cdnCommands...)
	return append(rows, afdCommands...)
}

// ArgumentRows returns every argument row of the CLI.
func ArgumentRows() registry.ArgumentList {
	rows := make(registry.ArgumentList, 0, len(cdnArguments)+len(afdArguments))
	rows = append(rows, cdnArguments...)
	rows = append(rows, ruleArguments(PathCDNEndpointRuleAdd)...)
	rows = append(rows, afdArguments...)
	return append(rows, ruleArguments(PathAFDRuleCreate)...)
}

// NewTable builds the registry table of the CLI.
func NewTable(logger *zap.Logger) (*registry.Table, error) {
	return registry.NewTable(CommandRows(), ArgumentRows(), Funcs, logger)
}
