// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package commands

import (
	"github.com/Azure/azure-cdn-cli/args"
	"github.com/Azure/azure-cdn-cli/cdnclient"
	"github.com/Azure/azure-cdn-cli/registry"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cdn/armcdn"
)

// RuleRequest is the delivery rule built by `afd rule create` and
// `cdn endpoint rule add`.
type RuleRequest struct {
	Name                    string                                                  `json:"name"`
	RuleSet                 string                                                  `json:"ruleSetName,omitempty"`
	Endpoint                string                                                  `json:"endpointName,omitempty"`
	Order                   int                                                     `json:"order"`
	MatchProcessingBehavior armcdn.MatchProcessingBehavior                          `json:"matchProcessingBehavior,omitempty"`
	Conditions              []args.MatchCondition                                   `json:"conditions,omitempty"`
	Actions                 []armcdn.DeliveryRuleActionAutoGeneratedClassification `json:"actions"`
}

// ruleArguments are the rows shared by every command that defines a delivery
// rule: its order, conditions and single action.
func ruleArguments(path string) registry.ArgumentList {
	str := func(name, description string) registry.Argument {
		return registry.Argument{Command: path, Name: name, Description: description, Type: registry.KindString}
	}
	enum := func(name, description string, choices []string) registry.Argument {
		return registry.Argument{Command: path, Name: name, Description: description, Type: registry.KindEnum, Choices: choices}
	}
	return registry.ArgumentList{
		namedArg(path, FlagRuleName, RuleNameDescription),
		{
			Command:     path,
			Name:        FlagOrder,
			Description: RuleOrderDescription + " Range: " + args.RuleOrderRange.String() + ".",
			Type:        registry.KindInt,
			Required:    true,
			Parser:      ParseRuleOrder,
		},
		{
			Command:     path,
			Name:        FlagMatchCondition,
			Shorthand:   "m",
			Description: MatchConditionDescription + " Match variables: " + joinChoices(args.DeliveryRuleMatchVariables) + ".",
			Type:        registry.KindList,
			Repeated:    true,
			Parser:      ParseMatchCondition,
			Validator:   ValidateMatchCondition,
		},
		{
			Command:     path,
			Name:        FlagActionName,
			Description: RuleActionDescription,
			Type:        registry.KindEnum,
			Required:    true,
			Choices:     args.RuleActionNames,
		},
		enum(FlagCacheBehavior, CacheBehaviorDescription, args.CacheBehaviors),
		str(FlagCacheDuration, CacheDurationDescription),
		enum(FlagHeaderAction, HeaderActionDescription, args.HeaderActions),
		str(FlagHeaderName, HeaderNameDescription),
		str(FlagHeaderValue, HeaderValueDescription),
		enum(FlagRedirectType, RedirectTypeDescription, args.RedirectTypes),
		enum(FlagRedirectProtocol, RedirectProtocolDescription, args.RedirectProtocols),
		str(FlagCustomHostname, CustomHostnameDescription),
		str(FlagCustomPath, CustomPathDescription),
		str(FlagCustomQueryString, CustomQueryStringDescription),
		str(FlagCustomFragment, CustomFragmentDescription),
		enum(FlagQueryStringBehavior, QueryStringBehaviorDescription, args.QueryStringBehaviors),
		str(FlagQueryParameters, QueryParametersDescription),
		str(FlagSourcePattern, SourcePatternDescription),
		str(FlagDestination, DestinationDescription),
		{
			Command:      path,
			Name:         FlagPreserveUnmatchedPath,
			Description:  PreserveUnmatchedPathDescription,
			Type:         registry.KindBool,
			DefaultValue: true,
		},
		str(FlagOriginGroup, OriginGroupOverrideDescription),
	}
}

// ruleAction collects the action flags. The origin group is left as given.
func ruleAction(values registry.Values) args.RuleAction {
	return args.RuleAction{
		Name:                  values.String(FlagActionName),
		CacheBehavior:         values.String(FlagCacheBehavior),
		CacheDuration:         values.String(FlagCacheDuration),
		HeaderAction:          values.String(FlagHeaderAction),
		HeaderName:            values.String(FlagHeaderName),
		HeaderValue:           values.String(FlagHeaderValue),
		RedirectType:          values.String(FlagRedirectType),
		RedirectProtocol:      values.String(FlagRedirectProtocol),
		CustomHostname:        values.String(FlagCustomHostname),
		CustomPath:            values.String(FlagCustomPath),
		CustomQueryString:     values.String(FlagCustomQueryString),
		CustomFragment:        values.String(FlagCustomFragment),
		QueryStringBehavior:   values.String(FlagQueryStringBehavior),
		QueryParameters:       values.String(FlagQueryParameters),
		SourcePattern:         values.String(FlagSourcePattern),
		Destination:           values.String(FlagDestination),
		PreserveUnmatchedPath: values.Bool(FlagPreserveUnmatchedPath),
		OriginGroup:           values.String(FlagOriginGroup),
	}
}

// buildRule fills the fields shared by AFD and classic rules. originGroupKind
// is the resource kind, relative to the profile, an origin group name resolves
// against.
func buildRule(req Request, originGroupKind string) *RuleRequest {
	v := req.Values
	conditions, _ := v[FlagMatchCondition].([]args.MatchCondition)
	action := ruleAction(v)
	if action.OriginGroup != "" {
		action.OriginGroup = profileResourceID(req, originGroupKind, action.OriginGroup)
	}
	return &RuleRequest{
		Name:       v.String(FlagRuleName),
		Order:      v.Int(FlagOrder),
		Conditions: conditions,
		Actions:    []armcdn.DeliveryRuleActionAutoGeneratedClassification{cdnclient.DeliveryRuleAction(action)},
	}
}

func buildAFDRule(req Request) (interface{}, error) {
	rule := buildRule(req, "originGroups")
	rule.RuleSet = req.Values.String(FlagRuleSetName)
	rule.MatchProcessingBehavior = armcdn.MatchProcessingBehavior(req.Values.String(FlagMatchProcessingBehavior))
	return rule, nil
}

func buildCDNEndpointRule(req Request) (interface{}, error) {
	endpoint := req.Values.String(FlagName)
	rule := buildRule(req, "endpoints/"+endpoint+"/originGroups")
	rule.Endpoint = endpoint
	return rule, nil
}
