// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package cdnclient

import (
	"strings"

	"github.com/Azure/azure-cdn-cli/args"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cdn/armcdn"
)

// OriginName derives the resource name of an inline endpoint origin from its
// host, since the origin token carries no name.
func OriginName(host string) string {
	return strings.ReplaceAll(host, ".", "-")
}

// DeepCreatedOrigin converts a parsed origin token into the inline origin of
// an endpoint.
func DeepCreatedOrigin(o args.OriginSpec) *armcdn.DeepCreatedOrigin {
	props := &armcdn.DeepCreatedOriginProperties{
		HostName:  to.Ptr(o.Host),
		HTTPPort:  to.Ptr(int32(o.HTTPPort)),
		HTTPSPort: to.Ptr(int32(o.HTTPSPort)),
		Enabled:   to.Ptr(true),
	}
	if o.HasPrivateLink() {
		props.PrivateLinkResourceID = to.Ptr(o.PrivateLinkResourceID)
		props.PrivateLinkLocation = to.Ptr(o.PrivateLinkLocation)
		if o.PrivateLinkMessage != "" {
			props.PrivateLinkApprovalMessage = to.Ptr(o.PrivateLinkMessage)
		}
	}
	return &armcdn.DeepCreatedOrigin{
		Name:       to.Ptr(OriginName(o.Host)),
		Properties: props,
	}
}

// DeepCreatedOrigins converts origins keeping their order.
func DeepCreatedOrigins(origins []args.OriginSpec) []*armcdn.DeepCreatedOrigin {
	out := make([]*armcdn.DeepCreatedOrigin, 0, len(origins))
	for _, o := range origins {
		out = append(out, DeepCreatedOrigin(o))
	}
	return out
}

// OriginProperties converts a standalone origin into its resource properties.
func OriginProperties(o args.OriginSpec) *armcdn.OriginProperties {
	props := &armcdn.OriginProperties{
		HostName:  to.Ptr(o.Host),
		HTTPPort:  to.Ptr(int32(o.HTTPPort)),
		HTTPSPort: to.Ptr(int32(o.HTTPSPort)),
	}
	if o.HasPrivateLink() {
		props.PrivateLinkResourceID = to.Ptr(o.PrivateLinkResourceID)
		props.PrivateLinkLocation = to.Ptr(o.PrivateLinkLocation)
		if o.PrivateLinkMessage != "" {
			props.PrivateLinkApprovalMessage = to.Ptr(o.PrivateLinkMessage)
		}
	}
	return props
}

// SharedPrivateLink converts the private link part of an AFD origin. It
// returns nil when the origin has none.
func SharedPrivateLink(o args.OriginSpec, groupID string) *armcdn.SharedPrivateLinkResourceProperties {
	if !o.HasPrivateLink() {
		return nil
	}
	pl := &armcdn.SharedPrivateLinkResourceProperties{
		PrivateLink:         &armcdn.ResourceReference{ID: to.Ptr(o.PrivateLinkResourceID)},
		PrivateLinkLocation: to.Ptr(o.PrivateLinkLocation),
	}
	if o.PrivateLinkMessage != "" {
		pl.RequestMessage = to.Ptr(o.PrivateLinkMessage)
	}
	if groupID != "" {
		pl.GroupID = to.Ptr(groupID)
	}
	return pl
}

// MatchCondition converts a parsed WAF match condition.
func MatchCondition(mc args.MatchCondition) *armcdn.MatchCondition {
	out := &armcdn.MatchCondition{
		MatchVariable:   to.Ptr(armcdn.WafMatchVariable(mc.Variable)),
		Operator:        to.Ptr(armcdn.Operator(mc.Operator)),
		MatchValue:      to.SliceOfPtrs(mc.Values...),
		NegateCondition: to.Ptr(mc.Negate),
	}
	if mc.Selector != "" {
		out.Selector = to.Ptr(mc.Selector)
	}
	for _, t := range mc.Transforms {
		out.Transforms = append(out.Transforms, to.Ptr(armcdn.TransformType(t)))
	}
	return out
}

// MatchConditions converts conditions keeping their order.
func MatchConditions(conditions []args.MatchCondition) []*armcdn.MatchCondition {
	out := make([]*armcdn.MatchCondition, 0, len(conditions))
	for _, mc := range conditions {
		out = append(out, MatchCondition(mc))
	}
	return out
}

// ManagedRuleGroupOverride converts a rule override. Enabled and Disabled set
// the rule state, any other state is an action on an enabled rule.
func ManagedRuleGroupOverride(o args.RuleOverride) *armcdn.ManagedRuleGroupOverride {
	out := &armcdn.ManagedRuleGroupOverride{RuleGroupName: to.Ptr(o.RuleGroup)}
	for _, id := range o.RuleIDs() {
		state := o.Overrides[id]
		if canonical, ok := args.Canonical(args.OverrideStates, state); ok {
			state = canonical
		}
		rule := &armcdn.ManagedRuleOverride{RuleID: to.Ptr(id)}
		switch state {
		case "Enabled", "Disabled":
			rule.EnabledState = to.Ptr(armcdn.ManagedRuleEnabledState(state))
		default:
			rule.EnabledState = to.Ptr(armcdn.ManagedRuleEnabledState("Enabled"))
			rule.Action = to.Ptr(armcdn.ActionType(state))
		}
		out.Rules = append(out.Rules, rule)
	}
	return out
}

// ManagedRuleGroupOverrides merges overrides of the same group, then converts.
func ManagedRuleGroupOverrides(overrides []args.RuleOverride) []*armcdn.ManagedRuleGroupOverride {
	merged := args.MergeRuleOverrides(overrides)
	out := make([]*armcdn.ManagedRuleGroupOverride, 0, len(merged))
	for _, o := range merged {
		out = append(out, ManagedRuleGroupOverride(o))
	}
	return out
}

// MinimumTLSVersion converts a CDN custom domain TLS version.
func MinimumTLSVersion(v args.MinTLSVersion) *armcdn.MinimumTLSVersion {
	return to.Ptr(armcdn.MinimumTLSVersion(v.ServiceValue()))
}

// AFDMinimumTLSVersion converts an AFD custom domain TLS version. AFD has no
// None setting and falls back to TLS 1.0.
func AFDMinimumTLSVersion(v args.MinTLSVersion) *armcdn.AfdMinimumTLSVersion {
	if v == args.MinTLSVersionNone {
		v = args.MinTLSVersion10
	}
	return to.Ptr(armcdn.AfdMinimumTLSVersion(v.ServiceValue()))
}

// DeliveryRuleAction converts a validated rule action. a.OriginGroup must
// already be a resource id. It returns nil for an unknown action name.
func DeliveryRuleAction(a args.RuleAction) armcdn.DeliveryRuleActionAutoGeneratedClassification {
	switch {
	case a.Name == args.ActionCacheExpiration:
		p := &armcdn.CacheExpirationActionParameters{
			CacheBehavior: to.Ptr(armcdn.CacheBehavior(a.CacheBehavior)),
			CacheType:     to.Ptr(armcdn.CacheTypeAll),
			TypeName:      to.Ptr(armcdn.CacheExpirationActionParametersTypeNameDeliveryRuleCacheExpirationActionParameters),
		}
		if a.CacheDuration != "" {
			p.CacheDuration = to.Ptr(a.CacheDuration)
		}
		return &armcdn.DeliveryRuleCacheExpirationAction{Name: to.Ptr(armcdn.DeliveryRuleActionCacheExpiration), Parameters: p}
	case a.IsRequestHeader():
		return &armcdn.DeliveryRuleRequestHeaderAction{Name: to.Ptr(armcdn.DeliveryRuleActionModifyRequestHeader), Parameters: headerParameters(a)}
	case a.IsResponseHeader():
		return &armcdn.DeliveryRuleResponseHeaderAction{Name: to.Ptr(armcdn.DeliveryRuleActionModifyResponseHeader), Parameters: headerParameters(a)}
	case a.Name == args.ActionURLRedirect:
		return &armcdn.URLRedirectAction{
			Name: to.Ptr(armcdn.DeliveryRuleActionURLRedirect),
			Parameters: &armcdn.URLRedirectActionParameters{
				RedirectType:        to.Ptr(armcdn.RedirectType(a.RedirectType)),
				DestinationProtocol: optional(armcdn.DestinationProtocol(a.RedirectProtocol)),
				CustomHostname:      optional(a.CustomHostname),
				CustomPath:          optional(a.CustomPath),
				CustomQueryString:   optional(a.CustomQueryString),
				CustomFragment:      optional(a.CustomFragment),
				TypeName:            to.Ptr(armcdn.URLRedirectActionParametersTypeNameDeliveryRuleURLRedirectActionParameters),
			},
		}
	case a.Name == args.ActionURLRewrite:
		return &armcdn.URLRewriteAction{
			Name: to.Ptr(armcdn.DeliveryRuleActionURLRewrite),
			Parameters: &armcdn.URLRewriteActionParameters{
				SourcePattern:         to.Ptr(a.SourcePattern),
				Destination:           to.Ptr(a.Destination),
				PreserveUnmatchedPath: to.Ptr(a.PreserveUnmatchedPath),
				TypeName:              to.Ptr(armcdn.URLRewriteActionParametersTypeNameDeliveryRuleURLRewriteActionParameters),
			},
		}
	case a.Name == args.ActionCacheKeyQueryString:
		return &armcdn.DeliveryRuleCacheKeyQueryStringAction{
			Name: to.Ptr(armcdn.DeliveryRuleActionCacheKeyQueryString),
			Parameters: &armcdn.CacheKeyQueryStringActionParameters{
				QueryStringBehavior: to.Ptr(armcdn.QueryStringBehavior(a.QueryStringBehavior)),
				QueryParameters:     optional(a.QueryParameters),
				TypeName:            to.Ptr(armcdn.CacheKeyQueryStringActionParametersTypeNameDeliveryRuleCacheKeyQueryStringBehaviorActionParameters),
			},
		}
	case a.Name == args.ActionOriginGroupOverride:
		return &armcdn.OriginGroupOverrideAction{
			Name: to.Ptr(armcdn.DeliveryRuleActionOriginGroupOverride),
			Parameters: &armcdn.OriginGroupOverrideActionParameters{
				OriginGroup: &armcdn.ResourceReference{ID: to.Ptr(a.OriginGroup)},
				TypeName:    to.Ptr(armcdn.OriginGroupOverrideActionParametersTypeNameDeliveryRuleOriginGroupOverrideActionParameters),
			},
		}
	}
	return nil
}

func headerParameters(a args.RuleAction) *armcdn.HeaderActionParameters {
	return &armcdn.HeaderActionParameters{
		HeaderAction: to.Ptr(armcdn.HeaderAction(a.HeaderAction)),
		HeaderName:   to.Ptr(a.HeaderName),
		Value:        optional(a.HeaderValue),
		TypeName:     to.Ptr(armcdn.HeaderActionParametersTypeNameDeliveryRuleHeaderActionParameters),
	}
}

// optional returns nil for the zero value of T.
func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
