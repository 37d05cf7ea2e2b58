// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package cdnclient

import (
	"testing"

	"github.com/Azure/azure-cdn-cli/args"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cdn/armcdn"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDeepCreatedOrigins(t *testing.T) {
	origins := []args.OriginSpec{
		{Host: "www.example.com", HTTPPort: 80, HTTPSPort: 443},
		{
			Host:                  "pl.example.com",
			HTTPPort:              8080,
			HTTPSPort:             8443,
			PrivateLinkResourceID: "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Network/privateLinkServices/pls",
			PrivateLinkLocation:   "eastus",
			PrivateLinkMessage:    "please approve",
		},
	}

	got := DeepCreatedOrigins(origins)
	want := []*armcdn.DeepCreatedOrigin{
		{
			Name: to.Ptr("www-example-com"),
			Properties: &armcdn.DeepCreatedOriginProperties{
				HostName:  to.Ptr("www.example.com"),
				HTTPPort:  to.Ptr(int32(80)),
				HTTPSPort: to.Ptr(int32(443)),
				Enabled:   to.Ptr(true),
			},
		},
		{
			Name: to.Ptr("pl-example-com"),
			Properties: &armcdn.DeepCreatedOriginProperties{
				HostName:                   to.Ptr("pl.example.com"),
				HTTPPort:                   to.Ptr(int32(8080)),
				HTTPSPort:                  to.Ptr(int32(8443)),
				Enabled:                    to.Ptr(true),
				PrivateLinkResourceID:      to.Ptr("/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Network/privateLinkServices/pls"),
				PrivateLinkLocation:        to.Ptr("eastus"),
				PrivateLinkApprovalMessage: to.Ptr("please approve"),
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DeepCreatedOrigins() mismatch (-want +got):\n%s", diff)
	}
}

func TestSharedPrivateLink(t *testing.T) {
	require.Nil(t, SharedPrivateLink(args.OriginSpec{Host: "a"}, "blob"))

	pl := SharedPrivateLink(args.OriginSpec{
		Host:                  "a",
		PrivateLinkResourceID: "/id",
		PrivateLinkLocation:   "westus",
	}, "blob")
	require.NotNil(t, pl)
	require.Equal(t, "/id", *pl.PrivateLink.ID)
	require.Equal(t, "westus", *pl.PrivateLinkLocation)
	require.Equal(t, "blob", *pl.GroupID)
	require.Nil(t, pl.RequestMessage)
}

func TestMatchCondition(t *testing.T) {
	mc, err := args.ParseMatchCondition("match-condition", "RequestHeader:User-Agent not Contains bot,crawler Lowercase")
	require.NoError(t, err)

	got := MatchCondition(mc)
	want := &armcdn.MatchCondition{
		MatchVariable:   to.Ptr(armcdn.WafMatchVariable("RequestHeader")),
		Operator:        to.Ptr(armcdn.Operator("Contains")),
		Selector:        to.Ptr("User-Agent"),
		MatchValue:      []*string{to.Ptr("bot"), to.Ptr("crawler")},
		NegateCondition: to.Ptr(true),
		Transforms:      []*armcdn.TransformType{to.Ptr(armcdn.TransformType("Lowercase"))},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MatchCondition() mismatch (-want +got):\n%s", diff)
	}
}

func TestManagedRuleGroupOverrides(t *testing.T) {
	overrides, err := args.ParseRuleOverrides("rule-override", []string{
		"SQLI;942100=Disabled;942110=Block",
		"XSS;941100=Log",
		"SQLI;942100=Enabled",
	})
	require.NoError(t, err)

	got := ManagedRuleGroupOverrides(overrides)
	want := []*armcdn.ManagedRuleGroupOverride{
		{
			RuleGroupName: to.Ptr("SQLI"),
			Rules: []*armcdn.ManagedRuleOverride{
				{RuleID: to.Ptr("942100"), EnabledState: to.Ptr(armcdn.ManagedRuleEnabledState("Enabled"))},
				{RuleID: to.Ptr("942110"), EnabledState: to.Ptr(armcdn.ManagedRuleEnabledState("Enabled")), Action: to.Ptr(armcdn.ActionType("Block"))},
			},
		},
		{
			RuleGroupName: to.Ptr("XSS"),
			Rules: []*armcdn.ManagedRuleOverride{
				{RuleID: to.Ptr("941100"), EnabledState: to.Ptr(armcdn.ManagedRuleEnabledState("Enabled")), Action: to.Ptr(armcdn.ActionType("Log"))},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ManagedRuleGroupOverrides() mismatch (-want +got):\n%s", diff)
	}
}

func TestManagedRuleGroupOverrideStateCase(t *testing.T) {
	o, err := args.ParseRuleOverride("rule-override", "DefaultRuleSet;942100=disabled;942110=block")
	require.NoError(t, err)
	require.NoError(t, args.ValidateRuleOverride(o))

	got := ManagedRuleGroupOverride(o)
	require.Len(t, got.Rules, 2)
	require.Equal(t, armcdn.ManagedRuleEnabledState("Disabled"), *got.Rules[0].EnabledState)
	require.Nil(t, got.Rules[0].Action)
	require.Equal(t, armcdn.ManagedRuleEnabledState("Enabled"), *got.Rules[1].EnabledState)
	require.Equal(t, armcdn.ActionType("Block"), *got.Rules[1].Action)

	// overrides built without the parser are normalized too
	direct := args.NewRuleOverride("DefaultRuleSet")
	direct.Set("942200", "ENABLED")
	got = ManagedRuleGroupOverride(direct)
	require.Equal(t, armcdn.ManagedRuleEnabledState("Enabled"), *got.Rules[0].EnabledState)
	require.Nil(t, got.Rules[0].Action)
}

func TestMinimumTLSVersion(t *testing.T) {
	require.Equal(t, armcdn.MinimumTLSVersion("TLS12"), *MinimumTLSVersion(args.MinTLSVersion12))
	require.Equal(t, armcdn.MinimumTLSVersion("None"), *MinimumTLSVersion(args.MinTLSVersionNone))
	require.Equal(t, armcdn.AfdMinimumTLSVersion("TLS10"), *AFDMinimumTLSVersion(args.MinTLSVersionNone))
	require.Equal(t, armcdn.AfdMinimumTLSVersion("TLS12"), *AFDMinimumTLSVersion(args.MinTLSVersion12))
}

func TestDeliveryRuleAction(t *testing.T) {
	got := DeliveryRuleAction(args.RuleAction{
		Name:             args.ActionURLRedirect,
		RedirectType:     "Moved",
		RedirectProtocol: "Https",
		CustomPath:       "/new",
	})
	redirect, ok := got.(*armcdn.URLRedirectAction)
	require.True(t, ok, "got %T", got)
	want := &armcdn.URLRedirectActionParameters{
		RedirectType:        to.Ptr(armcdn.RedirectTypeMoved),
		DestinationProtocol: to.Ptr(armcdn.DestinationProtocolHTTPS),
		CustomPath:          to.Ptr("/new"),
		TypeName:            to.Ptr(armcdn.URLRedirectActionParametersTypeNameDeliveryRuleURLRedirectActionParameters),
	}
	if diff := cmp.Diff(want, redirect.Parameters); diff != "" {
		t.Errorf("DeliveryRuleAction() mismatch (-want +got):\n%s", diff)
	}

	header, ok := DeliveryRuleAction(args.RuleAction{Name: args.ActionRequestHeader, HeaderAction: "Delete", HeaderName: "X-Debug"}).(*armcdn.DeliveryRuleRequestHeaderAction)
	require.True(t, ok)
	require.Equal(t, armcdn.DeliveryRuleActionModifyRequestHeader, *header.Name)
	require.Nil(t, header.Parameters.Value)

	cache, ok := DeliveryRuleAction(args.RuleAction{Name: args.ActionCacheExpiration, CacheBehavior: "BypassCache"}).(*armcdn.DeliveryRuleCacheExpirationAction)
	require.True(t, ok)
	require.Nil(t, cache.Parameters.CacheDuration)
	require.Equal(t, armcdn.CacheTypeAll, *cache.Parameters.CacheType)

	override, ok := DeliveryRuleAction(args.RuleAction{Name: args.ActionOriginGroupOverride, OriginGroup: "/og"}).(*armcdn.OriginGroupOverrideAction)
	require.True(t, ok)
	require.Equal(t, "/og", *override.Parameters.OriginGroup.ID)

	require.Nil(t, DeliveryRuleAction(args.RuleAction{Name: "UrlSigning"}))
}
