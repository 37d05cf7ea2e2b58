// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRuleAction(t *testing.T) {
	tests := []struct {
		name      string
		action    RuleAction
		wantField string
	}{
		{
			name:   "cache expiration override",
			action: RuleAction{Name: ActionCacheExpiration, CacheBehavior: "Override", CacheDuration: "1.02:30:00"},
		},
		{
			name:   "cache expiration bypass needs no duration",
			action: RuleAction{Name: "cacheexpiration", CacheBehavior: "BypassCache"},
		},
		{
			name:      "cache expiration without behavior",
			action:    RuleAction{Name: ActionCacheExpiration},
			wantField: FieldCacheBehavior,
		},
		{
			name:      "cache duration malformed",
			action:    RuleAction{Name: ActionCacheExpiration, CacheBehavior: "SetIfMissing", CacheDuration: "25:00:00"},
			wantField: FieldCacheDuration,
		},
		{
			name:      "bypass with duration",
			action:    RuleAction{Name: ActionCacheExpiration, CacheBehavior: "BypassCache", CacheDuration: "00:10:00"},
			wantField: FieldCacheDuration,
		},
		{
			name:   "header delete needs no value",
			action: RuleAction{Name: ActionRequestHeader, HeaderAction: "Delete", HeaderName: "X-Debug"},
		},
		{
			name:      "header append needs value",
			action:    RuleAction{Name: ActionModifyResponseHeader, HeaderAction: "Append", HeaderName: "X-Cache"},
			wantField: FieldHeaderValue,
		},
		{
			name:      "header without name",
			action:    RuleAction{Name: ActionModifyRequestHeader, HeaderAction: "Overwrite", HeaderValue: "1"},
			wantField: FieldHeaderName,
		},
		{
			name:   "redirect",
			action: RuleAction{Name: ActionURLRedirect, RedirectType: "Moved", CustomPath: "/new", CustomQueryString: "a=1"},
		},
		{
			name:      "redirect without type",
			action:    RuleAction{Name: ActionURLRedirect},
			wantField: FieldRedirectType,
		},
		{
			name:      "redirect relative path",
			action:    RuleAction{Name: ActionURLRedirect, RedirectType: "Found", CustomPath: "new"},
			wantField: FieldCustomPath,
		},
		{
			name:      "redirect query string with marker",
			action:    RuleAction{Name: ActionURLRedirect, RedirectType: "Found", CustomQueryString: "?a=1"},
			wantField: FieldCustomQueryString,
		},
		{
			name:      "redirect fragment with marker",
			action:    RuleAction{Name: ActionURLRedirect, RedirectType: "Found", CustomFragment: "#top"},
			wantField: FieldCustomFragment,
		},
		{
			name:   "rewrite",
			action: RuleAction{Name: ActionURLRewrite, SourcePattern: "/old", Destination: "/new"},
		},
		{
			name:      "rewrite without destination",
			action:    RuleAction{Name: ActionURLRewrite, SourcePattern: "/old"},
			wantField: FieldDestination,
		},
		{
			name:      "query string include needs parameters",
			action:    RuleAction{Name: ActionCacheKeyQueryString, QueryStringBehavior: "Include"},
			wantField: FieldQueryParameters,
		},
		{
			name:   "query string include all",
			action: RuleAction{Name: ActionCacheKeyQueryString, QueryStringBehavior: "IncludeAll"},
		},
		{
			name:      "origin group override without group",
			action:    RuleAction{Name: ActionOriginGroupOverride},
			wantField: FieldOriginGroup,
		},
		{
			name:      "unknown action",
			action:    RuleAction{Name: "UrlSigning"},
			wantField: FieldActionName,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRuleAction(tt.action)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestRuleActionHeaderKinds(t *testing.T) {
	require.True(t, RuleAction{Name: ActionRequestHeader}.IsRequestHeader())
	require.True(t, RuleAction{Name: ActionModifyRequestHeader}.IsRequestHeader())
	require.False(t, RuleAction{Name: ActionModifyRequestHeader}.IsResponseHeader())
	require.True(t, RuleAction{Name: ActionResponseHeader}.IsResponseHeader())
}
