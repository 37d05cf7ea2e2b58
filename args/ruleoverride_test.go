// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRuleOverride(t *testing.T) {
	got, err := ParseRuleOverride("rule-override", "DefaultRuleSet;942100=Disabled;942110=Log")
	require.NoError(t, err)
	require.Equal(t, "DefaultRuleSet", got.RuleGroup)
	require.Equal(t, map[string]string{"942100": "Disabled", "942110": "Log"}, got.Overrides)
	require.Equal(t, []string{"942100", "942110"}, got.RuleIDs())
}

func TestParseRuleOverrideGroupOnly(t *testing.T) {
	got, err := ParseRuleOverride("rule-override", "SQLI")
	require.NoError(t, err)
	require.Equal(t, "SQLI", got.RuleGroup)
	require.Empty(t, got.Overrides)
	require.Empty(t, got.RuleIDs())
}

func TestParseRuleOverrideLastWriteWins(t *testing.T) {
	got, err := ParseRuleOverride("rule-override", "SQLI;942100=Disabled;942110=Log;942100=Block")
	require.NoError(t, err)
	require.Equal(t, "Block", got.Overrides["942100"])
	// the repeated id keeps its first position
	require.Equal(t, []string{"942100", "942110"}, got.RuleIDs())
}

func TestParseRuleOverrideMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "empty group", raw: ";942100=Disabled"},
		{name: "missing equals", raw: "SQLI;942100"},
		{name: "missing semicolon", raw: "SQLI 942100=Disabled"},
		{name: "empty rule id", raw: "SQLI;=Disabled"},
		{name: "empty state", raw: "SQLI;942100="},
		{name: "trailing separator", raw: "SQLI;942100=Disabled;"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRuleOverride("rule-override", tt.raw)
			require.True(t, IsMalformed(err), "expected malformed argument, got %v", err)
		})
	}
}

func TestMergeRuleOverrides(t *testing.T) {
	overrides, err := ParseRuleOverrides("rule-override", []string{
		"SQLI;942100=Disabled",
		"XSS;941100=Log",
		"SQLI;942100=Log;942200=Block",
	})
	require.NoError(t, err)
	require.Len(t, overrides, 3)

	merged := MergeRuleOverrides(overrides)
	require.Len(t, merged, 2)
	require.Equal(t, "SQLI", merged[0].RuleGroup)
	require.Equal(t, map[string]string{"942100": "Log", "942200": "Block"}, merged[0].Overrides)
	require.Equal(t, []string{"942100", "942200"}, merged[0].RuleIDs())
	require.Equal(t, "XSS", merged[1].RuleGroup)
}

func TestValidateRuleOverride(t *testing.T) {
	ok, err := ParseRuleOverride("rule-override", "SQLI;942100=disabled;942110=Redirect;942120=bLoCk")
	require.NoError(t, err)
	require.NoError(t, ValidateRuleOverride(ok))
	require.Equal(t, map[string]string{"942100": "Disabled", "942110": "Redirect", "942120": "Block"}, ok.Overrides)

	bad, err := ParseRuleOverride("rule-override", "SQLI;942100=Sometimes")
	require.NoError(t, err)
	err = ValidateRuleOverrides([]RuleOverride{ok, bad})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, FieldOverrideState, verr.Field)
	require.Equal(t, "Sometimes", verr.Value)
}

func TestRuleIDsWithoutSet(t *testing.T) {
	o := RuleOverride{RuleGroup: "SQLI", Overrides: map[string]string{"b": "Log", "a": "Log"}}
	require.Equal(t, []string{"a", "b"}, o.RuleIDs())
}
