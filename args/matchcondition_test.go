// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseMatchCondition(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    MatchCondition
		wantErr bool
	}{
		{
			name: "ip match",
			raw:  "RemoteAddr IPMatch 10.0.0.0/8,192.168.0.0/16",
			want: MatchCondition{Variable: "RemoteAddr", Operator: "IPMatch", Values: []string{"10.0.0.0/8", "192.168.0.0/16"}},
		},
		{
			name: "selector negate and transforms",
			raw:  "RequestHeader:User-Agent not Contains bot,crawler Lowercase,uppercase",
			want: MatchCondition{
				Variable:   "RequestHeader",
				Selector:   "User-Agent",
				Operator:   "Contains",
				Values:     []string{"bot", "crawler"},
				Transforms: []Transform{TransformLowercase, TransformUppercase},
				Negate:     true,
			},
		},
		{
			name: "quoted value with spaces",
			raw:  `QueryString Contains "a b"`,
			want: MatchCondition{Variable: "QueryString", Operator: "Contains", Values: []string{"a b"}},
		},
		{
			name: "any takes no values",
			raw:  "RequestUri Any",
			want: MatchCondition{Variable: "RequestUri", Operator: "Any"},
		},
		{
			name: "any with transform",
			raw:  "RequestUri any Lowercase",
			want: MatchCondition{Variable: "RequestUri", Operator: "any", Transforms: []Transform{TransformLowercase}},
		},
		{
			name: "duplicate transforms collapse",
			raw:  "Cookies:session Equal abc Lowercase,LOWERCASE",
			want: MatchCondition{Variable: "Cookies", Selector: "session", Operator: "Equal", Values: []string{"abc"}, Transforms: []Transform{TransformLowercase}},
		},
		{
			name: "unknown variable is left to the service",
			raw:  "NotAVariable SomeOperator x",
			want: MatchCondition{Variable: "NotAVariable", Operator: "SomeOperator", Values: []string{"x"}},
		},
		{
			name:    "empty",
			raw:     "  ",
			wantErr: true,
		},
		{
			name:    "missing operator",
			raw:     "RemoteAddr",
			wantErr: true,
		},
		{
			name:    "missing operator after not",
			raw:     "RemoteAddr not",
			wantErr: true,
		},
		{
			name:    "missing values",
			raw:     "RemoteAddr IPMatch",
			wantErr: true,
		},
		{
			name:    "empty selector",
			raw:     "RequestHeader: Contains x",
			wantErr: true,
		},
		{
			name:    "unknown transform",
			raw:     "RequestUri Contains x Trim",
			wantErr: true,
		},
		{
			name:    "too many sub-fields",
			raw:     "RequestUri Contains x Lowercase extra",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMatchCondition("match-condition", tt.raw)
			if tt.wantErr {
				require.True(t, IsMalformed(err), "expected malformed argument, got %v", err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseMatchCondition() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMatchConditionsStopsAtFirstError(t *testing.T) {
	got, err := ParseMatchConditions("match-condition", []string{"RemoteAddr IPMatch 1.2.3.4", "RequestUri Any"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	_, err = ParseMatchConditions("match-condition", []string{"RemoteAddr IPMatch 1.2.3.4", "RemoteAddr"})
	require.True(t, IsMalformed(err))
}

func TestValidateMatchCondition(t *testing.T) {
	require.NoError(t, ValidateMatchCondition(MatchCondition{Variable: "RemoteAddr", Operator: "IPMatch", Values: []string{"1.2.3.4"}}))
	require.NoError(t, ValidateMatchCondition(MatchCondition{Variable: "RequestUri", Operator: "Any"}))

	err := ValidateMatchCondition(MatchCondition{Variable: "RequestUri", Operator: "Any", Values: []string{"x"}})
	require.True(t, IsValidation(err))

	err = ValidateMatchCondition(MatchCondition{Variable: "RemoteAddr", Operator: "IPMatch"})
	require.True(t, IsValidation(err))

	mc, err := ParseMatchCondition("match-condition", "QueryString Contains a,,b")
	require.NoError(t, err)
	err = ValidateMatchConditions([]MatchCondition{mc})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, FieldMatchValues, verr.Field)
}
