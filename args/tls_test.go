// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseMinTLSVersion(t *testing.T) {
	tests := []struct {
		raw     string
		want    MinTLSVersion
		service string
		wantErr bool
	}{
		{raw: "none", want: MinTLSVersionNone, service: "None"},
		{raw: "NONE", want: MinTLSVersionNone, service: "None"},
		{raw: "1.0", want: MinTLSVersion10, service: "TLS10"},
		{raw: "1.2", want: MinTLSVersion12, service: "TLS12"},
		{raw: "TLS12", want: MinTLSVersion12, service: "TLS12"},
		{raw: "1.1", wantErr: true},
		{raw: "1.3", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseMinTLSVersion("min-tls-version", tt.raw)
			if tt.wantErr {
				require.True(t, IsValidation(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.service, got.ServiceValue())
		})
	}
}

func TestTimeRange(t *testing.T) {
	begin, err := ParseTime("date-time-begin", "2026-10-01T00:00:00Z")
	require.NoError(t, err)
	end, err := ParseTime("date-time-end", "2026-10-02T00:00:00Z")
	require.NoError(t, err)

	require.NoError(t, ValidateTimeRange(TimeRange{Begin: begin, End: end}))
	require.NoError(t, ValidateTimeRange(TimeRange{Begin: begin}))
	require.True(t, IsValidation(ValidateTimeRange(TimeRange{Begin: end, End: begin})))
	require.True(t, IsValidation(ValidateTimeRange(TimeRange{Begin: begin, End: begin})))

	_, err = ParseTime("date-time-begin", "yesterday")
	require.True(t, IsMalformed(err))
	_, err = ParseTime("date-time-begin", time.Now().Format(time.Kitchen))
	require.True(t, IsMalformed(err))
}

func TestSplitFields(t *testing.T) {
	got, err := splitFields(`a  "b c" 'd "e"' ""`)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b c", `d "e"`, ""}, got)

	_, err = splitFields(`a "b`)
	require.Error(t, err)

	got, err = splitFields("   ")
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = splitFields(`'it'\''s' a\ b "q\"x" c#d`)
	require.NoError(t, err)
	require.Equal(t, []string{"it's", "a b", `q"x`, "c#d"}, got)
}

func TestQuoteField(t *testing.T) {
	for _, s := range []string{"", "plain", "two words", `it's "ok" now`, `back\slash`, "#hash", "'", `"`} {
		got, err := splitFields(quoteField(s))
		require.NoError(t, err)
		require.Equal(t, []string{s}, got, "quoted as %s", quoteField(s))
	}
	require.Equal(t, "plain", quoteField("plain"))
}
