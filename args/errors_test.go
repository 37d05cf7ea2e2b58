// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	m := malformed("origin", "x y", "bad %s", "arity")
	require.Equal(t, `argument --origin: malformed value "x y": bad arity`, m.Error())
	require.True(t, IsMalformed(errors.Wrap(m, "wrapped")))
	require.False(t, IsValidation(m))

	v := invalid("priority", "0", "must be in range %s", Range{Min: 1, Max: 100})
	require.Equal(t, `invalid priority "0": must be in range [1,100]`, v.Error())
	require.True(t, IsValidation(errors.Wrap(v, "wrapped")))
	require.False(t, IsMalformed(v))

	require.Equal(t, "invalid private_link_location: required", invalid(FieldPrivateLinkLocation, "", "required").Error())
}
