// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package cdnclient

import (
	"context"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cdn/armcdn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresSubscription(t *testing.T) {
	_, err := New("", nil, nil)
	require.ErrorIs(t, err, ErrNoSubscription)
}

func TestFakeSubmitter(t *testing.T) {
	fake := &FakeSubmitter{}
	target := OriginTarget{ResourceGroup: "rg", Profile: "prof", Endpoint: "ep", Name: "o1"}
	origin := armcdn.Origin{Properties: &armcdn.OriginProperties{HostName: to.Ptr("www.example.com")}}

	got, err := fake.CreateOrigin(context.Background(), target, origin)
	require.NoError(t, err)
	require.Equal(t, "www.example.com", *got.Properties.HostName)
	require.Equal(t, []FakeOriginCall{{Target: target, Origin: origin}}, fake.Origins)

	fake.Err = errors.New("throttled")
	_, err = fake.CreateWAFPolicy(context.Background(), "rg", "policy", armcdn.WebApplicationFirewallPolicy{})
	require.EqualError(t, err, "throttled")
	require.Len(t, fake.Policies, 1)
}
