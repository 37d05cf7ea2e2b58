// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package cdnclient

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cdn/armcdn"
)

// FakeSubmitter records the payloads it is given and returns them unchanged,
// or Err when set.
type FakeSubmitter struct {
	Err error

	Origins  []FakeOriginCall
	Policies []FakePolicyCall
}

type FakeOriginCall struct {
	Target OriginTarget
	Origin armcdn.Origin
}

type FakePolicyCall struct {
	ResourceGroup string
	Name          string
	Policy        armcdn.WebApplicationFirewallPolicy
}

var _ Submitter = (*FakeSubmitter)(nil)

func (f *FakeSubmitter) CreateOrigin(_ context.Context, target OriginTarget, origin armcdn.Origin) (*armcdn.Origin, error) {
	f.Origins = append(f.Origins, FakeOriginCall{Target: target, Origin: origin})
	if f.Err != nil {
		return nil, f.Err
	}
	return &origin, nil
}

func (f *FakeSubmitter) CreateWAFPolicy(_ context.Context, resourceGroup, name string, policy armcdn.WebApplicationFirewallPolicy) (*armcdn.WebApplicationFirewallPolicy, error) {
	f.Policies = append(f.Policies, FakePolicyCall{ResourceGroup: resourceGroup, Name: name, Policy: policy})
	if f.Err != nil {
		return nil, f.Err
	}
	return &policy, nil
}
