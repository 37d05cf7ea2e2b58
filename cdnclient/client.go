// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package cdnclient

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cdn/armcdn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrNoSubscription is returned when a client is requested without a
// subscription id.
var ErrNoSubscription = errors.New("no subscription configured")

// OriginTarget addresses an origin below a CDN endpoint.
type OriginTarget struct {
	ResourceGroup string
	Profile       string
	Endpoint      string
	Name          string
}

// Submitter sends built payloads to the CDN management API.
type Submitter interface {
	CreateOrigin(ctx context.Context, target OriginTarget, origin armcdn.Origin) (*armcdn.Origin, error)
	CreateWAFPolicy(ctx context.Context, resourceGroup, name string, policy armcdn.WebApplicationFirewallPolicy) (*armcdn.WebApplicationFirewallPolicy, error)
}

// Client is the Submitter backed by the armcdn clients.
type Client struct {
	origins  *armcdn.OriginsClient
	policies *armcdn.PoliciesClient
	logger   *zap.Logger
}

var _ Submitter = (*Client)(nil)

// New creates a Client for subscriptionID authenticated with cred.
func New(subscriptionID string, cred azcore.TokenCredential, logger *zap.Logger) (*Client, error) {
	if subscriptionID == "" {
		return nil, ErrNoSubscription
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	origins, err := armcdn.NewOriginsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create origins client")
	}
	policies, err := armcdn.NewPoliciesClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create policies client")
	}
	return &Client{
		origins:  origins,
		policies: policies,
		logger:   logger.With(zap.String("subscription", subscriptionID)),
	}, nil
}

// NewDefault creates a Client using the default Azure credential chain
// (environment, managed identity, Azure CLI).
func NewDefault(subscriptionID string, logger *zap.Logger) (*Client, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get default azure credential")
	}
	return New(subscriptionID, cred, logger)
}

// CreateOrigin creates or replaces an origin and waits for the operation to
// finish.
func (c *Client) CreateOrigin(ctx context.Context, target OriginTarget, origin armcdn.Origin) (*armcdn.Origin, error) {
	c.logger.Info("creating origin",
		zap.String("resourceGroup", target.ResourceGroup),
		zap.String("profile", target.Profile),
		zap.String("endpoint", target.Endpoint),
		zap.String("origin", target.Name))
	poller, err := c.origins.BeginCreate(ctx, target.ResourceGroup, target.Profile, target.Endpoint, target.Name, origin, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create origin %s", target.Name)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed waiting for origin %s", target.Name)
	}
	return &resp.Origin, nil
}

// CreateWAFPolicy creates or replaces a CDN WAF policy and waits for the
// operation to finish.
func (c *Client) CreateWAFPolicy(ctx context.Context, resourceGroup, name string, policy armcdn.WebApplicationFirewallPolicy) (*armcdn.WebApplicationFirewallPolicy, error) {
	c.logger.Info("creating waf policy", zap.String("resourceGroup", resourceGroup), zap.String("policy", name))
	poller, err := c.policies.BeginCreateOrUpdate(ctx, resourceGroup, name, policy, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create waf policy %s", name)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed waiting for waf policy %s", name)
	}
	return &resp.WebApplicationFirewallPolicy, nil
}
