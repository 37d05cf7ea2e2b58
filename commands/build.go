// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-cdn-cli/cdnclient"
	"github.com/Azure/azure-cdn-cli/registry"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/pkg/errors"
)

// ErrNoBuilder is returned for a leaf command without a payload builder.
var ErrNoBuilder = errors.New("no payload builder for command")

const subscriptionPlaceholder = "{subscriptionId}"

// Request is the input of a payload builder.
type Request struct {
	Subscription string
	Values       registry.Values
}

type builder func(req Request) (interface{}, error)

// submitter sends a built payload and returns the service's view of it.
type submitter func(ctx context.Context, s cdnclient.Submitter, req Request, payload interface{}) (interface{}, error)

type handler struct {
	build  builder
	submit submitter
}

// Build returns the request payload of the leaf command at path.
func Build(path string, req Request) (interface{}, error) {
	h, ok := handlers[path]
	if !ok {
		return nil, errors.Wrap(ErrNoBuilder, path)
	}
	return h.build(req)
}

// Submittable reports whether path can be sent to the service.
func Submittable(path string) bool {
	return handlers[path].submit != nil
}

func optionalInt32(values registry.Values, name string) *int32 {
	if !values.Has(name) {
		return nil
	}
	return to.Ptr(int32(values.Int(name)))
}

func optionalString(values registry.Values, name string) *string {
	if s := values.String(name); s != "" {
		return to.Ptr(s)
	}
	return nil
}

func enabledState(disabled bool) string {
	if disabled {
		return "Disabled"
	}
	return "Enabled"
}

// profileResourceID returns the id of a child resource of a profile. Values
// that already look like resource ids are kept.
func profileResourceID(req Request, kind, name string) string {
	if strings.HasPrefix(name, "/") {
		return name
	}
	sub := req.Subscription
	if sub == "" {
		sub = subscriptionPlaceholder
	}
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Cdn/profiles/%s/%s/%s",
		sub, req.Values.String(FlagResourceGroup), req.Values.String(FlagProfileName), kind, name)
}
