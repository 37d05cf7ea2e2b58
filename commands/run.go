// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package commands

import (
	"encoding/json"
	"io"

	"github.com/Azure/azure-cdn-cli/cdnclient"
	"github.com/Azure/azure-cdn-cli/config"
	"github.com/Azure/azure-cdn-cli/registry"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"
)

// ErrUnknownOutput is returned for an output format other than json or yaml.
var ErrUnknownOutput = errors.New("unknown output format")

// SubmitterFactory creates the Submitter for a subscription.
type SubmitterFactory func(subscription string, logger *zap.Logger) (cdnclient.Submitter, error)

// Runner turns resolved arguments into a payload and either prints it or,
// with a subscription set, sends it to the service.
type Runner struct {
	Output       string
	Subscription string
	Logger       *zap.Logger
	NewSubmitter SubmitterFactory
}

// DefaultSubmitterFactory authenticates with the default Azure credential.
func DefaultSubmitterFactory(subscription string, logger *zap.Logger) (cdnclient.Submitter, error) {
	return cdnclient.NewDefault(subscription, logger)
}

// Run is a registry.RunFunc.
func (r *Runner) Run(cmd *cobra.Command, path string, values registry.Values) error {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("command", path))

	req := Request{Subscription: r.Subscription, Values: values}
	payload, err := Build(path, req)
	if err != nil {
		return err
	}

	if r.Subscription != "" && Submittable(path) {
		factory := r.NewSubmitter
		if factory == nil {
			factory = DefaultSubmitterFactory
		}
		s, err := factory(r.Subscription, logger)
		if err != nil {
			return errors.Wrap(err, "failed to create cdn client")
		}
		logger.Info("submitting payload")
		if payload, err = handlers[path].submit(cmd.Context(), s, req, payload); err != nil {
			return err
		}
	} else {
		logger.Debug("rendering payload", zap.String("output", r.Output))
	}
	return Render(cmd.OutOrStdout(), r.Output, payload)
}

// Render writes payload to w as indented JSON or as YAML. An empty format
// means JSON.
func Render(w io.Writer, format string, payload interface{}) error {
	var (
		b   []byte
		err error
	)
	switch format {
	case "", config.OutputJSON:
		b, err = json.MarshalIndent(payload, "", "  ")
		b = append(b, '\n')
	case config.OutputYAML:
		b, err = yaml.Marshal(payload)
	default:
		return errors.Wrap(ErrUnknownOutput, format)
	}
	if err != nil {
		return errors.Wrap(err, "failed to marshal payload")
	}
	_, err = w.Write(b)
	return errors.Wrap(err, "failed to write payload")
}
