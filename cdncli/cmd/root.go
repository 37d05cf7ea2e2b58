// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package cmd

import (
	"fmt"
	"io"

	"github.com/Azure/azure-cdn-cli/commands"
	"github.com/Azure/azure-cdn-cli/config"
	"github.com/Azure/azure-cdn-cli/zaplog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	component = "azcdn"

	flagOutput       = "output"
	flagSubscription = "subscription"
	flagLogLevel     = "log-level"
)

// LoggerFactory builds the logger of one invocation and the func closing its
// sinks.
type LoggerFactory func(cfg *zaplog.Config, console io.Writer) (*zap.Logger, func(), error)

// Options lets tests replace the service client and the logger.
type Options struct {
	NewSubmitter commands.SubmitterFactory
	NewLogger    LoggerFactory
}

// NewRootCmd returns the azcdn root command with the full cdn and afd command
// tree bound below it. The returned func closes the log file and must be
// called once Execute returns, whether or not it failed.
func NewRootCmd(version string) (*cobra.Command, func(), error) {
	return newRootCmd(version, Options{NewSubmitter: commands.DefaultSubmitterFactory})
}

func newRootCmd(version string, opts Options) (*cobra.Command, func(), error) {
	table, err := commands.NewTable(nil)
	if err != nil {
		return nil, func() {}, errors.Wrap(err, "failed to build command table")
	}
	newLogger := opts.NewLogger
	if newLogger == nil {
		newLogger = zaplog.New
	}

	runner := &commands.Runner{NewSubmitter: opts.NewSubmitter}
	closeLog := func() {}
	cleanup := func() {
		closeLog()
		closeLog = func() {}
	}
	v := config.NewViper()

	rootCmd := &cobra.Command{
		Use:           component,
		Short:         "Manage Azure CDN and Azure Front Door resources.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, used, err := config.Load(v)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, closer, err := newLogger(&zaplog.Config{
				Level:       cfg.LogLevel,
				LogPath:     cfg.LogPath,
				MaxSizeInMB: cfg.LogMaxSizeMB,
				MaxBackups:  cfg.LogMaxBackups,
				Component:   component,
			}, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			closeLog = closer
			if used != "" {
				logger.Debug("using config file", zap.String("path", used))
			} else {
				logger.Debug("using default config")
			}

			table.SetLogger(logger)
			runner.Logger = logger
			runner.Output = cfg.Output
			runner.Subscription = cfg.Subscription
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringP(flagOutput, "o", "", fmt.Sprintf("Output format of the request payload, %s or %s.", config.OutputJSON, config.OutputYAML))
	pf.String(flagSubscription, "", "Subscription to submit supported requests to. Without it the payload is only printed.")
	pf.String(flagLogLevel, "", "Log level: debug, info, warn or error.")
	for key, flag := range map[string]string{
		"Output":       flagOutput,
		"Subscription": flagSubscription,
		"LogLevel":     flagLogLevel,
	} {
		if err := v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			return nil, cleanup, errors.Wrapf(err, "failed to bind --%s", flag)
		}
	}

	rootCmd.AddCommand(versionCmd(version))
	table.Bind(rootCmd, runner.Run)
	return rootCmd, cleanup, nil
}

func versionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of azcdn",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if version != "" {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Version not set.")
			}
		},
	}
}
