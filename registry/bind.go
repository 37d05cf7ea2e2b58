// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package registry

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-cdn-cli/args"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// RunFunc handles a command once its arguments resolved.
type RunFunc func(cmd *cobra.Command, path string, values Values) error

// Bind adds every command of the table below root and registers its flags.
// Leaf commands resolve their arguments and hand them to run.
func (t *Table) Bind(root *cobra.Command, run RunFunc) {
	for _, path := range t.Paths() {
		c := t.commands[path]
		cmd := t.ensure(root, path)
		cmd.Short = c.Short
		cmd.Long = c.Long
		if c.Group {
			continue
		}

		path := path
		cmd.Args = cobra.NoArgs
		cmd.RunE = func(cmd *cobra.Command, _ []string) error {
			values, err := t.Resolve(cmd, path)
			if err != nil {
				return err
			}
			return run(cmd, path, values)
		}
		for _, a := range c.arguments {
			registerFlag(cmd, &a.Argument)
		}
	}
}

// ensure walks path below root, creating group commands as needed.
func (t *Table) ensure(root *cobra.Command, path string) *cobra.Command {
	parent := root
	for _, word := range strings.Fields(path) {
		var next *cobra.Command
		for _, child := range parent.Commands() {
			if child.Name() == word {
				next = child
				break
			}
		}
		if next == nil {
			next = &cobra.Command{Use: word}
			parent.AddCommand(next)
		}
		parent = next
	}
	return parent
}

func registerFlag(cmd *cobra.Command, a *Argument) {
	fs := cmd.Flags()
	usage := a.usage()
	switch {
	case a.Parser != "" && a.Repeated:
		fs.StringArrayP(a.Name, a.Shorthand, nil, usage)
	case a.Parser != "":
		fs.StringP(a.Name, a.Shorthand, "", usage)
	case a.Type == KindInt:
		def, _ := a.DefaultValue.(int)
		fs.IntP(a.Name, a.Shorthand, def, usage)
	case a.Type == KindBool:
		def, _ := a.DefaultValue.(bool)
		fs.BoolP(a.Name, a.Shorthand, def, usage)
	case a.Type == KindList:
		def, _ := a.DefaultValue.([]string)
		fs.StringSliceP(a.Name, a.Shorthand, def, usage)
	default:
		def, _ := a.DefaultValue.(string)
		fs.StringP(a.Name, a.Shorthand, def, usage)
	}
	if a.Required {
		_ = cmd.MarkFlagRequired(a.Name)
	}
}

// Resolve coerces, parses and validates every argument of path from the flags
// of cmd, then runs the command's cross validators. Nothing is returned unless
// every step succeeded.
func (t *Table) Resolve(cmd *cobra.Command, path string) (Values, error) {
	c, ok := t.commands[normalizePath(path)]
	if !ok || c.Group {
		return nil, errors.Wrap(ErrUnknownCommand, path)
	}

	values := Values{}
	fs := cmd.Flags()
	for _, a := range c.arguments {
		flag := fs.Lookup(a.Name)
		if flag == nil {
			return nil, errors.Wrapf(ErrUnknownCommand, "flag --%s is not bound on %q", a.Name, path)
		}
		if !flag.Changed {
			if a.Required {
				return nil, errors.Errorf("required flag --%s not set", a.Name)
			}
			if a.DefaultValue != nil {
				values[a.Name] = a.DefaultValue
			}
			continue
		}

		value, err := resolveOne(fs, a)
		if err != nil {
			t.logger.Debug("argument rejected",
				zap.String("command", path),
				zap.String("argument", a.Name),
				zap.Error(err))
			return nil, err
		}
		values[a.Name] = value
	}

	for _, cross := range c.cross {
		if err := cross(values); err != nil {
			t.logger.Debug("command rejected", zap.String("command", path), zap.Error(err))
			return nil, err
		}
	}
	return values, nil
}

func resolveOne(fs *pflag.FlagSet, a *boundArgument) (interface{}, error) {
	var (
		value interface{}
		err   error
	)
	if a.parse != nil {
		raw, rerr := rawTokens(fs, a)
		if rerr != nil {
			return nil, rerr
		}
		if value, err = a.parse(a.Name, raw); err != nil {
			return nil, err
		}
	} else if value, err = coerce(fs, a); err != nil {
		return nil, err
	}

	if a.validate != nil {
		if err := a.validate(a.Name, value); err != nil {
			return nil, err
		}
	}
	return value, nil
}

func rawTokens(fs *pflag.FlagSet, a *boundArgument) ([]string, error) {
	if a.Repeated {
		raw, err := fs.GetStringArray(a.Name)
		return raw, errors.Wrapf(err, "reading --%s", a.Name)
	}
	raw, err := fs.GetString(a.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "reading --%s", a.Name)
	}
	return []string{raw}, nil
}

func coerce(fs *pflag.FlagSet, a *boundArgument) (interface{}, error) {
	switch a.Type {
	case KindInt:
		v, err := fs.GetInt(a.Name)
		return v, errors.Wrapf(err, "reading --%s", a.Name)
	case KindBool:
		v, err := fs.GetBool(a.Name)
		return v, errors.Wrapf(err, "reading --%s", a.Name)
	case KindList:
		v, err := fs.GetStringSlice(a.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "reading --%s", a.Name)
		}
		if len(a.Choices) == 0 {
			return v, nil
		}
		out := make([]string, 0, len(v))
		for _, s := range v {
			c, err := choose(a, s)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		return out, nil
	case KindEnum:
		v, err := fs.GetString(a.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "reading --%s", a.Name)
		}
		return choose(a, v)
	default:
		v, err := fs.GetString(a.Name)
		return v, errors.Wrapf(err, "reading --%s", a.Name)
	}
}

func choose(a *boundArgument, value string) (string, error) {
	c, ok := args.Canonical(a.Choices, strings.TrimSpace(value))
	if !ok {
		return "", &args.ValidationError{
			Field:      a.Name,
			Value:      value,
			Constraint: fmt.Sprintf("must be one of %s", strings.Join(a.Choices, ", ")),
		}
	}
	return c, nil
}
