// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package registry

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ParseFunc turns the raw tokens of one flag into a structured value. Flags
// that are not Repeated pass exactly one token.
type ParseFunc func(name string, raw []string) (interface{}, error)

// ValidateFunc checks one resolved value.
type ValidateFunc func(name string, value interface{}) error

// CrossValidateFunc checks invariants spanning several arguments of a command.
type CrossValidateFunc func(values Values) error

// Funcs is the static name to function mapping the table resolves Parser,
// Validator and CrossValidators against.
type Funcs struct {
	Parsers         map[string]ParseFunc
	Validators      map[string]ValidateFunc
	CrossValidators map[string]CrossValidateFunc
}

type boundArgument struct {
	Argument
	parse    ParseFunc
	validate ValidateFunc
}

type boundCommand struct {
	Command
	arguments []*boundArgument
	cross     []CrossValidateFunc
}

// Table is the result of NewTable. Its commands never change after
// construction.
type Table struct {
	commands map[string]*boundCommand
	logger   *zap.Logger
}

// NewTable checks the command and argument tables against each other and
// against funcs. The returned table is safe for concurrent reads.
// A nil logger discards rejections.
func NewTable(commands CommandList, arguments ArgumentList, funcs Funcs, logger *zap.Logger) (*Table, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Table{
		commands: make(map[string]*boundCommand, len(commands)),
		logger:   logger,
	}

	for i := range commands {
		c := commands[i]
		c.Path = normalizePath(c.Path)
		if c.Path == "" {
			return nil, errors.Wrap(ErrInvalidArgument, "command with empty path")
		}
		if _, ok := t.commands[c.Path]; ok {
			return nil, errors.Wrap(ErrDuplicateCommand, c.Path)
		}
		bc := &boundCommand{Command: c}
		for _, name := range c.CrossValidators {
			fn, ok := funcs.CrossValidators[name]
			if !ok {
				return nil, errors.Wrapf(ErrUnknownValidator, "cross validator %q of command %q", name, c.Path)
			}
			bc.cross = append(bc.cross, fn)
		}
		t.commands[c.Path] = bc
	}

	seen := map[string]bool{}
	for i := range arguments {
		a := arguments[i]
		a.Command = normalizePath(a.Command)
		c, ok := t.commands[a.Command]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownCommand, "argument --%s of %q", a.Name, a.Command)
		}
		if c.Group {
			return nil, errors.Wrapf(ErrInvalidArgument, "argument --%s on group command %q", a.Name, a.Command)
		}
		if err := checkArgument(&a); err != nil {
			return nil, err
		}
		if seen[a.key()] {
			return nil, errors.Wrap(ErrDuplicateArgument, a.key())
		}
		seen[a.key()] = true

		ba := &boundArgument{Argument: a}
		if a.Parser != "" {
			if ba.parse, ok = funcs.Parsers[a.Parser]; !ok {
				return nil, errors.Wrapf(ErrUnknownParser, "%q for %s", a.Parser, a.key())
			}
		}
		if a.Validator != "" {
			if ba.validate, ok = funcs.Validators[a.Validator]; !ok {
				return nil, errors.Wrapf(ErrUnknownValidator, "%q for %s", a.Validator, a.key())
			}
		}
		c.arguments = append(c.arguments, ba)
	}
	return t, nil
}

func checkArgument(a *Argument) error {
	if a.Name == "" || strings.HasPrefix(a.Name, "-") {
		return errors.Wrapf(ErrInvalidArgument, "bad name %q on %q", a.Name, a.Command)
	}
	if len(a.Shorthand) > 1 {
		return errors.Wrapf(ErrInvalidArgument, "shorthand %q of %s is longer than one letter", a.Shorthand, a.key())
	}
	if !a.Type.valid() {
		return errors.Wrapf(ErrInvalidArgument, "unknown kind %q of %s", a.Type, a.key())
	}
	if a.Type == KindEnum && len(a.Choices) == 0 {
		return errors.Wrapf(ErrInvalidArgument, "enum %s has no choices", a.key())
	}
	if len(a.Choices) > 0 && a.Type != KindEnum && a.Type != KindList {
		return errors.Wrapf(ErrInvalidArgument, "choices on %s kind %s", a.Type, a.key())
	}
	if a.Repeated && a.Parser == "" {
		return errors.Wrapf(ErrInvalidArgument, "repeated %s needs a parser", a.key())
	}
	if a.Required && a.DefaultValue != nil {
		return errors.Wrapf(ErrInvalidArgument, "required %s has a default", a.key())
	}
	return nil
}

// SetLogger replaces the logger rejected arguments are reported to. It must
// not race with Resolve.
func (t *Table) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	t.logger = logger
}

// Paths returns every command path, sorted.
func (t *Table) Paths() []string {
	paths := make([]string, 0, len(t.commands))
	for p := range t.commands {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Arguments returns a copy of the argument rows of path in declaration order.
func (t *Table) Arguments(path string) []Argument {
	c, ok := t.commands[normalizePath(path)]
	if !ok {
		return nil
	}
	out := make([]Argument, 0, len(c.arguments))
	for _, a := range c.arguments {
		out = append(out, a.Argument)
	}
	return out
}

// Command returns the command row of path.
func (t *Table) Command(path string) (Command, bool) {
	c, ok := t.commands[normalizePath(path)]
	if !ok {
		return Command{}, false
	}
	return c.Command, true
}

func normalizePath(path string) string {
	return strings.Join(strings.Fields(path), " ")
}
