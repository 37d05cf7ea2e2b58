// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package registry

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/Azure/azure-cdn-cli/args"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const testPath = "cdn origin create"

var testFuncs = Funcs{
	Parsers: map[string]ParseFunc{
		"origin": func(name string, raw []string) (interface{}, error) {
			o, err := args.ParseOrigins(name, raw)
			if err != nil {
				return nil, err
			}
			return o, nil
		},
		"priority": func(name string, raw []string) (interface{}, error) {
			p, err := args.ParsePriority(name, raw[0], args.Range{Min: 1, Max: 100})
			if err != nil {
				return nil, err
			}
			return p, nil
		},
	},
	Validators: map[string]ValidateFunc{
		"origin": func(_ string, value interface{}) error {
			return args.ValidateOrigins(value.([]args.OriginSpec))
		},
	},
	CrossValidators: map[string]CrossValidateFunc{
		"name-not-host": func(values Values) error {
			if values.Has("origin") && values.String("name") == values["origin"].([]args.OriginSpec)[0].Host {
				return &args.ValidationError{Field: "name", Value: values.String("name"), Constraint: "must differ from the first origin host"}
			}
			return nil
		},
	},
}

var testCommands = CommandList{
	{Path: "cdn", Short: "Manage CDN", Group: true},
	{Path: "cdn origin", Short: "Manage origins", Group: true},
	{Path: testPath, Short: "Create an origin", CrossValidators: []string{"name-not-host"}},
}

var testArguments = ArgumentList{
	{Command: testPath, Name: "name", Shorthand: "n", Description: "Name.", Type: KindString, Required: true},
	{Command: testPath, Name: "origin", Description: "Origin.", Type: KindString, Repeated: true, Parser: "origin", Validator: "origin"},
	{Command: testPath, Name: "priority", Description: "Priority.", Type: KindInt, Parser: "priority", DefaultValue: 1},
	{Command: testPath, Name: "weight", Description: "Weight.", Type: KindInt},
	{Command: testPath, Name: "disabled", Description: "Disable.", Type: KindBool},
	{Command: testPath, Name: "protocol", Description: "Protocol.", Type: KindEnum, Choices: []string{"Http", "Https"}},
	{Command: testPath, Name: "protocols", Description: "Protocols.", Type: KindList, Choices: []string{"Http", "Https"}},
	{Command: testPath, Name: "tags", Description: "Tags.", Type: KindList},
}

func newTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(testCommands, testArguments, testFuncs, nil)
	require.NoError(t, err)
	return table
}

func execute(t *testing.T, table *Table, argv ...string) (Values, error) {
	t.Helper()
	var got Values
	root := &cobra.Command{Use: "azcdn", SilenceUsage: true, SilenceErrors: true}
	table.Bind(root, func(_ *cobra.Command, path string, values Values) error {
		require.Equal(t, testPath, path)
		got = values
		return nil
	})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(argv)
	err := root.Execute()
	return got, err
}

func TestNewTableErrors(t *testing.T) {
	tests := []struct {
		name      string
		commands  CommandList
		arguments ArgumentList
		want      error
	}{
		{
			name:     "duplicate command",
			commands: CommandList{{Path: "a b"}, {Path: " a  b "}},
			want:     ErrDuplicateCommand,
		},
		{
			name:      "unknown command",
			commands:  CommandList{{Path: "a"}},
			arguments: ArgumentList{{Command: "b", Name: "x", Type: KindString}},
			want:      ErrUnknownCommand,
		},
		{
			name:      "argument on group",
			commands:  CommandList{{Path: "a", Group: true}},
			arguments: ArgumentList{{Command: "a", Name: "x", Type: KindString}},
			want:      ErrInvalidArgument,
		},
		{
			name:     "duplicate argument",
			commands: CommandList{{Path: "a"}},
			arguments: ArgumentList{
				{Command: "a", Name: "x", Type: KindString},
				{Command: "a", Name: "x", Type: KindInt},
			},
			want: ErrDuplicateArgument,
		},
		{
			name:      "unknown parser",
			commands:  CommandList{{Path: "a"}},
			arguments: ArgumentList{{Command: "a", Name: "x", Type: KindString, Parser: "nope"}},
			want:      ErrUnknownParser,
		},
		{
			name:      "unknown validator",
			commands:  CommandList{{Path: "a"}},
			arguments: ArgumentList{{Command: "a", Name: "x", Type: KindString, Validator: "nope"}},
			want:      ErrUnknownValidator,
		},
		{
			name:     "unknown cross validator",
			commands: CommandList{{Path: "a", CrossValidators: []string{"nope"}}},
			want:     ErrUnknownValidator,
		},
		{
			name:      "enum without choices",
			commands:  CommandList{{Path: "a"}},
			arguments: ArgumentList{{Command: "a", Name: "x", Type: KindEnum}},
			want:      ErrInvalidArgument,
		},
		{
			name:      "choices on int",
			commands:  CommandList{{Path: "a"}},
			arguments: ArgumentList{{Command: "a", Name: "x", Type: KindInt, Choices: []string{"1"}}},
			want:      ErrInvalidArgument,
		},
		{
			name:      "repeated without parser",
			commands:  CommandList{{Path: "a"}},
			arguments: ArgumentList{{Command: "a", Name: "x", Type: KindString, Repeated: true}},
			want:      ErrInvalidArgument,
		},
		{
			name:      "unknown kind",
			commands:  CommandList{{Path: "a"}},
			arguments: ArgumentList{{Command: "a", Name: "x", Type: "float"}},
			want:      ErrInvalidArgument,
		},
		{
			name:      "long shorthand",
			commands:  CommandList{{Path: "a"}},
			arguments: ArgumentList{{Command: "a", Name: "x", Shorthand: "xx", Type: KindString}},
			want:      ErrInvalidArgument,
		},
		{
			name:      "required with default",
			commands:  CommandList{{Path: "a"}},
			arguments: ArgumentList{{Command: "a", Name: "x", Type: KindString, Required: true, DefaultValue: "y"}},
			want:      ErrInvalidArgument,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.commands, tt.arguments, testFuncs, nil)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTableAccessors(t *testing.T) {
	table := newTestTable(t)
	require.Equal(t, []string{"cdn", "cdn origin", testPath}, table.Paths())
	require.Len(t, table.Arguments(testPath), len(testArguments))
	require.Nil(t, table.Arguments("cdn nope"))

	c, ok := table.Command(testPath)
	require.True(t, ok)
	require.Equal(t, "Create an origin", c.Short)

	// returned rows are copies
	table.Arguments(testPath)[0].Name = "changed"
	require.Equal(t, "name", table.Arguments(testPath)[0].Name)
}

func TestResolve(t *testing.T) {
	table := newTestTable(t)
	values, err := execute(t, table, "cdn", "origin", "create",
		"-n", "o1",
		"--origin", "a.example.com 8080",
		"--origin", "b.example.com",
		"--weight", "10",
		"--disabled",
		"--protocol", "https",
		"--protocols", "http,HTTPS",
		"--tags", "x,y",
	)
	require.NoError(t, err)

	require.Equal(t, "o1", values.String("name"))
	origins := values["origin"].([]args.OriginSpec)
	require.Len(t, origins, 2)
	require.Equal(t, 8080, origins[0].HTTPPort)
	require.Equal(t, "b.example.com", origins[1].Host)
	require.Equal(t, 1, values.Int("priority"), "default applies")
	require.Equal(t, 10, values.Int("weight"))
	require.True(t, values.Bool("disabled"))
	require.Equal(t, "Https", values.String("protocol"))
	require.Equal(t, []string{"Http", "Https"}, values.Strings("protocols"))
	require.Equal(t, []string{"x", "y"}, values.Strings("tags"))
}

func TestResolveOmitsUnsetArguments(t *testing.T) {
	table := newTestTable(t)
	values, err := execute(t, table, "cdn", "origin", "create", "-n", "o1")
	require.NoError(t, err)
	require.False(t, values.Has("origin"))
	require.False(t, values.Has("weight"))
	require.True(t, values.Has("priority"))
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name      string
		argv      []string
		malformed bool
		invalid   bool
	}{
		{
			name: "missing required flag",
			argv: []string{"cdn", "origin", "create"},
		},
		{
			name:      "malformed origin",
			argv:      []string{"cdn", "origin", "create", "-n", "o1", "--origin", "a.example.com http"},
			malformed: true,
		},
		{
			name:    "origin missing private link location",
			argv:    []string{"cdn", "origin", "create", "-n", "o1", "--origin", "a.example.com 80 443 /subscriptions/x/pe"},
			invalid: true,
		},
		{
			name:    "priority out of range",
			argv:    []string{"cdn", "origin", "create", "-n", "o1", "--priority", "0"},
			invalid: true,
		},
		{
			name:    "priority not an integer",
			argv:    []string{"cdn", "origin", "create", "-n", "o1", "--priority", "high"},
			invalid: true,
		},
		{
			name:    "enum not in choices",
			argv:    []string{"cdn", "origin", "create", "-n", "o1", "--protocol", "ftp"},
			invalid: true,
		},
		{
			name:    "list entry not in choices",
			argv:    []string{"cdn", "origin", "create", "-n", "o1", "--protocols", "http,ftp"},
			invalid: true,
		},
		{
			name:    "cross validator",
			argv:    []string{"cdn", "origin", "create", "-n", "a.example.com", "--origin", "a.example.com"},
			invalid: true,
		},
		{
			name: "bad int",
			argv: []string{"cdn", "origin", "create", "-n", "o1", "--weight", "ten"},
		},
		{
			name: "positional argument",
			argv: []string{"cdn", "origin", "create", "-n", "o1", "extra"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			values, err := execute(t, newTestTable(t), tt.argv...)
			require.Error(t, err)
			require.Nil(t, values, "no partial results")
			require.Equal(t, tt.malformed, args.IsMalformed(err), "malformed: %v", err)
			require.Equal(t, tt.invalid, args.IsValidation(err), "invalid: %v", err)
		})
	}
}

func TestResolveUnknownPath(t *testing.T) {
	table := newTestTable(t)
	_, err := table.Resolve(&cobra.Command{}, "cdn origin")
	require.ErrorIs(t, err, ErrUnknownCommand)
	_, err = table.Resolve(&cobra.Command{}, testPath)
	require.ErrorIs(t, err, ErrUnknownCommand, "flags not bound")
}

func TestHelpListsChoicesAndDefaults(t *testing.T) {
	table := newTestTable(t)
	root := &cobra.Command{Use: "azcdn"}
	table.Bind(root, func(*cobra.Command, string, Values) error { return errors.New("not called") })
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"cdn", "origin", "create", "--help"})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "Allowed values: Http, Https.")
	require.Contains(t, out.String(), "Default: "+strconv.Itoa(1)+".")
	require.Contains(t, out.String(), "Create an origin")
}
