// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package registry

import (
	"fmt"
	"strings"
)

// Kind is the generic coercion applied to a flag before any named parser.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindBool   Kind = "bool"
	KindEnum   Kind = "enum"
	KindList   Kind = "list"
)

func (k Kind) valid() bool {
	switch k {
	case KindString, KindInt, KindBool, KindEnum, KindList:
		return true
	}
	return false
}

// Argument is one row of the declarative argument table.
type Argument struct {
	// Command is the space separated command path, e.g. "cdn endpoint create".
	Command     string
	Name        string
	Shorthand   string
	Description string
	Type        Kind
	// DefaultValue is used as is when the flag is not given. It is neither
	// parsed nor validated.
	DefaultValue interface{}
	// Choices restricts enum and list values. Matching is case-insensitive and
	// the value is normalized to the spelling given here.
	Choices  []string
	Required bool
	// Repeated collects every occurrence of the flag as a raw token. Tokens are
	// never split on commas.
	Repeated bool
	// Parser and Validator name entries of the Funcs given to NewTable.
	Parser    string
	Validator string
}

// ArgumentList is the argument table.
type ArgumentList []Argument

// Command is one row of the command table. Group commands only hold
// subcommands.
type Command struct {
	Path  string
	Short string
	Long  string
	Group bool
	// CrossValidators name entries of Funcs.CrossValidators, run in order once
	// every argument of the command resolved.
	CrossValidators []string
}

// CommandList is the command table.
type CommandList []Command

func (a *Argument) usage() string {
	var b strings.Builder
	b.WriteString(a.Description)
	if len(a.Choices) > 0 {
		fmt.Fprintf(&b, " Allowed values: %s.", strings.Join(a.Choices, ", "))
	}
	if a.Parser != "" && a.DefaultValue != nil {
		fmt.Fprintf(&b, " Default: %v.", a.DefaultValue)
	}
	return b.String()
}

func (a *Argument) key() string {
	return a.Command + " --" + a.Name
}
