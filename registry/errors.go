// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package registry

import "github.com/pkg/errors"

var (
	ErrDuplicateCommand  = errors.New("duplicate command")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrDuplicateArgument = errors.New("duplicate argument")
	ErrInvalidArgument   = errors.New("invalid argument declaration")
	ErrUnknownParser     = errors.New("unknown parser")
	ErrUnknownValidator  = errors.New("unknown validator")
)
