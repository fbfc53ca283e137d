package client

import "errors"

var (
	ErrNilAdapter      = errors.New("server adapter is nil")
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrEmptyPassword   = errors.New("empty password")
)
