package controller

import "errors"

// Validation and availability errors surfaced verbatim to the caller.
var (
	ErrNoSelection     = errors.New("no file paths found")
	ErrStatusGone      = errors.New("status unavailable")
	ErrInvalidSeek     = errors.New("invalid seek value")
	ErrInvalidSpeed    = errors.New("invalid speed value")
	ErrMissingPaths    = errors.New("missing file paths")
	ErrBothUnreachable = errors.New("both participants unreachable")
	ErrUnknownCommand  = errors.New("unknown command")
)
