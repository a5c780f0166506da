package logging

import "errors"

var (
	ErrCreateLogFile = errors.New("logging: create log file")
	ErrWriteLine     = errors.New("logging: write line")
	ErrMarshalEntry  = errors.New("logging: marshal entry")
	ErrCloseWriter   = errors.New("logging: close writer")
	ErrDeliver       = errors.New("logging: deliver to sink")
	ErrUnknownLevel  = errors.New("logging: unknown level")
)
