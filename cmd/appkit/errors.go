package main

import "errors"

// Log errors
var (
	ErrInvalidLevel  = errors.New("invalid level")
	ErrOpenSink      = errors.New("open sink")
	ErrEmit          = errors.New("emit log line")
	ErrCloseSinks    = errors.New("close sinks")
	ErrNoSinks       = errors.New("no sinks configured")
	ErrGatherMetrics = errors.New("gather metrics")
)

// Config errors
var (
	ErrLoadConfig    = errors.New("load config")
	ErrInvalidOutput = errors.New("invalid output format")
	ErrRenderConfig  = errors.New("render config")
)

// Text errors
var (
	ErrInvalidLength = errors.New("invalid length")
)
