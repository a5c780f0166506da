package config

import "errors"

var (
	ErrMissingEnv         = errors.New("missing environment variables")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidEnvironment = errors.New("invalid environment")
	ErrReadConfigFile     = errors.New("read config file")
)
