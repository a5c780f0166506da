package config

import (
	"strings"

	"github.com/jingkaihe/appkit/internal/errx"
)

// Environment is the deployment stage the process runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ParseEnvironment accepts development, staging or production in any case.
func ParseEnvironment(s string) (Environment, error) {
	switch env := Environment(strings.ToLower(strings.TrimSpace(s))); env {
	case Development, Staging, Production:
		return env, nil
	}
	return "", errx.With(ErrInvalidEnvironment, ": %q (expected development, staging or production)", s)
}

func (e Environment) IsDevelopment() bool { return e == Development }
func (e Environment) IsStaging() bool     { return e == Staging }
func (e Environment) IsProduction() bool  { return e == Production }
