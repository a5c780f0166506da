package config

import "github.com/spf13/viper"

// SimpleAPIURL is the fixed endpoint of the minimal configuration.
const SimpleAPIURL = "http://localhost:3000/"

// Simple is a minimal configuration with a fixed API URL and no required
// variables.
type Simple struct {
	APIURL      string
	Environment Environment
}

// NewSimple returns a Simple for env.
func NewSimple(env Environment) Simple {
	return Simple{APIURL: SimpleAPIURL, Environment: env}
}

// LoadSimple reads APP_ENV from v, defaulting to development.
func LoadSimple(v *viper.Viper) (Simple, error) {
	env := DefaultEnvironment
	if raw, ok := lookup(v, EnvAppEnv); ok {
		parsed, err := ParseEnvironment(raw)
		if err != nil {
			return Simple{}, err
		}
		env = parsed
	}
	return NewSimple(env), nil
}

func (s Simple) IsProduction() bool { return s.Environment == Production }

// IsDevelopment is true for anything that is not production.
func (s Simple) IsDevelopment() bool { return s.Environment != Production }
