// Package config assembles the application configuration snapshot from
// environment variables, optionally layered over a config file.
//
// Load is meant to be called once at process start; the resulting *Config
// is passed explicitly to whatever needs it.
package config

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/jingkaihe/appkit/internal/errx"
	"github.com/jingkaihe/appkit/pkg/logging"
)

// Variable names.
const (
	EnvDatabaseURL      = "DATABASE_URL"
	EnvDatabaseName     = "DATABASE_NAME"
	EnvDatabasePoolSize = "DATABASE_POOL_SIZE"
	EnvJWTSecret        = "JWT_SECRET"
	EnvAllowedHosts     = "ALLOWED_HOSTS"
	EnvCORSOrigins      = "CORS_ORIGINS"
	EnvAPIURL           = "API_URL"
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvAppEnv           = "APP_ENV"
)

const (
	DefaultPoolSize    = 10
	DefaultPort        = 3000
	DefaultLogLevel    = logging.LevelInfo
	DefaultCORSOrigin  = "*"
	DefaultEnvironment = Development

	maxPort = 65535
)

// RequiredEnvs are the variables whose absence fails Load.
var RequiredEnvs = []string{EnvDatabaseURL, EnvJWTSecret, EnvAllowedHosts, EnvAPIURL}

type Database struct {
	URL      string `yaml:"url"`
	Name     string `yaml:"name,omitempty"`
	PoolSize int    `yaml:"pool_size"`
}

type Security struct {
	JWTSecret    string   `yaml:"jwt_secret"`
	CORSOrigins  []string `yaml:"cors_origins"`
	AllowedHosts []string `yaml:"allowed_hosts"`
}

type Server struct {
	Port     int           `yaml:"port"`
	APIURL   string        `yaml:"api_url"`
	LogLevel logging.Level `yaml:"log_level"`
}

// Config is the validated snapshot. Treat it as read-only once loaded.
type Config struct {
	Environment Environment `yaml:"environment"`
	Database    Database    `yaml:"database"`
	Security    Security    `yaml:"security"`
	Server      Server      `yaml:"server"`
}

type loadOptions struct {
	file string
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithConfigFile reads path (dotenv, yaml, json or toml, chosen by extension)
// underneath the environment. Environment variables win over file values.
func WithConfigFile(path string) LoadOption {
	return func(o *loadOptions) { o.file = path }
}

// NewViper returns a viper instance reading the process environment, with
// empty-but-set variables reported as set.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	return v
}

// Load reads the environment (and an optional file) and validates it.
func Load(opts ...LoadOption) (*Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	v := NewViper()
	if o.file != "" {
		v.SetConfigFile(o.file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errx.Wrap(ErrReadConfigFile, err)
		}
	}
	return LoadFrom(v)
}

// LoadFrom builds a Config from values already visible to v.
//
// Required variables count as missing when unset or empty; the error names
// every missing one. Optional variables fall back to their default only when
// unset. A present-but-empty CORS_ORIGINS yields no allowed origins, and a
// present-but-empty numeric or enumerated value is rejected.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var missing []string
	for _, key := range RequiredEnvs {
		if v.GetString(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, errx.With(ErrMissingEnv, ": %s", strings.Join(missing, ", "))
	}

	poolSize, err := optionalInt(v, EnvDatabasePoolSize, DefaultPoolSize, 0)
	if err != nil {
		return nil, err
	}
	port, err := optionalInt(v, EnvPort, DefaultPort, maxPort)
	if err != nil {
		return nil, err
	}

	logLevel := DefaultLogLevel
	if raw, ok := lookup(v, EnvLogLevel); ok {
		if logLevel, err = logging.ParseLevel(raw); err != nil {
			return nil, errx.Wrap(ErrInvalidLogLevel, err)
		}
	}

	env := DefaultEnvironment
	if raw, ok := lookup(v, EnvAppEnv); ok {
		if env, err = ParseEnvironment(raw); err != nil {
			return nil, err
		}
	}

	origins := []string{DefaultCORSOrigin}
	if raw, ok := lookup(v, EnvCORSOrigins); ok {
		origins = splitList(raw)
	}

	return &Config{
		Environment: env,
		Database: Database{
			URL:      v.GetString(EnvDatabaseURL),
			Name:     v.GetString(EnvDatabaseName),
			PoolSize: poolSize,
		},
		Security: Security{
			JWTSecret:    v.GetString(EnvJWTSecret),
			CORSOrigins:  origins,
			AllowedHosts: splitList(v.GetString(EnvAllowedHosts)),
		},
		Server: Server{
			Port:     port,
			APIURL:   v.GetString(EnvAPIURL),
			LogLevel: logLevel,
		},
	}, nil
}

// RequiredEnv returns the value of key. With force set, an unset or empty
// value is an ErrMissingEnv naming key; otherwise it is returned as "".
func RequiredEnv(v *viper.Viper, key string, force bool) (string, error) {
	value := v.GetString(key)
	if force && value == "" {
		return "", errx.With(ErrMissingEnv, ": %s", key)
	}
	return value, nil
}

func lookup(v *viper.Viper, key string) (string, bool) {
	if !v.IsSet(key) {
		return "", false
	}
	return v.GetString(key), true
}

// optionalInt parses a positive integer, bounded by max when max > 0.
func optionalInt(v *viper.Viper, key string, def, max int) (int, error) {
	raw, ok := lookup(v, key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 || (max > 0 && n > max) {
		return 0, errx.With(ErrInvalidNumber, ": %s=%q", key, raw)
	}
	return n, nil
}

// HostAllowed reports whether host (optionally with a port) matches an
// allowed-host pattern. Patterns support "*", "*.example.com", "example.*"
// and general * wildcards.
func (s Security) HostAllowed(host string) bool {
	host = strings.ToLower(stripPort(strings.TrimSpace(host)))
	if host == "" {
		return false
	}
	for _, pattern := range s.AllowedHosts {
		if matchHost(strings.ToLower(pattern), host) {
			return true
		}
	}
	return false
}

// OriginAllowed reports whether a CORS origin is permitted. "*" allows any.
func (s Security) OriginAllowed(origin string) bool {
	for _, allowed := range s.CORSOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// Redacted returns a copy safe for display: the JWT secret is masked and any
// password in the database URL is hidden.
func (c *Config) Redacted() *Config {
	cp := *c
	cp.Security.CORSOrigins = append([]string(nil), c.Security.CORSOrigins...)
	cp.Security.AllowedHosts = append([]string(nil), c.Security.AllowedHosts...)
	if cp.Security.JWTSecret != "" {
		cp.Security.JWTSecret = "********"
	}
	if u, err := url.Parse(cp.Database.URL); err == nil && u.User != nil {
		cp.Database.URL = u.Redacted()
	}
	return &cp
}
