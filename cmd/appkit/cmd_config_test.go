package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jingkaihe/appkit/pkg/config"
	"github.com/jingkaihe/appkit/pkg/logging"
)

func sampleConfig() *config.Config {
	return &config.Config{
		Environment: config.Staging,
		Database:    config.Database{URL: "postgres://app:pw@db/app", PoolSize: 10},
		Security: config.Security{
			JWTSecret:    "s3cret",
			CORSOrigins:  []string{"*"},
			AllowedHosts: []string{"api.example.com"},
		},
		Server: config.Server{Port: 3000, APIURL: "https://api.example.com", LogLevel: logging.LevelWarn},
	}
}

func TestResolveOutput(t *testing.T) {
	got, err := resolveOutput("auto", true)
	require.NoError(t, err)
	assert.Equal(t, "table", got)

	got, err = resolveOutput("auto", false)
	require.NoError(t, err)
	assert.Equal(t, "yaml", got)

	got, err = resolveOutput("YAML", true)
	require.NoError(t, err)
	assert.Equal(t, "yaml", got)

	_, err = resolveOutput("xml", true)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestRenderConfigYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderConfig(&buf, sampleConfig().Redacted(), "yaml"))

	var decoded struct {
		Environment string `yaml:"environment"`
		Security    struct {
			JWTSecret    string   `yaml:"jwt_secret"`
			AllowedHosts []string `yaml:"allowed_hosts"`
		} `yaml:"security"`
		Server struct {
			Port     int    `yaml:"port"`
			LogLevel string `yaml:"log_level"`
		} `yaml:"server"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "staging", decoded.Environment)
	assert.Equal(t, "********", decoded.Security.JWTSecret)
	assert.Equal(t, []string{"api.example.com"}, decoded.Security.AllowedHosts)
	assert.Equal(t, 3000, decoded.Server.Port)
	assert.Equal(t, "warn", decoded.Server.LogLevel)
	assert.NotContains(t, buf.String(), "s3cret")
}

func TestRenderConfigTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderConfig(&buf, sampleConfig().Redacted(), "table"))

	out := buf.String()
	assert.Contains(t, out, "api.example.com")
	assert.Contains(t, out, "pool_size")
	assert.Contains(t, out, "3000")
	assert.Contains(t, out, "warn")
	assert.NotContains(t, out, "s3cret")
}

func TestRenderConfig_UnknownFormat(t *testing.T) {
	err := renderConfig(&bytes.Buffer{}, sampleConfig(), "csv")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
