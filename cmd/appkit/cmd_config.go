package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/jingkaihe/appkit/internal/errx"
	"github.com/jingkaihe/appkit/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the application configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Load the configuration and print it with secrets redacted",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and report missing variables",
	Args:  cobra.NoArgs,
	RunE:  runConfigCheck,
}

func init() {
	configShowCmd.Flags().StringP("output", "o", "auto", "Output format: auto, table or yaml")
	viper.BindPFlag("config.output", configShowCmd.Flags().Lookup("output"))

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configCheckCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig() (*config.Config, error) {
	var opts []config.LoadOption
	if path := viper.GetString("config"); path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, errx.Wrap(ErrLoadConfig, err)
	}
	return cfg, nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	format, err := resolveOutput(viper.GetString("config.output"), stdoutIsTerminal())
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return renderConfig(cmd.OutOrStdout(), cfg.Redacted(), format)
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration OK (environment: %s, port: %d, log level: %s)\n",
		cfg.Environment, cfg.Server.Port, cfg.Server.LogLevel)
	return nil
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// resolveOutput maps "auto" to table on a terminal and yaml otherwise.
func resolveOutput(format string, terminal bool) (string, error) {
	switch strings.ToLower(format) {
	case "auto", "":
		if terminal {
			return "table", nil
		}
		return "yaml", nil
	case "table", "yaml":
		return strings.ToLower(format), nil
	}
	return "", errx.With(ErrInvalidOutput, ": %q (expected auto, table or yaml)", format)
}

func renderConfig(w io.Writer, cfg *config.Config, format string) error {
	switch format {
	case "table":
		return renderConfigTable(w, cfg)
	case "yaml":
		return renderConfigYAML(w, cfg)
	}
	return errx.With(ErrInvalidOutput, ": %q", format)
}

func renderConfigYAML(w io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errx.Wrap(ErrRenderConfig, err)
	}
	if err := enc.Close(); err != nil {
		return errx.Wrap(ErrRenderConfig, err)
	}
	return nil
}

func renderConfigTable(w io.Writer, cfg *config.Config) error {
	table := tablewriter.NewTable(w)
	table.Header("Section", "Key", "Value")

	rows := [][]string{
		{"app", "environment", string(cfg.Environment)},
		{"database", "url", cfg.Database.URL},
		{"database", "name", cfg.Database.Name},
		{"database", "pool_size", strconv.Itoa(cfg.Database.PoolSize)},
		{"security", "jwt_secret", cfg.Security.JWTSecret},
		{"security", "cors_origins", strings.Join(cfg.Security.CORSOrigins, ",")},
		{"security", "allowed_hosts", strings.Join(cfg.Security.AllowedHosts, ",")},
		{"server", "port", strconv.Itoa(cfg.Server.Port)},
		{"server", "api_url", cfg.Server.APIURL},
		{"server", "log_level", cfg.Server.LogLevel.String()},
	}
	if err := table.Bulk(rows); err != nil {
		return errx.Wrap(ErrRenderConfig, err)
	}
	if err := table.Render(); err != nil {
		return errx.Wrap(ErrRenderConfig, err)
	}
	return nil
}
