package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/appkit/internal/errx"
	"github.com/jingkaihe/appkit/pkg/logging"
)

var logCmd = &cobra.Command{
	Use:   "log [flags] <message>...",
	Short: "Emit messages through a logger with console, file and JSON-L sinks",
	Long: `Build a logger for a context, attach the requested sinks in order
(console, then --file, then --jsonl) and emit each message at --level.

Messages below --threshold are suppressed.`,
	Example: `  appkit log --context AuthService --file logs.txt --threshold error --level error "Invalid credentials"
  appkit log --jsonl events.jsonl --run-id deploy-42 "cache warmed"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLog,
}

func init() {
	logCmd.Flags().String("context", "app", "Context label stamped on every line")
	logCmd.Flags().String("threshold", "info", "Least severe level to emit (info, warn, error)")
	logCmd.Flags().StringP("level", "l", "info", "Level of the emitted messages (info, warn, error)")
	logCmd.Flags().String("file", "", "Append plain lines to this file")
	logCmd.Flags().String("jsonl", "", "Append JSON-L records to this file")
	logCmd.Flags().String("run-id", "", "Run ID stamped on JSON-L records (default: random UUID)")
	logCmd.Flags().Bool("no-console", false, "Do not write to stdout")

	viper.BindPFlag("log.context", logCmd.Flags().Lookup("context"))
	viper.BindPFlag("log.threshold", logCmd.Flags().Lookup("threshold"))
	viper.BindPFlag("log.level", logCmd.Flags().Lookup("level"))
	viper.BindPFlag("log.file", logCmd.Flags().Lookup("file"))
	viper.BindPFlag("log.jsonl", logCmd.Flags().Lookup("jsonl"))
	viper.BindPFlag("log.run-id", logCmd.Flags().Lookup("run-id"))
	viper.BindPFlag("log.no-console", logCmd.Flags().Lookup("no-console"))

	rootCmd.AddCommand(logCmd)
}

type logOptions struct {
	Context   string
	Threshold string
	Level     string
	File      string
	JSONL     string
	RunID     string
	NoConsole bool
}

func runLog(cmd *cobra.Command, args []string) error {
	opts := logOptions{
		Context:   viper.GetString("log.context"),
		Threshold: viper.GetString("log.threshold"),
		Level:     viper.GetString("log.level"),
		File:      viper.GetString("log.file"),
		JSONL:     viper.GetString("log.jsonl"),
		RunID:     viper.GetString("log.run-id"),
		NoConsole: viper.GetBool("log.no-console"),
	}
	return emitLog(cmd.OutOrStdout(), opts, args, slog.Default())
}

// emitLog builds the logger described by opts and emits each message. Sink
// failures do not stop later messages; they are all returned together.
func emitLog(out io.Writer, opts logOptions, messages []string, diag *slog.Logger) error {
	if diag == nil {
		diag = slog.Default()
	}
	threshold, err := logging.ParseLevel(opts.Threshold)
	if err != nil {
		return errx.Wrap(ErrInvalidLevel, err)
	}
	level, err := logging.ParseLevel(opts.Level)
	if err != nil {
		return errx.Wrap(ErrInvalidLevel, err)
	}

	reg := prometheus.NewRegistry()
	logger := logging.New(opts.Context,
		logging.WithMetrics(logging.NewMetrics(reg)),
		logging.WithFallback(diag),
	)
	if err := logger.SetThreshold(threshold); err != nil {
		return errx.Wrap(ErrInvalidLevel, err)
	}

	if err := attachSinks(logger, out, opts); err != nil {
		_ = logger.Close()
		return err
	}
	if logger.Sinks() == 0 {
		return errx.With(ErrNoSinks, ": drop --no-console or pass --file/--jsonl")
	}
	diag.Debug("logger ready", "context", opts.Context, "threshold", threshold, "sinks", logger.Sinks())

	var emitErr error
	for _, msg := range messages {
		if err := logger.Log(level, msg); err != nil && emitErr == nil {
			emitErr = errx.Wrap(ErrEmit, err)
		}
	}
	closeErr := logger.Close()

	if totals, err := metricTotals(reg); err == nil {
		diag.Debug("log metrics", "totals", totals)
	}

	if emitErr != nil {
		return emitErr
	}
	if closeErr != nil {
		return errx.Wrap(ErrCloseSinks, closeErr)
	}
	return nil
}

func attachSinks(logger *logging.Logger, out io.Writer, opts logOptions) error {
	if !opts.NoConsole {
		logger.AddSink(logging.NewConsoleSink(out))
	}
	if opts.File != "" {
		sink, err := logging.NewFileSink(opts.File)
		if err != nil {
			return errx.With(ErrOpenSink, " %s: %w", opts.File, err)
		}
		logger.AddSink(sink)
	}
	if opts.JSONL != "" {
		runID := opts.RunID
		if runID == "" {
			runID = uuid.NewString()
		}
		sink, err := logging.NewJSONLSink(opts.JSONL, runID)
		if err != nil {
			return errx.With(ErrOpenSink, " %s: %w", opts.JSONL, err)
		}
		logger.AddSink(sink)
	}
	return nil
}

// metricTotals sums every counter family in reg by name.
func metricTotals(reg *prometheus.Registry) (map[string]float64, error) {
	families, err := reg.Gather()
	if err != nil {
		return nil, errx.Wrap(ErrGatherMetrics, err)
	}
	totals := make(map[string]float64, len(families))
	for _, f := range families {
		for _, m := range f.GetMetric() {
			totals[f.GetName()] += m.GetCounter().GetValue()
		}
	}
	return totals, nil
}
