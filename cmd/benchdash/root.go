package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"benchdash/internal/config"
	"benchdash/internal/dashboard"
	"benchdash/internal/region"
	"benchdash/internal/trace"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 2 * time.Second

func newRootCmd() *cobra.Command {
	v := config.New()
	var (
		cfgFile     string
		noAltScreen bool
	)

	cmd := &cobra.Command{
		Use:          "benchdash",
		Short:        "Terminal dashboard for driving and observing benchmark runs",
		Long:         longRoot,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := region.Validate(); err != nil {
				return fmt.Errorf("layout: %w", err)
			}
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
			if noAltScreen {
				v.Set(config.KeyAltScreen, false)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runDashboard(cmd.Context(), cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "path to a YAML config file")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-file", "", "write logs to this file (logs are discarded otherwise)")
	flags.BoolVar(&noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")
	bindFlag(v, config.KeyLogLevel, cmd, "log-level")
	bindFlag(v, config.KeyLogFile, cmd, "log-file")

	cmd.AddCommand(newLayoutCmd())
	return cmd
}

func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %q: %v", name, err))
	}
}

// newLogger returns a logger writing to cfg.LogFile, or discarding output
// when no file is set so log lines never corrupt the TUI.
func newLogger(cfg config.Config) (*log.Logger, func() error, error) {
	var (
		out     io.Writer = io.Discard
		cleanup           = func() error { return nil }
	)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, cleanup = f, f.Close
	}
	logger := log.NewWithOptions(out, log.Options{
		Level:           cfg.LogLevel,
		ReportTimestamp: true,
		Prefix:          "benchdash",
	})
	return logger, cleanup, nil
}

// closeInto runs closer and joins a failure into *err.
func closeInto(err *error, what string, closer func() error) {
	if cerr := closer(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("close %s: %w", what, cerr))
	}
}

func runDashboard(ctx context.Context, cfg config.Config) (err error) {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeInto(&err, "log file", closeLog)

	opts := []dashboard.Option{dashboard.WithLogger(logger)}
	if cfg.Tracing {
		provider, err := trace.NewProvider(ctx, trace.ConfigFromEnv())
		if err != nil {
			logger.Warn("tracing disabled", "error", err)
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := provider.Shutdown(shutdownCtx); err != nil {
					logger.Warn("trace shutdown", "error", err)
				}
			}()
			opts = append(opts, dashboard.WithTracer(provider.Tracer()))
			logger.Debug("tracing configured", "exporting", provider.Enabled())
		}
	}

	var programOpts []tea.ProgramOption
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	programOpts = append(programOpts, tea.WithContext(ctx))

	logger.Info("starting dashboard", "alt_screen", cfg.AltScreen)
	if _, err := tea.NewProgram(dashboard.NewModel(opts...), programOpts...).Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

var longRoot = `
benchdash renders the benchmark dashboard: a left column with the Backend,
Benches and Action panels and a right column with the Results and Progress
panels. Press q to quit.

Settings are read from --config, then BENCHDASH_* environment variables,
then flags. Set OTEL_EXPORTER_OTLP_ENDPOINT to export redraw traces.
`
