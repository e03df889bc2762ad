// Package cli implements the bagdemo command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/STBoyden/gobag"
	"github.com/STBoyden/gobag/report"
	"github.com/spf13/cobra"
)

const exitUserError = 1

// app is the state shared by every subcommand once configuration is loaded.
type app struct {
	configFile string
	cfg        settings
	logger     *slog.Logger
	reporter   *report.Reporter

	// reportOnEnv is set when only CODECTRL_DEBUG enabled reporting.
	reportOnEnv bool
}

// NewRootCmd creates the top-level "bagdemo" command with its global flags
// and subcommands registered.
func NewRootCmd() *cobra.Command {
	state := &app{}

	root := &cobra.Command{
		Use:   "bagdemo",
		Short: "Combine multisets backed by an array or a linked chain",
		Long: `bagdemo builds bags (multisets) with either storage kind and prints
their union, intersection and difference. Results can also be sent to a
CodeCTRL server.`,
		Version:      gobag.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return state.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&state.configFile, "config", "", "config file (default: ./bagdemo.yaml or $XDG_CONFIG_HOME/gobag/bagdemo.yaml)")
	flags.String("variant", variantArray, "bag storage: array or chain")
	flags.Int("capacity", gobag.DefaultCapacity, "initial capacity of array bags")
	flags.Int("max-capacity", gobag.DefaultMaxCapacity, "maximum capacity of array bags")
	flags.Bool("debug", false, "enable debug logging")
	flags.Bool("codectrl", false, "send every printed bag to a CodeCTRL server")
	flags.String("codectrl-host", report.DefaultHost, "CodeCTRL server host")
	flags.String("codectrl-port", report.DefaultPort, "CodeCTRL server port")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newDemoCmd(state))
	root.AddCommand(newCombineCmd(state))
	root.AddCommand(newFreqCmd(state))

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

func (a *app) init(cmd *cobra.Command) error {
	v, err := loadConfig(cmd, a.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg, err := readSettings(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	_, debugEnv := os.LookupEnv(report.EnvDebug)

	a.reporter = nil
	a.reportOnEnv = false
	if cfg.codectrl || debugEnv {
		reporter := report.New(cfg.reporter)
		a.reporter = &reporter
		a.reportOnEnv = !cfg.codectrl
	}

	a.logger.Debug("config loaded",
		"variant", cfg.variant,
		"initial_capacity", cfg.initialCapacity,
		"max_capacity", cfg.maxCapacity,
		"codectrl", cfg.codectrl,
		"codectrl_env", a.reportOnEnv,
		"config_file", v.ConfigFileUsed())

	return nil
}

// show prints bag under title and, when enabled, ships it to CodeCTRL. A
// failed delivery is logged but does not fail the command.
func show[T comparable](ctx context.Context, a *app, out io.Writer, title string, bag gobag.Bag[T]) {
	entries := make([]string, 0, bag.Size())
	for entry := range bag.All() {
		entries = append(entries, fmt.Sprint(entry))
	}

	fmt.Fprintln(out, report.Render(title, entries))

	if a.reporter == nil {
		return
	}

	send := a.reporter.Report
	if a.reportOnEnv {
		send = a.reporter.ReportWhenEnv
	}

	if _, err := send(ctx, title, entries); err != nil {
		a.logger.Warn("codectrl report failed", "title", title, "address", a.reporter.Address(), "error", err)
		return
	}

	a.logger.Debug("codectrl report sent", "title", title, "size", len(entries))
}
