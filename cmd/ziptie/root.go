package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ziptie/ziptie"
)

// config holds flag values shared by every subcommand.
type config struct {
	steps             int
	bundles           int
	threshold         float64
	activityThreshold float64
	seed              int64
	debug             bool
	logFile           string

	// watch only
	batch    int
	interval time.Duration
}

const (
	defaultSteps     = 10000
	defaultThreshold = 100
	defaultBatch     = 50
	defaultInterval  = 100 * time.Millisecond
)

// options turns flags into engine options.
func (c config) options(logger *slog.Logger) []ziptie.Option {
	opts := []ziptie.Option{
		ziptie.WithName("grid1d"),
		ziptie.WithThreshold(c.threshold),
		ziptie.WithActivityThreshold(c.activityThreshold),
		ziptie.WithDebug(c.debug),
	}
	if c.bundles > 0 {
		opts = append(opts, ziptie.WithBundles(c.bundles))
	}
	if logger != nil {
		opts = append(opts, ziptie.WithLogger(logger))
	}
	return opts
}

// logger builds the slog logger for a command. Output goes to the log file
// when one is set, to fallback otherwise. The returned closer is never nil.
func (c config) logger(fallback io.Writer) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if c.debug {
		level = slog.LevelDebug
	}
	var w io.Writer = fallback
	var closer io.Closer = io.NopCloser(nil)
	if c.logFile != "" {
		f, err := os.Create(c.logFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}

func newRootCmd() *cobra.Command {
	cfg := config{}
	root := &cobra.Command{
		Use:          "ziptie",
		Short:        "Cluster co-active channels of a toy world into bundles",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.IntVar(&cfg.bundles, "bundles", 0, "bundle capacity (0 = number of cables)")
	pf.Float64Var(&cfg.threshold, "threshold", defaultThreshold, "nucleation and agglomeration threshold")
	pf.Float64Var(&cfg.activityThreshold, "activity-threshold", ziptie.DefaultActivityThreshold, "activity floor")
	pf.Int64Var(&cfg.seed, "seed", 1, "random seed for the world and the policy")
	pf.BoolVar(&cfg.debug, "debug", false, "log nucleation and agglomeration events")
	pf.StringVar(&cfg.logFile, "log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(newRunCmd(&cfg), newWatchCmd(&cfg))
	return root
}

func newRunCmd(shared *config) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a fixed number of steps and print the learned bundles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *shared
			cfg.steps = steps
			logger, closer, err := cfg.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			s, err := newSession(cfg, logger)
			if err != nil {
				return err
			}
			if err = s.advance(cfg.steps); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err = s.zip.Visualize(ziptie.TextReporter{W: out}); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, s.summary())
			return err
		},
	}
	cmd.Flags().IntVar(&steps, "steps", defaultSteps, "number of time steps")
	return cmd
}

func newWatchCmd(shared *config) *cobra.Command {
	var (
		steps, batch int
		interval     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show bundles forming live in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *shared
			cfg.steps, cfg.batch, cfg.interval = steps, batch, interval
			// The dashboard owns the terminal; logs only go to a file.
			logger, closer, err := cfg.logger(io.Discard)
			if err != nil {
				return err
			}
			defer closer.Close()

			s, err := newSession(cfg, logger)
			if err != nil {
				return err
			}
			d := newDashboard(s, cfg.batch, cfg.interval, processSampler())
			final, err := tea.NewProgram(d, tea.WithOutput(cmd.OutOrStdout())).Run()
			if err != nil {
				return err
			}
			if fd, ok := final.(dashboard); ok && fd.err != nil {
				return fd.err
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "stop after this many steps (0 = never)")
	cmd.Flags().IntVar(&batch, "batch", defaultBatch, "time steps per refresh")
	cmd.Flags().DurationVar(&interval, "interval", defaultInterval, "refresh interval")
	return cmd
}
