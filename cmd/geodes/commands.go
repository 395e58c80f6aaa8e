package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/geodes/blueprint"
	"github.com/katalvlaran/geodes/config"
	"github.com/katalvlaran/geodes/metrics"
	"github.com/katalvlaran/geodes/planner"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath  string
	logLevel    string
	logFormat   string
	metricsFile string

	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	planner  *planner.Planner
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "geodes",
		Short:         "Maximize geode output of robot-factory blueprints",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.flushMetrics()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format (text, json)")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")

	root.AddCommand(a.qualityCmd(), a.productCmd(), a.maxCmd())

	return root
}

// setup loads the configuration, applies flag overrides and builds the planner.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if a.metricsFile != "" {
		cfg.MetricsFile = a.metricsFile
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Log.NewLogger(cmd.ErrOrStderr())

	a.registry = prometheus.NewRegistry()
	a.planner, err = planner.New(cfg.CacheSize,
		planner.WithLogger(a.logger),
		planner.WithMetrics(metrics.NewSearch(a.registry)),
	)

	return err
}

func (a *app) flushMetrics() error {
	if a.cfg.MetricsFile == "" || a.registry == nil {
		return nil
	}
	if err := metrics.WriteTextfile(a.cfg.MetricsFile, a.registry); err != nil {
		return err
	}
	a.logger.Debug("metrics written", slog.String("path", a.cfg.MetricsFile))

	return nil
}

// readBlueprints parses the file named by args[0], or stdin without args.
func (a *app) readBlueprints(cmd *cobra.Command, args []string) ([]blueprint.Blueprint, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	bps, err := blueprint.Parse(r)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("blueprints parsed", slog.Int("count", len(bps)))

	return bps, nil
}

func (a *app) qualityCmd() *cobra.Command {
	var horizon int
	cmd := &cobra.Command{
		Use:   "quality [file]",
		Short: "Sum of blueprint number times max geodes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bps, err := a.readBlueprints(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("horizon") {
				horizon = a.cfg.QualityHorizon
			}
			sum, err := a.planner.QualitySum(cmd.Context(), bps, horizon)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)

			return err
		},
	}
	cmd.Flags().IntVar(&horizon, "horizon", 0, "minutes available (default from config: 24)")

	return cmd
}

func (a *app) productCmd() *cobra.Command {
	var horizon, count int
	cmd := &cobra.Command{
		Use:   "product [file]",
		Short: "Product of max geodes of the first blueprints",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bps, err := a.readBlueprints(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("horizon") {
				horizon = a.cfg.ProductHorizon
			}
			if !cmd.Flags().Changed("count") {
				count = a.cfg.ProductCount
			}
			product, err := a.planner.TopProduct(cmd.Context(), bps, count, horizon)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), product)

			return err
		},
	}
	cmd.Flags().IntVar(&horizon, "horizon", 0, "minutes available (default from config: 32)")
	cmd.Flags().IntVar(&count, "count", 0, "number of leading blueprints (default from config: 3)")

	return cmd
}

func (a *app) maxCmd() *cobra.Command {
	var horizon int
	cmd := &cobra.Command{
		Use:   "max [file]",
		Short: "Max geodes of every blueprint",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bps, err := a.readBlueprints(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("horizon") {
				horizon = a.cfg.QualityHorizon
			}
			results, err := a.planner.MaxEach(cmd.Context(), bps, horizon)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, v := range results {
				if _, err = fmt.Fprintf(w, "blueprint %d: %d\n", bps[i].ID, v); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&horizon, "horizon", 0, "minutes available (default from config: 24)")

	return cmd
}
