// naivebayes evaluates a Gaussian naive Bayes classifier on a comma-separated
// dataset by repeated random train/test splits, and prints the time taken and
// the mean and standard deviation of the test accuracy.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Arubaruba/naivebayes"
	"github.com/Arubaruba/naivebayes/analyze"
	"github.com/Arubaruba/naivebayes/analyze/plots"
	"github.com/Arubaruba/naivebayes/internal/config"
	"github.com/Arubaruba/naivebayes/internal/logger"
	"github.com/Arubaruba/naivebayes/report"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "naivebayes:", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := config.New()
	cmd := &cobra.Command{
		Use:           "naivebayes [flags] [dataset]",
		Short:         "Evaluate a Gaussian naive Bayes classifier by repeated holdout",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set(config.KeyDataset, args[0])
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			log, err := logger.New(stderr, cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			defer log.Sync()
			return run(cmd.Context(), cfg, log, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger, stdout io.Writer) error {
	start := time.Now()

	d, err := readDataset(cfg.Dataset, cfg.Fields)
	if err != nil {
		return err
	}
	log.Info("dataset loaded",
		zap.String("path", cfg.Dataset),
		zap.Int("records", d.Len()),
		zap.Int("invalid", d.Invalid()),
	)
	for _, rec := range d.Records {
		if rec.Err != nil {
			log.Debug("skipping record", zap.Int("line", rec.Line), zap.Error(rec.Err))
		}
	}

	r, err := analyze.Run(ctx, d, cfg.Settings(log))
	if err != nil {
		return err
	}
	if err := report.Summary(stdout, time.Since(start), r); err != nil {
		return err
	}
	if cfg.Table {
		report.Table(stdout, r)
	}
	if cfg.Plot != "" {
		if err := plots.Histogram(cfg.Plot, r, plots.Settings{Title: "Test accuracy over trials"}); err != nil {
			return err
		}
		log.Info("histogram saved", zap.String("path", cfg.Plot))
	}
	return nil
}

func readDataset(path string, fields int) (*naivebayes.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	d, err := naivebayes.ReadDataset(f, fields)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return d, nil
}
