package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvcluster/kmedoids"
	"github.com/katalvlaran/lvcluster/report"
)

func kmedoidsCmd(a *app) *cobra.Command {
	var f clusterFlags

	cmd := &cobra.Command{
		Use:   "kmedoids DATA_CSV",
		Short: "cluster the rows of a numeric CSV around K medoids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.fs, f.config)
			if err != nil {
				return err
			}
			f.apply(cmd.Flags(), &cfg)
			return a.runKMedoids(cmd, args[0], cfg, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.config, "config", "c", "", "YAML file with run settings")
	flags.IntVarP(&f.k, "k", "k", kmedoids.DefaultK, "number of clusters")
	flags.BoolVarP(&f.random, "random", "r", false, "pick the initial medoids at random")
	flags.Int64VarP(&f.seed, "seed", "s", 0, "seed for --random (0 = fixed default)")
	flags.IntSliceVar(&f.medoids, "medoids", kmedoids.DefaultMedoids, "fixed initial medoid row indices")
	flags.StringSliceVar(&f.columns, "columns", nil, "columns to cluster on (default: all)")
	flags.StringSliceVar(&f.palette, "palette", report.DefaultPalette, "colour per cluster label")
	flags.StringVarP(&f.out, "out", "o", "", "write the labels CSV here instead of stdout")
	flags.BoolVar(&f.summary, "summary", false, "print per-cluster statistics")

	return cmd
}

func (a *app) runKMedoids(cmd *cobra.Command, path string, cfg config, f clusterFlags) error {
	ds, columns, err := loadDataset(a.fs, path, cfg.Columns)
	if err != nil {
		return err
	}
	a.log.Info("dataset loaded",
		zap.String("path", path),
		zap.Int("points", ds.Len()),
		zap.Strings("columns", columns))

	opts := cfg.options()
	opts.OnIteration = func(iter int, ms kmedoids.MedoidSet, cost float64) {
		a.log.Debug("medoid swap accepted",
			zap.Int("iteration", iter),
			zap.Ints("medoids", ms),
			zap.Float64("cost", cost))
	}

	res, err := kmedoids.Cluster(ds, opts)
	if err != nil {
		return errors.Wrapf(err, "clustering %s", path)
	}
	a.log.Info("clustering converged",
		zap.Int("k", res.K()),
		zap.Bool("random", opts.Random),
		zap.Int("iterations", res.Iterations),
		zap.Ints("medoids", res.Medoids),
		zap.Float64("cost", res.Cost))

	stdout := cmd.OutOrStdout()
	fmt.Fprintln(stdout, report.CostLine(res.Cost))

	if f.summary {
		sums, err := report.Summarize(ds, res, cfg.Palette)
		if err != nil {
			return err
		}
		if err := report.WriteSummaries(stdout, sums); err != nil {
			return errors.Wrap(err, "writing summary")
		}
	}

	w, closeFn, err := a.writerFor(f.out, stdout)
	if err != nil {
		return errors.Wrapf(err, "creating %s", f.out)
	}
	if err := report.WriteLabels(w, res, cfg.Palette); err != nil {
		_ = closeFn()
		return errors.Wrap(err, "writing labels")
	}
	return closeFn()
}
