package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/lvcluster/kmedoids"
	"github.com/katalvlaran/lvcluster/report"
)

// config is the YAML form of a clustering run. Flags override fields they set.
//
//	k: 3
//	random: true
//	seed: 42
//	medoids: [24, 74, 124]
//	columns: [sepal_length, sepal_width, petal_length, petal_width]
//	palette: [red, green, blue]
type config struct {
	K       int      `yaml:"k"`
	Random  bool     `yaml:"random"`
	Seed    int64    `yaml:"seed"`
	Medoids []int    `yaml:"medoids"`
	Columns []string `yaml:"columns"`
	Palette []string `yaml:"palette"`
}

func defaultConfig() config {
	opts := kmedoids.DefaultOptions()
	return config{
		K:       opts.K,
		Random:  opts.Random,
		Seed:    opts.Seed,
		Medoids: opts.Medoids,
		Palette: append([]string(nil), report.DefaultPalette...),
	}
}

// loadConfig starts from defaultConfig and overlays the YAML file at path,
// if any. Unknown keys are rejected.
func loadConfig(fs afero.Fs, path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	buf, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(buf, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// clusterFlags are the flag-bound values of the kmedoids command.
type clusterFlags struct {
	config  string
	k       int
	random  bool
	seed    int64
	medoids []int
	columns []string
	palette []string
	out     string
	summary bool
}

// apply overrides cfg with every flag the user set explicitly.
func (f *clusterFlags) apply(flags *pflag.FlagSet, cfg *config) {
	if flags.Changed("k") {
		cfg.K = f.k
	}
	if flags.Changed("random") {
		cfg.Random = f.random
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("medoids") {
		cfg.Medoids = f.medoids
	}
	if flags.Changed("columns") {
		cfg.Columns = f.columns
	}
	if flags.Changed("palette") {
		cfg.Palette = f.palette
	}
}

// options converts cfg into kmedoids.Options.
func (c config) options() kmedoids.Options {
	opts := kmedoids.DefaultOptions()
	opts.K = c.K
	opts.Random = c.Random
	opts.Seed = c.Seed
	opts.Medoids = c.Medoids
	return opts
}
