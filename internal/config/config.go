// Package config loads the settings of the command from defaults, an optional
// config file, the environment, and flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Arubaruba/naivebayes/analyze"
	"github.com/Arubaruba/naivebayes/distribution"
	"github.com/Arubaruba/naivebayes/fold"
)

// EnvPrefix prefixes the environment variables, as in NAIVEBAYES_TRIALS.
const EnvPrefix = "NAIVEBAYES"

// DefaultDataset is the dataset read when no path is given.
const DefaultDataset = "pima-indians-diabetes.data"

// DefaultFieldCount is the number of fields of a row of the default dataset:
// eight features and the label.
const DefaultFieldCount = 9

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid setting")

// Keys of the settings.
const (
	KeyConfig        = "config"
	KeyDataset       = "dataset"
	KeyTrials        = "trials"
	KeyTestFraction  = "test_fraction"
	KeyFields        = "fields"
	KeySeedSalt      = "seed_salt"
	KeyConcurrency   = "concurrency"
	KeyVarianceFloor = "variance_floor"
	KeyLogLevel      = "log_level"
	KeyTable         = "table"
	KeyPlot          = "plot"
)

// Config is the complete set of settings of a run.
type Config struct {
	Dataset       string  `mapstructure:"dataset"`
	Trials        int     `mapstructure:"trials"`
	TestFraction  float64 `mapstructure:"test_fraction"`
	Fields        int     `mapstructure:"fields"`
	SeedSalt      uint32  `mapstructure:"seed_salt"`
	Concurrency   int     `mapstructure:"concurrency"`
	VarianceFloor float64 `mapstructure:"variance_floor"`
	LogLevel      string  `mapstructure:"log_level"`
	Table         bool    `mapstructure:"table"`
	Plot          string  `mapstructure:"plot"` // histogram file; empty for none
}

// New returns a viper instance with the defaults set and the environment
// bound.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDataset, DefaultDataset)
	v.SetDefault(KeyTrials, analyze.DefaultTrials)
	v.SetDefault(KeyTestFraction, fold.DefaultTestFraction)
	v.SetDefault(KeyFields, DefaultFieldCount)
	v.SetDefault(KeySeedSalt, analyze.DefaultSeedSalt)
	v.SetDefault(KeyConcurrency, 1)
	v.SetDefault(KeyVarianceFloor, distribution.DefaultVarianceFloor)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyTable, false)
	v.SetDefault(KeyPlot, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags registers a flag for every setting on fs and binds it to v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.String("config", "", "YAML, JSON or TOML file with settings")
	fs.Int("trials", analyze.DefaultTrials, "number of train/test splits")
	fs.Float64("test-fraction", fold.DefaultTestFraction, "probability that a row is held out for testing")
	fs.Int("fields", DefaultFieldCount, "fields per row, the label included")
	fs.Uint32("seed-salt", analyze.DefaultSeedSalt, "second component of every trial seed")
	fs.Int("concurrency", 1, "number of trials run at once")
	fs.Float64("variance-floor", distribution.DefaultVarianceFloor, "smallest variance used in a density")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.Bool("table", false, "print a table of the trials")
	fs.String("plot", "", "save a histogram of the accuracies to this file")

	for key, flag := range map[string]string{
		KeyConfig:        "config",
		KeyTrials:        "trials",
		KeyTestFraction:  "test-fraction",
		KeyFields:        "fields",
		KeySeedSalt:      "seed-salt",
		KeyConcurrency:   "concurrency",
		KeyVarianceFloor: "variance-floor",
		KeyLogLevel:      "log-level",
		KeyTable:         "table",
		KeyPlot:          "plot",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the config file named by the config key, if any, and returns
// the validated settings.
func Load(v *viper.Viper) (Config, error) {
	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", file, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the ranges of the settings.
func (c Config) Validate() error {
	switch {
	case c.Dataset == "":
		return fmt.Errorf("%w: empty dataset path", ErrInvalid)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials must be positive, have %d", ErrInvalid, c.Trials)
	case !(c.TestFraction > 0 && c.TestFraction < 1):
		return fmt.Errorf("%w: test fraction must be in (0, 1), have %v", ErrInvalid, c.TestFraction)
	case c.Fields < 2:
		return fmt.Errorf("%w: fields must be at least 2, have %d", ErrInvalid, c.Fields)
	case c.Concurrency < 1:
		return fmt.Errorf("%w: concurrency must be positive, have %d", ErrInvalid, c.Concurrency)
	case !(c.VarianceFloor > 0):
		return fmt.Errorf("%w: variance floor must be positive, have %v", ErrInvalid, c.VarianceFloor)
	}
	return nil
}

// Settings returns the analysis settings for the run.
func (c Config) Settings(log *zap.Logger) analyze.Settings {
	return analyze.Settings{
		Trials:        c.Trials,
		TestFraction:  c.TestFraction,
		SeedSalt:      c.SeedSalt,
		VarianceFloor: c.VarianceFloor,
		Concurrent:    c.Concurrency,
		Logger:        log,
	}
}
