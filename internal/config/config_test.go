package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Arubaruba/naivebayes/analyze"
	"github.com/Arubaruba/naivebayes/distribution"
	"github.com/Arubaruba/naivebayes/fold"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, Config{
		Dataset:       DefaultDataset,
		Trials:        analyze.DefaultTrials,
		TestFraction:  fold.DefaultTestFraction,
		Fields:        DefaultFieldCount,
		SeedSalt:      analyze.DefaultSeedSalt,
		Concurrency:   1,
		VarianceFloor: distribution.DefaultVarianceFloor,
		LogLevel:      "warn",
	}, c)
}

func TestLoadFlags(t *testing.T) {
	v := New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"--trials=5", "--test-fraction=0.25", "--fields", "4", "--table", "--seed-salt=9"}))

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Trials)
	assert.Equal(t, 0.25, c.TestFraction)
	assert.Equal(t, 4, c.Fields)
	assert.Equal(t, uint32(9), c.SeedSalt)
	assert.True(t, c.Table)
	// Unset flags keep their defaults.
	assert.Equal(t, DefaultDataset, c.Dataset)
	assert.Equal(t, 1, c.Concurrency)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("NAIVEBAYES_TRIALS", "7")
	t.Setenv("NAIVEBAYES_LOG_LEVEL", "debug")
	c, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 7, c.Trials)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(file, []byte("trials: 3\nconcurrency: 4\nplot: out.png\n"), 0o600))

	v := New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"--config", file, "--concurrency=2"}))

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Trials)
	assert.Equal(t, "out.png", c.Plot)
	// Flags win over the file.
	assert.Equal(t, 2, c.Concurrency)
}

func TestLoadMissingFile(t *testing.T) {
	v := New()
	v.Set(KeyConfig, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load(v)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		c, err := Load(New())
		require.NoError(t, err)
		return c
	}
	for _, test := range []struct {
		Name   string
		modify func(*Config)
	}{
		{Name: "Dataset", modify: func(c *Config) { c.Dataset = "" }},
		{Name: "Trials", modify: func(c *Config) { c.Trials = 0 }},
		{Name: "Fraction zero", modify: func(c *Config) { c.TestFraction = 0 }},
		{Name: "Fraction one", modify: func(c *Config) { c.TestFraction = 1 }},
		{Name: "Fields", modify: func(c *Config) { c.Fields = 1 }},
		{Name: "Concurrency", modify: func(c *Config) { c.Concurrency = 0 }},
		{Name: "Floor", modify: func(c *Config) { c.VarianceFloor = 0 }},
	} {
		c := valid()
		test.modify(&c)
		assert.ErrorIs(t, c.Validate(), ErrInvalid, "Case %s", test.Name)
	}
	assert.NoError(t, valid().Validate())
}

func TestSettings(t *testing.T) {
	c, err := Load(New())
	require.NoError(t, err)
	log := zap.NewNop()
	s := c.Settings(log)
	assert.Equal(t, c.Trials, s.Trials)
	assert.Equal(t, c.TestFraction, s.TestFraction)
	assert.Equal(t, c.SeedSalt, s.SeedSalt)
	assert.Equal(t, c.VarianceFloor, s.VarianceFloor)
	assert.Equal(t, c.Concurrency, s.Concurrent)
	assert.Same(t, log, s.Logger)
}
