// Package config loads junction settings from defaults, an optional TOML
// file and JUNCTION_* environment variables, in increasing precedence.
// Command-line flags bound to the same viper instance win over all three.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. JUNCTION_BUDGET.
const EnvPrefix = "JUNCTION"

// Keys shared by SetDefaults, flag binding and Config.
const (
	KeyBudget   = "budget"
	KeyTopK     = "top_k"
	KeyWorkers  = "workers"
	KeyMetric   = "metric"
	KeyLogJSON  = "log.json"
	KeyLogLevel = "log.level"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the settings of one junction run.
type Config struct {
	Budget  int    `mapstructure:"budget"`
	TopK    int    `mapstructure:"top_k"`
	Workers int    `mapstructure:"workers"`
	Metric  string `mapstructure:"metric"`
	Log     Log    `mapstructure:"log"`
}

// Log selects logger output.
type Log struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBudget, 1000)
	v.SetDefault(KeyTopK, 3)
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyMetric, "x-product")
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyLogLevel, "info")
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// Load merges the TOML file at path (if non-empty) into v and decodes the result.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "config: read %s", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "config: decode")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate rejects values the clustering entry points cannot accept.
func (c Config) Validate() error {
	switch {
	case c.Budget < 0:
		return errors.Wrapf(ErrInvalid, "budget %d is negative", c.Budget)
	case c.TopK < 1:
		return errors.Wrapf(ErrInvalid, "top_k %d is below 1", c.TopK)
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalid, "workers %d is below 1", c.Workers)
	}

	return nil
}
