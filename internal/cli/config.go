package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/referlab/refnet/pkg/errors"
	"github.com/referlab/refnet/pkg/growth"
)

// fileConfig mirrors the refnet.toml layout:
//
//	[simulation]
//	referrers = 100
//	capacity = 10
//	seed = 42
//
//	[bonus]
//	max = 10000
//	increment = 10
type fileConfig struct {
	Simulation growth.Config      `toml:"simulation"`
	Bonus      growth.BonusConfig `toml:"bonus"`
}

// loadConfig reads the config file for the run. The --config flag takes
// priority; otherwise ./refnet.toml is used when present. A zero fileConfig
// is returned when no file exists, so every field falls back to the growth
// package defaults.
func (c *CLI) loadConfig() (fileConfig, error) {
	var cfg fileConfig

	path := c.configPath
	if path == "" {
		path = appName + ".toml"
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "config %s", path)
	}
	c.Logger.Debug("loaded config", "path", path)
	return cfg, nil
}
