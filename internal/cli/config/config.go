// Package config loads CLI defaults from an optional fsmatch.yml file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the fsmatch CLI configuration
type Config struct {
	NoColor bool `mapstructure:"no_color"`
	Trace   bool `mapstructure:"trace"`
	// Patterns maps alias names to pattern expressions; `fsmatch match
	// @name ...` resolves through this table.
	Patterns map[string]string `mapstructure:"patterns"`
}

// Load loads the configuration from fsmatch.yml or fsmatch.yaml in dir.
// A missing config file is not an error; defaults apply.
func Load(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("no_color", false)
	v.SetDefault("trace", false)

	v.SetConfigName("fsmatch")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("FSMATCH")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
