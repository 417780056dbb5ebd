package main

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the resolved settings for a single solve invocation,
// bound from flags, environment variables, and defaults in that order
// of precedence.
type Config struct {
	ProblemFile string
	Verbose     bool
	LogFormat   string // "console" or "json"
}

func loadConfig() *Config {
	viper.SetEnvPrefix("SIMPLEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("problem", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("log-format", "console")

	return &Config{
		ProblemFile: viper.GetString("problem"),
		Verbose:     viper.GetBool("verbose"),
		LogFormat:   viper.GetString("log-format"),
	}
}
