package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/az-ai-labs/go-punkt/params"
)

// cliConfig represents the punkt.yml configuration consumed by train and
// segment. Only four numeric thresholds are overridable (the abbreviation
// lower and upper bounds and the collocation and sentence-starter lower
// bounds); the other thresholds and the character classes always come
// from params.Default.
type cliConfig struct {
	Language   string           `mapstructure:"language"`
	Thresholds thresholdsConfig `mapstructure:"thresholds"`
}

type thresholdsConfig struct {
	AbbrevLowerBound          float64 `mapstructure:"abbrev_lower_bound"`
	AbbrevUpperBound          float64 `mapstructure:"abbrev_upper_bound"`
	CollocationLowerBound     float64 `mapstructure:"collocation_lower_bound"`
	SentenceStarterLowerBound float64 `mapstructure:"sentence_starter_lower_bound"`
}

// loadConfig reads punkt.yml from the current directory if present,
// falling back to the Kiss-Strunk defaults. A missing config file is not
// an error.
func loadConfig() (*cliConfig, error) {
	v := viper.New()

	def := params.Default()
	v.SetDefault("language", "")
	v.SetDefault("thresholds.abbrev_lower_bound", def.AbbrevLowerBound)
	v.SetDefault("thresholds.abbrev_upper_bound", def.AbbrevUpperBound)
	v.SetDefault("thresholds.collocation_lower_bound", def.CollocationLowerBound)
	v.SetDefault("thresholds.sentence_starter_lower_bound", def.SentenceStarterLowerBound)

	v.SetConfigName("punkt")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// resolveParams returns a params.Params with the config's threshold
// overrides applied on top of the Kiss-Strunk defaults.
func (c *cliConfig) resolveParams() params.Params {
	p := params.Default()
	p.AbbrevLowerBound = c.Thresholds.AbbrevLowerBound
	p.AbbrevUpperBound = c.Thresholds.AbbrevUpperBound
	p.CollocationLowerBound = c.Thresholds.CollocationLowerBound
	p.SentenceStarterLowerBound = c.Thresholds.SentenceStarterLowerBound
	return p
}
