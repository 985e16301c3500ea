// Package config loads edakit settings with the precedence
// flags > environment > config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/edalab/edakit/internal/analyze"
)

// Quality holds the thresholds feeding the quality heuristics.
type Quality struct {
	MinRows         int     `mapstructure:"min_rows" yaml:"min_rows"`
	MaxCols         int     `mapstructure:"max_cols" yaml:"max_cols"`
	MaxMissingShare float64 `mapstructure:"max_missing_share" yaml:"max_missing_share"`
	HighCardinality int     `mapstructure:"high_cardinality" yaml:"high_cardinality"`
	IDPattern       string  `mapstructure:"id_pattern" yaml:"id_pattern"`
}

// Report holds the report-rendering defaults.
type Report struct {
	OutDir          string  `mapstructure:"out_dir" yaml:"out_dir"`
	TopK            int     `mapstructure:"top_k" yaml:"top_k"`
	MaxHistColumns  int     `mapstructure:"max_hist_columns" yaml:"max_hist_columns"`
	MinMissingShare float64 `mapstructure:"min_missing_share" yaml:"min_missing_share"`
}

// TopCategories bounds the category ranking.
type TopCategories struct {
	MaxColumns int `mapstructure:"max_columns" yaml:"max_columns"`
	MaxUnique  int `mapstructure:"max_unique" yaml:"max_unique"`
}

// Config is the full edakit configuration.
type Config struct {
	Quality       Quality       `mapstructure:"quality" yaml:"quality"`
	Report        Report        `mapstructure:"report" yaml:"report"`
	TopCategories TopCategories `mapstructure:"top_categories" yaml:"top_categories"`
}

// Thresholds converts the quality section into engine thresholds.
func (c *Config) Thresholds() analyze.Thresholds {
	return analyze.Thresholds{
		MinRows:         c.Quality.MinRows,
		MaxCols:         c.Quality.MaxCols,
		MaxMissingShare: c.Quality.MaxMissingShare,
		HighCardinality: c.Quality.HighCardinality,
		IDPattern:       c.Quality.IDPattern,
	}
}

// Load reads configuration from file, env and defaults. When cfgFile is
// empty, ~/.edakit/config.yaml is used if present.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EDAKIT")
	v.AutomaticEnv()

	def := analyze.DefaultThresholds()
	v.SetDefault("quality.min_rows", def.MinRows)
	v.SetDefault("quality.max_cols", def.MaxCols)
	v.SetDefault("quality.max_missing_share", def.MaxMissingShare)
	v.SetDefault("quality.high_cardinality", def.HighCardinality)
	v.SetDefault("quality.id_pattern", def.IDPattern)
	v.SetDefault("report.out_dir", "reports")
	v.SetDefault("report.top_k", 5)
	v.SetDefault("report.max_hist_columns", 6)
	v.SetDefault("report.min_missing_share", 0.3)
	v.SetDefault("top_categories.max_columns", 5)
	v.SetDefault("top_categories.max_unique", 50)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".edakit"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// the config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the configuration to cfgFile, or to ~/.edakit/config.yaml when
// cfgFile is empty.
func Save(c *Config, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".edakit")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
