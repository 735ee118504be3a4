// Package config loads the optional ptwordfinder.yaml settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is looked up in the working directory when no --config is given.
const FileName = "ptwordfinder.yaml"

// Config holds file-based defaults for the CLI. Flags set on the command line
// take precedence over every value here.
type Config struct {
	Output           string      `yaml:"output"` // "text" or "json"
	Quiet            bool        `yaml:"quiet"`
	SkipBlankWords   bool        `yaml:"skip_blank_words"`
	StripBoilerplate bool        `yaml:"strip_boilerplate"`
	StemLanguage     string      `yaml:"stem_language"` // empty disables stemming
	MaxLineBytes     int         `yaml:"max_line_bytes"`
	HTML             HTMLConfig  `yaml:"html"`
	Stats            StatsConfig `yaml:"stats"`
}

// HTMLConfig holds HTML extraction settings.
type HTMLConfig struct {
	Enabled    bool   `yaml:"enabled"` // treat every target as HTML
	Selector   string `yaml:"selector"`
	IncludeAll bool   `yaml:"include_all"`
}

// StatsConfig holds defaults for the stats command.
type StatsConfig struct {
	Top       int  `yaml:"top"`
	LLMTokens bool `yaml:"llm_tokens"`
	Sentences bool `yaml:"sentences"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output:       "text",
		MaxLineBytes: 1024 * 1024,
		Stats: StatsConfig{
			Top: 10,
		},
	}
}

// Load reads the YAML file at path over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir loads dir/ptwordfinder.yaml, or the defaults if it does not exist.
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to access config: %w", err)
	}
	return Load(path)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("output must be \"text\" or \"json\", got %q", c.Output)
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("max_line_bytes must be positive, got %d", c.MaxLineBytes)
	}
	if c.Stats.Top < 0 {
		return fmt.Errorf("stats.top must not be negative, got %d", c.Stats.Top)
	}
	return nil
}
