// Package config loads stylec.yaml, the stylec command configuration.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the project directory
const FileName = "stylec.yaml"

// EnvPrefix prefixes environment overrides, e.g. STYLEC_OUTPUT_FORMAT
const EnvPrefix = "STYLEC"

// Output formats understood by the inspect command
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned when output.format is not a known format
var ErrUnknownFormat = errors.New("unknown output format")

// Config represents the stylec.yaml configuration
type Config struct {
	// Path of the style manifest, relative to the project directory
	Manifest string `mapstructure:"manifest" yaml:"manifest"`

	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Watch  WatchConfig  `mapstructure:"watch" yaml:"watch"`
}

// OutputConfig controls how definitions are printed
type OutputConfig struct {
	// One of text, json, yaml
	Format string `mapstructure:"format" yaml:"format"`

	// Whether text output is colored
	Color bool `mapstructure:"color" yaml:"color"`
}

// LogConfig controls the logrus logger
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	JSON  bool   `mapstructure:"json" yaml:"json"`
}

// WatchConfig controls the watch command
type WatchConfig struct {
	// Quiet period after the last file event before reloading
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Manifest: "styles.yaml",
		Output: OutputConfig{
			Format: FormatText,
			Color:  true,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
		Watch: WatchConfig{
			Debounce: 100 * time.Millisecond,
		},
	}
}

// defaults flattens DefaultConfig into viper keys
func defaults() map[string]any {
	d := DefaultConfig()
	return map[string]any{
		"manifest":       d.Manifest,
		"output.format":  d.Output.Format,
		"output.color":   d.Output.Color,
		"log.level":      d.Log.Level,
		"log.json":       d.Log.JSON,
		"watch.debounce": d.Watch.Debounce,
	}
}

// Load reads configuration for the project in projectPath.
// If configFile is set it must exist; otherwise stylec.yaml is optional.
// Environment variables override file values.
func Load(fs afero.Fs, projectPath, configFile string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(projectPath)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save writes config to stylec.yaml in projectPath
func Save(fs afero.Fs, config *Config, projectPath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	configPath := filepath.Join(projectPath, FileName)
	return afero.WriteFile(fs, configPath, data, 0644)
}

// Validate checks values viper cannot check for us
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Output.Format)
	}
	return nil
}

// ManifestPath resolves the manifest against projectPath
func (c *Config) ManifestPath(projectPath string) string {
	if filepath.IsAbs(c.Manifest) {
		return c.Manifest
	}
	return filepath.Join(projectPath, c.Manifest)
}

// applyDefaults applies default values to empty fields
func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if config.Manifest == "" {
		config.Manifest = defaults.Manifest
	}
	if config.Output.Format == "" {
		config.Output.Format = defaults.Output.Format
	}
	config.Output.Format = strings.ToLower(config.Output.Format)
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}
	if config.Watch.Debounce <= 0 {
		config.Watch.Debounce = defaults.Watch.Debounce
	}
}
