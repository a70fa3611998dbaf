package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for modforge configuration.
const envPrefix = "MODFORGE"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	// Set up environment variable bindings
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	_ = v.BindEnv("modulesDir", "MODFORGE_MODULES_DIR")
	_ = v.BindEnv("outputDir", "MODFORGE_OUTPUT_DIR")
	_ = v.BindEnv("manifestFile", "MODFORGE_MANIFEST")
	_ = v.BindEnv("fetch.workers", "MODFORGE_FETCH_WORKERS")
	_ = v.BindEnv("fetch.retries", "MODFORGE_FETCH_RETRIES")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	// Expand ~ in path
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	// Set up viper for the config file
	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	// Try to read config file (not an error if it doesn't exist)
	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
		// Config file not found is OK, we'll use defaults + env vars
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults, expanding
// the directory paths to absolute form.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	cfg = cfg.WithDefaults()

	if cfg.ModulesDir, err = ExpandPath(cfg.ModulesDir); err != nil {
		return nil, fmt.Errorf("expanding modules dir: %w", err)
	}
	if cfg.OutputDir, err = ExpandPath(cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("expanding output dir: %w", err)
	}
	if cfg.ManifestFile, err = ExpandPath(cfg.ManifestFile); err != nil {
		return nil, fmt.Errorf("expanding manifest path: %w", err)
	}

	return cfg, nil
}
