// Package config provides configuration loading and management.
package config

import "time"

// FetchConfig contains remote-fetch tuning.
type FetchConfig struct {
	// Workers bounds how many modules are cloned concurrently.
	// Env: MODFORGE_FETCH_WORKERS, Default: 4
	Workers int `mapstructure:"workers"`

	// Retries is the number of clone attempts for transient permission
	// errors. Env: MODFORGE_FETCH_RETRIES, Default: 3
	Retries int `mapstructure:"retries"`

	// RetryDelay is the fixed pause between clone attempts.
	// Default: 1s
	RetryDelay time.Duration `mapstructure:"retryDelay"`

	// CloneTimeout bounds a single clone so an unreachable remote cannot
	// hang the run. Default: 2m
	CloneTimeout time.Duration `mapstructure:"cloneTimeout"`
}

// Config represents the modforge CLI configuration.
// Loaded from ~/.modforge/config.yaml with MODFORGE_* env overrides.
type Config struct {
	// ModulesDir is the local modules directory, scanned for disk-origin
	// modules. Env: MODFORGE_MODULES_DIR, Default: ~/.modforge/modules
	ModulesDir string `mapstructure:"modulesDir"`

	// OutputDir is where new program directories are created.
	// Env: MODFORGE_OUTPUT_DIR, Default: ~ (home directory)
	OutputDir string `mapstructure:"outputDir"`

	// ManifestFile is the YAML file mapping module names to git URLs.
	// Env: MODFORGE_MANIFEST, Default: ~/.modforge/module_urls.yaml
	ManifestFile string `mapstructure:"manifestFile"`

	// AlwaysInclude lists module names mandatory for every program.
	AlwaysInclude []string `mapstructure:"alwaysInclude"`

	// UnpackFolders lists the top-level staging folders whose contents are
	// flattened into the program root after the merge stage, in order.
	UnpackFolders []string `mapstructure:"unpackFolders"`

	// Fetch contains remote-fetch tuning.
	Fetch FetchConfig `mapstructure:"fetch"`
}

// DefaultAlwaysInclude is the mandatory module set baked into every
// generated program.
func DefaultAlwaysInclude() []string {
	return []string{
		"main", "start", "install",
		"gitignore", "requirements", "readme",
		"logger", "config", "utils",
	}
}

// DefaultUnpackFolders is the fixed ordered list of staging folders whose
// contents are unpacked into the program root.
func DefaultUnpackFolders() []string {
	return []string{"main", "gitignore", "start", "install"}
}

// DefaultConfig returns a Config with all default values populated.
// Used by `modforge config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		ModulesDir:    "~/.modforge/modules",
		OutputDir:     "~",
		ManifestFile:  "~/.modforge/module_urls.yaml",
		AlwaysInclude: DefaultAlwaysInclude(),
		UnpackFolders: DefaultUnpackFolders(),
		Fetch: FetchConfig{
			Workers:      4,
			Retries:      3,
			RetryDelay:   time.Second,
			CloneTimeout: 2 * time.Minute,
		},
	}
}

// WithDefaults fills any unset field from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	def := DefaultConfig()

	if c.ModulesDir == "" {
		c.ModulesDir = def.ModulesDir
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.ManifestFile == "" {
		c.ManifestFile = def.ManifestFile
	}
	if len(c.AlwaysInclude) == 0 {
		c.AlwaysInclude = def.AlwaysInclude
	}
	if len(c.UnpackFolders) == 0 {
		c.UnpackFolders = def.UnpackFolders
	}
	if c.Fetch.Workers <= 0 {
		c.Fetch.Workers = def.Fetch.Workers
	}
	if c.Fetch.Retries <= 0 {
		c.Fetch.Retries = def.Fetch.Retries
	}
	if c.Fetch.RetryDelay <= 0 {
		c.Fetch.RetryDelay = def.Fetch.RetryDelay
	}
	if c.Fetch.CloneTimeout <= 0 {
		c.Fetch.CloneTimeout = def.Fetch.CloneTimeout
	}
	return c
}
