package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for modforge.
type Paths struct {
	// ConfigFile is the path to the config file (~/.modforge/config.yaml).
	ConfigFile string

	// ModulesDir is the local modules directory (~/.modforge/modules).
	ModulesDir string

	// ManifestFile is the remote manifest (~/.modforge/module_urls.yaml).
	ManifestFile string

	// HomeDir is the modforge home directory (~/.modforge).
	HomeDir string
}

// DefaultPaths returns the default paths for modforge.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	forgeHome := filepath.Join(homeDir, ".modforge")

	return &Paths{
		ConfigFile:   filepath.Join(forgeHome, "config.yaml"),
		ModulesDir:   filepath.Join(forgeHome, "modules"),
		ManifestFile: filepath.Join(forgeHome, "module_urls.yaml"),
		HomeDir:      forgeHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If MODFORGE_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("MODFORGE_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// EnsureHomeDir creates the modforge home directory if it doesn't exist.
func EnsureHomeDir() error {
	paths, err := DefaultPaths()
	if err != nil {
		return err
	}

	return os.MkdirAll(paths.HomeDir, 0o755)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
