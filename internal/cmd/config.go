package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modforge/cli/internal/config"
	"github.com/modforge/cli/internal/output"
)

// defaultConfigTemplate is written by `modforge config init`. It mirrors
// DefaultConfig so an untouched file behaves exactly like no file at all.
const defaultConfigTemplate = `# modforge configuration
# Environment variables (MODFORGE_*) override values in this file.

# Local modules directory, scanned two levels deep for module folders.
modulesDir: ~/.modforge/modules

# Where new program directories are created.
outputDir: ~

# YAML file mapping module names to git clone URLs.
manifestFile: ~/.modforge/module_urls.yaml

# Modules included in every program whether selected or not.
alwaysInclude:
  - main
  - start
  - install
  - gitignore
  - requirements
  - readme
  - logger
  - config
  - utils

# Staging folders flattened into the program root, in order.
unpackFolders:
  - main
  - gitignore
  - start
  - install

fetch:
  workers: 4
  retries: 3
  retryDelay: 1s
  cloneTimeout: 2m
`

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage modforge configuration",
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd())

	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	var forceFlag bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long:  `Write a commented default config file to ~/.modforge/config.yaml (or MODFORGE_CONFIG).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(forceFlag)
		},
	}

	initCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite an existing config file")
	return initCmd
}

func runConfigInit(force bool) error {
	configFile, err := config.GetConfigFile()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configFile); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configFile)
	}

	if err := config.EnsureHomeDir(); err != nil {
		return fmt.Errorf("creating modforge home: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigTemplate), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	output.Println(output.FormatCheckmark("Config written to " + configFile))
	return nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}
}

func runConfigShow() error {
	cfg := GetConfig()

	output.Println("modulesDir:    " + cfg.ModulesDir)
	output.Println("outputDir:     " + cfg.OutputDir)
	output.Println("manifestFile:  " + cfg.ManifestFile)
	output.Println("alwaysInclude: " + strings.Join(cfg.AlwaysInclude, ", "))
	output.Println("unpackFolders: " + strings.Join(cfg.UnpackFolders, ", "))
	output.Println(fmt.Sprintf("fetch:         workers=%d retries=%d retryDelay=%s cloneTimeout=%s",
		cfg.Fetch.Workers, cfg.Fetch.Retries, cfg.Fetch.RetryDelay, cfg.Fetch.CloneTimeout))
	return nil
}
