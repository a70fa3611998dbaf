package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modforge/cli/internal/catalog"
	"github.com/modforge/cli/internal/choose"
	"github.com/modforge/cli/internal/output"
	"github.com/modforge/cli/internal/scaffold"
)

var (
	modulesFlag string
	yesFlag     bool
	outputFlag  string
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	newCmd := &cobra.Command{
		Use:   "new <program-name>",
		Short: "Create a new program from selected modules",
		Long: `Create a new program directory assembled from catalog modules.

Disk modules are copied, remote modules are cloned concurrently, shared
utilities are consolidated, staging folders are unpacked into the program
root, and a requirements manifest plus a README are generated.`,
		Args: cobra.ExactArgs(1),
		RunE: runNew,
	}

	newCmd.Flags().StringVarP(&modulesFlag, "modules", "m", "", "Comma-separated module names (skips the interactive prompt)")
	newCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip the confirmation prompt")
	newCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Directory to create the program in (overrides config)")

	return newCmd
}

func runNew(cmd *cobra.Command, args []string) error {
	programName := args[0]
	cfg := GetConfig()

	cat, err := catalog.Build(catalog.BuildOptions{
		ManifestPath: cfg.ManifestFile,
		DiskRoot:     cfg.ModulesDir,
		GOOS:         runtime.GOOS,
	})
	if err != nil {
		return err
	}
	if len(cat) == 0 {
		return fmt.Errorf("no modules available: check %s and %s", cfg.ModulesDir, cfg.ManifestFile)
	}

	prompter := choose.NewPrompter(os.Stdin, os.Stdout)

	selection, err := selectModules(prompter, cat, cfg.AlwaysInclude)
	if err != nil {
		return err
	}

	if !yesFlag {
		question := fmt.Sprintf("Create program %q with modules: %s?",
			programName, strings.Join(selection.Names(), ", "))
		ok, err := prompter.Confirm(question)
		if err != nil {
			return err
		}
		if !ok {
			return choose.ErrAborted
		}
	}

	outputDir := cfg.OutputDir
	if outputFlag != "" {
		outputDir = outputFlag
	}

	scaffolder := &scaffold.Scaffolder{
		ProgramName:   programName,
		OutputDir:     outputDir,
		AlwaysInclude: cfg.AlwaysInclude,
		UnpackFolders: cfg.UnpackFolders,
		Fetcher: scaffold.NewFetcher(
			cfg.Fetch.Workers,
			cfg.Fetch.Retries,
			cfg.Fetch.RetryDelay,
			cfg.Fetch.CloneTimeout,
		),
	}

	programDir, err := scaffolder.Run(cmd.Context(), selection)
	if err != nil {
		return err
	}

	output.Println("")
	output.Println(output.FormatCheckmark(fmt.Sprintf("Program %q created at %s", programName, programDir)))
	output.Print(programSummary(programDir))
	return nil
}

// selectModules resolves the selection from the --modules flag when given,
// otherwise runs the interactive prompt loop.
func selectModules(prompter *choose.Prompter, cat catalog.Catalog, alwaysInclude []string) (choose.Selection, error) {
	if modulesFlag == "" {
		return prompter.Select(cat, alwaysInclude)
	}

	chosen := choose.ParseInput(modulesFlag)
	if len(chosen) == 0 {
		return nil, fmt.Errorf("--modules given but no module names parsed from %q", modulesFlag)
	}
	selection, invalid := choose.Validate(chosen, alwaysInclude, cat)
	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid module(s): %s", strings.Join(invalid, ", "))
	}
	return selection, nil
}

// programSummary renders the top-level layout of the generated program.
func programSummary(programDir string) string {
	entries, err := os.ReadDir(programDir)
	if err != nil {
		return ""
	}

	files := make([]output.FileEntry, 0, len(entries))
	for _, entry := range entries {
		path := entry.Name()
		desc := ""
		if entry.IsDir() {
			path += "/"
			desc = "directory"
		}
		files = append(files, output.FileEntry{Path: "  " + path, Description: desc})
	}
	return output.RenderFileTree(files, 28)
}
