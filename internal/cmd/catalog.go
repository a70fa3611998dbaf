package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/modforge/cli/internal/catalog"
	"github.com/modforge/cli/internal/output"
)

// NewCatalogCmd creates the catalog command.
func NewCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List available modules and where they come from",
		Long: `List every module the new command can include, with its origin.

Remote modules come from the URL manifest; disk modules from the local
modules directory. A name present in both resolves to the remote.`,
		RunE: runCatalog,
	}
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	cat, err := catalog.Build(catalog.BuildOptions{
		ManifestPath: cfg.ManifestFile,
		DiskRoot:     cfg.ModulesDir,
		GOOS:         runtime.GOOS,
	})
	if err != nil {
		return err
	}

	files := make([]output.FileEntry, 0, len(cat))
	for _, name := range cat.Names() {
		ref := cat[name]
		files = append(files, output.FileEntry{
			Path:        name,
			Description: ref.Origin.Kind.String() + "  " + ref.Origin.Location(),
		})
	}

	output.Print(output.RenderFileTree(files, 24))
	return nil
}
