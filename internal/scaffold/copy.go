package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/modforge/cli/internal/catalog"
	"github.com/modforge/cli/internal/fsutil"
	"github.com/modforge/cli/internal/output"
)

// CopyDiskModules copies each disk-origin module tree into the program
// directory. Version-control metadata and bytecode caches are excluded and
// symbolic links are copied as links.
//
// A pre-existing destination or any I/O failure stops the run immediately:
// the error names the module so the user knows exactly what failed. Disk
// copies never overwrite, unlike remote fetches.
func CopyDiskModules(modules []catalog.Ref, programDir string) error {
	for _, ref := range modules {
		dest := filepath.Join(programDir, ref.Name)

		if fsutil.Exists(dest) {
			return &CopyError{
				Module: ref.Name,
				Err:    fmt.Errorf("%w: %s", ErrDestinationExists, dest),
			}
		}

		if err := fsutil.ValidateDir(ref.Origin.Path); err != nil {
			return &CopyError{Module: ref.Name, Err: err}
		}

		output.Info("copying module",
			"module", ref.Name,
			"from", ref.Origin.Path,
			"to", dest,
		)
		if err := fsutil.CopyTree(ref.Origin.Path, dest, fsutil.DefaultCopyOptions()); err != nil {
			return &CopyError{Module: ref.Name, Err: err}
		}
	}
	return nil
}
