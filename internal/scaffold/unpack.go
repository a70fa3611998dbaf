package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/modforge/cli/internal/fsutil"
	"github.com/modforge/cli/internal/output"
)

// UnpackFolders moves the contents of each named staging folder up into
// the program root, then deletes the emptied folder. Entries colliding
// with existing root content are skipped with a notice, never overwritten;
// the source folder is removed regardless, so skipped entries simply stay
// absent from the unpacked result.
func UnpackFolders(folders []string, programDir string) error {
	for _, folder := range folders {
		src := filepath.Join(programDir, folder)
		if !fsutil.IsDir(src) {
			continue
		}

		entries, err := os.ReadDir(src)
		if err != nil {
			return fmt.Errorf("reading folder %q: %w", folder, err)
		}

		opts := consolidateCopyOptions()
		for _, entry := range entries {
			if skipName(entry.Name(), opts) {
				continue
			}

			srcPath := filepath.Join(src, entry.Name())
			dstPath := filepath.Join(programDir, entry.Name())

			if fsutil.Exists(dstPath) {
				output.Info("skipping unpack, entry already exists",
					"folder", folder,
					"entry", entry.Name(),
				)
				continue
			}

			switch {
			case entry.IsDir():
				err = fsutil.CopyTree(srcPath, dstPath, opts)
			case entry.Type()&fs.ModeSymlink != 0:
				err = fsutil.CopySymlink(srcPath, dstPath)
			default:
				err = fsutil.CopyFile(srcPath, dstPath)
			}
			if err != nil {
				return fmt.Errorf("unpacking %q from %q: %w", entry.Name(), folder, err)
			}
			output.Debug("unpacked entry", "folder", folder, "entry", entry.Name())
		}

		if err := fsutil.ForceRemoveAll(src); err != nil {
			return fmt.Errorf("removing folder %q: %w", folder, err)
		}
		output.Info("removed staging folder", "folder", folder)
	}
	return nil
}
