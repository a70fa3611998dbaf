package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/modforge/cli/internal/fsutil"
	"github.com/modforge/cli/internal/output"
)

// sharedUtilsRel is the conventional subtree multiple modules may each
// carry a copy of; occurrences are consolidated into one program-level
// copy.
var sharedUtilsRel = filepath.Join("utils", "shared")

// consolidateCopyOptions is the skip set for the merge and unpack stages:
// the defaults plus per-module .gitignore files, which stay inside their
// module instead of being promoted to the program level.
func consolidateCopyOptions() fsutil.CopyOptions {
	opts := fsutil.DefaultCopyOptions()
	opts.SkipNames = append(append([]string{}, opts.SkipNames...), ".gitignore")
	return opts
}

// MergeSharedUtilities consolidates every module's utils/shared subtree
// into a single program-level utils/shared. Modules are processed in
// selection order, which is what makes conflict resolution deterministic:
// the first module to contribute a relative path wins, later duplicates
// are skipped with a notice.
//
// Each per-module source is force-removed after merging, so re-running the
// step is a no-op: the sources are gone and every candidate path already
// exists at the destination.
func MergeSharedUtilities(moduleNames []string, programDir string) error {
	dst := filepath.Join(programDir, sharedUtilsRel)

	for _, module := range moduleNames {
		src := filepath.Join(programDir, module, sharedUtilsRel)
		if !fsutil.IsDir(src) {
			continue
		}

		if !fsutil.Exists(dst) {
			output.Info("unpacking shared utilities", "module", module)
			if err := fsutil.CopyTree(src, dst, consolidateCopyOptions()); err != nil {
				return fmt.Errorf("merging shared utilities from %q: %w", module, err)
			}
		} else {
			if err := mergeInto(src, dst, module); err != nil {
				return fmt.Errorf("merging shared utilities from %q: %w", module, err)
			}
		}

		// Read-only entries must not abort the run; force-remove clears
		// the attribute and retries.
		if err := fsutil.ForceRemoveAll(src); err != nil {
			return fmt.Errorf("removing %s for %q: %w", sharedUtilsRel, module, err)
		}
		output.Debug("removed module shared utilities", "module", module)
	}
	return nil
}

// mergeInto copies everything under src that is absent at the matching
// relative path under dst. Existing destination entries are left
// untouched.
func mergeInto(src, dst, module string) error {
	opts := consolidateCopyOptions()

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if skipName(entry.Name(), opts) {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case !fsutil.Exists(dstPath):
			switch {
			case entry.IsDir():
				err = fsutil.CopyTree(srcPath, dstPath, opts)
			case entry.Type()&fs.ModeSymlink != 0:
				err = fsutil.CopySymlink(srcPath, dstPath)
			default:
				err = fsutil.CopyFile(srcPath, dstPath)
			}
			if err != nil {
				return err
			}
			output.Debug("merged shared utility", "module", module, "entry", entry.Name())

		case entry.IsDir() && fsutil.IsDir(dstPath):
			// Both sides are directories: descend so a later module can
			// still contribute files the first one did not have.
			if err := mergeInto(srcPath, dstPath, module); err != nil {
				return err
			}

		default:
			output.Info("skipping shared utility, already present",
				"module", module,
				"entry", entry.Name(),
			)
		}
	}
	return nil
}

func skipName(name string, opts fsutil.CopyOptions) bool {
	for _, s := range opts.SkipNames {
		if name == s {
			return true
		}
	}
	return false
}
