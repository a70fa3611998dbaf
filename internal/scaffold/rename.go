package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modforge/cli/internal/fsutil"
	"github.com/modforge/cli/internal/output"
)

// StripUnderscores removes the leading underscore from root-level entries.
// Module templates ship dotfiles with an underscore prefix so they stay
// visible and inert until the program is assembled; "_gitignore" becomes
// ".gitignore", everything else just loses the underscore.
func StripUnderscores(programDir string) error {
	entries, err := os.ReadDir(programDir)
	if err != nil {
		return fmt.Errorf("reading program directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "_") {
			continue
		}

		newName := strings.TrimPrefix(name, "_")
		if name == "_gitignore" {
			newName = ".gitignore"
		}

		oldPath := filepath.Join(programDir, name)
		newPath := filepath.Join(programDir, newName)

		if fsutil.Exists(newPath) {
			output.Warn("skipping rename, target already exists", "from", name, "to", newName)
			continue
		}
		if err := os.Rename(oldPath, newPath); err != nil {
			output.Warn("could not rename entry", "from", name, "to", newName, "error", err)
			continue
		}
		output.Debug("renamed entry", "from", name, "to", newName)
	}
	return nil
}
