package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/modforge/cli/internal/fsutil"
	"github.com/modforge/cli/internal/output"
)

// EnsureProgramDir creates the program directory under outputDir and
// returns its path. The directory must not already exist: refusing to
// reuse a program directory is a hard precondition, not a merge target.
//
// This runs only after selection and confirmation, so an interrupt during
// the interactive phase leaves no partial program directory behind.
func EnsureProgramDir(outputDir, programName string) (string, error) {
	programDir := filepath.Join(outputDir, programName)

	if fsutil.Exists(programDir) {
		return "", fmt.Errorf("%w: %s", ErrProgramDirExists, programDir)
	}

	if err := os.MkdirAll(programDir, 0o755); err != nil {
		return "", fmt.Errorf("creating program directory %s: %w", programDir, err)
	}

	output.Info("created program directory", "path", programDir)
	return programDir, nil
}
