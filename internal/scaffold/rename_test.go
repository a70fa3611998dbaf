package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modforge/cli/internal/testutil"
)

func TestStripUnderscores_RenamesRootEntries(t *testing.T) {
	programDir := t.TempDir()
	testutil.WriteFile(t, programDir, "_gitignore", "*.pyc\n")
	testutil.WriteFile(t, programDir, "_start.bash", "#!/bin/bash\n")
	testutil.WriteFile(t, programDir, "main.py", "pass\n")

	require.NoError(t, StripUnderscores(programDir))

	assert.FileExists(t, filepath.Join(programDir, ".gitignore"))
	assert.FileExists(t, filepath.Join(programDir, "start.bash"))
	assert.FileExists(t, filepath.Join(programDir, "main.py"))
	assert.NoFileExists(t, filepath.Join(programDir, "_gitignore"))
	assert.NoFileExists(t, filepath.Join(programDir, "_start.bash"))
}

func TestStripUnderscores_SkipsWhenTargetExists(t *testing.T) {
	programDir := t.TempDir()
	testutil.WriteFile(t, programDir, "_config.py", "new\n")
	testutil.WriteFile(t, programDir, "config.py", "existing\n")

	require.NoError(t, StripUnderscores(programDir))

	assert.Equal(t, "existing\n", testutil.ReadFile(t, filepath.Join(programDir, "config.py")))
	assert.FileExists(t, filepath.Join(programDir, "_config.py"))
}

func TestCreatePlaceholderFolders(t *testing.T) {
	programDir := t.TempDir()
	require.NoError(t, CreatePlaceholderFolders(programDir))

	assert.FileExists(t, filepath.Join(programDir, "debug_logs", "_debug_logs_go_here.txt"))
	assert.FileExists(t, filepath.Join(programDir, "input", "_input_goes_here.txt"))
	assert.FileExists(t, filepath.Join(programDir, "output", "_output_goes_here.txt"))
}
