package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modforge/cli/internal/catalog"
	"github.com/modforge/cli/internal/testutil"
)

func diskRef(t *testing.T, name string, files map[string]string) catalog.Ref {
	t.Helper()
	dir := testutil.MkDir(t, t.TempDir(), name)
	for rel, content := range files {
		testutil.WriteFile(t, dir, rel, content)
	}
	return catalog.Ref{Name: name, Origin: catalog.DiskOrigin(dir)}
}

func TestCopyDiskModules_CopiesTrees(t *testing.T) {
	programDir := t.TempDir()
	logger := diskRef(t, "logger", map[string]string{
		"logger.py":      "class Logger: pass\n",
		"nested/util.py": "pass\n",
	})

	require.NoError(t, CopyDiskModules([]catalog.Ref{logger}, programDir))

	assert.Equal(t, "class Logger: pass\n",
		testutil.ReadFile(t, filepath.Join(programDir, "logger", "logger.py")))
	assert.FileExists(t, filepath.Join(programDir, "logger", "nested", "util.py"))
}

func TestCopyDiskModules_ExcludesMetadata(t *testing.T) {
	programDir := t.TempDir()
	mod := diskRef(t, "config", map[string]string{
		"config.py":   "x = 1\n",
		".git/HEAD":   "ref\n",
		"cfg.pyc":     "bytecode",
		".github/c.y": "ci",
	})

	require.NoError(t, CopyDiskModules([]catalog.Ref{mod}, programDir))

	assert.NoDirExists(t, filepath.Join(programDir, "config", ".git"))
	assert.NoDirExists(t, filepath.Join(programDir, "config", ".github"))
	assert.NoFileExists(t, filepath.Join(programDir, "config", "cfg.pyc"))
	assert.FileExists(t, filepath.Join(programDir, "config", "config.py"))
}

func TestCopyDiskModules_KeepsModuleGitignore(t *testing.T) {
	// Only VCS metadata and bytecode caches are excluded; a module's own
	// .gitignore is content and must survive the copy.
	programDir := t.TempDir()
	mod := diskRef(t, "config", map[string]string{
		"config.py":  "x = 1\n",
		".gitignore": "*.pyc\n",
	})

	require.NoError(t, CopyDiskModules([]catalog.Ref{mod}, programDir))

	assert.Equal(t, "*.pyc\n",
		testutil.ReadFile(t, filepath.Join(programDir, "config", ".gitignore")))
}

func TestCopyDiskModules_RefusesExistingDestination(t *testing.T) {
	programDir := t.TempDir()
	existing := filepath.Join(programDir, "foo")
	testutil.WriteFile(t, existing, "precious.txt", "do not touch\n")

	mod := diskRef(t, "foo", map[string]string{"other.py": "pass\n"})

	err := CopyDiskModules([]catalog.Ref{mod}, programDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDestinationExists)

	var copyErr *CopyError
	require.ErrorAs(t, err, &copyErr)
	assert.Equal(t, "foo", copyErr.Module)

	// Existing contents must be untouched.
	assert.Equal(t, "do not touch\n", testutil.ReadFile(t, filepath.Join(existing, "precious.txt")))
	assert.NoFileExists(t, filepath.Join(existing, "other.py"))
}

func TestCopyDiskModules_MissingSourceNamesModule(t *testing.T) {
	programDir := t.TempDir()
	mod := catalog.Ref{Name: "ghost", Origin: catalog.DiskOrigin(filepath.Join(t.TempDir(), "absent"))}

	err := CopyDiskModules([]catalog.Ref{mod}, programDir)
	require.Error(t, err)

	var copyErr *CopyError
	require.ErrorAs(t, err, &copyErr)
	assert.Equal(t, "ghost", copyErr.Module)
}

func TestEnsureProgramDir_RefusesExisting(t *testing.T) {
	outputDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(outputDir, "demo"), 0o755))

	_, err := EnsureProgramDir(outputDir, "demo")
	assert.ErrorIs(t, err, ErrProgramDirExists)
}

func TestEnsureProgramDir_CreatesFresh(t *testing.T) {
	outputDir := t.TempDir()

	programDir, err := EnsureProgramDir(outputDir, "demo")
	require.NoError(t, err)
	assert.DirExists(t, programDir)
	assert.Equal(t, filepath.Join(outputDir, "demo"), programDir)
}
