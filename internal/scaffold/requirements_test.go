package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modforge/cli/internal/testutil"
)

func TestConcatenateRequirements_DeduplicatesAndSorts(t *testing.T) {
	programDir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(programDir, "m1"), "requirements.txt", "a==1\nb==2\n")
	testutil.WriteFile(t, filepath.Join(programDir, "m2"), "requirements.txt", "a==1\n")
	testutil.WriteFile(t, filepath.Join(programDir, "m3", "deep"), "requirements.txt", "c==3\n")

	reqs, err := ConcatenateRequirements(programDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"a==1", "b==2", "c==3"}, reqs)
	assert.Equal(t, "a==1\nb==2\nc==3\n",
		testutil.ReadFile(t, filepath.Join(programDir, "requirements.txt")))
}

func TestConcatenateRequirements_IgnoresBlankLines(t *testing.T) {
	programDir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(programDir, "m1"), "requirements.txt", "\na==1\n\n  \nb==2\n")

	reqs, err := ConcatenateRequirements(programDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a==1", "b==2"}, reqs)
}

func TestConcatenateRequirements_NoFilesWritesEmptyManifest(t *testing.T) {
	programDir := t.TempDir()

	reqs, err := ConcatenateRequirements(programDir)
	require.NoError(t, err)
	assert.Empty(t, reqs)
	assert.Equal(t, "", testutil.ReadFile(t, filepath.Join(programDir, "requirements.txt")))
}

func TestCreateReadme(t *testing.T) {
	programDir := t.TempDir()
	require.NoError(t, CreateReadme("demo", programDir, []string{"pandas==2.0", "requests==2.31"}))

	content := testutil.ReadFile(t, filepath.Join(programDir, "README.md"))
	assert.Contains(t, content, "# demo")
	assert.Contains(t, content, "- pandas==2.0")
	assert.Contains(t, content, "- requests==2.31")
	assert.Contains(t, content, "## Usage")
}
