package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/modforge/cli/internal/output"
)

const requirementsFile = "requirements.txt"

// ConcatenateRequirements gathers every requirements.txt anywhere under
// the program directory, deduplicates the entries, and writes the sorted
// union to the program root. The merged entries are returned for the
// README generator.
func ConcatenateRequirements(programDir string) ([]string, error) {
	rootFile := filepath.Join(programDir, requirementsFile)

	seen := make(map[string]bool)
	err := filepath.WalkDir(programDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != requirementsFile || path == rootFile {
			return nil
		}

		output.Debug("found requirements file", "path", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				seen[line] = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collecting requirements: %w", err)
	}

	requirements := make([]string, 0, len(seen))
	for req := range seen {
		requirements = append(requirements, req)
	}
	sort.Strings(requirements)

	var b strings.Builder
	for _, req := range requirements {
		b.WriteString(req)
		b.WriteString("\n")
	}
	if err := os.WriteFile(rootFile, []byte(b.String()), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", rootFile, err)
	}

	output.Info("wrote merged requirements", "count", len(requirements))
	return requirements, nil
}
