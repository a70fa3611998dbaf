package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/modforge/cli/internal/output"
)

// placeholderFolders are the standard working folders every generated
// program starts with; each holds one placeholder file so the folder
// survives version control.
var placeholderFolders = []struct {
	folder      string
	placeholder string
}{
	{"debug_logs", "_debug_logs_go_here"},
	{"input", "_input_goes_here"},
	{"output", "_output_goes_here"},
}

// CreatePlaceholderFolders creates the debug_logs, input, and output
// folders at the program root.
func CreatePlaceholderFolders(programDir string) error {
	for _, p := range placeholderFolders {
		dir := filepath.Join(programDir, p.folder)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", p.folder, err)
		}

		content := fmt.Sprintf("This is a placeholder file in the %s folder.\n", p.folder)
		file := filepath.Join(dir, p.placeholder+".txt")
		if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing placeholder in %s: %w", p.folder, err)
		}
	}

	output.Debug("created placeholder folders")
	return nil
}
