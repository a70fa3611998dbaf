package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/modforge/cli/internal/output"
)

// DefaultManifest is the built-in fallback mapping used when the manifest
// file is missing or malformed. Keeping it tiny means a broken manifest
// degrades to a mostly disk-only catalog instead of killing the run.
func DefaultManifest() map[string]string {
	return map[string]string{
		"scraper": "https://github.com/modforge/module-scraper",
	}
}

// LoadManifest reads the remote module manifest: a YAML mapping of module
// name to git repository URL. A missing, unreadable, or non-mapping file is
// a recoverable condition: the built-in default is returned and a warning
// logged.
func LoadManifest(path string) map[string]string {
	urls, err := readManifest(path)
	if err != nil {
		output.Warn("could not load module manifest, using built-in defaults",
			"path", path,
			"error", err,
		)
		return DefaultManifest()
	}
	return urls
}

func readManifest(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var urls map[string]string
	if err := yaml.Unmarshal(data, &urls); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if urls == nil {
		return nil, fmt.Errorf("manifest is empty")
	}
	return urls, nil
}
