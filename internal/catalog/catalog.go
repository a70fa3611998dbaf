package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/modforge/cli/internal/output"
)

// ErrDiskRoot indicates the configured modules directory exists but is not
// a directory. A missing modules directory is not an error; the catalog
// degrades to remote modules only.
var ErrDiskRoot = errors.New("modules root is not a directory")

// Catalog maps a case-lowered module name to its single authoritative
// origin for this run. Entries are read-only after Build returns.
type Catalog map[string]Ref

// BuildOptions configures catalog construction.
type BuildOptions struct {
	// ManifestPath is the YAML file mapping module names to git URLs.
	ManifestPath string

	// DiskRoot is the local modules directory, scanned two levels deep.
	DiskRoot string

	// GOOS overrides the target platform; empty means runtime.GOOS.
	GOOS string
}

// Build constructs the merged catalog. Remote manifest entries take
// precedence over disk entries with the same name, and exactly one of the
// platform helper modules ("bash" on Windows, "batch" elsewhere) is
// excluded.
func Build(opts BuildOptions) (Catalog, error) {
	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	remote := LoadManifest(opts.ManifestPath)

	disk, err := scanDisk(opts.DiskRoot, remote)
	if err != nil {
		return nil, err
	}

	cat := make(Catalog, len(remote)+len(disk))
	for name, path := range disk {
		key := strings.ToLower(name)
		cat[key] = Ref{Name: key, Origin: DiskOrigin(path)}
	}
	// Remote entries win name collisions.
	for name, url := range remote {
		key := strings.ToLower(name)
		cat[key] = Ref{Name: key, Origin: RemoteOrigin(url)}
	}

	// Exactly one platform helper is excluded, never both.
	excluded := "batch"
	if goos == "windows" {
		excluded = "bash"
	}
	if _, ok := cat[excluded]; ok {
		delete(cat, excluded)
		output.Debug("excluded platform helper module", "name", excluded, "goos", goos)
	}

	output.Debug("catalog built",
		"remote", len(remote),
		"disk", len(disk),
		"total", len(cat),
	)
	return cat, nil
}

// scanDisk walks two levels below root: the first level groups modules by
// category, the second holds the module directories themselves. Names
// already claimed by the remote manifest and names shadowing a top-level
// category directory are skipped.
func scanDisk(root string, remote map[string]string) (map[string]string, error) {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		output.Warn("modules directory not found, using remote modules only", "path", root)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("checking modules root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDiskRoot, root)
	}

	topLevel, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading modules root %s: %w", root, err)
	}

	reserved := make(map[string]bool, len(topLevel))
	for _, entry := range topLevel {
		reserved[strings.ToLower(entry.Name())] = true
	}

	remoteNames := make(map[string]bool, len(remote))
	for name := range remote {
		remoteNames[strings.ToLower(name)] = true
	}

	modules := make(map[string]string)
	for _, group := range topLevel {
		if !group.IsDir() {
			continue
		}
		groupPath := filepath.Join(root, group.Name())
		entries, err := os.ReadDir(groupPath)
		if err != nil {
			return nil, fmt.Errorf("reading module group %s: %w", groupPath, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name := strings.ToLower(entry.Name())
			if remoteNames[name] || reserved[name] {
				continue
			}
			modules[entry.Name()] = filepath.Join(groupPath, entry.Name())
		}
	}
	return modules, nil
}

// Names returns every catalog key in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Candidates returns the sorted catalog keys that are not part of the
// always-include set; these are the names presented to the user.
func (c Catalog) Candidates(alwaysInclude []string) []string {
	always := make(map[string]bool, len(alwaysInclude))
	for _, name := range alwaysInclude {
		always[strings.ToLower(name)] = true
	}

	var names []string
	for name := range c {
		if !always[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
