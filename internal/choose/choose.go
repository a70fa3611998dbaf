// Package choose reduces the module catalog to the user's selection. The
// validation logic is pure; terminal interaction lives in Prompter at the
// boundary so the rules are independently testable.
package choose

import (
	"strings"

	"github.com/modforge/cli/internal/catalog"
)

// Selection is the ordered, deduplicated list of resolved module refs for a
// run. Order is significant: the shared-utility merger processes modules in
// this order, which decides who wins a file conflict.
type Selection []catalog.Ref

// Names returns the module names in selection order.
func (s Selection) Names() []string {
	names := make([]string, 0, len(s))
	for _, ref := range s {
		names = append(names, ref.Name)
	}
	return names
}

// DiskModules returns the refs sourced from local disk, in selection order.
func (s Selection) DiskModules() []catalog.Ref {
	var refs []catalog.Ref
	for _, ref := range s {
		if ref.Origin.Kind == catalog.OriginDisk {
			refs = append(refs, ref)
		}
	}
	return refs
}

// RemoteModules returns the refs sourced from remote repositories, in
// selection order.
func (s Selection) RemoteModules() []catalog.Ref {
	var refs []catalog.Ref
	for _, ref := range s {
		if ref.Origin.Kind == catalog.OriginRemote {
			refs = append(refs, ref)
		}
	}
	return refs
}

// Contains reports whether the selection includes the named module.
func (s Selection) Contains(name string) bool {
	name = strings.ToLower(name)
	for _, ref := range s {
		if ref.Name == name {
			return true
		}
	}
	return false
}

// ParseInput splits comma-separated free-text input into trimmed,
// lowercased module names, dropping empty fragments.
func ParseInput(input string) []string {
	var names []string
	for _, part := range strings.Split(input, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Validate resolves the chosen names plus the always-include set against
// the catalog. On any unknown name it returns the full list of invalid
// names and no selection: the caller must reject the entire input, never
// accept a partial one.
//
// The returned selection preserves chosen order first, then appends the
// always-include modules not already chosen.
func Validate(chosen []string, alwaysInclude []string, cat catalog.Catalog) (Selection, []string) {
	var invalid []string
	seen := make(map[string]bool, len(chosen)+len(alwaysInclude))
	selection := make(Selection, 0, len(chosen)+len(alwaysInclude))

	appendName := func(raw string) {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		ref, ok := cat[name]
		if !ok {
			invalid = append(invalid, name)
			return
		}
		selection = append(selection, ref)
	}

	for _, name := range chosen {
		appendName(name)
	}
	for _, name := range alwaysInclude {
		appendName(name)
	}

	if len(invalid) > 0 {
		return nil, invalid
	}
	return selection, nil
}
