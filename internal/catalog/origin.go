// Package catalog builds the resolved view of available modules from two
// competing sources: a remote manifest of git URLs and a scan of the local
// modules directory. Remote entries win name collisions.
package catalog

// OriginKind discriminates where a module is sourced from.
type OriginKind int

const (
	// OriginDisk marks a module directory on the local filesystem.
	OriginDisk OriginKind = iota

	// OriginRemote marks a module hosted in a remote git repository.
	OriginRemote
)

// String returns the origin kind as a short label.
func (k OriginKind) String() string {
	switch k {
	case OriginDisk:
		return "disk"
	case OriginRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Origin is the tagged source of a module: exactly one of Path or URL is
// set, selected by Kind. The tag replaces URL-prefix sniffing on the value.
type Origin struct {
	Kind OriginKind

	// Path is the module directory; set when Kind is OriginDisk.
	Path string

	// URL is the git repository URL; set when Kind is OriginRemote.
	URL string
}

// DiskOrigin returns an Origin for a local module directory.
func DiskOrigin(path string) Origin {
	return Origin{Kind: OriginDisk, Path: path}
}

// RemoteOrigin returns an Origin for a remote git repository.
func RemoteOrigin(url string) Origin {
	return Origin{Kind: OriginRemote, URL: url}
}

// Location returns the path or URL, whichever the tag selects.
func (o Origin) Location() string {
	if o.Kind == OriginRemote {
		return o.URL
	}
	return o.Path
}

// Ref is a single catalog entry: a case-normalized module name bound to its
// one authoritative origin for this run.
type Ref struct {
	Name   string
	Origin Origin
}
