// Package fsutil provides filesystem helpers shared by the scaffolding
// pipeline: validated path checks, tree copies that preserve symlinks, and
// force-removal that tolerates read-only entries.
package fsutil

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultSkipNames are directory and file names excluded from every tree
// copy: version-control metadata and compiled-artifact caches.
var DefaultSkipNames = []string{".git", ".github", "__pycache__", ".pytest_cache"}

// DefaultSkipSuffixes are file suffixes excluded from every tree copy.
var DefaultSkipSuffixes = []string{".pyc"}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Exists reports whether path exists (without following a final symlink).
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// ValidateDir returns an error unless path exists and is a directory.
func ValidateDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("checking path %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}
	return nil
}

// CopyOptions controls CopyTree behavior.
type CopyOptions struct {
	// SkipNames lists entry names that are never copied.
	SkipNames []string

	// SkipSuffixes lists file-name suffixes that are never copied.
	SkipSuffixes []string
}

// DefaultCopyOptions skips version-control metadata and bytecode caches.
func DefaultCopyOptions() CopyOptions {
	return CopyOptions{
		SkipNames:    DefaultSkipNames,
		SkipSuffixes: DefaultSkipSuffixes,
	}
}

func (o CopyOptions) skip(name string) bool {
	for _, s := range o.SkipNames {
		if name == s {
			return true
		}
	}
	for _, suffix := range o.SkipSuffixes {
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return true
		}
	}
	return false
}

// CopyTree recursively copies the directory tree at src to dst. Symbolic
// links are copied as links, not dereferenced. Entries matching the skip
// lists are omitted. dst is created if it does not exist; existing files
// under dst are overwritten.
func CopyTree(src, dst string, opts CopyOptions) error {
	info, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf("reading source %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source is not a directory: %s", src)
	}

	if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("creating destination %s: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", src, err)
	}

	for _, entry := range entries {
		if opts.skip(entry.Name()) {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.Type()&fs.ModeSymlink != 0:
			if err := CopySymlink(srcPath, dstPath); err != nil {
				return err
			}
		case entry.IsDir():
			if err := CopyTree(srcPath, dstPath, opts); err != nil {
				return err
			}
		default:
			if err := CopyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// CopyFile copies a single regular file, preserving its mode and
// modification time.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading source %s: %w", src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}

	// Preserve timestamps so merged trees keep their original metadata.
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// CopySymlink recreates the symlink at src as dst, preserving its target
// without dereferencing it.
func CopySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return fmt.Errorf("reading symlink %s: %w", src, err)
	}
	if err := os.Symlink(target, dst); err != nil {
		return fmt.Errorf("creating symlink %s: %w", dst, err)
	}
	return nil
}

// ForceRemoveAll removes path and everything below it. Unlike os.RemoveAll
// it tolerates read-only entries: on the first failure it clears write
// protection across the whole tree and retries once.
func ForceRemoveAll(path string) error {
	if err := os.RemoveAll(path); err == nil {
		return nil
	}

	// Clear write protection on every directory and file, then retry.
	// Walk errors are ignored; the retry below reports the real failure.
	_ = filepath.Walk(path, func(p string, info fs.FileInfo, err error) error {
		if err != nil || info == nil {
			return nil
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			return nil
		}
		_ = os.Chmod(p, info.Mode().Perm()|0o200)
		return nil
	})

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}
