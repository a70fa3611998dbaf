package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/modforge/cli/internal/catalog"
	"github.com/modforge/cli/internal/fsutil"
	"github.com/modforge/cli/internal/output"
	"github.com/modforge/cli/internal/retry"
)

// FetchResult is the per-module outcome of a remote fetch.
type FetchResult struct {
	Module  string
	OK      bool
	Message string
}

// CloneFunc clones url into dest. Injectable so tests can fetch without a
// git binary or network.
type CloneFunc func(ctx context.Context, url, dest string) error

// GitClone shells out to the git binary. The context bounds the clone so
// an unreachable remote cannot hang the run.
func GitClone(ctx context.Context, url, dest string) error {
	cmd := exec.CommandContext(ctx, "git", "clone", url, dest)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("git clone: %s: %w", msg, err)
		}
		return fmt.Errorf("git clone: %w", err)
	}
	return nil
}

// Fetcher clones remote-origin modules into the program directory through
// an ephemeral staging area, with bounded concurrency and a retry policy
// limited to transient permission errors.
type Fetcher struct {
	// Clone performs a single clone; defaults to GitClone.
	Clone CloneFunc

	// Workers bounds concurrent clones.
	Workers int

	// Retries and RetryDelay control re-attempts on permission errors.
	Retries    int
	RetryDelay time.Duration

	// CloneTimeout bounds each individual clone.
	CloneTimeout time.Duration
}

// NewFetcher returns a Fetcher using the real git binary.
func NewFetcher(workers, retries int, retryDelay, cloneTimeout time.Duration) *Fetcher {
	return &Fetcher{
		Clone:        GitClone,
		Workers:      workers,
		Retries:      retries,
		RetryDelay:   retryDelay,
		CloneTimeout: cloneTimeout,
	}
}

// Fetch clones every remote module and reports a per-module result. One
// module's failure never aborts the others; the caller decides whether
// failed modules were mandatory. Each module writes only to its own
// staging directory and destination path, so the only shared state is the
// result slice, pre-sized with one slot per module.
func (f *Fetcher) Fetch(ctx context.Context, modules []catalog.Ref, programDir string) map[string]FetchResult {
	workers := f.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]FetchResult, len(modules))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, ref := range modules {
		i, ref := i, ref
		g.Go(func() error {
			results[i] = f.fetchOne(ctx, ref, programDir)
			return nil
		})
	}
	// Goroutines never return errors; failures land in the result slots.
	_ = g.Wait()

	out := make(map[string]FetchResult, len(results))
	for _, r := range results {
		out[r.Module] = r
	}
	return out
}

// fetchOne clones a single module into a staging directory, then moves the
// staged tree into place. The pre-existing destination (if any) is removed
// first: re-fetching a remote module is expected to refresh it.
func (f *Fetcher) fetchOne(ctx context.Context, ref catalog.Ref, programDir string) FetchResult {
	fail := func(err error) FetchResult {
		output.Error("module fetch failed", "module", ref.Name, "error", err)
		return FetchResult{Module: ref.Name, Message: err.Error()}
	}

	staging, err := os.MkdirTemp("", "modforge-fetch-*")
	if err != nil {
		return fail(fmt.Errorf("creating staging directory: %w", err))
	}
	// Cloned trees may carry read-only objects; force-remove regardless of
	// outcome.
	defer func() {
		if err := fsutil.ForceRemoveAll(staging); err != nil {
			output.Warn("could not clean staging directory", "path", staging, "error", err)
		}
	}()

	staged := filepath.Join(staging, ref.Name)
	output.Info("cloning module", "module", ref.Name, "url", ref.Origin.URL)

	policy := retry.Policy{
		Attempts:  f.Retries,
		Delay:     f.RetryDelay,
		Retryable: isTransientPermission,
	}
	err = retry.Do(ctx, policy, func(ctx context.Context) error {
		cloneCtx := ctx
		var cancel context.CancelFunc
		if f.CloneTimeout > 0 {
			cloneCtx, cancel = context.WithTimeout(ctx, f.CloneTimeout)
			defer cancel()
		}
		return f.Clone(cloneCtx, ref.Origin.URL, staged)
	})
	if err != nil {
		return fail(err)
	}

	dest := filepath.Join(programDir, ref.Name)
	if fsutil.Exists(dest) {
		if err := fsutil.ForceRemoveAll(dest); err != nil {
			return fail(fmt.Errorf("removing stale destination: %w", err))
		}
	}
	if err := moveTree(staged, dest); err != nil {
		return fail(fmt.Errorf("moving staged clone into place: %w", err))
	}

	output.Info("module fetched", "module", ref.Name, "path", dest)
	return FetchResult{Module: ref.Name, OK: true, Message: "fetched " + ref.Origin.URL}
}

// isTransientPermission reports whether err looks like the transient
// access-denied condition worth retrying. Anything else (network error,
// bad URL, non-zero git exit) fails immediately.
func isTransientPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

// moveTree renames src to dst, falling back to copy-and-delete when the
// rename crosses filesystems.
func moveTree(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := fsutil.CopyTree(src, dst, fsutil.CopyOptions{}); err != nil {
		return err
	}
	return fsutil.ForceRemoveAll(src)
}

// MandatoryFailures returns the failed modules that belong to the
// always-include set; these make the whole run fail.
func MandatoryFailures(results map[string]FetchResult, alwaysInclude []string) []string {
	mandatory := make(map[string]bool, len(alwaysInclude))
	for _, name := range alwaysInclude {
		mandatory[strings.ToLower(name)] = true
	}

	var failed []string
	for name, r := range results {
		if !r.OK && mandatory[name] {
			failed = append(failed, name)
		}
	}
	sort.Strings(failed)
	return failed
}
