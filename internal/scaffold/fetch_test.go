package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modforge/cli/internal/catalog"
	"github.com/modforge/cli/internal/testutil"
)

func remoteRef(name string) catalog.Ref {
	return catalog.Ref{
		Name:   name,
		Origin: catalog.RemoteOrigin("https://example.com/" + name),
	}
}

// fakeClone writes a marker file into dest instead of running git.
func fakeClone(content string) CloneFunc {
	return func(_ context.Context, url, dest string) error {
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dest, "cloned.txt"), []byte(content+" from "+url), 0o644)
	}
}

func testFetcher(clone CloneFunc) *Fetcher {
	return &Fetcher{
		Clone:        clone,
		Workers:      2,
		Retries:      3,
		RetryDelay:   time.Millisecond,
		CloneTimeout: time.Second,
	}
}

func TestFetch_SuccessMovesIntoPlace(t *testing.T) {
	programDir := t.TempDir()
	f := testFetcher(fakeClone("data"))

	results := f.Fetch(context.Background(), []catalog.Ref{remoteRef("scraper")}, programDir)

	require.Len(t, results, 1)
	assert.True(t, results["scraper"].OK)
	assert.Equal(t, "data from https://example.com/scraper",
		testutil.ReadFile(t, filepath.Join(programDir, "scraper", "cloned.txt")))
}

func TestFetch_RefreshesExistingDestination(t *testing.T) {
	programDir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(programDir, "scraper"), "stale.txt", "old\n")

	f := testFetcher(fakeClone("fresh"))
	results := f.Fetch(context.Background(), []catalog.Ref{remoteRef("scraper")}, programDir)

	assert.True(t, results["scraper"].OK)
	assert.NoFileExists(t, filepath.Join(programDir, "scraper", "stale.txt"))
	assert.FileExists(t, filepath.Join(programDir, "scraper", "cloned.txt"))
}

func TestFetch_PartialFailureIsolated(t *testing.T) {
	programDir := t.TempDir()
	clone := func(ctx context.Context, url, dest string) error {
		if filepath.Base(url) == "bad" {
			return fmt.Errorf("git clone: repository not found")
		}
		return fakeClone("ok")(ctx, url, dest)
	}

	f := testFetcher(clone)
	results := f.Fetch(context.Background(),
		[]catalog.Ref{remoteRef("good"), remoteRef("bad"), remoteRef("also_good")},
		programDir)

	require.Len(t, results, 3)
	assert.True(t, results["good"].OK)
	assert.True(t, results["also_good"].OK)
	assert.False(t, results["bad"].OK)
	assert.Contains(t, results["bad"].Message, "not found")

	assert.DirExists(t, filepath.Join(programDir, "good"))
	assert.NoDirExists(t, filepath.Join(programDir, "bad"))
}

func TestFetch_RetriesOnlyPermissionErrors(t *testing.T) {
	programDir := t.TempDir()

	var mu sync.Mutex
	calls := map[string]int{}

	clone := func(ctx context.Context, url, dest string) error {
		name := filepath.Base(url)
		mu.Lock()
		calls[name]++
		n := calls[name]
		mu.Unlock()

		switch name {
		case "flaky":
			if n < 3 {
				return fmt.Errorf("staging locked: %w", fs.ErrPermission)
			}
			return fakeClone("ok")(ctx, url, dest)
		case "broken":
			return errors.New("network unreachable")
		default:
			return fakeClone("ok")(ctx, url, dest)
		}
	}

	f := testFetcher(clone)
	results := f.Fetch(context.Background(),
		[]catalog.Ref{remoteRef("flaky"), remoteRef("broken")},
		programDir)

	// Permission errors are retried up to the attempt budget.
	assert.True(t, results["flaky"].OK)
	assert.Equal(t, 3, calls["flaky"])

	// Everything else fails on the first attempt.
	assert.False(t, results["broken"].OK)
	assert.Equal(t, 1, calls["broken"])
}

func TestFetch_OneSlotPerModule(t *testing.T) {
	programDir := t.TempDir()
	refs := make([]catalog.Ref, 8)
	for i := range refs {
		refs[i] = remoteRef(fmt.Sprintf("mod%d", i))
	}

	f := testFetcher(fakeClone("x"))
	f.Workers = 4
	results := f.Fetch(context.Background(), refs, programDir)

	require.Len(t, results, len(refs))
	for _, ref := range refs {
		assert.True(t, results[ref.Name].OK, ref.Name)
	}
}

func TestMandatoryFailures(t *testing.T) {
	results := map[string]FetchResult{
		"logger":  {Module: "logger", OK: false, Message: "boom"},
		"extra":   {Module: "extra", OK: false, Message: "boom"},
		"scraper": {Module: "scraper", OK: true},
	}

	failed := MandatoryFailures(results, []string{"logger", "scraper"})
	assert.Equal(t, []string{"logger"}, failed)

	assert.Empty(t, MandatoryFailures(results, []string{"scraper"}))
}
