// Package scaffold materializes a new program directory from a resolved
// module selection: disk copies, remote fetches, shared-utility merging,
// and the post-processing that turns staged folders into a runnable
// program skeleton.
package scaffold

import (
	"errors"
	"fmt"
)

// Sentinel errors for known conditions.
var (
	// ErrProgramDirExists indicates the program directory precondition
	// failed: the tool never overwrites an existing program.
	ErrProgramDirExists = errors.New("program directory already exists")

	// ErrDestinationExists indicates a module's destination directory is
	// already occupied. Duplicate module names across sources are a
	// configuration bug, never silently resolved.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrFetchFailed indicates one or more mandatory remote modules could
	// not be fetched.
	ErrFetchFailed = errors.New("fetch failed")
)

// CopyError wraps a disk-copy failure with the offending module name so
// the run can report exactly which module stopped it.
type CopyError struct {
	Module string
	Err    error
}

// Error implements the error interface.
func (e *CopyError) Error() string {
	return fmt.Sprintf("copying module %q: %v", e.Module, e.Err)
}

// Unwrap returns the underlying error.
func (e *CopyError) Unwrap() error {
	return e.Err
}
