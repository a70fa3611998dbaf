package scaffold

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modforge/cli/internal/choose"
	"github.com/modforge/cli/internal/output"
)

// Scaffolder drives the pipeline stages in order for one program.
type Scaffolder struct {
	// ProgramName is the new program's directory name under OutputDir.
	ProgramName string

	// OutputDir is the directory the program is created in.
	OutputDir string

	// AlwaysInclude marks the modules whose fetch failure is fatal.
	AlwaysInclude []string

	// UnpackFolders is the ordered list of staging folders flattened into
	// the program root.
	UnpackFolders []string

	// Fetcher clones the remote part of the selection.
	Fetcher *Fetcher
}

// Run executes every stage against the selection and returns the created
// program directory. Stages run strictly in order; the first fatal error
// aborts the run.
func (s *Scaffolder) Run(ctx context.Context, selection choose.Selection) (string, error) {
	programDir, err := EnsureProgramDir(s.OutputDir, s.ProgramName)
	if err != nil {
		return "", err
	}

	if disk := selection.DiskModules(); len(disk) > 0 {
		output.Println(output.FormatStep(1, "Copying local modules"))
		if err := CopyDiskModules(disk, programDir); err != nil {
			return "", err
		}
		for _, ref := range disk {
			output.Println(output.FormatModuleLine(ref.Name, output.StatusCopied, ""))
		}
	}

	if err := s.fetchRemote(ctx, selection, programDir); err != nil {
		return "", err
	}

	output.Println(output.FormatStep(3, "Consolidating requirements"))
	requirements, err := ConcatenateRequirements(programDir)
	if err != nil {
		return "", err
	}

	output.Println(output.FormatStep(4, "Merging shared utilities"))
	if err := MergeSharedUtilities(selection.Names(), programDir); err != nil {
		return "", err
	}

	output.Println(output.FormatStep(5, "Unpacking staging folders"))
	if err := UnpackFolders(s.UnpackFolders, programDir); err != nil {
		return "", err
	}

	if err := CreateReadme(s.ProgramName, programDir, requirements); err != nil {
		return "", err
	}
	if err := StripUnderscores(programDir); err != nil {
		return "", err
	}
	if err := CreatePlaceholderFolders(programDir); err != nil {
		return "", err
	}

	return programDir, nil
}

// fetchRemote clones the remote part of the selection and prints one
// status line per module. Failed optional modules are reported and
// skipped; a failed mandatory module aborts the run after the summary.
func (s *Scaffolder) fetchRemote(ctx context.Context, selection choose.Selection, programDir string) error {
	remote := selection.RemoteModules()
	if len(remote) == 0 {
		return nil
	}

	output.Println(output.FormatStep(2, fmt.Sprintf("Fetching %d remote module(s)", len(remote))))

	var results map[string]FetchResult
	err := output.RunWithSpinner(ctx, func() error {
		results = s.Fetcher.Fetch(ctx, remote, programDir)
		return nil
	}, output.WithTitle("Cloning remote modules..."))
	if err != nil {
		return err
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		res := results[name]
		status := output.StatusFetched
		if !res.OK {
			status = output.StatusFailed
		}
		output.Println(output.FormatModuleLine(name, status, res.Message))
	}

	if failed := MandatoryFailures(results, s.AlwaysInclude); len(failed) > 0 {
		return fmt.Errorf("%w: mandatory module(s) %s", ErrFetchFailed, strings.Join(failed, ", "))
	}
	return nil
}
