package choose

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/modforge/cli/internal/catalog"
	"github.com/modforge/cli/internal/output"
)

// ErrAborted indicates the user declined to continue; the run terminates
// cleanly without stack-trace noise.
var ErrAborted = errors.New("aborted by user")

// Prompter drives the interactive selection loop over an injected
// reader/writer pair so tests can script the conversation.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter returns a prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Select presents the catalog candidates and loops until the user enters a
// fully valid, non-empty module list. Any invalid name rejects the entire
// input and re-prompts with the offending names.
func (p *Prompter) Select(cat catalog.Catalog, alwaysInclude []string) (Selection, error) {
	// A mandatory module missing from the catalog is a configuration bug,
	// not something re-prompting can fix.
	if _, invalid := Validate(nil, alwaysInclude, cat); len(invalid) > 0 {
		return nil, fmt.Errorf("mandatory modules missing from catalog: %s", strings.Join(invalid, ", "))
	}

	separator := strings.Repeat("*", 20)
	fmt.Fprintln(p.out, separator)
	fmt.Fprintln(p.out, "Available modules:")
	for _, name := range cat.Candidates(alwaysInclude) {
		fmt.Fprintf(p.out, "  - %s (%s)\n", name, cat[name].Origin.Kind)
	}
	fmt.Fprintln(p.out, separator)
	fmt.Fprintln(p.out, "Always included:")
	for _, name := range alwaysInclude {
		fmt.Fprintf(p.out, "  - %s\n", strings.ToLower(name))
	}
	fmt.Fprintln(p.out, separator)

	for {
		fmt.Fprint(p.out, "\nEnter the modules you want to include (comma-separated): ")
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}

		chosen := ParseInput(line)
		if len(chosen) == 0 {
			fmt.Fprintln(p.out, "No modules selected. Please try again.")
			continue
		}

		selection, invalid := Validate(chosen, alwaysInclude, cat)
		if len(invalid) > 0 {
			fmt.Fprintf(p.out, "Invalid module(s): %s\nPlease try again.\n", strings.Join(invalid, ", "))
			continue
		}

		output.Debug("selection resolved", "modules", strings.Join(selection.Names(), ","))
		return selection, nil
	}
}

// Confirm asks a yes/no question. Anything but an explicit yes declines.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		// Input exhausted (EOF, e.g. Ctrl-D): treat as an abort.
		return "", ErrAborted
	}
	return p.in.Text(), nil
}
