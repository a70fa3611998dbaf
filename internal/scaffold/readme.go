package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/modforge/cli/internal/output"
)

// readmeTemplate is the skeleton README written into every generated
// program.
var readmeTemplate = template.Must(template.New("readme").Parse(`# {{ .ProgramName }}

## Overview

## Key Features

## Dependencies
{{- range .Requirements }}
- {{ . }}
{{- end }}

## Usage
`))

type readmeData struct {
	ProgramName  string
	Requirements []string
}

// CreateReadme writes README.md at the program root, listing the merged
// dependency set.
func CreateReadme(programName, programDir string, requirements []string) error {
	var b strings.Builder
	data := readmeData{ProgramName: programName, Requirements: requirements}
	if err := readmeTemplate.Execute(&b, data); err != nil {
		return fmt.Errorf("rendering README: %w", err)
	}

	path := filepath.Join(programDir, "README.md")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing README: %w", err)
	}

	output.Info("wrote README", "path", path)
	return nil
}
