// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report saves a conversion run as a YAML file so the outcome of a
// batch can be inspected or archived after the console output is gone.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/svg2png/pkg/types"
)

// File is the on-disk representation of a run report.
type File struct {
	Run     types.Run `yaml:"run"`
	Summary Summary   `yaml:"summary"`
}

// Summary stores outcome counts for quick reading.
type Summary struct {
	Total     int `yaml:"total"`
	Converted int `yaml:"converted"`
	Failed    int `yaml:"failed"`
}

// Write saves run to path as YAML, creating the parent directory if needed.
func Write(path string, run types.Run) error {
	converted, failed := run.Counts()
	f := File{
		Run: run,
		Summary: Summary{
			Total:     len(run.Outcomes),
			Converted: converted,
			Failed:    failed,
		},
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a previously written report.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &f, nil
}
