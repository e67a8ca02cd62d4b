// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs a batch of SVG-to-PNG jobs through an external
// converter. Every job ends in exactly one outcome; a failing job never stops
// the batch.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/svg2png/internal/tool"
	"github.com/pdiddy/svg2png/pkg/types"
)

// Converter turns the SVG at srcPath into a PNG at dstPath. size is the job's
// target dimension; implementations may ignore it.
type Converter interface {
	Convert(srcPath, dstPath string, size int) error
}

// Options controls per-job checks done by the runner itself.
type Options struct {
	// Verify requires the destination to exist and be non-empty after the
	// converter reports success.
	Verify bool
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	// Outcomes are in job order, one per job.
	Outcomes  []types.Outcome
	Converted int
	Missing   int
	Failed    int
}

// Total returns the number of jobs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Missing + r.Failed
}

// HasFailures reports whether any job did not convert.
func (r BatchResult) HasFailures() bool {
	return r.Missing > 0 || r.Failed > 0
}

// ConvertJob converts a single job under baseDir and writes one status line
// to w. A missing source is reported without calling the converter.
func ConvertJob(c Converter, job types.Job, baseDir string, w io.Writer, opts Options) types.Outcome {
	srcPath := filepath.Join(baseDir, job.Source)
	dstPath := filepath.Join(baseDir, job.Dest)
	out := types.Outcome{Job: job}

	if _, err := os.Stat(srcPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			out.Kind = types.OutcomeMissingSource
			out.Error = "source not found"
			fmt.Fprintf(w, "missing:   %s (source not found)\n", job.Source)
			return out
		}
		out.Kind = types.OutcomeIOError
		out.Error = err.Error()
		fmt.Fprintf(w, "failed:    %s (%v)\n", job.Source, err)
		return out
	}

	if err := c.Convert(srcPath, dstPath, job.Size); err != nil {
		out.Kind, out.ExitCode = classify(err)
		out.Error = err.Error()
		fmt.Fprintf(w, "failed:    %s (%s: %v)\n", job.Source, describe(out.Kind), err)
		return out
	}

	if opts.Verify {
		if err := checkOutput(dstPath); err != nil {
			out.Kind = types.OutcomeEmptyOutput
			out.Error = err.Error()
			fmt.Fprintf(w, "failed:    %s (%v)\n", job.Source, err)
			return out
		}
	}

	out.Kind = types.OutcomeConverted
	fmt.Fprintf(w, "converted: %s -> %s\n", job.Source, job.Dest)
	return out
}

// ConvertBatch processes jobs in order through the converter, printing
// per-job status to w followed by a single completion line.
func ConvertBatch(c Converter, jobs []types.Job, baseDir string, w io.Writer, opts Options) BatchResult {
	result := BatchResult{Outcomes: make([]types.Outcome, 0, len(jobs))}
	for _, job := range jobs {
		o := ConvertJob(c, job, baseDir, w, opts)
		result.Outcomes = append(result.Outcomes, o)
		switch o.Kind {
		case types.OutcomeConverted:
			result.Converted++
		case types.OutcomeMissingSource:
			result.Missing++
		default:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nDone: %d converted, %d missing, %d failed (total: %d)\n",
		result.Converted, result.Missing, result.Failed, result.Total())
	return result
}

func classify(err error) (types.OutcomeKind, int) {
	var te *tool.Error
	if !errors.As(err, &te) {
		return types.OutcomeIOError, 0
	}
	switch te.Kind {
	case tool.KindNotFound:
		return types.OutcomeToolNotFound, 0
	case tool.KindExited:
		return types.OutcomeToolFailed, te.ExitCode
	}
	return types.OutcomeIOError, 0
}

func describe(k types.OutcomeKind) string {
	switch k {
	case types.OutcomeToolNotFound:
		return "converter not found"
	case types.OutcomeToolFailed:
		return "converter failed"
	}
	return "unexpected error"
}

func checkOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("converter reported success but %s was not written", filepath.Base(path))
		}
		return fmt.Errorf("checking output: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("converter wrote an empty %s", filepath.Base(path))
	}
	return nil
}
