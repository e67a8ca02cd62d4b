// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Job is one SVG-to-PNG conversion: a source file name, a destination file
// name and the target pixel size, all resolved under the base directory.
type Job struct {
	// Source is the SVG file name (e.g. "logo.svg").
	Source string `json:"source" yaml:"source"`

	// Dest is the PNG file name written by the converter (e.g. "logo.png").
	Dest string `json:"dest" yaml:"dest"`

	// Size is the intended square pixel dimension. It is only passed to the
	// converter when resizing is enabled.
	Size int `json:"size" yaml:"size"`
}

func (j Job) String() string {
	return fmt.Sprintf("%s -> %s (%dpx)", j.Source, j.Dest, j.Size)
}

// defaultJobs is the canonical icon set for the web app's public/logo directory.
var defaultJobs = []Job{
	{Source: "logo.svg", Dest: "logo.png", Size: 512},
	{Source: "icon-192.svg", Dest: "icon-192.png", Size: 192},
	{Source: "icon-512.svg", Dest: "icon-512.png", Size: 512},
	{Source: "apple-icon.svg", Dest: "apple-icon.png", Size: 180},
}

// DefaultJobs returns a copy of the fixed job list in declaration order.
func DefaultJobs() []Job {
	out := make([]Job, len(defaultJobs))
	copy(out, defaultJobs)
	return out
}

// OutcomeKind classifies how a single job ended.
type OutcomeKind string

const (
	OutcomeConverted     OutcomeKind = "converted"
	OutcomeMissingSource OutcomeKind = "missing_source"
	OutcomeToolNotFound  OutcomeKind = "tool_not_found"
	OutcomeToolFailed    OutcomeKind = "tool_failed"
	OutcomeIOError       OutcomeKind = "io_error"
	OutcomeEmptyOutput   OutcomeKind = "empty_output"
)

// Outcome records the result of one job.
type Outcome struct {
	Job Job `json:"job" yaml:"job"`

	Kind OutcomeKind `json:"kind" yaml:"kind"`

	// ExitCode is the converter's exit status. Only meaningful for
	// OutcomeToolFailed.
	ExitCode int `json:"exit_code,omitempty" yaml:"exit_code,omitempty"`

	// Error is the failure text, empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether the job converted successfully.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeConverted
}
