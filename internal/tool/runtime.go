// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tool detects and runs the external ImageMagick binary.
// ImageMagick 7 ships "magick"; ImageMagick 6 only has "convert". Both take
// the same arguments for the conversions this program performs.
package tool

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pdiddy/svg2png/pkg/types"
)

const (
	binMagick  = "magick"
	binConvert = "convert"
)

// Runtime runs one converter binary.
type Runtime interface {
	// Name returns the binary name ("magick" or "convert").
	Name() string

	// Available reports whether the binary exists on PATH and answers
	// a version query.
	Available() bool

	// Run executes the binary with args and waits for it to exit. Failures
	// are returned as *Error.
	Run(args ...string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunCaptured(name string, args []string, stderr *bytes.Buffer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunCaptured(name string, args []string, stderr *bytes.Buffer) error {
	cmd := exec.Command(name, args...)
	cmd.Stderr = stderr
	return cmd.Run()
}

type runtime struct {
	bin  string
	exec executor
}

func (r *runtime) Name() string { return r.bin }

func (r *runtime) Available() bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.RunSilent(r.bin, "-version") == nil
}

func (r *runtime) Run(args ...string) error {
	var stderr bytes.Buffer
	if err := r.exec.RunCaptured(r.bin, args, &stderr); err != nil {
		return classify(r.bin, err, stderr.String())
	}
	return nil
}

// missingRuntime stands in when no converter binary could be found. Every
// Run fails with KindNotFound so callers keep going job by job.
type missingRuntime struct {
	bin string
}

func (m missingRuntime) Name() string    { return m.bin }
func (m missingRuntime) Available() bool { return false }

func (m missingRuntime) Run(args ...string) error {
	return &Error{Kind: KindNotFound, Tool: m.bin, Err: exec.ErrNotFound}
}

var defaultExec = &osExecutor{}

// Detect returns the runtime for the preferred binary. With ToolAuto it tries
// magick first and falls back to convert. When nothing usable is found it
// still returns a Runtime, whose Run always fails with KindNotFound, together
// with a non-nil error describing what was tried.
func Detect(pref types.ToolPreference) (Runtime, error) {
	return detect(defaultExec, pref)
}

func detect(exec executor, pref types.ToolPreference) (Runtime, error) {
	var candidates []string
	switch pref {
	case types.ToolMagick:
		candidates = []string{binMagick}
	case types.ToolConvert:
		candidates = []string{binConvert}
	case types.ToolAuto, "":
		candidates = []string{binMagick, binConvert}
	default:
		return nil, fmt.Errorf("unknown tool %q: want auto, magick, or convert", pref)
	}

	for _, bin := range candidates {
		rt := &runtime{bin: bin, exec: exec}
		if rt.Available() {
			return rt, nil
		}
	}

	return missingRuntime{bin: candidates[0]}, fmt.Errorf(
		"no converter available: tried %s", strings.Join(candidates, ", "))
}

// Kind classifies a converter failure.
type Kind int

const (
	// KindNotFound means the binary could not be located or started.
	KindNotFound Kind = iota + 1
	// KindExited means the binary ran and exited with a non-zero status.
	KindExited
	// KindIO covers every other failure (permissions, broken pipes, ...).
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "tool not found"
	case KindExited:
		return "tool exited"
	case KindIO:
		return "i/o error"
	}
	return "unknown"
}

// Error is the classified failure of one converter invocation.
type Error struct {
	Kind     Kind
	Tool     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s: not found on PATH", e.Tool)
	case KindExited:
		if e.Stderr != "" {
			return fmt.Sprintf("%s exited with code %d: %s", e.Tool, e.ExitCode, e.Stderr)
		}
		return fmt.Sprintf("%s exited with code %d", e.Tool, e.ExitCode)
	default:
		return fmt.Sprintf("running %s: %v", e.Tool, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func classify(bin string, err error, stderr string) *Error {
	stderr = firstLine(stderr)

	var exitErr *exec.ExitError
	switch {
	case errors.Is(err, exec.ErrNotFound):
		return &Error{Kind: KindNotFound, Tool: bin, Err: err}
	case errors.As(err, &exitErr):
		return &Error{Kind: KindExited, Tool: bin, ExitCode: exitErr.ExitCode(), Stderr: stderr, Err: err}
	default:
		return &Error{Kind: KindIO, Tool: bin, Stderr: stderr, Err: err}
	}
}

// firstLine keeps log lines single-line; ImageMagick often repeats its
// diagnostic on several lines.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
