// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/svg2png/pkg/types"
)

func sampleRun() types.Run {
	start := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	return types.Run{
		StartedAt:  start,
		FinishedAt: start.Add(2 * time.Second),
		BaseDir:    "public/logo",
		Tool:       "magick",
		Outcomes: []types.Outcome{
			{Job: types.Job{Source: "logo.svg", Dest: "logo.png", Size: 512}, Kind: types.OutcomeConverted},
			{Job: types.Job{Source: "icon-192.svg", Dest: "icon-192.png", Size: 192}, Kind: types.OutcomeToolFailed, ExitCode: 1, Error: "magick exited with code 1"},
			{Job: types.Job{Source: "apple-icon.svg", Dest: "apple-icon.png", Size: 180}, Kind: types.OutcomeMissingSource, Error: "source not found"},
		},
	}
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.yaml")
	run := sampleRun()

	require.NoError(t, Write(path, run))

	f, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 3, Converted: 1, Failed: 2}, f.Summary)
	assert.Equal(t, "magick", f.Run.Tool)
	require.Len(t, f.Run.Outcomes, 3)
	assert.Equal(t, "icon-192.svg", f.Run.Outcomes[1].Job.Source)
	assert.Equal(t, 1, f.Run.Outcomes[1].ExitCode)
	assert.True(t, f.Run.StartedAt.Equal(run.StartedAt))
}

func TestWrite_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, Write(path, sampleRun()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "run:\n"))
	assert.Contains(t, content, "kind: missing_source")
	assert.Contains(t, content, "summary:")
	// Successful outcomes carry no error or exit code.
	assert.Equal(t, 1, strings.Count(content, "exit_code:"))
}

func TestRead_Errors(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading report")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("run: [unterminated"), 0o644))
	_, err = Read(bad)
	assert.ErrorContains(t, err, "parsing report")
}
