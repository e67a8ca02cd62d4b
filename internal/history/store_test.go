// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/svg2png/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRun(start time.Time) types.Run {
	return types.Run{
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
		BaseDir:    "public/logo",
		Tool:       "convert",
		Outcomes: []types.Outcome{
			{Job: types.Job{Source: "logo.svg", Dest: "logo.png", Size: 512}, Kind: types.OutcomeConverted},
			{Job: types.Job{Source: "icon-192.svg", Dest: "icon-192.png", Size: 192}, Kind: types.OutcomeToolFailed, ExitCode: 1, Error: "convert exited with code 1"},
			{Job: types.Job{Source: "icon-512.svg", Dest: "icon-512.png", Size: 512}, Kind: types.OutcomeMissingSource, Error: "source not found"},
		},
	}
}

func TestRecordAndOutcomes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	run := testRun(time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC))

	id, err := s.Record(ctx, run)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err, "generated run ID should be a UUID")

	got, err := s.Outcomes(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, run.Outcomes, got)
}

func TestRecord_KeepsExplicitID(t *testing.T) {
	s := openTestStore(t)
	run := testRun(time.Now())
	run.ID = "fixed-id"

	id, err := s.Record(context.Background(), run)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)

	_, err = s.Record(context.Background(), run)
	assert.ErrorContains(t, err, "inserting run")
}

func TestRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 3; i++ {
		// Sub-second offsets check that ordering is chronological, not lexical.
		id, err := s.Record(ctx, testRun(base.Add(time.Duration(i)*500*time.Millisecond)))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	runs, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, ids[2], runs[0].ID)
	assert.Equal(t, ids[1], runs[1].ID)
	assert.Equal(t, 1, runs[0].Converted)
	assert.Equal(t, 2, runs[0].Failed)
	assert.Equal(t, "convert", runs[0].Tool)
	assert.True(t, runs[0].StartedAt.Equal(base.Add(time.Second)))
	assert.Equal(t, 1500*time.Millisecond, runs[0].FinishedAt.Sub(runs[0].StartedAt))

	all, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOutcomes_UnknownRun(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Outcomes(context.Background(), "does-not-exist")
	assert.ErrorContains(t, err, "not found")
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	id, err := s.Record(context.Background(), testRun(time.Now()))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Outcomes(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
