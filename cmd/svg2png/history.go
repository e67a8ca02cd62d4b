// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/svg2png/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded conversion runs",
	Long: `History lists recent runs from the history database (--history-db). With
a run ID it prints the outcome of every file in that run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := viper.GetString(keyHistoryDB)
	if path == "" {
		return fmt.Errorf("no history database configured: pass --history-db or set history_db")
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if len(args) == 1 {
		return printRunOutcomes(ctx, os.Stdout, store, args[0])
	}
	limit, _ := cmd.Flags().GetInt("limit")
	return printRecentRuns(ctx, os.Stdout, store, limit)
}

func printRecentRuns(ctx context.Context, w io.Writer, store *history.Store, limit int) error {
	runs, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-36s  %-20s  %-8s  %9s  %6s  %s\n",
		"Run", "Started", "Tool", "Converted", "Failed", "Base directory")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for _, r := range runs {
		fmt.Fprintf(w, "%-36s  %-20s  %-8s  %9d  %6d  %s\n",
			r.ID, r.StartedAt.Local().Format(time.DateTime), r.Tool, r.Converted, r.Failed, r.BaseDir)
	}
	return nil
}

func printRunOutcomes(ctx context.Context, w io.Writer, store *history.Store, runID string) error {
	outcomes, err := store.Outcomes(ctx, runID)
	if err != nil {
		return err
	}
	for _, o := range outcomes {
		if o.OK() {
			fmt.Fprintf(w, "%-14s  %s -> %s\n", o.Kind, o.Job.Source, o.Job.Dest)
			continue
		}
		fmt.Fprintf(w, "%-14s  %s (%s)\n", o.Kind, o.Job.Source, o.Error)
	}
	return nil
}
