// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/svg2png/internal/convert"
	"github.com/pdiddy/svg2png/internal/history"
	"github.com/pdiddy/svg2png/internal/report"
	"github.com/pdiddy/svg2png/internal/tool"
	"github.com/pdiddy/svg2png/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the SVG logos to PNG",
	Long: `Convert rasterizes every SVG in the job list (see "svg2png jobs") into its
PNG counterpart in the same directory, flattening transparency onto a white
background. Missing sources and converter failures are reported per file and
do not stop the batch.

The command exits 0 even when files fail, unless --strict is given.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("tool", "auto", "converter binary: auto, magick, or convert")
	convertCmd.Flags().String("background", "white", "background colour behind transparent areas")
	convertCmd.Flags().Bool("resize", false, "resize each output to the job's pixel size")
	convertCmd.Flags().Bool("verify", true, "check that each output file exists and is non-empty")
	convertCmd.Flags().String("report", "", "write a YAML report of the run to this file")
	convertCmd.Flags().Bool("strict", false, "exit non-zero when any file fails")

	for _, name := range []string{"tool", "background", "resize", "verify", "report", "strict"} {
		_ = viper.BindPFlag(name, convertCmd.Flags().Lookup(name))
	}

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := rasterConfig(viper.GetViper())

	rt, err := tool.Detect(cfg.Tool)
	if rt == nil {
		return err
	}
	if err != nil {
		// Keep going: each job will report the missing converter.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	result, err := runBatch(context.Background(), cfg, rt, types.DefaultJobs(), os.Stdout)
	if err != nil {
		return err
	}
	if viper.GetBool(keyStrict) && result.HasFailures() {
		return fmt.Errorf("%d of %d file(s) failed", result.Missing+result.Failed, result.Total())
	}
	return nil
}

// runBatch converts jobs with rt and then writes the optional report and
// history entry. Job failures are part of the result; the returned error
// only covers the report and history.
func runBatch(ctx context.Context, cfg types.RasterConfig, rt tool.Runtime, jobs []types.Job, w io.Writer) (convert.BatchResult, error) {
	conv := convert.NewMagickConverter(rt, convert.MagickOptions{
		Background: cfg.Background,
		Resize:     cfg.Resize,
	})

	started := time.Now()
	result := convert.ConvertBatch(conv, jobs, cfg.BaseDir, w, convert.Options{Verify: cfg.Verify})

	run := types.Run{
		StartedAt:  started,
		FinishedAt: time.Now(),
		BaseDir:    cfg.BaseDir,
		Tool:       rt.Name(),
		Outcomes:   result.Outcomes,
	}

	if cfg.HistoryDB != "" {
		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return result, err
		}
		defer store.Close()

		id, err := store.Record(ctx, run)
		if err != nil {
			return result, fmt.Errorf("recording run: %w", err)
		}
		run.ID = id
	}

	if cfg.ReportPath != "" {
		if err := report.Write(cfg.ReportPath, run); err != nil {
			return result, fmt.Errorf("writing report: %w", err)
		}
	}

	return result, nil
}
