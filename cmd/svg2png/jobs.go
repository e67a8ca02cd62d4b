// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/svg2png/pkg/types"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the files that convert would process",
	Long: `Jobs prints the fixed job list: each SVG source, the PNG it produces, the
intended pixel size and whether the source currently exists in the base
directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		asYAML, _ := cmd.Flags().GetBool("yaml")
		baseDir := rasterConfig(viper.GetViper()).BaseDir
		return printJobs(os.Stdout, types.DefaultJobs(), baseDir, asYAML)
	},
}

func init() {
	jobsCmd.Flags().Bool("yaml", false, "print the job list as YAML")

	rootCmd.AddCommand(jobsCmd)
}

func printJobs(w io.Writer, jobs []types.Job, baseDir string, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(struct {
			BaseDir string      `yaml:"base_dir"`
			Jobs    []types.Job `yaml:"jobs"`
		}{baseDir, jobs})
	}

	fmt.Fprintf(w, "Base directory: %s\n\n", baseDir)
	fmt.Fprintf(w, "%-18s  %-18s  %6s  %s\n", "Source", "Destination", "Size", "Present")
	fmt.Fprintln(w, strings.Repeat("-", 56))
	for _, j := range jobs {
		present := "no"
		if _, err := os.Stat(filepath.Join(baseDir, j.Source)); err == nil {
			present = "yes"
		}
		fmt.Fprintf(w, "%-18s  %-18s  %6d  %s\n", j.Source, j.Dest, j.Size, present)
	}
	return nil
}
