// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the svg2png CLI, which rasterizes the
// web app's SVG logos into PNG icons with ImageMagick.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the svg2png CLI. Without a subcommand it
// converts the default job list, same as "svg2png convert".
var rootCmd = &cobra.Command{
	Use:   "svg2png",
	Short: "Rasterize the app's SVG logos into PNG icons",
	Long: `svg2png converts a fixed set of SVG logo files into PNG icons using
ImageMagick ("magick", or the legacy "convert" binary). Each file is reported
individually; a failing file never stops the rest of the batch.

Run with no subcommand to convert, or use "jobs" to list the files and
"history" to inspect earlier runs.`,
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./svg2png.yaml or ~/.config/svg2png/config.yaml)")
	rootCmd.PersistentFlags().String("base-dir", "", "directory holding the SVG sources (default \"public/logo\")")
	rootCmd.PersistentFlags().String("history-db", "", "SQLite database recording each run (disabled when empty)")

	_ = viper.BindPFlag(keyBaseDir, rootCmd.PersistentFlags().Lookup("base-dir"))
	_ = viper.BindPFlag(keyHistoryDB, rootCmd.PersistentFlags().Lookup("history-db"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("svg2png")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "svg2png"))
		}
	}

	viper.SetEnvPrefix("SVG2PNG")
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
