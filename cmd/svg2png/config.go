// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/svg2png/pkg/types"
)

// Configuration keys, shared by flags, config file and SVG2PNG_* variables.
const (
	keyBaseDir    = "base_dir"
	keyTool       = "tool"
	keyBackground = "background"
	keyResize     = "resize"
	keyVerify     = "verify"
	keyReport     = "report"
	keyHistoryDB  = "history_db"
	keyStrict     = "strict"
)

func setDefaults(v *viper.Viper) {
	d := types.DefaultRasterConfig()
	v.SetDefault(keyBaseDir, d.BaseDir)
	v.SetDefault(keyTool, string(d.Tool))
	v.SetDefault(keyBackground, d.Background)
	v.SetDefault(keyResize, d.Resize)
	v.SetDefault(keyVerify, d.Verify)
	v.SetDefault(keyStrict, false)
}

// rasterConfig reads the effective configuration from v. Empty string values
// fall back to the defaults so a blank flag never clears the base directory.
func rasterConfig(v *viper.Viper) types.RasterConfig {
	d := types.DefaultRasterConfig()
	cfg := types.RasterConfig{
		BaseDir:    nonEmpty(v.GetString(keyBaseDir), d.BaseDir),
		Tool:       types.ToolPreference(strings.ToLower(nonEmpty(v.GetString(keyTool), string(d.Tool)))),
		Background: nonEmpty(v.GetString(keyBackground), d.Background),
		Resize:     v.GetBool(keyResize),
		Verify:     v.GetBool(keyVerify),
		ReportPath: v.GetString(keyReport),
		HistoryDB:  v.GetString(keyHistoryDB),
	}
	return cfg
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
