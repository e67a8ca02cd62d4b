// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultBaseDir is the directory holding the SVG sources, relative to the
// working directory.
const DefaultBaseDir = "public/logo"

// ToolPreference selects the ImageMagick binary used for conversion.
type ToolPreference string

const (
	// ToolAuto tries "magick" (ImageMagick 7) and falls back to "convert".
	ToolAuto    ToolPreference = "auto"
	ToolMagick  ToolPreference = "magick"
	ToolConvert ToolPreference = "convert"
)

// RasterConfig holds settings for a conversion run.
type RasterConfig struct {
	// BaseDir is the directory containing sources and receiving outputs.
	BaseDir string `json:"base_dir" yaml:"base_dir"`

	// Tool selects the converter binary: auto, magick, or convert.
	Tool ToolPreference `json:"tool" yaml:"tool"`

	// Background is the colour flattened behind transparent areas (default "white").
	Background string `json:"background" yaml:"background"`

	// Resize passes each job's Size to the converter as a square geometry.
	Resize bool `json:"resize" yaml:"resize"`

	// Verify checks that the destination exists and is non-empty after the
	// converter reports success.
	Verify bool `json:"verify" yaml:"verify"`

	// ReportPath, when set, receives a YAML report of the run.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`

	// HistoryDB, when set, is the SQLite database the run is recorded in.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty"`
}

// DefaultRasterConfig returns the configuration used when nothing is overridden.
func DefaultRasterConfig() RasterConfig {
	return RasterConfig{
		BaseDir:    DefaultBaseDir,
		Tool:       ToolAuto,
		Background: "white",
		Verify:     true,
	}
}
