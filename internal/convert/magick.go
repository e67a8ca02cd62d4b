// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strconv"

	"github.com/pdiddy/svg2png/internal/tool"
)

// MagickConverter rasterizes SVGs with ImageMagick. The binary itself
// (magick or convert) is chosen by the injected tool.Runtime.
type MagickConverter struct {
	runtime    tool.Runtime
	background string
	resize     bool
}

// MagickOptions configures the arguments passed to ImageMagick.
type MagickOptions struct {
	// Background is the colour flattened behind transparent areas.
	// Empty means "white".
	Background string

	// Resize adds "-resize SIZExSIZE" so the output matches the job's Size.
	Resize bool
}

// NewMagickConverter creates a converter that runs ImageMagick through rt.
func NewMagickConverter(rt tool.Runtime, opts MagickOptions) *MagickConverter {
	bg := opts.Background
	if bg == "" {
		bg = "white"
	}
	return &MagickConverter{runtime: rt, background: bg, resize: opts.Resize}
}

// Convert runs the converter on srcPath and writes dstPath. Failures are
// *tool.Error values.
func (m *MagickConverter) Convert(srcPath, dstPath string, size int) error {
	return m.runtime.Run(m.Args(srcPath, dstPath, size)...)
}

// Args returns the argument list for one conversion:
//
//	SRC -background COLOR -alpha off [-resize SxS] DST
func (m *MagickConverter) Args(srcPath, dstPath string, size int) []string {
	args := []string{srcPath, "-background", m.background, "-alpha", "off"}
	if m.resize && size > 0 {
		s := strconv.Itoa(size)
		args = append(args, "-resize", s+"x"+s)
	}
	return append(args, dstPath)
}
