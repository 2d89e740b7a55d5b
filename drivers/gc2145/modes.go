package gc2145

import "camcode-go/x/mathx"

// ModeID indexes the capture-mode catalog. IDs are dense from zero and match
// catalog order.
type ModeID uint8

const (
	ModeQVGA ModeID = iota // 320x240
	ModeVGA                // 640x480
	ModeSVGA               // 800x600
	ModeUXGA               // 1600x1200
)

// Mode is one hardware-supported capture configuration: active (cropped)
// geometry, total (with blanking) geometry and the register program that
// realizes it. Catalog invariant: active <= total on both axes.
type Mode struct {
	ID          ModeID
	Width       int // active
	Height      int // active
	TotalWidth  int
	TotalHeight int
	prog        Program
}

// modeCatalog is fixed, ordered and read-only.
var modeCatalog = []Mode{
	{ID: ModeQVGA, Width: 320, Height: 240, TotalWidth: 320, TotalHeight: 240, prog: qvgaProgram},
	{ID: ModeVGA, Width: 640, Height: 480, TotalWidth: 640, TotalHeight: 480, prog: vgaProgram},
	{ID: ModeSVGA, Width: 800, Height: 600, TotalWidth: 800, TotalHeight: 600, prog: svgaProgram},
	{ID: ModeUXGA, Width: 1600, Height: 1200, TotalWidth: 1600, TotalHeight: 1200, prog: uxgaProgram},
}

// findMode selects the catalog entry for a requested geometry. With nearest
// set, the entry minimizing |width-Width|+|height-Height| wins, first listed
// breaking ties; without it, only an exact active-dimension match is
// accepted and nil means the geometry is unsupported.
func findMode(width, height int, nearest bool) *Mode {
	best := -1
	bestDist := 0
	for i := range modeCatalog {
		m := &modeCatalog[i]
		d := mathx.AbsDiff(m.Width, width) + mathx.AbsDiff(m.Height, height)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	m := &modeCatalog[best]
	if !nearest && (m.Width != width || m.Height != height) {
		return nil
	}
	return m
}

// FrameSizes reports the discrete active geometries available for a wire
// code, in catalog order. Every supported code offers all modes; sizes are
// exact (no continuous range).
func FrameSizes(code PixelCode) []FrameSize {
	if findFormat(code).Code != code {
		return nil
	}
	out := make([]FrameSize, len(modeCatalog))
	for i := range modeCatalog {
		out[i] = FrameSize{Width: modeCatalog[i].Width, Height: modeCatalog[i].Height}
	}
	return out
}

// FrameSize is one discrete supported geometry.
type FrameSize struct {
	Width  int
	Height int
}
