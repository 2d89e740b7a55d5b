package gc2145

// PixelCode identifies a pixel encoding on the sensor's output bus, as
// negotiated with the host pipeline. Values are stable wire identifiers, not
// register values.
type PixelCode uint16

const (
	CodeUYVY8  PixelCode = 0x2006 // YUV 4:2:2, U first
	CodeVYUY8  PixelCode = 0x2007
	CodeYUYV8  PixelCode = 0x2008
	CodeYVYU8  PixelCode = 0x2009
	CodeRGB565 PixelCode = 0x1008
	CodeSBGGR8 PixelCode = 0x3001 // raw Bayer
)

// Colorspace of the produced frames.
type Colorspace uint8

const (
	ColorspaceSRGB Colorspace = iota + 1
	ColorspaceJPEG
	ColorspaceRaw
)

// Field reports interlacing; the GC2145 only produces progressive frames.
type Field uint8

const FieldNone Field = 0

// FrameFormat is the mbus-style frame description exchanged with the host:
// encoding plus geometry. Width/Height are always normalized to a catalog
// mode's active dimensions before the format is committed.
type FrameFormat struct {
	Code       PixelCode
	Colorspace Colorspace
	Width      int
	Height     int
	Field      Field
}

// PixFormat describes one supported pixel encoding: its wire code, the
// colorspace it implies, the value for the output-format register and the
// one-write program that selects it.
type PixFormat struct {
	Code       PixelCode
	Colorspace Colorspace
	OutputFmt  byte
	selectProg Program
}

// formatCatalog is fixed, ordered, and read-only. The first entry is the
// system-wide default encoding.
var formatCatalog = []PixFormat{
	{Code: CodeUYVY8, Colorspace: ColorspaceSRGB, OutputFmt: outputFmtUYVY, selectProg: Program{{regOutputFormat, outputFmtUYVY}}},
	{Code: CodeVYUY8, Colorspace: ColorspaceJPEG, OutputFmt: outputFmtVYUY, selectProg: Program{{regOutputFormat, outputFmtVYUY}}},
	{Code: CodeYUYV8, Colorspace: ColorspaceSRGB, OutputFmt: outputFmtYUYV, selectProg: Program{{regOutputFormat, outputFmtYUYV}}},
	{Code: CodeYVYU8, Colorspace: ColorspaceJPEG, OutputFmt: outputFmtYVYU, selectProg: Program{{regOutputFormat, outputFmtYVYU}}},
	{Code: CodeRGB565, Colorspace: ColorspaceSRGB, OutputFmt: outputFmtRGB, selectProg: Program{{regOutputFormat, outputFmtDNDD}}},
	{Code: CodeSBGGR8, Colorspace: ColorspaceRaw, OutputFmt: outputFmtLSC, selectProg: Program{{regOutputFormat, outputFmtDNDD}}},
}

// findFormat resolves a wire code to its descriptor. Unknown codes fall back
// to the default entry, so format negotiation always succeeds.
func findFormat(code PixelCode) *PixFormat {
	for i := range formatCatalog {
		if formatCatalog[i].Code == code {
			return &formatCatalog[i]
		}
	}
	return &formatCatalog[0]
}

// Codes returns the supported wire codes in stable catalog order.
func Codes() []PixelCode {
	out := make([]PixelCode, len(formatCatalog))
	for i := range formatCatalog {
		out[i] = formatCatalog[i].Code
	}
	return out
}
