// services/hal/adaptor_gc2145_driver_test.go
package hal

import (
	"errors"
	"testing"

	"camcode-go/drivers/gc2145"
	"camcode-go/errcode"
	"camcode-go/services/hal/sim"
	"camcode-go/types"
)

func buildTestAdaptor(t *testing.T, board *sim.Board, params Params) Adaptor {
	t.Helper()
	b, ok := FindBuilder("gc2145")
	if !ok {
		t.Fatal("gc2145 builder not registered")
	}
	ad, err := b.Build(BuildInput{
		Buses:    board,
		Pins:     board,
		DeviceID: "cam0",
		Type:     "gc2145",
		Params:   params,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return ad
}

func defaultParams() Params {
	return Params{Bus: "i2c0", PwdnPin: 0, ResetPin: 1, XCLKHz: 24_000_000}
}

func TestBuildProbesIdentity(t *testing.T) {
	board := sim.NewBoard()
	ad := buildTestAdaptor(t, board, defaultParams())
	if ad.ID() != "cam0" {
		t.Fatalf("adaptor id = %q", ad.ID())
	}
	if !board.Pwdn.High() {
		t.Fatal("sensor should be left powered down after the probe")
	}
	caps := ad.Capabilities()
	if len(caps) != 1 || caps[0].Kind != string(types.KindCamera) {
		t.Fatalf("capabilities = %+v", caps)
	}
	detail, ok := caps[0].Info.Detail.(types.CameraInfo)
	if !ok || detail.Sensor != "gc2145" || detail.ChipID != gc2145.ChipID {
		t.Fatalf("capability info = %+v", caps[0].Info)
	}
}

func TestBuildRejectsWrongChip(t *testing.T) {
	board := sim.NewBoard()
	board.Sensor.Poke(0xF0, 0x00)
	board.Sensor.Poke(0xF1, 0x00)
	b, _ := FindBuilder("gc2145")
	_, err := b.Build(BuildInput{Buses: board, Pins: board, DeviceID: "cam0", Params: defaultParams()})
	if errcode.Of(err) != errcode.UnrecognizedDevice {
		t.Fatalf("build error = %v, want unrecognized_device", err)
	}
}

func TestBuildValidatesWiring(t *testing.T) {
	board := sim.NewBoard()
	b, _ := FindBuilder("gc2145")

	if _, err := b.Build(BuildInput{Buses: board, Pins: board, Params: Params{Bus: "i2c9", XCLKHz: 24_000_000}}); !errors.Is(err, errcode.UnknownBus) {
		t.Fatalf("unknown bus error = %v", err)
	}
	p := defaultParams()
	p.ResetPin = 7
	if _, err := b.Build(BuildInput{Buses: board, Pins: board, Params: p}); !errors.Is(err, errcode.UnknownPin) {
		t.Fatalf("unknown pin error = %v", err)
	}
	p = defaultParams()
	p.XCLKHz = 1_000_000
	if _, err := b.Build(BuildInput{Buses: board, Pins: board, Params: p}); errcode.Of(err) != errcode.ClockRange {
		t.Fatalf("clock range error = %v", err)
	}
	if _, err := b.Build(BuildInput{Buses: board, Pins: board, Params: "bogus"}); !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("bad params error = %v", err)
	}
}

func TestControlEnumerations(t *testing.T) {
	board := sim.NewBoard()
	ad := buildTestAdaptor(t, board, defaultParams())

	res, err := ad.Control("camera", "enum_codes", nil)
	if err != nil {
		t.Fatalf("enum_codes: %v", err)
	}
	codes, ok := res.([]uint16)
	if !ok || len(codes) != 6 {
		t.Fatalf("enum_codes = %#v", res)
	}

	res, err = ad.Control("camera", "enum_frame_sizes", types.CodeRef{Code: codes[0]})
	if err != nil {
		t.Fatalf("enum_frame_sizes: %v", err)
	}
	sizes, ok := res.([]types.FrameSize)
	if !ok || len(sizes) != 4 {
		t.Fatalf("enum_frame_sizes = %#v", res)
	}
	if sizes[2] != (types.FrameSize{Width: 800, Height: 600}) {
		t.Fatalf("sizes[2] = %+v, want 800x600", sizes[2])
	}

	if _, err := ad.Control("camera", "enum_frame_sizes", types.CodeRef{Code: 0xBEEF}); err == nil {
		t.Fatal("unknown code should not enumerate sizes")
	}
}

func TestControlFormatRoundTrip(t *testing.T) {
	board := sim.NewBoard()
	ad := buildTestAdaptor(t, board, defaultParams())
	writesBefore := board.Sensor.Writes()

	res, err := ad.Control("camera", "try_format", types.FormatSet{Which: "try", Code: 0x2008, Width: 700, Height: 500})
	if err != nil {
		t.Fatalf("try_format: %v", err)
	}
	f := res.(types.Format)
	if f.Width != 640 || f.Height != 480 || f.Code != 0x2008 {
		t.Fatalf("try_format = %+v", f)
	}
	if board.Sensor.Writes() != writesBefore {
		t.Fatal("try_format touched the bus")
	}

	res, err = ad.Control("camera", "set_format", types.FormatSet{Which: "active", Code: 0x2006, Width: 800, Height: 600})
	if err != nil {
		t.Fatalf("set_format: %v", err)
	}
	f = res.(types.Format)
	if f.Width != 800 || f.Height != 600 || f.Colorspace != "srgb" || f.Field != "none" {
		t.Fatalf("set_format = %+v", f)
	}
	if board.Sensor.Writes() == writesBefore {
		t.Fatal("set_format never programmed the sensor")
	}
	// The committed output format must have landed in the select register.
	if got := board.Sensor.Peek(0x84); got != 0x00 {
		t.Fatalf("output-format register = %#02x, want UYVY", got)
	}

	res, err = ad.Control("camera", "get_format", nil)
	if err != nil {
		t.Fatalf("get_format: %v", err)
	}
	if got := res.(types.Format); got != f {
		t.Fatalf("get_format = %+v, want %+v", got, f)
	}
}

func TestControlFormatFailure(t *testing.T) {
	board := sim.NewBoard()
	ad := buildTestAdaptor(t, board, defaultParams())
	board.Sensor.FailWrites = true

	_, err := ad.Control("camera", "set_format", types.FormatSet{Code: 0x2006, Width: 800, Height: 600})
	if errcode.Of(err) != errcode.SequenceAborted {
		t.Fatalf("set_format under bus failure = %v, want sequence_aborted", err)
	}
}

func TestControlPowerAndStream(t *testing.T) {
	board := sim.NewBoard()
	ad := buildTestAdaptor(t, board, defaultParams())

	if _, err := ad.Control("camera", "set_power", types.PowerSet{On: true}); err != nil {
		t.Fatalf("set_power on: %v", err)
	}
	if board.Pwdn.High() {
		t.Fatal("sensor should be out of power-down while referenced")
	}
	if _, err := ad.Control("camera", "stream", types.StreamSet{On: true}); err != nil {
		t.Fatalf("stream on: %v", err)
	}
	if _, err := ad.Control("camera", "set_power", types.PowerSet{On: false}); err != nil {
		t.Fatalf("set_power off: %v", err)
	}
	if !board.Pwdn.High() {
		t.Fatal("sensor should be powered down after the last reference")
	}
	if _, err := ad.Control("camera", "set_power", types.PowerSet{On: false}); errcode.Of(err) != errcode.PowerUnderflow {
		t.Fatal("unbalanced power off must surface power_underflow")
	}
}

func TestControlStatus(t *testing.T) {
	board := sim.NewBoard()
	ad := buildTestAdaptor(t, board, defaultParams())

	res, err := ad.Control("camera", "status", nil)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	st := res.(types.CameraStatus)
	if st.Link != types.LinkDown || st.PowerCount != 0 {
		t.Fatalf("idle status = %+v", st)
	}
	if st.TS <= 0 {
		t.Fatalf("status timestamp = %d", st.TS)
	}

	if _, err := ad.Control("camera", "set_power", types.PowerSet{On: true}); err != nil {
		t.Fatalf("set_power on: %v", err)
	}
	res, err = ad.Control("camera", "status", nil)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	st = res.(types.CameraStatus)
	if st.Link != types.LinkUp || st.PowerCount != 1 {
		t.Fatalf("powered status = %+v", st)
	}
	if st.Format.Code == 0 || st.Format.Width == 0 {
		t.Fatalf("status format = %+v", st.Format)
	}
}

func TestControlFlips(t *testing.T) {
	board := sim.NewBoard()
	ad := buildTestAdaptor(t, board, defaultParams())
	board.Sensor.Poke(0x17, 0x14)

	if _, err := ad.Control("camera", "set_ctrl", CtrlSet{ID: "hflip", On: true}); err != nil {
		t.Fatalf("set hflip: %v", err)
	}
	if _, err := ad.Control("camera", "set_ctrl", CtrlSet{ID: "vflip", On: true}); err != nil {
		t.Fatalf("set vflip: %v", err)
	}
	if got := board.Sensor.Peek(0x17); got != 0x14|0x03 {
		t.Fatalf("orientation register = %#02x, want both flip bits set", got)
	}
	res, err := ad.Control("camera", "get_ctrl", CtrlGet{ID: "hflip"})
	if err != nil || res.(types.FlipValue).On != true {
		t.Fatalf("get hflip = %v, %v", res, err)
	}
	res, err = ad.Control("camera", "get_ctrl", CtrlGet{ID: "pixel_rate"})
	if err != nil || res.(types.PixelRateValue).Hz != 120_000_000 {
		t.Fatalf("pixel_rate = %v, %v", res, err)
	}
}

func TestControlUnknowns(t *testing.T) {
	board := sim.NewBoard()
	ad := buildTestAdaptor(t, board, defaultParams())

	if _, err := ad.Control("thermometer", "get_format", nil); !errors.Is(err, errcode.UnknownCapability) {
		t.Fatalf("wrong kind error = %v", err)
	}
	if _, err := ad.Control("camera", "defrobulate", nil); !errors.Is(err, errcode.Unsupported) {
		t.Fatalf("unknown method error = %v", err)
	}
	if _, err := ad.Control("camera", "set_format", 42); !errors.Is(err, errcode.InvalidPayload) {
		t.Fatalf("bad payload error = %v", err)
	}
}
