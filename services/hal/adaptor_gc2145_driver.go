// services/hal/adaptor_gc2145_driver.go
package hal

import (
	"sync"

	"camcode-go/drivers/gc2145"
	"camcode-go/errcode"
	"camcode-go/types"
	"camcode-go/x/timex"
)

// Params defines wiring for one GC2145 instance.
type Params struct {
	Bus      string // e.g. "i2c0" (required)
	Addr     uint16 // optional; default gc2145.Address
	PwdnPin  int    // power-down control line (required)
	ResetPin int    // reset control line (required)
	XCLKHz   uint32 // external clock, must be within the sensor's range
	AllModes bool   // lift the reference SVGA-only commit restriction
}

// Builder registration.
func init() { RegisterBuilder("gc2145", gc2145Builder{}) }

type gc2145Builder struct{}

func (gc2145Builder) Build(in BuildInput) (Adaptor, error) {
	p, ok := in.Params.(Params)
	if !ok {
		if pp, ok2 := in.Params.(*Params); ok2 && pp != nil {
			p = *pp
		} else {
			return nil, errcode.InvalidParams
		}
	}
	if p.Bus == "" {
		return nil, errcode.InvalidParams
	}
	bus, ok := in.Buses.ByID(p.Bus)
	if !ok {
		return nil, errcode.UnknownBus
	}
	pwdn, ok := in.Pins.ByNumber(p.PwdnPin)
	if !ok {
		return nil, errcode.UnknownPin
	}
	rst, ok := in.Pins.ByNumber(p.ResetPin)
	if !ok {
		return nil, errcode.UnknownPin
	}

	dev := gc2145.New(bus)
	err := dev.Configure(gc2145.Config{
		Address:   p.Addr,
		PowerDown: pwdn,
		Reset:     rst,
		XCLKHz:    p.XCLKHz,
		AllModes:  p.AllModes,
	})
	if err != nil {
		return nil, &errcode.E{C: errcode.MapDriverErr(err), Op: "gc2145.build", Err: err}
	}
	return &gc2145Adaptor{id: in.DeviceID, dev: dev, busID: p.Bus, addr: dev.Addr(), xclk: p.XCLKHz}, nil
}

type gc2145Adaptor struct {
	id    string
	dev   *gc2145.Device
	busID string
	addr  uint16
	xclk  uint32

	// Cached control state; flips are write-only on the wire.
	mu    sync.Mutex
	hflip bool
	vflip bool
}

func (a *gc2145Adaptor) ID() string { return a.id }

func (a *gc2145Adaptor) Capabilities() []CapInfo {
	return []CapInfo{
		{Kind: string(types.KindCamera), Info: types.Info{
			SchemaVersion: 1,
			Driver:        "gc2145",
			Detail: types.CameraInfo{
				Sensor: "gc2145",
				Addr:   a.addr,
				Bus:    a.busID,
				ChipID: gc2145.ChipID,
				XCLKHz: a.xclk,
			},
		}},
	}
}

func (a *gc2145Adaptor) Control(kind, method string, payload any) (any, error) {
	if kind != string(types.KindCamera) {
		return nil, errcode.UnknownCapability
	}
	switch method {
	case "enum_codes":
		return a.enumCodes(), nil
	case "enum_frame_sizes":
		return a.enumFrameSizes(payload)
	case "get_format":
		return a.getFormat(payload)
	case "try_format":
		return a.setFormat(gc2145.FormatTry, payload)
	case "set_format":
		return a.setFormat(gc2145.FormatActive, payload)
	case "set_power":
		return a.setPower(payload)
	case "status":
		return a.status(), nil
	case "stream":
		return a.stream(payload)
	case "set_ctrl":
		return a.setCtrl(payload)
	case "get_ctrl":
		return a.getCtrl(payload)
	default:
		return nil, errcode.Unsupported
	}
}

func (a *gc2145Adaptor) enumCodes() []uint16 {
	codes := gc2145.Codes()
	out := make([]uint16, len(codes))
	for i, c := range codes {
		out[i] = uint16(c)
	}
	return out
}

func (a *gc2145Adaptor) enumFrameSizes(payload any) (any, error) {
	ref, ok := payload.(types.CodeRef)
	if !ok {
		return nil, errcode.InvalidPayload
	}
	sizes := gc2145.FrameSizes(gc2145.PixelCode(ref.Code))
	if sizes == nil {
		return nil, errcode.UnknownCapability
	}
	out := make([]types.FrameSize, len(sizes))
	for i, s := range sizes {
		out[i] = types.FrameSize{Width: s.Width, Height: s.Height}
	}
	return out, nil
}

func (a *gc2145Adaptor) getFormat(payload any) (any, error) {
	which := gc2145.FormatActive
	if sel, ok := payload.(types.FormatSet); ok && sel.Which == "try" {
		which = gc2145.FormatTry
	}
	return formatToDTO(a.dev.GetFormat(which)), nil
}

func (a *gc2145Adaptor) setFormat(which gc2145.Which, payload any) (any, error) {
	req, ok := payload.(types.FormatSet)
	if !ok {
		return nil, errcode.InvalidPayload
	}
	if req.Which == "try" {
		which = gc2145.FormatTry
	}
	got, err := a.dev.SetFormat(which, gc2145.FrameFormat{
		Code:   gc2145.PixelCode(req.Code),
		Width:  req.Width,
		Height: req.Height,
	})
	if err != nil {
		return nil, &errcode.E{C: errcode.MapDriverErr(err), Op: "gc2145.set_format", Err: err}
	}
	return formatToDTO(got), nil
}

func (a *gc2145Adaptor) setPower(payload any) (any, error) {
	req, ok := payload.(types.PowerSet)
	if !ok {
		return nil, errcode.InvalidPayload
	}
	if err := a.dev.SetPower(req.On); err != nil {
		return nil, &errcode.E{C: errcode.MapDriverErr(err), Op: "gc2145.set_power", Err: err}
	}
	return map[string]any{"ok": true, "count": a.dev.PowerCount()}, nil
}

func (a *gc2145Adaptor) status() types.CameraStatus {
	s := a.dev.GetStatus()
	link := types.LinkDown
	if s.PowerCount > 0 {
		link = types.LinkUp
	}
	return types.CameraStatus{
		Link:       link,
		TS:         timex.NowMs(),
		PowerCount: s.PowerCount,
		Mode:       uint8(s.Mode),
		Format:     formatToDTO(s.Format),
	}
}

func (a *gc2145Adaptor) stream(payload any) (any, error) {
	req, ok := payload.(types.StreamSet)
	if !ok {
		return nil, errcode.InvalidPayload
	}
	if err := a.dev.SetStream(req.On); err != nil {
		return nil, &errcode.E{C: errcode.MapDriverErr(err), Op: "gc2145.stream", Err: err}
	}
	return map[string]any{"ok": true}, nil
}

// CtrlSet/CtrlGet address the small fixed control set.
type CtrlSet struct {
	ID string `json:"id"` // "hflip" | "vflip"
	On bool   `json:"on"`
}

type CtrlGet struct {
	ID string `json:"id"` // "hflip" | "vflip" | "pixel_rate"
}

func (a *gc2145Adaptor) setCtrl(payload any) (any, error) {
	req, ok := payload.(CtrlSet)
	if !ok {
		return nil, errcode.InvalidPayload
	}
	var err error
	switch req.ID {
	case "hflip":
		err = a.dev.SetHFlip(req.On)
	case "vflip":
		err = a.dev.SetVFlip(req.On)
	default:
		return nil, errcode.Unsupported
	}
	if err != nil {
		return nil, &errcode.E{C: errcode.MapDriverErr(err), Op: "gc2145.set_ctrl", Err: err}
	}
	a.mu.Lock()
	if req.ID == "hflip" {
		a.hflip = req.On
	} else {
		a.vflip = req.On
	}
	a.mu.Unlock()
	return map[string]any{"ok": true}, nil
}

func (a *gc2145Adaptor) getCtrl(payload any) (any, error) {
	req, ok := payload.(CtrlGet)
	if !ok {
		return nil, errcode.InvalidPayload
	}
	switch req.ID {
	case "hflip":
		a.mu.Lock()
		defer a.mu.Unlock()
		return types.FlipValue{On: a.hflip}, nil
	case "vflip":
		a.mu.Lock()
		defer a.mu.Unlock()
		return types.FlipValue{On: a.vflip}, nil
	case "pixel_rate":
		return types.PixelRateValue{Hz: a.dev.PixelRate()}, nil
	default:
		return nil, errcode.Unsupported
	}
}

func formatToDTO(f gc2145.FrameFormat) types.Format {
	return types.Format{
		Code:       uint16(f.Code),
		Width:      f.Width,
		Height:     f.Height,
		Colorspace: colorspaceName(f.Colorspace),
		Field:      "none",
	}
}

func colorspaceName(cs gc2145.Colorspace) string {
	switch cs {
	case gc2145.ColorspaceJPEG:
		return "jpeg"
	case gc2145.ColorspaceRaw:
		return "raw"
	default:
		return "srgb"
	}
}
