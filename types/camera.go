package types

// ------------------------
// Camera sensor capability
// ------------------------

// CameraInfo describes one attached sensor (retained info doc).
type CameraInfo struct {
	Sensor string `json:"sensor"` // "gc2145"
	Addr   uint16 `json:"addr"`   // I2C address
	Bus    string `json:"bus"`    // "i2c0", ...
	ChipID uint16 `json:"chip_id"`
	XCLKHz uint32 `json:"xclk_hz"`
}

// Format is the negotiated frame format exchanged with the host pipeline.
// Code is the sensor's wire code for the pixel encoding; Field is always
// "none" (progressive).
type Format struct {
	Code       uint16 `json:"code"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Colorspace string `json:"colorspace"` // "srgb", "jpeg", "raw"
	Field      string `json:"field"`
}

// FormatSet requests a format change. Which selects the commit ("active")
// or negotiation-only ("try") path.
type FormatSet struct {
	Which  string `json:"which"` // "active" | "try"
	Code   uint16 `json:"code"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// CodeRef selects one wire code, e.g. for frame-size enumeration.
type CodeRef struct {
	Code uint16 `json:"code"`
}

// FrameSize is one discrete supported geometry (min == max; no zoom range).
type FrameSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PowerSet adjusts the sensor's power reference count.
type PowerSet struct {
	On bool `json:"on"`
}

// StreamSet starts or stops streaming (a no-op at the sensor layer).
type StreamSet struct {
	On bool `json:"on"`
}

// FlipSet toggles one mirroring axis.
type FlipSet struct {
	On bool `json:"on"`
}

// FlipValue reports the cached state of one mirroring axis.
type FlipValue struct {
	On bool `json:"on"`
}

// CameraStatus is a point-in-time snapshot of the sensor session.
type CameraStatus struct {
	Link       Link   `json:"link"` // up while the sensor holds power references
	TS         int64  `json:"ts_ms"`
	PowerCount int    `json:"power_count"`
	Mode       uint8  `json:"mode"`
	Format     Format `json:"format"`
}

// PixelRateValue reports the fixed output pixel clock.
type PixelRateValue struct {
	Hz uint32 `json:"hz"`
}
