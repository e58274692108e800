package types

// ---- Service configuration ----

// IndicatorConfig is the payload published (retained) on config/indicator.
type IndicatorConfig struct {
	Debug  bool   `json:"debug,omitempty"`
	TickMs uint32 `json:"tick_ms,omitempty"` // engine poll interval; 0 keeps the default
}

// ---- Retained state payloads ----

// LEDState is published (retained) on indicator/led/state whenever the
// active animation mode changes.
type LEDState struct {
	Mode      string `json:"mode"`
	Animating bool   `json:"animating"`
	TSMs      int64  `json:"ts_ms"`
}

// DisplayState is published (retained) on indicator/display/state.
type DisplayState struct {
	Enabled    bool  `json:"enabled"`
	Brightness uint8 `json:"brightness"` // 0..7
	TSMs       int64 `json:"ts_ms"`
}

// ---- Serial transport ----

// SerialLine is one newline-delimited command line received from the host,
// published on serial/rx by the transport glue.
type SerialLine struct {
	Text string `json:"text"`
	TSMs int64  `json:"ts_ms"`
}
