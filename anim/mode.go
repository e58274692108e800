package anim

// Mode selects the active animation. The zero value is Off.
type Mode uint8

const (
	Off Mode = iota
	Ack
	Nack
	RedBlue
	Traffic
	Matrix
	Rainbow
	PulseRed
	PulseBlue
	Strobe
	Fire
	Ocean
	Thinking

	numModes
)

var modeNames = [numModes]string{
	Off:       "off",
	Ack:       "ack",
	Nack:      "nack",
	RedBlue:   "red-blue",
	Traffic:   "red-green-yellow",
	Matrix:    "matrix",
	Rainbow:   "rainbow",
	PulseRed:  "pulse-red",
	PulseBlue: "pulse-blue",
	Strobe:    "strobe",
	Fire:      "fire",
	Ocean:     "ocean",
	Thinking:  "thinking",
}

func (m Mode) String() string {
	if m < numModes {
		return modeNames[m]
	}
	return "off"
}

// timing holds the per-mode update cadence. briefMs > 0 marks a fixed-length
// animation whose total runtime ignores any caller-supplied duration.
type timing struct {
	intervalMs int64
	briefMs    int64
}

var timings = [numModes]timing{
	Off:       {},
	Ack:       {intervalMs: 100, briefMs: 300},
	Nack:      {intervalMs: 100, briefMs: 300},
	RedBlue:   {intervalMs: 150},
	Traffic:   {intervalMs: 800},
	Matrix:    {intervalMs: 50},
	Rainbow:   {intervalMs: 30},
	PulseRed:  {intervalMs: 30},
	PulseBlue: {intervalMs: 30},
	Strobe:    {intervalMs: 100},
	Fire:      {intervalMs: 80},
	Ocean:     {intervalMs: 40},
	Thinking:  {intervalMs: 200},
}

// Interval returns the minimum elapsed time between visual changes for m,
// in milliseconds.
func (m Mode) Interval() int64 { return timings[m].intervalMs }
