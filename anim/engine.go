// Package anim schedules non-blocking indicator animations. The engine runs
// one step per call to Update when the active mode's interval has elapsed;
// callers poll it from a single loop at any frequency.
package anim

import "math/rand"

// Engine holds the single active animation. Start replaces the whole state,
// so nothing leaks between modes. Not safe for concurrent use: one goroutine
// owns Start/Stop/Update.
type Engine struct {
	sink Sink
	now  func() int64 // monotonic milliseconds
	rng  *rand.Rand   // fire flicker only

	mode       Mode
	interval   int64
	endTime    int64 // 0 = run until stopped
	lastUpdate int64
	step       uint32
	phase      uint8 // wave table index
	phase2     uint8 // second wave index, drifts against phase (ocean)
}

// New builds an engine in mode Off. now supplies monotonic milliseconds;
// rng feeds the fire effect and may be nil if Fire is never started.
func New(sink Sink, now func() int64, rng *rand.Rand) *Engine {
	return &Engine{sink: sink, now: now, rng: rng}
}

// Start switches to mode m. durationSeconds <= 0 means the mode default:
// indefinite for looping modes, the fixed brief runtime for Ack/Nack.
// Brief modes ignore the caller's duration entirely.
func (e *Engine) Start(m Mode, durationSeconds int) {
	t := timings[m]
	e.mode = m
	e.interval = t.intervalMs
	e.step = 0
	e.phase = 0
	e.phase2 = 0
	e.lastUpdate = 0 // forces a redraw on the next Update

	switch {
	case m == Off:
		e.endTime = 0
		e.sink.Set(0, 0, 0)
	case t.briefMs > 0:
		e.endTime = e.now() + t.briefMs
	case durationSeconds > 0:
		e.endTime = e.now() + int64(durationSeconds)*1000
	default:
		e.endTime = 0
	}
}

// Stop is equivalent to Start(Off, 0).
func (e *Engine) Stop() { e.Start(Off, 0) }

// Animating reports whether a non-Off mode is live.
func (e *Engine) Animating() bool { return e.mode != Off }

// Mode returns the active mode.
func (e *Engine) Mode() Mode { return e.mode }

// Update runs one animation step if the mode's interval has elapsed.
// Expiry of the end time is the only way an animation self-terminates.
// Off-interval calls return with no side effects, so the polling loop may
// run arbitrarily fast.
func (e *Engine) Update() {
	if e.mode == Off {
		return
	}
	now := e.now()
	if e.endTime > 0 && now > e.endTime {
		e.mode = Off
		e.endTime = 0
		e.sink.Set(0, 0, 0)
		return
	}
	if now-e.lastUpdate < e.interval {
		return
	}
	e.lastUpdate = now

	switch e.mode {
	case Ack, Nack:
		// Two-step flash: color, then off. The 300 ms brief window cuts off
		// anything beyond the second step.
		if e.step == 0 {
			if e.mode == Ack {
				e.sink.Set(0, 64, 0)
			} else {
				e.sink.Set(64, 0, 0)
			}
		} else {
			e.sink.Set(0, 0, 0)
			e.mode = Off
			e.endTime = 0
		}
		e.step++

	case RedBlue:
		if e.step%2 == 0 {
			e.sink.Set(255, 0, 0)
		} else {
			e.sink.Set(0, 0, 255)
		}
		e.step++

	case Traffic:
		switch e.step % 3 {
		case 0:
			e.sink.Set(255, 0, 0)
		case 1:
			e.sink.Set(0, 255, 0)
		case 2:
			e.sink.Set(255, 255, 0)
		}
		e.step++

	case Matrix:
		e.sink.Set(0, waveTable[e.phase], 0)
		e.phase = (e.phase + 1) % waveLen

	case Rainbow:
		c := rainbowTable[e.step%waveLen]
		e.sink.Set(c[0], c[1], c[2])
		e.step++

	case PulseRed:
		e.sink.Set(waveTable[e.phase], 0, 0)
		e.phase = (e.phase + 2) % waveLen

	case PulseBlue:
		e.sink.Set(0, 0, waveTable[e.phase])
		e.phase = (e.phase + 2) % waveLen

	case Strobe:
		if e.step%2 == 0 {
			e.sink.Set(255, 255, 255)
		} else {
			e.sink.Set(0, 0, 0)
		}
		e.step++

	case Fire:
		// Independent flicker each tick; the RNG stream is the only state.
		r := uint8(200 + e.rng.Intn(56))
		g := uint8(e.rng.Intn(100))
		e.sink.Set(r, g, 0)

	case Ocean:
		// Two wave reads with drifting phases; the cyan term is scaled to
		// 100/255 of the blue one to keep the palette ocean-like.
		b := waveTable[e.phase]
		g := uint8(uint16(waveTable[e.phase2]) * 100 / 255)
		e.sink.Set(0, g, b)
		e.phase = (e.phase + 1) % waveLen
		e.phase2 = (e.phase2 + 2) % waveLen

	case Thinking:
		// 12-step period: 4 colors x 3 envelope phases.
		b := thinkingEnvelope[e.step%3]
		switch (e.step / 3) % 4 {
		case 0:
			e.sink.Set(0, b, 0)
		case 1:
			e.sink.Set(b, 0, 0)
		case 2:
			e.sink.Set(b, b, 0)
		case 3:
			e.sink.Set(0, 0, b)
		}
		e.step++
	}
}
