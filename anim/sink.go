package anim

// Sink applies an (r, g, b) triple, 0-255 each, to the physical output.
// Implementations own any polarity inversion the wiring needs (e.g.
// common-anode drive writes 255-v). A sink has no failure mode visible to
// the engine.
type Sink interface {
	Set(r, g, b uint8)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(r, g, b uint8)

func (f SinkFunc) Set(r, g, b uint8) { f(r, g, b) }
