package anim

import (
	"math/rand"
	"testing"
)

type fakeClock struct{ ms int64 }

func (c *fakeClock) now() int64       { return c.ms }
func (c *fakeClock) advance(ms int64) { c.ms += ms }

type recordSink struct{ writes [][3]uint8 }

func (s *recordSink) Set(r, g, b uint8) { s.writes = append(s.writes, [3]uint8{r, g, b}) }

func (s *recordSink) last(t *testing.T) [3]uint8 {
	t.Helper()
	if len(s.writes) == 0 {
		t.Fatal("no sink writes recorded")
	}
	return s.writes[len(s.writes)-1]
}

func newTestEngine() (*Engine, *fakeClock, *recordSink) {
	clock := &fakeClock{ms: 1000}
	sink := &recordSink{}
	return New(sink, clock.now, rand.New(rand.NewSource(1))), clock, sink
}

func TestOffIntervalIsNoOp(t *testing.T) {
	modes := []Mode{RedBlue, Traffic, Matrix, Rainbow, PulseRed, PulseBlue, Strobe, Fire, Ocean, Thinking}
	for _, m := range modes {
		e, clock, sink := newTestEngine()
		e.Start(m, 60)
		e.Update() // first redraw is immediate
		n := len(sink.writes)

		clock.advance(m.Interval() - 1)
		e.Update()
		if len(sink.writes) != n {
			t.Errorf("%v: off-interval Update wrote to sink", m)
		}

		clock.advance(1)
		e.Update()
		if len(sink.writes) != n+1 {
			t.Errorf("%v: on-interval Update did not step exactly once", m)
		}
	}
}

func TestAckFlashSequence(t *testing.T) {
	e, clock, sink := newTestEngine()
	e.Start(Ack, 0)

	e.Update()
	clock.advance(100)
	e.Update()

	want := [][3]uint8{{0, 64, 0}, {0, 0, 0}}
	if len(sink.writes) != 2 || sink.writes[0] != want[0] || sink.writes[1] != want[1] {
		t.Fatalf("ack sequence = %v, want %v", sink.writes, want)
	}
	if e.Animating() {
		t.Error("still animating after second ack step")
	}

	// Nothing further happens once the flash finished.
	clock.advance(100)
	e.Update()
	if len(sink.writes) != 2 {
		t.Errorf("update after ack finished wrote to sink: %v", sink.writes)
	}
}

func TestNackFlashColor(t *testing.T) {
	e, _, sink := newTestEngine()
	e.Start(Nack, 0)
	e.Update()
	if got := sink.last(t); got != [3]uint8{64, 0, 0} {
		t.Errorf("nack first step = %v, want (64,0,0)", got)
	}
}

func TestBriefDurationOverridesCaller(t *testing.T) {
	e, clock, sink := newTestEngine()
	e.Start(Ack, 99) // caller duration must be ignored

	clock.advance(301)
	e.Update()
	if e.Animating() {
		t.Error("ack outlived its 300ms brief window")
	}
	if got := sink.last(t); got != [3]uint8{0, 0, 0} {
		t.Errorf("expiry output = %v, want (0,0,0)", got)
	}
}

func TestRainbowPeriodicity(t *testing.T) {
	e, clock, sink := newTestEngine()
	e.Start(Rainbow, 5)

	run := func() [][3]uint8 {
		start := len(sink.writes)
		for i := 0; i < waveLen; i++ {
			e.Update()
			clock.advance(Rainbow.Interval())
		}
		return sink.writes[start:]
	}
	first := run()
	second := run()

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("rainbow period mismatch at step %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestRedBlueExpiry(t *testing.T) {
	e, clock, sink := newTestEngine()
	e.Start(RedBlue, 10)

	e.Update()
	if got := sink.last(t); got != [3]uint8{255, 0, 0} {
		t.Fatalf("first red-blue step = %v, want red", got)
	}
	clock.advance(150)
	e.Update()
	if got := sink.last(t); got != [3]uint8{0, 0, 255} {
		t.Fatalf("second red-blue step = %v, want blue", got)
	}

	clock.advance(10001)
	e.Update()
	if got := sink.last(t); got != [3]uint8{0, 0, 0} {
		t.Errorf("expiry output = %v, want (0,0,0)", got)
	}
	if e.Animating() {
		t.Error("still animating after end time")
	}
}

func TestTrafficCycle(t *testing.T) {
	e, clock, sink := newTestEngine()
	e.Start(Traffic, 60)
	want := [][3]uint8{{255, 0, 0}, {0, 255, 0}, {255, 255, 0}, {255, 0, 0}}
	for i, w := range want {
		e.Update()
		if got := sink.last(t); got != w {
			t.Errorf("traffic step %d = %v, want %v", i, got, w)
		}
		clock.advance(Traffic.Interval())
	}
}

func TestStrobeParity(t *testing.T) {
	e, clock, sink := newTestEngine()
	e.Start(Strobe, 60)
	e.Update()
	if got := sink.last(t); got != [3]uint8{255, 255, 255} {
		t.Errorf("strobe step 0 = %v, want white", got)
	}
	clock.advance(100)
	e.Update()
	if got := sink.last(t); got != [3]uint8{0, 0, 0} {
		t.Errorf("strobe step 1 = %v, want off", got)
	}
}

func TestMatrixWaveAdvance(t *testing.T) {
	e, clock, sink := newTestEngine()
	e.Start(Matrix, 60)
	for i := 0; i < 3; i++ {
		e.Update()
		want := [3]uint8{0, waveTable[i], 0}
		if got := sink.last(t); got != want {
			t.Errorf("matrix step %d = %v, want %v", i, got, want)
		}
		clock.advance(Matrix.Interval())
	}
}

func TestPulseAdvancesByTwo(t *testing.T) {
	e, clock, sink := newTestEngine()
	e.Start(PulseBlue, 60)
	for i := 0; i < 3; i++ {
		e.Update()
		want := [3]uint8{0, 0, waveTable[(i*2)%waveLen]}
		if got := sink.last(t); got != want {
			t.Errorf("pulse step %d = %v, want %v", i, got, want)
		}
		clock.advance(PulseBlue.Interval())
	}
}

func TestOceanDualWave(t *testing.T) {
	e, clock, sink := newTestEngine()
	e.Start(Ocean, 60)

	for i := 0; i < 3; i++ {
		e.Update()
		blue := waveTable[i%waveLen]
		cyan := uint8(uint16(waveTable[(i*2)%waveLen]) * 100 / 255)
		want := [3]uint8{0, cyan, blue}
		if got := sink.last(t); got != want {
			t.Errorf("ocean step %d = %v, want %v", i, got, want)
		}
		clock.advance(Ocean.Interval())
	}
}

func TestFireStaysInRange(t *testing.T) {
	e, clock, sink := newTestEngine()
	e.Start(Fire, 60)
	for i := 0; i < 50; i++ {
		e.Update()
		got := sink.last(t)
		if got[0] < 200 || got[1] > 99 || got[2] != 0 {
			t.Fatalf("fire step %d out of range: %v", i, got)
		}
		clock.advance(Fire.Interval())
	}
}

func TestThinkingSequence(t *testing.T) {
	e, clock, sink := newTestEngine()
	e.Start(Thinking, 20)

	env := thinkingEnvelope
	var want [][3]uint8
	for _, c := range []func(b uint8) [3]uint8{
		func(b uint8) [3]uint8 { return [3]uint8{0, b, 0} }, // green
		func(b uint8) [3]uint8 { return [3]uint8{b, 0, 0} }, // red
		func(b uint8) [3]uint8 { return [3]uint8{b, b, 0} }, // yellow
		func(b uint8) [3]uint8 { return [3]uint8{0, 0, b} }, // blue
	} {
		for _, b := range env {
			want = append(want, c(b))
		}
	}

	// Two full 12-step periods must repeat exactly.
	for cycle := 0; cycle < 2; cycle++ {
		for i, w := range want {
			e.Update()
			if got := sink.last(t); got != w {
				t.Fatalf("cycle %d thinking step %d = %v, want %v", cycle, i, got, w)
			}
			clock.advance(Thinking.Interval())
		}
	}
}

func TestStartResetsPhase(t *testing.T) {
	e, clock, sink := newTestEngine()
	e.Start(Matrix, 60)
	for i := 0; i < 5; i++ {
		e.Update()
		clock.advance(Matrix.Interval())
	}

	// No residual phase may leak into the next mode.
	e.Start(PulseRed, 60)
	e.Update()
	if got := sink.last(t); got != [3]uint8{waveTable[0], 0, 0} {
		t.Errorf("first pulse step after restart = %v, want wave[0] red", got)
	}
}

func TestStopIsImmediate(t *testing.T) {
	e, clock, sink := newTestEngine()
	e.Start(Rainbow, 60)
	e.Update()

	e.Stop()
	if got := sink.last(t); got != [3]uint8{0, 0, 0} {
		t.Errorf("stop output = %v, want (0,0,0)", got)
	}
	if e.Animating() {
		t.Error("animating after Stop")
	}

	// Off self-loops without touching the sink.
	n := len(sink.writes)
	clock.advance(1000)
	e.Update()
	if len(sink.writes) != n {
		t.Error("Update in Off mode wrote to sink")
	}
}

func TestZeroDurationRunsUntilStopped(t *testing.T) {
	e, clock, sink := newTestEngine()
	e.Start(RedBlue, 0)

	clock.advance(1 << 20) // far beyond any plausible duration
	e.Update()
	if !e.Animating() {
		t.Fatal("zero-duration animation terminated on its own")
	}
	if got := sink.last(t); got == ([3]uint8{0, 0, 0}) {
		t.Errorf("expected an animation frame, got off")
	}
}
