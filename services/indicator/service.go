// Package indicator runs the peripheral control loop: it polls the animation
// engine, routes serial command lines, and publishes retained peripheral
// state on the bus. The loop is the engine's single owner; nothing else may
// call Start/Stop/Update.
package indicator

import (
	"context"
	"time"

	"indicatorcode-go/anim"
	"indicatorcode-go/bus"
	"indicatorcode-go/command"
	"indicatorcode-go/display"
	"indicatorcode-go/errcode"
	"indicatorcode-go/types"
	"indicatorcode-go/x/mathx"
	"indicatorcode-go/x/timex"
)

var (
	topicConfig       = bus.T("config", "indicator")
	topicSerialRX     = bus.T("serial", "rx")
	topicLEDState     = bus.T("indicator", "led", "state")
	topicDisplayState = bus.T("indicator", "display", "state")
	topicError        = bus.T("indicator", "event", "error")
)

const (
	defaultTickMs = 5
	minTickMs     = 1
	maxTickMs     = 250
)

type service struct {
	conn   *bus.Connection
	leds   *anim.Engine
	disp   *display.Controller
	router *command.Router
	debug  bool

	// last published state, to publish only on change
	lastMode       anim.Mode
	lastEnabled    bool
	lastBrightness uint8
}

// Run blocks until ctx is cancelled. The caller provides the engine and the
// display controller already wired to their hardware.
func Run(ctx context.Context, conn *bus.Connection, leds *anim.Engine, disp *display.Controller) {
	s := &service{
		conn:   conn,
		leds:   leds,
		disp:   disp,
		router: command.NewRouter(leds, disp),
	}
	s.loop(ctx)
}

func (s *service) loop(ctx context.Context) {
	rxSub := s.conn.Subscribe(topicSerialRX)
	cfgSub := s.conn.Subscribe(topicConfig)
	defer s.conn.Unsubscribe(rxSub)
	defer s.conn.Unsubscribe(cfgSub)

	tick := time.NewTicker(defaultTickMs * time.Millisecond)
	defer tick.Stop()

	s.publishLEDState(true)
	s.publishDisplayState(true)

	for {
		select {
		case <-ctx.Done():
			s.leds.Stop()
			println("Info: indicator service stopping")
			return

		case <-tick.C:
			s.leds.Update()
			// Update can flip the mode to Off on end-time expiry.
			s.publishLEDState(false)

		case msg := <-rxSub.Channel():
			line, ok := lineOf(msg.Payload)
			if !ok {
				continue
			}
			s.handleLine(line)

		case msg := <-cfgSub.Channel():
			s.applyConfig(msg.Payload, tick)
		}
	}
}

func (s *service) handleLine(line string) {
	handled, err := s.router.Route(line)
	if !handled {
		if s.debug {
			println("Info: unhandled line:", line)
		}
		return
	}
	if err != nil {
		code := errcode.Of(err)
		s.conn.Publish(s.conn.NewMessage(topicError, string(code), false))
		if s.debug {
			println("Warn: command error:", string(code), "line:", line)
			if code == errcode.UnknownCommand {
				print(command.Help())
			}
		}
	}
	s.publishLEDState(false)
	s.publishDisplayState(false)
}

// applyConfig accepts either the typed payload or a decoded JSON map.
func (s *service) applyConfig(payload any, tick *time.Ticker) {
	var cfg types.IndicatorConfig
	switch v := payload.(type) {
	case types.IndicatorConfig:
		cfg = v
	case *types.IndicatorConfig:
		cfg = *v
	case map[string]any:
		if d, ok := v["debug"].(bool); ok {
			cfg.Debug = d
		}
		if ms, ok := v["tick_ms"].(float64); ok {
			cfg.TickMs = uint32(ms)
		}
	default:
		return
	}

	s.debug = cfg.Debug
	ms := cfg.TickMs
	if ms == 0 {
		ms = defaultTickMs
	}
	ms = mathx.Clamp(ms, minTickMs, maxTickMs)
	tick.Reset(time.Duration(ms) * time.Millisecond)
	if s.debug {
		println("Info: indicator tick set to", ms, "ms")
	}
}

func (s *service) publishLEDState(force bool) {
	mode := s.leds.Mode()
	if !force && mode == s.lastMode {
		return
	}
	s.lastMode = mode
	s.conn.Publish(s.conn.NewMessage(topicLEDState, types.LEDState{
		Mode:      mode.String(),
		Animating: s.leds.Animating(),
		TSMs:      timex.NowMs(),
	}, true))
}

func (s *service) publishDisplayState(force bool) {
	enabled, brightness := s.disp.Enabled(), s.disp.Brightness()
	if !force && enabled == s.lastEnabled && brightness == s.lastBrightness {
		return
	}
	s.lastEnabled, s.lastBrightness = enabled, brightness
	s.conn.Publish(s.conn.NewMessage(topicDisplayState, types.DisplayState{
		Enabled:    enabled,
		Brightness: brightness,
		TSMs:       timex.NowMs(),
	}, true))
}

func lineOf(payload any) (string, bool) {
	switch v := payload.(type) {
	case types.SerialLine:
		return v.Text, true
	case *types.SerialLine:
		return v.Text, true
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}
