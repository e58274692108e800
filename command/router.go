// Package command maps serial command lines onto the indicator peripherals:
// LED: lines drive the animation engine through a static command table,
// DISP: lines are delegated to the display controller.
package command

import (
	"strings"

	"indicatorcode-go/anim"
	"indicatorcode-go/display"
	"indicatorcode-go/errcode"
	"indicatorcode-go/x/strconvx"
)

const (
	ledPrefix  = "LED:"
	dispPrefix = "DISP:"
)

// Spec is one entry in the LED command table.
type Spec struct {
	Name          string
	Mode          anim.Mode
	NeedsDuration bool
}

// Table is scanned in declaration order; first match wins. A duration
// command only matches with a trailing space, so no name can shadow another.
var Table = [...]Spec{
	{"off", anim.Off, false},
	{"ack", anim.Ack, false},
	{"nack", anim.Nack, false},
	{"red-blue", anim.RedBlue, true},
	{"red-green-yellow", anim.Traffic, true},
	{"matrix", anim.Matrix, true},
	{"rainbow", anim.Rainbow, true},
	{"pulse-red", anim.PulseRed, true},
	{"pulse-blue", anim.PulseBlue, true},
	{"strobe", anim.Strobe, true},
	{"fire", anim.Fire, true},
	{"ocean", anim.Ocean, true},
	{"thinking", anim.Thinking, true},
}

type Router struct {
	leds *anim.Engine
	disp *display.Controller
}

func NewRouter(leds *anim.Engine, disp *display.Controller) *Router {
	return &Router{leds: leds, disp: disp}
}

// Route interprets one line of input. handled=false means the line belongs
// to neither peripheral and the caller may try other interpretations.
// Every line under a recognized prefix reports handled=true, even when the
// command itself is unusable, so it cannot be misread downstream; the error
// is a diagnostic, never a state change.
func (r *Router) Route(line string) (handled bool, err error) {
	switch {
	case strings.HasPrefix(line, ledPrefix):
		// LED command names are case-sensitive.
		return true, r.routeLED(line[len(ledPrefix):])
	case len(line) >= len(dispPrefix) && strings.EqualFold(line[:len(dispPrefix)], dispPrefix):
		return r.disp.Process(line)
	default:
		return false, nil
	}
}

func (r *Router) routeLED(param string) error {
	for i := range Table {
		spec := &Table[i]
		if spec.NeedsDuration {
			if !strings.HasPrefix(param, spec.Name+" ") {
				continue
			}
			secs, err := strconvx.Atoi(param[len(spec.Name)+1:])
			if err != nil || secs <= 0 {
				return errcode.InvalidDuration
			}
			r.leds.Start(spec.Mode, secs)
			return nil
		}
		if param == spec.Name {
			r.leds.Start(spec.Mode, 0)
			return nil
		}
	}
	return errcode.UnknownCommand
}

// Help lists every LED command, generated from the table.
func Help() string {
	var b strings.Builder
	b.WriteString("LED commands:\n")
	for i := range Table {
		b.WriteString("  LED:")
		b.WriteString(Table[i].Name)
		if Table[i].NeedsDuration {
			b.WriteString(" <seconds>")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
