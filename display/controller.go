// Package display owns the DISP: protocol and the panel state (brightness,
// enabled) for a 4-digit 7-segment readout. Character-to-segment encoding
// belongs to the Driver.
package display

import (
	"strings"

	"indicatorcode-go/errcode"
	"indicatorcode-go/x/mathx"
	"indicatorcode-go/x/strconvx"
)

// Width is the number of digits on the panel.
const Width = 4

const prefix = "DISP:"

const blank = ' '

// Driver is the segment hardware under the controller, shaped after the
// tinygo tm1637 device so the board glue is a direct pass-through.
type Driver interface {
	ClearDisplay()
	Brightness(level uint8)
	DisplayChr(chr byte, pos uint8)
}

// Controller processes display commands and tracks panel state.
type Controller struct {
	drv        Driver
	brightness uint8 // 0..7, restored by On
	enabled    bool
}

const defaultBrightness = 4

func New(drv Driver) *Controller {
	return &Controller{drv: drv, brightness: defaultBrightness, enabled: true}
}

// Process interprets one line. Display commands are case-insensitive; the
// whole line is uppercased before matching. Returns handled=false when the
// line has no DISP: prefix. Errors are diagnostics only, the line counts as
// handled either way.
func (c *Controller) Process(line string) (bool, error) {
	u := strings.ToUpper(line)
	if !strings.HasPrefix(u, prefix) {
		return false, nil
	}
	param := u[len(prefix):]

	switch {
	case param == "CLR":
		c.Clear()
	case param == "ON":
		c.On()
	case param == "OFF":
		c.Off()
	case strings.HasPrefix(param, "BRT:"):
		n, err := strconvx.Atoi(param[len("BRT:"):])
		if err != nil || !mathx.Between(n, 0, 7) {
			return true, errcode.InvalidBrightness
		}
		c.SetBrightness(uint8(n))
	default:
		return true, c.Text(param)
	}
	return true, nil
}

func (c *Controller) Clear() { c.drv.ClearDisplay() }

// SetBrightness stores a level in 0..7 and applies it while the panel is
// enabled. Off keeps the hardware dark until On restores the stored level.
func (c *Controller) SetBrightness(level uint8) {
	c.brightness = mathx.Min(level, 7)
	if c.enabled {
		c.drv.Brightness(c.brightness)
	}
}

func (c *Controller) Brightness() uint8 { return c.brightness }

func (c *Controller) On() {
	c.enabled = true
	c.drv.Brightness(c.brightness)
}

func (c *Controller) Off() {
	c.enabled = false
	c.drv.Brightness(0)
}

func (c *Controller) Enabled() bool { return c.enabled }

// Text shows s on the panel. All-digit strings up to Width characters are
// right-aligned with blank padding, the way a numeric readout reads;
// anything else is left-aligned and truncated to the panel width.
func (c *Controller) Text(s string) error {
	if !c.enabled {
		return errcode.DisplayOff
	}
	if isDigits(s) && len(s) <= Width {
		c.showNumeric(s)
		return nil
	}
	if len(s) > Width {
		s = s[:Width]
	}
	for i := 0; i < Width; i++ {
		if i < len(s) {
			c.drv.DisplayChr(s[i], uint8(i))
		} else {
			c.drv.DisplayChr(blank, uint8(i))
		}
	}
	return nil
}

func (c *Controller) showNumeric(s string) {
	start := Width - len(s)
	for i := 0; i < Width; i++ {
		if i < start {
			c.drv.DisplayChr(blank, uint8(i))
		} else {
			c.drv.DisplayChr(s[i-start], uint8(i))
		}
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Boot patterns. Non-blocking: sequencing between them is the caller's job.

// ShowStartup lights every segment-heavy digit briefly visible at power-on.
func (c *Controller) ShowStartup() { _ = c.Text("8888") }

// ShowReady signals a completed boot.
func (c *Controller) ShowReady() { _ = c.Text("REDY") }

// ShowDashes marks an idle or waiting state.
func (c *Controller) ShowDashes() { _ = c.Text("----") }
