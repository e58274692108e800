//go:build rp2040

// RP2040 firmware main: UART0 carries the command protocol, three PWM
// channels drive a common-anode RGB LED, a TM1637 module is the 4-digit
// panel.
package main

import (
	"context"
	"machine"
	"math/rand"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/tm1637"

	"indicatorcode-go/anim"
	"indicatorcode-go/bus"
	"indicatorcode-go/display"
	"indicatorcode-go/services/indicator"
	"indicatorcode-go/types"
	"indicatorcode-go/x/timex"
)

// Board wiring.
const (
	pinUARTTX = machine.GP0
	pinUARTRX = machine.GP1

	pinRed   = machine.GP10 // PWM5 A
	pinGreen = machine.GP11 // PWM5 B
	pinBlue  = machine.GP12 // PWM6 A

	pinDispCLK = machine.GP14
	pinDispDIO = machine.GP15

	uartBaud = 115200

	// 500 Hz is flicker-free and leaves PWM slices free for other loads.
	pwmPeriodNs = 1_000_000_000 / 500

	maxLineLen = 128
)

// pwmSlice is the subset of the machine PWM groups the sink needs.
type pwmSlice interface {
	Configure(machine.PWMConfig) error
	Channel(machine.Pin) (uint8, error)
	Set(ch uint8, value uint32)
	Top() uint32
}

type pwmChan struct {
	slice pwmSlice
	ch    uint8
}

func (p pwmChan) set(v uint8) {
	p.slice.Set(p.ch, uint32(v)*p.slice.Top()/255)
}

// rgbSink drives the LED through PWM. The wiring is common-anode, so the
// logical level is inverted before it reaches the pin.
type rgbSink struct {
	red, green, blue pwmChan
	activeLow        bool
}

func (s *rgbSink) Set(r, g, b uint8) {
	if s.activeLow {
		r, g, b = 255-r, 255-g, 255-b
	}
	s.red.set(r)
	s.green.set(g)
	s.blue.set(b)
}

func newRGBSink() (*rgbSink, error) {
	cfg := machine.PWMConfig{Period: pwmPeriodNs}
	if err := machine.PWM5.Configure(cfg); err != nil {
		return nil, err
	}
	if err := machine.PWM6.Configure(cfg); err != nil {
		return nil, err
	}
	chR, err := machine.PWM5.Channel(pinRed)
	if err != nil {
		return nil, err
	}
	chG, err := machine.PWM5.Channel(pinGreen)
	if err != nil {
		return nil, err
	}
	chB, err := machine.PWM6.Channel(pinBlue)
	if err != nil {
		return nil, err
	}
	return &rgbSink{
		red:       pwmChan{machine.PWM5, chR},
		green:     pwmChan{machine.PWM5, chG},
		blue:      pwmChan{machine.PWM6, chB},
		activeLow: true,
	}, nil
}

// readLines accumulates UART bytes into newline-delimited lines and
// publishes each one on serial/rx.
func readLines(ctx context.Context, u *uartx.UART, conn *bus.Connection) {
	topic := bus.T("serial", "rx")
	buf := make([]byte, 64)
	line := make([]byte, 0, maxLineLen)

	for {
		n, err := u.RecvSomeContext(ctx, buf)
		if err != nil {
			return
		}
		for _, c := range buf[:n] {
			switch c {
			case '\r':
				// tolerate CRLF hosts
			case '\n':
				if len(line) > 0 {
					conn.Publish(conn.NewMessage(topic,
						types.SerialLine{Text: string(line), TSMs: timex.NowMs()}, false))
					line = line[:0]
				}
			default:
				if len(line) < maxLineLen {
					line = append(line, c)
				}
			}
		}
	}
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("Info: indicator boot")

	ctx := context.Background()

	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: uartBaud,
		TX:       pinUARTTX,
		RX:       pinUARTRX,
	})

	sink, err := newRGBSink()
	if err != nil {
		println("Warn: pwm setup failed:", err.Error())
		return
	}

	panel := tm1637.New(pinDispCLK, pinDispDIO, 4)
	panel.Configure()
	disp := display.New(&panel)

	b := bus.NewBus(16)
	svcConn := b.NewConnection("indicator")
	serialConn := b.NewConnection("serial")

	eng := anim.New(sink, timex.MonoMs,
		rand.New(rand.NewSource(time.Now().UnixNano())))

	go readLines(ctx, u, serialConn)

	disp.ShowStartup()
	time.Sleep(500 * time.Millisecond)
	disp.ShowReady()

	indicator.Run(ctx, svcConn, eng, disp)
}
