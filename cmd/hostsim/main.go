//go:build !rp2040

// Host simulator: feeds stdin lines through the same bus and service loop
// the firmware runs, with a console color sink and a console display panel.
//
//	$ echo "LED:thinking 5" | go run ./cmd/hostsim
package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"indicatorcode-go/anim"
	"indicatorcode-go/bus"
	"indicatorcode-go/display"
	"indicatorcode-go/services/indicator"
	"indicatorcode-go/types"
	"indicatorcode-go/x/timex"
)

// consoleSink prints each color change as a truecolor block plus the triple.
type consoleSink struct{}

func (consoleSink) Set(r, g, b uint8) {
	fmt.Printf("\x1b[48;2;%d;%d;%dm  \x1b[0m led %3d,%3d,%3d\n", r, g, b, r, g, b)
}

// consolePanel mimics a 4-digit panel on stdout.
type consolePanel struct {
	chars [display.Width]byte
}

func (p *consolePanel) ClearDisplay() {
	for i := range p.chars {
		p.chars[i] = ' '
	}
	p.render()
}

func (p *consolePanel) Brightness(level uint8) {
	fmt.Printf("disp brightness=%d\n", level)
}

func (p *consolePanel) DisplayChr(chr byte, pos uint8) {
	if int(pos) >= len(p.chars) {
		return
	}
	p.chars[pos] = chr
	if int(pos) == len(p.chars)-1 {
		p.render()
	}
}

func (p *consolePanel) render() {
	fmt.Printf("disp [%s]\n", p.chars[:])
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := bus.NewBus(16)
	svcConn := b.NewConnection("indicator")
	ui := b.NewConnection("hostsim")

	eng := anim.New(consoleSink{}, timex.MonoMs, rand.New(rand.NewSource(time.Now().UnixNano())))

	panel := &consolePanel{}
	panel.ClearDisplay()
	disp := display.New(panel)

	go indicator.Run(ctx, svcConn, eng, disp)

	// Mirror service state and diagnostics to the console.
	mon := ui.Subscribe(bus.T("indicator", "#"))
	go func() {
		for m := range mon.Channel() {
			fmt.Printf("[%s] %+v\n", m.Topic.String(), m.Payload)
		}
	}()

	disp.ShowReady()
	fmt.Println("hostsim ready; type LED:/DISP: commands")

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		ui.Publish(ui.NewMessage(bus.T("serial", "rx"),
			types.SerialLine{Text: sc.Text(), TSMs: timex.NowMs()}, false))
	}
	// Let in-flight commands drain before exiting on EOF.
	time.Sleep(100 * time.Millisecond)
}
