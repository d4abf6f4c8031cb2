package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/splitterm/config"
	"github.com/lixenwraith/splitterm/layout"
	"github.com/lixenwraith/splitterm/statusbar"
	"github.com/lixenwraith/splitterm/terminal"
)

const (
	keyCtrlC = 0x03
	keyQuit  = 'q'
)

var (
	colorTitle = tcell.NewRGBColor(200, 200, 220)
	colorBody  = tcell.NewRGBColor(140, 140, 160)
	colorLabel = tcell.NewRGBColor(120, 120, 140)
	colorValue = tcell.NewRGBColor(180, 220, 180)
	colorBar   = tcell.NewRGBColor(30, 30, 45)
)

// demo owns the two windows and the state shown in the status bar
type demo struct {
	layout  *layout.Layout
	content *layout.Window
	status  *layout.Window
	barOpts statusbar.Options
	logger  *log.Logger

	lastKey string
	presses int
}

// run builds the layout over the backend from factory and processes input until quit
func run(cfg *config.Config, logger *log.Logger, factory func() terminal.Backend, input io.Reader) error {
	svc := layout.NewService(factory, layout.WithLogger(logger))
	if err := svc.Init(); err != nil {
		return err
	}
	defer svc.Stop()

	if err := svc.Start(); err != nil {
		return err
	}

	l := svc.Layout()
	opts := statusbar.DefaultOptions()
	opts.Separator = cfg.Status.Separator
	opts.Bg = colorBar
	opts.SepColor = colorLabel

	d := &demo{
		layout:  l,
		content: l.ContentWindow(),
		status:  l.StatusWindow(),
		barOpts: opts,
		logger:  logger,
		lastKey: "-",
	}

	if err := d.drawContent(); err != nil {
		return err
	}
	if err := d.drawStatus(); err != nil {
		return err
	}
	return d.loop(input)
}

func (d *demo) drawContent() error {
	size := d.content.Size()
	lines := []string{
		"splitterm",
		"",
		fmt.Sprintf("terminal %dx%d, content %dx%d, status row %d",
			d.layout.Width(), d.layout.Height(), size.Width, size.Height, d.status.Position().Row),
		"",
		"press any key to see it in the status bar, q or Ctrl-C to quit",
	}

	return d.content.Draw(func(p *layout.Pen) error {
		p.ResetColors()
		p.Fill()
		for i, line := range lines {
			if i >= size.Height {
				break
			}
			fg := colorBody
			if i == 0 {
				fg = colorTitle
			}
			p.SetForeground(fg)
			p.MoveTo(i, 2)
			p.Print(line)
		}
		p.ResetColors()
		return nil
	})
}

func (d *demo) drawStatus() error {
	sections := []statusbar.Section{
		{Label: "key ", Value: d.lastKey, LabelColor: colorLabel, ValueColor: colorValue, Priority: 3},
		{Label: "presses ", Value: strconv.Itoa(d.presses), LabelColor: colorLabel, ValueColor: colorValue, Priority: 2},
		{Label: "colors ", Value: strconv.Itoa(d.layout.Colors()), LabelColor: colorLabel, ValueColor: colorValue, Priority: 1},
	}
	return statusbar.Render(d.status, sections, d.barOpts)
}

// loop reads raw key bytes until quit or end of input
func (d *demo) loop(input io.Reader) error {
	buf := make([]byte, 64)
	for {
		n, err := input.Read(buf)
		if n > 0 {
			if quit := d.handle(buf[:n]); quit {
				d.logger.Info("quit requested")
				return nil
			}
			if err := d.drawStatus(); err != nil {
				return err
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
}

// handle records one read's worth of key bytes and reports whether to quit
func (d *demo) handle(keys []byte) bool {
	if keys[0] == keyQuit || keys[0] == keyCtrlC {
		return true
	}
	d.presses++
	d.lastKey = describeKey(keys)
	d.logger.Debug("key", "bytes", fmt.Sprintf("%q", keys))
	return false
}

func describeKey(keys []byte) string {
	if len(keys) == 1 {
		b := keys[0]
		switch {
		case b == 0x1b:
			return "Esc"
		case b == 0x0d:
			return "Enter"
		case b == 0x7f:
			return "Backspace"
		case b < 0x20:
			return "Ctrl-" + string(rune('A'+b-1))
		case b < 0x7f:
			return string(rune(b))
		}
	}
	if keys[0] == 0x1b {
		return fmt.Sprintf("Esc seq (%d bytes)", len(keys))
	}
	return string(keys)
}
