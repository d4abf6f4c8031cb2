// Package statusbar renders label/value sections into the one-row status window.
// Sections that do not fit are dropped lowest priority first.
package statusbar

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/splitterm/layout"
)

// Section represents one segment of the status bar
type Section struct {
	Label      string
	Value      string
	LabelColor tcell.Color
	ValueColor tcell.Color
	Priority   int // Higher = survives truncation
}

// Align specifies status bar alignment mode
type Align uint8

const (
	AlignRight      Align = iota // Pack sections from right
	AlignLeft                    // Pack sections from left
	AlignDistribute              // Evenly space sections
)

// Options configures status bar rendering
type Options struct {
	Separator string // Between sections, default " │ "
	SepColor  tcell.Color
	Bg        tcell.Color
	Align     Align
	Padding   int // Left/right padding, default 1
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		Separator: " │ ",
		SepColor:  tcell.NewRGBColor(80, 80, 100),
		Bg:        tcell.ColorDefault,
		Padding:   1,
		Align:     AlignRight,
	}
}

// Render draws sections on row 0 of win as a single atomic write
func Render(win *layout.Window, sections []Section, opts Options) error {
	if opts.Separator == "" {
		opts.Separator = " │ "
	}
	if opts.Padding == 0 {
		opts.Padding = 1
	}

	width := win.Size().Width
	sepLen := runewidth.StringWidth(opts.Separator)
	availW := width - opts.Padding*2

	widths := make([]int, len(sections))
	for i, sec := range sections {
		widths[i] = runewidth.StringWidth(sec.Label) + runewidth.StringWidth(sec.Value)
	}
	sections, widths = truncateSections(sections, widths, sepLen, availW)
	totalW := packedWidth(widths, sepLen)

	// Starting column
	var x int
	switch opts.Align {
	case AlignRight:
		x = width - opts.Padding - totalW
		if x < opts.Padding {
			x = opts.Padding
		}
	default:
		x = opts.Padding
	}
	limit := width - opts.Padding

	return win.Draw(func(p *layout.Pen) error {
		p.SetBackground(opts.Bg)
		p.Row(0, "")

		if len(sections) == 0 {
			p.ResetColors()
			return nil
		}

		gap := 0
		if opts.Align == AlignDistribute && len(sections) > 1 {
			gap = (availW - totalW) / (len(sections) - 1)
			if gap < 0 {
				gap = 0
			}
		}

		for i, sec := range sections {
			x = printAt(p, x, limit, sec.Label, sec.LabelColor)
			x = printAt(p, x, limit, sec.Value, sec.ValueColor)
			if i == len(sections)-1 {
				break
			}
			if opts.Align == AlignDistribute {
				x += gap + sepLen
				continue
			}
			x = printAt(p, x, limit, opts.Separator, opts.SepColor)
		}

		p.ResetColors()
		return nil
	})
}

// printAt writes s at column x without crossing limit and returns the next column
func printAt(p *layout.Pen, x, limit int, s string, fg tcell.Color) int {
	if s == "" || x >= limit {
		return x + runewidth.StringWidth(s)
	}
	w := runewidth.StringWidth(s)
	if x+w > limit {
		s = runewidth.Truncate(s, limit-x, "")
	}
	p.MoveTo(0, x)
	p.SetForeground(fg)
	p.Print(s)
	return x + w
}

func packedWidth(widths []int, sepLen int) int {
	total := 0
	for i, w := range widths {
		total += w
		if i < len(widths)-1 {
			total += sepLen
		}
	}
	return total
}

// truncateSections removes lowest priority sections until fit
func truncateSections(sections []Section, widths []int, sepLen, availW int) ([]Section, []int) {
	// Copy to avoid modifying caller's slice
	secs := make([]Section, len(sections))
	copy(secs, sections)
	ws := make([]int, len(widths))
	copy(ws, widths)

	for packedWidth(ws, sepLen) > availW && len(secs) > 1 {
		minIdx := 0
		for i, sec := range secs {
			if sec.Priority < secs[minIdx].Priority {
				minIdx = i
			}
		}
		secs = append(secs[:minIdx], secs[minIdx+1:]...)
		ws = append(ws[:minIdx], ws[minIdx+1:]...)
	}

	return secs, ws
}
