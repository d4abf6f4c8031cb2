package terminal

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Color counts reported by DetectColors
const (
	ColorsNone      = 0
	Colors16        = 16
	Colors256       = 256
	ColorsTrueColor = 1 << 24
)

// DetectColors estimates the color capability of the terminal behind out
func DetectColors(out io.Writer) int {
	if trueColorEnv() {
		return ColorsTrueColor
	}

	switch termenv.NewOutput(out).EnvColorProfile() {
	case termenv.TrueColor:
		return ColorsTrueColor
	case termenv.ANSI256:
		return Colors256
	case termenv.ANSI:
		return Colors16
	default:
		return ColorsNone
	}
}

// trueColorEnv recognises terminals that support 24-bit color without advertising it in COLORTERM
func trueColorEnv() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return true
	}

	t := os.Getenv("TERM")
	return strings.Contains(t, "truecolor") ||
		strings.Contains(t, "24bit") ||
		strings.Contains(t, "direct")
}
