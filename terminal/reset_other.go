//go:build !linux

package terminal

// resetTerminalMode is a no-op where TCGETS is unavailable; Backend.Fini restores the saved state instead
func resetTerminalMode() {}
