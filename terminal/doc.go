// Package terminal provides the output sink for a split-screen terminal application.
//
// Features:
//   - Raw mode entry and guaranteed restoration (x/term)
//   - Direct ANSI sequence emission, no terminfo/termcap lookup
//   - Color capability detection from the environment
//   - Headless recording backend for tests and non-interactive runs
//   - Emergency reset for crash paths
//
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
