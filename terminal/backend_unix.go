//go:build unix

package terminal

import (
	"bufio"
	"errors"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixBackend struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State
	writer  *bufio.Writer
	opts    Options

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewUnix returns a backend bound to the process stdin/stdout
func NewUnix(opts Options) Backend {
	return &unixBackend{
		in:     os.Stdin,
		out:    os.Stdout,
		inFd:   int(os.Stdin.Fd()),
		outFd:  int(os.Stdout.Fd()),
		writer: bufio.NewWriterSize(os.Stdout, 64*1024),
		opts:   opts,
	}
}

func (b *unixBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	if !term.IsTerminal(b.inFd) {
		return Unavailable("init", errors.New("stdin is not a terminal"))
	}
	if !term.IsTerminal(b.outFd) {
		return Unavailable("init", errors.New("stdout is not a terminal"))
	}

	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return Unavailable("raw mode", err)
	}
	b.oldTerm = old

	if b.opts.AltScreen {
		b.writer.Write(csiAltScreenEnter)
	}
	if b.opts.HideCursor {
		b.writer.Write(csiCursorHide)
	}
	b.writer.Write(csiAutoWrapOff)
	if err := b.writer.Flush(); err != nil {
		term.Restore(b.inFd, b.oldTerm)
		b.oldTerm = nil
		return Unavailable("init", err)
	}

	b.initialized = true
	return nil
}

func (b *unixBackend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || b.finalized {
		return
	}

	// Best-effort: the terminal may already be gone
	if b.opts.HideCursor {
		b.writer.Write(csiCursorShow)
	}
	if b.opts.AltScreen {
		b.writer.Write(csiAltScreenExit)
	}
	// Re-enable wrap after leaving the alternate screen so the main buffer gets it
	b.writer.Write(csiAutoWrapOn)
	b.writer.Write(csiSGR0)
	b.writer.Flush()

	if b.oldTerm != nil {
		term.Restore(b.inFd, b.oldTerm)
	}
	b.finalized = true
}

func (b *unixBackend) Size() (int, int, error) {
	w, h, err := term.GetSize(b.outFd)
	if err == nil {
		return w, h, nil
	}

	// stdout may be redirected while stdin is still the controlling tty
	ws, werr := unix.IoctlGetWinsize(b.inFd, unix.TIOCGWINSZ)
	if werr != nil {
		return 0, 0, Unavailable("size", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

func (b *unixBackend) Colors() int {
	return DetectColors(b.out)
}

func (b *unixBackend) Write(p []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finalized {
		return ioError("write", os.ErrClosed)
	}
	if _, err := b.writer.Write(p); err != nil {
		return ioError("write", err)
	}
	return nil
}

func (b *unixBackend) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finalized {
		return ioError("flush", os.ErrClosed)
	}
	if err := b.writer.Flush(); err != nil {
		return ioError("flush", err)
	}
	return nil
}
