package terminal

import (
	"bytes"
	"errors"
	"sync"
)

// Headless is a Backend that records output instead of driving a terminal.
// It serves non-interactive runs and tests; failures can be injected per operation.
type Headless struct {
	mu sync.Mutex

	width  int
	height int
	colors int

	pending bytes.Buffer
	output  bytes.Buffer
	writes  [][]byte
	flushes int

	initialized bool
	finalized   bool

	initErr  error
	sizeErr  error
	writeErr error
	flushErr error
}

// NewHeadless creates a headless backend reporting the given dimensions
func NewHeadless(width, height int) *Headless {
	return &Headless{
		width:  width,
		height: height,
		colors: Colors256,
	}
}

// FailInit makes the next Init calls return err
func (h *Headless) FailInit(err error) {
	h.mu.Lock()
	h.initErr = err
	h.mu.Unlock()
}

// FailSize makes Size return err
func (h *Headless) FailSize(err error) {
	h.mu.Lock()
	h.sizeErr = err
	h.mu.Unlock()
}

// FailWrite makes Write return err
func (h *Headless) FailWrite(err error) {
	h.mu.Lock()
	h.writeErr = err
	h.mu.Unlock()
}

// FailFlush makes Flush return err
func (h *Headless) FailFlush(err error) {
	h.mu.Lock()
	h.flushErr = err
	h.mu.Unlock()
}

// SetColors changes the reported color count
func (h *Headless) SetColors(n int) {
	h.mu.Lock()
	h.colors = n
	h.mu.Unlock()
}

func (h *Headless) Init() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.initErr != nil {
		return Unavailable("init", h.initErr)
	}
	h.initialized = true
	return nil
}

func (h *Headless) Fini() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.initialized {
		h.finalized = true
	}
}

func (h *Headless) Size() (int, int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sizeErr != nil {
		return 0, 0, Unavailable("size", h.sizeErr)
	}
	return h.width, h.height, nil
}

func (h *Headless) Colors() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.colors
}

func (h *Headless) Write(p []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.writeErr != nil {
		return ioError("write", h.writeErr)
	}
	if h.finalized {
		return ioError("write", errors.New("backend finalized"))
	}
	h.pending.Write(p)
	h.writes = append(h.writes, bytes.Clone(p))
	return nil
}

func (h *Headless) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.flushErr != nil {
		return ioError("flush", h.flushErr)
	}
	h.output.Write(h.pending.Bytes())
	h.pending.Reset()
	h.flushes++
	return nil
}

// Output returns everything flushed so far
func (h *Headless) Output() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.output.String()
}

// Pending returns bytes written but not yet flushed
func (h *Headless) Pending() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pending.String()
}

// Writes returns each Write call's payload in order
func (h *Headless) Writes() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.writes))
	for i, w := range h.writes {
		out[i] = string(w)
	}
	return out
}

// Flushes returns the number of successful Flush calls
func (h *Headless) Flushes() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.flushes
}

// Initialized reports whether Init succeeded
func (h *Headless) Initialized() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.initialized
}

// Finalized reports whether Fini ran after a successful Init
func (h *Headless) Finalized() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.finalized
}
