package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/splitterm/config"
	"github.com/lixenwraith/splitterm/terminal"
)

const teardown = "\x1b[39m\x1b[49m\x1b[2J\x1b[H"

// chunkReader returns one chunk per Read, like a raw tty delivering key presses
type chunkReader struct {
	chunks []string
	err    error
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks = r.chunks[1:]
	return n, nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Status.Separator = " | "
	return &cfg
}

func runHeadless(t *testing.T, width, height int, input io.Reader) (*terminal.Headless, error) {
	t.Helper()
	h := terminal.NewHeadless(width, height)
	err := run(testConfig(), log.New(io.Discard), func() terminal.Backend { return h }, input)
	return h, err
}

func statusWrites(h *terminal.Headless) []string {
	var bars []string
	for _, w := range h.Writes() {
		if strings.Contains(w, "presses ") {
			bars = append(bars, w)
		}
	}
	return bars
}

func TestRunQuitsOnQ(t *testing.T) {
	h, err := runHeadless(t, 80, 6, &chunkReader{chunks: []string{"a", "\x1b[A", "b", "q", "z"}})
	require.NoError(t, err)

	out := h.Output()
	assert.Contains(t, out, "splitterm")
	assert.Contains(t, out, "terminal 80x6, content 80x5, status row 5")
	assert.Contains(t, out, "Esc seq (3 bytes)")

	// Initial bar plus one redraw per key before q
	bars := statusWrites(h)
	require.Len(t, bars, 4)
	last := bars[len(bars)-1]
	assert.Contains(t, last, "b")
	assert.Contains(t, last, "3")

	assert.True(t, strings.HasSuffix(out, teardown))
	assert.True(t, h.Finalized())
}

func TestRunQuitsOnCtrlC(t *testing.T) {
	h, err := runHeadless(t, 40, 4, &chunkReader{chunks: []string{"\x03", "x"}})
	require.NoError(t, err)
	assert.Len(t, statusWrites(h), 1)
	assert.True(t, h.Finalized())
}

func TestRunEndsOnEOF(t *testing.T) {
	h, err := runHeadless(t, 40, 4, &chunkReader{chunks: []string{"k"}})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(h.Output(), teardown))
}

func TestRunReportsReadError(t *testing.T) {
	errRead := errors.New("read failed")
	h, err := runHeadless(t, 40, 4, &chunkReader{err: errRead})

	assert.ErrorIs(t, err, errRead)
	assert.True(t, strings.HasSuffix(h.Output(), teardown), "terminal restored on error")
	assert.True(t, h.Finalized())
}

func TestRunRejectsSmallTerminal(t *testing.T) {
	h, err := runHeadless(t, 40, 1, &chunkReader{})

	assert.ErrorIs(t, err, terminal.ErrTerminalUnavailable)
	assert.True(t, h.Finalized())
}

func TestRunFailsFastOnWriteError(t *testing.T) {
	h := terminal.NewHeadless(40, 4)
	input := &failAfterFirst{r: &chunkReader{chunks: []string{"a", "b", "q"}}, h: h}

	err := run(testConfig(), log.New(io.Discard), func() terminal.Backend { return h }, input)
	assert.ErrorIs(t, err, terminal.ErrIO)
	assert.True(t, h.Finalized())
}

// failAfterFirst breaks the backend once the first key has been read
type failAfterFirst struct {
	r io.Reader
	h *terminal.Headless
}

func (f *failAfterFirst) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	f.h.FailWrite(errors.New("EIO"))
	return n, err
}

func TestDescribeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a", "a"},
		{"\x1b", "Esc"},
		{"\r", "Enter"},
		{"\x7f", "Backspace"},
		{"\x01", "Ctrl-A"},
		{"\x1b[B", "Esc seq (3 bytes)"},
		{"é", "é"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeKey([]byte(tt.in)), "%q", tt.in)
	}
}
