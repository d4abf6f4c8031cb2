package layout

import (
	"bytes"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/splitterm/terminal"
)

var (
	// ErrSinkBusy is returned when a write is attempted while another write holds the sink
	ErrSinkBusy = errors.New("sink busy: write already in progress")

	// ErrSinkClosed is returned when writing after the Layout has been closed
	ErrSinkClosed = errors.New("sink closed")
)

// Sink is the shared handle to the one terminal backend.
// Every write stages its complete byte sequence under exclusive access and
// commits it with a single Write plus Flush, so sequences from different
// holders never interleave. Acquisition never blocks: a nested or concurrent
// attempt fails with ErrSinkBusy.
type Sink struct {
	mu      sync.Mutex
	backend terminal.Backend
	staging bytes.Buffer
	closed  atomic.Bool
}

func newSink(backend terminal.Backend) *Sink {
	return &Sink{backend: backend}
}

// With grants fn exclusive access to a staging buffer, then writes and flushes its contents.
// If fn returns an error nothing reaches the backend.
func (s *Sink) With(fn func(buf *bytes.Buffer) error) error {
	if s.closed.Load() {
		return ErrSinkClosed
	}
	if !s.mu.TryLock() {
		return ErrSinkBusy
	}
	defer s.mu.Unlock()

	// Close may have won the race between the check and the lock
	if s.closed.Load() {
		return ErrSinkClosed
	}

	return s.commit(func(buf *bytes.Buffer) error {
		if err := fn(buf); err != nil {
			return err
		}
		// fn itself may have closed the layout
		if s.closed.Load() {
			return ErrSinkClosed
		}
		return nil
	})
}

// commit runs fn and emits the staged bytes; caller holds mu
func (s *Sink) commit(fn func(buf *bytes.Buffer) error) error {
	s.staging.Reset()
	if err := fn(&s.staging); err != nil {
		s.staging.Reset()
		return err
	}

	if s.staging.Len() > 0 {
		if err := s.backend.Write(s.staging.Bytes()); err != nil {
			return err
		}
	}
	return s.backend.Flush()
}

// Closed reports whether the sink has been torn down
func (s *Sink) Closed() bool {
	return s.closed.Load()
}

// close runs final as the last write, releases the backend, and rejects further writes.
// When called from inside a write the final sequence is skipped and ErrSinkBusy
// returned, but the backend is still released.
func (s *Sink) close(final func(buf *bytes.Buffer) error) error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	var err error
	if s.mu.TryLock() {
		err = s.commit(final)
		s.mu.Unlock()
	} else {
		err = ErrSinkBusy
	}

	s.backend.Fini()
	return err
}
