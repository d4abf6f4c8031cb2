package layout

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/lixenwraith/splitterm/core"
	"github.com/lixenwraith/splitterm/service"
	"github.com/lixenwraith/splitterm/terminal"
)

var _ service.Service = (*Service)(nil)

// Service manages the Layout lifecycle and keeps the terminal restorable on
// crash and on termination signals
type Service struct {
	factory func() terminal.Backend
	opts    []Option

	// onSignal defaults to core.Terminate
	onSignal func(os.Signal)

	mu        sync.Mutex
	layout    *Layout
	cancel    context.CancelFunc
	watchDone <-chan struct{}
}

// NewService creates a layout service that builds its backend with factory
func NewService(factory func() terminal.Backend, opts ...Option) *Service {
	return &Service{
		factory:  factory,
		opts:     opts,
		onSignal: core.Terminate,
	}
}

// Name implements Service
func (s *Service) Name() string {
	return "layout"
}

// Dependencies implements Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: terminal.Backend (optional, overrides the factory)
func (s *Service) Init(args ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.layout != nil {
		return nil
	}

	var backend terminal.Backend
	if len(args) > 0 {
		if b, ok := args[0].(terminal.Backend); ok {
			backend = b
		}
	}
	if backend == nil {
		backend = s.factory()
	}

	l, err := New(backend, s.opts...)
	if err != nil {
		return fmt.Errorf("layout init: %w", err)
	}
	s.layout = l
	core.SetRestore(l.Close)
	return nil
}

// Start implements Service - watches termination signals
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.layout == nil {
		return fmt.Errorf("layout start: %w", ErrSinkClosed)
	}
	if s.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.watchDone = core.WatchSignals(ctx, s.onSignal)
	return nil
}

// Stop implements Service - stops the signal watcher and restores the terminal
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		<-s.watchDone
		s.cancel = nil
		s.watchDone = nil
	}

	if s.layout == nil {
		return nil
	}
	core.SetRestore(nil)
	return s.layout.Close()
}

// Layout returns the managed layout, nil before Init
func (s *Service) Layout() *Layout {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.layout
}
