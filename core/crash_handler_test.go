package core

import (
	"bytes"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	timeout = 2 * time.Second
	tick    = 10 * time.Millisecond
)

func stubExit(t *testing.T) (*atomic.Int32, *bytes.Buffer) {
	t.Helper()
	var code atomic.Int32
	code.Store(-1)
	var out bytes.Buffer

	oldExit, oldOut := exit, crashOut
	exit = func(c int) { code.Store(int32(c)) }
	crashOut = &out
	t.Cleanup(func() {
		exit, crashOut = oldExit, oldOut
		SetRestore(nil)
	})
	return &code, &out
}

func TestHandleCrashRestoresBeforeReport(t *testing.T) {
	code, out := stubExit(t)

	var restoredBeforeReport bool
	SetRestore(func() error {
		restoredBeforeReport = out.Len() == 0
		return nil
	})

	HandleCrash("kaboom")

	assert.True(t, restoredBeforeReport)
	assert.Equal(t, int32(1), code.Load())
	assert.Contains(t, out.String(), "CRASH DETECTED: kaboom")
	assert.Contains(t, out.String(), "Stack Trace:")
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	code, out := stubExit(t)

	called := false
	SetRestore(func() error {
		called = true
		return nil
	})

	HandleCrash(nil)

	assert.False(t, called)
	assert.Equal(t, int32(-1), code.Load())
	assert.Zero(t, out.Len())
}

func TestGoRecoversPanics(t *testing.T) {
	code, _ := stubExit(t)

	var restored atomic.Bool
	SetRestore(func() error {
		restored.Store(true)
		return nil
	})

	Go(func() {
		panic(errors.New("worker failed"))
	})

	assert.Eventually(t, func() bool { return code.Load() == 1 }, timeout, tick)
	assert.True(t, restored.Load())
}
