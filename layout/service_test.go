package layout

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/splitterm/terminal"
)

func TestServiceLifecycle(t *testing.T) {
	h := terminal.NewHeadless(80, 24)
	svc := NewService(func() terminal.Backend { return h })
	svc.onSignal = func(os.Signal) {}

	assert.Equal(t, "layout", svc.Name())
	assert.Empty(t, svc.Dependencies())
	assert.Nil(t, svc.Layout())

	require.NoError(t, svc.Init())
	l := svc.Layout()
	require.NotNil(t, l)

	// Init is idempotent
	require.NoError(t, svc.Init())
	assert.Same(t, l, svc.Layout())

	require.NoError(t, svc.Start())
	require.NoError(t, svc.Start())

	require.NoError(t, l.StatusWindow().WriteRow(0, "running", 0, 0))

	require.NoError(t, svc.Stop())
	assert.True(t, h.Finalized())
	assert.True(t, strings.HasSuffix(h.Output(), teardown))

	require.NoError(t, svc.Stop())
}

func TestServiceInitArgOverridesFactory(t *testing.T) {
	factoryUsed := false
	svc := NewService(func() terminal.Backend {
		factoryUsed = true
		return terminal.NewHeadless(10, 10)
	})

	h := terminal.NewHeadless(40, 12)
	require.NoError(t, svc.Init(h))
	defer svc.Stop()

	assert.False(t, factoryUsed)
	assert.Equal(t, 40, svc.Layout().Width())
	assert.Equal(t, 12, svc.Layout().Height())
}

func TestServiceInitFailure(t *testing.T) {
	h := terminal.NewHeadless(80, 24)
	h.FailInit(errors.New("not a tty"))
	svc := NewService(func() terminal.Backend { return h })

	err := svc.Init()
	assert.ErrorIs(t, err, terminal.ErrTerminalUnavailable)
	assert.Nil(t, svc.Layout())
	assert.Error(t, svc.Start())
	assert.NoError(t, svc.Stop())
}
