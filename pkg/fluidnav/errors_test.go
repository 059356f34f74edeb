package fluidnav

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("no renderer")
	err := fmt.Errorf("starting: %w", NewInfrastructureError("init_sdl", cause))

	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, NewInfrastructureError("init_sdl", cause), "fluidnav: init_sdl: no renderer")
	assert.EqualError(t, NewInfrastructureError("render", nil), "fluidnav: render")

	assert.False(t, IsInfrastructureError(ErrNotInitialized))
}

func TestIsBusy(t *testing.T) {
	assert.True(t, IsBusy(fmt.Errorf("push: %w", ErrNavigationBusy)))
	assert.False(t, IsBusy(ErrEmptyStack))
}

func TestContainerTryMethodsReportBusy(t *testing.T) {
	h := newHarness(t)
	c := h.stack.Container()

	require.NoError(t, c.TryPush(ScreenFunc(nil), TransitionSlide))
	assert.True(t, IsBusy(c.TryPush(ScreenFunc(nil), TransitionSlide)))
	assert.True(t, IsBusy(c.TryPop()))

	h.settle()
	require.NoError(t, c.TryPop())
	h.settle()
	assert.ErrorIs(t, c.TryPop(), ErrEmptyStack)
}
