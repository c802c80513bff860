package finitestate

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	machine, err := New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, err)
	assert.Equal(t, StateCreated, machine.GetState())
}

func TestTransitions(t *testing.T) {
	handler := slog.NewTextHandler(io.Discard, nil)

	t.Run("default load path", func(t *testing.T) {
		machine, err := New(handler)
		require.NoError(t, err)

		require.NoError(t, machine.Transition(StateValidating))
		require.NoError(t, machine.Transition(StateLoadingDefault))
		require.NoError(t, machine.Transition(StateAssembled))
		assert.Equal(t, StateAssembled, machine.GetState())
	})

	t.Run("custom load path to failure", func(t *testing.T) {
		machine, err := New(handler)
		require.NoError(t, err)

		require.NoError(t, machine.Transition(StateValidating))
		require.NoError(t, machine.Transition(StateLoadingCustom))
		require.NoError(t, machine.Transition(StateFailed))
		assert.Equal(t, StateFailed, machine.GetState())
	})

	t.Run("cannot skip validation", func(t *testing.T) {
		machine, err := New(handler)
		require.NoError(t, err)

		assert.Error(t, machine.Transition(StateLoadingDefault))
		assert.Error(t, machine.Transition(StateAssembled))
	})

	t.Run("terminal states have no exits", func(t *testing.T) {
		machine, err := New(handler)
		require.NoError(t, err)

		require.NoError(t, machine.Transition(StateValidating))
		require.NoError(t, machine.Transition(StateFailed))
		assert.Error(t, machine.Transition(StateValidating))
	})
}
