package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitModel(t *testing.T) {
	t.Run("quits when the operation completes", func(t *testing.T) {
		m := newWaitModel("waiting", func() error { return nil })

		updated, cmd := m.Update(doneMsg{err: nil})
		require.NotNil(t, cmd)
		assert.NoError(t, updated.(waitModel).err)
	})

	t.Run("carries the operation error", func(t *testing.T) {
		cause := errors.New("user rejected the request")
		m := newWaitModel("waiting", func() error { return cause })

		updated, _ := m.Update(doneMsg{err: cause})
		assert.ErrorIs(t, updated.(waitModel).err, cause)
	})

	t.Run("ignores key presses", func(t *testing.T) {
		m := newWaitModel("waiting", func() error { return nil })

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		assert.Nil(t, cmd, "the provider round trip cannot be cancelled")
	})

	t.Run("view shows the message", func(t *testing.T) {
		m := newWaitModel("approve in your wallet", func() error { return nil })
		assert.Contains(t, m.View(), "approve in your wallet")
	})
}
