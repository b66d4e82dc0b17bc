package controller

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "linegrep.dev/pkg/linegrep/internal/model"
)

func newTestUI(tty bool) (*SimpleUI, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return NewSimpleUI(cmd, tty), out, errOut
}

func TestSimpleUI_DisplayLineFlushesImmediately(t *testing.T) {
	ui, out, _ := newTestUI(false)

	require.NoError(t, ui.DisplayLine(context.Background(), "(stdin):abc\n"))
	assert.Equal(t, "(stdin):abc\n", out.String())
}

func TestSimpleUI_DisplayBlock(t *testing.T) {
	t.Run("buffered when not a terminal", func(t *testing.T) {
		ui, out, _ := newTestUI(false)

		require.NoError(t, ui.DisplayBlock(context.Background(), "a:1\n"))
		assert.Empty(t, out.String())

		require.NoError(t, ui.Flush())
		assert.Equal(t, "a:1\n", out.String())
	})

	t.Run("flushed on a terminal", func(t *testing.T) {
		ui, out, _ := newTestUI(true)

		require.NoError(t, ui.DisplayBlock(context.Background(), "a:1\n"))
		assert.Equal(t, "a:1\n", out.String())
	})

	t.Run("cancelled context", func(t *testing.T) {
		ui, _, _ := newTestUI(true)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.ErrorIs(t, ui.DisplayBlock(ctx, "a:1\n"), context.Canceled)
	})
}

func TestSimpleUI_DisplayError(t *testing.T) {
	ui, out, errOut := newTestUI(false)

	require.NoError(t, ui.DisplayBlock(context.Background(), "a:1\n"))
	ui.DisplayError(context.Background(), m.Path("b.txt"), errors.New("permission denied"))

	assert.Equal(t, "a:1\n", out.String(), "pending output is flushed before the diagnostic")
	assert.Equal(t, "ERR: path: b.txt, err: permission denied\n", errOut.String())
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTTY(f))
}
