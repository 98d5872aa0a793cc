package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC52_WriteText(t *testing.T) {
	var buf bytes.Buffer
	c := NewOSC52Writer(&buf, "xterm-256color", false)

	require.NoError(t, c.WriteText("lofi, 70 BPM"))

	encoded := base64.StdEncoding.EncodeToString([]byte("lofi, 70 BPM"))
	assert.Contains(t, buf.String(), "\x1b]52;c;"+encoded)
}

func TestOSC52_Multiplexers(t *testing.T) {
	var tmux, screen bytes.Buffer

	require.NoError(t, NewOSC52Writer(&tmux, "xterm", true).WriteText("x"))
	require.NoError(t, NewOSC52Writer(&screen, "screen-256color", false).WriteText("x"))

	assert.Contains(t, tmux.String(), "\x1bPtmux;")
	assert.Contains(t, screen.String(), "\x1bP")
}

func TestOSC52_EmptyText(t *testing.T) {
	var buf bytes.Buffer
	err := NewOSC52Writer(&buf, "xterm", false).WriteText("")
	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestOSC52_WriteError(t *testing.T) {
	err := NewOSC52Writer(failingWriter{}, "xterm", false).WriteText("x")
	assert.EqualError(t, err, "closed")
}
