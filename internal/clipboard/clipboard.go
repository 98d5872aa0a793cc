package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

var ErrEmptyText = errors.New("nothing to copy")

// Clipboard receives the exact text of a generated prompt.
type Clipboard interface {
	WriteText(text string) error
}

// OSC52 copies through the terminal with an OSC 52 escape sequence, so it
// also works over SSH. Terminals that ignore OSC 52 drop it silently.
type OSC52 struct {
	out  io.Writer
	term string
	tmux bool
}

// NewOSC52 writes to standard error, which the TUI renderer does not own.
func NewOSC52() *OSC52 {
	return NewOSC52Writer(os.Stderr, os.Getenv("TERM"), os.Getenv("TMUX") != "")
}

func NewOSC52Writer(out io.Writer, term string, tmux bool) *OSC52 {
	return &OSC52{out: out, term: term, tmux: tmux}
}

func (c *OSC52) WriteText(text string) error {
	if text == "" {
		return ErrEmptyText
	}

	seq := osc52.New(text)
	switch {
	case c.tmux:
		seq = seq.Tmux()
	case strings.HasPrefix(c.term, "screen"):
		seq = seq.Screen()
	}

	_, err := seq.WriteTo(c.out)
	return err
}
