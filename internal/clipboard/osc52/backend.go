package osc52

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"

	cb "github.com/pdxmph/clientbook/internal/clipboard"
)

// Backend asks the terminal emulator to set the clipboard with an OSC 52
// escape sequence, which also works over SSH.
type Backend struct {
	out  io.Writer
	term string
	tmux bool
}

// NewBackend creates an OSC 52 backend writing to stderr
func NewBackend() cb.Backend {
	return NewBackendWithWriter(os.Stderr, os.Getenv("TERM"), os.Getenv("TMUX") != "")
}

// NewBackendWithWriter creates an OSC 52 backend writing to out
func NewBackendWithWriter(out io.Writer, term string, tmux bool) *Backend {
	return &Backend{out: out, term: term, tmux: tmux}
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return "osc52"
}

// IsEnabled reports whether we are attached to a terminal that could honour it
func (b *Backend) IsEnabled() bool {
	return b.term != "" && b.term != "dumb"
}

// Copy emits the escape sequence carrying text
func (b *Backend) Copy(text string) error {
	seq := osc52.New(text)
	switch {
	case b.tmux:
		seq = seq.Tmux()
	case strings.HasPrefix(b.term, "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(b.out); err != nil {
		return fmt.Errorf("writing osc52 sequence: %w", err)
	}
	return nil
}

func init() {
	cb.Register("osc52", func() cb.Backend { return NewBackend() })
}
