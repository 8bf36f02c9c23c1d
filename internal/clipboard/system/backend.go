package system

import (
	"github.com/atotto/clipboard"

	cb "github.com/pdxmph/clientbook/internal/clipboard"
)

// Backend writes to the operating system clipboard
type Backend struct{}

// NewBackend creates a new system clipboard backend
func NewBackend() cb.Backend {
	return &Backend{}
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return "system"
}

// IsEnabled reports whether a clipboard utility was found on this system
func (b *Backend) IsEnabled() bool {
	return !clipboard.Unsupported
}

// Copy places text on the system clipboard
func (b *Backend) Copy(text string) error {
	return clipboard.WriteAll(text)
}

func init() {
	cb.Register("system", func() cb.Backend { return NewBackend() })
}
