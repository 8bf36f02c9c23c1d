package clipboard

import "errors"

// ErrNoBackend is returned when no clipboard is available
var ErrNoBackend = errors.New("no clipboard backend available")

// NoopBackend is used when no clipboard can be reached
type NoopBackend struct{}

// NewNoopBackend creates a new no-op backend
func NewNoopBackend() Backend {
	return &NoopBackend{}
}

// Name returns the backend identifier
func (n *NoopBackend) Name() string {
	return "noop"
}

// IsEnabled always returns false for the noop backend
func (n *NoopBackend) IsEnabled() bool {
	return false
}

// Copy always fails
func (n *NoopBackend) Copy(text string) error {
	return ErrNoBackend
}

func init() {
	Register("noop", func() Backend { return NewNoopBackend() })
}
