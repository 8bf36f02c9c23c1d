package clipboard

// Backend defines the interface that all clipboard writers must implement
type Backend interface {
	// Name returns the backend identifier (e.g., "system", "osc52")
	Name() string

	// IsEnabled checks if the backend can be used in the current environment
	IsEnabled() bool

	// Copy places text on the clipboard
	Copy(text string) error
}

// BackendFactory is a function that creates a new instance of a Backend
type BackendFactory func() Backend
