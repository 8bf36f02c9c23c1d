package clipboard

import (
	"fmt"

	"go.uber.org/zap"
)

// Preference is the order in which backends are tried when none is named
var Preference = []string{"system", "osc52"}

// Manager handles backend selection and copying
type Manager struct {
	backend Backend
	logger  *zap.Logger
}

// NewManager creates a manager for the named backend. An empty name picks
// the first enabled backend in Preference, falling back to noop.
func NewManager(backendName string, logger *zap.Logger) (*Manager, error) {
	return newManager(defaultRegistry, backendName, logger)
}

func newManager(r *Registry, backendName string, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if backendName != "" {
		backend, err := r.Create(backendName)
		if err != nil {
			return nil, fmt.Errorf("creating backend %s: %w", backendName, err)
		}
		if !backend.IsEnabled() {
			logger.Warn("configured clipboard backend is not enabled",
				zap.String("backend", backendName),
				zap.Strings("enabled", r.Enabled()))
		}
		return &Manager{backend: backend, logger: logger}, nil
	}

	for _, name := range Preference {
		b, err := r.Create(name)
		if err != nil {
			continue
		}
		if b.IsEnabled() {
			logger.Debug("selected clipboard backend", zap.String("backend", name))
			return &Manager{backend: b, logger: logger}, nil
		}
	}

	backend, err := r.Create("noop")
	if err != nil {
		backend = NewNoopBackend()
	}
	logger.Warn("no clipboard backend enabled")
	return &Manager{backend: backend, logger: logger}, nil
}

// Copy writes text through the selected backend
func (m *Manager) Copy(text string) error {
	if err := m.backend.Copy(text); err != nil {
		m.logger.Error("copying to clipboard",
			zap.String("backend", m.backend.Name()),
			zap.Error(err))
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	m.logger.Debug("copied to clipboard",
		zap.String("backend", m.backend.Name()),
		zap.Int("bytes", len(text)))
	return nil
}

// Backend returns the current backend
func (m *Manager) Backend() Backend {
	return m.backend
}

// Name returns the name of the current backend
func (m *Manager) Name() string {
	return m.backend.Name()
}
