package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeBackend struct {
	name    string
	enabled bool
	err     error
	copied  []string
}

func (f *fakeBackend) Name() string    { return f.name }
func (f *fakeBackend) IsEnabled() bool { return f.enabled }
func (f *fakeBackend) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

func registryWith(backends ...*fakeBackend) *Registry {
	r := NewRegistry()
	for _, b := range backends {
		b := b
		_ = r.Register(b.name, func() Backend { return b })
	}
	_ = r.Register("noop", NewNoopBackend)
	return r
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("b", NewNoopBackend))
	require.NoError(t, r.Register("a", NewNoopBackend))

	err := r.Register("a", NewNoopBackend)
	assert.EqualError(t, err, "backend a already registered")

	assert.Equal(t, []string{"a", "b"}, r.List())

	_, err = r.Create("missing")
	assert.Error(t, err)
}

func TestRegistry_Enabled(t *testing.T) {
	r := registryWith(
		&fakeBackend{name: "system"},
		&fakeBackend{name: "osc52", enabled: true},
	)
	assert.Equal(t, []string{"osc52"}, r.Enabled())

	assert.Empty(t, NewRegistry().Enabled())
}

func TestManager_WarnsWhenNamedBackendDisabled(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	r := registryWith(
		&fakeBackend{name: "system"},
		&fakeBackend{name: "osc52", enabled: true},
	)

	m, err := newManager(r, "system", zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, "system", m.Name())

	entries := logs.FilterMessage("configured clipboard backend is not enabled").All()
	require.Len(t, entries, 1)
	assert.Equal(t, []interface{}{"osc52"}, entries[0].ContextMap()["enabled"])
}

func TestGlobalRegistryHasNoop(t *testing.T) {
	assert.Contains(t, ListBackends(), "noop")
	b, err := CreateBackend("noop")
	require.NoError(t, err)
	assert.False(t, b.IsEnabled())
	assert.ErrorIs(t, b.Copy("x"), ErrNoBackend)
}

func TestManager_PicksFirstEnabled(t *testing.T) {
	system := &fakeBackend{name: "system", enabled: false}
	term := &fakeBackend{name: "osc52", enabled: true}

	m, err := newManager(registryWith(system, term), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "osc52", m.Name())

	require.NoError(t, m.Copy("hello"))
	assert.Equal(t, []string{"hello"}, term.copied)
	assert.Empty(t, system.copied)
}

func TestManager_FallsBackToNoop(t *testing.T) {
	m, err := newManager(registryWith(&fakeBackend{name: "system"}), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "noop", m.Name())
	assert.ErrorIs(t, m.Copy("hello"), ErrNoBackend)
}

func TestManager_NamedBackend(t *testing.T) {
	term := &fakeBackend{name: "osc52"}

	m, err := newManager(registryWith(term), "osc52", nil)
	require.NoError(t, err)
	assert.Same(t, Backend(term), m.Backend())

	_, err = newManager(registryWith(term), "pbcopy", nil)
	assert.Error(t, err)
}

func TestManager_WrapsCopyError(t *testing.T) {
	boom := errors.New("boom")
	m, err := newManager(registryWith(&fakeBackend{name: "system", enabled: true, err: boom}), "", nil)
	require.NoError(t, err)

	err = m.Copy("x")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "copying to clipboard")
}
