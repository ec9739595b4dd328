package asset

import (
	"fmt"
	"sort"
)

// Manager resolves texture names to shared texture handles
// Definitions are validated once at construction; the manager is read-only afterwards
type Manager struct {
	textures map[string]*Texture
}

// NewManager builds a manager from the default catalogue merged with overrides
func NewManager(overrides map[string]Definition) (*Manager, error) {
	defs := DefaultCatalogue()
	for name, def := range overrides {
		defs[name] = def
	}

	m := &Manager{
		textures: make(map[string]*Texture, len(defs)),
	}

	// Sorted so the first invalid definition reported is deterministic
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		tex, err := newTexture(name, defs[name])
		if err != nil {
			return nil, err
		}
		m.textures[name] = tex
	}
	return m, nil
}

// Get returns the texture for name
func (m *Manager) Get(name string) (*Texture, error) {
	tex, ok := m.textures[name]
	if !ok {
		return nil, fmt.Errorf("texture %q: %w", name, ErrUnknownTexture)
	}
	return tex, nil
}

// Names returns all known texture names in sorted order
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.textures))
	for name := range m.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
