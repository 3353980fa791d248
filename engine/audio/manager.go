// Package audio owns the sound bank: it opens the output device through the
// platform mixer and keeps every sound referenced by the sound index loaded.
package audio

import (
	"fmt"
	"path/filepath"

	"github.com/spaghettifunk/age/engine/assets"
	"github.com/spaghettifunk/age/engine/core"
	"github.com/spaghettifunk/age/engine/platform"
)

// DefaultSpec is the output format the engine mixes in.
var DefaultSpec = platform.AudioSpec{
	Frequency: 48000,
	Format:    platform.AudioFormatS16LSB,
	Channels:  2,
	ChunkSize: 4096,
}

type soundKey struct {
	category int
	id       int
}

type resource struct {
	file  SoundFile
	path  string
	sound platform.Sound
}

type Manager struct {
	backend   platform.Audio
	spec      platform.AudioSpec
	resources map[soundKey]*resource
	order     []soundKey
}

// NewManager opens the audio output with spec.
func NewManager(backend platform.Audio, spec platform.AudioSpec) (*Manager, error) {
	if err := backend.Open(spec); err != nil {
		return nil, fmt.Errorf("failed to open audio output (%d Hz, %d channels): %w", spec.Frequency, spec.Channels, err)
	}
	return &Manager{
		backend:   backend,
		spec:      spec,
		resources: make(map[soundKey]*resource),
	}, nil
}

func (m *Manager) Spec() platform.AudioSpec {
	return m.spec
}

// LoadResources loads every file relative to dir. It stops at the first
// failure; sounds loaded before it stay loaded.
func (m *Manager) LoadResources(dir assets.Dir, files []SoundFile) error {
	for _, f := range files {
		key := soundKey{category: f.Category, id: f.ID}
		if _, exists := m.resources[key]; exists {
			return fmt.Errorf("duplicate sound %d/%d (%s)", f.Category, f.ID, f.Path)
		}
		path := dir.Join(f.Path)
		s, err := m.load(f, path)
		if err != nil {
			return fmt.Errorf("failed to load sound %d/%d from %s: %w", f.Category, f.ID, path, err)
		}
		m.resources[key] = &resource{file: f, path: path, sound: s}
		m.order = append(m.order, key)
	}
	core.LogDebug("loaded %d sounds from %s", len(files), dir)
	return nil
}

func (m *Manager) load(f SoundFile, path string) (platform.Sound, error) {
	if f.LoaderPolicy == LoaderPolicyDynamic {
		return m.backend.LoadStream(path)
	}
	return m.backend.LoadChunk(path)
}

// Loaded returns the number of loaded sounds.
func (m *Manager) Loaded() int {
	return len(m.resources)
}

// Sounds returns the loaded sound descriptors in load order.
func (m *Manager) Sounds() []SoundFile {
	out := make([]SoundFile, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.resources[k].file)
	}
	return out
}

func (m *Manager) Play(category, id int) error {
	r, ok := m.resources[soundKey{category: category, id: id}]
	if !ok {
		return fmt.Errorf("sound %d/%d is not loaded", category, id)
	}
	return r.sound.Play()
}

// Reload replaces every loaded sound whose file is path. It reports whether
// any sound matched.
func (m *Manager) Reload(path string) (bool, error) {
	path = filepath.Clean(path)
	reloaded := false
	for _, k := range m.order {
		r := m.resources[k]
		if r.path != path {
			continue
		}
		s, err := m.load(r.file, r.path)
		if err != nil {
			return reloaded, fmt.Errorf("failed to reload %s: %w", path, err)
		}
		r.sound.Free()
		r.sound = s
		reloaded = true
	}
	return reloaded, nil
}
