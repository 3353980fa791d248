package sdl2

import (
	"github.com/spaghettifunk/age/engine/platform"
	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
)

// Audio enumerates output devices and loads sounds through SDL2_mixer.
type Audio struct{}

func NewAudio() *Audio {
	return &Audio{}
}

func (a *Audio) Devices() ([]string, error) {
	count := sdl.GetNumAudioDevices(false)
	if count < 0 {
		return nil, sdl.GetError()
	}
	devices := make([]string, 0, count)
	for i := 0; i < count; i++ {
		devices = append(devices, sdl.GetAudioDeviceName(i, false))
	}
	return devices, nil
}

func (a *Audio) Open(spec platform.AudioSpec) error {
	return mix.OpenAudio(spec.Frequency, uint16(spec.Format), spec.Channels, spec.ChunkSize)
}

func (a *Audio) LoadChunk(path string) (platform.Sound, error) {
	c, err := mix.LoadWAV(path)
	if err != nil {
		return nil, err
	}
	return &chunk{c: c}, nil
}

func (a *Audio) LoadStream(path string) (platform.Sound, error) {
	m, err := mix.LoadMUS(path)
	if err != nil {
		return nil, err
	}
	return &music{m: m}, nil
}

type chunk struct {
	c *mix.Chunk
}

func (c *chunk) Play() error {
	// first free channel, no loops
	_, err := c.c.Play(-1, 0)
	return err
}

func (c *chunk) Free() {
	c.c.Free()
}

type music struct {
	m *mix.Music
}

func (m *music) Play() error {
	return m.m.Play(1)
}

func (m *music) Free() {
	m.m.Free()
}
