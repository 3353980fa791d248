// Package platformtest provides an in-memory platform backend that records
// every call and can be told to fail at any of them.
package platformtest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spaghettifunk/age/engine/platform"
)

// Backend is a fake of every platform collaborator. The zero value of each
// failure field means "succeed".
type Backend struct {
	// Calls holds one entry per collaborator call, in order.
	Calls []string

	InitErr       error
	AttributesErr error
	WindowErr     error
	NilWindow     bool
	// GrantedImages overrides the mask returned by the image codec.
	// Nil grants exactly what was requested.
	GrantedImages *platform.ImageFormat
	ImageErr      error
	ContextErr    error
	NilContext    bool
	LoadErr       error
	GLVersion     string
	MaxTexture    int32
	SwapErr       error
	FontErr       error
	AudioDevices  []string
	DevicesErr    error
	OpenErr       error
	// SoundErrs fails the load of the given paths.
	SoundErrs map[string]error

	WindowDestroyErr  error
	ContextDestroyErr error
	FontCloseErr      error

	// Events is drained one batch per PollEvents call.
	Events [][]platform.Event

	Attributes platform.GLAttributes
	WindowCfg  platform.WindowConfig
	AudioSpec  platform.AudioSpec
	Loaded     []string
	Played     []string
	Viewports  [][2]int32
	FontSpec   platform.FontSpec
}

// New returns a backend describing capable hardware with one audio device.
func New() *Backend {
	return &Backend{
		GLVersion:    "2.1 Fake Renderer",
		MaxTexture:   4096,
		AudioDevices: []string{"Fake Output"},
		SoundErrs:    map[string]error{},
	}
}

// Platform exposes the fake as the collaborator bundle the engine consumes.
func (b *Backend) Platform() platform.Backend {
	return platform.Backend{
		Video:    &video{b},
		Images:   &images{b},
		Graphics: &graphics{b},
		Audio:    &audio{b},
		Fonts:    &fonts{b},
	}
}

// Called reports whether a call with the given name was recorded.
func (b *Backend) Called(name string) bool {
	for _, c := range b.Calls {
		if c == name {
			return true
		}
	}
	return false
}

// CallsWithPrefix filters the recorded calls.
func (b *Backend) CallsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range b.Calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func (b *Backend) record(name string) {
	b.Calls = append(b.Calls, name)
}

type video struct{ *Backend }

func (v *video) Init() error {
	v.record("video.Init")
	return v.InitErr
}

func (v *video) Quit() {
	v.record("video.Quit")
}

func (v *video) SetGLAttributes(attrs platform.GLAttributes) error {
	v.record("video.SetGLAttributes")
	v.Attributes = attrs
	return v.AttributesErr
}

func (v *video) CreateWindow(config platform.WindowConfig) (platform.Window, error) {
	v.record("video.CreateWindow")
	v.WindowCfg = config
	if v.WindowErr != nil {
		return nil, v.WindowErr
	}
	if v.NilWindow {
		return nil, nil
	}
	return &Window{b: v.Backend, width: config.Width, height: config.Height}, nil
}

func (v *video) CreateGLContext(w platform.Window) (platform.GLContext, error) {
	v.record("video.CreateGLContext")
	if v.ContextErr != nil {
		return nil, v.ContextErr
	}
	if v.NilContext {
		return nil, nil
	}
	if _, ok := w.(*Window); !ok {
		return nil, fmt.Errorf("platformtest: foreign window %T", w)
	}
	return &glContext{v.Backend}, nil
}

func (v *video) SetSwapInterval(interval int) error {
	v.record(fmt.Sprintf("video.SetSwapInterval(%d)", interval))
	return v.SwapErr
}

func (v *video) PollEvents() []platform.Event {
	if len(v.Events) == 0 {
		// nothing queued: ask the loop to stop so tests cannot spin forever
		return []platform.Event{{Type: platform.EventQuit}}
	}
	batch := v.Events[0]
	v.Events = v.Events[1:]
	return batch
}

// Window is the fake window handle.
type Window struct {
	b      *Backend
	width  int32
	height int32
	Swaps  int
}

func (w *Window) Size() (int32, int32) {
	return w.width, w.height
}

func (w *Window) Swap() {
	w.Swaps++
}

func (w *Window) Destroy() error {
	w.b.record("window.Destroy")
	return w.b.WindowDestroyErr
}

type glContext struct{ *Backend }

func (c *glContext) Destroy() error {
	c.record("context.Destroy")
	return c.ContextDestroyErr
}

type images struct{ *Backend }

func (i *images) Init(requested platform.ImageFormat) (platform.ImageFormat, error) {
	i.record("images.Init")
	if i.ImageErr != nil {
		return 0, i.ImageErr
	}
	if i.GrantedImages != nil {
		return *i.GrantedImages, nil
	}
	return requested, nil
}

func (i *images) Quit() {
	i.record("images.Quit")
}

type graphics struct{ *Backend }

func (g *graphics) Load() error {
	g.record("graphics.Load")
	return g.LoadErr
}

func (g *graphics) Version() string {
	g.record("graphics.Version")
	return g.GLVersion
}

func (g *graphics) MaxTextureSize() int32 {
	g.record("graphics.MaxTextureSize")
	return g.MaxTexture
}

func (g *graphics) EnableBlend(src, dst platform.BlendFactor) {
	g.record(fmt.Sprintf("graphics.EnableBlend(%d,%d)", src, dst))
}

func (g *graphics) DisableDepthTest() {
	g.record("graphics.DisableDepthTest")
}

func (g *graphics) Viewport(width, height int32) {
	g.Viewports = append(g.Viewports, [2]int32{width, height})
}

type audio struct{ *Backend }

func (a *audio) Devices() ([]string, error) {
	a.record("audio.Devices")
	if a.DevicesErr != nil {
		return nil, a.DevicesErr
	}
	return a.AudioDevices, nil
}

func (a *audio) Open(spec platform.AudioSpec) error {
	a.record("audio.Open")
	a.AudioSpec = spec
	return a.OpenErr
}

func (a *audio) LoadChunk(path string) (platform.Sound, error) {
	return a.load("audio.LoadChunk", path)
}

func (a *audio) LoadStream(path string) (platform.Sound, error) {
	return a.load("audio.LoadStream", path)
}

func (a *audio) load(call, path string) (platform.Sound, error) {
	a.record(call)
	if err, ok := a.SoundErrs[path]; ok {
		return nil, err
	}
	a.Loaded = append(a.Loaded, path)
	return &sound{b: a.Backend, path: path}, nil
}

type sound struct {
	b    *Backend
	path string
}

func (s *sound) Play() error {
	s.b.Played = append(s.b.Played, s.path)
	return nil
}

func (s *sound) Free() {
	s.b.record("sound.Free")
}

type fonts struct{ *Backend }

func (f *fonts) LoadFont(spec platform.FontSpec) (platform.Font, error) {
	f.record("fonts.LoadFont")
	f.FontSpec = spec
	if f.FontErr != nil {
		return nil, f.FontErr
	}
	return &font{b: f.Backend, spec: spec}, nil
}

type font struct {
	b    *Backend
	spec platform.FontSpec
}

func (f *font) Name() string {
	return fmt.Sprintf("%s %s %g", f.spec.Family, f.spec.Style, f.spec.Size)
}

func (f *font) LineHeight() int {
	return int(f.spec.Size)
}

// Measure uses a fixed advance of half the font size per rune.
func (f *font) Measure(text string) int {
	return len([]rune(text)) * int(f.spec.Size) / 2
}

func (f *font) Close() error {
	f.b.record("font.Close")
	return f.b.FontCloseErr
}

// ErrInjected is a convenience error for failure injection.
var ErrInjected = errors.New("platformtest: injected failure")
