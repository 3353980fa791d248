// Package platform declares the collaborators the engine drives during
// bootstrap, the frame loop and teardown. Concrete backends live in the
// sub-packages (sdl2, glfw3, opengl); platformtest provides a recording fake.
package platform

import (
	"github.com/spaghettifunk/age/engine/core"
)

// GLAttributes are the context hints declared before the window exists.
type GLAttributes struct {
	MajorVersion int
	MinorVersion int
	Accelerated  bool
	DoubleBuffer bool
	DepthSize    int
}

// WindowConfig describes the application window.
type WindowConfig struct {
	Title     string
	Width     int32
	Height    int32
	Resizable bool
	Maximized bool
}

type Window interface {
	// Size returns the drawable size in pixels.
	Size() (int32, int32)
	Swap()
	Destroy() error
}

type GLContext interface {
	Destroy() error
}

// Video owns the OS video and audio subsystem, the window and the GL context.
type Video interface {
	Init() error
	Quit()
	SetGLAttributes(attrs GLAttributes) error
	CreateWindow(config WindowConfig) (Window, error)
	CreateGLContext(window Window) (GLContext, error)
	SetSwapInterval(interval int) error
	PollEvents() []Event
}

// ImageFormat is a capability mask of decoders.
type ImageFormat int

const (
	ImageFormatJPG ImageFormat = 1 << iota
	ImageFormatPNG
	ImageFormatTIF
	ImageFormatWEBP
)

type ImageCodec interface {
	// Init requests the given decoders and returns the mask actually granted.
	Init(requested ImageFormat) (ImageFormat, error)
	Quit()
}

type BlendFactor int

const (
	BlendSrcAlpha BlendFactor = iota
	BlendOneMinusSrcAlpha
)

// Graphics wraps the GL function table of the current context.
type Graphics interface {
	Load() error
	// Version returns the GL_VERSION string of the loaded context.
	Version() string
	MaxTextureSize() int32
	EnableBlend(src, dst BlendFactor)
	DisableDepthTest()
	Viewport(width, height int32)
}

type AudioFormat uint16

// AUDIO_S16LSB as defined by SDL.
const AudioFormatS16LSB AudioFormat = 0x8010

type AudioSpec struct {
	Frequency int
	Format    AudioFormat
	Channels  int
	ChunkSize int
}

// Sound is a loaded, playable audio resource.
type Sound interface {
	Play() error
	Free()
}

type Audio interface {
	// Devices lists the available output devices.
	Devices() ([]string, error)
	Open(spec AudioSpec) error
	// LoadChunk decodes the whole file into memory.
	LoadChunk(path string) (Sound, error)
	// LoadStream opens the file for streamed playback.
	LoadStream(path string) (Sound, error)
}

type FontSpec struct {
	Family string
	Style  string
	Size   float64
	Path   string
}

type Font interface {
	Name() string
	LineHeight() int
	// Measure returns the advance width of text in pixels.
	Measure(text string) int
	Close() error
}

type FontLoader interface {
	LoadFont(spec FontSpec) (Font, error)
}

// Backend bundles every collaborator the engine needs.
type Backend struct {
	Video    Video
	Images   ImageCodec
	Graphics Graphics
	Audio    Audio
	Fonts    FontLoader
}

type EventType uint8

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventKey
)

type Event struct {
	Type    EventType
	Width   int32
	Height  int32
	Key     core.KeyCode
	Pressed bool
}
