// Package glfw3 is an alternative windowing backend. GLFW owns the window and
// GL context; SDL's audio subsystem is brought up next to it so the audio
// collaborators keep working.
package glfw3

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/age/engine/containers"
	"github.com/spaghettifunk/age/engine/core"
	"github.com/spaghettifunk/age/engine/platform"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// maxQueuedEvents bounds the events buffered by the callbacks between two
// PollEvents calls.
const maxQueuedEvents = 256

type Video struct {
	window *glfw.Window
	events *containers.RingQueue[platform.Event]
}

func NewVideo() *Video {
	return &Video{events: containers.NewRingQueue[platform.Event](maxQueuedEvents)}
}

func (v *Video) Init() error {
	if err := glfw.Init(); err != nil {
		return err
	}
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		glfw.Terminate()
		return fmt.Errorf("audio subsystem: %w", err)
	}
	return nil
}

func (v *Video) Quit() {
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	glfw.Terminate()
}

func (v *Video) SetGLAttributes(attrs platform.GLAttributes) error {
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, attrs.MajorVersion)
	glfw.WindowHint(glfw.ContextVersionMinor, attrs.MinorVersion)
	glfw.WindowHint(glfw.DoubleBuffer, boolHint(attrs.DoubleBuffer))
	glfw.WindowHint(glfw.DepthBits, attrs.DepthSize)
	// GLFW always asks for an accelerated visual
	return nil
}

func (v *Video) CreateWindow(config platform.WindowConfig) (platform.Window, error) {
	glfw.WindowHint(glfw.Resizable, boolHint(config.Resizable))
	glfw.WindowHint(glfw.Maximized, boolHint(config.Maximized))

	w, err := glfw.CreateWindow(int(config.Width), int(config.Height), config.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	v.window = w

	w.SetFramebufferSizeCallback(v.framebufferSizeCallback)
	w.SetKeyCallback(v.keyCallback)

	return &window{w: w}, nil
}

func (v *Video) CreateGLContext(w platform.Window) (platform.GLContext, error) {
	win, ok := w.(*window)
	if !ok {
		return nil, fmt.Errorf("glfw3: window of type %T was not created by this backend", w)
	}
	win.w.MakeContextCurrent()
	if glfw.GetCurrentContext() != win.w {
		return nil, fmt.Errorf("glfw3: context of window could not be made current")
	}
	return &glContext{}, nil
}

func (v *Video) SetSwapInterval(interval int) error {
	glfw.SwapInterval(interval)
	return nil
}

func (v *Video) PollEvents() []platform.Event {
	glfw.PollEvents()
	events := v.events.Drain()
	if v.window != nil && v.window.ShouldClose() {
		events = append(events, platform.Event{Type: platform.EventQuit})
	}
	return events
}

func (v *Video) framebufferSizeCallback(w *glfw.Window, width, height int) {
	v.queue(platform.Event{
		Type:   platform.EventResize,
		Width:  int32(width),
		Height: int32(height),
	})
}

func (v *Video) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	v.queue(platform.Event{
		Type:    platform.EventKey,
		Key:     keyCode(key),
		Pressed: action == glfw.Press,
	})
}

func (v *Video) queue(ev platform.Event) {
	if err := v.events.Enqueue(ev); err != nil {
		core.LogWarn("dropping window event %d: %s", ev.Type, err)
	}
}

type window struct {
	w *glfw.Window
}

func (w *window) Size() (int32, int32) {
	width, height := w.w.GetFramebufferSize()
	return int32(width), int32(height)
}

func (w *window) Swap() {
	w.w.SwapBuffers()
}

func (w *window) Destroy() error {
	w.w.Destroy()
	return nil
}

// The context is owned by its window; releasing it only detaches it.
type glContext struct{}

func (c *glContext) Destroy() error {
	glfw.DetachCurrentContext()
	return nil
}

func keyCode(key glfw.Key) core.KeyCode {
	switch {
	case key == glfw.KeyEscape:
		return core.KEY_ESCAPE
	case key == glfw.KeyEnter:
		return core.KEY_ENTER
	case key == glfw.KeyTab:
		return core.KEY_TAB
	case key == glfw.KeyBackspace:
		return core.KEY_BACKSPACE
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return core.KEY_F1 + core.KeyCode(key-glfw.KeyF1)
	case key >= glfw.KeySpace && key <= glfw.KeyZ:
		// printable keys share their ASCII values
		return core.KeyCode(key)
	default:
		return core.KEY_UNKNOWN
	}
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
