// Package sdl2 implements the platform collaborators on top of SDL2,
// SDL2_image and SDL2_mixer.
package sdl2

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spaghettifunk/age/engine/core"
	"github.com/spaghettifunk/age/engine/platform"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL event handling and the GL context must stay on the main OS thread
	runtime.LockOSThread()
}

type Video struct{}

func NewVideo() *Video {
	return &Video{}
}

func (v *Video) Init() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
}

func (v *Video) Quit() {
	sdl.Quit()
}

func (v *Video) SetGLAttributes(attrs platform.GLAttributes) error {
	hints := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, attrs.MajorVersion},
		{sdl.GL_CONTEXT_MINOR_VERSION, attrs.MinorVersion},
		{sdl.GL_ACCELERATED_VISUAL, boolToInt(attrs.Accelerated)},
		{sdl.GL_DOUBLEBUFFER, boolToInt(attrs.DoubleBuffer)},
		{sdl.GL_DEPTH_SIZE, attrs.DepthSize},
	}
	var errs []error
	for _, h := range hints {
		if err := sdl.GLSetAttribute(h.attr, h.value); err != nil {
			errs = append(errs, fmt.Errorf("gl attribute %d=%d: %w", h.attr, h.value, err))
		}
	}
	return errors.Join(errs...)
}

func (v *Video) CreateWindow(config platform.WindowConfig) (platform.Window, error) {
	flags := uint32(sdl.WINDOW_OPENGL)
	if config.Resizable {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	if config.Maximized {
		flags |= uint32(sdl.WINDOW_MAXIMIZED)
	}
	w, err := sdl.CreateWindow(config.Title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		config.Width, config.Height, flags)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, sdl.GetError()
	}
	return &window{w: w}, nil
}

func (v *Video) CreateGLContext(w platform.Window) (platform.GLContext, error) {
	win, ok := w.(*window)
	if !ok {
		return nil, fmt.Errorf("sdl2: window of type %T was not created by this backend", w)
	}
	ctx, err := win.w.GLCreateContext()
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		return nil, sdl.GetError()
	}
	return &glContext{ctx: ctx}, nil
}

func (v *Video) SetSwapInterval(interval int) error {
	return sdl.GLSetSwapInterval(interval)
}

func (v *Video) PollEvents() []platform.Event {
	var events []platform.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			events = append(events, platform.Event{Type: platform.EventQuit})
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				events = append(events, platform.Event{
					Type:   platform.EventResize,
					Width:  e.Data1,
					Height: e.Data2,
				})
			}
		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			events = append(events, platform.Event{
				Type:    platform.EventKey,
				Key:     keyCode(e.Keysym.Sym),
				Pressed: e.State == sdl.PRESSED,
			})
		}
	}
	return events
}

type window struct {
	w *sdl.Window
}

func (w *window) Size() (int32, int32) {
	return w.w.GLGetDrawableSize()
}

func (w *window) Swap() {
	w.w.GLSwap()
}

func (w *window) Destroy() error {
	return w.w.Destroy()
}

type glContext struct {
	ctx sdl.GLContext
}

func (c *glContext) Destroy() error {
	sdl.GLDeleteContext(c.ctx)
	return nil
}

func keyCode(sym sdl.Keycode) core.KeyCode {
	switch {
	case sym >= 'a' && sym <= 'z':
		// SDL reports lowercase letters, the engine uses the uppercase codes.
		return core.KeyCode(sym - 0x20)
	case sym >= sdl.K_F1 && sym <= sdl.K_F12:
		return core.KEY_F1 + core.KeyCode(sym-sdl.K_F1)
	case sym > 0 && sym < 0x80:
		return core.KeyCode(sym)
	default:
		return core.KEY_UNKNOWN
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
