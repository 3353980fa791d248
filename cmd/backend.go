package cmd

import (
	"fmt"

	"github.com/spaghettifunk/age/engine"
	"github.com/spaghettifunk/age/engine/fonts"
	"github.com/spaghettifunk/age/engine/platform"
	"github.com/spaghettifunk/age/engine/platform/glfw3"
	"github.com/spaghettifunk/age/engine/platform/opengl"
	"github.com/spaghettifunk/age/engine/platform/sdl2"
)

// newBackend assembles the platform collaborators for the named windowing
// backend. Image support and audio always go through SDL.
func newBackend(name string) (platform.Backend, error) {
	b := platform.Backend{
		Images:   sdl2.NewImages(),
		Graphics: opengl.NewGraphics(),
		Audio:    sdl2.NewAudio(),
		Fonts:    fonts.NewLoader(),
	}
	switch name {
	case engine.BackendSDL:
		b.Video = sdl2.NewVideo()
	case engine.BackendGLFW:
		b.Video = glfw3.NewVideo()
	default:
		return platform.Backend{}, fmt.Errorf("unknown window backend %q", name)
	}
	return b, nil
}
