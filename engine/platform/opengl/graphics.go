// Package opengl loads the OpenGL 2.1 function table of the current context.
package opengl

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/spaghettifunk/age/engine/platform"
)

type Graphics struct{}

func NewGraphics() *Graphics {
	return &Graphics{}
}

// Load resolves the GL entry points. A context must be current.
func (g *Graphics) Load() error {
	return gl.Init()
}

func (g *Graphics) Version() string {
	v := gl.GetString(gl.VERSION)
	if v == nil {
		return ""
	}
	return gl.GoStr(v)
}

func (g *Graphics) MaxTextureSize() int32 {
	var size int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &size)
	return size
}

func (g *Graphics) EnableBlend(src, dst platform.BlendFactor) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(blendFactor(src), blendFactor(dst))
}

func (g *Graphics) DisableDepthTest() {
	gl.Disable(gl.DEPTH_TEST)
}

func (g *Graphics) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func blendFactor(f platform.BlendFactor) uint32 {
	switch f {
	case platform.BlendSrcAlpha:
		return gl.SRC_ALPHA
	case platform.BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	default:
		return gl.ONE
	}
}
