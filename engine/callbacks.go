package engine

import (
	"fmt"

	"github.com/spaghettifunk/age/engine/core"
)

func (e *Engine) handleWindowResize(code core.EventCode, context core.EventContext) bool {
	// Minimized windows report a zero size.
	if context.Width == 0 || context.Height == 0 {
		core.LogDebug("window minimized, keeping %dx%d", e.width, e.height)
		return false
	}
	if context.Width == e.width && context.Height == e.height {
		return false
	}

	core.LogDebug("window resize: %d, %d", context.Width, context.Height)
	e.width = context.Width
	e.height = context.Height
	e.backend.Graphics.Viewport(e.width, e.height)

	if e.gameInstance != nil && e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			core.LogError("game resize failed: %s", err)
		}
	}
	return false
}

func (e *Engine) handleInput(code core.EventCode, context core.EventContext) bool {
	if !e.input.ProcessKey(context.Key, context.Pressed) {
		return false
	}
	if context.Key == core.KEY_ESCAPE && context.Pressed {
		core.LogInfo("escape pressed, shutting down.")
		e.isRunning.Store(false)
		// Block anything else from processing this.
		return true
	}
	return false
}

func (e *Engine) drawHUD(code core.EventCode, context core.EventContext) bool {
	if e.frameCounter == nil || e.font == nil {
		return false
	}
	e.hudText = fmt.Sprintf("FPS: %5.1f (%4.1fms)", e.frameCounter.FPS(), float64(e.frameCounter.FrameTime().Microseconds())/1000.0)
	e.hudWidth = e.font.Measure(e.hudText)
	return false
}
