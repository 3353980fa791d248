package engine

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/spaghettifunk/age/engine/assets"
	"github.com/spaghettifunk/age/engine/audio"
	"github.com/spaghettifunk/age/engine/core"
	"github.com/spaghettifunk/age/engine/platform"
	"golang.org/x/exp/rand"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently running the bootstrap pipeline
	EngineStageBooting
	// Engine completed the bootstrap and the frame loop can run
	EngineStageInitialized
	// Engine is currently running the frame loop
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine released its platform resources
	EngineStageTornDown
)

var ErrNotInitialized = errors.New("engine is not initialized")

type Engine struct {
	currentStage Stage
	config       *ApplicationConfig
	backend      platform.Backend
	sessionID    uuid.UUID

	seed   uint64
	random *rand.Rand

	window       platform.Window
	glContext    platform.GLContext
	capabilities Capabilities
	font         platform.Font
	frameCounter *core.FrameCounter
	callbacks    *core.Registry
	input        *core.InputState

	assetRoot    assets.Dir
	soundDir     assets.Dir
	soundFiles   []audio.SoundFile
	audioManager *audio.Manager

	width  int32
	height int32

	hudText  string
	hudWidth int

	gameInstance *Game
	isRunning    atomic.Bool
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) SessionID() uuid.UUID {
	return e.sessionID
}

func (e *Engine) Config() *ApplicationConfig {
	return e.config
}

// Seed is the value the PRNG was seeded with.
func (e *Engine) Seed() uint64 {
	return e.seed
}

func (e *Engine) Random() *rand.Rand {
	return e.random
}

func (e *Engine) Window() platform.Window {
	return e.window
}

func (e *Engine) Capabilities() Capabilities {
	return e.capabilities
}

func (e *Engine) Font() platform.Font {
	return e.font
}

func (e *Engine) FrameCounter() *core.FrameCounter {
	return e.frameCounter
}

func (e *Engine) Callbacks() *core.Registry {
	return e.callbacks
}

func (e *Engine) Input() *core.InputState {
	return e.input
}

func (e *Engine) AudioManager() *audio.Manager {
	return e.audioManager
}

// SoundDir is the directory the sound index was read from.
func (e *Engine) SoundDir() assets.Dir {
	return e.soundDir
}

// GetFramebufferSize returns the width and height (in this order)
// of the application framebuffer
func (e *Engine) GetFramebufferSize() (int32, int32) {
	return e.width, e.height
}

// HUD returns the last composed HUD line and its width in pixels.
func (e *Engine) HUD() (string, int) {
	return e.hudText, e.hudWidth
}

// Run drives the frame loop until the window is closed, Escape is pressed
// or Stop is called.
func (e *Engine) Run(g *Game) error {
	if e.currentStage != EngineStageInitialized {
		return ErrNotInitialized
	}
	if g == nil {
		g = &Game{}
	}
	e.gameInstance = g

	if g.FnInitialize != nil {
		if err := g.FnInitialize(e); err != nil {
			core.LogError("game initialization failed: %s", err)
			return err
		}
	}

	var watcher *assets.Watcher
	if e.config.Assets.Watch {
		w, err := assets.NewWatcher(e.soundDir.Path, audio.IsSoundFile)
		if err != nil {
			core.LogWarn("sound hot reload disabled: %s", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	clock := core.NewClock()
	clock.Start()
	lastTime := clock.Elapsed()

	e.currentStage = EngineStageRunning
	e.isRunning.Store(true)
	defer func() {
		e.isRunning.Store(false)
		e.currentStage = EngineStageInitialized
	}()

	for e.isRunning.Load() {
		for _, ev := range e.backend.Video.PollEvents() {
			e.dispatch(ev)
		}
		if !e.isRunning.Load() {
			break
		}

		clock.Update()
		currentTime := clock.Elapsed()
		delta := currentTime - lastTime
		lastTime = currentTime

		if g.FnUpdate != nil {
			if err := g.FnUpdate(e, delta); err != nil {
				core.LogError("Game update failed, shutting down.")
				return err
			}
		}
		if g.FnRender != nil {
			if err := g.FnRender(e, delta); err != nil {
				core.LogError("Game render failed, shutting down.")
				return err
			}
		}

		e.callbacks.Fire(core.EVENT_CODE_DRAW_HUD, core.EventContext{DeltaTime: delta})
		e.window.Swap()

		e.input.Update()
		e.frameCounter.Frame()

		if watcher != nil {
			e.reloadChanged(watcher)
		}
	}

	if g.FnShutdown != nil {
		if err := g.FnShutdown(); err != nil {
			core.LogWarn("game shutdown: %s", err)
		}
	}
	return nil
}

// Stop makes the frame loop exit after the current frame. It is safe to call
// from another goroutine.
func (e *Engine) Stop() {
	e.isRunning.Store(false)
}

func (e *Engine) dispatch(ev platform.Event) {
	switch ev.Type {
	case platform.EventQuit:
		core.LogInfo("quit requested, shutting down.")
		e.isRunning.Store(false)
	case platform.EventResize:
		e.callbacks.Fire(core.EVENT_CODE_RESIZED, core.EventContext{Width: ev.Width, Height: ev.Height})
	case platform.EventKey:
		e.callbacks.Fire(core.EVENT_CODE_INPUT, core.EventContext{Key: ev.Key, Pressed: ev.Pressed})
	}
}

func (e *Engine) reloadChanged(w *assets.Watcher) {
	for {
		select {
		case path := <-w.Changes():
			reloaded, err := e.audioManager.Reload(path)
			if err != nil {
				core.LogError("failed to reload %s: %s", path, err)
			} else if reloaded {
				core.LogInfo("reloaded %s", path)
			}
		default:
			return
		}
	}
}

// Teardown releases the GL context, the window, the frame counter, the
// default font, the image support and the subsystem, in this order. The
// audio manager and the callback registrations are left alive. Failures are
// logged; calling Teardown again does nothing.
func (e *Engine) Teardown() {
	log := core.Logger().With("session", e.sessionID.String())
	if e.currentStage == EngineStageTornDown {
		log.Warn("engine already torn down")
		return
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning.Store(false)

	if e.glContext != nil {
		if err := e.glContext.Destroy(); err != nil {
			log.Error("failed to destroy gl context", "err", err)
		}
		e.glContext = nil
	}
	if e.window != nil {
		if err := e.window.Destroy(); err != nil {
			log.Error("failed to destroy window", "err", err)
		}
		e.window = nil
	}
	e.frameCounter = nil
	if e.font != nil {
		if err := e.font.Close(); err != nil {
			log.Error(fmt.Sprintf("failed to close font %s", e.font.Name()), "err", err)
		}
		e.font = nil
	}
	e.backend.Images.Quit()
	e.backend.Video.Quit()

	e.currentStage = EngineStageTornDown
	log.Info("engine torn down")
}
