package testbed

import (
	"github.com/spaghettifunk/age/engine"
	"github.com/spaghettifunk/age/engine/core"
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	width  int32
	height int32

	played int
}

func NewTestGame() *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			State: &gameState{},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) Initialize(e *engine.Engine) error {
	core.LogDebug("TestGame Initialize fn....")

	state := g.State.(*gameState)
	state.width, state.height = e.GetFramebufferSize()

	core.LogInfo("%d sounds loaded, press space to play one", e.AudioManager().Loaded())
	return nil
}

func (g *TestGame) Update(e *engine.Engine, deltaTime float64) error {
	input := e.Input()
	if input.IsKeyDown(core.KEY_SPACE) && !input.WasKeyDown(core.KEY_SPACE) {
		g.playRandomSound(e)
	}
	return nil
}

func (g *TestGame) Render(e *engine.Engine, deltaTime float64) error {
	return nil
}

func (g *TestGame) OnResize(width int32, height int32) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) Shutdown() error {
	state := g.State.(*gameState)
	core.LogInfo("testbed played %d sounds", state.played)
	return nil
}

func (g *TestGame) playRandomSound(e *engine.Engine) {
	sounds := e.AudioManager().Sounds()
	if len(sounds) == 0 {
		core.LogWarn("no sounds loaded")
		return
	}

	s := sounds[e.Random().Intn(len(sounds))]
	if err := e.AudioManager().Play(s.Category, s.ID); err != nil {
		core.LogError("failed to play %s: %s", s.Path, err)
		return
	}
	g.State.(*gameState).played++
	core.LogDebug("playing %s", s.Path)
}
