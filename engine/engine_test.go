package engine

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/age/engine/core"
	"github.com/spaghettifunk/age/engine/platform"
	"github.com/spaghettifunk/age/engine/platform/platformtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeardownReleasesInOrder(t *testing.T) {
	root := writeAssets(t, testManifest)
	fake := platformtest.New()
	e, _, err := bootstrap(t, fake, root)
	require.NoError(t, err)

	fake.Calls = nil
	e.Teardown()

	assert.Equal(t, []string{
		"context.Destroy",
		"window.Destroy",
		"font.Close",
		"images.Quit",
		"video.Quit",
	}, fake.Calls)
	assert.Equal(t, EngineStageTornDown, e.Stage())
	assert.Nil(t, e.Window())
	assert.Nil(t, e.Font())
	assert.Nil(t, e.FrameCounter())

	// audio and callbacks stay alive
	assert.False(t, fake.Called("sound.Free"))
	require.NotNil(t, e.AudioManager())
	assert.Equal(t, 2, e.AudioManager().Loaded())
	assert.Equal(t, 1, e.Callbacks().Count(core.EVENT_CODE_RESIZED))
	assert.Equal(t, 1, e.Callbacks().Count(core.EVENT_CODE_INPUT))
	assert.Equal(t, 1, e.Callbacks().Count(core.EVENT_CODE_DRAW_HUD))
}

func TestTeardownTwiceIsNoop(t *testing.T) {
	root := writeAssets(t, testManifest)
	fake := platformtest.New()
	e, _, err := bootstrap(t, fake, root)
	require.NoError(t, err)

	e.Teardown()
	fake.Calls = nil
	e.Teardown()
	assert.Empty(t, fake.Calls)
}

func TestTeardownLogsReleaseFailures(t *testing.T) {
	root := writeAssets(t, testManifest)
	fake := platformtest.New()
	e, _, err := bootstrap(t, fake, root)
	require.NoError(t, err)

	fake.ContextDestroyErr = platformtest.ErrInjected
	fake.WindowDestroyErr = platformtest.ErrInjected
	fake.FontCloseErr = platformtest.ErrInjected
	fake.Calls = nil
	e.Teardown()

	// every release still happens
	assert.Equal(t, []string{
		"context.Destroy",
		"window.Destroy",
		"font.Close",
		"images.Quit",
		"video.Quit",
	}, fake.Calls)
}

func TestRunRequiresBootstrap(t *testing.T) {
	e := &Engine{}
	assert.ErrorIs(t, e.Run(nil), ErrNotInitialized)
}

func TestRunDispatchesEvents(t *testing.T) {
	root := writeAssets(t, testManifest)
	fake := platformtest.New()
	e, _, err := bootstrap(t, fake, root)
	require.NoError(t, err)

	fake.Events = [][]platform.Event{
		{{Type: platform.EventResize, Width: 1024, Height: 768}},
		{{Type: platform.EventKey, Key: core.KEY_SPACE, Pressed: true}},
		{{Type: platform.EventResize, Width: 0, Height: 0}},
	}

	var updates, renders int
	var resized [][2]int32
	var spaceSeen bool
	var shutdown bool
	g := &Game{
		FnUpdate: func(e *Engine, dt float64) error {
			updates++
			if e.Input().IsKeyDown(core.KEY_SPACE) {
				spaceSeen = true
			}
			return nil
		},
		FnRender: func(e *Engine, dt float64) error {
			renders++
			return nil
		},
		FnOnResize: func(w, h int32) error {
			resized = append(resized, [2]int32{w, h})
			return nil
		},
		FnShutdown: func() error {
			shutdown = true
			return nil
		},
	}

	require.NoError(t, e.Run(g))

	assert.Equal(t, 3, updates)
	assert.Equal(t, 3, renders)
	assert.True(t, spaceSeen)
	assert.True(t, shutdown)
	assert.Equal(t, [][2]int32{{1024, 768}}, resized)
	assert.Equal(t, [][2]int32{{1024, 768}}, fake.Viewports)

	w, h := e.GetFramebufferSize()
	assert.Equal(t, int32(1024), w)
	assert.Equal(t, int32(768), h)

	assert.Equal(t, 3, e.Window().(*platformtest.Window).Swaps)
	hud, width := e.HUD()
	assert.Contains(t, hud, "FPS")
	assert.Equal(t, len([]rune(hud))*10, width)
	assert.Equal(t, EngineStageInitialized, e.Stage())
}

func TestRunStopsOnEscape(t *testing.T) {
	root := writeAssets(t, testManifest)
	fake := platformtest.New()
	e, _, err := bootstrap(t, fake, root)
	require.NoError(t, err)

	fake.Events = [][]platform.Event{
		{},
		{{Type: platform.EventKey, Key: core.KEY_ESCAPE, Pressed: true}},
		{},
		{},
	}
	frames := 0
	require.NoError(t, e.Run(&Game{
		FnUpdate: func(*Engine, float64) error {
			frames++
			return nil
		},
	}))
	assert.Equal(t, 1, frames)
	assert.Len(t, fake.Events, 2)
}

func TestRunPropagatesGameErrors(t *testing.T) {
	root := writeAssets(t, testManifest)
	fake := platformtest.New()
	e, _, err := bootstrap(t, fake, root)
	require.NoError(t, err)

	fake.Events = [][]platform.Event{{}, {}}
	boom := errors.New("boom")
	err = e.Run(&Game{
		FnRender: func(*Engine, float64) error { return boom },
	})
	assert.ErrorIs(t, err, boom)
}

func TestRunStop(t *testing.T) {
	root := writeAssets(t, testManifest)
	fake := platformtest.New()
	e, _, err := bootstrap(t, fake, root)
	require.NoError(t, err)

	fake.Events = [][]platform.Event{{}, {}, {}}
	frames := 0
	require.NoError(t, e.Run(&Game{
		FnUpdate: func(e *Engine, _ float64) error {
			frames++
			e.Stop()
			return nil
		},
	}))
	assert.Equal(t, 1, frames)
}

func TestRunAfterTeardown(t *testing.T) {
	root := writeAssets(t, testManifest)
	e, _, err := bootstrap(t, platformtest.New(), root)
	require.NoError(t, err)

	e.Teardown()
	assert.ErrorIs(t, e.Run(&Game{}), ErrNotInitialized)
}
