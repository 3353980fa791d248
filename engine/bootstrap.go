package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spaghettifunk/age/engine/assets"
	"github.com/spaghettifunk/age/engine/audio"
	"github.com/spaghettifunk/age/engine/core"
	"github.com/spaghettifunk/age/engine/platform"
	"golang.org/x/exp/rand"
)

const (
	// SoundAssetDir is where the sound index and sound files live, relative
	// to the asset root.
	SoundAssetDir = "age/assets"
	// SoundIndexFile is a comma separated table despite its extension.
	SoundIndexFile = "sound_list.docx"
)

// GLAttributes requested before the window is created.
var GLAttributes = platform.GLAttributes{
	MajorVersion: RequiredGLMajor,
	MinorVersion: RequiredGLMinor,
	Accelerated:  true,
	DoubleBuffer: true,
	DepthSize:    24,
}

type pipelineStep struct {
	step Step
	run  func() error
}

// Bootstrap brings the engine from nothing to a state where the frame loop
// can run. Steps run strictly in order and the first failure aborts the
// whole pipeline with a *FatalInitError; resources acquired before the
// failure are not released, the caller is expected to exit.
func Bootstrap(config *ApplicationConfig, backend platform.Backend, opts ...Option) (*Engine, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	e := &Engine{
		currentStage: EngineStageBooting,
		config:       config,
		backend:      backend,
		sessionID:    uuid.New(),
		assetRoot:    assets.NewDir(config.Assets.Root),
		width:        config.Window.Width,
		height:       config.Window.Height,
	}
	log := core.Logger().With("session", e.sessionID.String())
	log.Info("bootstrapping engine", "title", config.Window.Title, "assets", e.assetRoot.Path)

	for _, s := range e.pipeline() {
		if o.onStep != nil {
			o.onStep(s.step)
		}
		log.Debug("bootstrap step", "step", int(s.step), "name", s.step.String())

		if err := s.run(); err != nil {
			fatal := &FatalInitError{Step: s.step, Err: err}
			var se *stepError
			if errors.As(err, &se) {
				fatal.Kind = se.kind
				fatal.Err = se.err
			}
			e.currentStage = EngineStageUninitialized
			return nil, fatal
		}
	}

	e.currentStage = EngineStageInitialized
	log.Info("engine bootstrapped",
		"gl", e.capabilities.VersionString,
		"max_texture_size", e.capabilities.MaxTextureSize,
		"sounds", e.audioManager.Loaded())
	return e, nil
}

func (e *Engine) pipeline() []pipelineStep {
	return []pipelineStep{
		{StepSeedRandom, e.seedRandom},
		{StepSubsystem, e.initSubsystem},
		{StepGLAttributes, e.declareGLAttributes},
		{StepWindow, e.createWindow},
		{StepImageSupport, e.initImageSupport},
		{StepGLContext, e.createGLContext},
		{StepGLLoader, e.loadGL},
		{StepTextureSize, e.checkTextureSize},
		{StepRenderState, e.configureRenderState},
		{StepDefaultFont, e.loadDefaultFont},
		{StepFrameCounter, e.createFrameCounter},
		{StepCallbacks, e.registerCallbacks},
		{StepAudioDevices, e.enumerateAudioDevices},
		{StepSoundIndex, e.readSoundIndex},
		{StepAudioManager, e.createAudioManager},
	}
}

func (e *Engine) seedRandom() error {
	seed := e.config.Random.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	e.seed = seed
	e.random = rand.New(rand.NewSource(seed))
	return nil
}

func (e *Engine) initSubsystem() error {
	if err := e.backend.Video.Init(); err != nil {
		return fail(core.ErrSubsystemInit, err)
	}
	return nil
}

// The attributes are hints; the GL version check after loading is what
// decides whether the context is usable.
func (e *Engine) declareGLAttributes() error {
	if err := e.backend.Video.SetGLAttributes(GLAttributes); err != nil {
		core.LogWarn("gl context attributes not accepted: %s", err)
	}
	return nil
}

func (e *Engine) createWindow() error {
	w, err := e.backend.Video.CreateWindow(platform.WindowConfig{
		Title:     e.config.Window.Title,
		Width:     e.config.Window.Width,
		Height:    e.config.Window.Height,
		Resizable: true,
		Maximized: true,
	})
	if err != nil {
		return fail(core.ErrWindowCreation, err)
	}
	if w == nil {
		return fail(core.ErrWindowCreation, errors.New("window handle is nil"))
	}
	e.window = w
	return nil
}

func (e *Engine) initImageSupport() error {
	requested := platform.ImageFormatPNG
	granted, err := e.backend.Images.Init(requested)
	if err != nil {
		return fail(core.ErrImageSupport, err)
	}
	if granted&requested != requested {
		return fail(core.ErrImageSupport, fmt.Errorf("requested formats %04b, granted %04b", requested, granted))
	}
	e.capabilities.ImageFormats = granted
	return nil
}

func (e *Engine) createGLContext() error {
	ctx, err := e.backend.Video.CreateGLContext(e.window)
	if err != nil {
		return fail(core.ErrGraphicsContext, err)
	}
	if ctx == nil {
		return fail(core.ErrGraphicsContext, errors.New("gl context handle is nil"))
	}
	e.glContext = ctx
	return nil
}

func (e *Engine) loadGL() error {
	if err := e.backend.Graphics.Load(); err != nil {
		return fail(core.ErrGraphicsLoader, err)
	}

	// A successful load says nothing about the version of the context.
	s := e.backend.Graphics.Version()
	v, err := ParseGLVersion(s)
	if err != nil {
		return fail(core.ErrUnsupportedGraphicsVersion, err)
	}
	if !v.AtLeast(RequiredGLMajor, RequiredGLMinor) {
		return fail(core.ErrUnsupportedGraphicsVersion,
			fmt.Errorf("OpenGL %d.%d not available, context is %s", RequiredGLMajor, RequiredGLMinor, s))
	}
	e.capabilities.Version = v
	e.capabilities.VersionString = s
	return nil
}

func (e *Engine) checkTextureSize() error {
	size := e.backend.Graphics.MaxTextureSize()
	core.LogDebug("Maximum supported texture size: %d", size)
	if size < MinTextureSize {
		return fail(core.ErrInsufficientHardware,
			fmt.Errorf("maximum supported texture size too small: %d < %d", size, MinTextureSize))
	}
	e.capabilities.MaxTextureSize = size
	return nil
}

func (e *Engine) configureRenderState() error {
	// vsync on
	if err := e.backend.Video.SetSwapInterval(1); err != nil {
		core.LogWarn("vsync unavailable: %s", err)
	}

	e.backend.Graphics.EnableBlend(platform.BlendSrcAlpha, platform.BlendOneMinusSrcAlpha)

	// What gets drawn last is displayed on top.
	e.backend.Graphics.DisableDepthTest()
	return nil
}

func (e *Engine) loadDefaultFont() error {
	f, err := e.backend.Fonts.LoadFont(platform.FontSpec{
		Family: e.config.Font.Family,
		Style:  e.config.Font.Style,
		Size:   e.config.Font.Size,
		Path:   e.assetRoot.Join(e.config.Font.File),
	})
	if err != nil {
		return err
	}
	e.font = f
	return nil
}

func (e *Engine) createFrameCounter() error {
	e.frameCounter = core.NewFrameCounter()
	return nil
}

func (e *Engine) registerCallbacks() error {
	e.input = core.NewInputState()
	e.callbacks = core.NewRegistry()
	e.callbacks.Register(core.EVENT_CODE_RESIZED, "window_resize", e.handleWindowResize)
	e.callbacks.Register(core.EVENT_CODE_INPUT, "input", e.handleInput)
	e.callbacks.Register(core.EVENT_CODE_DRAW_HUD, "draw_hud", e.drawHUD)
	return nil
}

func (e *Engine) enumerateAudioDevices() error {
	devices, err := e.backend.Audio.Devices()
	if err != nil {
		return fail(core.ErrNoAudioDevice, err)
	}
	if len(devices) == 0 {
		return fail(core.ErrNoAudioDevice, errors.New("audio device enumeration is empty"))
	}
	e.capabilities.AudioDevices = devices
	return nil
}

func (e *Engine) readSoundIndex() error {
	e.soundDir = e.assetRoot.Append(SoundAssetDir)
	files, err := assets.ReadCSV[audio.SoundFile](e.soundDir.Join(SoundIndexFile))
	if err != nil {
		return fail(core.ErrAssetManifest, err)
	}
	e.soundFiles = files
	return nil
}

func (e *Engine) createAudioManager() error {
	m, err := audio.NewManager(e.backend.Audio, audio.DefaultSpec)
	if err != nil {
		return err
	}
	e.audioManager = m
	if err := m.LoadResources(e.soundDir, e.soundFiles); err != nil {
		return fail(core.ErrAudioResourceLoad, err)
	}
	return nil
}
