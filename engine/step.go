package engine

import "fmt"

// Step identifies one stage of the bootstrap pipeline, in execution order.
type Step uint8

const (
	StepSeedRandom Step = iota + 1
	StepSubsystem
	StepGLAttributes
	StepWindow
	StepImageSupport
	StepGLContext
	StepGLLoader
	StepTextureSize
	StepRenderState
	StepDefaultFont
	StepFrameCounter
	StepCallbacks
	StepAudioDevices
	StepSoundIndex
	StepAudioManager
)

// StepCount is the number of bootstrap steps.
const StepCount = int(StepAudioManager)

var stepNames = [...]string{
	StepSeedRandom:   "seed random generator",
	StepSubsystem:    "video/audio subsystem",
	StepGLAttributes: "gl context attributes",
	StepWindow:       "window creation",
	StepImageSupport: "png support",
	StepGLContext:    "gl context creation",
	StepGLLoader:     "gl function loading",
	StepTextureSize:  "max texture size",
	StepRenderState:  "render state",
	StepDefaultFont:  "default font",
	StepFrameCounter: "frame counter",
	StepCallbacks:    "callback registration",
	StepAudioDevices: "audio devices",
	StepSoundIndex:   "sound index",
	StepAudioManager: "audio manager",
}

func (s Step) String() string {
	if s == 0 || int(s) >= len(stepNames) {
		return fmt.Sprintf("step(%d)", uint8(s))
	}
	return stepNames[s]
}
