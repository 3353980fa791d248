package core

import (
	"errors"
)

// Failure kinds reported by the bootstrap pipeline. Every one of them is fatal.
var (
	ErrSubsystemInit              = errors.New("subsystem initialization failed")
	ErrWindowCreation             = errors.New("window creation failed")
	ErrImageSupport               = errors.New("image format support unavailable")
	ErrGraphicsContext            = errors.New("graphics context creation failed")
	ErrGraphicsLoader             = errors.New("graphics function loading failed")
	ErrUnsupportedGraphicsVersion = errors.New("graphics version not supported")
	ErrInsufficientHardware       = errors.New("insufficient graphics hardware")
	ErrNoAudioDevice              = errors.New("no audio devices found")
	ErrAssetManifest              = errors.New("asset manifest unreadable")
	ErrAudioResourceLoad          = errors.New("audio resource loading failed")
)
