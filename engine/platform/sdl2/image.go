package sdl2

import (
	"github.com/spaghettifunk/age/engine/platform"
	"github.com/veandco/go-sdl2/img"
)

type Images struct{}

func NewImages() *Images {
	return &Images{}
}

// Init loads the requested decoders. SDL_image only reports an error when
// none of them could be loaded, so a successful call grants the full mask.
func (i *Images) Init(requested platform.ImageFormat) (platform.ImageFormat, error) {
	flags := 0
	if requested&platform.ImageFormatJPG != 0 {
		flags |= img.INIT_JPG
	}
	if requested&platform.ImageFormatPNG != 0 {
		flags |= img.INIT_PNG
	}
	if requested&platform.ImageFormatTIF != 0 {
		flags |= img.INIT_TIF
	}
	if requested&platform.ImageFormatWEBP != 0 {
		flags |= img.INIT_WEBP
	}
	if err := img.Init(flags); err != nil {
		return 0, err
	}
	return requested, nil
}

func (i *Images) Quit() {
	img.Quit()
}
