// Package fonts loads the UI fonts. TrueType/OpenType files are rasterised
// with golang.org/x/image; AngelCode .fnt files are read as bitmap fonts.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fzipp/bmfont"
	"github.com/spaghettifunk/age/engine/core"
	"github.com/spaghettifunk/age/engine/platform"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// DPI used when sizing TrueType faces; sizes are then in pixels.
const DPI = 72

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) LoadFont(spec platform.FontSpec) (platform.Font, error) {
	if spec.Size <= 0 {
		return nil, fmt.Errorf("font %q: size must be > 0, got %g", spec.Family, spec.Size)
	}
	switch strings.ToLower(filepath.Ext(spec.Path)) {
	case ".fnt":
		return loadBitmapFont(spec)
	case ".ttc", ".otc":
		return loadCollection(spec)
	default:
		return loadTrueType(spec)
	}
}

type trueTypeFont struct {
	name string
	face font.Face
}

func loadTrueType(spec platform.FontSpec) (platform.Font, error) {
	data, err := os.ReadFile(spec.Path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", spec.Path, err)
	}
	return newTrueTypeFont(spec, f)
}

// loadCollection picks the face whose subfamily matches the requested style,
// or the first face of the collection.
func loadCollection(spec platform.FontSpec) (platform.Font, error) {
	data, err := os.ReadFile(spec.Path)
	if err != nil {
		return nil, err
	}
	c, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font collection %s: %w", spec.Path, err)
	}
	if c.NumFonts() == 0 {
		return nil, fmt.Errorf("font collection %s is empty", spec.Path)
	}

	var buf sfnt.Buffer
	chosen := -1
	for i := 0; i < c.NumFonts(); i++ {
		f, err := c.Font(i)
		if err != nil {
			return nil, err
		}
		style, err := f.Name(&buf, sfnt.NameIDSubfamily)
		if err == nil && strings.EqualFold(style, spec.Style) {
			chosen = i
			break
		}
	}
	if chosen < 0 {
		core.LogWarn("font collection %s has no %q face, using the first one", spec.Path, spec.Style)
		chosen = 0
	}
	f, err := c.Font(chosen)
	if err != nil {
		return nil, err
	}
	return newTrueTypeFont(spec, f)
}

func newTrueTypeFont(spec platform.FontSpec, f *opentype.Font) (platform.Font, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &trueTypeFont{name: fontName(spec), face: face}, nil
}

func (f *trueTypeFont) Name() string {
	return f.name
}

func (f *trueTypeFont) LineHeight() int {
	return f.face.Metrics().Height.Ceil()
}

func (f *trueTypeFont) Measure(text string) int {
	return font.MeasureString(f.face, text).Ceil()
}

func (f *trueTypeFont) Close() error {
	return f.face.Close()
}

type bitmapFont struct {
	name string
	font *bmfont.BitmapFont
}

func loadBitmapFont(spec platform.FontSpec) (platform.Font, error) {
	f, err := bmfont.Load(spec.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load bitmap font %s: %w", spec.Path, err)
	}
	if f.Descriptor.Info.Size != int(spec.Size) {
		core.LogWarn("bitmap font %s is %dpx, requested %gpx", spec.Path, f.Descriptor.Info.Size, spec.Size)
	}
	return &bitmapFont{name: fontName(spec), font: f}, nil
}

func (f *bitmapFont) Name() string {
	return f.name
}

func (f *bitmapFont) LineHeight() int {
	return f.font.Descriptor.Common.LineHeight
}

// Measure sums the advances of the glyphs; unknown runes advance by nothing.
func (f *bitmapFont) Measure(text string) int {
	width := 0
	for _, r := range text {
		if c, ok := f.font.Descriptor.Chars[r]; ok {
			width += c.XAdvance
		}
	}
	return width
}

func (f *bitmapFont) Close() error {
	return nil
}

func fontName(spec platform.FontSpec) string {
	return fmt.Sprintf("%s %s %gpx", spec.Family, spec.Style, spec.Size)
}
