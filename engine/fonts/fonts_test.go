package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/age/engine/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func writeGoRegular(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "GoRegular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	return path
}

func TestLoadTrueTypeFont(t *testing.T) {
	f, err := NewLoader().LoadFont(platform.FontSpec{
		Family: "Go",
		Style:  "Regular",
		Size:   20,
		Path:   writeGoRegular(t),
	})
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Go Regular 20px", f.Name())
	assert.Greater(t, f.LineHeight(), 0)

	short := f.Measure("fps")
	long := f.Measure("60.0 fps")
	assert.Greater(t, short, 0)
	assert.Greater(t, long, short)
	assert.Zero(t, f.Measure(""))
}

func TestLoadFontErrors(t *testing.T) {
	loader := NewLoader()
	dir := t.TempDir()

	_, err := loader.LoadFont(platform.FontSpec{Family: "DejaVu Serif", Size: 20, Path: filepath.Join(dir, "missing.ttf")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = loader.LoadFont(platform.FontSpec{Family: "DejaVu Serif", Size: 20, Path: filepath.Join(dir, "missing.fnt")})
	assert.Error(t, err)

	_, err = loader.LoadFont(platform.FontSpec{Family: "DejaVu Serif", Size: 0, Path: writeGoRegular(t)})
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.ttf")
	require.NoError(t, os.WriteFile(garbage, []byte("not a font"), 0o644))
	_, err = loader.LoadFont(platform.FontSpec{Family: "DejaVu Serif", Size: 20, Path: garbage})
	assert.Error(t, err)
}
