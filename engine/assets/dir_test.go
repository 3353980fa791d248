package assets

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirAppendJoin(t *testing.T) {
	root := NewDir("/data/")
	sounds := root.Append("age/assets")

	assert.Equal(t, filepath.FromSlash("/data/age/assets"), sounds.Path)
	assert.Equal(t, filepath.FromSlash("/data/age/assets/sound_list.docx"), sounds.Join("sound_list.docx"))
	assert.Equal(t, "/abs/font.ttf", sounds.Join("/abs/font.ttf"))
}
