package audio

import (
	"strings"
	"testing"

	"github.com/spaghettifunk/age/engine/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoundIndexParse(t *testing.T) {
	index := strings.Join([]string{
		"# category,id,path,format,loader_policy",
		"0,100,sounds/click.wav,wav,in_memory",
		"1,200,music/theme.opus,opus,dynamic",
	}, "\n")

	files, err := assets.ParseCSV[SoundFile](strings.NewReader(index), "sound_list.docx")
	require.NoError(t, err)
	assert.Equal(t, []SoundFile{
		{Category: 0, ID: 100, Path: "sounds/click.wav", Format: FormatWAV, LoaderPolicy: LoaderPolicyInMemory},
		{Category: 1, ID: 200, Path: "music/theme.opus", Format: FormatOpus, LoaderPolicy: LoaderPolicyDynamic},
	}, files)
}

func TestSoundFileFillRejectsBadRows(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
	}{
		{"too few fields", []string{"0", "1", "a.wav", "wav"}},
		{"bad category", []string{"x", "1", "a.wav", "wav", "in_memory"}},
		{"bad id", []string{"0", "y", "a.wav", "wav", "in_memory"}},
		{"empty path", []string{"0", "1", " ", "wav", "in_memory"}},
		{"unknown format", []string{"0", "1", "a.mp3", "mp3", "in_memory"}},
		{"unknown policy", []string{"0", "1", "a.wav", "wav", "lazy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s SoundFile
			assert.Error(t, s.Fill(tt.fields))
		})
	}
}

func TestIsSoundFile(t *testing.T) {
	assert.True(t, IsSoundFile("a/b/click.WAV"))
	assert.True(t, IsSoundFile("theme.opus"))
	assert.False(t, IsSoundFile("sound_list.docx"))
}
