package audio

import (
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/age/engine/assets"
	"github.com/spaghettifunk/age/engine/platform/platformtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFiles() []SoundFile {
	return []SoundFile{
		{Category: 0, ID: 1, Path: "click.wav", Format: FormatWAV, LoaderPolicy: LoaderPolicyInMemory},
		{Category: 0, ID: 2, Path: "theme.opus", Format: FormatOpus, LoaderPolicy: LoaderPolicyDynamic},
	}
}

func TestManagerLoadResources(t *testing.T) {
	fake := platformtest.New()
	m, err := NewManager(fake.Platform().Audio, DefaultSpec)
	require.NoError(t, err)
	assert.Equal(t, 48000, fake.AudioSpec.Frequency)
	assert.Equal(t, 4096, fake.AudioSpec.ChunkSize)

	dir := assets.NewDir("/game/age/assets")
	require.NoError(t, m.LoadResources(dir, testFiles()))

	assert.Equal(t, 2, m.Loaded())
	assert.Equal(t, []string{"audio.Open", "audio.LoadChunk", "audio.LoadStream"}, fake.Calls)
	assert.Equal(t, []string{
		filepath.FromSlash("/game/age/assets/click.wav"),
		filepath.FromSlash("/game/age/assets/theme.opus"),
	}, fake.Loaded)
	assert.Equal(t, testFiles(), m.Sounds())

	require.NoError(t, m.Play(0, 2))
	assert.Equal(t, []string{filepath.FromSlash("/game/age/assets/theme.opus")}, fake.Played)
	assert.Error(t, m.Play(9, 9))
}

func TestManagerOpenFailure(t *testing.T) {
	fake := platformtest.New()
	fake.OpenErr = platformtest.ErrInjected

	_, err := NewManager(fake.Platform().Audio, DefaultSpec)
	assert.ErrorIs(t, err, platformtest.ErrInjected)
}

func TestManagerStopsAtFirstFailure(t *testing.T) {
	fake := platformtest.New()
	dir := assets.NewDir("/game")
	fake.SoundErrs[dir.Join("click.wav")] = platformtest.ErrInjected

	m, err := NewManager(fake.Platform().Audio, DefaultSpec)
	require.NoError(t, err)

	err = m.LoadResources(dir, testFiles())
	assert.ErrorIs(t, err, platformtest.ErrInjected)
	assert.Zero(t, m.Loaded())
	assert.Empty(t, fake.CallsWithPrefix("audio.LoadStream"))
}

func TestManagerRejectsDuplicates(t *testing.T) {
	fake := platformtest.New()
	m, err := NewManager(fake.Platform().Audio, DefaultSpec)
	require.NoError(t, err)

	files := append(testFiles(), testFiles()[0])
	assert.Error(t, m.LoadResources(assets.NewDir("/game"), files))
	assert.Equal(t, 2, m.Loaded())
}

func TestManagerReload(t *testing.T) {
	fake := platformtest.New()
	m, err := NewManager(fake.Platform().Audio, DefaultSpec)
	require.NoError(t, err)
	dir := assets.NewDir("/game")
	require.NoError(t, m.LoadResources(dir, testFiles()))

	ok, err := m.Reload(dir.Join("click.wav"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"sound.Free"}, fake.CallsWithPrefix("sound."))

	ok, err = m.Reload(dir.Join("unknown.wav"))
	require.NoError(t, err)
	assert.False(t, ok)
}
