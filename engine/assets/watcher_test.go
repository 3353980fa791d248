package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsFilteredChanges(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sounds")
	require.NoError(t, os.Mkdir(sub, 0o755))

	w, err := NewWatcher(root, func(path string) bool {
		return strings.HasSuffix(path, ".wav")
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(sub, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(sub, "click.wav")
	require.NoError(t, os.WriteFile(target, []byte("RIFF"), 0o644))

	select {
	case path := <-w.Changes():
		assert.Equal(t, target, path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), nil)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.Error(t, w.Close())
}

func TestWatcherMissingRoot(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}
