package library_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/clipdeck/clipdeck/internal/library"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
}

func TestScan(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writeFile(t, filepath.Join(first, "Hit Snare.wav"), 2048)
	writeFile(t, filepath.Join(first, "nested", "hihat.MP3"), 10)
	writeFile(t, filepath.Join(first, "notes.txt"), 10)
	writeFile(t, filepath.Join(second, "big hit.ogg"), 1500000)
	writeFile(t, filepath.Join(second, "kick.wav"), 10)

	clips, err := library.Scan(t.Context(), []string{first, second}, []string{".wav", "mp3", ".ogg"}, "")
	require.NoError(t, err)
	require.Len(t, clips, 4)
	require.Equal(t, []string{"big hit", "hihat", "Hit Snare", "kick"},
		[]string{clips[0].Name, clips[1].Name, clips[2].Name, clips[3].Name})
	require.Equal(t, filepath.Join(first, "nested", "hihat.MP3"), clips[1].Path)
	require.Equal(t, "1.5 MB", clips[0].HumanSize())

	hits, errHits := library.Scan(t.Context(), []string{first, second}, []string{".wav", ".ogg"}, "HIT")
	require.NoError(t, errHits)
	require.Len(t, hits, 2)
	require.Equal(t, "big hit", hits[0].Name)
	require.Equal(t, "Hit Snare", hits[1].Name)
	require.Equal(t, int64(2048), hits[1].Size)
}

func TestScanBadRoot(t *testing.T) {
	_, err := library.Scan(t.Context(), []string{filepath.Join(t.TempDir(), "missing")}, []string{".wav"}, "")
	require.ErrorIs(t, err, library.ErrRoot)

	file := filepath.Join(t.TempDir(), "clip.wav")
	writeFile(t, file, 1)
	_, err = library.Scan(t.Context(), []string{file}, []string{".wav"}, "")
	require.ErrorIs(t, err, library.ErrRoot)
}

func TestDemo(t *testing.T) {
	clips := library.Demo()
	require.Len(t, clips, 3)
	require.Equal(t, "Clip 1", clips[0].Name)
	require.Equal(t, "-", clips[0].HumanSize())
}
