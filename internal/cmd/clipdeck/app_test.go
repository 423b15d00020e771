package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/clipdeck/clipdeck/internal/config"
	"github.com/clipdeck/clipdeck/internal/library"
	"github.com/clipdeck/clipdeck/internal/widget"
	"github.com/stretchr/testify/require"
)

func TestClips(t *testing.T) {
	demo, err := clips(t.Context(), config.Config{})
	require.NoError(t, err)
	require.Equal(t, library.Demo(), demo)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "kick.wav"), []byte{1}, 0o600))

	found, errFound := clips(t.Context(), config.Config{Library: []string{root}, Extensions: []string{".wav"}})
	require.NoError(t, errFound)
	require.Len(t, found, 1)
	require.Equal(t, "kick", found[0].Name)

	_, errNone := clips(t.Context(), config.Config{Library: []string{root}, Extensions: []string{".wav"}, Query: "snare"})
	require.ErrorIs(t, errNone, errNoClips)
}

func TestNewDeck(t *testing.T) {
	deck, err := newDeck("clip", library.Demo())
	require.NoError(t, err)
	require.Equal(t, "clip", deck.Query())
	require.Equal(t, 3, deck.Clips().Len())
	require.Equal(t, []string{"Volume", "Pan"}, []string{
		deck.Active().Effects().At(0).Name(),
		deck.Active().Effects().At(1).Name(),
	})

	_, errEmpty := newDeck("", nil)
	require.ErrorIs(t, errEmpty, widget.ErrNoChildren)
}
