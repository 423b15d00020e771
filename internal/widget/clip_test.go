package widget_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/clipdeck/clipdeck/internal/geom"
	"github.com/clipdeck/clipdeck/internal/library"
	"github.com/clipdeck/clipdeck/internal/render"
	"github.com/clipdeck/clipdeck/internal/ui/styles"
	"github.com/clipdeck/clipdeck/internal/widget"
	"github.com/stretchr/testify/require"
)

func TestVolumeDraw(t *testing.T) {
	canvas := render.NewCanvas(20, 3)
	volume := widget.NewVolume()

	used := drawn(t, canvas, volume, geom.New(0, 0, 20, 1), widget.StateActive)
	require.Equal(t, geom.New(0, 0, 20, 2), used)
	require.Equal(t, " Volume", canvas.Line(0))
	require.Equal(t, '◀', []rune(canvas.Line(1))[3])
	require.Equal(t, styles.Green, canvas.StyleAt(1, 0).GetForeground())
	require.Equal(t, "Volume", volume.Name())
	require.InDelta(t, 0.4, volume.Level(), 1e-9)
}

func newClip(t *testing.T, name string) *widget.Clip {
	t.Helper()

	clip, err := widget.NewClip(library.Clip{Name: name, Path: "/clips/" + name + ".wav"})
	require.NoError(t, err)

	return clip
}

func TestClipDraw(t *testing.T) {
	canvas := render.NewCanvas(24, 6)
	clip := newClip(t, "kick")

	used := drawn(t, canvas, clip, geom.New(0, 0, 24, 1), widget.StateActive)
	require.Equal(t, geom.New(0, 0, 24, 5), used)
	require.Equal(t, "┃ 🔈 kick", canvas.Line(0))
	require.Equal(t, "┣ Volume", canvas.Line(1))
	require.Equal(t, '┃', []rune(canvas.Line(2))[0])
	require.Equal(t, "┣ Pan", canvas.Line(3))
	require.Equal(t, '●', []rune(canvas.Line(4))[1+5])
	require.Empty(t, canvas.Line(5))

	// The first effect is active, the second is not.
	require.Equal(t, styles.Green, canvas.StyleAt(2, 1).GetForeground())
	require.Equal(t, lipgloss.NoColor{}, canvas.StyleAt(2, 3).GetForeground())

	drawn(t, canvas, clip, geom.New(0, 0, 24, 1), widget.StateNone)
	require.Equal(t, lipgloss.NoColor{}, canvas.StyleAt(0, 0).GetForeground())
	require.Equal(t, lipgloss.NoColor{}, canvas.StyleAt(2, 1).GetForeground())
}

func TestClipTitleTruncated(t *testing.T) {
	canvas := render.NewCanvas(12, 6)
	clip := newClip(t, "a very long clip name")

	drawn(t, canvas, clip, geom.New(0, 0, 12, 1), widget.StateNone)
	require.Equal(t, "┃ 🔈 a very…", canvas.Line(0))
}

func TestClipInput(t *testing.T) {
	clip := newClip(t, "snare")
	effects := clip.Effects()

	require.True(t, clip.HandleInput(press("right")))
	require.InDelta(t, 0.5, clip.Levels()["Volume"], 1e-9)

	require.False(t, clip.HandleInput(press("up")), "already on the first effect")
	require.True(t, clip.HandleInput(press("down")))
	require.Equal(t, 1, effects.ActiveIndex())
	require.False(t, clip.HandleInput(press("down")), "already on the last effect")

	require.True(t, clip.HandleInput(press("left")))
	require.InDelta(t, 0.4, clip.Levels()["Pan"], 1e-9)
	require.InDelta(t, 0.5, clip.Levels()["Volume"], 1e-9, "only the active effect changes")

	require.False(t, clip.HandleInput(press("enter")))
	require.False(t, clip.HandleInput(press("x")))
}

func TestClipCustomEffects(t *testing.T) {
	clip, err := widget.NewClip(library.Clip{Name: "solo"}, widget.NewSliderEffect("Gain", widget.Value(0.9)))
	require.NoError(t, err)
	require.Equal(t, 1, clip.Effects().Len())
	require.Equal(t, map[string]float64{"Gain": 0.9}, clip.Levels())
}
