package widget_test

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/clipdeck/clipdeck/internal/geom"
	"github.com/clipdeck/clipdeck/internal/library"
	"github.com/clipdeck/clipdeck/internal/render"
	"github.com/clipdeck/clipdeck/internal/ui/styles"
	"github.com/clipdeck/clipdeck/internal/widget"
	"github.com/stretchr/testify/require"
)

type fakePlayer struct {
	played  []string
	stopped []string
	levels  map[string]float64
	failing error
}

func (p *fakePlayer) Play(clip library.Clip, levels map[string]float64) error {
	if p.failing != nil {
		return p.failing
	}

	p.played = append(p.played, clip.Name)
	p.levels = levels

	return nil
}

func (p *fakePlayer) Stop(clip library.Clip) error {
	p.stopped = append(p.stopped, clip.Name)

	return nil
}

func newSearch(t *testing.T, player *fakePlayer) *widget.Search {
	t.Helper()

	search, err := widget.NewSearch("hit", player, newClip(t, "one"), newClip(t, "two"), newClip(t, "three"))
	require.NoError(t, err)

	return search
}

func TestSearchEmpty(t *testing.T) {
	_, err := widget.NewSearch("nothing", nil)
	require.ErrorIs(t, err, widget.ErrNoChildren)
}

func TestSearchDraw(t *testing.T) {
	canvas := render.NewCanvas(30, 20)
	search := newSearch(t, &fakePlayer{})

	used := drawn(t, canvas, search, geom.New(2, 1, 26, 1), widget.StateActive)
	require.Equal(t, geom.New(2, 1, 26, 1+3*5), used)
	require.Equal(t, "  Search: hit", canvas.Line(1))
	require.Equal(t, "  ┃ 🔈 one", canvas.Line(2))
	require.Equal(t, "  ┃ 🔈 two", canvas.Line(7))
	require.Equal(t, "  ┃ 🔈 three", canvas.Line(12))
	require.Empty(t, canvas.Line(17))

	require.Equal(t, styles.Green, canvas.StyleAt(2, 2).GetForeground())
	require.Equal(t, lipgloss.NoColor{}, canvas.StyleAt(2, 7).GetForeground())
}

func TestSearchNavigation(t *testing.T) {
	search := newSearch(t, &fakePlayer{})

	require.False(t, search.HandleInput(press("up")), "nothing above the first clip")
	require.True(t, search.HandleInput(press("down")), "moves to the second effect of the first clip")
	require.Equal(t, 0, search.Clips().ActiveIndex())
	require.True(t, search.HandleInput(press("down")), "moves on to the second clip")
	require.Equal(t, "two", search.Active().Name())
	require.True(t, search.HandleInput(press("down")))
	require.True(t, search.HandleInput(press("down")))
	require.Equal(t, "three", search.Active().Name())
	require.True(t, search.HandleInput(press("down")))
	require.False(t, search.HandleInput(press("down")), "bottom of the tree")
	require.True(t, search.HandleInput(press("up")))
	require.True(t, search.HandleInput(press("up")))
	require.Equal(t, "two", search.Active().Name())
	require.False(t, search.HandleInput(press("x")))
}

func TestSearchRoutesToActiveClipOnly(t *testing.T) {
	search := newSearch(t, &fakePlayer{})
	require.NoError(t, search.Clips().SetActive(1))

	require.True(t, search.HandleInput(press("right")))
	require.InDelta(t, 0.4, search.Clips().At(0).Levels()["Volume"], 1e-9)
	require.InDelta(t, 0.5, search.Clips().At(1).Levels()["Volume"], 1e-9)
	require.InDelta(t, 0.4, search.Clips().At(2).Levels()["Volume"], 1e-9)
}

func TestSearchPlay(t *testing.T) {
	player := &fakePlayer{}
	search := newSearch(t, player)
	canvas := render.NewCanvas(30, 20)

	require.NoError(t, search.Clips().SetActive(1))
	require.True(t, search.HandleInput(press("enter")))
	require.Equal(t, []string{"two"}, player.played)
	require.InDelta(t, 0.4, player.levels["Volume"], 1e-9)
	require.InDelta(t, 0.5, player.levels["Pan"], 1e-9)
	require.Equal(t, []int{1}, search.Playing())

	// The playing clip keeps its emphasis while another clip is active.
	require.True(t, search.HandleInput(press("up")))
	drawn(t, canvas, search, geom.New(0, 0, 30, 1), widget.StateActive)
	require.Equal(t, styles.Green, canvas.StyleAt(0, 1).GetForeground())
	require.Equal(t, styles.Yellow, canvas.StyleAt(0, 6).GetForeground())
	require.Equal(t, lipgloss.NoColor{}, canvas.StyleAt(0, 11).GetForeground())

	// Without an active root nothing is emphasised.
	drawn(t, canvas, search, geom.New(0, 0, 30, 1), widget.StateSelected)
	require.Equal(t, lipgloss.NoColor{}, canvas.StyleAt(0, 1).GetForeground())
	require.Equal(t, lipgloss.NoColor{}, canvas.StyleAt(0, 6).GetForeground())

	require.True(t, search.HandleInput(press("down")))
	require.True(t, search.HandleInput(press("down")))
	require.Equal(t, "two", search.Active().Name())
	require.True(t, search.HandleInput(press("enter")))
	require.Equal(t, []string{"two"}, player.stopped)
	require.Empty(t, search.Playing())
}

func TestSearchPlayFailure(t *testing.T) {
	player := &fakePlayer{failing: errors.New("no device")}
	search := newSearch(t, player)

	require.True(t, search.HandleInput(press("enter")))
	require.Empty(t, search.Playing())
}
