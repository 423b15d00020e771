package widget

import (
	"errors"
	"log/slog"

	"github.com/clipdeck/clipdeck/internal/audio"
	"github.com/clipdeck/clipdeck/internal/geom"
	"github.com/clipdeck/clipdeck/internal/render"
	"github.com/clipdeck/clipdeck/internal/ui/input"
	"github.com/clipdeck/clipdeck/internal/ui/styles"
)

// Search is the root of the tree: the clips matching a query. Clips that are playing are
// kept in the selection so they stand out while browsing.
type Search struct {
	query  string
	clips  *Children[*Clip]
	player audio.Player
}

func NewSearch(query string, player audio.Player, clips ...*Clip) (*Search, error) {
	children, err := NewChildren(clips...)
	if err != nil {
		return nil, err
	}

	if player == nil {
		player = audio.NewLogPlayer()
	}

	return &Search{query: query, clips: children, player: player}, nil
}

func (s *Search) Query() string {
	return s.query
}

func (s *Search) Clips() *Children[*Clip] {
	return s.clips
}

func (s *Search) Active() *Clip {
	return s.clips.Active()
}

// Playing returns the indices of the clips currently playing.
func (s *Search) Playing() []int {
	return s.clips.Selected()
}

func (s *Search) Draw(surface render.Surface, rect geom.Rect, state State) (geom.Rect, error) {
	head := rect.Head()

	title := "Search"
	if s.query != "" {
		title += ": " + s.query
	}

	if err := surface.Print(head.X, head.Y, title, styles.ForState(state)); err != nil {
		return geom.Rect{}, err
	}

	consumed, err := s.clips.Draw(surface, head.Down(), state)
	if err != nil {
		return geom.Rect{}, err
	}

	combined, _ := geom.Combined(append([]geom.Rect{head}, consumed...)...)

	return combined, nil
}

func (s *Search) HandleInput(event input.Event) bool {
	if s.clips.HandleInput(event) {
		return true
	}

	switch {
	case event.Is(input.Down):
		return s.clips.Next()
	case event.Is(input.Up):
		return s.clips.Prev()
	case event.Is(input.Play):
		s.togglePlay()

		return true
	default:
		return false
	}
}

func (s *Search) togglePlay() {
	index := s.clips.ActiveIndex()
	clip := s.clips.Active()

	if s.clips.IsSelected(index) {
		if err := s.player.Stop(clip.Entry()); err != nil && !errors.Is(err, audio.ErrNotPlaying) {
			slog.Error("Failed to stop clip", slog.String("clip", clip.Name()), slog.String("error", err.Error()))

			return
		}

		s.clips.Deselect(index)

		return
	}

	if err := s.player.Play(clip.Entry(), clip.Levels()); err != nil {
		slog.Error("Failed to play clip", slog.String("clip", clip.Name()), slog.String("error", err.Error()))

		return
	}

	if err := s.clips.Select(index); err != nil {
		slog.Error("Failed to select clip", slog.String("error", err.Error()))
	}
}
