package widget

import (
	"fmt"

	"github.com/clipdeck/clipdeck/internal/geom"
	"github.com/clipdeck/clipdeck/internal/library"
	"github.com/clipdeck/clipdeck/internal/render"
	"github.com/clipdeck/clipdeck/internal/ui/input"
	"github.com/clipdeck/clipdeck/internal/ui/styles"
	"github.com/muesli/reflow/truncate"
)

// Clip is a playable sound with its effects listed underneath it.
type Clip struct {
	entry   library.Clip
	effects *Children[Effect]
}

// NewClip builds a clip widget. Without any effects a Volume and a Pan effect are attached.
func NewClip(entry library.Clip, effects ...Effect) (*Clip, error) {
	if len(effects) == 0 {
		effects = []Effect{NewVolume(), NewPan()}
	}

	children, err := NewChildren(effects...)
	if err != nil {
		return nil, err
	}

	return &Clip{entry: entry, effects: children}, nil
}

func (c *Clip) Name() string {
	return c.entry.Name
}

func (c *Clip) Entry() library.Clip {
	return c.entry
}

func (c *Clip) Effects() *Children[Effect] {
	return c.effects
}

// Levels returns the level of every effect that has one, keyed by effect name.
func (c *Clip) Levels() map[string]float64 {
	levels := make(map[string]float64, c.effects.Len())

	for index := range c.effects.Len() {
		effect := c.effects.At(index)
		if leveler, ok := effect.(Leveler); ok {
			levels[effect.Name()] = leveler.Level()
		}
	}

	return levels
}

func (c *Clip) Draw(surface render.Surface, rect geom.Rect, state State) (geom.Rect, error) {
	head := rect.Head()
	style := styles.ForState(state)

	title := fmt.Sprintf("%s %s %s", styles.GlyphGutter, styles.IconSpeaker, c.entry.Name)
	title = truncate.StringWithTail(title, uint(max(head.Width, 0)), "…") //nolint:gosec

	if err := surface.Print(head.X, head.Y, title, style); err != nil {
		return geom.Rect{}, err
	}

	consumed, err := c.effects.Draw(surface, head.Down().Right(), state)
	if err != nil {
		return geom.Rect{}, err
	}

	for _, used := range consumed {
		if errTee := surface.Print(head.X, used.Y, styles.GlyphGutterTee, style); errTee != nil {
			return geom.Rect{}, errTee
		}

		for y := used.Y + 1; y < used.Bottom(); y++ {
			if errBar := surface.Print(head.X, y, styles.GlyphGutter, style); errBar != nil {
				return geom.Rect{}, errBar
			}
		}
	}

	return head.To(consumed[len(consumed)-1].Left()), nil
}

// HandleInput gives the active effect the first chance at the event. Up and Down that the
// effect leaves alone move between effects, until the first or last one is reached.
func (c *Clip) HandleInput(event input.Event) bool {
	if c.effects.HandleInput(event) {
		return true
	}

	switch {
	case event.Is(input.Down):
		return c.effects.Next()
	case event.Is(input.Up):
		return c.effects.Prev()
	default:
		return false
	}
}
