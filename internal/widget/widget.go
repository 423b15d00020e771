// Package widget implements the soundboard widget tree. Layout and input routing happen in
// the same recursive walk: every Draw reports the space it consumed so the caller can stack
// the next sibling, and HandleInput follows the single active path down to a leaf.
package widget

import (
	"errors"

	"github.com/clipdeck/clipdeck/internal/geom"
	"github.com/clipdeck/clipdeck/internal/render"
	"github.com/clipdeck/clipdeck/internal/ui/input"
	"github.com/clipdeck/clipdeck/internal/ui/styles"
)

var (
	ErrNoChildren = errors.New("container needs at least one child")
	ErrIndex      = errors.New("child index out of range")
)

type State = styles.State

const (
	StateNone     = styles.StateNone
	StateActive   = styles.StateActive
	StateSelected = styles.StateSelected
)

// Drawable renders itself onto a surface. Output is confined to rows at or after rect.Y
// and the returned rect covers every row the widget and its descendants used.
type Drawable interface {
	Draw(surface render.Surface, rect geom.Rect, state State) (geom.Rect, error)
}

// Interactive consumes input. Returning false hands the event back to the caller, which
// may interpret it itself.
type Interactive interface {
	HandleInput(event input.Event) bool
}

type Widget interface {
	Drawable
	Interactive
}

// Effect is a named audio parameter control attached to a clip.
type Effect interface {
	Widget
	Name() string
}

// Leveler is implemented by effects that expose a single playback level.
type Leveler interface {
	Level() float64
}
