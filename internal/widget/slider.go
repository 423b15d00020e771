package widget

import (
	"fmt"
	"math"

	"github.com/clipdeck/clipdeck/internal/geom"
	"github.com/clipdeck/clipdeck/internal/render"
	"github.com/clipdeck/clipdeck/internal/ui/input"
	"github.com/clipdeck/clipdeck/internal/ui/styles"
)

const (
	// SliderStep is how far Left and Right move a slider.
	SliderStep = 0.1
	// SliderScale is the number of cells one unit of a slider parameter spans.
	SliderScale = 10
	// SliderSpread is half the range a value expands to when toggled to min/max.
	SliderSpread = 0.1
	SliderMin    = 0.0
	SliderMax    = 1.0

	// Parameters are snapped to this many decimal places so repeated steps do not drift.
	sliderPrecision = 1e6
	sliderTolerance = 0.5 / sliderPrecision
)

type SliderKind int

const (
	KindMinMax SliderKind = iota
	KindValue
)

// SliderState is either a range (KindMinMax, Lower and Upper) or a single value (KindValue, Value).
type SliderState struct {
	Kind  SliderKind
	Lower float64
	Upper float64
	Value float64
}

func MinMax(lower float64, upper float64) SliderState {
	return SliderState{Kind: KindMinMax, Lower: snap(lower), Upper: snap(upper)}
}

func Value(value float64) SliderState {
	return SliderState{Kind: KindValue, Value: snap(value)}
}

// Toggle collapses a range to its midpoint, or expands a value to the range SliderSpread
// either side of it. Toggling twice only restores a range that was exactly 2*SliderSpread wide.
func (s SliderState) Toggle() SliderState {
	if s.Kind == KindMinMax {
		return Value((s.Lower + s.Upper) / 2)
	}

	return MinMax(s.Value-SliderSpread, s.Value+SliderSpread)
}

// Shift moves every bound by delta. Values are clamped to [SliderMin, SliderMax]; a range
// that would leave the limits stays where it is so its width is preserved.
func (s SliderState) Shift(delta float64) SliderState {
	if s.Kind == KindValue {
		return Value(s.Value + delta)
	}

	lower, upper := s.Lower+delta, s.Upper+delta
	if lower < SliderMin-sliderTolerance || upper > SliderMax+sliderTolerance {
		return s
	}

	return MinMax(lower, upper)
}

// Level is the value, or the midpoint of a range.
func (s SliderState) Level() float64 {
	if s.Kind == KindMinMax {
		return snap((s.Lower + s.Upper) / 2)
	}

	return s.Value
}

func (s SliderState) String() string {
	if s.Kind == KindMinMax {
		return fmt.Sprintf("MinMax(%g, %g)", s.Lower, s.Upper)
	}

	return fmt.Sprintf("Value(%g)", s.Value)
}

func snap(value float64) float64 {
	value = min(max(value, SliderMin), SliderMax)

	return math.Round(value*sliderPrecision) / sliderPrecision
}

// column is the offset in cells of a parameter from the start of the slider.
func column(value float64) int {
	return int(math.Round(value * SliderScale))
}

type Slider struct {
	state SliderState
}

func NewSlider(state SliderState) *Slider {
	return &Slider{state: state}
}

func (s *Slider) State() SliderState {
	return s.state
}

func (s *Slider) Draw(surface render.Surface, rect geom.Rect, state State) (geom.Rect, error) {
	row := rect.Head()
	if err := row.Require(SliderScale+1, 1); err != nil {
		return geom.Rect{}, err
	}

	style := styles.ForState(state)

	if err := surface.Print(row.X, row.Y, styles.Repeat(styles.GlyphRule, row.Width-2), styles.NoStyle); err != nil {
		return geom.Rect{}, err
	}

	switch s.state.Kind {
	case KindMinMax:
		lower := row.RightN(column(s.state.Lower))
		upper := row.RightN(column(s.state.Upper))

		if err := surface.Print(lower.X+1, row.Y, styles.Repeat(styles.GlyphFill, upper.X-lower.X-1), style); err != nil {
			return geom.Rect{}, err
		}

		if err := surface.Print(lower.X, row.Y, styles.GlyphMin, style); err != nil {
			return geom.Rect{}, err
		}

		if err := surface.Print(upper.X, row.Y, styles.GlyphMax, style); err != nil {
			return geom.Rect{}, err
		}
	case KindValue:
		marker := row.RightN(column(s.state.Value))
		if err := surface.Print(marker.X, row.Y, styles.GlyphValue, style); err != nil {
			return geom.Rect{}, err
		}
	}

	return row, nil
}

func (s *Slider) HandleInput(event input.Event) bool {
	switch {
	case event.Is(input.Right):
		s.state = s.state.Shift(SliderStep)
	case event.Is(input.Left):
		s.state = s.state.Shift(-SliderStep)
	case event.Is(input.Toggle):
		s.state = s.state.Toggle()
	default:
		return false
	}

	return true
}
