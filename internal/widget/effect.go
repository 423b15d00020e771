package widget

import (
	"github.com/clipdeck/clipdeck/internal/geom"
	"github.com/clipdeck/clipdeck/internal/render"
	"github.com/clipdeck/clipdeck/internal/ui/input"
	"github.com/clipdeck/clipdeck/internal/ui/styles"
)

// SliderEffect is an Effect controlled by a single slider, drawn as a name line followed
// by the slider.
type SliderEffect struct {
	name   string
	slider *Slider
}

func NewSliderEffect(name string, state SliderState) *SliderEffect {
	return &SliderEffect{name: name, slider: NewSlider(state)}
}

// NewVolume plays a clip at a level picked from a range.
func NewVolume() *SliderEffect {
	return NewSliderEffect("Volume", MinMax(0.3, 0.5))
}

// NewPan positions a clip in the stereo field, 0.5 being centred.
func NewPan() *SliderEffect {
	return NewSliderEffect("Pan", Value(0.5))
}

func (e *SliderEffect) Name() string {
	return e.name
}

func (e *SliderEffect) Slider() *Slider {
	return e.slider
}

func (e *SliderEffect) Level() float64 {
	return e.slider.State().Level()
}

func (e *SliderEffect) Draw(surface render.Surface, rect geom.Rect, state State) (geom.Rect, error) {
	head := rect.Head()
	if err := surface.Print(head.X, head.Y, " "+e.name, styles.ForState(state)); err != nil {
		return geom.Rect{}, err
	}

	end, err := e.slider.Draw(surface, head.Down(), state)
	if err != nil {
		return geom.Rect{}, err
	}

	return head.To(end), nil
}

func (e *SliderEffect) HandleInput(event input.Event) bool {
	return e.slider.HandleInput(event)
}
