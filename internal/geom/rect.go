// Package geom implements the terminal cell rectangle used both as a draw target and as
// the report of how much space a draw consumed.
package geom

import (
	"errors"
	"fmt"
)

var ErrLayout = errors.New("layout error")

// Rect is an axis aligned region of terminal cells. It is a value type, every combinator
// returns a new Rect. Combinators clamp instead of letting a dimension go negative.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func New(x int, y int, width int, height int) Rect {
	return Rect{X: max(x, 0), Y: max(y, 0), Width: max(width, 0), Height: max(height, 0)}
}

// Down moves the origin below the rect and resets the height to a single row.
func (r Rect) Down() Rect {
	return Rect{X: r.X, Y: r.Y + r.Height, Width: r.Width, Height: 1}
}

func (r Rect) Right() Rect {
	return r.RightN(1)
}

// RightN shifts the origin n columns right, shrinking the width by the same amount. Shifts
// past the available width stop at the right edge.
func (r Rect) RightN(n int) Rect {
	n = min(max(n, 0), r.Width)

	return Rect{X: r.X + n, Y: r.Y, Width: r.Width - n, Height: r.Height}
}

// Left is the inverse of Right. At column 0 there is nothing to grow into and the rect is
// returned unchanged.
func (r Rect) Left() Rect {
	if r.X == 0 {
		return r
	}

	return Rect{X: r.X - 1, Y: r.Y, Width: r.Width + 1, Height: r.Height}
}

// To extends the vertical span of r to also cover other, keeping r's origin and taking
// other's width.
func (r Rect) To(other Rect) Rect {
	return Rect{X: r.X, Y: r.Y, Width: other.Width, Height: max(other.Bottom()-r.Y, 0)}
}

// Next is the stacking point for the following sibling.
func (r Rect) Next() Rect {
	return Rect{X: r.X, Y: r.Bottom(), Width: r.Width, Height: r.Height}
}

// Head returns the first row of r as a single row rect. Widgets draw from the head of the
// target they are handed, the target height is only a hint.
func (r Rect) Head() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: 1}
}

// End returns the last row of r as a single row rect.
func (r Rect) End() Rect {
	return Rect{X: r.X, Y: r.Y + max(r.Height-1, 0), Width: r.Width, Height: 1}
}

func (r Rect) Bottom() int {
	return r.Y + r.Height
}

func (r Rect) Edge() int {
	return r.X + r.Width
}

func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Rows returns the half-open row range [first, end) covered by r.
func (r Rect) Rows() (int, int) {
	return r.Y, r.Bottom()
}

// Overlaps reports whether the row ranges of r and other intersect.
func (r Rect) Overlaps(other Rect) bool {
	first, end := r.Rows()
	otherFirst, otherEnd := other.Rows()

	return first < end && otherFirst < otherEnd && first < otherEnd && otherFirst < end
}

// Require fails with ErrLayout when r is smaller than width x height.
func (r Rect) Require(width int, height int) error {
	if r.Width < width || r.Height < height {
		return errors.Join(fmt.Errorf("need %dx%d, have %s", width, height, r), ErrLayout)
	}

	return nil
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Combined returns the bounding rect running from the first rect's origin through the
// extent of the last. The second return value is false for an empty sequence.
func Combined(rects ...Rect) (Rect, bool) {
	if len(rects) == 0 {
		return Rect{}, false
	}

	first := rects[0]
	last := rects[len(rects)-1]
	edge := first.Edge()

	for _, rect := range rects[1:] {
		edge = max(edge, rect.Edge())
	}

	return Rect{
		X:      first.X,
		Y:      first.Y,
		Width:  edge - first.X,
		Height: max(last.Bottom()-first.Y, 0),
	}, true
}
