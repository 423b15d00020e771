// Package render defines the output surface the widget tree draws onto, together with the
// frame scope drivers use to render one complete frame.
package render

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ErrRender marks a frame whose draw failed part way. The frame is still flushed.
	ErrRender = errors.New("render error")
	// ErrSurfaceClosed is fatal, the surface can no longer be written.
	ErrSurfaceClosed = errors.New("surface closed")
)

// Surface is an absolutely positioned, styled text sink with an explicit commit step.
type Surface interface {
	Size() (width int, height int)
	// Print writes text starting at column x of row y. Output falling outside the surface
	// is clipped.
	Print(x int, y int, text string, style lipgloss.Style) error
	// Clear resets the back buffer.
	Clear()
	// Flush commits the back buffer.
	Flush() error
}

// Frame renders a single frame. The back buffer is cleared, draw runs and the result is
// flushed. The flush happens even when draw fails, whatever was drawn up to the failure is
// committed and the error is returned joined with ErrRender. ErrSurfaceClosed is the one
// exception: nothing is flushed and it is handed back as is so the driver can stop.
func Frame(surface Surface, draw func(Surface) error) error {
	surface.Clear()

	errDraw := draw(surface)
	if errors.Is(errDraw, ErrSurfaceClosed) {
		return errDraw
	}

	if errFlush := surface.Flush(); errFlush != nil {
		if errors.Is(errFlush, ErrSurfaceClosed) {
			return errors.Join(errDraw, errFlush)
		}

		return errors.Join(errDraw, errFlush, ErrRender)
	}

	if errDraw != nil {
		return errors.Join(errDraw, ErrRender)
	}

	return nil
}
