package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	// text is empty for the trailing half of a double width glyph.
	text  string
	style int
}

// Canvas is an in memory Surface. It backs the bubbletea driver, whose View wants the whole
// frame as a string, and is used directly by tests for headless rendering.
type Canvas struct {
	width  int
	height int
	back   []cell
	styles []lipgloss.Style
	front  []cell
	shown  []lipgloss.Style
	closed bool
}

func NewCanvas(width int, height int) *Canvas {
	canvas := &Canvas{width: max(width, 0), height: max(height, 0)}
	canvas.Clear()
	canvas.front = make([]cell, len(canvas.back))
	copy(canvas.front, canvas.back)
	canvas.shown = canvas.styles

	return canvas
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Resize drops both buffers.
func (c *Canvas) Resize(width int, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
	c.Clear()
	c.front = make([]cell, len(c.back))
	copy(c.front, c.back)
	c.shown = c.styles
}

func (c *Canvas) Clear() {
	c.styles = []lipgloss.Style{lipgloss.NewStyle()}
	c.back = make([]cell, c.width*c.height)

	for i := range c.back {
		c.back[i] = cell{text: " "}
	}
}

func (c *Canvas) Print(x int, y int, text string, style lipgloss.Style) error {
	if c.closed {
		return ErrSurfaceClosed
	}

	if y < 0 || y >= c.height {
		return nil
	}

	c.styles = append(c.styles, style)
	styleID := len(c.styles) - 1
	row := c.back[y*c.width : (y+1)*c.width]
	last := -1

	for _, char := range text {
		width := runewidth.RuneWidth(char)
		if width == 0 {
			// Combining marks attach to the previous glyph.
			if last >= 0 {
				row[last].text += string(char)
			}

			continue
		}

		if x+width > c.width {
			break
		}

		if x >= 0 {
			row[x] = cell{text: string(char), style: styleID}
			last = x

			if width == 2 {
				row[x+1] = cell{style: styleID}
			}
		}

		x += width
	}

	return nil
}

func (c *Canvas) Flush() error {
	if c.closed {
		return ErrSurfaceClosed
	}

	c.front = make([]cell, len(c.back))
	copy(c.front, c.back)
	c.shown = c.styles

	return nil
}

// Close makes any further writes fail with ErrSurfaceClosed.
func (c *Canvas) Close() {
	c.closed = true
}

// String renders the last flushed frame, one styled run per change of style.
func (c *Canvas) String() string {
	lines := make([]string, c.height)

	for y := range c.height {
		var (
			line    strings.Builder
			run     strings.Builder
			runFrom = -1
		)

		emit := func() {
			if run.Len() == 0 {
				return
			}

			if runFrom <= 0 {
				line.WriteString(run.String())
			} else {
				line.WriteString(c.shown[runFrom].Render(run.String()))
			}

			run.Reset()
		}

		for _, current := range c.front[y*c.width : (y+1)*c.width] {
			if current.text == "" {
				continue
			}

			if current.style != runFrom {
				emit()
				runFrom = current.style
			}

			run.WriteString(current.text)
		}

		emit()
		lines[y] = line.String()
	}

	return strings.Join(lines, "\n")
}

// Line returns the plain text of row y of the last flushed frame with trailing blanks removed.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}

	var line strings.Builder
	for _, current := range c.front[y*c.width : (y+1)*c.width] {
		line.WriteString(current.text)
	}

	return strings.TrimRight(line.String(), " ")
}

// StyleAt returns the style of the cell at x, y of the last flushed frame.
func (c *Canvas) StyleAt(x int, y int) lipgloss.Style {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return lipgloss.NewStyle()
	}

	return c.shown[c.front[y*c.width+x].style]
}
