package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen is a Surface writing straight into a tcell screen.
type Screen struct {
	screen tcell.Screen
	closed bool
}

func NewScreen(screen tcell.Screen) *Screen {
	return &Screen{screen: screen}
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) Print(x int, y int, text string, style lipgloss.Style) error {
	if s.closed {
		return ErrSurfaceClosed
	}

	width, height := s.screen.Size()
	if y < 0 || y >= height {
		return nil
	}

	cellStyle := CellStyle(style)

	for _, char := range text {
		charWidth := runewidth.RuneWidth(char)
		if charWidth == 0 {
			continue
		}

		if x+charWidth > width {
			break
		}

		if x >= 0 {
			s.screen.SetContent(x, y, char, nil, cellStyle)
		}

		x += charWidth
	}

	return nil
}

func (s *Screen) Clear() {
	if s.closed {
		return
	}

	s.screen.Clear()
}

func (s *Screen) Flush() error {
	if s.closed {
		return ErrSurfaceClosed
	}

	s.screen.Show()

	return nil
}

// Close finalises the underlying screen, restoring the terminal.
func (s *Screen) Close() {
	if s.closed {
		return
	}

	s.closed = true
	s.screen.Fini()
}

// CellStyle converts the colours and attributes of a lipgloss style to a tcell style.
func CellStyle(style lipgloss.Style) tcell.Style {
	cellStyle := tcell.StyleDefault

	if style.GetBold() {
		cellStyle = cellStyle.Bold(true)
	}

	if style.GetItalic() {
		cellStyle = cellStyle.Italic(true)
	}

	if style.GetUnderline() {
		cellStyle = cellStyle.Underline(true)
	}

	if style.GetReverse() {
		cellStyle = cellStyle.Reverse(true)
	}

	if color, ok := cellColor(style.GetForeground()); ok {
		cellStyle = cellStyle.Foreground(color)
	}

	if color, ok := cellColor(style.GetBackground()); ok {
		cellStyle = cellStyle.Background(color)
	}

	return cellStyle
}

func cellColor(color lipgloss.TerminalColor) (tcell.Color, bool) {
	var value string

	switch c := color.(type) {
	case lipgloss.Color:
		value = string(c)
	case lipgloss.AdaptiveColor:
		value = c.Dark
	default:
		return tcell.ColorDefault, false
	}

	if value == "" {
		return tcell.ColorDefault, false
	}

	if index, err := strconv.Atoi(value); err == nil {
		return tcell.PaletteColor(index), true
	}

	return tcell.GetColor(value), true
}
