package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// State is the emphasis a parent assigns to a child for a single draw call.
type State int

const (
	StateNone State = iota
	StateActive
	StateSelected
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateSelected:
		return "selected"
	default:
		return "none"
	}
}

var (
	Accent = lipgloss.Color("#f4722b")

	Black  = lipgloss.Color("#111111")
	Gray   = lipgloss.Color("#3e3e3e")
	Grey   = lipgloss.Color("#8a8a8a")
	White  = lipgloss.Color("#cccccc")
	Green  = lipgloss.Color("#4d9a55")
	Yellow = lipgloss.Color("#ffd700")
	Blue   = lipgloss.Color("#5885a2")
	Red    = lipgloss.Color("#b8383b")
	Purple = lipgloss.Color("#8650ac")

	NoStyle       = lipgloss.NewStyle()
	ActiveStyle   = lipgloss.NewStyle().Foreground(Green).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(Yellow)

	Rule         = lipgloss.NewStyle().Foreground(Gray)
	Version      = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Info         = lipgloss.NewStyle().Foreground(Grey).Italic(true)
	HelpKey      = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	HelpDesc     = lipgloss.NewStyle().Foreground(White)
	ErrorMessage = lipgloss.NewStyle().Foreground(Red).Bold(true)

	// Logo is drawn glyph by glyph, each in its own colour.
	Logo = []LogoGlyph{
		{Text: "  ᑎ", Style: lipgloss.NewStyle().Foreground(Blue)},
		{Text: " ᑌ", Style: lipgloss.NewStyle().Foreground(Green)},
		{Text: " ∕", Style: lipgloss.NewStyle().Foreground(Yellow)},
		{Text: " ᑕ", Style: lipgloss.NewStyle().Foreground(Red)},
		{Text: " ᑢ  ", Style: lipgloss.NewStyle().Foreground(Purple)},
	}

	IconSpeaker = "🔈"
	IconPlaying = "🔊"

	GlyphRule      = "―"
	GlyphMin       = "◀"
	GlyphMax       = "▶"
	GlyphFill      = "━"
	GlyphValue     = "●"
	GlyphGutter    = "┃"
	GlyphGutterTee = "┣"
	GlyphHeaderBar = "—"
)

type LogoGlyph struct {
	Text  string
	Style lipgloss.Style
}

// ForState maps a selection state to the style its text is rendered with.
func ForState(state State) lipgloss.Style {
	switch state {
	case StateActive:
		return ActiveStyle
	case StateSelected:
		return SelectedStyle
	default:
		return NoStyle
	}
}

// Repeat returns glyph repeated count times, or nothing for a non positive count.
func Repeat(glyph string, count int) string {
	if count <= 0 {
		return ""
	}

	return strings.Repeat(glyph, count)
}
