// Package scene is the full screen both drivers render: header, the clip tree and the info
// footer, or the key help in place of the tree.
package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/clipdeck/clipdeck/internal/config"
	"github.com/clipdeck/clipdeck/internal/geom"
	"github.com/clipdeck/clipdeck/internal/render"
	"github.com/clipdeck/clipdeck/internal/ui/input"
	"github.com/clipdeck/clipdeck/internal/ui/styles"
	"github.com/clipdeck/clipdeck/internal/widget"
	"github.com/mattn/go-runewidth"
)

type Scene struct {
	deck     *widget.Search
	keys     input.Map
	layout   config.Layout
	version  string
	showHelp bool
}

func New(deck *widget.Search, userConfig config.Config, version string) *Scene {
	return &Scene{
		deck:    deck,
		keys:    input.FromConfig(userConfig.Keys),
		layout:  userConfig.Layout,
		version: version,
	}
}

// Apply takes over the parts of a reloaded config that can change while running.
func (s *Scene) Apply(userConfig config.Config) {
	s.keys = input.FromConfig(userConfig.Keys)
	s.layout = userConfig.Layout
	slog.Info("Config reloaded")
}

func (s *Scene) Keys() input.Map {
	return s.keys
}

func (s *Scene) ShowingHelp() bool {
	return s.showHelp
}

// Key processes one raw key press and reports whether the app should quit.
func (s *Scene) Key(raw fmt.Stringer) bool {
	switch {
	case key.Matches(raw, s.keys.Quit):
		return true
	case key.Matches(raw, s.keys.Help):
		s.showHelp = !s.showHelp

		return false
	case s.showHelp:
		return false
	}

	event := s.keys.Resolve(raw)
	if !s.deck.HandleInput(event) {
		slog.Debug("Unhandled input", slog.String("key", event.Key), slog.String("action", event.Action.String()))
	}

	return false
}

// Root is the rect the tree is drawn at on a surface width cells wide.
func (s *Scene) Root(width int) geom.Rect {
	return geom.New(s.layout.X, s.layout.Y, min(s.layout.Width, width-s.layout.X), 1)
}

// Draw renders the whole screen. A tree that does not fit is replaced by a notice, any
// other failure is returned.
func (s *Scene) Draw(surface render.Surface) error {
	width, height := surface.Size()

	if err := s.drawHeader(surface, width); err != nil {
		return err
	}

	if s.showHelp {
		if err := s.drawHelp(surface, s.Root(width)); err != nil {
			return err
		}
	} else if _, err := s.deck.Draw(surface, s.Root(width), widget.StateActive); err != nil {
		if !errors.Is(err, geom.ErrLayout) {
			return err
		}

		if errSmall := s.drawTooSmall(surface, width); errSmall != nil {
			return errSmall
		}
	}

	return s.drawInfo(surface, geom.New(0, height-1, width, 1))
}

func (s *Scene) drawTooSmall(surface render.Surface, width int) error {
	surface.Clear()

	if err := s.drawHeader(surface, width); err != nil {
		return err
	}

	return surface.Print(2, 2, "Window too small", styles.ErrorMessage)
}

func (s *Scene) drawHeader(surface render.Surface, width int) error {
	if err := surface.Print(0, 0, styles.Repeat(styles.GlyphHeaderBar, width), styles.Rule); err != nil {
		return err
	}

	cursor := geom.New(2, 0, width, 1)
	for _, glyph := range styles.Logo {
		if err := surface.Print(cursor.X, cursor.Y, glyph.Text, glyph.Style); err != nil {
			return err
		}

		cursor = cursor.RightN(runewidth.StringWidth(glyph.Text))
	}

	version := fmt.Sprintf(" v: %s ", s.version)

	return surface.Print(width-runewidth.StringWidth(version)-2, 0, version, styles.Version)
}

func (s *Scene) drawInfo(surface render.Surface, rect geom.Rect) error {
	cursor := rect

	for _, binding := range s.keys.Help() {
		help := binding.Help()
		if err := surface.Print(cursor.X, cursor.Y, help.Key, styles.HelpKey); err != nil {
			return err
		}

		cursor = cursor.RightN(runewidth.StringWidth(help.Key) + 1)
		if err := surface.Print(cursor.X, cursor.Y, help.Desc, styles.HelpDesc); err != nil {
			return err
		}

		cursor = cursor.RightN(runewidth.StringWidth(help.Desc) + 2)
	}

	clips := s.deck.Clips()
	icon := styles.IconSpeaker
	if clips.IsSelected(clips.ActiveIndex()) {
		icon = styles.IconPlaying
	}

	clip := clips.Active().Entry()
	details := fmt.Sprintf("│ %s %s · %s", icon, clip.Name, clip.HumanSize())

	return surface.Print(cursor.X, cursor.Y, details, styles.Info)
}

func (s *Scene) drawHelp(surface render.Surface, rect geom.Rect) error {
	row := rect.Head()
	if err := surface.Print(row.X, row.Y, "Keys", styles.ActiveStyle); err != nil {
		return err
	}

	for _, binding := range s.keys.FullHelp() {
		row = row.Down()
		help := binding.Help()
		line := fmt.Sprintf("  %-6s %-14s %s", help.Key, strings.Join(binding.Keys(), ", "), help.Desc)

		if err := surface.Print(row.X, row.Y, line, styles.HelpDesc); err != nil {
			return err
		}
	}

	return nil
}
