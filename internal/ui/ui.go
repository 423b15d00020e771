package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clipdeck/clipdeck/internal/config"
	"github.com/clipdeck/clipdeck/internal/ui/scene"
	"github.com/clipdeck/clipdeck/internal/widget"
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, deck *widget.Search, userConfig config.Config, buildVersion string) *UI {
	return &UI{
		program: tea.NewProgram(
			newRootModel(scene.New(deck, userConfig, buildVersion)),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(userConfig.FPS)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

// Send forwards msg to the running program. A config.Config is applied as a live reload.
func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
