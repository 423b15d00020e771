package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clipdeck/clipdeck/internal/config"
	"github.com/clipdeck/clipdeck/internal/render"
	"github.com/clipdeck/clipdeck/internal/ui/scene"
)

// rootModel is the top level model for the ui side of the app. Frames are drawn into a
// canvas and handed to bubbletea as a string.
type rootModel struct {
	scene  *scene.Scene
	canvas *render.Canvas
	height int
	width  int
}

func newRootModel(view *scene.Scene) *rootModel {
	return &rootModel{scene: view, canvas: render.NewCanvas(0, 0)}
}

func (m *rootModel) Init() tea.Cmd {
	return tea.SetWindowTitle("clipdeck")
}

func (m *rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.canvas.Resize(m.width, m.height)
	case config.Config:
		m.scene.Apply(msg)
	case tea.KeyMsg:
		if !m.isInitialized() {
			return m, nil
		}

		if m.scene.Key(msg) {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders a frame. When drawing fails the partial frame is shown and the error logged.
func (m *rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	if err := render.Frame(m.canvas, m.scene.Draw); err != nil {
		slog.Error("Failed to render frame", slog.String("error", err.Error()))
	}

	return m.canvas.String()
}

func (m *rootModel) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

// logMsg is useful for debugging events. Tail the log file ~/.config/clipdeck/clipdeck.log
func logMsg(inMsg tea.Msg) {
	switch inMsg.(type) {
	case tea.KeyMsg, tea.WindowSizeMsg, config.Config:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
