// Package term runs the app directly on a tcell screen, without bubbletea in between.
package term

import (
	"context"
	"errors"
	"log/slog"

	"github.com/clipdeck/clipdeck/internal/config"
	"github.com/clipdeck/clipdeck/internal/render"
	"github.com/clipdeck/clipdeck/internal/ui/input"
	"github.com/clipdeck/clipdeck/internal/ui/scene"
	"github.com/gdamore/tcell/v2"
)

var errScreenInit = errors.New("failed to initialize screen")

type Driver struct {
	screen  tcell.Screen
	surface *render.Screen
	scene   *scene.Scene
}

// New wraps an already initialised screen.
func New(screen tcell.Screen, view *scene.Scene) *Driver {
	return &Driver{screen: screen, surface: render.NewScreen(screen), scene: view}
}

// Open creates and initialises a screen for the current terminal.
func Open(view *scene.Scene) (*Driver, error) {
	screen, errScreen := tcell.NewScreen()
	if errScreen != nil {
		return nil, errors.Join(errScreen, errScreenInit)
	}

	if errInit := screen.Init(); errInit != nil {
		return nil, errors.Join(errInit, errScreenInit)
	}

	return New(screen, view), nil
}

// Close restores the terminal.
func (d *Driver) Close() {
	d.surface.Close()
}

// Draw renders one frame. A failed frame is logged and shown as far as it got.
func (d *Driver) Draw() error {
	err := render.Frame(d.surface, d.scene.Draw)
	if err == nil {
		return nil
	}

	if errors.Is(err, render.ErrSurfaceClosed) {
		return err
	}

	slog.Error("Failed to render frame", slog.String("error", err.Error()))

	return nil
}

// Step handles a single terminal event and redraws. It reports true once the user asked
// to quit.
func (d *Driver) Step(event tcell.Event) (bool, error) {
	switch ev := event.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
	case *tcell.EventKey:
		if d.scene.Key(input.Key(input.KeyName(ev))) {
			return true, nil
		}
	}

	return false, d.Draw()
}

// Run draws and processes events until the user quits or ctx is done. Configs received on
// updates are applied as live reloads.
func (d *Driver) Run(ctx context.Context, updates <-chan config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event)

	go func() {
		defer close(events)

		for {
			event := d.screen.PollEvent()
			if event == nil {
				return
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := d.Draw(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case userConfig := <-updates:
			d.scene.Apply(userConfig)

			if err := d.Draw(); err != nil {
				return err
			}
		case event, ok := <-events:
			if !ok {
				return nil
			}

			quit, err := d.Step(event)
			if err != nil || quit {
				return err
			}
		}
	}
}
