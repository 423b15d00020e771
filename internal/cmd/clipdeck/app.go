package main

import (
	"context"
	"errors"

	"github.com/clipdeck/clipdeck/internal/audio"
	"github.com/clipdeck/clipdeck/internal/config"
	"github.com/clipdeck/clipdeck/internal/library"
	"github.com/clipdeck/clipdeck/internal/ui"
	"github.com/clipdeck/clipdeck/internal/ui/scene"
	"github.com/clipdeck/clipdeck/internal/ui/term"
	"github.com/clipdeck/clipdeck/internal/widget"
)

// App is the main application container. It picks the terminal backend and relays config
// reloads to it.
type App struct {
	config        config.Config
	deck          *widget.Search
	configUpdates chan config.Config
}

func NewApp(conf config.Config, deck *widget.Search, configUpdates chan config.Config) *App {
	return &App{config: conf, deck: deck, configUpdates: configUpdates}
}

// newDeck builds the widget tree: every clip with the default effects under one search.
func newDeck(query string, entries []library.Clip) (*widget.Search, error) {
	widgets := make([]*widget.Clip, 0, len(entries))

	for _, entry := range entries {
		clip, errClip := widget.NewClip(entry)
		if errClip != nil {
			return nil, errClip
		}

		widgets = append(widgets, clip)
	}

	return widget.NewSearch(query, audio.NewLogPlayer(), widgets...)
}

func (app *App) Run(ctx context.Context) error {
	if app.config.Backend == config.BackendTcell {
		return app.runTerm(ctx)
	}

	return app.runTea(ctx)
}

func (app *App) runTea(ctx context.Context) error {
	program := ui.New(ctx, app.deck, app.config, BuildVersion)

	relayCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go config.Updates(relayCtx, app.configUpdates, func(conf config.Config) {
		program.Send(conf)
	})

	return program.Run()
}

func (app *App) runTerm(ctx context.Context) error {
	driver, errDriver := term.Open(scene.New(app.deck, app.config, BuildVersion))
	if errDriver != nil {
		return errors.Join(errDriver, errApp)
	}
	defer driver.Close()

	return driver.Run(ctx, app.configUpdates)
}
