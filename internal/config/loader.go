package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
	last    time.Time
}

func NewLoader(changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("library", []string{})
	loader.SetDefault("extensions", []string{".wav", ".mp3", ".ogg", ".flac"})
	loader.SetDefault("query", "")
	loader.SetDefault("backend", string(BackendTea))
	loader.SetDefault("fps", DefaultFPS)
	loader.SetDefault("log_level", "info")
	loader.SetDefault("layout.x", 10)
	loader.SetDefault("layout.y", 5)
	loader.SetDefault("layout.width", 40)
	loader.SetDefault("keys.up", []string{})
	loader.SetDefault("keys.down", []string{})
	loader.SetDefault("keys.left", []string{})
	loader.SetDefault("keys.right", []string{})
	loader.SetDefault("keys.toggle", []string{})
	loader.SetDefault("keys.play", []string{})
	loader.SetDefault("keys.quit", []string{})
	loader.SetDefault("keys.help", []string{})
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.AddConfigPath(Path(""))
	loader.AddConfigPath(".")
	loader.AutomaticEnv()

	return &loader
}

// UseFile points the loader at an explicit config file instead of the search paths.
func (cl *Loader) UseFile(configPath string) {
	if configPath != "" {
		cl.SetConfigFile(configPath)
	}
}

// Watch starts broadcasting reloaded configs whenever the config file changes on disk.
func (cl *Loader) Watch() {
	if cl.changes == nil {
		return
	}

	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) && !in.Has(fsnotify.Create) {
		return
	}

	// Editors tend to emit several events per save.
	if time.Since(cl.last) < watchDebounce {
		return
	}
	cl.last = time.Now()

	slog.Debug("External config reload triggered", slog.String("path", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	cl.changes <- config
}

func (cl *Loader) Write(config Config) error {
	cl.Set("library", config.Library)
	cl.Set("extensions", config.Extensions)
	cl.Set("query", config.Query)
	cl.Set("backend", string(config.Backend))
	cl.Set("fps", config.FPS)
	cl.Set("log_level", config.LogLevel)
	cl.Set("layout.x", config.Layout.X)
	cl.Set("layout.y", config.Layout.Y)
	cl.Set("layout.width", config.Layout.Width)
	cl.Set("keys.up", config.Keys.Up)
	cl.Set("keys.down", config.Keys.Down)
	cl.Set("keys.left", config.Keys.Left)
	cl.Set("keys.right", config.Keys.Right)
	cl.Set("keys.toggle", config.Keys.Toggle)
	cl.Set("keys.play", config.Keys.Play)
	cl.Set("keys.quit", config.Keys.Quit)
	cl.Set("keys.help", config.Keys.Help)

	if err := cl.WriteConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Join(err, errConfigWrite)
		}

		if errSafe := cl.SafeWriteConfig(); errSafe != nil {
			return errors.Join(errSafe, errConfigWrite)
		}
	}

	return nil
}

// Read loads the config file if one exists. A missing file is not an error, the defaults
// and environment are used instead.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if config.Backend != BackendTea && config.Backend != BackendTcell {
		return Config{}, errors.Join(fmt.Errorf("%w: %q", errBackend, config.Backend), errConfigRead)
	}

	if config.FPS <= 0 {
		config.FPS = DefaultFPS
	}

	return config, nil
}

// Updates relays reloaded configs to apply until ctx is done.
func Updates(ctx context.Context, updates <-chan Config, apply func(Config)) {
	for {
		select {
		case <-ctx.Done():
			return
		case config := <-updates:
			apply(config)
		}
	}
}
