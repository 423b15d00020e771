package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
	errBackend     = errors.New("unknown backend")
)

const (
	ConfigDirName     = "clipdeck"
	DefaultConfigName = "clipdeck"
	DefaultLogName    = "clipdeck.log"
	EnvPrefix         = "clipdeck"
	DefaultFPS        = 30
	watchDebounce     = 100 * time.Millisecond
)

type Backend string

const (
	BackendTea   Backend = "tea"
	BackendTcell Backend = "tcell"
)

type Config struct {
	// Library lists the directories searched for clips. When empty a set of placeholder
	// clips is shown instead.
	Library    []string `mapstructure:"library"`
	Extensions []string `mapstructure:"extensions"`
	Query      string   `mapstructure:"query"`
	Backend    Backend  `mapstructure:"backend"`
	FPS        int      `mapstructure:"fps"`
	LogLevel   string   `mapstructure:"log_level"`
	Layout     Layout   `mapstructure:"layout"`
	Keys       Keys     `mapstructure:"keys"`
}

// Layout positions the widget tree on screen.
type Layout struct {
	X     int `mapstructure:"x"`
	Y     int `mapstructure:"y"`
	Width int `mapstructure:"width"`
}

// Keys holds user overrides for the key bindings, one list of bubbletea key names per action.
type Keys struct {
	Up     []string `mapstructure:"up"`
	Down   []string `mapstructure:"down"`
	Left   []string `mapstructure:"left"`
	Right  []string `mapstructure:"right"`
	Toggle []string `mapstructure:"toggle"`
	Play   []string `mapstructure:"play"`
	Quit   []string `mapstructure:"quit"`
	Help   []string `mapstructure:"help"`
}

func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}

	return level
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(Path(logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
