package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	"github.com/clipdeck/clipdeck/internal/config"
	"github.com/clipdeck/clipdeck/internal/library"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	query          string
	backend        string
	rootCmd        = &cobra.Command{
		Use:   "clipdeck",
		Short: "Terminal sound clip browser",
		Long:  `clipdeck - Browse, tweak and play sound clips from the terminal`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about clipdeck",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	scanCmd = &cobra.Command{
		Use:   "scan",
		Short: "List the clips found in the library",
		Long:  "Scan the configured library directories and print every matching clip",
		Args:  cobra.NoArgs,
		RunE:  scan,
	}
)

var (
	errApp     = errors.New("application error")
	errNoClips = errors.New("no clips found")
)

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&query, "query", "", "Only show clips whose name contains this text")
	rootCmd.Flags().StringVar(&backend, "backend", "", "Terminal backend, tea or tcell")
	rootCmd.AddCommand(versionCmd, scanCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("clipdeck - Terminal sound clip browser\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)             //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)              //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)                //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)         //nolint:forbidigo
}

// readConfig loads the user config and applies the command line overrides.
func readConfig(changes chan config.Config) (config.Config, *config.Loader, error) {
	configLoader := config.NewLoader(changes)
	configLoader.UseFile(cfgFile)

	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return config.Config{}, nil, errors.Join(errConfig, errApp)
	}

	if query != "" {
		userConfig.Query = query
	}

	if backend != "" {
		userConfig.Backend = config.Backend(backend)
	}

	return userConfig, configLoader, nil
}

// clips returns the library matching the configured query, or the placeholder clips when no
// library is configured.
func clips(ctx context.Context, userConfig config.Config) ([]library.Clip, error) {
	if len(userConfig.Library) == 0 {
		return library.Demo(), nil
	}

	found, errScan := library.Scan(ctx, userConfig.Library, userConfig.Extensions, userConfig.Query)
	if errScan != nil {
		return nil, errors.Join(errScan, errApp)
	}

	if len(found) == 0 {
		return nil, errors.Join(errNoClips, errApp)
	}

	return found, nil
}

func scan(cmd *cobra.Command, _ []string) error {
	userConfig, _, errConfig := readConfig(nil)
	if errConfig != nil {
		return errConfig
	}

	found, errClips := clips(cmd.Context(), userConfig)
	if errClips != nil {
		return errClips
	}

	for _, clip := range found {
		fmt.Printf("%-32s %10s  %s\n", clip.Name, clip.HumanSize(), clip.Path) //nolint:forbidigo
	}

	return nil
}

// run is the main entry point of clipdeck.
func run(cmd *cobra.Command, _ []string) error {
	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)

	userConfig, configLoader, errConfig := readConfig(configUpdates)
	if errConfig != nil {
		return errConfig
	}

	if userConfig.Backend != config.BackendTea && userConfig.Backend != config.BackendTcell {
		return errors.Join(fmt.Errorf("unknown backend %q", userConfig.Backend), errApp)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, userConfig.Level())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting clipdeck", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()), slog.String("config", configLoader.Path()))

	entries, errClips := clips(cmd.Context(), userConfig)
	if errClips != nil {
		return errClips
	}

	deck, errDeck := newDeck(userConfig.Query, entries)
	if errDeck != nil {
		return errors.Join(errDeck, errApp)
	}

	configLoader.Watch()

	return NewApp(userConfig, deck, configUpdates).Run(cmd.Context())
}
