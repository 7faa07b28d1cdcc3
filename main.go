// FormPages - page tab navigator for multi-page forms.
// A TUI for arranging the pages of a form: switch, reorder, insert,
// duplicate, rename and delete pages with the mouse or the keyboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/lazyvibe/formpages/internal/app"
	"github.com/lazyvibe/formpages/internal/logger"
	"github.com/lazyvibe/formpages/internal/store"
	"github.com/lazyvibe/formpages/internal/ui"
	"go.uber.org/zap"
)

const (
	appName    = "FormPages"
	appVersion = "0.1.0"
)

func main() {
	configFlag := flag.String("config", "", "configuration directory (default $XDG_CONFIG_HOME/formpages)")
	seedFlag := flag.Bool("seed", false, "reset pages to the default seed pages")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s %s\n", appName, appVersion)
		return
	}

	// Optional .env next to the binary's working directory
	_ = godotenv.Load()

	// Get config directory
	configDir := *configFlag
	if configDir == "" {
		dir, err := getConfigDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting config directory: %v\n", err)
			os.Exit(1)
		}
		configDir = dir
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		os.Exit(1)
	}

	// Load application configuration
	config, err := app.LoadConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if _, err := os.Stat(app.ConfigPath(configDir)); os.IsNotExist(err) {
		if err := app.SaveConfig(configDir, config); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing default config: %v\n", err)
			os.Exit(1)
		}
	}

	log, err := logger.New(config.LogFile, config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	log.Info("starting", zap.String("version", appVersion), zap.String("config_dir", configDir))

	// Initialize store
	s, watcher, err := openStore(config, *seedFlag, log)
	if err != nil {
		log.Error("open store", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error initializing store: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()
	if watcher != nil {
		defer watcher.Close()
	}

	opts := []ui.Option{ui.WithLogger(log)}
	if watcher != nil {
		opts = append(opts, ui.WithWatcher(watcher))
	}
	application := ui.New(s, config, opts...)

	// Run the TUI
	p := tea.NewProgram(
		application,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover and drag need motion without a button too
	)

	if _, err := p.Run(); err != nil {
		log.Error("run", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// openStore returns the page store selected by the configuration and,
// when enabled, a watcher on its file.
func openStore(config *app.Config, seed bool, log *zap.Logger) (store.PageStore, *store.FileWatcher, error) {
	if !config.Persist {
		return store.NewMemoryStore(nil, store.WithLogger(log)), nil, nil
	}

	s, err := store.NewJSONStore(config.DataDir, store.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	if seed {
		if err := s.Reset(context.Background()); err != nil {
			_ = s.Close()
			return nil, nil, err
		}
	}
	if !config.Watch {
		return s, nil, nil
	}

	watcher, err := store.NewFileWatcher(s.Path(), log)
	if err != nil {
		// Editing pages.json by hand still works after a restart
		log.Warn("watch pages file", zap.Error(err))
		return s, nil, nil
	}
	return s, watcher, nil
}

// getConfigDir returns the FormPages configuration directory.
func getConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if available, otherwise default to ~/.config
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "formpages"), nil
}
