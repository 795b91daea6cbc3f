package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/playgridlabs/tictactoe-console/internal"
	"github.com/playgridlabs/tictactoe-console/internal/config"
)

// main - loads the configuration, builds the logger, and hands off to the game session.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config from config.yml in the working directory, if present.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger. Logs go to stderr; stdout belongs to the game board.
func initLogger(conf *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel(conf.LogLevel)}

	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

// logLevel - maps the configured level name to a slog level; anything
// unrecognized falls back to info.
func logLevel(name string) slog.Level {
	if name == "debug" {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}
