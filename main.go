package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-classic/internal"
	"github.com/rocketscienceinc/tictactoe-classic/internal/config"
)

const defaultConfigFile = "config.yml"

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "tictactoe: %v\n", r)
			os.Exit(1)
		}
	}()

	conf := config.MustLoad(configPath())
	logger := newLogger(conf.LogLevel)

	logger.Info("starting tictactoe",
		"http_port", conf.HTTPPort,
		"socket_port", conf.SocketPort,
		"storage", conf.Storage.Driver,
		"difficulty", conf.AI.Difficulty,
	)

	if err := app.RunApp(logger, conf); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}

// configPath - CONFIG_PATH if set, otherwise config.yml in the working directory.
func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}

	wd, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get working directory: %w", err))
	}

	return filepath.Join(wd, defaultConfigFile)
}

// newLogger - JSON logger on stdout; unknown levels fall back to info.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
