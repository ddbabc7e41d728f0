package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MoodLink/ArenaAxis-sub000/internal/config"
	"github.com/MoodLink/ArenaAxis-sub000/pkg/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "arena-slots",
	Short:        "Slot availability and pricing service for ArenaAxis stores",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to config file")
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(gridCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig загружает конфигурацию и создает логгер
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}
