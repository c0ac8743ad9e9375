// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the art-explorer CLI: the enrichment
// proxy (serve) and a terminal catalog client (browse).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/art-explorer/internal/config"
	"github.com/pdiddy/art-explorer/internal/logging"
	"github.com/pdiddy/art-explorer/internal/secrets"
	"github.com/pdiddy/art-explorer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// serviceName tags every log line.
const serviceName = "art-explorer"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the art-explorer CLI.
var rootCmd = &cobra.Command{
	Use:   "art-explorer",
	Short: "Browse the museum collection with translated object records",
	Long: `art-explorer serves a small proxy in front of the museum collection API.
Department and search requests pass through untouched; object lookups come back
with their text fields machine-translated into the configured language.

The serve command runs the proxy and the static front end. The browse command
is a terminal client for a running proxy.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		bootstrap := slog.New(logging.NewConsoleHandler(os.Stderr, "console", slog.LevelInfo))
		s, err := secrets.Load(".secrets/", bootstrap)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			bootstrap.Info("loaded secrets", "keys", secrets.Names(s))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./art-explorer.yaml or ~/.config/art-explorer/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("art-explorer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "art-explorer"))
		}
	}

	config.SetDefaults(viper.GetViper())
	config.BindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the configuration and builds the logger for it. The
// returned function closes any log sink.
func loadConfig() (types.AppConfig, *slog.Logger, func() error, error) {
	cfg, err := config.Load(viper.GetViper(), loadedSecrets)
	if err != nil {
		return cfg, nil, nil, err
	}
	logger, closeLog, err := logging.New(cfg.Log, os.Stderr, serviceName)
	if err != nil {
		return cfg, nil, nil, err
	}
	return cfg, logger, closeLog, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
