package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/sales-atlas/pkg/server"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/dataset"
	"github.com/de-tools/sales-atlas/pkg/store/memory"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const maxStoredDatasets = 64

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Sales Atlas dashboard server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the server config file (optional; env vars apply either way)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	var profiles config.Registry = config.EmptyRegistry{}
	if cfg.ProfilesPath != "" {
		profiles, err = config.NewRegistry(cfg.ProfilesPath)
		if err != nil {
			return fmt.Errorf("failed to load column profiles: %w", err)
		}
		names, _ := profiles.GetProfiles(cmd.Context())
		logger.Info().Strs("profiles", names).Msgf("Column profiles loaded from `%s`.", cfg.ProfilesPath)
	}

	store, err := memory.NewStore(dataset.Sample(), maxStoredDatasets)
	if err != nil {
		return fmt.Errorf("failed to create dataset store: %w", err)
	}

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		MaxUploadBytes:  cfg.MaxUploadBytes,
		Dependencies: server.Dependencies{
			Store:    store,
			Profiles: profiles,
		},
	})

	return api.Start()
}
