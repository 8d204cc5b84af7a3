package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "majorctl",
		Short: "CLI tool for the MAJOR tournament API",
		Long: `majorctl is a CLI tool for the MAJOR CS2 tournament system JSON API.

It browses players and the tournament schedule, drives the device session
(role, login, logout) and streams session change events.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load device from file if not provided via flag/env
			if err := cfg.LoadDevice(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.Device)
			client.OnDevice = cfg.SaveDevice
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: MAJORCTL_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Device, "device", cfg.Device, "Device ID (env: MAJORCTL_DEVICE)")
	rootCmd.PersistentFlags().StringVar(&cfg.DeviceFile, "device-file", cfg.DeviceFile, "Device file path (env: MAJORCTL_DEVICE_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newTournamentsCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
