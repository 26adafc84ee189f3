package main

import (
	"os"

	"stableswap/internal/app"
	"stableswap/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// @title stableswap API
// @version 1.0
// @description Custodial fixed-rate swaps between registered assets.
// @BasePath /api/v1

var configPath string

var rootCmd = &cobra.Command{
	Use:           "stableswap",
	Short:         "Custodial fixed-rate asset swap service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the custody snapshot job",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(configPath)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Migrate(configPath)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the yaml config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(bankCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("stableswap exited with error")
		os.Exit(1)
	}
}
