package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gramconnect/internal/app"
	"gramconnect/internal/config"
	"gramconnect/internal/logger"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "gramconnect",
	Short: "GramConnect rural community portal",
	Long: `GramConnect is a community portal backend for rural areas covering
job listings, government schemes, infrastructure issue reports and a
local marketplace.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run database migrations and start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		app.Run()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations and seed reference data, then exit",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
		cfg := config.AppConfig
		logger.Init(cfg.Server.Env)
		app.MustOpenDatabase(cfg)
		logger.Info("Migrations applied")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: config/config.yaml)")
	cobra.OnInitialize(func() {
		if configFile != "" {
			os.Setenv("CONFIG_PATH", configFile)
		}
	})

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
