package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"supaconfig/internal/config"
	"supaconfig/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "supaconfig",
	Short: "Serve the public Supabase client configuration",
	Long: `supaconfig exposes SUPABASE_URL and SUPABASE_ANON_KEY to browser clients
as JSON, so front ends do not need the values baked in at build time.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFiles, _ := cmd.Flags().GetStringSlice("env-file")
		if err := config.LoadEnvFiles(envFiles...); err != nil {
			return err
		}

		cfg := config.LoadConfig()
		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = cfg.LogLevel
		}
		logging.Setup(level, cfg.IsProduction())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringSlice("env-file", nil, "dotenv file(s) to load before reading the environment (default ./.env if present)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (default $LOG_LEVEL or info)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
