package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"supaconfig/internal/config"
	"supaconfig/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the HTTP server until SIGINT or SIGTERM.

The server starts even when SUPABASE_URL or SUPABASE_ANON_KEY is missing;
the config endpoint then answers 500 until the deployment is fixed.
Use "supaconfig check" to fail a deploy early instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		if cmd.Flags().Changed("host") {
			cfg.Host, _ = cmd.Flags().GetString("host")
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetString("port")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(cfg).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("host", "b", "", "bind address (default $HOST or 0.0.0.0)")
	serveCmd.Flags().StringP("port", "p", "", "listen port (default $PORT or 8080)")
}
