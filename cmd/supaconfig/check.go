package main

import (
	"context"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"supaconfig/internal/config"
	"supaconfig/internal/supabase"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the Supabase configuration",
	Long: `Validate that SUPABASE_URL and SUPABASE_ANON_KEY are set.

With --probe, also call the project's auth health endpoint using the anon key
and fail unless it answers 2xx.

Example:
  supaconfig check
  supaconfig check --env-file .env.production --probe`,
	RunE: func(cmd *cobra.Command, args []string) error {
		probe, _ := cmd.Flags().GetBool("probe")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		return runCheck(cmd.Context(), cmd.OutOrStdout(), config.LoadConfig(), probe, timeout)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("probe", false, "call the Supabase project to verify the URL and anon key")
	checkCmd.Flags().Duration("timeout", 10*time.Second, "probe timeout")
}

func runCheck(ctx context.Context, out io.Writer, cfg *config.Config, probe bool, timeout time.Duration) error {
	env := cfg.Supabase()
	if err := env.Validate(); err != nil {
		return err
	}
	fmt.Fprintln(out, "✓ Supabase environment variables are set")

	if !probe {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log.WithField("url", env.URL).Debug("probing supabase project")
	if err := supabase.NewClient(env, nil).Ping(ctx); err != nil {
		return fmt.Errorf("probing %s: %w", env.URL, err)
	}
	fmt.Fprintln(out, "✓ Supabase project is reachable")
	return nil
}
