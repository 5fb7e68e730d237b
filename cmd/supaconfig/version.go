package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"supaconfig/internal/server"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), server.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
