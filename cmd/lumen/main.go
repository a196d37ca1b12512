package main

import (
	"os"

	"github.com/spf13/cobra"

	"lumen/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lumen",
		Short: "Lumen - profile service backend",
		Long:  `Lumen is the backend for the profile service: Google sign-in, user profiles, and status checks.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
