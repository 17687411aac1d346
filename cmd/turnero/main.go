package main

import (
	"os"

	"github.com/spf13/cobra"

	"turnero/internal/interfaces/cli/migrate"
	"turnero/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "turnero",
		Short: "Turnero - queueing ticket service",
		Long:  `Turnero issues sequential queueing tickets, serves the turno API, and renders PDF receipts.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
