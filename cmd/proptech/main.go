package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/compiler-aditya/PropTech/internal/interfaces/cli/migrate"
	"github.com/compiler-aditya/PropTech/internal/interfaces/cli/seed"
	"github.com/compiler-aditya/PropTech/internal/interfaces/cli/server"
	"github.com/compiler-aditya/PropTech/internal/interfaces/cli/worker"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "proptech",
		Short: "PropTech - property maintenance ticketing",
		Long:  `PropTech tracks maintenance requests from tenants through assignment to completion. It ships the API server, migration and seed tools, and the mail worker.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		worker.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
