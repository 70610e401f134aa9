package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configDir string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "exchange-service",
		Short:        "Skill exchange chat and catalog service",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.PersistentFlags().StringVar(&configDir, "config", "", "directory containing config.yaml (default ./config and /app/config)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the gRPC and HTTP servers",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "init-db",
			Short: "Create the PostgreSQL tables",
			RunE:  runInitDB,
		},
		newImportCommand(),
	)
	return root
}
