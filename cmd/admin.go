package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"skillswap/exchange-service/internal/storage"
)

func runInitDB(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	pg, err := storage.OpenPostgresStore(cmd.Context(), postgresConfig(cfg))
	if err != nil {
		logger.WithError(err).Error("Failed to connect to database")
		return err
	}
	defer pg.Close()

	if err := pg.InitializeTables(cmd.Context()); err != nil {
		logger.WithError(err).Error("Failed to initialize database tables")
		return err
	}
	logger.Info("Database tables initialized")
	return nil
}

func newImportCommand() *cobra.Command {
	var collection, file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a JSON array of records into a collection",
		Long: "Load records produced by other systems, such as generated skill matches, into a\n" +
			"collection. Every record needs an _id; existing records are updated in place.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			var records []json.RawMessage
			if err := json.Unmarshal(raw, &records); err != nil {
				return fmt.Errorf("%s must hold a JSON array: %w", file, err)
			}

			b, err := openBackend(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer b.Close()

			result, err := storage.Import(cmd.Context(), b.store, collection, records)
			if err != nil {
				logger.WithError(err).Error("Import failed")
				return err
			}

			logger.WithFields(logrus.Fields{
				"collection": collection,
				"created":    result.Created,
				"updated":    result.Updated,
			}).Info("Import finished")
			return nil
		},
	}
	cmd.Flags().StringVar(&collection, "collection", storage.Matches, "target collection")
	cmd.Flags().StringVar(&file, "file", "", "path to a JSON array of records")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
