package cmd

import (
	"context"
	"fmt"

	"github.com/edu-resource/dbreset/internal/config"
	"github.com/edu-resource/dbreset/internal/db"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the collections in the database",
	Long: `Show the current state of the target database including:
- Connection health
- Every collection currently present
- Document count per collection

This command is read-only and never modifies the database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		ctx := context.Background()

		color.Cyan("📡 Connecting to MongoDB: %s", cfg.MongoURI)
		conn, err := db.Connect(ctx, cfg.MongoURI, cfg.DatabaseName())
		if err != nil {
			return err
		}
		defer conn.Close(context.Background())

		if err := conn.Ping(ctx); err != nil {
			return fmt.Errorf("liveness check failed: %w", err)
		}
		color.Green("✅ Connection healthy")

		collections, err := conn.ListCollections(ctx)
		if err != nil {
			return err
		}

		if len(collections) == 0 {
			color.Yellow("\n📭 Database '%s' is empty.", cfg.DatabaseName())
			return nil
		}

		fmt.Printf("\n📋 Database '%s' has %d collection(s):\n", cfg.DatabaseName(), len(collections))
		for _, name := range collections {
			count, err := conn.CountDocuments(ctx, name)
			if err != nil {
				return err
			}
			fmt.Printf("   - %s: %d document(s)\n", name, count)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
