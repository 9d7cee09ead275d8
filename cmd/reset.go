package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/edu-resource/dbreset/internal/config"
	"github.com/edu-resource/dbreset/internal/db"
	"github.com/edu-resource/dbreset/internal/reset"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop every collection in the database",
	Long: `
Reset the database by dropping all collections and their data.
This is a destructive operation that will:

1. Prompt for confirmation (unless --force is used)
2. Verify the connection with a ping
3. Drop every collection currently in the database

⚠️  WARNING: This will permanently delete all data in your database!

Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		force, _ := cmd.Flags().GetBool("force")

		if !force {
			if !reset.Confirm(os.Stdin, os.Stdout, cfg.MongoURI) {
				color.Red("\n❌ Operation cancelled.")
				return nil
			}
		}

		ctx := context.Background()

		color.Cyan("\n📡 Connecting to MongoDB: %s", cfg.MongoURI)
		conn, err := db.Connect(ctx, cfg.MongoURI, cfg.DatabaseName())
		if err != nil {
			return err
		}
		defer func() {
			conn.Close(context.Background())
			fmt.Println("\n📴 MongoDB connection closed.")
		}()

		r := reset.New(conn, cfg.DatabaseName(), os.Stdout)
		return r.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
