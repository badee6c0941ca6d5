package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AimbotParce/SharedFlatTracker/internal/config"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema without starting the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			if err := autoMigrate(db); err != nil {
				return err
			}

			fmt.Println("schema is up to date")
			return nil
		},
	}
}
