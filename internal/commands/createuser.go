package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AimbotParce/SharedFlatTracker/internal/config"
	"github.com/AimbotParce/SharedFlatTracker/internal/users"
)

func CreateUserCmd() *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an account without going through registration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			if err := autoMigrate(db); err != nil {
				return err
			}

			user, err := users.NewService(db).CreateUser(cmd.Context(), email, name, password)
			if err != nil {
				return err
			}

			fmt.Printf("created user %d (%s)\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&password, "password", "", "initial password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
