package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AimbotParce/SharedFlatTracker/internal/commands"
)

func main() {
	root := &cobra.Command{
		Use:   "sharedflattracker",
		Short: "Multi-tenant flat-hunting tracker",
	}
	root.AddCommand(commands.ServeCmd(), commands.MigrateCmd(), commands.CreateUserCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
