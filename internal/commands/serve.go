// Package commands defines the CLI: serve runs the HTTP service, migrate
// applies the schema and create-user provisions accounts from the shell.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/AimbotParce/SharedFlatTracker/internal/auth"
	"github.com/AimbotParce/SharedFlatTracker/internal/config"
	"github.com/AimbotParce/SharedFlatTracker/internal/flats"
	"github.com/AimbotParce/SharedFlatTracker/internal/geocode"
	"github.com/AimbotParce/SharedFlatTracker/internal/handlers"
	"github.com/AimbotParce/SharedFlatTracker/internal/logging"
	"github.com/AimbotParce/SharedFlatTracker/internal/membership"
	"github.com/AimbotParce/SharedFlatTracker/internal/trackers"
	"github.com/AimbotParce/SharedFlatTracker/internal/users"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the flat tracker HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logging.New(cfg.Environment)

			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			if err := autoMigrate(db); err != nil {
				return err
			}

			resolver := auth.NewResolver(db, []byte(cfg.JWTSecret))
			router := handlers.NewRouter(handlers.Deps{
				Config:   cfg,
				Logger:   log,
				Resolver: resolver,
				Checker:  membership.NewChecker(db),
				Users:    users.NewService(db),
				Trackers: trackers.NewService(db),
				Flats:    flats.NewService(db),
				Geocoder: geocode.NewClient(cfg.GeocoderBaseURL, cfg.GeocoderCountry),
			})

			log.Info("server listening", "addr", cfg.Addr, "environment", cfg.Environment)
			return router.Run(cfg.Addr)
		},
	}
}
