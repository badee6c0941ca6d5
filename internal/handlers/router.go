package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AimbotParce/SharedFlatTracker/internal/auth"
	"github.com/AimbotParce/SharedFlatTracker/internal/config"
	"github.com/AimbotParce/SharedFlatTracker/internal/flats"
	"github.com/AimbotParce/SharedFlatTracker/internal/geocode"
	"github.com/AimbotParce/SharedFlatTracker/internal/membership"
	"github.com/AimbotParce/SharedFlatTracker/internal/middleware"
	"github.com/AimbotParce/SharedFlatTracker/internal/trackers"
	"github.com/AimbotParce/SharedFlatTracker/internal/users"
)

// Deps bundles everything the HTTP layer needs. All dependencies are
// constructed by the caller and injected here; nothing is a package-level
// singleton.
type Deps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Resolver *auth.Resolver
	Checker  *membership.Checker
	Users    *users.Service
	Trackers *trackers.Service
	Flats    *flats.Service
	Geocoder geocode.Geocoder
}

// NewRouter assembles the full route table.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(d.Logger), middleware.Guard(d.Resolver))

	// Page shells; the guard has already handled session redirects.
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/trackers") })
	r.GET("/login", LoginPage())
	r.GET("/register", RegisterPage())
	r.GET("/trackers", TrackersPage())

	api := r.Group("/api")

	authAPI := api.Group("/auth")
	{
		authAPI.POST("/login", Login(d.Users, d.Config))
		authAPI.POST("/register", Register(d.Users, d.Config))
		authAPI.POST("/logout", Logout(d.Config))
	}

	protected := api.Group("", middleware.RequireUser(d.Resolver))
	{
		protected.GET("/trackers", ListTrackers(d.Trackers))
		protected.POST("/trackers", CreateTracker(d.Trackers))

		protected.GET("/trackers/:trackerId/flats", ListFlats(d.Flats, d.Users, d.Checker))
		protected.POST("/trackers/:trackerId/flats", CreateFlat(d.Flats, d.Users, d.Checker))
		protected.PUT("/trackers/:trackerId/flats", UpdateFlat(d.Flats, d.Users, d.Checker))

		protected.GET("/trackers/:trackerId/participants", ListParticipants(d.Trackers, d.Checker))
		protected.POST("/trackers/:trackerId/participants", AddParticipant(d.Trackers, d.Checker))
		protected.DELETE("/trackers/:trackerId/participants", RemoveParticipant(d.Trackers, d.Checker))

		protected.GET("/user/profile", GetProfile(d.Users))
		protected.PUT("/user/profile", UpdateProfile(d.Users))

		protected.GET("/users", ListUsers(d.Users))
		protected.POST("/users", CreateUser(d.Users))

		protected.GET("/geocode", GeocodeAddress(d.Geocoder))
	}

	return r
}
