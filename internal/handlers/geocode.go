package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AimbotParce/SharedFlatTracker/internal/geocode"
	"github.com/AimbotParce/SharedFlatTracker/internal/httperr"
)

// GeocodeAddress resolves an address to coordinates on behalf of the
// browser forms. Lookups are best effort; a failed or empty resolution is
// reported without retrying beyond the client's fixed budget.
func GeocodeAddress(geo geocode.Geocoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Query("address")
		if address == "" {
			httperr.Respond(c, httperr.Validation("address is required"))
			return
		}

		coords, err := geo.Geocode(c.Request.Context(), address)
		if err != nil {
			httperr.Respond(c, httperr.Unavailable("could not locate address"))
			return
		}
		c.JSON(http.StatusOK, coords)
	}
}
