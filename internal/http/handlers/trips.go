package handlers

import (
	"net/http"
	"strconv"

	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

var tripService = services.TripService{}

// GetTrips lists trips for the back-office index grid.
func GetTrips(c *gin.Context) {
	trips, err := tripService.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GetTripByID returns one trip with recomputed totals and pricing.
func GetTripByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	out, err := tripService.GetTripWithTotals(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetTripCosts returns just the cost breakdown for a trip.
func GetTripCosts(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	out, err := tripService.GetTripWithTotals(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totals": out.Totals, "pricing": out.Pricing})
}

// DeleteTrip removes a trip unless bookings locked it.
func DeleteTrip(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := tripService.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip deleted"})
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid trip id", err)
		return 0, false
	}
	return id, true
}
