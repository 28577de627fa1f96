package handlers

import (
	"errors"
	"net/http"

	apperrors "parkside-realty/internal/errors"
	"parkside-realty/internal/flash"
	"parkside-realty/internal/middleware"
	"parkside-realty/internal/services"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the realtor's own-listings page. Non-realtors are
// bounced to the home page with a notice instead of an error response.
type DashboardHandler struct {
	listings *services.ListingService
	flashes  flash.Store
}

func NewDashboardHandler(listings *services.ListingService, flashes flash.Store) *DashboardHandler {
	return &DashboardHandler{listings: listings, flashes: flashes}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	properties, err := h.listings.Dashboard(c.Request.Context(), actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrRealtorRequired) {
			flash.Notify(c, h.flashes, apperrors.MsgRealtorRequired)
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"properties": properties,
		"notices":    flash.Consume(c, h.flashes),
	})
}
