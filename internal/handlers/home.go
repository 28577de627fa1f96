package handlers

import (
	"net/http"

	"parkside-realty/internal/flash"
	"parkside-realty/internal/services"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the landing page context: featured listings and the
// realtor roster.
type HomeHandler struct {
	listings *services.ListingService
	flashes  flash.Store
}

func NewHomeHandler(listings *services.ListingService, flashes flash.Store) *HomeHandler {
	return &HomeHandler{listings: listings, flashes: flashes}
}

func (h *HomeHandler) Home(c *gin.Context) {
	ctx, err := h.listings.Home(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"featured": ctx.FeaturedProperties,
		"realtors": ctx.Realtors,
		"notices":  flash.Consume(c, h.flashes),
	})
}
