package handlers

import (
	"net/http"
	"strconv"

	"parkside-realty/internal/flash"
	"parkside-realty/internal/models"
	"parkside-realty/internal/services"
	"parkside-realty/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListingHandler serves the public browse page. Unknown query parameters
// and malformed numbers are ignored rather than rejected.
type ListingHandler struct {
	listings *services.ListingService
	flashes  flash.Store
}

func NewListingHandler(listings *services.ListingService, flashes flash.Store) *ListingHandler {
	return &ListingHandler{listings: listings, flashes: flashes}
}

func (h *ListingHandler) List(c *gin.Context) {
	query := parseListingQuery(c)
	page := parsePage(c.Query("page"))

	result, err := h.listings.Browse(c.Request.Context(), query, page)
	if err != nil {
		c.Error(err)
		return
	}

	params := c.Request.URL.Query()
	if result.Meta.Page < result.Meta.TotalPages {
		next := utils.BuildPageURL(c.Request.URL.Path, result.Meta.Page+1, params)
		result.Meta.Next = &next
	}
	if result.Meta.Page > 1 {
		prev := utils.BuildPageURL(c.Request.URL.Path, result.Meta.Page-1, params)
		result.Meta.Prev = &prev
	}

	c.JSON(http.StatusOK, gin.H{
		"properties":     result.Properties,
		"meta":           result.Meta,
		"property_types": result.PropertyTypes,
		"status_choices": result.StatusChoices,
		"filters":        query,
		"notices":        flash.Consume(c, h.flashes),
	})
}

func parseListingQuery(c *gin.Context) *models.ListingQuery {
	query := &models.ListingQuery{
		PropertyType: c.Query("property_type"),
		Status:       c.Query("status"),
		Sort:         c.Query("sort"),
	}
	if min, ok := parsePrice(c.Query("price__gte")); ok {
		query.PriceMin = &min
	}
	if max, ok := parsePrice(c.Query("price__lte")); ok {
		query.PriceMax = &max
	}
	return query
}

func parsePrice(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
