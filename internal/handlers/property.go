package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "parkside-realty/internal/errors"
	"parkside-realty/internal/flash"
	"parkside-realty/internal/middleware"
	"parkside-realty/internal/models"
	"parkside-realty/internal/services"

	"github.com/gin-gonic/gin"
)

// PropertyHandler serves the listing detail page and the realtor-only
// mutation flows. Authorization failures on the mutation flows redirect
// with a notice; only a missing listing surfaces as an HTTP error.
type PropertyHandler struct {
	properties *services.PropertyService
	flashes    flash.Store
}

func NewPropertyHandler(properties *services.PropertyService, flashes flash.Store) *PropertyHandler {
	return &PropertyHandler{properties: properties, flashes: flashes}
}

func (h *PropertyHandler) Detail(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.Error(apperrors.ErrPropertyNotFound)
		return
	}

	property, err := h.properties.Detail(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"property": property,
		"notices":  flash.Consume(c, h.flashes),
	})
}

func (h *PropertyHandler) AddPage(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	if h.denied(c, realtorGate(actor)) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"form":           models.PropertyForm{},
		"property_types": models.PropertyTypes(),
		"status_choices": models.StatusChoices(),
		"notices":        flash.Consume(c, h.flashes),
	})
}

func (h *PropertyHandler) Add(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var form models.PropertyForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(bindingError(err))
		return
	}

	if _, err := h.properties.Create(c.Request.Context(), actor, &form); err != nil {
		if h.denied(c, err) {
			return
		}
		c.Error(err)
		return
	}

	flash.Notify(c, h.flashes, apperrors.MsgListingAdded)
	c.Redirect(http.StatusFound, "/dashboard/")
}

func (h *PropertyHandler) EditPage(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.Error(apperrors.ErrPropertyNotFound)
		return
	}

	property, err := h.properties.LoadOwned(c.Request.Context(), actor, id)
	if err != nil {
		if h.denied(c, err) {
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"property":       property,
		"property_types": models.PropertyTypes(),
		"status_choices": models.StatusChoices(),
		"notices":        flash.Consume(c, h.flashes),
	})
}

func (h *PropertyHandler) Edit(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.Error(apperrors.ErrPropertyNotFound)
		return
	}

	var form models.PropertyForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(bindingError(err))
		return
	}

	if _, err := h.properties.Update(c.Request.Context(), actor, id, &form); err != nil {
		if h.denied(c, err) {
			return
		}
		c.Error(err)
		return
	}

	flash.Notify(c, h.flashes, apperrors.MsgListingUpdated)
	c.Redirect(http.StatusFound, "/dashboard/")
}

func (h *PropertyHandler) DeletePage(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.Error(apperrors.ErrPropertyNotFound)
		return
	}

	property, err := h.properties.ConfirmDelete(c.Request.Context(), actor, id)
	if err != nil {
		if h.denied(c, err) {
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"property": property,
		"notices":  flash.Consume(c, h.flashes),
	})
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.Error(apperrors.ErrPropertyNotFound)
		return
	}

	if err := h.properties.Delete(c.Request.Context(), actor, id); err != nil {
		if h.denied(c, err) {
			return
		}
		c.Error(err)
		return
	}

	flash.Notify(c, h.flashes, apperrors.MsgListingDeleted)
	c.Redirect(http.StatusFound, "/dashboard/")
}

// denied turns the soft authorization failures into a notice plus redirect
// and reports whether it handled the error. Hard errors are left for the
// caller.
func (h *PropertyHandler) denied(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, apperrors.ErrRealtorRequired):
		flash.Notify(c, h.flashes, apperrors.MsgRealtorRequired)
		c.Redirect(http.StatusFound, "/")
		return true
	case errors.Is(err, apperrors.ErrNotListingOwner):
		flash.Notify(c, h.flashes, apperrors.MsgNotListingOwner)
		c.Redirect(http.StatusFound, "/dashboard/")
		return true
	}
	return false
}

func realtorGate(actor *models.Actor) error {
	if !actor.IsRealtor() {
		return apperrors.ErrRealtorRequired
	}
	return nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
