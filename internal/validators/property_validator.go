package validators

import (
	apperrors "parkside-realty/internal/errors"
	"parkside-realty/internal/models"
)

type propertyValidator struct{}

func NewPropertyValidator() PropertyValidator {
	return &propertyValidator{}
}

func (v *propertyValidator) ValidateForm(form *models.PropertyForm) error {
	verr := apperrors.NewValidationError()

	if form.Title == "" {
		verr.Add("title", apperrors.MsgRequired)
	} else if len(form.Title) > 200 {
		verr.Add("title", "Title exceeds maximum length of 200 characters.")
	}

	if form.Address == "" {
		verr.Add("address", apperrors.MsgRequired)
	}

	if !models.PropertyType(form.PropertyType).Valid() {
		verr.Add("property_type", "Select a valid property type.")
	}
	if form.Status != "" && !models.PropertyStatus(form.Status).Valid() {
		verr.Add("status", "Select a valid status.")
	}

	if form.Price < 0 {
		verr.Add("price", "Price must not be negative.")
	}
	if form.Area < 0 {
		verr.Add("area", "Area must not be negative.")
	}
	if form.Bedrooms < 0 {
		verr.Add("bedrooms", "Bedroom count must not be negative.")
	}
	if form.Bathrooms < 0 {
		verr.Add("bathrooms", "Bathroom count must not be negative.")
	}

	return verr.Err()
}
