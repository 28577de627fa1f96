package handlers

import (
	apperrors "parkside-realty/internal/errors"
)

// bindingError wraps a form binding failure (unparseable numbers, malformed
// bodies) as a field-level validation error so the response keeps the same
// shape as every other rejected form.
func bindingError(err error) error {
	verr := apperrors.NewValidationError()
	verr.Add("form", apperrors.MsgUnreadableForm)
	return verr
}
