package errors

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// MapError converts a technical error into a structured AppError. Validation
// errors keep their field map and map to 400; record-not-found maps to 404;
// everything unrecognized is an internal error.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return &AppError{
			TechnicalMessage: verr.Error(),
			UserMessage:      verr.Error(),
			Code:             ErrCodeValidation,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &AppError{
			TechnicalMessage: err.Error(),
			UserMessage:      MsgPropertyNotFound,
			Code:             ErrCodePropertyNotFound,
			HTTPStatus:       http.StatusNotFound,
			OriginalError:    err,
		}
	}

	return &AppError{
		TechnicalMessage: err.Error(),
		UserMessage:      MsgInternalError,
		Code:             ErrCodeInternal,
		HTTPStatus:       http.StatusInternalServerError,
		OriginalError:    err,
	}
}
