package validators

import (
	"regexp"

	apperrors "parkside-realty/internal/errors"
	"parkside-realty/internal/models"
)

type signupValidator struct{}

func NewSignupValidator() SignupValidator {
	return &signupValidator{}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func (v *signupValidator) ValidateClient(form *models.ClientSignupForm) error {
	verr := apperrors.NewValidationError()
	validateIdentity(verr, form.Username, form.Email, form.Password, form.Password2)
	if form.Phone == "" {
		verr.Add("phone", apperrors.MsgRequired)
	} else if len(form.Phone) > 20 {
		verr.Add("phone", "Phone number exceeds maximum length of 20 characters.")
	}
	return verr.Err()
}

func (v *signupValidator) ValidateRealtor(form *models.RealtorSignupForm) error {
	verr := apperrors.NewValidationError()
	validateIdentity(verr, form.Username, form.Email, form.Password, form.Password2)
	if form.Phone == "" {
		verr.Add("phone", apperrors.MsgRequired)
	} else if len(form.Phone) > 20 {
		verr.Add("phone", "Phone number exceeds maximum length of 20 characters.")
	}
	if form.LicenseNumber == "" {
		verr.Add("license_number", apperrors.MsgRequired)
	} else if len(form.LicenseNumber) > 50 {
		verr.Add("license_number", "License number exceeds maximum length of 50 characters.")
	}
	return verr.Err()
}

func (v *signupValidator) ValidateLogin(form *models.LoginForm) error {
	verr := apperrors.NewValidationError()
	if form.Username == "" {
		verr.Add("username", apperrors.MsgRequired)
	}
	if form.Password == "" {
		verr.Add("password", apperrors.MsgRequired)
	}
	return verr.Err()
}

func validateIdentity(verr *apperrors.ValidationError, username, email, password, password2 string) {
	if username == "" {
		verr.Add("username", apperrors.MsgRequired)
	} else if len(username) > 150 {
		verr.Add("username", "Username exceeds maximum length of 150 characters.")
	}

	if email == "" {
		verr.Add("email", apperrors.MsgRequired)
	} else if !emailRegex.MatchString(email) {
		verr.Add("email", "Enter a valid email address.")
	}

	if password == "" {
		verr.Add("password", apperrors.MsgRequired)
	} else if len(password) < 8 || len(password) > 100 {
		verr.Add("password", "Password must be between 8 and 100 characters.")
	}

	if password2 == "" {
		verr.Add("password2", apperrors.MsgRequired)
	} else if password != "" && password != password2 {
		verr.Add("password2", apperrors.MsgPasswordMismatch)
	}
}
