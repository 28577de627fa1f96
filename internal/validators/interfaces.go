package validators

import (
	"parkside-realty/internal/models"
)

type SignupValidator interface {
	ValidateClient(form *models.ClientSignupForm) error
	ValidateRealtor(form *models.RealtorSignupForm) error
	ValidateLogin(form *models.LoginForm) error
}

type PropertyValidator interface {
	ValidateForm(form *models.PropertyForm) error
}
