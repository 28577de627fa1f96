package services

import (
	"context"
	"testing"

	apperrors "parkside-realty/internal/errors"
	"parkside-realty/internal/models"

	"github.com/stretchr/testify/assert"
)

func clientForm(username string) *models.ClientSignupForm {
	return &models.ClientSignupForm{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "sup3rsecret",
		Password2: "sup3rsecret",
		FirstName: "Jordan",
		LastName:  "Reyes",
		Phone:     "5550100",
		Address:   "12 Elm St",
	}
}

func realtorForm(username, license string) *models.RealtorSignupForm {
	return &models.RealtorSignupForm{
		Username:      username,
		Email:         username + "@example.com",
		Password:      "sup3rsecret",
		Password2:     "sup3rsecret",
		Phone:         "5550100",
		LicenseNumber: license,
	}
}

func TestRegisterClient_CreatesAccountAndProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := newAccountService(db)

	account, token, err := svc.RegisterClient(context.Background(), clientForm("jordan"))
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotZero(t, account.ID)

	var profile models.ClientProfile
	assert.NoError(t, db.Where("account_id = ?", account.ID).First(&profile).Error)
	assert.Equal(t, "5550100", profile.Phone)
	assert.Equal(t, "12 Elm St", profile.Address)

	// the stored hash must never be the raw password
	var stored models.Account
	assert.NoError(t, db.First(&stored, account.ID).Error)
	assert.NotEqual(t, "sup3rsecret", stored.PasswordHash)
}

func TestRegisterClient_ValidationFailurePersistsNothing(t *testing.T) {
	db := setupTestDB(t)
	svc := newAccountService(db)

	form := clientForm("jordan")
	form.Password2 = "different"

	_, _, err := svc.RegisterClient(context.Background(), form)

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("password2"))

	var accounts int64
	db.Model(&models.Account{}).Count(&accounts)
	assert.Zero(t, accounts)
	var profiles int64
	db.Model(&models.ClientProfile{}).Count(&profiles)
	assert.Zero(t, profiles)
}

func TestRegisterClient_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := newAccountService(db)

	_, _, err := svc.RegisterClient(context.Background(), clientForm("jordan"))
	assert.NoError(t, err)

	form := clientForm("jordan")
	form.Email = "other@example.com"
	_, _, err = svc.RegisterClient(context.Background(), form)

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("username"))
	assert.Equal(t, apperrors.MsgUsernameTaken, verr.Fields["username"])

	// exactly one winner
	var accounts int64
	db.Model(&models.Account{}).Count(&accounts)
	assert.Equal(t, int64(1), accounts)
}

func TestRegisterClient_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAccountService(db)

	_, _, err := svc.RegisterClient(context.Background(), clientForm("jordan"))
	assert.NoError(t, err)

	form := clientForm("casey")
	form.Email = "jordan@example.com"
	_, _, err = svc.RegisterClient(context.Background(), form)

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("email"))
}

func TestRegisterRealtor_CreatesProfileWithLicense(t *testing.T) {
	db := setupTestDB(t)
	svc := newAccountService(db)

	account, token, err := svc.RegisterRealtor(context.Background(), realtorForm("avery", "LIC-100"))
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	var profile models.RealtorProfile
	assert.NoError(t, db.Where("account_id = ?", account.ID).First(&profile).Error)
	assert.Equal(t, "LIC-100", profile.LicenseNumber)
}

func TestRegisterRealtor_DuplicateLicense(t *testing.T) {
	db := setupTestDB(t)
	svc := newAccountService(db)

	_, _, err := svc.RegisterRealtor(context.Background(), realtorForm("avery", "LIC-100"))
	assert.NoError(t, err)

	_, _, err = svc.RegisterRealtor(context.Background(), realtorForm("blake", "LIC-100"))

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("license_number"))
	assert.Equal(t, apperrors.MsgLicenseTaken, verr.Fields["license_number"])

	// the losing signup left no partial rows behind
	var accounts int64
	db.Model(&models.Account{}).Count(&accounts)
	assert.Equal(t, int64(1), accounts)
	var profiles int64
	db.Model(&models.RealtorProfile{}).Count(&profiles)
	assert.Equal(t, int64(1), profiles)
}

func TestRegisterRealtor_MissingLicense(t *testing.T) {
	db := setupTestDB(t)
	svc := newAccountService(db)

	form := realtorForm("avery", "")
	_, _, err := svc.RegisterRealtor(context.Background(), form)

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("license_number"))
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAccountService(db)

	_, _, err := svc.RegisterClient(context.Background(), clientForm("jordan"))
	assert.NoError(t, err)

	account, token, err := svc.Login(context.Background(), &models.LoginForm{Username: "jordan", Password: "sup3rsecret"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jordan", account.Username)

	_, _, err = svc.Login(context.Background(), &models.LoginForm{Username: "jordan", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), &models.LoginForm{Username: "nobody", Password: "sup3rsecret"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestActor_ResolvesProfileKind(t *testing.T) {
	db := setupTestDB(t)
	svc := newAccountService(db)

	client, _, err := svc.RegisterClient(context.Background(), clientForm("jordan"))
	assert.NoError(t, err)
	realtor, _, err := svc.RegisterRealtor(context.Background(), realtorForm("avery", "LIC-100"))
	assert.NoError(t, err)

	actor, err := svc.Actor(context.Background(), client.ID)
	assert.NoError(t, err)
	assert.True(t, actor.IsClient())
	assert.False(t, actor.IsRealtor())

	actor, err = svc.Actor(context.Background(), realtor.ID)
	assert.NoError(t, err)
	assert.True(t, actor.IsRealtor())
}
