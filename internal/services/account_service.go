package services

import (
	"context"
	"errors"
	"fmt"

	"parkside-realty/internal/auth"
	apperrors "parkside-realty/internal/errors"
	"parkside-realty/internal/models"
	"parkside-realty/internal/repositories"
	"parkside-realty/internal/validators"
	"parkside-realty/pkg/storage"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccountService implements registration, login and actor resolution.
// Signup is all-or-nothing: the account and its profile are created in a
// single transaction, so a validation or uniqueness failure persists
// nothing.
type AccountService struct {
	db        *gorm.DB
	accounts  repositories.AccountRepository
	profiles  repositories.ProfileRepository
	validator validators.SignupValidator
	jwtSecret string
}

func NewAccountService(db *gorm.DB, accounts repositories.AccountRepository, profiles repositories.ProfileRepository, validator validators.SignupValidator, jwtSecret string) *AccountService {
	return &AccountService{
		db:        db,
		accounts:  accounts,
		profiles:  profiles,
		validator: validator,
		jwtSecret: jwtSecret,
	}
}

func (s *AccountService) RegisterClient(ctx context.Context, form *models.ClientSignupForm) (*models.Account, string, error) {
	if err := s.validator.ValidateClient(form); err != nil {
		return nil, "", err
	}

	account := &models.Account{
		Username:  form.Username,
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accounts := s.accounts.WithTx(tx)
		profiles := s.profiles.WithTx(tx)

		if err := s.checkIdentityFree(ctx, accounts, form.Username, form.Email); err != nil {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %v", err)
		}
		account.PasswordHash = string(hash)

		if err := accounts.Create(ctx, account); err != nil {
			return err
		}

		return profiles.CreateClient(ctx, &models.ClientProfile{
			AccountID: account.ID,
			Phone:     form.Phone,
			Address:   form.Address,
		})
	})
	if err != nil {
		return nil, "", s.mapSignupError(ctx, err, form.Username, form.Email, "")
	}

	token, err := auth.GenerateSessionToken(account.ID, account.Username, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %v", err)
	}
	return account, token, nil
}

func (s *AccountService) RegisterRealtor(ctx context.Context, form *models.RealtorSignupForm) (*models.Account, string, error) {
	if err := s.validator.ValidateRealtor(form); err != nil {
		return nil, "", err
	}

	account := &models.Account{
		Username:  form.Username,
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accounts := s.accounts.WithTx(tx)
		profiles := s.profiles.WithTx(tx)

		if err := s.checkIdentityFree(ctx, accounts, form.Username, form.Email); err != nil {
			return err
		}
		if _, err := profiles.RealtorByLicense(ctx, form.LicenseNumber); err == nil {
			verr := apperrors.NewValidationError()
			verr.Add("license_number", apperrors.MsgLicenseTaken)
			return verr
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %v", err)
		}
		account.PasswordHash = string(hash)

		if err := accounts.Create(ctx, account); err != nil {
			return err
		}

		profile := &models.RealtorProfile{
			AccountID:     account.ID,
			LicenseNumber: form.LicenseNumber,
			Phone:         form.Phone,
			Bio:           form.Bio,
		}
		if form.Photo != "" {
			profile.PhotoPath = storage.RealtorPhotoPath(form.Photo)
		}
		return profiles.CreateRealtor(ctx, profile)
	})
	if err != nil {
		return nil, "", s.mapSignupError(ctx, err, form.Username, form.Email, form.LicenseNumber)
	}

	token, err := auth.GenerateSessionToken(account.ID, account.Username, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %v", err)
	}
	return account, token, nil
}

func (s *AccountService) Login(ctx context.Context, form *models.LoginForm) (*models.Account, string, error) {
	if err := s.validator.ValidateLogin(form); err != nil {
		return nil, "", err
	}

	account, err := s.accounts.FindByUsername(ctx, form.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(form.Password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateSessionToken(account.ID, account.Username, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %v", err)
	}
	return account, token, nil
}

// Actor resolves an account to its acting identity: the account plus
// whichever profile kind exists for it. Resolved once per request.
func (s *AccountService) Actor(ctx context.Context, accountID uint) (*models.Actor, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	actor := &models.Actor{Account: account}

	if realtor, err := s.profiles.RealtorByAccount(ctx, accountID); err == nil {
		actor.Realtor = realtor
		return actor, nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if client, err := s.profiles.ClientByAccount(ctx, accountID); err == nil {
		actor.Client = client
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	return actor, nil
}

func (s *AccountService) checkIdentityFree(ctx context.Context, accounts repositories.AccountRepository, username, email string) error {
	verr := apperrors.NewValidationError()
	if _, err := accounts.FindByUsername(ctx, username); err == nil {
		verr.Add("username", apperrors.MsgUsernameTaken)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	if _, err := accounts.FindByEmail(ctx, email); err == nil {
		verr.Add("email", apperrors.MsgEmailTaken)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	return verr.Err()
}

// mapSignupError classifies a duplicate-key failure after a lost race: the
// pre-checks ran before the insert, so re-check outside the aborted
// transaction to name the conflicting field.
func (s *AccountService) mapSignupError(ctx context.Context, err error, username, email, license string) error {
	if !errors.Is(err, repositories.ErrDuplicate) {
		return err
	}

	verr := apperrors.NewValidationError()
	if _, lookupErr := s.accounts.FindByUsername(ctx, username); lookupErr == nil {
		verr.Add("username", apperrors.MsgUsernameTaken)
	}
	if _, lookupErr := s.accounts.FindByEmail(ctx, email); lookupErr == nil {
		verr.Add("email", apperrors.MsgEmailTaken)
	}
	if license != "" {
		if _, lookupErr := s.profiles.RealtorByLicense(ctx, license); lookupErr == nil {
			verr.Add("license_number", apperrors.MsgLicenseTaken)
		}
	}
	if vErr := verr.Err(); vErr != nil {
		return vErr
	}
	return err
}
