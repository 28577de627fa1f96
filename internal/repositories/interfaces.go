package repositories

import (
	"context"

	"parkside-realty/internal/models"

	"gorm.io/gorm"
)

// AccountRepository defines identity record access.
type AccountRepository interface {
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) AccountRepository
	FindByID(ctx context.Context, id uint) (*models.Account, error)
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
}

// ProfileRepository defines access to the client and realtor extension
// records of an account.
type ProfileRepository interface {
	WithTx(tx *gorm.DB) ProfileRepository
	ClientByAccount(ctx context.Context, accountID uint) (*models.ClientProfile, error)
	RealtorByAccount(ctx context.Context, accountID uint) (*models.RealtorProfile, error)
	RealtorByLicense(ctx context.Context, license string) (*models.RealtorProfile, error)
	CreateClient(ctx context.Context, profile *models.ClientProfile) error
	CreateRealtor(ctx context.Context, profile *models.RealtorProfile) error
	// GetOrCreateClient returns the account's client profile, creating it
	// with the given defaults when absent. Idempotent under concurrent
	// calls: the unique index on account_id makes the loser of a create
	// race re-read the winner's row.
	GetOrCreateClient(ctx context.Context, defaults *models.ClientProfile) (*models.ClientProfile, error)
	ListRealtors(ctx context.Context, limit int) ([]models.RealtorProfile, error)
}

// PropertyRepository defines listing access.
type PropertyRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Property, error)
	FindPage(ctx context.Context, query *models.ListingQuery, offset, limit int) ([]models.Property, int64, error)
	FindFeatured(ctx context.Context, limit int) ([]models.Property, error)
	FindByRealtor(ctx context.Context, realtorID uint) ([]models.Property, error)
	Create(ctx context.Context, property *models.Property) error
	Save(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id uint) error
	// AttachClient persists a repaired responsible-client association.
	AttachClient(ctx context.Context, propertyID, clientID uint) error
}
