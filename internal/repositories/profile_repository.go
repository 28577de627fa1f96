package repositories

import (
	"context"
	"errors"
	"time"

	"parkside-realty/internal/models"
	"parkside-realty/pkg/metrics"

	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) WithTx(tx *gorm.DB) ProfileRepository {
	return &profileRepository{db: tx}
}

func (r *profileRepository) ClientByAccount(ctx context.Context, accountID uint) (*models.ClientProfile, error) {
	var profile models.ClientProfile
	start := time.Now()
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&profile).Error
	metrics.DBOperationDuration.WithLabelValues("find_by_account", "client_profiles").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		metrics.DBErrorsTotal.WithLabelValues("find_by_account", "client_profiles").Inc()
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) RealtorByAccount(ctx context.Context, accountID uint) (*models.RealtorProfile, error) {
	var profile models.RealtorProfile
	start := time.Now()
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&profile).Error
	metrics.DBOperationDuration.WithLabelValues("find_by_account", "realtor_profiles").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		metrics.DBErrorsTotal.WithLabelValues("find_by_account", "realtor_profiles").Inc()
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) RealtorByLicense(ctx context.Context, license string) (*models.RealtorProfile, error) {
	var profile models.RealtorProfile
	start := time.Now()
	err := r.db.WithContext(ctx).Where("license_number = ?", license).First(&profile).Error
	metrics.DBOperationDuration.WithLabelValues("find_by_license", "realtor_profiles").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		metrics.DBErrorsTotal.WithLabelValues("find_by_license", "realtor_profiles").Inc()
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) CreateClient(ctx context.Context, profile *models.ClientProfile) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(profile).Error
	metrics.DBOperationDuration.WithLabelValues("insert", "client_profiles").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		metrics.DBErrorsTotal.WithLabelValues("insert", "client_profiles").Inc()
		return err
	}
	return nil
}

func (r *profileRepository) CreateRealtor(ctx context.Context, profile *models.RealtorProfile) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(profile).Error
	metrics.DBOperationDuration.WithLabelValues("insert", "realtor_profiles").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		metrics.DBErrorsTotal.WithLabelValues("insert", "realtor_profiles").Inc()
		return err
	}
	return nil
}

// GetOrCreateClient is the idempotent repair primitive: a lookup, then a
// create that falls back to a re-read when a concurrent request won the
// create race on the account_id unique index.
func (r *profileRepository) GetOrCreateClient(ctx context.Context, defaults *models.ClientProfile) (*models.ClientProfile, error) {
	existing, err := r.ClientByAccount(ctx, defaults.AccountID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if err := r.CreateClient(ctx, defaults); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return r.ClientByAccount(ctx, defaults.AccountID)
		}
		return nil, err
	}
	return defaults, nil
}

func (r *profileRepository) ListRealtors(ctx context.Context, limit int) ([]models.RealtorProfile, error) {
	var profiles []models.RealtorProfile
	start := time.Now()
	err := r.db.WithContext(ctx).Preload("Account").Limit(limit).Find(&profiles).Error
	metrics.DBOperationDuration.WithLabelValues("find", "realtor_profiles").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("find", "realtor_profiles").Inc()
		return nil, err
	}
	return profiles, nil
}
