package repositories

import (
	"context"
	"errors"
	"time"

	"parkside-realty/internal/models"
	"parkside-realty/pkg/metrics"

	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) WithTx(tx *gorm.DB) AccountRepository {
	return &accountRepository{db: tx}
}

func (r *accountRepository) FindByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	start := time.Now()
	err := r.db.WithContext(ctx).First(&account, id).Error
	metrics.DBOperationDuration.WithLabelValues("find_by_id", "accounts").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		metrics.DBErrorsTotal.WithLabelValues("find_by_id", "accounts").Inc()
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	var account models.Account
	start := time.Now()
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error
	metrics.DBOperationDuration.WithLabelValues("find_by_username", "accounts").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		metrics.DBErrorsTotal.WithLabelValues("find_by_username", "accounts").Inc()
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	start := time.Now()
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	metrics.DBOperationDuration.WithLabelValues("find_by_email", "accounts").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		metrics.DBErrorsTotal.WithLabelValues("find_by_email", "accounts").Inc()
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(account).Error
	metrics.DBOperationDuration.WithLabelValues("insert", "accounts").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		metrics.DBErrorsTotal.WithLabelValues("insert", "accounts").Inc()
		return err
	}
	return nil
}
