package repositories

import (
	"context"
	"errors"
	"time"

	"parkside-realty/internal/models"
	"parkside-realty/pkg/metrics"

	"gorm.io/gorm"
)

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) FindByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	start := time.Now()
	err := r.db.WithContext(ctx).
		Preload("Realtor").
		Preload("Realtor.Account").
		Preload("Client").
		First(&property, id).Error
	metrics.DBOperationDuration.WithLabelValues("find_by_id", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		metrics.DBErrorsTotal.WithLabelValues("find_by_id", "properties").Inc()
		return nil, err
	}
	return &property, nil
}

// FindPage applies the browse filters conjunctively and returns one page
// plus the total match count. Only the recognized sort directives change the
// newest-first default.
func (r *propertyRepository) FindPage(ctx context.Context, query *models.ListingQuery, offset, limit int) ([]models.Property, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Property{})

	if query != nil {
		if query.PropertyType != "" {
			tx = tx.Where("property_type = ?", query.PropertyType)
		}
		if query.Status != "" {
			tx = tx.Where("status = ?", query.Status)
		}
		if query.PriceMin != nil {
			tx = tx.Where("price >= ?", *query.PriceMin)
		}
		if query.PriceMax != nil {
			tx = tx.Where("price <= ?", *query.PriceMax)
		}
	}

	start := time.Now()
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		metrics.DBErrorsTotal.WithLabelValues("count", "properties").Inc()
		return nil, 0, err
	}

	switch sortOf(query) {
	case models.SortPriceAsc:
		tx = tx.Order("price ASC")
	case models.SortPriceDesc:
		tx = tx.Order("price DESC")
	default:
		tx = tx.Order("created_at DESC")
	}

	var properties []models.Property
	err := tx.Preload("Realtor").Offset(offset).Limit(limit).Find(&properties).Error
	metrics.DBOperationDuration.WithLabelValues("find_page", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("find_page", "properties").Inc()
		return nil, 0, err
	}
	return properties, total, nil
}

func sortOf(query *models.ListingQuery) string {
	if query == nil {
		return ""
	}
	return query.Sort
}

func (r *propertyRepository) FindFeatured(ctx context.Context, limit int) ([]models.Property, error) {
	var properties []models.Property
	start := time.Now()
	err := r.db.WithContext(ctx).Where("is_featured = ?", true).Limit(limit).Find(&properties).Error
	metrics.DBOperationDuration.WithLabelValues("find_featured", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("find_featured", "properties").Inc()
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) FindByRealtor(ctx context.Context, realtorID uint) ([]models.Property, error) {
	var properties []models.Property
	start := time.Now()
	err := r.db.WithContext(ctx).
		Where("realtor_id = ?", realtorID).
		Order("created_at DESC").
		Find(&properties).Error
	metrics.DBOperationDuration.WithLabelValues("find_by_realtor", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("find_by_realtor", "properties").Inc()
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(property).Error
	metrics.DBOperationDuration.WithLabelValues("insert", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("insert", "properties").Inc()
		return err
	}
	return nil
}

func (r *propertyRepository) Save(ctx context.Context, property *models.Property) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Save(property).Error
	metrics.DBOperationDuration.WithLabelValues("update", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("update", "properties").Inc()
		return err
	}
	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id uint) error {
	start := time.Now()
	result := r.db.WithContext(ctx).Delete(&models.Property{}, id)
	metrics.DBOperationDuration.WithLabelValues("delete", "properties").Observe(time.Since(start).Seconds())
	if result.Error != nil {
		metrics.DBErrorsTotal.WithLabelValues("delete", "properties").Inc()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *propertyRepository) AttachClient(ctx context.Context, propertyID, clientID uint) error {
	start := time.Now()
	err := r.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ?", propertyID).
		Update("client_id", clientID).Error
	metrics.DBOperationDuration.WithLabelValues("attach_client", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("attach_client", "properties").Inc()
		return err
	}
	return nil
}
