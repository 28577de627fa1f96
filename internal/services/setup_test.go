package services

import (
	"fmt"
	"testing"

	"parkside-realty/internal/models"
	"parkside-realty/internal/repositories"
	"parkside-realty/internal/validators"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.Account{}, &models.ClientProfile{}, &models.RealtorProfile{}, &models.Property{})
	assert.NoError(t, err)
	return db
}

func newAccountService(db *gorm.DB) *AccountService {
	return NewAccountService(
		db,
		repositories.NewAccountRepository(db),
		repositories.NewProfileRepository(db),
		validators.NewSignupValidator(),
		testSecret,
	)
}

func newPropertyService(db *gorm.DB) *PropertyService {
	return NewPropertyService(
		repositories.NewPropertyRepository(db),
		repositories.NewProfileRepository(db),
		validators.NewPropertyValidator(),
	)
}

func newListingService(db *gorm.DB) *ListingService {
	return NewListingService(
		repositories.NewPropertyRepository(db),
		repositories.NewProfileRepository(db),
	)
}

// createRealtorActor persists an account plus realtor profile and returns
// the acting identity, the way the identity middleware would resolve it.
func createRealtorActor(t *testing.T, db *gorm.DB, username string) *models.Actor {
	account := &models.Account{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	assert.NoError(t, db.Create(account).Error)

	realtor := &models.RealtorProfile{
		AccountID:     account.ID,
		LicenseNumber: "LIC-" + username,
		Phone:         "5550100",
	}
	assert.NoError(t, db.Create(realtor).Error)

	return &models.Actor{Account: account, Realtor: realtor}
}

func createClientActor(t *testing.T, db *gorm.DB, username string) *models.Actor {
	account := &models.Account{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	assert.NoError(t, db.Create(account).Error)

	client := &models.ClientProfile{
		AccountID: account.ID,
		Phone:     "5550101",
	}
	assert.NoError(t, db.Create(client).Error)

	return &models.Actor{Account: account, Client: client}
}

func createProperty(t *testing.T, db *gorm.DB, realtor *models.RealtorProfile, title string, price float64) *models.Property {
	property := &models.Property{
		Title:        title,
		PropertyType: models.PropertyTypeApartment,
		Status:       models.PropertyStatusForSale,
		Address:      "1 Main St",
		Price:        price,
		Area:         80,
		RealtorID:    realtor.ID,
	}
	assert.NoError(t, db.Create(property).Error)
	return property
}

func seedProperties(t *testing.T, db *gorm.DB, realtor *models.RealtorProfile, n int) {
	for i := 0; i < n; i++ {
		createProperty(t, db, realtor, fmt.Sprintf("Listing %02d", i), float64(100000+i*1000))
	}
}
