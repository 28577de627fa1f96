package services

import (
	"context"

	apperrors "parkside-realty/internal/errors"
	"parkside-realty/internal/models"
	"parkside-realty/internal/repositories"
)

const (
	// PageSize is the fixed public-browse page size.
	PageSize = 9
	// HomeFeaturedLimit caps the featured section on the home page.
	HomeFeaturedLimit = 4
	// HomeRealtorLimit caps the realtor section on the home page.
	HomeRealtorLimit = 3
)

// ListingService implements the public read paths: browse with filters,
// the home page sections, and the realtor dashboard.
type ListingService struct {
	properties repositories.PropertyRepository
	profiles   repositories.ProfileRepository
}

func NewListingService(properties repositories.PropertyRepository, profiles repositories.ProfileRepository) *ListingService {
	return &ListingService{properties: properties, profiles: profiles}
}

// Browse returns one page of listings matching the query. Filters compose
// conjunctively; the default newest-first ordering only changes for a
// recognized sort directive.
func (s *ListingService) Browse(ctx context.Context, query *models.ListingQuery, page int) (*models.ListingPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize

	properties, total, err := s.properties.FindPage(ctx, query, offset, PageSize)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)

	return &models.ListingPage{
		Properties: properties,
		Meta: models.PaginationMeta{
			Total:      total,
			Page:       page,
			PageSize:   PageSize,
			TotalPages: totalPages,
		},
		PropertyTypes: models.PropertyTypes(),
		StatusChoices: models.StatusChoices(),
	}, nil
}

// Home returns the home page sections: up to four featured listings and up
// to three realtors, in insertion order.
func (s *ListingService) Home(ctx context.Context) (*models.HomeContext, error) {
	featured, err := s.properties.FindFeatured(ctx, HomeFeaturedLimit)
	if err != nil {
		return nil, err
	}
	realtors, err := s.profiles.ListRealtors(ctx, HomeRealtorLimit)
	if err != nil {
		return nil, err
	}
	return &models.HomeContext{
		FeaturedProperties: featured,
		Realtors:           realtors,
	}, nil
}

// Dashboard returns the acting realtor's own listings, newest first.
func (s *ListingService) Dashboard(ctx context.Context, actor *models.Actor) ([]models.Property, error) {
	if !actor.IsRealtor() {
		return nil, apperrors.ErrRealtorRequired
	}
	return s.properties.FindByRealtor(ctx, actor.Realtor.ID)
}
