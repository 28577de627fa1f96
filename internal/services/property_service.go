package services

import (
	"context"
	"errors"

	apperrors "parkside-realty/internal/errors"
	"parkside-realty/internal/models"
	"parkside-realty/internal/repositories"
	"parkside-realty/internal/validators"
	"parkside-realty/pkg/storage"
)

// defaultClientAddress is the placeholder used when a client profile is
// provisioned by the repair path rather than a signup form.
const defaultClientAddress = "Address not provided"

// PropertyService implements listing mutation with the ownership rules:
// only realtors create listings, and only the owning realtor edits or
// deletes one.
type PropertyService struct {
	properties repositories.PropertyRepository
	profiles   repositories.ProfileRepository
	validator  validators.PropertyValidator
}

func NewPropertyService(properties repositories.PropertyRepository, profiles repositories.ProfileRepository, validator validators.PropertyValidator) *PropertyService {
	return &PropertyService{
		properties: properties,
		profiles:   profiles,
		validator:  validator,
	}
}

// Detail is the public lookup: found or a hard not-found, nothing between.
func (s *PropertyService) Detail(ctx context.Context, id uint) (*models.Property, error) {
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, err
	}
	return property, nil
}

// Create adds a listing owned by the acting realtor. The realtor's own
// client profile (created on demand) is attached as the responsible client,
// so new rows never lack the association.
func (s *PropertyService) Create(ctx context.Context, actor *models.Actor, form *models.PropertyForm) (*models.Property, error) {
	if !actor.IsRealtor() {
		return nil, apperrors.ErrRealtorRequired
	}
	if err := s.validator.ValidateForm(form); err != nil {
		return nil, err
	}

	client, err := s.ownClientProfile(ctx, actor)
	if err != nil {
		return nil, err
	}

	property := &models.Property{
		RealtorID: actor.Realtor.ID,
		ClientID:  &client.ID,
		Status:    models.PropertyStatusForSale,
	}
	applyForm(property, form)

	if err := s.properties.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// LoadOwned fetches a listing for the edit flow: it enforces the realtor
// and ownership rules and repairs a missing responsible-client association
// before returning.
func (s *PropertyService) LoadOwned(ctx context.Context, actor *models.Actor, id uint) (*models.Property, error) {
	property, err := s.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.backfillClient(ctx, actor, property); err != nil {
		return nil, err
	}
	return property, nil
}

// ConfirmDelete fetches a listing for the delete confirmation page. The
// ownership rules apply but not the client repair: a row about to be removed
// gets no association written onto it.
func (s *PropertyService) ConfirmDelete(ctx context.Context, actor *models.Actor, id uint) (*models.Property, error) {
	return s.loadOwned(ctx, actor, id)
}

func (s *PropertyService) loadOwned(ctx context.Context, actor *models.Actor, id uint) (*models.Property, error) {
	if !actor.IsRealtor() {
		return nil, apperrors.ErrRealtorRequired
	}

	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, err
	}
	if !property.OwnedBy(actor.Realtor) {
		return nil, apperrors.ErrNotListingOwner
	}
	return property, nil
}

// Update applies a validated form to a listing the actor owns.
func (s *PropertyService) Update(ctx context.Context, actor *models.Actor, id uint, form *models.PropertyForm) (*models.Property, error) {
	property, err := s.LoadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateForm(form); err != nil {
		return nil, err
	}

	applyForm(property, form)
	if err := s.properties.Save(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Delete removes a listing the actor owns.
func (s *PropertyService) Delete(ctx context.Context, actor *models.Actor, id uint) error {
	property, err := s.loadOwned(ctx, actor, id)
	if err != nil {
		return err
	}
	return s.properties.Delete(ctx, property.ID)
}

// backfillClient repairs legacy rows with no responsible client: the acting
// realtor's own client profile is provisioned on demand and attached, and
// the repair is persisted immediately. Repeated access is idempotent since
// the profile lookup is get-or-create keyed by account.
func (s *PropertyService) backfillClient(ctx context.Context, actor *models.Actor, property *models.Property) error {
	if property.ClientID != nil {
		return nil
	}

	client, err := s.ownClientProfile(ctx, actor)
	if err != nil {
		return err
	}
	if err := s.properties.AttachClient(ctx, property.ID, client.ID); err != nil {
		return err
	}
	property.ClientID = &client.ID
	property.Client = client
	return nil
}

func (s *PropertyService) ownClientProfile(ctx context.Context, actor *models.Actor) (*models.ClientProfile, error) {
	return s.profiles.GetOrCreateClient(ctx, &models.ClientProfile{
		AccountID: actor.Account.ID,
		Phone:     actor.Realtor.Phone,
		Address:   defaultClientAddress,
	})
}

// applyForm copies the submitted fields onto the listing. Image fields are
// only touched when a new upload is present; an empty field keeps the
// existing stored path.
func applyForm(p *models.Property, form *models.PropertyForm) {
	p.Title = form.Title
	p.Description = form.Description
	p.PropertyType = models.PropertyType(form.PropertyType)
	if form.Status != "" {
		p.Status = models.PropertyStatus(form.Status)
	}
	p.Address = form.Address
	p.Price = form.Price
	p.Area = form.Area
	p.Bedrooms = form.Bedrooms
	p.Bathrooms = form.Bathrooms

	if form.MainImage != "" {
		p.MainImage = storage.PropertyMainImagePath(form.MainImage)
	}
	if form.Image1 != "" {
		p.Image1 = storage.PropertyGalleryImagePath(form.Image1)
	}
	if form.Image2 != "" {
		p.Image2 = storage.PropertyGalleryImagePath(form.Image2)
	}
	if form.Image3 != "" {
		p.Image3 = storage.PropertyGalleryImagePath(form.Image3)
	}
}
