package billing

import (
	"time"

	"clinic-billing-backend/internal/apperrors"
	"clinic-billing-backend/internal/models"
	"clinic-billing-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogService manages the priced service catalog. It is a separate
// component from payments: prices are administrative configuration.
type CatalogService struct {
	priceRepo *repository.ServicePriceRepository
	now       func() time.Time
}

func NewCatalogService(priceRepo *repository.ServicePriceRepository) *CatalogService {
	return &CatalogService{priceRepo: priceRepo, now: time.Now}
}

type ServicePriceInput struct {
	ServiceName    string
	Description    string
	BasePrice      decimal.Decimal
	InsurancePrice *decimal.Decimal
}

func (s *CatalogService) Create(in ServicePriceInput) (*models.ServicePrice, error) {
	if in.ServiceName == "" {
		return nil, apperrors.NewValidation("service_name", "is required")
	}
	if !in.BasePrice.IsPositive() {
		return nil, apperrors.NewValidation("base_price", "must be positive")
	}
	if in.InsurancePrice != nil && !in.InsurancePrice.IsPositive() {
		return nil, apperrors.NewValidation("insurance_price", "must be positive")
	}
	if _, err := s.priceRepo.GetByName(in.ServiceName); err == nil {
		return nil, apperrors.NewValidation("service_name", "already exists")
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	now := s.now()
	sp := &models.ServicePrice{
		ID:             uuid.New(),
		ServiceName:    in.ServiceName,
		Description:    in.Description,
		BasePrice:      in.BasePrice,
		InsurancePrice: in.InsurancePrice,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.priceRepo.Create(sp); err != nil {
		return nil, err
	}
	return sp, nil
}

type ServicePriceUpdate struct {
	Description    *string
	BasePrice      *decimal.Decimal
	InsurancePrice *decimal.Decimal
	Active         *bool
}

// Update mutates a catalog entry in place. Deactivation happens here via
// Active=false; entries are never hard-deleted.
func (s *CatalogService) Update(id uuid.UUID, in ServicePriceUpdate) (*models.ServicePrice, error) {
	sp, err := s.priceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Description != nil {
		sp.Description = *in.Description
	}
	if in.BasePrice != nil {
		if !in.BasePrice.IsPositive() {
			return nil, apperrors.NewValidation("base_price", "must be positive")
		}
		sp.BasePrice = *in.BasePrice
	}
	if in.InsurancePrice != nil {
		if !in.InsurancePrice.IsPositive() {
			return nil, apperrors.NewValidation("insurance_price", "must be positive")
		}
		sp.InsurancePrice = in.InsurancePrice
	}
	if in.Active != nil {
		sp.Active = *in.Active
	}
	sp.UpdatedAt = s.now()

	if err := s.priceRepo.Save(sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *CatalogService) List(activeOnly bool) ([]models.ServicePrice, error) {
	return s.priceRepo.List(activeOnly)
}
