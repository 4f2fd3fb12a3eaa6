package repository

import (
	"errors"

	"clinic-billing-backend/internal/apperrors"
	"clinic-billing-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicePriceRepository struct {
	db *gorm.DB
}

func NewServicePriceRepository(db *gorm.DB) *ServicePriceRepository {
	return &ServicePriceRepository{db: db}
}

func (r *ServicePriceRepository) Create(sp *models.ServicePrice) error {
	return r.db.Create(sp).Error
}

func (r *ServicePriceRepository) Save(sp *models.ServicePrice) error {
	return r.db.Save(sp).Error
}

func (r *ServicePriceRepository) GetByID(id uuid.UUID) (*models.ServicePrice, error) {
	var sp models.ServicePrice
	err := r.db.First(&sp, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *ServicePriceRepository) GetByName(name string) (*models.ServicePrice, error) {
	var sp models.ServicePrice
	err := r.db.First(&sp, "service_name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *ServicePriceRepository) List(activeOnly bool) ([]models.ServicePrice, error) {
	q := r.db.Model(&models.ServicePrice{})
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var prices []models.ServicePrice
	err := q.Order("service_name ASC").Find(&prices).Error
	return prices, err
}
