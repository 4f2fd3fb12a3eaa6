package repository

import (
	"errors"

	"clinic-billing-backend/internal/apperrors"
	"clinic-billing-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstallmentRepository struct {
	db *gorm.DB
}

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) WithTx(tx *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: tx}
}

// CreateBatch inserts a whole schedule at once so a multi-installment payment
// never ends up with a partial schedule.
func (r *InstallmentRepository) CreateBatch(installments []models.PaymentInstallment) error {
	if len(installments) == 0 {
		return nil
	}
	return r.db.Create(&installments).Error
}

func (r *InstallmentRepository) ListByPayment(paymentID uuid.UUID) ([]models.PaymentInstallment, error) {
	var rows []models.PaymentInstallment
	err := r.db.Where("payment_id = ?", paymentID).
		Order("installment_number ASC").
		Find(&rows).Error
	return rows, err
}

func (r *InstallmentRepository) GetByID(id uuid.UUID) (*models.PaymentInstallment, error) {
	var inst models.PaymentInstallment
	err := r.db.First(&inst, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *InstallmentRepository) Save(inst *models.PaymentInstallment) error {
	return r.db.Save(inst).Error
}
