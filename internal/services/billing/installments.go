package billing

import (
	"time"

	"clinic-billing-backend/internal/apperrors"
	"clinic-billing-backend/internal/models"
	"clinic-billing-backend/internal/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GenerateInstallments builds and persists the schedule for an existing
// payment. CreatePayment already does this inline for new multi-installment
// payments; this entry point serves administrative re-generation.
func (s *Service) GenerateInstallments(paymentID uuid.UUID, count int, total decimal.Decimal) ([]models.PaymentInstallment, error) {
	if _, err := s.paymentRepo.GetByID(paymentID); err != nil {
		return nil, err
	}
	batch, err := s.buildInstallments(paymentID, count, total, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.installmentRepo.CreateBatch(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// buildInstallments splits the total over count parts and dates installment i
// at today + (i-1) months, clamped to month end. Amount rounding folds the
// remainder into the last installment so the batch sums exactly to total.
func (s *Service) buildInstallments(paymentID uuid.UUID, count int, total decimal.Decimal, today time.Time) ([]models.PaymentInstallment, error) {
	if count < 1 {
		return nil, apperrors.NewValidation("installments", "must be at least 1")
	}
	amounts := money.Split(total, count)
	batch := make([]models.PaymentInstallment, count)
	for i := 0; i < count; i++ {
		batch[i] = models.PaymentInstallment{
			ID:                uuid.New(),
			PaymentID:         paymentID,
			InstallmentNumber: i + 1,
			Amount:            amounts[i],
			DueDate:           money.AddMonths(today, i),
			Status:            models.InstallmentPending,
			CreatedAt:         today,
			UpdatedAt:         today,
		}
	}
	return batch, nil
}

// PayInstallment settles one installment independently of its siblings.
func (s *Service) PayInstallment(id uuid.UUID) (*models.PaymentInstallment, error) {
	inst, err := s.installmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inst.Status == models.InstallmentPaid {
		return nil, apperrors.NewValidation("status", "installment already paid")
	}
	if inst.Status == models.InstallmentCancelled {
		return nil, apperrors.NewValidation("status", "installment is cancelled")
	}
	inst.Status = models.InstallmentPaid
	inst.UpdatedAt = s.now()
	if err := s.installmentRepo.Save(inst); err != nil {
		return nil, err
	}
	return inst, nil
}
