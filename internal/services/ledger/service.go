// Package ledger owns the append-only financial transaction log. Rows are
// written once and never touched again; the package exposes no mutation
// beyond Record.
package ledger

import (
	"time"

	"clinic-billing-backend/internal/apperrors"
	"clinic-billing-backend/internal/models"
	"clinic-billing-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	transactionRepo *repository.TransactionRepository
}

func NewService(transactionRepo *repository.TransactionRepository) *Service {
	return &Service{transactionRepo: transactionRepo}
}

// WithTx returns a service bound to an open store transaction, so callers can
// make a ledger write part of a larger atomic unit.
func (s *Service) WithTx(tx *gorm.DB) *Service {
	return &Service{transactionRepo: s.transactionRepo.WithTx(tx)}
}

// Entry is the input for one ledger row.
type Entry struct {
	PaymentID       *uuid.UUID
	TransactionType models.TransactionType
	Amount          decimal.Decimal
	Description     string
	Category        string
	TransactionDate time.Time
	Details         datatypes.JSON
}

func (s *Service) Record(entry Entry) (*models.FinancialTransaction, error) {
	if !entry.TransactionType.Valid() {
		return nil, apperrors.NewValidation("transaction_type", "must be income or expense")
	}
	if !entry.Amount.IsPositive() {
		return nil, apperrors.NewValidation("amount", "must be positive")
	}
	if entry.TransactionDate.IsZero() {
		entry.TransactionDate = time.Now()
	}

	row := &models.FinancialTransaction{
		ID:              uuid.New(),
		PaymentID:       entry.PaymentID,
		TransactionType: entry.TransactionType,
		Amount:          entry.Amount,
		Description:     entry.Description,
		Category:        entry.Category,
		TransactionDate: entry.TransactionDate,
		Details:         entry.Details,
		CreatedAt:       time.Now(),
	}
	if err := s.transactionRepo.Create(row); err != nil {
		return nil, err
	}
	return row, nil
}

// GetRange lists ledger rows inside the inclusive date bounds, optionally
// filtered by transaction type. Nil bounds are open ends.
func (s *Service) GetRange(start, end *time.Time, txType models.TransactionType) ([]models.FinancialTransaction, error) {
	return s.transactionRepo.ListRange(start, end, txType)
}
