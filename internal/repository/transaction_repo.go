package repository

import (
	"time"

	"clinic-billing-backend/internal/models"

	"gorm.io/gorm"
)

// endOfDay widens an inclusive date bound to cover that whole calendar day,
// so rows stamped with an intraday time on the end date are not excluded.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}

// TransactionRepository persists ledger rows. The ledger is append-only:
// there is deliberately no update or delete method here.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) WithTx(tx *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: tx}
}

func (r *TransactionRepository) Create(t *models.FinancialTransaction) error {
	return r.db.Create(t).Error
}

// ListRange returns ledger rows with transaction_date inside the inclusive
// bounds, optionally filtered by type. Nil bounds are open ends.
func (r *TransactionRepository) ListRange(start, end *time.Time, txType models.TransactionType) ([]models.FinancialTransaction, error) {
	q := r.db.Model(&models.FinancialTransaction{})
	if start != nil {
		q = q.Where("transaction_date >= ?", *start)
	}
	if end != nil {
		q = q.Where("transaction_date < ?", endOfDay(*end))
	}
	if txType != "" {
		q = q.Where("transaction_type = ?", txType)
	}
	var rows []models.FinancialTransaction
	err := q.Order("transaction_date DESC").Find(&rows).Error
	return rows, err
}
