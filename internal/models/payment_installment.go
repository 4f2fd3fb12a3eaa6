package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InstallmentStatus string

const (
	InstallmentPending   InstallmentStatus = "pending"
	InstallmentPaid      InstallmentStatus = "paid"
	InstallmentOverdue   InstallmentStatus = "overdue"
	InstallmentCancelled InstallmentStatus = "cancelled"
)

// PaymentInstallment is one scheduled sub-payment under a parent Payment.
// The batch for a payment always sums exactly to the parent amount.
type PaymentInstallment struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	PaymentID         uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_payment_installment_no" json:"payment_id"`
	InstallmentNumber int               `gorm:"uniqueIndex:idx_payment_installment_no" json:"installment_number"`
	Amount            decimal.Decimal   `gorm:"type:numeric(12,2)" json:"amount"`
	DueDate           time.Time         `json:"due_date"`
	Status            InstallmentStatus `gorm:"index" json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func (PaymentInstallment) TableName() string {
	return "payment_installments"
}
