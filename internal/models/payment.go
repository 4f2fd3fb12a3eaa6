package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodDebitCard    PaymentMethod = "debit_card"
	MethodPix          PaymentMethod = "pix"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCheck        PaymentMethod = "check"
	MethodInsurance    PaymentMethod = "insurance"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCreditCard, MethodDebitCard, MethodPix, MethodBankTransfer, MethodCheck, MethodInsurance:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentCancelled, PaymentRefunded:
		return true
	}
	return false
}

// CanTransitionTo enforces the payment lifecycle: pending payments can be
// paid or cancelled, paid payments can be refunded. Cancelled and refunded
// are terminal.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentPending:
		return next == PaymentPaid || next == PaymentCancelled
	case PaymentPaid:
		return next == PaymentRefunded
	}
	return false
}

// Payment is one charge against one appointment. Multi-part charges keep
// Installments > 1 and get a PaymentInstallment schedule alongside.
type Payment struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"appointment_id"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	PaymentMethod     PaymentMethod   `gorm:"index" json:"payment_method"`
	Status            PaymentStatus   `gorm:"index" json:"status"`
	PaymentDate       *time.Time      `json:"payment_date"`
	DueDate           *time.Time      `gorm:"index" json:"due_date"`
	Installments      int             `gorm:"default:1" json:"installments"`
	InstallmentNumber int             `gorm:"default:1" json:"installment_number"`
	Notes             string          `json:"notes"`
	TransactionID     *string         `json:"transaction_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// OverdueAt is the single source of truth for overdue classification:
// a pending payment whose due date has passed at day granularity. Overdue is
// always derived, never stored, so every read path must go through here.
func (p *Payment) OverdueAt(now time.Time) bool {
	if p.Status != PaymentPending || p.DueDate == nil {
		return false
	}
	return startOfDay(*p.DueDate).Before(startOfDay(now))
}

// DaysOverdueAt counts whole days between the due date and now. Zero or
// negative means not yet overdue.
func (p *Payment) DaysOverdueAt(now time.Time) int {
	if p.DueDate == nil {
		return 0
	}
	return int(startOfDay(now).Sub(startOfDay(*p.DueDate)).Hours() / 24)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
