package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// FinancialTransaction is an append-only ledger row. Once created it is never
// mutated or deleted; no update path exists anywhere in the codebase.
type FinancialTransaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PaymentID       *uuid.UUID      `gorm:"type:uuid;index" json:"payment_id"`
	TransactionType TransactionType `gorm:"index" json:"transaction_type"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	Description     string          `json:"description"`
	Category        string          `gorm:"index" json:"category"`
	TransactionDate time.Time       `gorm:"index" json:"transaction_date"`
	Details         datatypes.JSON  `json:"details,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
