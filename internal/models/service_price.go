package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServicePrice is a catalog entry for a billable service. Entries are
// soft-deactivated via Active, never hard-deleted while referenced.
type ServicePrice struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ServiceName    string           `gorm:"uniqueIndex" json:"service_name"`
	Description    string           `json:"description"`
	BasePrice      decimal.Decimal  `gorm:"type:numeric(12,2)" json:"base_price"`
	InsurancePrice *decimal.Decimal `gorm:"type:numeric(12,2)" json:"insurance_price"`
	Active         bool             `gorm:"default:true;index" json:"active"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
