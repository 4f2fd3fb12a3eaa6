package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Appointment, Patient and Doctor are owned by other parts of the system.
// Only the fields the billing engine joins on are modeled here.

type Appointment struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID   uuid.UUID       `gorm:"type:uuid;index" json:"patient_id"`
	DoctorID    uuid.UUID       `gorm:"type:uuid;index" json:"doctor_id"`
	ScheduledAt time.Time       `json:"scheduled_at"`
	Value       decimal.Decimal `gorm:"type:numeric(12,2)" json:"value"`
}

type Patient struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `json:"name"`
	CPF   string    `gorm:"column:cpf" json:"cpf"`
	Phone string    `json:"phone"`
}

func (Patient) TableName() string {
	return "patients"
}

type Doctor struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `json:"name"`
}
