package repository

import (
	"errors"

	"clinic-billing-backend/internal/apperrors"
	"clinic-billing-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentRepository reads the appointment/patient tables owned elsewhere.
// The billing engine only checks references and projects display fields.
type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *AppointmentRepository) GetPatient(id uuid.UUID) (*models.Patient, error) {
	var p models.Patient
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *AppointmentRepository) CountByPatient(patientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).Where("patient_id = ?", patientID).Count(&count).Error
	return count, err
}
