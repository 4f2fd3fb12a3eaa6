package repository

import (
	"errors"
	"time"

	"clinic-billing-backend/internal/apperrors"
	"clinic-billing-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentWithParties is the joined read shape used by detail views, accounts
// receivable and alerts. Only identifying fields of the foreign records are
// projected, never the full rows.
type PaymentWithParties struct {
	models.Payment
	ScheduledAt  time.Time `json:"scheduled_at"`
	PatientID    uuid.UUID `json:"patient_id"`
	PatientName  string    `json:"patient_name"`
	PatientPhone string    `json:"patient_phone"`
	DoctorName   string    `json:"doctor_name"`
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// DB exposes the underlying handle so services can open transactions.
func (r *PaymentRepository) DB() *gorm.DB {
	return r.db
}

// WithTx returns a repository bound to an open transaction.
func (r *PaymentRepository) WithTx(tx *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: tx}
}

func (r *PaymentRepository) Create(p *models.Payment) error {
	return r.db.Create(p).Error
}

func (r *PaymentRepository) Save(p *models.Payment) error {
	return r.db.Save(p).Error
}

func (r *PaymentRepository) GetByID(id uuid.UUID) (*models.Payment, error) {
	var p models.Payment
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const paymentJoinSelect = `payments.*,
	appointments.scheduled_at AS scheduled_at,
	patients.id AS patient_id,
	patients.name AS patient_name,
	patients.phone AS patient_phone,
	doctors.name AS doctor_name`

func (r *PaymentRepository) joined() *gorm.DB {
	return r.db.Model(&models.Payment{}).
		Select(paymentJoinSelect).
		Joins("JOIN appointments ON appointments.id = payments.appointment_id").
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id")
}

func (r *PaymentRepository) GetDetail(id uuid.UUID) (*PaymentWithParties, error) {
	var row PaymentWithParties
	err := r.joined().Where("payments.id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *PaymentRepository) ListByAppointment(appointmentID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("appointment_id = ?", appointmentID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) ListByPatient(patientID uuid.UUID) ([]PaymentWithParties, error) {
	var rows []PaymentWithParties
	err := r.joined().
		Where("patients.id = ?", patientID).
		Order("payments.created_at DESC").
		Find(&rows).Error
	return rows, err
}

// ListPendingWithParties backs accounts receivable and the alert engine:
// every pending payment with its patient/doctor display fields, earliest due
// date first. Overdue classification happens in the service layer.
func (r *PaymentRepository) ListPendingWithParties() ([]PaymentWithParties, error) {
	var rows []PaymentWithParties
	err := r.joined().
		Where("payments.status = ?", models.PaymentPending).
		Order("payments.due_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *PaymentRepository) ListByStatus(status models.PaymentStatus) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("status = ?", status).Find(&payments).Error
	return payments, err
}

// ListInRange returns payments created inside the inclusive bounds; nil
// bounds are open ends.
func (r *PaymentRepository) ListInRange(start, end *time.Time) ([]models.Payment, error) {
	q := r.db.Model(&models.Payment{})
	if start != nil {
		q = q.Where("created_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("created_at < ?", endOfDay(*end))
	}
	var payments []models.Payment
	err := q.Find(&payments).Error
	return payments, err
}

// Delete exists for administrative correction and test cleanup only; payments
// are never removed in normal operation.
func (r *PaymentRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Payment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
