// Package billing is the payment store: it owns payment records, their
// installment schedules and the coupling to the financial ledger. Creating a
// payment, writing its income ledger row and generating its installment batch
// happen inside one store transaction.
package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clinic-billing-backend/internal/apperrors"
	"clinic-billing-backend/internal/audit"
	"clinic-billing-backend/internal/models"
	"clinic-billing-backend/internal/repository"
	"clinic-billing-backend/internal/services/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const ledgerCategoryAppointment = "appointment_payment"

type Service struct {
	paymentRepo     *repository.PaymentRepository
	installmentRepo *repository.InstallmentRepository
	appointmentRepo *repository.AppointmentRepository
	ledger          *ledger.Service
	publisher       *audit.Publisher
	db              *gorm.DB
	now             func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source, used by tests that need a fixed today.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	paymentRepo *repository.PaymentRepository,
	installmentRepo *repository.InstallmentRepository,
	appointmentRepo *repository.AppointmentRepository,
	ledgerSvc *ledger.Service,
	publisher *audit.Publisher,
	opts ...Option,
) *Service {
	s := &Service{
		paymentRepo:     paymentRepo,
		installmentRepo: installmentRepo,
		appointmentRepo: appointmentRepo,
		ledger:          ledgerSvc,
		publisher:       publisher,
		db:              paymentRepo.DB(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreatePaymentInput struct {
	AppointmentID     uuid.UUID
	Amount            decimal.Decimal
	PaymentMethod     models.PaymentMethod
	Status            models.PaymentStatus
	Installments      int
	InstallmentNumber int
	DueDate           *time.Time
	Notes             string
}

// CreatePayment validates the input, checks the appointment reference, then
// writes the payment, its income ledger row and (for multi-installment
// payments) the installment batch as one atomic unit. A ledger failure rolls
// back the payment so money is never recorded without its audit trail.
func (s *Service) CreatePayment(in CreatePaymentInput) (*models.Payment, error) {
	if in.AppointmentID == uuid.Nil {
		return nil, apperrors.NewValidation("appointment_id", "is required")
	}
	if !in.Amount.IsPositive() {
		return nil, apperrors.NewValidation("amount", "must be positive")
	}
	if !in.PaymentMethod.Valid() {
		return nil, apperrors.NewValidation("payment_method", "unknown method")
	}
	if in.Status == "" {
		in.Status = models.PaymentPending
	}
	if !in.Status.Valid() {
		return nil, apperrors.NewValidation("status", "unknown status")
	}
	if in.Installments < 1 {
		in.Installments = 1
	}
	if in.InstallmentNumber < 1 {
		in.InstallmentNumber = 1
	}
	if in.InstallmentNumber > in.Installments {
		return nil, apperrors.NewValidation("installment_number", "cannot exceed installments")
	}

	exists, err := s.appointmentRepo.Exists(in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &apperrors.ReferentialIntegrityError{Entity: "appointment", ID: in.AppointmentID.String()}
	}

	now := s.now()
	payment := &models.Payment{
		ID:                uuid.New(),
		AppointmentID:     in.AppointmentID,
		Amount:            in.Amount,
		PaymentMethod:     in.PaymentMethod,
		Status:            in.Status,
		DueDate:           in.DueDate,
		Installments:      in.Installments,
		InstallmentNumber: in.InstallmentNumber,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if payment.Status == models.PaymentPaid {
		payment.PaymentDate = &now
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.WithTx(tx).Create(payment); err != nil {
			return err
		}

		details := map[string]interface{}{
			"payment_method":     payment.PaymentMethod,
			"installments":       payment.Installments,
			"installment_number": payment.InstallmentNumber,
		}
		detailsJSON, _ := json.Marshal(details)

		_, err := s.ledger.WithTx(tx).Record(ledger.Entry{
			PaymentID:       &payment.ID,
			TransactionType: models.TransactionIncome,
			Amount:          payment.Amount,
			Description:     fmt.Sprintf("Payment for appointment %s", payment.AppointmentID),
			Category:        ledgerCategoryAppointment,
			TransactionDate: now,
			Details:         detailsJSON,
		})
		if err != nil {
			return &apperrors.LedgerConsistencyError{Op: "create payment", Err: err}
		}

		if payment.Installments > 1 {
			batch, err := s.buildInstallments(payment.ID, payment.Installments, payment.Amount, now)
			if err != nil {
				return err
			}
			if err := s.installmentRepo.WithTx(tx).CreateBatch(batch); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(context.Background(), audit.EventPaymentCreated, payment.ID.String(), payment.Amount.StringFixed(2))
	return payment, nil
}

type UpdatePaymentInput struct {
	Amount        *decimal.Decimal
	PaymentMethod *models.PaymentMethod
	Status        *models.PaymentStatus
	DueDate       *time.Time
	Notes         *string
	TransactionID *string
}

func (s *Service) UpdatePayment(id uuid.UUID, in UpdatePaymentInput) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, apperrors.NewValidation("amount", "must be positive")
		}
		payment.Amount = *in.Amount
	}
	if in.PaymentMethod != nil {
		if !in.PaymentMethod.Valid() {
			return nil, apperrors.NewValidation("payment_method", "unknown method")
		}
		payment.PaymentMethod = *in.PaymentMethod
	}
	if in.Status != nil && *in.Status != payment.Status {
		if !in.Status.Valid() {
			return nil, apperrors.NewValidation("status", "unknown status")
		}
		if !payment.Status.CanTransitionTo(*in.Status) {
			return nil, apperrors.NewValidation("status", fmt.Sprintf("cannot change a %s payment to %s", payment.Status, *in.Status))
		}
		if *in.Status == models.PaymentPaid && payment.PaymentDate == nil {
			now := s.now()
			payment.PaymentDate = &now
		}
		payment.Status = *in.Status
	}
	if in.DueDate != nil {
		payment.DueDate = in.DueDate
	}
	if in.Notes != nil {
		payment.Notes = *in.Notes
	}
	if in.TransactionID != nil {
		payment.TransactionID = in.TransactionID
	}
	payment.UpdatedAt = s.now()

	if err := s.paymentRepo.Save(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *Service) GetPayment(id uuid.UUID) (*repository.PaymentWithParties, error) {
	return s.paymentRepo.GetDetail(id)
}

func (s *Service) ListByAppointment(appointmentID uuid.UUID) ([]models.Payment, error) {
	return s.paymentRepo.ListByAppointment(appointmentID)
}

func (s *Service) ListByPatient(patientID uuid.UUID) ([]repository.PaymentWithParties, error) {
	return s.paymentRepo.ListByPatient(patientID)
}

func (s *Service) ListInstallments(paymentID uuid.UUID) ([]models.PaymentInstallment, error) {
	if _, err := s.paymentRepo.GetByID(paymentID); err != nil {
		return nil, err
	}
	return s.installmentRepo.ListByPayment(paymentID)
}

// ProcessPayment marks a pending payment as paid: records the settlement
// method, the external transaction reference and the payment date. The income
// ledger row already exists from creation, so none is added here.
func (s *Service) ProcessPayment(id uuid.UUID, method models.PaymentMethod, transactionID, notes *string) (*models.Payment, error) {
	if !method.Valid() {
		return nil, apperrors.NewValidation("payment_method", "unknown method")
	}

	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment.Status != models.PaymentPending {
		return nil, apperrors.NewValidation("status", fmt.Sprintf("payment is %s, only pending payments can be processed", payment.Status))
	}

	now := s.now()
	payment.Status = models.PaymentPaid
	payment.PaymentMethod = method
	payment.PaymentDate = &now
	payment.UpdatedAt = now
	if transactionID != nil {
		payment.TransactionID = transactionID
	}
	if notes != nil {
		payment.Notes = *notes
	}

	if err := s.paymentRepo.Save(payment); err != nil {
		return nil, err
	}

	s.publisher.Publish(context.Background(), audit.EventPaymentProcessed, payment.ID.String(), payment.Amount.StringFixed(2))
	return payment, nil
}

// DeletePayment is administrative correction only; nothing in the normal
// flows calls it.
func (s *Service) DeletePayment(id uuid.UUID) error {
	return s.paymentRepo.Delete(id)
}
