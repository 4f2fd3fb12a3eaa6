// Package reporting derives the aggregate financial views: period summary,
// dashboard and receivables. All overdue decisions delegate to the shared
// Payment.OverdueAt predicate so every view classifies identically.
//
// The underlying queries (income, expenses, pending) run independently; the
// views tolerate read skew under concurrent writes by design.
package reporting

import (
	"time"

	"clinic-billing-backend/internal/models"
	"clinic-billing-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	paymentRepo     *repository.PaymentRepository
	transactionRepo *repository.TransactionRepository
	appointmentRepo *repository.AppointmentRepository
	now             func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	paymentRepo *repository.PaymentRepository,
	transactionRepo *repository.TransactionRepository,
	appointmentRepo *repository.AppointmentRepository,
	opts ...Option,
) *Service {
	s := &Service{
		paymentRepo:     paymentRepo,
		transactionRepo: transactionRepo,
		appointmentRepo: appointmentRepo,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type Period struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type FinancialSummary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetIncome     decimal.Decimal `json:"net_income"`
	TotalPending  decimal.Decimal `json:"total_pending"`
	Period        Period          `json:"period"`
}

// GetFinancialSummary sums ledger rows inside the inclusive range.
// TotalPending is deliberately range-independent: it is the current
// outstanding balance over all pending payments, whatever the period.
func (s *Service) GetFinancialSummary(start, end time.Time) (*FinancialSummary, error) {
	income, err := s.sumTransactions(&start, &end, models.TransactionIncome)
	if err != nil {
		return nil, err
	}
	expenses, err := s.sumTransactions(&start, &end, models.TransactionExpense)
	if err != nil {
		return nil, err
	}

	pendingPayments, err := s.paymentRepo.ListByStatus(models.PaymentPending)
	if err != nil {
		return nil, err
	}
	pending := decimal.Zero
	for _, p := range pendingPayments {
		pending = pending.Add(p.Amount)
	}

	return &FinancialSummary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetIncome:     income.Sub(expenses),
		TotalPending:  pending,
		Period:        Period{StartDate: start, EndDate: end},
	}, nil
}

func (s *Service) sumTransactions(start, end *time.Time, txType models.TransactionType) (decimal.Decimal, error) {
	rows, err := s.transactionRepo.ListRange(start, end, txType)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	return total, nil
}

type FinancialDashboard struct {
	TotalRevenue            decimal.Decimal `json:"total_revenue"`
	PaidRevenue             decimal.Decimal `json:"paid_revenue"`
	PendingRevenue          decimal.Decimal `json:"pending_revenue"`
	OverdueRevenue          decimal.Decimal `json:"overdue_revenue"`
	TotalAppointments       int             `json:"total_appointments"`
	PaidAppointments        int             `json:"paid_appointments"`
	PendingAppointments     int             `json:"pending_appointments"`
	OverdueAppointments     int             `json:"overdue_appointments"`
	AverageAppointmentValue decimal.Decimal `json:"average_appointment_value"`
	PaymentRatePercentage   decimal.Decimal `json:"payment_rate_percentage"`
}

// GetFinancialDashboard buckets payments by their current derived status.
// The paid / pending / overdue buckets are mutually exclusive and sum to
// TotalRevenue. A nil bound leaves that side of the range open.
func (s *Service) GetFinancialDashboard(start, end *time.Time) (*FinancialDashboard, error) {
	payments, err := s.paymentRepo.ListInRange(start, end)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dash := &FinancialDashboard{
		TotalRevenue:            decimal.Zero,
		PaidRevenue:             decimal.Zero,
		PendingRevenue:          decimal.Zero,
		OverdueRevenue:          decimal.Zero,
		AverageAppointmentValue: decimal.Zero,
		PaymentRatePercentage:   decimal.Zero,
	}

	for i := range payments {
		p := &payments[i]
		switch {
		case p.Status == models.PaymentPaid:
			dash.PaidRevenue = dash.PaidRevenue.Add(p.Amount)
			dash.PaidAppointments++
		case p.OverdueAt(now):
			dash.OverdueRevenue = dash.OverdueRevenue.Add(p.Amount)
			dash.OverdueAppointments++
		case p.Status == models.PaymentPending:
			dash.PendingRevenue = dash.PendingRevenue.Add(p.Amount)
			dash.PendingAppointments++
		}
	}

	dash.TotalRevenue = dash.PaidRevenue.Add(dash.PendingRevenue).Add(dash.OverdueRevenue)
	dash.TotalAppointments = dash.PaidAppointments + dash.PendingAppointments + dash.OverdueAppointments

	if dash.TotalAppointments > 0 {
		dash.AverageAppointmentValue = dash.TotalRevenue.
			Div(decimal.NewFromInt(int64(dash.TotalAppointments))).Round(2)
	}
	// Rate is 0 when there is no revenue at all, never a division by zero.
	if dash.TotalRevenue.IsPositive() {
		dash.PaymentRatePercentage = dash.PaidRevenue.
			Div(dash.TotalRevenue).
			Mul(decimal.NewFromInt(100)).Round(2)
	}
	return dash, nil
}

// GetAccountsReceivable lists every pending payment with its patient and
// doctor display fields, earliest due date first.
func (s *Service) GetAccountsReceivable() ([]repository.PaymentWithParties, error) {
	return s.paymentRepo.ListPendingWithParties()
}

type PatientFinancialSummary struct {
	PatientID         uuid.UUID       `json:"patient_id"`
	PatientName       string          `json:"patient_name"`
	TotalAppointments int64           `json:"total_appointments"`
	TotalPayments     int             `json:"total_payments"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	PendingAmount     decimal.Decimal `json:"pending_amount"`
}

func (s *Service) GetPatientFinancialSummary(patientID uuid.UUID) (*PatientFinancialSummary, error) {
	patient, err := s.appointmentRepo.GetPatient(patientID)
	if err != nil {
		return nil, err
	}
	appointments, err := s.appointmentRepo.CountByPatient(patientID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByPatient(patientID)
	if err != nil {
		return nil, err
	}

	summary := &PatientFinancialSummary{
		PatientID:         patient.ID,
		PatientName:       patient.Name,
		TotalAppointments: appointments,
		TotalPayments:     len(payments),
		TotalAmount:       decimal.Zero,
		PaidAmount:        decimal.Zero,
		PendingAmount:     decimal.Zero,
	}
	for i := range payments {
		p := &payments[i]
		summary.TotalAmount = summary.TotalAmount.Add(p.Amount)
		switch p.Status {
		case models.PaymentPaid:
			summary.PaidAmount = summary.PaidAmount.Add(p.Amount)
		case models.PaymentPending:
			summary.PendingAmount = summary.PendingAmount.Add(p.Amount)
		}
	}
	return summary, nil
}
