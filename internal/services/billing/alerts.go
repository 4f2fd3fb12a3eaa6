package billing

import (
	"sort"
	"time"

	"clinic-billing-backend/internal/money"
	"clinic-billing-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AlertPriority string

const (
	PriorityCritical AlertPriority = "critical"
	PriorityHigh     AlertPriority = "high"
	PriorityMedium   AlertPriority = "medium"
)

// Alert severity thresholds in whole days overdue.
const (
	criticalAfterDays = 30
	highAfterDays     = 14
)

var prioritySeverity = map[AlertPriority]int{
	PriorityCritical: 3,
	PriorityHigh:     2,
	PriorityMedium:   1,
}

// PaymentAlert is generated fresh on every call; nothing about alerts is
// persisted.
type PaymentAlert struct {
	PaymentID     uuid.UUID       `json:"payment_id"`
	PatientName   string          `json:"patient_name"`
	PatientPhone  string          `json:"patient_phone"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amount_display"`
	DueDate       time.Time       `json:"due_date"`
	DaysOverdue   int             `json:"days_overdue"`
	Priority      AlertPriority   `json:"priority"`
}

// ListOverdue returns every pending payment whose due date has passed,
// earliest due date first. Classification goes through the shared
// Payment.OverdueAt predicate, same as the dashboard and the alerts.
func (s *Service) ListOverdue() ([]repository.PaymentWithParties, error) {
	rows, err := s.paymentRepo.ListPendingWithParties()
	if err != nil {
		return nil, err
	}
	now := s.now()
	overdue := make([]repository.PaymentWithParties, 0, len(rows))
	for _, row := range rows {
		if row.OverdueAt(now) {
			overdue = append(overdue, row)
		}
	}
	return overdue, nil
}

// GenerateAlerts derives a prioritized alert per overdue payment. Payments
// overdue by less than one whole day produce no alert.
func (s *Service) GenerateAlerts() ([]PaymentAlert, error) {
	rows, err := s.paymentRepo.ListPendingWithParties()
	if err != nil {
		return nil, err
	}

	now := s.now()
	var alerts []PaymentAlert
	for _, row := range rows {
		if !row.OverdueAt(now) {
			continue
		}
		days := row.DaysOverdueAt(now)
		if days < 1 {
			continue
		}

		priority := PriorityMedium
		switch {
		case days >= criticalAfterDays:
			priority = PriorityCritical
		case days >= highAfterDays:
			priority = PriorityHigh
		}

		alerts = append(alerts, PaymentAlert{
			PaymentID:     row.ID,
			PatientName:   row.PatientName,
			PatientPhone:  row.PatientPhone,
			Amount:        row.Amount,
			AmountDisplay: money.FormatBRL(row.Amount),
			DueDate:       *row.DueDate,
			DaysOverdue:   days,
			Priority:      priority,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		si, sj := prioritySeverity[alerts[i].Priority], prioritySeverity[alerts[j].Priority]
		if si != sj {
			return si > sj
		}
		return alerts[i].DaysOverdue > alerts[j].DaysOverdue
	})
	return alerts, nil
}
