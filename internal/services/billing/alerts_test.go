package billing

import (
	"testing"
	"time"

	"clinic-billing-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createPaymentDue(t *testing.T, svc *Service, db *gorm.DB, amount float64, dueDate time.Time) *models.Payment {
	t.Helper()
	appointment := seedAppointment(t, db)
	payment, err := svc.CreatePayment(CreatePaymentInput{
		AppointmentID: appointment.ID,
		Amount:        decimal.NewFromFloat(amount),
		PaymentMethod: models.MethodPix,
		DueDate:       &dueDate,
	})
	require.NoError(t, err)
	return payment
}

func TestListOverdue(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, db, now)

	overduePayment := createPaymentDue(t, svc, db, 100, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	olderOverdue := createPaymentDue(t, svc, db, 50, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC))
	createPaymentDue(t, svc, db, 75, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)) // not due yet

	// A paid payment is never overdue, whatever its due date.
	paidPayment := createPaymentDue(t, svc, db, 60, time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC))
	_, err := svc.ProcessPayment(paidPayment.ID, models.MethodCash, nil, nil)
	require.NoError(t, err)

	overdue, err := svc.ListOverdue()
	require.NoError(t, err)
	require.Len(t, overdue, 2)
	// Earliest due date first.
	assert.Equal(t, olderOverdue.ID, overdue[0].ID)
	assert.Equal(t, overduePayment.ID, overdue[1].ID)
}

func TestGenerateAlertsPriorities(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, db, now)

	critical := createPaymentDue(t, svc, db, 100, now.AddDate(0, 0, -45))
	high := createPaymentDue(t, svc, db, 200, now.AddDate(0, 0, -20))
	medium := createPaymentDue(t, svc, db, 300, now.AddDate(0, 0, -3))
	createPaymentDue(t, svc, db, 400, now) // due today, no alert

	alerts, err := svc.GenerateAlerts()
	require.NoError(t, err)
	require.Len(t, alerts, 3)

	assert.Equal(t, critical.ID, alerts[0].PaymentID)
	assert.Equal(t, PriorityCritical, alerts[0].Priority)
	assert.Equal(t, 45, alerts[0].DaysOverdue)

	assert.Equal(t, high.ID, alerts[1].PaymentID)
	assert.Equal(t, PriorityHigh, alerts[1].Priority)

	assert.Equal(t, medium.ID, alerts[2].PaymentID)
	assert.Equal(t, PriorityMedium, alerts[2].Priority)

	assert.Equal(t, "Maria Silva", alerts[0].PatientName)
	assert.NotEmpty(t, alerts[0].PatientPhone)
	assert.Equal(t, "R$ 100,00", alerts[0].AmountDisplay)
}

func TestGenerateAlertsOrdersWithinTier(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, db, now)

	younger := createPaymentDue(t, svc, db, 10, now.AddDate(0, 0, -31))
	older := createPaymentDue(t, svc, db, 20, now.AddDate(0, 0, -60))

	alerts, err := svc.GenerateAlerts()
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, older.ID, alerts[0].PaymentID, "most overdue first inside a tier")
	assert.Equal(t, younger.ID, alerts[1].PaymentID)
}

func TestAlertThresholdBoundaries(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, db, now)

	createPaymentDue(t, svc, db, 10, now.AddDate(0, 0, -30))
	createPaymentDue(t, svc, db, 20, now.AddDate(0, 0, -14))
	createPaymentDue(t, svc, db, 30, now.AddDate(0, 0, -1))

	alerts, err := svc.GenerateAlerts()
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, PriorityCritical, alerts[0].Priority)
	assert.Equal(t, PriorityHigh, alerts[1].Priority)
	assert.Equal(t, PriorityMedium, alerts[2].Priority)
}
