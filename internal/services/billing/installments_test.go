package billing

import (
	"testing"
	"time"

	"clinic-billing-backend/internal/apperrors"
	"clinic-billing-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInstallmentsConservesTotal(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, db, now)
	appointment := seedAppointment(t, db)

	payment, err := svc.CreatePayment(CreatePaymentInput{
		AppointmentID: appointment.ID,
		Amount:        decimal.NewFromFloat(100.00),
		PaymentMethod: models.MethodCreditCard,
	})
	require.NoError(t, err)

	batch, err := svc.GenerateInstallments(payment.ID, 3, payment.Amount)
	require.NoError(t, err)
	require.Len(t, batch, 3)

	sum := decimal.Zero
	for _, inst := range batch {
		sum = sum.Add(inst.Amount)
	}
	assert.True(t, sum.Equal(payment.Amount), "installments must sum to the total, got %s", sum)

	// Jan 31 start: clamped to Feb 29 (leap) then back to Mar 31, still
	// strictly increasing.
	assert.Equal(t, 31, batch[0].DueDate.Day())
	assert.Equal(t, 29, batch[1].DueDate.Day())
	assert.Equal(t, 31, batch[2].DueDate.Day())
	for i := 1; i < len(batch); i++ {
		assert.True(t, batch[i].DueDate.After(batch[i-1].DueDate))
	}
}

func TestGenerateInstallmentsValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db, time.Now())
	appointment := seedAppointment(t, db)

	payment, err := svc.CreatePayment(CreatePaymentInput{
		AppointmentID: appointment.ID,
		Amount:        decimal.NewFromFloat(50.00),
		PaymentMethod: models.MethodCash,
	})
	require.NoError(t, err)

	_, err = svc.GenerateInstallments(payment.ID, 0, payment.Amount)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.GenerateInstallments(uuid.New(), 2, payment.Amount)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPayInstallment(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))
	appointment := seedAppointment(t, db)

	payment, err := svc.CreatePayment(CreatePaymentInput{
		AppointmentID: appointment.ID,
		Amount:        decimal.NewFromFloat(90.00),
		PaymentMethod: models.MethodCreditCard,
		Installments:  3,
	})
	require.NoError(t, err)

	installments, err := svc.ListInstallments(payment.ID)
	require.NoError(t, err)
	require.Len(t, installments, 3)

	paid, err := svc.PayInstallment(installments[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.InstallmentPaid, paid.Status)

	// Siblings stay untouched.
	rest, err := svc.ListInstallments(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InstallmentPending, rest[1].Status)
	assert.Equal(t, models.InstallmentPending, rest[2].Status)

	_, err = svc.PayInstallment(installments[0].ID)
	assert.True(t, apperrors.IsValidation(err), "double pay rejected")
}
