package ledger

import (
	"fmt"
	"testing"
	"time"

	"clinic-billing-backend/internal/apperrors"
	"clinic-billing-backend/internal/models"
	"clinic-billing-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.FinancialTransaction{}))
	return db
}

func TestRecordAndGetRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(repository.NewTransactionRepository(db))

	_, err := svc.Record(Entry{
		TransactionType: models.TransactionIncome,
		Amount:          decimal.NewFromFloat(120.00),
		Description:     "Consulta",
		Category:        "appointment_payment",
		TransactionDate: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = svc.Record(Entry{
		TransactionType: models.TransactionExpense,
		Amount:          decimal.NewFromFloat(40.00),
		Description:     "Material",
		Category:        "supplies",
		TransactionDate: time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)

	all, err := svc.GetRange(&start, &end, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	income, err := svc.GetRange(&start, &end, models.TransactionIncome)
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.Equal(t, "Consulta", income[0].Description)

	// Inclusive bounds.
	exact := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	onBound, err := svc.GetRange(&exact, &exact, "")
	require.NoError(t, err)
	assert.Len(t, onBound, 1)
}

func TestGetRangeIncludesIntradayRowsOnEndDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(repository.NewTransactionRepository(db))

	// Stamped mid-afternoon on the last day of the range.
	_, err := svc.Record(Entry{
		TransactionType: models.TransactionIncome,
		Amount:          decimal.NewFromFloat(75.00),
		Description:     "Consulta de retorno",
		Category:        "appointment_payment",
		TransactionDate: time.Date(2024, time.June, 30, 15, 45, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	rows, err := svc.GetRange(&start, &end, "")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "a row timestamped inside the end date belongs to the range")

	// The day after the end date stays out.
	after := time.Date(2024, time.July, 1, 0, 30, 0, 0, time.UTC)
	_, err = svc.Record(Entry{
		TransactionType: models.TransactionIncome,
		Amount:          decimal.NewFromFloat(10.00),
		Description:     "Fora do período",
		Category:        "appointment_payment",
		TransactionDate: after,
	})
	require.NoError(t, err)

	rows, err = svc.GetRange(&start, &end, "")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRecordValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(repository.NewTransactionRepository(db))

	_, err := svc.Record(Entry{TransactionType: "transfer", Amount: decimal.NewFromInt(10)})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Record(Entry{TransactionType: models.TransactionIncome, Amount: decimal.Zero})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Record(Entry{TransactionType: models.TransactionExpense, Amount: decimal.NewFromInt(-5)})
	assert.True(t, apperrors.IsValidation(err))
}

func TestRecordDefaultsTransactionDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(repository.NewTransactionRepository(db))

	row, err := svc.Record(Entry{
		TransactionType: models.TransactionIncome,
		Amount:          decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.False(t, row.TransactionDate.IsZero())
}
