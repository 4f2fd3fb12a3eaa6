package billing

import (
	"testing"

	"clinic-billing-backend/internal/apperrors"
	"clinic-billing-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(repository.NewServicePriceRepository(db))

	insurance := decimal.NewFromFloat(180.00)
	sp, err := svc.Create(ServicePriceInput{
		ServiceName:    "Consulta Cardiologia",
		Description:    "Consulta com especialista",
		BasePrice:      decimal.NewFromFloat(250.00),
		InsurancePrice: &insurance,
	})
	require.NoError(t, err)
	assert.True(t, sp.Active)

	// Unique human key.
	_, err = svc.Create(ServicePriceInput{ServiceName: "Consulta Cardiologia", BasePrice: decimal.NewFromInt(100)})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(ServicePriceInput{ServiceName: "Gratuito", BasePrice: decimal.Zero})
	assert.True(t, apperrors.IsValidation(err))

	prices, err := svc.List(false)
	require.NoError(t, err)
	assert.Len(t, prices, 1)
}

func TestCatalogDeactivateInsteadOfDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(repository.NewServicePriceRepository(db))

	sp, err := svc.Create(ServicePriceInput{ServiceName: "Retorno", BasePrice: decimal.NewFromFloat(80.00)})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(sp.ID, ServicePriceUpdate{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	active, err := svc.List(true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 1, "deactivated entries stay in the table")

	_, err = svc.Update(uuid.New(), ServicePriceUpdate{Active: &inactive})
	assert.True(t, apperrors.IsNotFound(err))
}
