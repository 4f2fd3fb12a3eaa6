package handlers

import (
	"net/http"

	"clinic-billing-backend/internal/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServicePriceHandler struct {
	catalog *billing.CatalogService
}

func NewServicePriceHandler(catalog *billing.CatalogService) *ServicePriceHandler {
	return &ServicePriceHandler{catalog: catalog}
}

func (h *ServicePriceHandler) Create(c *gin.Context) {
	var payload struct {
		ServiceName    string           `json:"service_name" binding:"required"`
		Description    string           `json:"description"`
		BasePrice      decimal.Decimal  `json:"base_price" binding:"required"`
		InsurancePrice *decimal.Decimal `json:"insurance_price"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	sp, err := h.catalog.Create(billing.ServicePriceInput{
		ServiceName:    payload.ServiceName,
		Description:    payload.Description,
		BasePrice:      payload.BasePrice,
		InsurancePrice: payload.InsurancePrice,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "service price created", "service_price": sp})
}

func (h *ServicePriceHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	prices, err := h.catalog.List(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service_prices": prices})
}

func (h *ServicePriceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service price ID"})
		return
	}

	var payload struct {
		Description    *string          `json:"description"`
		BasePrice      *decimal.Decimal `json:"base_price"`
		InsurancePrice *decimal.Decimal `json:"insurance_price"`
		Active         *bool            `json:"active"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	sp, err := h.catalog.Update(id, billing.ServicePriceUpdate{
		Description:    payload.Description,
		BasePrice:      payload.BasePrice,
		InsurancePrice: payload.InsurancePrice,
		Active:         payload.Active,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service price updated", "service_price": sp})
}
