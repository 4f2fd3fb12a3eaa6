package handlers

import (
	"net/http"
	"time"

	"clinic-billing-backend/internal/models"
	"clinic-billing-backend/internal/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type PaymentHandler struct {
	billing *billing.Service
}

func NewPaymentHandler(billingSvc *billing.Service) *PaymentHandler {
	return &PaymentHandler{billing: billingSvc}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var payload struct {
		AppointmentID     string          `json:"appointment_id" binding:"required"`
		Amount            decimal.Decimal `json:"amount" binding:"required"`
		PaymentMethod     string          `json:"payment_method" binding:"required"`
		Status            string          `json:"status"`
		Installments      int             `json:"installments"`
		InstallmentNumber int             `json:"installment_number"`
		DueDate           string          `json:"due_date"`
		Notes             string          `json:"notes"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	appointmentID, err := uuid.Parse(payload.AppointmentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment ID"})
		return
	}

	var dueDate *time.Time
	if payload.DueDate != "" {
		d, err := time.Parse(dateLayout, payload.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due date, expected yyyy-mm-dd"})
			return
		}
		dueDate = &d
	}

	payment, err := h.billing.CreatePayment(billing.CreatePaymentInput{
		AppointmentID:     appointmentID,
		Amount:            payload.Amount,
		PaymentMethod:     models.PaymentMethod(payload.PaymentMethod),
		Status:            models.PaymentStatus(payload.Status),
		Installments:      payload.Installments,
		InstallmentNumber: payload.InstallmentNumber,
		DueDate:           dueDate,
		Notes:             payload.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "payment created", "payment": payment})
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment ID"})
		return
	}
	payment, err := h.billing.GetPayment(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment ID"})
		return
	}

	var payload struct {
		Amount        *decimal.Decimal `json:"amount"`
		PaymentMethod *string          `json:"payment_method"`
		Status        *string          `json:"status"`
		DueDate       *string          `json:"due_date"`
		Notes         *string          `json:"notes"`
		TransactionID *string          `json:"transaction_id"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	in := billing.UpdatePaymentInput{
		Amount:        payload.Amount,
		Notes:         payload.Notes,
		TransactionID: payload.TransactionID,
	}
	if payload.PaymentMethod != nil {
		m := models.PaymentMethod(*payload.PaymentMethod)
		in.PaymentMethod = &m
	}
	if payload.Status != nil {
		st := models.PaymentStatus(*payload.Status)
		in.Status = &st
	}
	if payload.DueDate != nil {
		d, err := time.Parse(dateLayout, *payload.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due date, expected yyyy-mm-dd"})
			return
		}
		in.DueDate = &d
	}

	payment, err := h.billing.UpdatePayment(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment updated", "payment": payment})
}

func (h *PaymentHandler) ListByAppointment(c *gin.Context) {
	appointmentID, err := uuid.Parse(c.Param("appointmentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment ID"})
		return
	}
	payments, err := h.billing.ListByAppointment(appointmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

func (h *PaymentHandler) ListByPatient(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient ID"})
		return
	}
	payments, err := h.billing.ListByPatient(patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

func (h *PaymentHandler) ListInstallments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment ID"})
		return
	}
	installments, err := h.billing.ListInstallments(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"installments": installments})
}

// Process marks a pending payment as paid.
func (h *PaymentHandler) Process(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment ID"})
		return
	}

	var payload struct {
		PaymentMethod string  `json:"payment_method" binding:"required"`
		TransactionID *string `json:"transaction_id"`
		Notes         *string `json:"notes"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	payment, err := h.billing.ProcessPayment(id, models.PaymentMethod(payload.PaymentMethod), payload.TransactionID, payload.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment processed", "payment_id": payment.ID})
}

// PayInstallment settles one installment of a multi-part payment.
func (h *PaymentHandler) PayInstallment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid installment ID"})
		return
	}
	inst, err := h.billing.PayInstallment(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "installment paid", "installment": inst})
}

func (h *PaymentHandler) ListOverdue(c *gin.Context) {
	payments, err := h.billing.ListOverdue()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

func (h *PaymentHandler) Alerts(c *gin.Context) {
	alerts, err := h.billing.GenerateAlerts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
