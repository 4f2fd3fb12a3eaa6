package handlers

import (
	"net/http"
	"time"

	"clinic-billing-backend/internal/models"
	"clinic-billing-backend/internal/services/ledger"
	"clinic-billing-backend/internal/services/reporting"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FinanceHandler struct {
	ledger    *ledger.Service
	reporting *reporting.Service
}

func NewFinanceHandler(ledgerSvc *ledger.Service, reportingSvc *reporting.Service) *FinanceHandler {
	return &FinanceHandler{ledger: ledgerSvc, reporting: reportingSvc}
}

// parseOptionalDate reads a yyyy-mm-dd query param; absent is a nil bound.
func parseOptionalDate(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ", expected yyyy-mm-dd"})
		return nil, false
	}
	return &d, true
}

// RecordTransaction appends a manual ledger entry (an expense, or income not
// originating from a payment).
func (h *FinanceHandler) RecordTransaction(c *gin.Context) {
	var payload struct {
		TransactionType string          `json:"transaction_type" binding:"required"`
		Amount          decimal.Decimal `json:"amount" binding:"required"`
		Description     string          `json:"description"`
		Category        string          `json:"category"`
		TransactionDate string          `json:"transaction_date"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	entry := ledger.Entry{
		TransactionType: models.TransactionType(payload.TransactionType),
		Amount:          payload.Amount,
		Description:     payload.Description,
		Category:        payload.Category,
	}
	if payload.TransactionDate != "" {
		d, err := time.Parse(dateLayout, payload.TransactionDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction date, expected yyyy-mm-dd"})
			return
		}
		entry.TransactionDate = d
	}

	row, err := h.ledger.Record(entry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "transaction recorded", "transaction": row})
}

func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	start, ok := parseOptionalDate(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseOptionalDate(c, "end_date")
	if !ok {
		return
	}

	txType := models.TransactionType(c.Query("type"))
	if txType != "" && !txType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type, expected income or expense"})
		return
	}

	rows, err := h.ledger.GetRange(start, end, txType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": rows})
}

// Summary requires both date bounds; a missing or malformed bound is a 400,
// never a silent default.
func (h *FinanceHandler) Summary(c *gin.Context) {
	startRaw, endRaw := c.Query("start_date"), c.Query("end_date")
	if startRaw == "" || endRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date are required"})
		return
	}
	start, err := time.Parse(dateLayout, startRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected yyyy-mm-dd"})
		return
	}
	end, err := time.Parse(dateLayout, endRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date, expected yyyy-mm-dd"})
		return
	}

	summary, err := h.reporting.GetFinancialSummary(start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *FinanceHandler) Dashboard(c *gin.Context) {
	start, ok := parseOptionalDate(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseOptionalDate(c, "end_date")
	if !ok {
		return
	}

	dashboard, err := h.reporting.GetFinancialDashboard(start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *FinanceHandler) AccountsReceivable(c *gin.Context) {
	rows, err := h.reporting.GetAccountsReceivable()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": rows})
}

func (h *FinanceHandler) PatientSummary(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient ID"})
		return
	}
	summary, err := h.reporting.GetPatientFinancialSummary(patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
