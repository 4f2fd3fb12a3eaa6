package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-billing-backend/internal/audit"
	handler "clinic-billing-backend/internal/handlers"
	"clinic-billing-backend/internal/repository"
	"clinic-billing-backend/internal/services/billing"
	"clinic-billing-backend/internal/services/ledger"
	"clinic-billing-backend/internal/services/reporting"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, publisher *audit.Publisher) {
	paymentRepo := repository.NewPaymentRepository(db)
	installmentRepo := repository.NewInstallmentRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	priceRepo := repository.NewServicePriceRepository(db)

	ledgerSvc := ledger.NewService(transactionRepo)
	billingSvc := billing.NewService(paymentRepo, installmentRepo, appointmentRepo, ledgerSvc, publisher)
	catalogSvc := billing.NewCatalogService(priceRepo)
	reportingSvc := reporting.NewService(paymentRepo, transactionRepo, appointmentRepo)

	paymentHandler := handler.NewPaymentHandler(billingSvc)
	financeHandler := handler.NewFinanceHandler(ledgerSvc, reportingSvc)
	priceHandler := handler.NewServicePriceHandler(catalogSvc)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	payments := api.Group("/payments")
	{
		payments.POST("", paymentHandler.Create)
		payments.GET("/overdue", paymentHandler.ListOverdue)
		payments.GET("/alerts", paymentHandler.Alerts)
		payments.GET("/:id", paymentHandler.Get)
		payments.PUT("/:id", paymentHandler.Update)
		payments.POST("/:id/process", paymentHandler.Process)
		payments.GET("/:id/installments", paymentHandler.ListInstallments)
	}

	api.POST("/installments/:id/pay", paymentHandler.PayInstallment)

	api.GET("/appointments/:appointmentId/payments", paymentHandler.ListByAppointment)
	api.GET("/patients/:patientId/payments", paymentHandler.ListByPatient)
	api.GET("/patients/:patientId/financial-summary", financeHandler.PatientSummary)

	prices := api.Group("/service-prices")
	{
		prices.POST("", priceHandler.Create)
		prices.GET("", priceHandler.List)
		prices.PUT("/:id", priceHandler.Update)
	}

	finance := api.Group("/financial")
	{
		finance.POST("/transactions", financeHandler.RecordTransaction)
		finance.GET("/transactions", financeHandler.ListTransactions)
		finance.GET("/summary", financeHandler.Summary)
		finance.GET("/dashboard", financeHandler.Dashboard)
		finance.GET("/accounts-receivable", financeHandler.AccountsReceivable)
	}
}
