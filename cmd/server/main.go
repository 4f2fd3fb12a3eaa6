package main

import (
	"log"
	"os"
	"time"

	"clinic-billing-backend/internal/audit"
	"clinic-billing-backend/internal/config"
	"clinic-billing-backend/internal/models"
	"clinic-billing-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	db := config.InitDB()

	db.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.Payment{},
		&models.PaymentInstallment{},
		&models.ServicePrice{},
		&models.FinancialTransaction{},
	)

	// Audit publishing is optional; without a broker the service runs alone.
	var publisher *audit.Publisher
	if url := os.Getenv("AMQP_URL"); url != "" {
		p, err := audit.NewPublisher(url, config.Getenv("AUDIT_QUEUE", "billing.audit"))
		if err != nil {
			log.Println("audit publisher disabled:", err)
		} else {
			publisher = p
			defer publisher.Close()
		}
	}

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.Getenv("CORS_ORIGIN", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, publisher)

	r.Run(":" + config.Getenv("PORT", "8080"))
}
