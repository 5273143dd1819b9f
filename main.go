package main

import (
	"fmt"
	"log"
	"os"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/routes"
	"salonbook-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Salon{},
		&models.User{},
		&models.Branch{},
		&models.Staff{},
		&models.Customer{},
		&models.Service{},
		&models.Variation{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Tax{},
		&models.Coupon{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.AppointmentProduct{},
		&models.Payment{},
		&models.ReminderLog{},
	)
}

func main() {

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
