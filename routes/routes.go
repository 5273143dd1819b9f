package routes

import (
	"os"
	"strings"

	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Branch routes
		branches := api.Group("/branches")
		{
			branches.POST("", controllers.CreateBranch)
			branches.GET("", controllers.GetBranches)
			branches.GET("/:id", controllers.GetBranch)
			branches.PUT("/:id", controllers.UpdateBranch)
			branches.DELETE("/:id", controllers.DeleteBranch)
		}

		// Staff routes
		staff := api.Group("/staff")
		{
			staff.POST("", controllers.AddStaff)
			staff.GET("", controllers.GetStaff)
			staff.PUT("/:id", controllers.UpdateStaff)
			staff.DELETE("/:id", controllers.DeleteStaff)
		}

		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// Variation (attribute axis) routes
		variations := api.Group("/variations")
		{
			variations.POST("", controllers.CreateVariation)
			variations.GET("", controllers.GetVariations)
			variations.PUT("/:id", controllers.UpdateVariation)
			variations.DELETE("/:id", controllers.DeleteVariation)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.POST("", controllers.CreateProduct)
			products.GET("", controllers.GetProducts)
			products.POST("/preview-variants", controllers.PreviewVariants)
			products.GET("/:id", controllers.GetProduct)
			products.PUT("/:id", controllers.UpdateProduct)
			products.DELETE("/:id", controllers.DeleteProduct)
		}

		// Tax routes
		taxes := api.Group("/taxes")
		{
			taxes.POST("", controllers.CreateTax)
			taxes.GET("", controllers.GetTaxes)
			taxes.PUT("/:id", controllers.UpdateTax)
			taxes.DELETE("/:id", controllers.DeleteTax)
		}

		// Coupon routes
		coupons := api.Group("/coupons")
		{
			coupons.POST("", controllers.CreateCoupon)
			coupons.GET("", controllers.GetCoupons)
			coupons.GET("/apply", controllers.ApplyCoupon)
			coupons.PUT("/:id", controllers.UpdateCoupon)
			coupons.DELETE("/:id", controllers.DeleteCoupon)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.GET("/grid", controllers.GetAppointmentGrid)
			appointments.GET("/seed", controllers.GetBookingSeed)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
		}

		// Payment routes
		payments := api.Group("/payments")
		{
			payments.POST("", controllers.CreatePayment)
			payments.POST("/preview", controllers.PreviewSettlement)
			payments.GET("", controllers.GetPayments)
			payments.GET("/:id", controllers.GetPayment)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
