// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalCustomers       int64                 `json:"totalCustomers"`
	TodayAppointments    int64                 `json:"todayAppointments"`
	MonthlyRevenue       float64               `json:"monthlyRevenue"`
	TotalPayments        int64                 `json:"totalPayments"`
	UpcomingAppointments []UpcomingAppointment `json:"upcomingAppointments"`
}

type UpcomingAppointment struct {
	CustomerName    string `json:"customerName"`
	AppointmentTime string `json:"appointmentTime"`
	Status          string `json:"status"`
}

func GetDashboardOverview(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	now := time.Now()
	today := utils.BeginningOfDay(now)

	// Total Customers
	var totalCustomers int64
	config.DB.Model(&models.Customer{}).
		Where("salon_id = ? AND deleted_at IS NULL", salonUUID).Count(&totalCustomers)

	// Today's appointments
	var todayAppointments int64
	config.DB.Model(&models.Appointment{}).
		Where("salon_id = ? AND appointment_date >= ? AND appointment_date < ? AND deleted_at IS NULL",
			salonUUID, today, today.AddDate(0, 0, 1)).
		Count(&todayAppointments)

	// This Month's Revenue
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var monthlyRevenue float64
	config.DB.Model(&models.Payment{}).
		Where("salon_id = ? AND payment_date >= ? AND deleted_at IS NULL", salonUUID, firstOfMonth).
		Select("COALESCE(SUM(grand_total), 0)").Scan(&monthlyRevenue)

	// Total Payments
	var totalPayments int64
	config.DB.Model(&models.Payment{}).
		Where("salon_id = ? AND deleted_at IS NULL", salonUUID).Count(&totalPayments)

	// Today's upcoming appointments, earliest slot first
	var upcoming []UpcomingAppointment
	config.DB.Raw(`
        SELECT c.name AS customer_name, a.appointment_time, a.status
        FROM appointments a
        JOIN customers c ON c.id = a.customer_id
        WHERE a.salon_id = ? AND a.deleted_at IS NULL
        AND a.appointment_date >= ? AND a.appointment_date < ?
        AND a.status IN ('booked', 'confirmed')
        ORDER BY a.appointment_time
        LIMIT 7
    `, salonUUID, today, today.AddDate(0, 0, 1)).Scan(&upcoming)

	c.JSON(http.StatusOK, DashboardOverview{
		TotalCustomers:       totalCustomers,
		TodayAppointments:    todayAppointments,
		MonthlyRevenue:       monthlyRevenue,
		TotalPayments:        totalPayments,
		UpcomingAppointments: upcoming,
	})
}
