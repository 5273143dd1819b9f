// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentServiceInput struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
	StaffID   uuid.UUID `json:"staffId" binding:"required"`
}

type AppointmentProductInput struct {
	ProductID uuid.UUID  `json:"productId" binding:"required"`
	VariantID *uuid.UUID `json:"variantId"`
	Quantity  int        `json:"quantity" binding:"min=1"`
}

type CreateAppointmentInput struct {
	BranchID        uuid.UUID                 `json:"branchId" binding:"required"`
	CustomerID      uuid.UUID                 `json:"customerId" binding:"required"`
	AppointmentDate time.Time                 `json:"appointmentDate" binding:"required"`
	AppointmentTime string                    `json:"appointmentTime" binding:"required"`
	Services        []AppointmentServiceInput `json:"services"`
	Products        []AppointmentProductInput `json:"products"`
	Notes           string                    `json:"notes"`
	Status          string                    `json:"status" binding:"omitempty,oneof=booked confirmed completed cancelled"`
}

type UpdateAppointmentInput struct {
	BranchID        *uuid.UUID                 `json:"branchId"`
	CustomerID      *uuid.UUID                 `json:"customerId"`
	AppointmentDate *time.Time                 `json:"appointmentDate"`
	AppointmentTime *string                    `json:"appointmentTime"`
	Services        *[]AppointmentServiceInput `json:"services"`
	Products        *[]AppointmentProductInput `json:"products"`
	Notes           *string                    `json:"notes"`
	Status          *string                    `json:"status" binding:"omitempty,oneof=booked confirmed completed cancelled"`
}

// GridCell is one (staff, slot) cell of the booking grid
type GridCell struct {
	Slot         string      `json:"slot"`
	Occupied     bool        `json:"occupied"`
	Appointments []uuid.UUID `json:"appointments,omitempty"`
}

// GridRow is one staff member's slot row for the day
type GridRow struct {
	StaffID     uuid.UUID  `json:"staff_id"`
	StaffName   string     `json:"staff_name"`
	NowFraction *float64   `json:"now_fraction,omitempty"`
	Cells       []GridCell `json:"cells"`
}

// isSlotLabel reports whether the label lands on the fixed booking grid
func isSlotLabel(label string) bool {
	for _, slot := range services.FullDaySlots(services.SlotGranularityMinutes) {
		if slot.Label == label {
			return true
		}
	}
	return false
}

// loadCatalog snapshots the salon's services and products for pricing
func loadCatalog(salonUUID uuid.UUID) (services.Catalog, error) {
	var svcList []models.Service
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&svcList).Error; err != nil {
		return services.Catalog{}, err
	}
	var products []models.Product
	if err := config.DB.Preload("Variants").
		Where("salon_id = ?", salonUUID).Find(&products).Error; err != nil {
		return services.Catalog{}, err
	}
	return services.NewCatalog(svcList, products), nil
}

// CreateAppointment books an appointment on the grid. Prices are
// snapshotted at booking time: service rows store the service's current
// regular price, product rows store the extended line total. Overlapping
// bookings on the same staff and slot are allowed.
func CreateAppointment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if len(input.Services) == 0 && len(input.Products) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "At least one service or product is required")
		return
	}

	if !isSlotLabel(input.AppointmentTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "Appointment time must match a booking slot")
		return
	}

	// Validate customer exists in the same salon
	var customer models.Customer
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, input.CustomerID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	catalog, err := loadCatalog(salonUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	status := input.Status
	if status == "" {
		status = "booked"
	}

	appointment := models.Appointment{
		ID:              uuid.New(),
		SalonID:         salonUUID,
		BranchID:        input.BranchID,
		CustomerID:      input.CustomerID,
		AppointmentDate: utils.BeginningOfDay(input.AppointmentDate),
		AppointmentTime: input.AppointmentTime,
		Status:          status,
		Notes:           input.Notes,
	}

	for _, row := range input.Services {
		if _, found := catalog.Services[row.ServiceID]; !found {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found: "+row.ServiceID.String())
			return
		}
		sel := services.SelectService(services.ServiceSelection{StaffID: row.StaffID}, row.ServiceID, catalog)
		appointment.Services = append(appointment.Services, models.AppointmentService{
			AppointmentID: appointment.ID,
			ServiceID:     sel.ServiceID,
			StaffID:       sel.StaffID,
			Price:         sel.Price,
		})
	}

	for _, row := range input.Products {
		if _, found := catalog.Products[row.ProductID]; !found {
			utils.RespondWithError(c, http.StatusBadRequest, "Product not found: "+row.ProductID.String())
			return
		}
		item := services.ProductLineItem{
			ProductID: row.ProductID,
			VariantID: row.VariantID,
			Quantity:  row.Quantity,
		}
		item.Price = services.LineTotal(item, catalog)
		appointment.Products = append(appointment.Products, models.AppointmentProduct{
			AppointmentID: appointment.ID,
			ProductID:     item.ProductID,
			VariantID:     item.VariantID,
			Quantity:      item.Quantity,
			Price:         item.Price,
		})
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments retrieves appointments for the salon, optionally
// filtered by branch and date
func GetAppointments(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	query := config.DB.Preload("Services").Preload("Products").
		Where("salon_id = ?", salonUUID)

	if branchID := c.Query("branchId"); branchID != "" {
		branchUUID, err := uuid.Parse(branchID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid branch ID format")
			return
		}
		query = query.Where("branch_id = ?", branchUUID)
	}
	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		query = query.Where("appointment_date >= ? AND appointment_date < ?", day, day.AddDate(0, 0, 1))
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func GetAppointment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Services").Preload("Products").Preload("Customer").
		Where("salon_id = ? AND id = ?", salonUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// GetAppointmentGrid renders the day's booking grid for a branch: one row
// per active staff member, slots generated from that staff's shift window
// (full day when none is set), occupancy from the day's appointments, and
// the current-time fraction for the now-indicator line.
func GetAppointmentGrid(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	branchUUID, err := uuid.Parse(c.Query("branchId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid branch ID format")
		return
	}

	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	var staff []models.Staff
	if err := config.DB.
		Where("salon_id = ? AND branch_id = ? AND status = ?", salonUUID, branchUUID, "active").
		Find(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	var appointments []models.Appointment
	if err := config.DB.Preload("Services").
		Where("salon_id = ? AND branch_id = ? AND appointment_date >= ? AND appointment_date < ?",
			salonUUID, branchUUID, day, day.AddDate(0, 0, 1)).
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	now := time.Now()
	rows := make([]GridRow, 0, len(staff))
	for _, member := range staff {
		var slots []services.TimeSlot
		if member.StartShift != "" && member.EndShift != "" {
			slots = services.GenerateSlots(member.StartShift, member.EndShift, services.SlotGranularityMinutes)
		} else {
			slots = services.FullDaySlots(services.SlotGranularityMinutes)
		}

		row := GridRow{
			StaffID:   member.ID,
			StaffName: member.FullName,
			Cells:     make([]GridCell, 0, len(slots)),
		}

		if fraction, ok := services.CurrentSlotFraction(now, day, slots, services.SlotGranularityMinutes); ok {
			row.NowFraction = &fraction
		}

		for _, slot := range slots {
			cell := GridCell{Slot: slot.Label}
			for _, appt := range services.AppointmentsAt(day, slot, member.ID, appointments) {
				cell.Occupied = true
				cell.Appointments = append(cell.Appointments, appt.ID)
			}
			row.Cells = append(row.Cells, cell)
		}

		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  day.Format("2006-01-02"),
		"grid":  rows,
		"slots": services.SlotGranularityMinutes,
	})
}

// GetBookingSeed answers a grid cell click: a blank pre-seeded booking for
// an empty cell, or the first matching appointment expanded for edit
func GetBookingSeed(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	staffUUID, err := uuid.Parse(c.Query("staffId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}
	branchUUID, err := uuid.Parse(c.Query("branchId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid branch ID format")
		return
	}
	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}
	slotLabel := c.Query("time")
	if !isSlotLabel(slotLabel) {
		utils.RespondWithError(c, http.StatusBadRequest, "Time must match a booking slot")
		return
	}

	var appointments []models.Appointment
	if err := config.DB.Preload("Services").Preload("Products").
		Where("salon_id = ? AND branch_id = ? AND appointment_date >= ? AND appointment_date < ?",
			salonUUID, branchUUID, day, day.AddDate(0, 0, 1)).
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	catalog, err := loadCatalog(salonUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	seed := services.SeedForCell(day, services.TimeSlot{Label: slotLabel}, staffUUID, branchUUID, appointments, catalog)

	c.JSON(http.StatusOK, seed)
}

// UpdateAppointment updates an existing appointment; supplied service or
// product lists replace the stored ones with freshly snapshotted prices
func UpdateAppointment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var appointment models.Appointment
	if err := tx.Preload("Services").Preload("Products").
		Where("salon_id = ? AND id = ?", salonUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.BranchID != nil {
		appointment.BranchID = *input.BranchID
	}
	if input.CustomerID != nil {
		appointment.CustomerID = *input.CustomerID
	}
	if input.AppointmentDate != nil {
		appointment.AppointmentDate = utils.BeginningOfDay(*input.AppointmentDate)
	}
	if input.AppointmentTime != nil {
		if !isSlotLabel(*input.AppointmentTime) {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest, "Appointment time must match a booking slot")
			return
		}
		appointment.AppointmentTime = *input.AppointmentTime
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}
	if input.Status != nil {
		appointment.Status = *input.Status
	}

	if input.Services != nil || input.Products != nil {
		catalog, err := loadCatalog(salonUUID)
		if err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load catalog")
			return
		}

		if input.Services != nil {
			if err := tx.Where("appointment_id = ?", appointment.ID).
				Delete(&models.AppointmentService{}).Error; err != nil {
				tx.Rollback()
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing services")
				return
			}
			var newServices []models.AppointmentService
			for _, row := range *input.Services {
				if _, found := catalog.Services[row.ServiceID]; !found {
					tx.Rollback()
					utils.RespondWithError(c, http.StatusBadRequest, "Service not found: "+row.ServiceID.String())
					return
				}
				sel := services.SelectService(services.ServiceSelection{StaffID: row.StaffID}, row.ServiceID, catalog)
				newServices = append(newServices, models.AppointmentService{
					AppointmentID: appointment.ID,
					ServiceID:     sel.ServiceID,
					StaffID:       sel.StaffID,
					Price:         sel.Price,
				})
			}
			appointment.Services = newServices
		}

		if input.Products != nil {
			if err := tx.Where("appointment_id = ?", appointment.ID).
				Delete(&models.AppointmentProduct{}).Error; err != nil {
				tx.Rollback()
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing products")
				return
			}
			var newProducts []models.AppointmentProduct
			for _, row := range *input.Products {
				if _, found := catalog.Products[row.ProductID]; !found {
					tx.Rollback()
					utils.RespondWithError(c, http.StatusBadRequest, "Product not found: "+row.ProductID.String())
					return
				}
				item := services.ProductLineItem{
					ProductID: row.ProductID,
					VariantID: row.VariantID,
					Quantity:  row.Quantity,
				}
				item.Price = services.LineTotal(item, catalog)
				newProducts = append(newProducts, models.AppointmentProduct{
					AppointmentID: appointment.ID,
					ProductID:     item.ProductID,
					VariantID:     item.VariantID,
					Quantity:      item.Quantity,
					Price:         item.Price,
				})
			}
			appointment.Products = newProducts
		}
	}

	if len(appointment.Services) == 0 && len(appointment.Products) == 0 {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusBadRequest, "At least one service or product is required")
		return
	}

	if err := tx.Save(&appointment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment soft deletes an appointment and its line rows
func DeleteAppointment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var appointment models.Appointment
	if err := tx.Where("salon_id = ? AND id = ?", salonUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("appointment_id = ?", appointment.ID).
		Delete(&models.AppointmentService{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment services")
		return
	}
	if err := tx.Where("appointment_id = ?", appointment.ID).
		Delete(&models.AppointmentProduct{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment products")
		return
	}
	if err := tx.Delete(&appointment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
