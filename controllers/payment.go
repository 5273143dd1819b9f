// controllers/payment.go
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

type CreatePaymentInput struct {
	AppointmentID uuid.UUID  `json:"appointmentId" binding:"required"`
	TaxID         *uuid.UUID `json:"taxId"`
	Tips          float64    `json:"tips" binding:"min=0"`
	PaymentMethod string     `json:"paymentMethod" binding:"required,oneof=cash card upi"`
	CouponCode    string     `json:"couponCode"`

	// Manual "additional discount" toggle and rule
	AdditionalDiscount      bool    `json:"additionalDiscount"`
	AdditionalDiscountType  string  `json:"additionalDiscountType" binding:"omitempty,oneof=percentage flat"`
	AdditionalDiscountValue float64 `json:"additionalDiscountValue" binding:"min=0"`

	Notes string `json:"notes"`
}

type SettlementPreviewInput struct {
	AppointmentID uuid.UUID  `json:"appointmentId" binding:"required"`
	TaxID         *uuid.UUID `json:"taxId"`
	Tips          float64    `json:"tips" binding:"min=0"`
	CouponCode    string     `json:"couponCode"`

	AdditionalDiscount      bool    `json:"additionalDiscount"`
	AdditionalDiscountType  string  `json:"additionalDiscountType" binding:"omitempty,oneof=percentage flat"`
	AdditionalDiscountValue float64 `json:"additionalDiscountValue" binding:"min=0"`
}

// settlementFor assembles the settlement input for an appointment: the
// cart subtotal from stored line rows as the base, the selected tax rule,
// the applied coupon (only while active), the customer's membership rule
// and the manual discount when its toggle is on. Returns the resolved
// coupon id alongside, for the payment record.
func settlementFor(salonUUID uuid.UUID, appointment models.Appointment,
	taxID *uuid.UUID, tips float64, couponCode string,
	manualOn bool, manualType string, manualValue float64) (services.SettlementInput, *uuid.UUID, error) {

	catalog, err := loadCatalog(salonUUID)
	if err != nil {
		return services.SettlementInput{}, nil, err
	}

	var selections []services.ServiceSelection
	for _, row := range appointment.Services {
		selections = append(selections, services.ServiceSelection{
			ServiceID: row.ServiceID,
			StaffID:   row.StaffID,
			Price:     row.Price,
		})
	}
	var items []services.ProductLineItem
	for _, row := range appointment.Products {
		items = append(items, services.ProductLineItem{
			ProductID: row.ProductID,
			VariantID: row.VariantID,
			Quantity:  row.Quantity,
			Price:     row.Price,
		})
	}

	input := services.SettlementInput{
		BaseAmount: services.CartSubtotal(selections, items, catalog),
		Tips:       tips,
	}

	if taxID != nil {
		var tax models.Tax
		if err := config.DB.Where("salon_id = ? AND id = ? AND status = ?", salonUUID, *taxID, "active").
			First(&tax).Error; err == nil {
			input.Tax = &services.TaxRule{Type: tax.Type, Value: tax.Value}
		}
	}

	var couponID *uuid.UUID
	if couponCode != "" {
		var coupons []models.Coupon
		if err := config.DB.Where("salon_id = ?", salonUUID).Find(&coupons).Error; err == nil {
			if coupon, rule := services.LookupCoupon(couponCode, time.Now(), coupons); coupon != nil {
				input.Coupon = rule
				couponID = &coupon.ID
			}
		}
	}

	if manualOn {
		input.ManualDiscount = &services.DiscountRule{Kind: manualType, Value: manualValue}
	}

	var customer models.Customer
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, appointment.CustomerID).
		First(&customer).Error; err == nil {
		input.MembershipDiscount = services.MembershipRule(customer)
	}

	return input, couponID, nil
}

// PreviewSettlement computes the settlement breakdown without persisting
// anything; the form calls this on every input change
func PreviewSettlement(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input SettlementPreviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Services").Preload("Products").
		Where("salon_id = ? AND id = ?", salonUUID, input.AppointmentID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	settlementInput, _, err := settlementFor(salonUUID, appointment,
		input.TaxID, input.Tips, input.CouponCode,
		input.AdditionalDiscount, input.AdditionalDiscountType, input.AdditionalDiscountValue)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	c.JSON(http.StatusOK, services.ComputeSettlement(settlementInput))
}

// CreatePayment settles an appointment and records the payment
func CreatePayment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Services").Preload("Products").
		Where("salon_id = ? AND id = ?", salonUUID, input.AppointmentID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if appointment.Status == "cancelled" {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot settle a cancelled appointment")
		return
	}

	settlementInput, couponID, err := settlementFor(salonUUID, appointment,
		input.TaxID, input.Tips, input.CouponCode,
		input.AdditionalDiscount, input.AdditionalDiscountType, input.AdditionalDiscountValue)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	settlement := services.ComputeSettlement(settlementInput)

	payment := models.Payment{
		ID:            uuid.New(),
		SalonID:       salonUUID,
		AppointmentID: appointment.ID,
		PaymentDate:   time.Now(),
		TaxID:         input.TaxID,
		CouponID:      couponID,
		Tips:          input.Tips,

		Subtotal:           settlement.BaseAmount,
		TaxAmount:          settlement.TaxAmount,
		CouponDiscount:     settlement.CouponDiscount,
		ManualDiscount:     settlement.ManualDiscount,
		MembershipDiscount: settlement.MembershipDiscount,
		GrandTotal:         settlement.GrandTotal,

		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}
	if input.AdditionalDiscount {
		payment.AdditionalDiscountType = input.AdditionalDiscountType
		payment.AdditionalDiscountValue = input.AdditionalDiscountValue
	}

	payment.PaymentNumber = "PAY-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment")
		return
	}

	if err := tx.Model(&models.Appointment{}).Where("id = ?", appointment.ID).
		Update("status", "completed").Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment status")
		return
	}

	// Update customer stats
	if err := tx.Model(&models.Customer{}).Where("id = ?", appointment.CustomerID).
		Updates(map[string]interface{}{
			"total_visits": gorm.Expr("total_visits + ?", 1),
			"total_spent":  gorm.Expr("total_spent + ?", settlement.GrandTotal),
			"last_visit":   payment.PaymentDate,
		}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer stats")
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, payment)
}

// GetPayments retrieves all payments for the salon
func GetPayments(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetPayment retrieves a specific payment by ID
func GetPayment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	paymentUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payment models.Payment
	if err := config.DB.Preload("Appointment").Preload("Appointment.Services").Preload("Appointment.Products").
		Where("salon_id = ? AND id = ?", salonUUID, paymentUUID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, payment)
}
