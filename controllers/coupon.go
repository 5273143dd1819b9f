// controllers/coupon.go
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
	"gorm.io/gorm"
)

type CreateCouponInput struct {
	CouponCode     string    `json:"couponCode" binding:"required"`
	StartDate      time.Time `json:"startDate" binding:"required"`
	EndDate        time.Time `json:"endDate" binding:"required"`
	DiscountType   string    `json:"discountType" binding:"required,oneof=percentage flat"`
	DiscountAmount float64   `json:"discountAmount" binding:"required,min=0"`
}

type UpdateCouponInput struct {
	CouponCode     *string    `json:"couponCode"`
	Status         *string    `json:"status" binding:"omitempty,oneof=active inactive"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	DiscountType   *string    `json:"discountType" binding:"omitempty,oneof=percentage flat"`
	DiscountAmount *float64   `json:"discountAmount" binding:"omitempty,min=0"`
}

// CreateCoupon creates a new coupon for the salon
func CreateCoupon(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateCouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.EndDate.Before(input.StartDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "End date must not be before start date")
		return
	}

	coupon := models.Coupon{
		SalonID:        salonUUID,
		CouponCode:     input.CouponCode,
		Status:         "active",
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		DiscountType:   input.DiscountType,
		DiscountAmount: input.DiscountAmount,
	}

	if err := config.DB.Create(&coupon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create coupon")
		return
	}

	c.JSON(http.StatusCreated, coupon)
}

// GetCoupons retrieves all coupons for the salon
func GetCoupons(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var coupons []models.Coupon
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&coupons).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve coupons")
		return
	}

	c.JSON(http.StatusOK, coupons)
}

// ApplyCoupon checks a coupon code and returns its discount rule when it
// is active right now. An unmatched or expired code is a plain 404, never
// a server error; the settlement simply proceeds without a coupon.
func ApplyCoupon(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	code := c.Query("code")
	if code == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Coupon code is required")
		return
	}

	var coupons []models.Coupon
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&coupons).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve coupons")
		return
	}

	coupon, rule := services.LookupCoupon(code, time.Now(), coupons)
	if coupon == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Coupon not found or not active")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coupon":   coupon,
		"discount": rule,
	})
}

// UpdateCoupon updates an existing coupon
func UpdateCoupon(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	couponUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateCouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var coupon models.Coupon
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, couponUUID).
		First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Coupon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CouponCode != nil {
		coupon.CouponCode = *input.CouponCode
	}
	if input.Status != nil {
		coupon.Status = *input.Status
	}
	if input.StartDate != nil {
		coupon.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		coupon.EndDate = *input.EndDate
	}
	if input.DiscountType != nil {
		coupon.DiscountType = *input.DiscountType
	}
	if input.DiscountAmount != nil {
		coupon.DiscountAmount = *input.DiscountAmount
	}

	if err := config.DB.Save(&coupon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update coupon")
		return
	}

	c.JSON(http.StatusOK, coupon)
}

// DeleteCoupon soft deletes a coupon
func DeleteCoupon(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	couponUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, couponUUID).
		Delete(&models.Coupon{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete coupon")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Coupon not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}
