// controllers/tax.go
package controllers

import (
	"errors"
	"net/http"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateTaxInput struct {
	Title string  `json:"title" binding:"required"`
	Type  string  `json:"type" binding:"required,oneof=percent flat"`
	Value float64 `json:"value" binding:"required,min=0"`
}

type UpdateTaxInput struct {
	Title  *string  `json:"title"`
	Type   *string  `json:"type" binding:"omitempty,oneof=percent flat"`
	Value  *float64 `json:"value" binding:"omitempty,min=0"`
	Status *string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

// CreateTax creates a new tax rule for the salon
func CreateTax(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateTaxInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tax := models.Tax{
		SalonID: salonUUID,
		Title:   input.Title,
		Type:    input.Type,
		Value:   input.Value,
		Status:  "active",
	}

	if err := config.DB.Create(&tax).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create tax")
		return
	}

	c.JSON(http.StatusCreated, tax)
}

// GetTaxes retrieves all tax rules for the salon
func GetTaxes(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var taxes []models.Tax
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&taxes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve taxes")
		return
	}

	c.JSON(http.StatusOK, taxes)
}

// UpdateTax updates an existing tax rule
func UpdateTax(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	taxUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateTaxInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var tax models.Tax
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, taxUUID).
		First(&tax).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Tax not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		tax.Title = *input.Title
	}
	if input.Type != nil {
		tax.Type = *input.Type
	}
	if input.Value != nil {
		tax.Value = *input.Value
	}
	if input.Status != nil {
		tax.Status = *input.Status
	}

	if err := config.DB.Save(&tax).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update tax")
		return
	}

	c.JSON(http.StatusOK, tax)
}

// DeleteTax soft deletes a tax rule
func DeleteTax(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	taxUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, taxUUID).
		Delete(&models.Tax{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete tax")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Tax not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tax deleted successfully"})
}
