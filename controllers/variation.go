// controllers/variation.go
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

type CreateVariationInput struct {
	Name  string   `json:"name" binding:"required"`
	Value []string `json:"value"`
}

type UpdateVariationInput struct {
	Name  *string   `json:"name"`
	Value *[]string `json:"value"`
}

// CreateVariation creates a new attribute axis definition (e.g. Color)
func CreateVariation(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateVariationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	variation := models.Variation{
		SalonID: salonUUID,
		Name:    input.Name,
		Value:   input.Value,
	}

	if err := config.DB.Create(&variation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create variation")
		return
	}

	c.JSON(http.StatusCreated, variation)
}

// GetVariations retrieves all variation definitions for the salon
func GetVariations(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var variations []models.Variation
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&variations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve variations")
		return
	}

	c.JSON(http.StatusOK, variations)
}

// UpdateVariation updates an existing variation definition
func UpdateVariation(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	variationUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateVariationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var variation models.Variation
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, variationUUID).
		First(&variation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Variation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		variation.Name = *input.Name
	}
	if input.Value != nil {
		variation.Value = *input.Value
	}

	if err := config.DB.Save(&variation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update variation")
		return
	}

	c.JSON(http.StatusOK, variation)
}

// DeleteVariation soft deletes a variation definition
func DeleteVariation(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	variationUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, variationUUID).
		Delete(&models.Variation{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete variation")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Variation not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Variation deleted successfully"})
}
