// controllers/branch.go
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

type CreateBranchInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Status  string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateBranchInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Status  *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// CreateBranch creates a new branch for the salon
func CreateBranch(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateBranchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	status := input.Status
	if status == "" {
		status = "active"
	}

	branch := models.Branch{
		SalonID: salonUUID,
		Name:    input.Name,
		Address: input.Address,
		Status:  status,
	}

	if err := config.DB.Create(&branch).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create branch")
		return
	}

	c.JSON(http.StatusCreated, branch)
}

// GetBranches retrieves all branches for the salon
func GetBranches(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var branches []models.Branch
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&branches).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve branches")
		return
	}

	c.JSON(http.StatusOK, branches)
}

// GetBranch retrieves a specific branch by ID
func GetBranch(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	branchUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var branch models.Branch
	if err := config.DB.Preload("Staff").
		Where("salon_id = ? AND id = ?", salonUUID, branchUUID).
		First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Branch not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, branch)
}

// UpdateBranch updates an existing branch
func UpdateBranch(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	branchUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateBranchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var branch models.Branch
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, branchUUID).
		First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Branch not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		branch.Name = *input.Name
	}
	if input.Address != nil {
		branch.Address = *input.Address
	}
	if input.Status != nil {
		branch.Status = *input.Status
	}

	if err := config.DB.Save(&branch).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update branch")
		return
	}

	c.JSON(http.StatusOK, branch)
}

// DeleteBranch soft deletes a branch
func DeleteBranch(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	branchUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, branchUUID).
		Delete(&models.Branch{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete branch")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Branch not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Branch deleted successfully"})
}
