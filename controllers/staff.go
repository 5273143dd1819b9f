// controllers/staff.go
package controllers

import (
	"errors"
	"net/http"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateStaffInput struct {
	BranchID   uuid.UUID `json:"branchId" binding:"required"`
	FullName   string    `json:"fullName" binding:"required"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email" binding:"omitempty,email"`
	StartShift string    `json:"startShift"`
	EndShift   string    `json:"endShift"`
}

type UpdateStaffInput struct {
	BranchID   *uuid.UUID `json:"branchId"`
	FullName   *string    `json:"fullName"`
	Phone      *string    `json:"phone"`
	Email      *string    `json:"email" binding:"omitempty,email"`
	StartShift *string    `json:"startShift"`
	EndShift   *string    `json:"endShift"`
	Status     *string    `json:"status" binding:"omitempty,oneof=active inactive"`
}

// AddStaff creates a new staff member under a branch of the salon
func AddStaff(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Shift window must be valid "HH:MM" when present; both or neither
	if (input.StartShift == "") != (input.EndShift == "") {
		utils.RespondWithError(c, http.StatusBadRequest, "Both startShift and endShift are required for a shift window")
		return
	}
	if input.StartShift != "" &&
		(!utils.ValidateClock(input.StartShift) || !utils.ValidateClock(input.EndShift)) {
		utils.RespondWithError(c, http.StatusBadRequest, "Shift times must be in HH:MM format")
		return
	}

	// Validate branch exists in the same salon
	var branch models.Branch
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, input.BranchID).
		First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Branch not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	staff := models.Staff{
		SalonID:    salonUUID,
		BranchID:   input.BranchID,
		FullName:   input.FullName,
		Phone:      input.Phone,
		Email:      input.Email,
		StartShift: input.StartShift,
		EndShift:   input.EndShift,
		Status:     "active",
	}

	if err := config.DB.Create(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create staff member")
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// GetStaff retrieves staff for the salon, optionally filtered by branch.
// The branch filter is an explicit query parameter, never ambient state.
func GetStaff(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	query := config.DB.Where("salon_id = ?", salonUUID)
	if branchID := c.Query("branchId"); branchID != "" {
		branchUUID, err := uuid.Parse(branchID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid branch ID format")
			return
		}
		query = query.Where("branch_id = ?", branchUUID)
	}

	var staff []models.Staff
	if err := query.Find(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// UpdateStaff updates an existing staff member
func UpdateStaff(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	staffUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var staff models.Staff
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, staffUUID).
		First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.BranchID != nil {
		var branch models.Branch
		if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, *input.BranchID).
			First(&branch).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Branch not found")
			return
		}
		staff.BranchID = *input.BranchID
	}
	if input.FullName != nil {
		staff.FullName = *input.FullName
	}
	if input.Phone != nil {
		staff.Phone = *input.Phone
	}
	if input.Email != nil {
		staff.Email = *input.Email
	}
	if input.StartShift != nil {
		if *input.StartShift != "" && !utils.ValidateClock(*input.StartShift) {
			utils.RespondWithError(c, http.StatusBadRequest, "Shift times must be in HH:MM format")
			return
		}
		staff.StartShift = *input.StartShift
	}
	if input.EndShift != nil {
		if *input.EndShift != "" && !utils.ValidateClock(*input.EndShift) {
			utils.RespondWithError(c, http.StatusBadRequest, "Shift times must be in HH:MM format")
			return
		}
		staff.EndShift = *input.EndShift
	}
	if input.Status != nil {
		staff.Status = *input.Status
	}

	if err := config.DB.Save(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update staff member")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// DeleteStaff soft deletes a staff member
func DeleteStaff(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	staffUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, staffUUID).
		Delete(&models.Staff{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete staff member")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}
