// controllers/staff.go
package controllers

import (
	"net/http"
	"strings"

	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AddStaffInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// GetStaff lists the salon's staff, active and deactivated alike, so
// owners can see and reverse deactivations.
func GetStaff(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}

	var staff []models.Staff
	if err := config.DB.
		Where("salon_id = ?", p.Salon().ID).
		Order("created_at").
		Find(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// AddStaff creates an employee record. Owner only. An email on the
// record acts as an invitation: when that address signs up, the new
// account is linked to this row with the STAFF role.
func AddStaff(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}

	var input AddStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	staff := models.Staff{
		SalonID:  p.Salon().ID,
		Name:     input.Name,
		Phone:    input.Phone,
		Role:     input.Role,
		IsActive: true,
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		staff.Email = &email
	}

	if err := config.DB.Create(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create staff member")
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// DeactivateStaff soft-deactivates a staff member. Owner only. The row
// is never deleted: historical logs keep their attribution, and the
// linked account loses access on its next request.
func DeactivateStaff(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}

	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	result := config.DB.Model(&models.Staff{}).
		Where("salon_id = ? AND id = ?", p.Salon().ID, staffUUID).
		Update("is_active", false)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate staff member")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member deactivated"})
}
