// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateServiceInput struct {
	Name         string          `json:"name" binding:"required"`
	DefaultPrice decimal.Decimal `json:"default_price" binding:"required"`
	SortOrder    int             `json:"sort_order"`
}

type UpdateServiceInput struct {
	Name         *string          `json:"name"`
	DefaultPrice *decimal.Decimal `json:"default_price"`
	SortOrder    *int             `json:"sort_order"`
	IsActive     *bool            `json:"is_active"`
}

// GetServices lists the salon's active services, ordered for display:
// sort_order first, name as the tiebreaker.
func GetServices(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := config.DB.
		Where("salon_id = ? AND is_active = ?", p.Salon().ID, true).
		Order("sort_order, name").
		Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

func CreateService(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}

	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.DefaultPrice.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Price cannot be negative")
		return
	}

	service := models.Service{
		SalonID:      p.Salon().ID,
		Name:         input.Name,
		DefaultPrice: input.DefaultPrice,
		SortOrder:    input.SortOrder,
		IsActive:     true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

func UpdateService(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}

	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.Where("salon_id = ? AND id = ?", p.Salon().ID, serviceUUID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.DefaultPrice != nil {
		if input.DefaultPrice.IsNegative() {
			utils.RespondWithError(c, http.StatusBadRequest, "Price cannot be negative")
			return
		}
		service.DefaultPrice = *input.DefaultPrice
	}
	if input.SortOrder != nil {
		service.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService deactivates a service. The row stays so historical logs
// keep resolving its name.
func DeleteService(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}

	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Model(&models.Service{}).
		Where("salon_id = ? AND id = ?", p.Salon().ID, serviceUUID).
		Update("is_active", false)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deactivated"})
}
