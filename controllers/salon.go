// controllers/salon.go
package controllers

import (
	"net/http"

	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateSalonInput struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

func GetSalon(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p.Salon())
}

// UpdateSalon edits the salon profile. Owner only. Changing the
// timezone changes which UTC range future "today" queries cover; stored
// logs are untouched.
func UpdateSalon(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}

	var input UpdateSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var salon models.Salon
	if err := config.DB.First(&salon, "id = ?", p.Salon().ID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if input.Name != nil {
		if *input.Name == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Salon name cannot be empty")
			return
		}
		salon.Name = *input.Name
	}
	if input.Address != nil {
		salon.Address = *input.Address
	}
	if input.Timezone != nil {
		if !validTimezone(*input.Timezone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid timezone")
			return
		}
		salon.Timezone = *input.Timezone
	}

	if err := config.DB.Save(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update salon")
		return
	}

	c.JSON(http.StatusOK, salon)
}
