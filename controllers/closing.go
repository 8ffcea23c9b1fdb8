// controllers/closing.go
package controllers

import (
	"net/http"

	"salonledger-backend/models"
	"salonledger-backend/services"
	"salonledger-backend/utils"

	"github.com/gin-gonic/gin"
)

type ClosingController struct {
	Svc *services.ClosingService
}

type createClosingInput struct {
	Date string `json:"date"`
}

// CreateDailyClosing snapshots one salon-local day. At most one closing
// exists per (salon, date); a repeat attempt is a 400 and leaves the
// original untouched.
func (cc *ClosingController) CreateDailyClosing(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	loc, ok := salonLocation(c, p)
	if !ok {
		return
	}

	var input createClosingInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
	}

	date := utils.Today(loc)
	if input.Date != "" {
		parsed, err := models.ParseDate(input.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format")
			return
		}
		date = parsed
	}

	closing, err := cc.Svc.CloseDay(p.Salon(), date)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, closing)
}

// GetDailyClosing fetches the snapshot for one date (?date=, default
// today in the salon's timezone).
func (cc *ClosingController) GetDailyClosing(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	loc, ok := salonLocation(c, p)
	if !ok {
		return
	}
	date, ok := dateParam(c, loc)
	if !ok {
		return
	}

	closing, err := cc.Svc.Get(p.Salon().ID, date)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, closing)
}
