// controllers/logs.go
package controllers

import (
	"net/http"
	"strings"
	"time"

	"salonledger-backend/apierror"
	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/tenant"
	"salonledger-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateLogInput struct {
	Price         decimal.Decimal `json:"price" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	ServiceID     *uuid.UUID      `json:"service_id"`
	CustomService string          `json:"custom_service"`
	StaffID       *uuid.UUID      `json:"staff_id"`
	ServedAt      *time.Time      `json:"served_at"`
}

// CreateLog records one transaction. The salon is always the caller's
// bound tenant; a staff caller can only attribute the log to themselves.
func CreateLog(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}

	var input CreateLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	method := strings.ToLower(strings.TrimSpace(input.PaymentMethod))
	if method != models.PaymentCash && method != models.PaymentUpi {
		utils.RespondWithError(c, http.StatusBadRequest, "Payment method must be cash or upi")
		return
	}
	if input.Price.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Price cannot be negative")
		return
	}
	if (input.ServiceID == nil) == (input.CustomService == "") {
		utils.RespondWithError(c, http.StatusBadRequest, "Provide exactly one of service_id or custom_service")
		return
	}

	if input.ServiceID != nil {
		var service models.Service
		if err := config.DB.First(&service, "salon_id = ? AND id = ?", p.Salon().ID, *input.ServiceID).Error; err != nil {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
			return
		}
	}

	staffID := input.StaffID
	if member, isStaff := p.(tenant.StaffMember); isStaff {
		record := member.Record()
		if staffID != nil && *staffID != record.ID {
			utils.AbortWithError(c, apierror.ErrForbidden)
			return
		}
		id := record.ID
		staffID = &id
	} else if staffID != nil {
		var staff models.Staff
		if err := config.DB.First(&staff, "salon_id = ? AND id = ?", p.Salon().ID, *staffID).Error; err != nil {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
			return
		}
	}

	servedAt := time.Now().UTC()
	if input.ServedAt != nil {
		servedAt = input.ServedAt.UTC()
	}

	log := models.ServiceLog{
		SalonID:       p.Salon().ID,
		StaffID:       staffID,
		ServiceID:     input.ServiceID,
		CustomService: input.CustomService,
		Price:         input.Price,
		PaymentMethod: method,
		ServedAt:      servedAt,
	}

	if err := config.DB.Create(&log).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create log")
		return
	}

	c.JSON(http.StatusCreated, log)
}

// GetLogs lists logs for one local day (?date=) or an explicit range
// (?start=&end=, both local dates, end inclusive). Staff see only their
// own rows.
func GetLogs(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	loc, ok := salonLocation(c, p)
	if !ok {
		return
	}

	var startUTC, endUTC time.Time
	if startRaw := c.Query("start"); startRaw != "" {
		startDate, err := models.ParseDate(startRaw)
		if err != nil {
			utils.AbortWithError(c, apierror.ErrInvalidDate)
			return
		}
		endDate := startDate
		if endRaw := c.Query("end"); endRaw != "" {
			endDate, err = models.ParseDate(endRaw)
			if err != nil {
				utils.AbortWithError(c, apierror.ErrInvalidDate)
				return
			}
		}
		startUTC, _ = utils.DayRange(loc, startDate)
		_, endUTC = utils.DayRange(loc, endDate)
	} else {
		date, ok := dateParam(c, loc)
		if !ok {
			return
		}
		startUTC, endUTC = utils.DayRange(loc, date)
	}

	var logs []models.ServiceLog
	q := config.DB.
		Where("salon_id = ? AND served_at >= ? AND served_at < ?", p.Salon().ID, startUTC, endUTC).
		Order("served_at DESC")
	if err := p.LogScope(q).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetLogsToday is GetLogs pinned to today in the salon's timezone.
func GetLogsToday(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	loc, ok := salonLocation(c, p)
	if !ok {
		return
	}
	startUTC, endUTC := utils.DayRange(loc, utils.Today(loc))

	var logs []models.ServiceLog
	q := config.DB.
		Where("salon_id = ? AND served_at >= ? AND served_at < ?", p.Salon().ID, startUTC, endUTC).
		Order("served_at DESC")
	if err := p.LogScope(q).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
