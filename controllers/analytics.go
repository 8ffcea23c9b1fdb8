// controllers/analytics.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"salonledger-backend/apierror"
	"salonledger-backend/config"
	"salonledger-backend/services"
	"salonledger-backend/utils"

	"github.com/gin-gonic/gin"
)

type dayBucket struct {
	Day     int     `json:"day"`
	Revenue float64 `json:"revenue"`
}

type monthBucket struct {
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
}

// GetMonthlyAnalytics returns a dense per-day revenue series for one
// calendar month (?month=YYYY-MM, default the current salon-local
// month). Owner only.
func GetMonthlyAnalytics(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	loc, ok := salonLocation(c, p)
	if !ok {
		return
	}

	now := time.Now().In(loc)
	year, month := now.Year(), now.Month()
	if raw := c.Query("month"); raw != "" {
		var err error
		year, month, err = utils.ParseMonth(raw)
		if err != nil {
			utils.AbortWithError(c, apierror.ErrInvalidDate)
			return
		}
	}

	series, grand, err := services.NewRevenueService(config.DB).MonthlySeries(p.Salon(), year, month)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute monthly analytics")
		return
	}

	days := make([]dayBucket, len(series))
	for i, b := range series {
		days[i] = dayBucket{Day: b.Bucket, Revenue: money(b.Revenue)}
	}

	c.JSON(http.StatusOK, gin.H{
		"month":         fmt.Sprintf("%04d-%02d", year, month),
		"days":          days,
		"total_revenue": money(grand),
	})
}

// GetYearlyAnalytics returns a dense per-month revenue series for one
// calendar year (?year=YYYY, default the current salon-local year).
// Owner only.
func GetYearlyAnalytics(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	loc, ok := salonLocation(c, p)
	if !ok {
		return
	}

	year := time.Now().In(loc).Year()
	if raw := c.Query("year"); raw != "" {
		var err error
		year, err = utils.ParseYear(raw)
		if err != nil {
			utils.AbortWithError(c, apierror.ErrInvalidDate)
			return
		}
	}

	series, grand, err := services.NewRevenueService(config.DB).YearlySeries(p.Salon(), year)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute yearly analytics")
		return
	}

	months := make([]monthBucket, len(series))
	for i, b := range series {
		months[i] = monthBucket{Month: b.Bucket, Revenue: money(b.Revenue)}
	}

	c.JSON(http.StatusOK, gin.H{
		"year":          year,
		"months":        months,
		"total_revenue": money(grand),
	})
}
