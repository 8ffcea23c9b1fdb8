// controllers/summary.go
package controllers

import (
	"net/http"

	"salonledger-backend/config"
	"salonledger-backend/services"
	"salonledger-backend/utils"

	"github.com/gin-gonic/gin"
)

type breakdownEntry struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// GetSummary returns the day's payment totals. Staff callers see only
// their own transactions folded in.
func GetSummary(c *gin.Context) {
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
	start, end := utils.DayRange(loc, date)

	totals, err := services.NewRevenueService(config.DB).Totals(p.Salon().ID, start, end, p.LogScope)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":              date,
		"total_revenue":     money(totals.Total),
		"cash_total":        money(totals.Cash),
		"upi_total":         money(totals.Upi),
		"transaction_count": totals.Count,
	})
}

// GetBreakdown returns the day's revenue grouped by service name.
func GetBreakdown(c *gin.Context) {
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
	start, end := utils.DayRange(loc, date)

	groups, err := services.NewRevenueService(config.DB).ServiceBreakdown(p.Salon().ID, start, end, p.LogScope)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute breakdown")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      date,
		"breakdown": toEntries(groups),
	})
}

// GetStaffPerformance returns the day's revenue grouped by staff name.
// Owner only — the route is gated by tenant.RequireOwner.
func GetStaffPerformance(c *gin.Context) {
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
	start, end := utils.DayRange(loc, date)

	groups, err := services.NewRevenueService(config.DB).StaffPerformance(p.Salon().ID, start, end)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute staff performance")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"staff": toEntries(groups),
	})
}

func toEntries(groups []services.GroupTotal) []breakdownEntry {
	entries := make([]breakdownEntry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, breakdownEntry{
			Name:    g.Name,
			Revenue: money(g.Revenue),
			Count:   g.Count,
		})
	}
	return entries
}
