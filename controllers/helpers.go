package controllers

import (
	"net/http"
	"time"

	"salonledger-backend/apierror"
	"salonledger-backend/models"
	"salonledger-backend/tenant"
	"salonledger-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func principalFrom(c *gin.Context) (tenant.Principal, bool) {
	p, ok := tenant.FromContext(c)
	if !ok {
		utils.AbortWithError(c, apierror.ErrUnauthenticated)
		return nil, false
	}
	return p, true
}

func salonLocation(c *gin.Context, p tenant.Principal) (*time.Location, bool) {
	loc, err := p.Salon().Location()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid salon timezone")
		return nil, false
	}
	return loc, true
}

// dateParam reads the optional ?date= query, defaulting to today in the
// salon's timezone. A malformed value is a 400, never a silent default.
func dateParam(c *gin.Context, loc *time.Location) (models.Date, bool) {
	raw := c.Query("date")
	if raw == "" {
		return utils.Today(loc), true
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		utils.AbortWithError(c, apierror.ErrInvalidDate)
		return models.Date{}, false
	}
	return d, true
}

func validTimezone(name string) bool {
	_, err := time.LoadLocation(name)
	return err == nil
}

// money rounds an exact accumulated decimal to 2 places at the response
// boundary.
func money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func principalSummary(p tenant.Principal) gin.H {
	return gin.H{
		"user":  p.User(),
		"role":  p.Role(),
		"salon": p.Salon(),
	}
}
