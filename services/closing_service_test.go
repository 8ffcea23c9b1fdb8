package services_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"salonledger-backend/apierror"
	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/services"
	"salonledger-backend/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseDaySnapshotsLocalDay(t *testing.T) {
	db := testutils.SetupTestDB(t)
	salon := seedSalon(t, db, "Asia/Kolkata")
	date := models.NewDate(2025, 3, 15)

	loc, err := salon.Location()
	require.NoError(t, err)

	seedLog(t, db, salon, "200.00", "cash", time.Date(2025, 3, 15, 11, 0, 0, 0, loc), nil, nil)
	seedLog(t, db, salon, "150.00", "upi", time.Date(2025, 3, 15, 18, 30, 0, 0, loc), nil, nil)
	// Belongs to March 16 locally even though it is March 15 in UTC.
	seedLog(t, db, salon, "999.00", "cash", time.Date(2025, 3, 16, 0, 30, 0, 0, loc), nil, nil)

	svc := services.NewClosingService(db, nil, config.GetLogger())
	closing, err := svc.CloseDay(salon, date)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-15", closing.Date.String())
	assert.Equal(t, "350", closing.TotalRevenue.String())
	assert.Equal(t, "200", closing.CashTotal.String())
	assert.Equal(t, "150", closing.UpiTotal.String())
	assert.True(t, closing.TotalRevenue.Equal(closing.CashTotal.Add(closing.UpiTotal)))
	assert.False(t, closing.ClosedAt.IsZero())
}

func TestCloseDayIsOncePerDate(t *testing.T) {
	db := testutils.SetupTestDB(t)
	salon := seedSalon(t, db, "Asia/Kolkata")
	date := models.NewDate(2025, 3, 15)

	loc, err := salon.Location()
	require.NoError(t, err)
	seedLog(t, db, salon, "200.00", "cash", time.Date(2025, 3, 15, 11, 0, 0, 0, loc), nil, nil)

	svc := services.NewClosingService(db, nil, config.GetLogger())
	first, err := svc.CloseDay(salon, date)
	require.NoError(t, err)

	// More logs arrive after the close; a repeat attempt must fail and
	// leave the original snapshot untouched.
	seedLog(t, db, salon, "500.00", "cash", time.Date(2025, 3, 15, 12, 0, 0, 0, loc), nil, nil)

	_, err = svc.CloseDay(salon, date)
	assert.ErrorIs(t, err, apierror.ErrAlreadyClosed)

	var count int64
	require.NoError(t, db.Model(&models.DailyClosing{}).Where("salon_id = ?", salon.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := svc.Get(salon.ID, date)
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "200", stored.TotalRevenue.String())
}

func TestCloseDayUnknownMethodCountsInTotalOnly(t *testing.T) {
	db := testutils.SetupTestDB(t)
	salon := seedSalon(t, db, "Asia/Kolkata")
	date := models.NewDate(2025, 3, 15)

	loc, err := salon.Location()
	require.NoError(t, err)
	seedLog(t, db, salon, "200.00", "cash", time.Date(2025, 3, 15, 11, 0, 0, 0, loc), nil, nil)
	seedLog(t, db, salon, "100.00", "card", time.Date(2025, 3, 15, 12, 0, 0, 0, loc), nil, nil)

	svc := services.NewClosingService(db, nil, config.GetLogger())
	closing, err := svc.CloseDay(salon, date)
	require.NoError(t, err)

	assert.Equal(t, "300", closing.TotalRevenue.String())
	assert.Equal(t, "200", closing.CashTotal.String())
	assert.Equal(t, "0", closing.UpiTotal.String())
}

func TestGetMissingClosing(t *testing.T) {
	db := testutils.SetupTestDB(t)
	salon := seedSalon(t, db, "Asia/Kolkata")

	svc := services.NewClosingService(db, nil, config.GetLogger())
	_, err := svc.Get(salon.ID, models.NewDate(2025, 1, 1))
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestCloseMissedDaysSkipsEmptyAndClosedDays(t *testing.T) {
	db := testutils.SetupTestDB(t)
	salon := seedSalon(t, db, "Asia/Kolkata")

	loc, err := salon.Location()
	require.NoError(t, err)
	yesterday := models.DateOf(time.Now().In(loc).AddDate(0, 0, -1))
	seedLog(t, db, salon, "120.00", "cash", time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 14, 0, 0, 0, loc), nil, nil)

	// Second salon with no logs yesterday: the sweep must not close it.
	idle := seedSalon(t, db, "Asia/Kolkata")

	svc := services.NewClosingService(db, nil, config.GetLogger())
	svc.CloseMissedDays()

	var count int64
	require.NoError(t, db.Model(&models.DailyClosing{}).Where("salon_id = ?", salon.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, db.Model(&models.DailyClosing{}).Where("salon_id = ?", idle.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// Running the sweep again is a no-op.
	svc.CloseMissedDays()
	require.NoError(t, db.Model(&models.DailyClosing{}).Where("salon_id = ?", salon.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
