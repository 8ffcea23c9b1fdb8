// services/closing_service.go
package services

import (
	"errors"
	"time"

	"salonledger-backend/apierror"
	"salonledger-backend/models"
	"salonledger-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ClosingService produces the immutable once-per-(salon, date) snapshot
// of a day's totals. Uniqueness under concurrent closes is enforced by
// the store's (salon_id, date) constraint, not by locking.
type ClosingService struct {
	db       *gorm.DB
	revenue  *RevenueService
	notifier *ClosingNotifier
	log      *logrus.Logger
}

func NewClosingService(db *gorm.DB, notifier *ClosingNotifier, log *logrus.Logger) *ClosingService {
	return &ClosingService{
		db:       db,
		revenue:  NewRevenueService(db),
		notifier: notifier,
		log:      log,
	}
}

// CloseDay snapshots one salon-local calendar day. The day's logs are
// selected by the same timezone-local range the live summary uses, so
// the two always agree on which day a log belongs to.
func (s *ClosingService) CloseDay(salon models.Salon, date models.Date) (models.DailyClosing, error) {
	loc, err := salon.Location()
	if err != nil {
		return models.DailyClosing{}, err
	}
	start, end := utils.DayRange(loc, date)

	var closing models.DailyClosing
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.DailyClosing
		err := tx.First(&existing, "salon_id = ? AND date = ?", salon.ID, date).Error
		if err == nil {
			return apierror.ErrAlreadyClosed
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		totals, err := NewRevenueService(tx).Totals(salon.ID, start, end, nil)
		if err != nil {
			return err
		}

		closing = models.DailyClosing{
			SalonID:      salon.ID,
			Date:         date,
			ClosedAt:     time.Now().UTC(),
			TotalRevenue: totals.Total.Round(2),
			CashTotal:    totals.Cash.Round(2),
			UpiTotal:     totals.Upi.Round(2),
		}
		return tx.Create(&closing).Error
	})
	if err != nil {
		// A concurrent close wins the race at the unique index; surface
		// it the same way as the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.DailyClosing{}, apierror.ErrAlreadyClosed
		}
		return models.DailyClosing{}, err
	}

	if s.notifier != nil {
		s.notifier.NotifyOwner(salon, closing)
	}
	return closing, nil
}

// Get fetches an existing snapshot, if any.
func (s *ClosingService) Get(salonID uuid.UUID, date models.Date) (models.DailyClosing, error) {
	var closing models.DailyClosing
	err := s.db.First(&closing, "salon_id = ? AND date = ?", salonID, date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return closing, apierror.ErrNotFound
	}
	return closing, err
}

// StartScheduler runs an hourly sweep that closes the previous local day
// for any salon that has logs on it but no snapshot yet. Salons in
// different timezones hit their own midnight at different UTC hours,
// hence the hourly cadence.
func (s *ClosingService) StartScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("15 * * * *", s.CloseMissedDays)

	c.Start()
	s.log.Info("auto-closing scheduler started")
	return c
}

func (s *ClosingService) CloseMissedDays() {
	var salons []models.Salon
	if err := s.db.Find(&salons).Error; err != nil {
		s.log.WithError(err).Error("auto-close: failed to list salons")
		return
	}

	for _, salon := range salons {
		loc, err := salon.Location()
		if err != nil {
			s.log.WithField("salon_id", salon.ID).WithError(err).Error("auto-close: bad timezone")
			continue
		}
		yesterday := models.DateOf(time.Now().In(loc).AddDate(0, 0, -1))
		start, end := utils.DayRange(loc, yesterday)

		totals, err := s.revenue.Totals(salon.ID, start, end, nil)
		if err != nil {
			s.log.WithField("salon_id", salon.ID).WithError(err).Error("auto-close: totals failed")
			continue
		}
		if totals.Count == 0 {
			continue
		}

		if _, err := s.CloseDay(salon, yesterday); err != nil {
			if errors.Is(err, apierror.ErrAlreadyClosed) {
				continue
			}
			s.log.WithField("salon_id", salon.ID).WithError(err).Error("auto-close: close failed")
		}
	}
}
