package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailyClosing is an immutable end-of-day revenue snapshot. The unique
// index on (salon_id, date) is what resolves a race between two
// concurrent closes: the store rejects the second insert. Totals are
// computed once from the day's log set and never re-derived.
type DailyClosing struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SalonID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_salon_date" json:"salon_id"`
	Date         Date            `gorm:"not null;uniqueIndex:idx_salon_date" json:"date"`
	ClosedAt     time.Time       `gorm:"not null" json:"closed_at"`
	TotalRevenue decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_revenue"`
	CashTotal    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cash_total"`
	UpiTotal     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"upi_total"`
}

func (d *DailyClosing) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}
