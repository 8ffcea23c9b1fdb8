package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentCash = "cash"
	PaymentUpi  = "upi"
)

// ServiceLog is one transaction. Either ServiceID or CustomService is set,
// never both. ServedAt is stored in UTC; which local calendar day the log
// belongs to is decided at query time from the salon's timezone. Rows are
// immutable once created — there are no update or delete routes.
type ServiceLog struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SalonID       uuid.UUID       `gorm:"type:uuid;index;not null" json:"salon_id"`
	StaffID       *uuid.UUID      `gorm:"type:uuid;index" json:"staff_id"`
	ServiceID     *uuid.UUID      `gorm:"type:uuid;index" json:"service_id"`
	CustomService string          `json:"custom_service"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	PaymentMethod string          `gorm:"type:varchar(10);not null" json:"payment_method"`
	ServedAt      time.Time       `gorm:"index;not null" json:"served_at"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (l *ServiceLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
