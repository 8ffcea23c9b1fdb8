package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff is an employee record. Email is used to match an invited employee
// when they first sign up; UserID is set at that moment and links the row
// to their account. Deactivation flips IsActive — staff rows are never
// deleted so historical service logs keep their reference.
type Staff struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	SalonID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"salon_id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     *string    `gorm:"index" json:"email"`
	Phone     string     `json:"phone"`
	Role      string     `gorm:"type:varchar(50)" json:"role"`
	UserID    *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName keeps the table singular; the default pluralizer would
// produce "staffs".
func (Staff) TableName() string {
	return "staff"
}

func (s *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
