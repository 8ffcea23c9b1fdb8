package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleOwner Role = "OWNER"
	RoleStaff Role = "STAFF"
)

// User is the local identity record. Exactly one credential shape is
// populated depending on the auth mode: PasswordHash for local accounts,
// CognitoSub for identity-provider accounts. Role is assigned once at
// first contact and never changes.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CognitoSub   *string   `gorm:"uniqueIndex" json:"-"`
	Email        *string   `gorm:"uniqueIndex" json:"email"`
	Phone        *string   `gorm:"uniqueIndex" json:"phone"`
	PasswordHash *string   `json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
