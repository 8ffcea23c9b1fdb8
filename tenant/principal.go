// Package tenant binds an authenticated identity to its salon and role,
// and enforces what that role may see. A Principal is resolved once per
// request and passed onward; handlers never re-derive role or salon.
package tenant

import (
	"salonledger-backend/models"

	"gorm.io/gorm"
)

// Principal is the resolved caller: user, salon and role, with the
// role-dependent narrowing behaviour attached. The two variants are
// Owner and StaffMember; each carries only the fields valid for it.
type Principal interface {
	User() models.User
	Salon() models.Salon
	Role() models.Role
	// LogScope narrows a service-log query to the rows the caller may
	// see. Owners see the whole salon; staff only their own rows.
	LogScope(tx *gorm.DB) *gorm.DB
}

type Owner struct {
	user  models.User
	salon models.Salon
}

func NewOwner(user models.User, salon models.Salon) Owner {
	return Owner{user: user, salon: salon}
}

func (o Owner) User() models.User            { return o.user }
func (o Owner) Salon() models.Salon          { return o.salon }
func (o Owner) Role() models.Role            { return models.RoleOwner }
func (o Owner) LogScope(tx *gorm.DB) *gorm.DB { return tx }

// StaffMember carries its own staff record so log queries can be
// narrowed to it without another lookup.
type StaffMember struct {
	user   models.User
	salon  models.Salon
	record models.Staff
}

func NewStaffMember(user models.User, salon models.Salon, record models.Staff) StaffMember {
	return StaffMember{user: user, salon: salon, record: record}
}

func (m StaffMember) User() models.User   { return m.user }
func (m StaffMember) Salon() models.Salon { return m.salon }
func (m StaffMember) Role() models.Role   { return models.RoleStaff }
func (m StaffMember) Record() models.Staff { return m.record }

func (m StaffMember) LogScope(tx *gorm.DB) *gorm.DB {
	return tx.Where("staff_id = ?", m.record.ID)
}
