package tenant

import (
	"errors"

	"salonledger-backend/apierror"
	"salonledger-backend/identity"
	"salonledger-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Registration is the optional payload for a first-contact owner signup.
type Registration struct {
	SalonName    string
	SalonAddress string
	Timezone     string
}

// Binder maps a verified identity to exactly one User, role and salon,
// creating the records on first contact.
type Binder struct {
	db *gorm.DB
}

func NewBinder(db *gorm.DB) *Binder {
	return &Binder{db: db}
}

// Resolve applies the guard rules for an already-known user: owners get
// the salon they own, staff get their employer's salon through an active
// staff link. A deactivated link is reported distinctly from a missing
// salon.
func (b *Binder) Resolve(user models.User) (Principal, error) {
	switch user.Role {
	case models.RoleOwner:
		var salon models.Salon
		if err := b.db.First(&salon, "owner_id = ?", user.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.ErrNoSalonBound
			}
			return nil, err
		}
		return NewOwner(user, salon), nil

	case models.RoleStaff:
		var staff models.Staff
		if err := b.db.First(&staff, "user_id = ?", user.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.ErrStaffInactive
			}
			return nil, err
		}
		if !staff.IsActive {
			return nil, apierror.ErrStaffInactive
		}
		var salon models.Salon
		if err := b.db.First(&salon, "id = ?", staff.SalonID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.ErrNoSalonBound
			}
			return nil, err
		}
		return NewStaffMember(user, salon, staff), nil
	}

	return nil, apierror.ErrNoSalonBound
}

// ResolveByID looks up a local user by primary key (session/local token
// path) and resolves its salon binding.
func (b *Binder) ResolveByID(id string) (Principal, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apierror.ErrInvalidToken
	}
	var user models.User
	if err := b.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrUnauthenticated
		}
		return nil, err
	}
	return b.Resolve(user)
}

// BindSubject resolves an identity-provider subject, creating the local
// User (and salon or staff link) on first contact. The created flag is
// true only when first contact happened.
func (b *Binder) BindSubject(claims identity.Claims, reg *Registration) (Principal, bool, error) {
	var user models.User
	err := b.db.First(&user, "cognito_sub = ?", claims.Subject).Error
	if err == nil {
		p, rerr := b.Resolve(user)
		return p, false, rerr
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user = models.User{CognitoSub: &claims.Subject}
	if claims.Email != "" {
		email := claims.Email
		user.Email = &email
	}
	if claims.Phone != "" {
		phone := claims.Phone
		user.Phone = &phone
	}

	p, err := b.firstContact(&user, reg)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// RegisterLocal creates a password-auth account and its salon binding in
// one step (password-mode /register).
func (b *Binder) RegisterLocal(email, phone *string, passwordHash string, reg *Registration) (Principal, error) {
	user := models.User{
		Email:        email,
		Phone:        phone,
		PasswordHash: &passwordHash,
	}
	return b.firstContact(&user, reg)
}

// firstContact runs the entire first-contact path in one transaction:
// either the User plus its salon (or staff link) commit together, or
// nothing does. Role is decided here, once: an active, unlinked staff
// row matching the email makes the account STAFF, anything else OWNER.
func (b *Binder) firstContact(user *models.User, reg *Registration) (Principal, error) {
	var principal Principal

	err := b.db.Transaction(func(tx *gorm.DB) error {
		var invite models.Staff
		invited := false
		if user.Email != nil {
			err := tx.Where("email = ? AND is_active = ? AND user_id IS NULL", *user.Email, true).
				First(&invite).Error
			if err == nil {
				invited = true
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		if invited {
			user.Role = models.RoleStaff
		} else {
			user.Role = models.RoleOwner
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if invited {
			if err := tx.Model(&invite).Update("user_id", user.ID).Error; err != nil {
				return err
			}
			invite.UserID = &user.ID

			var salon models.Salon
			if err := tx.First(&salon, "id = ?", invite.SalonID).Error; err != nil {
				return err
			}
			principal = NewStaffMember(*user, salon, invite)
			return nil
		}

		salon := models.Salon{
			OwnerID:  user.ID,
			Name:     "My Salon",
			Timezone: "Asia/Kolkata",
		}
		if reg != nil {
			if reg.SalonName != "" {
				salon.Name = reg.SalonName
			}
			salon.Address = reg.SalonAddress
			if reg.Timezone != "" {
				salon.Timezone = reg.Timezone
			}
		}
		if err := tx.Create(&salon).Error; err != nil {
			return err
		}
		principal = NewOwner(*user, salon)
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.ErrConflict
		}
		return nil, err
	}
	return principal, nil
}
