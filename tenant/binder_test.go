package tenant_test

import (
	"testing"

	"salonledger-backend/apierror"
	"salonledger-backend/identity"
	"salonledger-backend/models"
	"salonledger-backend/tenant"
	"salonledger-backend/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestFirstContactCreatesOwnerWithSalon(t *testing.T) {
	db := testutils.SetupTestDB(t)
	binder := tenant.NewBinder(db)

	p, err := binder.RegisterLocal(strptr("owner@example.com"), nil, "hash", &tenant.Registration{
		SalonName: "Glow",
		Timezone:  "Asia/Kolkata",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleOwner, p.Role())
	assert.Equal(t, "Glow", p.Salon().Name)
	assert.Equal(t, "Asia/Kolkata", p.Salon().Timezone)
	assert.Equal(t, p.User().ID, p.Salon().OwnerID)

	// Exactly one user and one salon were committed.
	var users, salons int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Salon{}).Count(&salons)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), salons)
}

func TestFirstContactDefaultsRegistration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	binder := tenant.NewBinder(db)

	p, err := binder.RegisterLocal(strptr("owner@example.com"), nil, "hash", nil)
	require.NoError(t, err)

	assert.Equal(t, "My Salon", p.Salon().Name)
	assert.Equal(t, "Asia/Kolkata", p.Salon().Timezone)
}

func TestFirstContactLinksInvitedStaff(t *testing.T) {
	db := testutils.SetupTestDB(t)
	binder := tenant.NewBinder(db)

	owner, err := binder.RegisterLocal(strptr("owner@example.com"), nil, "hash", &tenant.Registration{SalonName: "Glow"})
	require.NoError(t, err)

	invite := models.Staff{
		SalonID:  owner.Salon().ID,
		Name:     "Asha",
		Email:    strptr("asha@example.com"),
		IsActive: true,
	}
	require.NoError(t, db.Create(&invite).Error)

	p, err := binder.RegisterLocal(strptr("asha@example.com"), nil, "hash", nil)
	require.NoError(t, err)

	assert.Equal(t, models.RoleStaff, p.Role())
	// No second salon: the staff account joins the employer's tenant.
	assert.Equal(t, owner.Salon().ID, p.Salon().ID)

	member, ok := p.(tenant.StaffMember)
	require.True(t, ok)
	assert.Equal(t, invite.ID, member.Record().ID)

	var linked models.Staff
	require.NoError(t, db.First(&linked, "id = ?", invite.ID).Error)
	require.NotNil(t, linked.UserID)
	assert.Equal(t, p.User().ID, *linked.UserID)

	var salons int64
	db.Model(&models.Salon{}).Count(&salons)
	assert.Equal(t, int64(1), salons)
}

func TestInactiveInviteDoesNotLink(t *testing.T) {
	db := testutils.SetupTestDB(t)
	binder := tenant.NewBinder(db)

	owner, err := binder.RegisterLocal(strptr("owner@example.com"), nil, "hash", nil)
	require.NoError(t, err)

	invite := models.Staff{
		SalonID:  owner.Salon().ID,
		Name:     "Asha",
		Email:    strptr("asha@example.com"),
		IsActive: false,
	}
	require.NoError(t, db.Create(&invite).Error)

	// A deactivated invite must not capture the signup: new owner instead.
	p, err := binder.RegisterLocal(strptr("asha@example.com"), nil, "hash", nil)
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, p.Role())
}

func TestResolveDeactivatedStaff(t *testing.T) {
	db := testutils.SetupTestDB(t)
	binder := tenant.NewBinder(db)

	owner, err := binder.RegisterLocal(strptr("owner@example.com"), nil, "hash", nil)
	require.NoError(t, err)
	invite := models.Staff{SalonID: owner.Salon().ID, Name: "Asha", Email: strptr("asha@example.com"), IsActive: true}
	require.NoError(t, db.Create(&invite).Error)

	staff, err := binder.RegisterLocal(strptr("asha@example.com"), nil, "hash", nil)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Staff{}).Where("id = ?", invite.ID).Update("is_active", false).Error)

	_, err = binder.Resolve(staff.User())
	assert.ErrorIs(t, err, apierror.ErrStaffInactive)
}

func TestResolveOwnerWithoutSalon(t *testing.T) {
	db := testutils.SetupTestDB(t)
	binder := tenant.NewBinder(db)

	user := models.User{Email: strptr("orphan@example.com"), Role: models.RoleOwner}
	require.NoError(t, db.Create(&user).Error)

	_, err := binder.Resolve(user)
	assert.ErrorIs(t, err, apierror.ErrNoSalonBound)
}

func TestDuplicateRegistrationConflicts(t *testing.T) {
	db := testutils.SetupTestDB(t)
	binder := tenant.NewBinder(db)

	_, err := binder.RegisterLocal(strptr("owner@example.com"), nil, "hash", nil)
	require.NoError(t, err)

	_, err = binder.RegisterLocal(strptr("owner@example.com"), nil, "hash", nil)
	assert.ErrorIs(t, err, apierror.ErrConflict)

	// The failed transaction must not leave an orphan salon behind.
	var salons int64
	db.Model(&models.Salon{}).Count(&salons)
	assert.Equal(t, int64(1), salons)
}

func TestBindSubjectIsIdempotent(t *testing.T) {
	db := testutils.SetupTestDB(t)
	binder := tenant.NewBinder(db)

	claims := identity.Claims{Subject: "cognito-sub-1", Email: "owner@example.com"}

	first, created, err := binder.BindSubject(claims, &tenant.Registration{SalonName: "Glow"})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := binder.BindSubject(claims, nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.User().ID, second.User().ID)
	assert.Equal(t, first.Salon().ID, second.Salon().ID)
}
