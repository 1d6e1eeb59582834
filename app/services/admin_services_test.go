package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shallerhub/app/models"
	"github.com/shashiranjanraj/shallerhub/pkg/auth"
)

func seedAdmin(t *testing.T, store *memAdminStore) models.Admin {
	t.Helper()
	hash, err := auth.HashPassword("Admin@123")
	require.NoError(t, err)

	admin := models.Admin{AdminName: "Varma", Email: "admin123@gmail.com", Password: hash}
	require.NoError(t, store.Create(context.Background(), &admin))
	return admin
}

func TestAdminLogin(t *testing.T) {
	admins := &memAdminStore{}
	seedAdmin(t, admins)
	svc := NewAdminService(admins, &memVendorStore{})

	t.Run("success", func(t *testing.T) {
		admin, token, err := svc.Login(context.Background(), "Varma", "admin123@gmail.com", "Admin@123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "Varma", admin.AdminName)
	})

	t.Run("wrong name", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "varma", "admin123@gmail.com", "Admin@123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "Varma", "admin123@gmail.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "Varma", "ghost@gmail.com", "Admin@123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCreateVendor(t *testing.T) {
	admins := &memAdminStore{}
	vendors := &memVendorStore{}
	admin := seedAdmin(t, admins)
	svc := NewAdminService(admins, vendors)

	in := VendorInput{Name: "Ravi", Email: "Ravi@Shop.com", PhoneNumber: "9999", Password: "secret"}
	vendor, err := svc.CreateVendor(context.Background(), admin.ID.Hex(), in)
	require.NoError(t, err)

	// Login document with normalized email and the admin back-reference.
	assert.Equal(t, "ravi@shop.com", vendor.Email)
	assert.Equal(t, admin.ID, vendor.AdminID)
	assert.False(t, vendor.HasShop())

	// The admin listing is derived from the login collection, not stored.
	records, err := svc.Vendors(context.Background(), admin.ID.Hex())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Ravi", records[0].Name)
	assert.Equal(t, "ravi@shop.com", records[0].Email)
	assert.Equal(t, vendor.ID, records[0].ID)
	assert.False(t, records[0].HasShop)
}

func TestCreateVendorDuplicateEmail(t *testing.T) {
	admins := &memAdminStore{}
	vendors := &memVendorStore{}
	admin := seedAdmin(t, admins)
	svc := NewAdminService(admins, vendors)

	in := VendorInput{Name: "Ravi", Email: "ravi@shop.com", Password: "secret"}
	_, err := svc.CreateVendor(context.Background(), admin.ID.Hex(), in)
	require.NoError(t, err)

	_, err = svc.CreateVendor(context.Background(), admin.ID.Hex(), in)
	assert.ErrorIs(t, err, ErrConflict)

	assert.Len(t, vendors.vendors, 1)
}

func TestVendorsScopedToAdmin(t *testing.T) {
	admins := &memAdminStore{}
	vendors := &memVendorStore{}
	admin := seedAdmin(t, admins)
	svc := NewAdminService(admins, vendors)

	_, err := svc.CreateVendor(context.Background(), admin.ID.Hex(), VendorInput{Name: "Ravi", Email: "ravi@shop.com"})
	require.NoError(t, err)

	// A vendor onboarded by a different admin is not in this admin's listing.
	other := shopVendor("other-store", 4.0, 10)
	require.NoError(t, vendors.Create(context.Background(), &other))

	records, err := svc.Vendors(context.Background(), admin.ID.Hex())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ravi@shop.com", records[0].Email)
}

func TestDeleteVendorIsSoftReferential(t *testing.T) {
	admins := &memAdminStore{}
	vendors := &memVendorStore{}
	admin := seedAdmin(t, admins)
	svc := NewAdminService(admins, vendors)

	vendor, err := svc.CreateVendor(context.Background(), admin.ID.Hex(), VendorInput{Name: "Ravi", Email: "ravi@shop.com"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteVendor(context.Background(), admin.ID.Hex(), vendor.ID.Hex()))

	_, err = svc.Vendor(context.Background(), admin.ID.Hex(), vendor.ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteVendor(context.Background(), admin.ID.Hex(), vendor.ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewShopWritesOverlayOnly(t *testing.T) {
	admins := &memAdminStore{}
	vendors := &memVendorStore{}
	admin := seedAdmin(t, admins)
	svc := NewAdminService(admins, vendors)

	v := shopVendor("corner-store", 4.2, 37)
	require.NoError(t, vendors.Create(context.Background(), &v))

	got, err := svc.ReviewShop(context.Background(), admin.ID.Hex(), v.ID.Hex(), 120, 4.9)
	require.NoError(t, err)

	// The vendor's own numbers are untouched.
	assert.Equal(t, 4.2, got.Shaller.Rating)
	assert.Equal(t, 37, got.Shaller.Review)

	// The correction lives in the side-channel.
	require.NotNil(t, got.Shaller.ReviewHistory)
	assert.Equal(t, 4.9, got.Shaller.ReviewHistory.Rating)
	assert.Equal(t, 120, got.Shaller.ReviewHistory.Review)
	assert.Equal(t, admin.ID, got.Shaller.ReviewHistory.EditedBy)
	require.NotNil(t, got.Shaller.LastEditedByAdmin)
	assert.Equal(t, admin.ID, *got.Shaller.LastEditedByAdmin)
}

func TestReviewShopLatestWins(t *testing.T) {
	admins := &memAdminStore{}
	vendors := &memVendorStore{}
	admin := seedAdmin(t, admins)
	svc := NewAdminService(admins, vendors)

	v := shopVendor("corner-store", 4.2, 37)
	require.NoError(t, vendors.Create(context.Background(), &v))

	_, err := svc.ReviewShop(context.Background(), admin.ID.Hex(), v.ID.Hex(), 100, 4.0)
	require.NoError(t, err)
	got, err := svc.ReviewShop(context.Background(), admin.ID.Hex(), v.ID.Hex(), 200, 4.8)
	require.NoError(t, err)

	assert.Equal(t, 200, got.Shaller.ReviewHistory.Review)
	assert.Equal(t, 4.8, got.Shaller.ReviewHistory.Rating)

	// Still nothing written to the vendor's own fields.
	assert.Equal(t, 4.2, got.Shaller.Rating)
	assert.Equal(t, 37, got.Shaller.Review)
}

func TestReviewShopRequiresShop(t *testing.T) {
	admins := &memAdminStore{}
	vendors := &memVendorStore{}
	admin := seedAdmin(t, admins)
	svc := NewAdminService(admins, vendors)

	v := models.Vendor{Email: "new@shop.com"}
	require.NoError(t, vendors.Create(context.Background(), &v))

	_, err := svc.ReviewShop(context.Background(), admin.ID.Hex(), v.ID.Hex(), 10, 4.0)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestProvisionIsIdempotent(t *testing.T) {
	admins := &memAdminStore{}
	svc := NewAdminService(admins, &memVendorStore{})

	first, created, err := svc.Provision(context.Background(), "Varma", "admin123@gmail.com", "Admin@123")
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, auth.CheckPassword(first.Password, "Admin@123"))

	second, created, err := svc.Provision(context.Background(), "Varma", "admin123@gmail.com", "Admin@123")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, admins.admins, 1)
}
