package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shallerhub/app/models"
)

func seedVendor(t *testing.T, store *memVendorStore) models.Vendor {
	t.Helper()
	v := models.Vendor{Email: "ravi@shop.com", Password: "secret"}
	require.NoError(t, store.Create(context.Background(), &v))
	return v
}

func TestVendorLogin(t *testing.T) {
	vendors := &memVendorStore{}
	seedVendor(t, vendors)
	svc := NewVendorService(vendors)

	t.Run("success", func(t *testing.T) {
		vendor, token, err := svc.Login(context.Background(), "Ravi@Shop.com", "secret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "ravi@shop.com", vendor.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "ravi@shop.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCreateShop(t *testing.T) {
	vendors := &memVendorStore{}
	v := seedVendor(t, vendors)
	svc := NewVendorService(vendors)

	in := ShopInput{
		ShopName:      "Corner Store",
		Address:       "12 Market Rd",
		Rating:        4.2,
		Review:        12,
		WorkingStatus: "open",
		Longitude:     77.6,
		Latitude:      12.9,
	}
	got, err := svc.CreateShop(context.Background(), v.ID.Hex(), in)
	require.NoError(t, err)

	require.NotNil(t, got.Shaller)
	assert.Equal(t, "Corner Store", got.Shaller.ShopName)
	assert.Equal(t, models.WorkingStatusOpen, got.Shaller.WorkingStatus)
	assert.Equal(t, v.ID, got.Shaller.VendorID)
	assert.Equal(t, []float64{77.6, 12.9}, got.Shaller.Location.Coordinates)
	assert.True(t, got.IsProfileComplete)
}

func TestCreateShopRequiresName(t *testing.T) {
	vendors := &memVendorStore{}
	v := seedVendor(t, vendors)
	svc := NewVendorService(vendors)

	// A quote-only payload scrubs down to nothing.
	for _, name := range []string{"", "   "} {
		_, err := svc.CreateShop(context.Background(), v.ID.Hex(), ShopInput{ShopName: name})
		assert.ErrorIs(t, err, ErrInvalidState, "name %q", name)
	}

	// No nameless shaller was persisted and the profile flag never flipped,
	// so a proper create still goes through.
	got, err := svc.Profile(context.Background(), v.ID.Hex())
	require.NoError(t, err)
	assert.Nil(t, got.Shaller)
	assert.False(t, got.IsProfileComplete)

	_, err = svc.CreateShop(context.Background(), v.ID.Hex(), ShopInput{ShopName: "Corner Store"})
	require.NoError(t, err)
}

func TestCreateShopOnlyOnce(t *testing.T) {
	vendors := &memVendorStore{}
	v := seedVendor(t, vendors)
	svc := NewVendorService(vendors)

	_, err := svc.CreateShop(context.Background(), v.ID.Hex(), ShopInput{ShopName: "First"})
	require.NoError(t, err)

	_, err = svc.CreateShop(context.Background(), v.ID.Hex(), ShopInput{ShopName: "Second"})
	assert.ErrorIs(t, err, ErrConflict)

	// The original shop is untouched by the rejected create.
	got, err := svc.Profile(context.Background(), v.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "First", got.Shaller.ShopName)
}

func TestCreateShopRejectsBadWorkingStatus(t *testing.T) {
	vendors := &memVendorStore{}
	v := seedVendor(t, vendors)
	svc := NewVendorService(vendors)

	_, err := svc.CreateShop(context.Background(), v.ID.Hex(), ShopInput{
		ShopName:      "Corner Store",
		WorkingStatus: "sometimes",
	})
	assert.ErrorIs(t, err, ErrInvalidWorkingStatus)

	// Nothing was persisted.
	got, err := svc.Profile(context.Background(), v.ID.Hex())
	require.NoError(t, err)
	assert.False(t, got.HasShop())
	assert.False(t, got.IsProfileComplete)
}

func TestUpdateShopPartial(t *testing.T) {
	vendors := &memVendorStore{}
	v := seedVendor(t, vendors)
	svc := NewVendorService(vendors)

	_, err := svc.CreateShop(context.Background(), v.ID.Hex(), ShopInput{
		ShopName: "Corner Store",
		Address:  "12 Market Rd",
		Rating:   4.2,
	})
	require.NoError(t, err)

	desc := "Fresh produce daily"
	rating := 4.7
	got, err := svc.UpdateShop(context.Background(), v.ID.Hex(), ShopUpdate{
		Description: &desc,
		Rating:      &rating,
	})
	require.NoError(t, err)

	assert.Equal(t, "Fresh produce daily", got.Shaller.Description)
	assert.Equal(t, 4.7, got.Shaller.Rating)
	// Untouched fields survive.
	assert.Equal(t, "Corner Store", got.Shaller.ShopName)
	assert.Equal(t, "12 Market Rd", got.Shaller.Address)
}

func TestSetWorkingStatus(t *testing.T) {
	vendors := &memVendorStore{}
	v := seedVendor(t, vendors)
	svc := NewVendorService(vendors)

	_, err := svc.CreateShop(context.Background(), v.ID.Hex(), ShopInput{ShopName: "Corner Store"})
	require.NoError(t, err)

	for _, in := range []string{"closed", "Closed", "CLOSED", "  cLoSeD "} {
		got, err := svc.SetWorkingStatus(context.Background(), v.ID.Hex(), in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, models.WorkingStatusClosed, got.Shaller.WorkingStatus)
	}

	_, err = svc.SetWorkingStatus(context.Background(), v.ID.Hex(), "HALF-OPEN")
	assert.ErrorIs(t, err, ErrInvalidWorkingStatus)
}

func TestUpdateShopKeepsOverlay(t *testing.T) {
	vendors := &memVendorStore{}
	v := seedVendor(t, vendors)
	svc := NewVendorService(vendors)

	_, err := svc.CreateShop(context.Background(), v.ID.Hex(), ShopInput{ShopName: "Corner Store"})
	require.NoError(t, err)

	// Simulate an earlier admin correction.
	stored, _ := vendors.FindByID(context.Background(), v.ID.Hex())
	stored.Shaller.ReviewHistory = &models.ReviewOverlay{Review: 99, Rating: 4.9}
	require.NoError(t, vendors.Update(context.Background(), &stored))

	name := "Renamed Store"
	got, err := svc.UpdateShop(context.Background(), v.ID.Hex(), ShopUpdate{ShopName: &name})
	require.NoError(t, err)

	require.NotNil(t, got.Shaller.ReviewHistory)
	assert.Equal(t, 99, got.Shaller.ReviewHistory.Review)
}
