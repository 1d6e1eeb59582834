package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shallerhub/app/models"
	"github.com/shashiranjanraj/shallerhub/config"
	"github.com/shashiranjanraj/shallerhub/pkg/auth"
)

type recordingNotifier struct {
	mobiles []string
	codes   []string
}

func (n *recordingNotifier) SendOTP(mobile, code string) error {
	n.mobiles = append(n.mobiles, mobile)
	n.codes = append(n.codes, code)
	return nil
}

func TestSendOTPCreatesUserOnFirstContact(t *testing.T) {
	users := &memUserStore{}
	notifier := &recordingNotifier{}
	svc := NewUserService(users, notifier)

	token, err := svc.SendOTP(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := users.FindByMobile(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.False(t, user.IsVerified)
	assert.NotEmpty(t, user.OTPDigest)
	require.NotNil(t, user.OTPExpiresAt)
	assert.True(t, user.OTPExpiresAt.After(time.Now()))

	// Code never stored in the clear.
	assert.NotEqual(t, config.OTPCode(), user.OTPDigest)

	require.Len(t, notifier.mobiles, 1)
	assert.Equal(t, "9876543210", notifier.mobiles[0])
	assert.Equal(t, config.OTPCode(), notifier.codes[0])
}

func TestSendOTPReusesExistingUser(t *testing.T) {
	users := &memUserStore{}
	svc := NewUserService(users, &recordingNotifier{})

	_, err := svc.SendOTP(context.Background(), "9876543210")
	require.NoError(t, err)
	_, err = svc.SendOTP(context.Background(), "9876543210")
	require.NoError(t, err)

	assert.Len(t, users.users, 1)
}

func TestVerifyOTP(t *testing.T) {
	newSvc := func(t *testing.T) (*UserService, *memUserStore, string) {
		t.Helper()
		users := &memUserStore{}
		svc := NewUserService(users, &recordingNotifier{})
		otpToken, err := svc.SendOTP(context.Background(), "9876543210")
		require.NoError(t, err)
		return svc, users, otpToken
	}

	t.Run("success", func(t *testing.T) {
		svc, users, otpToken := newSvc(t)

		user, token, err := svc.VerifyOTP(context.Background(), otpToken, config.OTPCode())
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.True(t, user.IsVerified)

		// The code is single-use.
		stored, _ := users.FindByMobile(context.Background(), "9876543210")
		assert.Empty(t, stored.OTPDigest)
		assert.Nil(t, stored.OTPExpiresAt)

		_, _, err = svc.VerifyOTP(context.Background(), otpToken, config.OTPCode())
		assert.ErrorIs(t, err, ErrOTPInvalid)
	})

	t.Run("wrong code", func(t *testing.T) {
		svc, _, otpToken := newSvc(t)
		_, _, err := svc.VerifyOTP(context.Background(), otpToken, "0000")
		assert.ErrorIs(t, err, ErrOTPInvalid)
	})

	t.Run("expired code", func(t *testing.T) {
		svc, users, otpToken := newSvc(t)

		past := time.Now().Add(-time.Minute)
		users.users[0].OTPExpiresAt = &past

		_, _, err := svc.VerifyOTP(context.Background(), otpToken, config.OTPCode())
		assert.ErrorIs(t, err, ErrOTPExpired)
	})

	t.Run("missing token", func(t *testing.T) {
		svc, _, _ := newSvc(t)
		_, _, err := svc.VerifyOTP(context.Background(), "", config.OTPCode())
		assert.ErrorIs(t, err, ErrOTPInvalid)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc, _, _ := newSvc(t)
		_, _, err := svc.VerifyOTP(context.Background(), "not-a-jwt", config.OTPCode())
		assert.ErrorIs(t, err, ErrOTPInvalid)
	})

	t.Run("token for another mobile", func(t *testing.T) {
		svc, _, _ := newSvc(t)

		// A valid token minted for a different number never reaches the code
		// issued here; the mobile comes from the claims, not the request.
		other, err := auth.GenerateOTPToken("0000000000")
		require.NoError(t, err)

		_, _, err = svc.VerifyOTP(context.Background(), other, config.OTPCode())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func verifiedUser(t *testing.T) (*UserService, *memUserStore, models.User) {
	t.Helper()
	users := &memUserStore{}
	svc := NewUserService(users, &recordingNotifier{})

	otpToken, err := svc.SendOTP(context.Background(), "9876543210")
	require.NoError(t, err)
	user, _, err := svc.VerifyOTP(context.Background(), otpToken, config.OTPCode())
	require.NoError(t, err)
	return svc, users, user
}

func TestUsersListing(t *testing.T) {
	users := &memUserStore{}
	svc := NewUserService(users, &recordingNotifier{})

	got, err := svc.Users(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = svc.SendOTP(context.Background(), "9876543210")
	require.NoError(t, err)
	_, err = svc.SendOTP(context.Background(), "9876543211")
	require.NoError(t, err)

	got, err = svc.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "9876543210", got[0].MobileNumber)
}

func TestUpdatePersonalInfo(t *testing.T) {
	svc, _, user := verifiedUser(t)

	got, err := svc.UpdatePersonalInfo(context.Background(), user.ID.Hex(), models.PersonalInfo{
		FullName: "Asha",
		Email:    "asha@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, got.PersonalInfo)
	assert.Equal(t, "Asha", got.PersonalInfo.FullName)
}

func TestUpdatePersonalInfoRequiresVerification(t *testing.T) {
	users := &memUserStore{}
	svc := NewUserService(users, &recordingNotifier{})
	_, err := svc.SendOTP(context.Background(), "9876543210")
	require.NoError(t, err)

	user := users.users[0]
	_, err = svc.UpdatePersonalInfo(context.Background(), user.ID.Hex(), models.PersonalInfo{FullName: "Asha"})
	assert.ErrorIs(t, err, ErrNotVerified)
}

func TestUpdateLocation(t *testing.T) {
	svc, _, user := verifiedUser(t)

	got, err := svc.UpdateLocation(context.Background(), user.ID.Hex(), 77.6, 12.9)
	require.NoError(t, err)
	require.NotNil(t, got.Location)
	assert.Equal(t, "Point", got.Location.Type)
	assert.Equal(t, []float64{77.6, 12.9}, got.Location.Coordinates)
}

func TestAddressBook(t *testing.T) {
	svc, _, user := verifiedUser(t)
	id := user.ID.Hex()

	got, err := svc.AddAddress(context.Background(), id, models.Address{
		Street: "12 Market Rd", City: "Bengaluru", AddressType: "Home",
	})
	require.NoError(t, err)
	require.Len(t, got.Addresses, 1)
	addrID := got.Addresses[0].ID
	assert.False(t, addrID.IsZero())

	got, err = svc.UpdateAddress(context.Background(), id, addrID.Hex(), models.Address{
		Street: "14 Market Rd", City: "Bengaluru", AddressType: "Home",
	})
	require.NoError(t, err)
	assert.Equal(t, "14 Market Rd", got.Addresses[0].Street)
	assert.Equal(t, addrID, got.Addresses[0].ID, "id survives the update")

	_, err = svc.UpdateAddress(context.Background(), id, "not-a-hex-id", models.Address{})
	assert.ErrorIs(t, err, ErrNotFound)

	got, err = svc.DeleteAddress(context.Background(), id, addrID.Hex())
	require.NoError(t, err)
	assert.Empty(t, got.Addresses)
	assert.NotNil(t, got.Addresses)

	_, err = svc.DeleteAddress(context.Background(), id, addrID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSweepExpiredOTPs(t *testing.T) {
	users := &memUserStore{}
	svc := NewUserService(users, &recordingNotifier{})

	_, err := svc.SendOTP(context.Background(), "9876543210")
	require.NoError(t, err)
	past := time.Now().Add(-time.Hour)
	users.users[0].OTPExpiresAt = &past

	require.NoError(t, svc.SweepExpiredOTPs(context.Background()))
	assert.Empty(t, users.users[0].OTPDigest)
	assert.Nil(t, users.users[0].OTPExpiresAt)
}
