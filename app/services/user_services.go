package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/shallerhub/app/models"
	"github.com/shashiranjanraj/shallerhub/config"
	"github.com/shashiranjanraj/shallerhub/pkg/auth"
	"github.com/shashiranjanraj/shallerhub/pkg/crypt"
	"github.com/shashiranjanraj/shallerhub/pkg/event"
	"github.com/shashiranjanraj/shallerhub/pkg/logger"
	"github.com/shashiranjanraj/shallerhub/pkg/metrics"
)

// Event names fired by the user flows.
const (
	EventOTPSent         = "user.otp_sent"
	EventLocationUpdated = "user.location_updated"
)

// LocationUpdate is the EventLocationUpdated payload, also broadcast to
// websocket subscribers.
type LocationUpdate struct {
	UserID    string  `json:"userId"`
	Longitude float64 `json:"lng"`
	Latitude  float64 `json:"lat"`
}

// OTPNotifier delivers the code to the user out of band. The production
// implementation queues an SMS job.
type OTPNotifier interface {
	SendOTP(mobile, code string) error
}

// UserService implements OTP login and profile management.
type UserService struct {
	users    UserStore
	notifier OTPNotifier
}

func NewUserService(users UserStore, notifier OTPNotifier) *UserService {
	return &UserService{users: users, notifier: notifier}
}

// SendOTP issues a fresh code for the mobile number, creating the user
// record on first contact. It returns the short-lived token that must
// accompany the verify call. Only a digest of the code is persisted.
func (s *UserService) SendOTP(ctx context.Context, mobile string) (string, error) {
	code := config.OTPCode()
	digest := crypt.Hash(code)
	expires := time.Now().Add(config.OTPExpiry())

	user, err := s.users.FindByMobile(ctx, mobile)
	switch {
	case errors.Is(err, ErrNotFound):
		user = models.User{
			MobileNumber: mobile,
			OTPDigest:    digest,
			OTPExpiresAt: &expires,
		}
		if err := s.users.Create(ctx, &user); err != nil {
			return "", err
		}
	case err != nil:
		return "", err
	default:
		user.OTPDigest = digest
		user.OTPExpiresAt = &expires
		if err := s.users.Update(ctx, &user); err != nil {
			return "", err
		}
	}

	if s.notifier != nil {
		if err := s.notifier.SendOTP(mobile, code); err != nil {
			logger.Warn("user: otp delivery enqueue failed", "mobile", mobile, "error", err)
		}
	}

	metrics.OTPIssued.Inc()
	event.Fire(EventOTPSent, mobile)

	return auth.GenerateOTPToken(mobile)
}

// VerifyOTP checks the submitted code against the user named by the
// send-otp token, marks the user verified and hands out the session token.
// The mobile number comes from the token's claims, never from the request
// body, so both legs of the flow are bound to the same caller. The stored
// digest is cleared on success so a code can only be used once.
func (s *UserService) VerifyOTP(ctx context.Context, otpToken, code string) (models.User, string, error) {
	claims, err := auth.ValidateToken(otpToken)
	if err != nil || claims.MobileNumber == "" {
		metrics.OTPVerified.WithLabelValues("invalid").Inc()
		return models.User{}, "", ErrOTPInvalid
	}
	mobile := claims.MobileNumber

	user, err := s.users.FindByMobile(ctx, mobile)
	if err != nil {
		return models.User{}, "", err
	}

	if user.OTPDigest == "" || crypt.Hash(code) != user.OTPDigest {
		metrics.OTPVerified.WithLabelValues("invalid").Inc()
		return models.User{}, "", ErrOTPInvalid
	}
	if user.OTPExpiresAt == nil || time.Now().After(*user.OTPExpiresAt) {
		metrics.OTPVerified.WithLabelValues("expired").Inc()
		return models.User{}, "", ErrOTPExpired
	}

	user.OTPDigest = ""
	user.OTPExpiresAt = nil
	user.IsVerified = true
	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, "", err
	}

	token, err := auth.GenerateSessionToken(user.ID.Hex(), mobile, "user")
	if err != nil {
		return models.User{}, "", err
	}

	metrics.OTPVerified.WithLabelValues("ok").Inc()
	return user, token, nil
}

// Profile returns the user document.
func (s *UserService) Profile(ctx context.Context, userID string) (models.User, error) {
	return s.users.FindByID(ctx, userID)
}

// Users returns every user, for the operator console.
func (s *UserService) Users(ctx context.Context) ([]models.User, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// UpdatePersonalInfo sets the profile subdocument. Only verified users may
// fill their profile.
func (s *UserService) UpdatePersonalInfo(ctx context.Context, userID string, info models.PersonalInfo) (models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if !user.IsVerified {
		return models.User{}, ErrNotVerified
	}

	user.PersonalInfo = &info
	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateLocation stores the user's live position and fires
// EventLocationUpdated for websocket subscribers.
func (s *UserService) UpdateLocation(ctx context.Context, userID string, lng, lat float64) (models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	loc := models.NewGeoPoint(lng, lat)
	user.Location = &loc
	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}

	event.FireAsync(EventLocationUpdated, LocationUpdate{
		UserID:    user.ID.Hex(),
		Longitude: lng,
		Latitude:  lat,
	})
	return user, nil
}

// ─── address book ────────────────────────────────────────────────────────

// Addresses returns the user's address book.
func (s *UserService) Addresses(ctx context.Context, userID string) ([]models.Address, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Addresses, nil
}

// AddAddress appends a new entry and assigns its id.
func (s *UserService) AddAddress(ctx context.Context, userID string, addr models.Address) (models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	addr.ID = primitive.NewObjectID()
	user.Addresses = append(user.Addresses, addr)
	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateAddress replaces the entry with the given id.
func (s *UserService) UpdateAddress(ctx context.Context, userID, addressID string, addr models.Address) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	found := false
	for i := range user.Addresses {
		if user.Addresses[i].ID == oid {
			addr.ID = oid
			user.Addresses[i] = addr
			found = true
			break
		}
	}
	if !found {
		return models.User{}, ErrNotFound
	}

	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteAddress removes the entry with the given id.
func (s *UserService) DeleteAddress(ctx context.Context, userID, addressID string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	kept := user.Addresses[:0:0]
	for _, a := range user.Addresses {
		if a.ID != oid {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(user.Addresses) {
		return models.User{}, ErrNotFound
	}
	if kept == nil {
		kept = []models.Address{}
	}

	user.Addresses = kept
	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// SweepExpiredOTPs clears stale codes. Registered with the scheduler.
func (s *UserService) SweepExpiredOTPs(ctx context.Context) error {
	n, err := s.users.ClearExpiredOTPs(ctx, time.Now())
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Info("user: expired otps cleared", "count", n)
	}
	return nil
}
