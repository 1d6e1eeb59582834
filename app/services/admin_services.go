package services

import (
	"context"
	"strings"
	"time"

	"github.com/shashiranjanraj/shallerhub/app/models"
	"github.com/shashiranjanraj/shallerhub/pkg/auth"
	"github.com/shashiranjanraj/shallerhub/pkg/collection"
)

// AdminService implements the operator flows: login, vendor onboarding and
// the shop review overlay.
type AdminService struct {
	admins  AdminStore
	vendors VendorStore
}

func NewAdminService(admins AdminStore, vendors VendorStore) *AdminService {
	return &AdminService{admins: admins, vendors: vendors}
}

// VendorInput is the onboarding payload for a new vendor.
type VendorInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
}

// Login authenticates an admin. All three fields must match the stored
// record; any mismatch yields the same ErrInvalidCredentials.
func (s *AdminService) Login(ctx context.Context, adminName, email, password string) (models.Admin, string, error) {
	admin, err := s.admins.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return models.Admin{}, "", ErrInvalidCredentials
	}
	if admin.AdminName != adminName {
		return models.Admin{}, "", ErrInvalidCredentials
	}
	if !auth.CheckPassword(admin.Password, password) {
		return models.Admin{}, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateSessionToken(admin.ID.Hex(), "", "admin")
	if err != nil {
		return models.Admin{}, "", err
	}
	return admin, token, nil
}

// CreateVendor registers a vendor under the admin. The login document in
// vendor_logins is the single source of truth; the admin listing is derived
// from it by query, so there is no second registry write to keep in sync.
func (s *AdminService) CreateVendor(ctx context.Context, adminID string, in VendorInput) (models.Vendor, error) {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return models.Vendor{}, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.vendors.FindByEmail(ctx, email); err == nil {
		return models.Vendor{}, ErrConflict
	}

	vendor := models.Vendor{
		Name:        in.Name,
		Email:       email,
		PhoneNumber: in.PhoneNumber,
		Password:    in.Password,
		AdminID:     admin.ID,
	}
	if err := s.vendors.Create(ctx, &vendor); err != nil {
		return models.Vendor{}, err
	}
	return vendor, nil
}

// Vendors returns the admin's vendors as listing records, derived from the
// login collection in insertion order.
func (s *AdminService) Vendors(ctx context.Context, adminID string) ([]models.VendorRecord, error) {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	all, err := s.vendors.All(ctx)
	if err != nil {
		return nil, err
	}

	mine := collection.Filter(all, func(v models.Vendor) bool {
		return v.AdminID == admin.ID
	})
	return collection.Map(mine, func(v models.Vendor) models.VendorRecord {
		return v.Record()
	}), nil
}

// Vendor returns a single vendor, shop and review overlay included.
func (s *AdminService) Vendor(ctx context.Context, adminID, vendorID string) (models.Vendor, error) {
	if _, err := s.admins.FindByID(ctx, adminID); err != nil {
		return models.Vendor{}, err
	}
	return s.vendors.FindByID(ctx, vendorID)
}

// DeleteVendor removes a vendor login. Nothing else is cleaned up: the
// relationship to catalog data and past reviews is soft-referential.
func (s *AdminService) DeleteVendor(ctx context.Context, adminID, vendorID string) error {
	if _, err := s.admins.FindByID(ctx, adminID); err != nil {
		return err
	}
	return s.vendors.DeleteByID(ctx, vendorID)
}

// ReviewShop records an admin correction of a shop's rating and review count.
// The correction lives in the shop's reviewHistory side-channel; the vendor's
// own rating and review fields are never touched. Repeat reviews replace the
// previous overlay — latest wins.
func (s *AdminService) ReviewShop(ctx context.Context, adminID, vendorID string, review int, rating float64) (models.Vendor, error) {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return models.Vendor{}, err
	}

	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		return models.Vendor{}, err
	}
	if !vendor.HasShop() {
		return models.Vendor{}, ErrInvalidState
	}

	vendor.Shaller.LastEditedByAdmin = &admin.ID
	vendor.Shaller.ReviewHistory = &models.ReviewOverlay{
		Review:   review,
		Rating:   rating,
		EditedBy: admin.ID,
		EditedAt: time.Now(),
	}

	if err := s.vendors.Update(ctx, &vendor); err != nil {
		return models.Vendor{}, err
	}
	return vendor, nil
}

// Provision ensures the named admin exists, creating it with a bcrypt-hashed
// password when missing. Run from the provision command, never at boot.
func (s *AdminService) Provision(ctx context.Context, name, email, password string) (models.Admin, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.admins.FindByEmail(ctx, email)
	if err == nil {
		return admin, false, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.Admin{}, false, err
	}

	admin = models.Admin{AdminName: name, Email: email, Password: hash}
	if err := s.admins.Create(ctx, &admin); err != nil {
		return models.Admin{}, false, err
	}
	return admin, true, nil
}
