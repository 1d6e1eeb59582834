package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shashiranjanraj/shallerhub/app/models"
	"github.com/shashiranjanraj/shallerhub/pkg/auth"
)

// VendorService implements vendor login and shaller shop management.
type VendorService struct {
	vendors VendorStore
}

func NewVendorService(vendors VendorStore) *VendorService {
	return &VendorService{vendors: vendors}
}

// ShopInput is the create-shop payload, already scrubbed by the controller.
type ShopInput struct {
	ShopName      string
	Address       string
	Description   string
	Category      string
	Rating        float64
	Review        int
	WorkingStatus string
	Image         string
	Longitude     float64
	Latitude      float64
}

// ShopUpdate carries optional edits; nil fields are left untouched.
type ShopUpdate struct {
	ShopName      *string
	Address       *string
	Description   *string
	Category      *string
	Rating        *float64
	Review        *int
	WorkingStatus *string
	Image         *string
	Longitude     *float64
	Latitude      *float64
}

// Login authenticates a vendor by email and password.
//
// Vendor passwords are stored as the admin entered them, so this is a
// straight comparison. Hashing them would break every login the mobile app
// already depends on; see DESIGN.md before changing this.
func (s *VendorService) Login(ctx context.Context, email, password string) (models.Vendor, string, error) {
	vendor, err := s.vendors.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return models.Vendor{}, "", ErrInvalidCredentials
	}
	if vendor.Password != password {
		return models.Vendor{}, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateSessionToken(vendor.ID.Hex(), "", "vendor")
	if err != nil {
		return models.Vendor{}, "", err
	}
	return vendor, token, nil
}

// Profile returns the vendor document.
func (s *VendorService) Profile(ctx context.Context, vendorID string) (models.Vendor, error) {
	return s.vendors.FindByID(ctx, vendorID)
}

// CreateShop attaches the vendor's one shaller. A second create is rejected
// with ErrConflict and the existing shop is left exactly as it was. Creating
// the shop also completes the vendor profile; that flag never goes back to
// false.
//
// The name is required after scrubbing: a quote-only payload must not
// persist a nameless shaller, which would flip isProfileComplete without
// arming create-once.
func (s *VendorService) CreateShop(ctx context.Context, vendorID string, in ShopInput) (models.Vendor, error) {
	if strings.TrimSpace(in.ShopName) == "" {
		return models.Vendor{}, fmt.Errorf("%w: shop name is required", ErrInvalidState)
	}

	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		return models.Vendor{}, err
	}
	if vendor.HasShop() {
		return models.Vendor{}, ErrConflict
	}

	status := ""
	if in.WorkingStatus != "" {
		parsed, ok := models.ParseWorkingStatus(in.WorkingStatus)
		if !ok {
			return models.Vendor{}, ErrInvalidWorkingStatus
		}
		status = parsed
	}

	vendor.Shaller = &models.Shaller{
		ShopName:      in.ShopName,
		Address:       in.Address,
		Description:   in.Description,
		Category:      in.Category,
		Rating:        in.Rating,
		Review:        in.Review,
		WorkingStatus: status,
		Image:         in.Image,
		Location:      models.NewGeoPoint(in.Longitude, in.Latitude),
		VendorID:      vendor.ID,
	}
	vendor.IsProfileComplete = true

	if err := s.vendors.Update(ctx, &vendor); err != nil {
		return models.Vendor{}, err
	}
	return vendor, nil
}

// UpdateShop applies the non-nil fields of upd to the vendor's shop. The
// admin review side-channel is never touched here.
func (s *VendorService) UpdateShop(ctx context.Context, vendorID string, upd ShopUpdate) (models.Vendor, error) {
	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		return models.Vendor{}, err
	}
	if !vendor.HasShop() {
		return models.Vendor{}, ErrInvalidState
	}

	sh := vendor.Shaller
	if upd.ShopName != nil {
		sh.ShopName = *upd.ShopName
	}
	if upd.Address != nil {
		sh.Address = *upd.Address
	}
	if upd.Description != nil {
		sh.Description = *upd.Description
	}
	if upd.Category != nil {
		sh.Category = *upd.Category
	}
	if upd.Rating != nil {
		sh.Rating = *upd.Rating
	}
	if upd.Review != nil {
		sh.Review = *upd.Review
	}
	if upd.WorkingStatus != nil {
		parsed, ok := models.ParseWorkingStatus(*upd.WorkingStatus)
		if !ok {
			return models.Vendor{}, ErrInvalidWorkingStatus
		}
		sh.WorkingStatus = parsed
	}
	if upd.Image != nil {
		sh.Image = *upd.Image
	}
	if upd.Longitude != nil || upd.Latitude != nil {
		lng, lat := sh.Location.Longitude(), sh.Location.Latitude()
		if upd.Longitude != nil {
			lng = *upd.Longitude
		}
		if upd.Latitude != nil {
			lat = *upd.Latitude
		}
		sh.Location = models.NewGeoPoint(lng, lat)
	}

	if err := s.vendors.Update(ctx, &vendor); err != nil {
		return models.Vendor{}, err
	}
	return vendor, nil
}

// SetWorkingStatus flips the shop between OPEN and CLOSED. The input is
// case-insensitive; anything else is rejected.
func (s *VendorService) SetWorkingStatus(ctx context.Context, vendorID, status string) (models.Vendor, error) {
	parsed, ok := models.ParseWorkingStatus(status)
	if !ok {
		return models.Vendor{}, ErrInvalidWorkingStatus
	}

	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		return models.Vendor{}, err
	}
	if !vendor.HasShop() {
		return models.Vendor{}, ErrInvalidState
	}

	vendor.Shaller.WorkingStatus = parsed
	if err := s.vendors.Update(ctx, &vendor); err != nil {
		return models.Vendor{}, err
	}
	return vendor, nil
}
