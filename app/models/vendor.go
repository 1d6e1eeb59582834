package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Working status of a shaller shop.
const (
	WorkingStatusOpen   = "OPEN"
	WorkingStatusClosed = "CLOSED"
)

// ParseWorkingStatus normalizes a case-insensitive status to its canonical
// uppercase form. ok is false for anything outside {OPEN, CLOSED}.
func ParseWorkingStatus(s string) (status string, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case WorkingStatusOpen:
		return WorkingStatusOpen, true
	case WorkingStatusClosed:
		return WorkingStatusClosed, true
	default:
		return "", false
	}
}

// ReviewOverlay is the admin-authored correction layered on top of a shop's
// self-reported rating/review. It lives beside the vendor's own fields and
// never replaces them.
type ReviewOverlay struct {
	Review   int                `bson:"review" json:"review"`
	Rating   float64            `bson:"rating" json:"rating"`
	EditedBy primitive.ObjectID `bson:"editedBy" json:"editedBy"`
	EditedAt time.Time          `bson:"editedAt" json:"editedAt"`
}

// Shaller is a vendor's shop, embedded in the vendor login document.
// A vendor has at most one; creation is rejected once ShopName is set.
type Shaller struct {
	ShopName      string   `bson:"shopName" json:"shopName"`
	Address       string   `bson:"address" json:"address"`
	Description   string   `bson:"description,omitempty" json:"description,omitempty"`
	Category      string   `bson:"category,omitempty" json:"category,omitempty"`
	Rating        float64  `bson:"rating" json:"rating"`
	Review        int      `bson:"review" json:"review"`
	WorkingStatus string   `bson:"workingStatus,omitempty" json:"workingStatus,omitempty"`
	Image         string   `bson:"image,omitempty" json:"image,omitempty"`
	Location      GeoPoint `bson:"location" json:"location"`

	VendorID primitive.ObjectID `bson:"vendorId" json:"vendorId"`

	// Admin review side-channel.
	LastEditedByAdmin *primitive.ObjectID `bson:"lastEditedByAdmin,omitempty" json:"lastEditedByAdmin,omitempty"`
	ReviewHistory     *ReviewOverlay      `bson:"reviewHistory,omitempty" json:"reviewHistory,omitempty"`
}

// Vendor is the vendor login document — the single source of truth for
// vendor identity. Admin listings are derived from it by query.
type Vendor struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	PhoneNumber       string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Password          string             `bson:"password" json:"-"` // plaintext legacy, never serialised
	AdminID           primitive.ObjectID `bson:"adminId" json:"adminId"`
	Shaller           *Shaller           `bson:"shaller,omitempty" json:"shaller,omitempty"`
	IsProfileComplete bool               `bson:"isProfileComplete" json:"isProfileComplete"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasShop reports whether the vendor already created their shaller.
// The shop exists once it carries a non-empty shopName.
func (v *Vendor) HasShop() bool {
	return v.Shaller != nil && v.Shaller.ShopName != ""
}

// Record projects the login document into the admin-facing view.
func (v *Vendor) Record() VendorRecord {
	return VendorRecord{
		ID:          v.ID,
		Name:        v.Name,
		Email:       v.Email,
		PhoneNumber: v.PhoneNumber,
		HasShop:     v.HasShop(),
		CreatedAt:   v.CreatedAt,
	}
}
