package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VendorRecord is the admin-facing view of a vendor, derived from the
// vendor login document. Nothing persists this shape; the login collection
// is the single source of truth and the view is built per request.
type VendorRecord struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phoneNumber"`
	HasShop     bool               `json:"hasShop"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// Admin is an operator account. The password is bcrypt-hashed.
type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AdminName string             `bson:"adminName" json:"adminName"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
