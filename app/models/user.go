package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is one entry in a user's address book, embedded with its own
// generated id so single entries can be updated or removed.
type Address struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Street      string             `bson:"street" json:"street"`
	City        string             `bson:"city" json:"city"`
	State       string             `bson:"state" json:"state"`
	Country     string             `bson:"country" json:"country"`
	PostalCode  string             `bson:"postalCode" json:"postalCode"`
	AddressType string             `bson:"addressType" json:"addressType"` // e.g. "Home", "Work"
	Lat         *float64           `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng         *float64           `bson:"lng,omitempty" json:"lng,omitempty"`
	FullAddress string             `bson:"fullAddress,omitempty" json:"fullAddress,omitempty"`
}

// PersonalInfo is the optional profile subdocument, created after OTP
// verification.
type PersonalInfo struct {
	FullName string `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Image    string `bson:"image,omitempty" json:"image,omitempty"`
}

// User is an end-user identified by mobile number.
//
// OTP codes are stored as a crypt.Hash digest, never in the clear; the
// expiry is checked server-side on verification and swept by the scheduler.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MobileNumber string             `bson:"mobileNumber" json:"mobileNumber"`
	OTPDigest    string             `bson:"otpDigest,omitempty" json:"-"`
	OTPExpiresAt *time.Time         `bson:"otpExpiresAt,omitempty" json:"-"`
	IsVerified   bool               `bson:"isVerified" json:"isVerified"`
	Location     *GeoPoint          `bson:"location,omitempty" json:"location,omitempty"`
	PersonalInfo *PersonalInfo      `bson:"personalInfo,omitempty" json:"personalInfo,omitempty"`
	Addresses    []Address          `bson:"addresses" json:"addresses"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
