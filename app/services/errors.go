package services

import "errors"

// Sentinel errors forming the service-level failure taxonomy. Controllers
// map these onto HTTP statuses; everything else surfaces as a 500 with the
// upstream message passed through.
var (
	// ErrNotFound means a referenced id or unique key did not resolve.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a unique field already exists, or the vendor's shop
	// was already created.
	ErrConflict = errors.New("conflict")

	// ErrInvalidState means the entity exists but is not in a state that
	// permits the operation (e.g. reviewing a vendor with no shop).
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidCredentials covers every failed login uniformly so the
	// response never reveals which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUploadFailed means the image upload collaborator rejected the file.
	ErrUploadFailed = errors.New("image upload failed")

	// ErrOTPInvalid and ErrOTPExpired distinguish the two verify-otp
	// failure modes the clients show different copy for.
	ErrOTPInvalid = errors.New("invalid OTP")
	ErrOTPExpired = errors.New("OTP expired")

	// ErrNotVerified means the user has not completed OTP verification.
	ErrNotVerified = errors.New("user must verify OTP first")

	// ErrInvalidWorkingStatus rejects shop statuses outside {OPEN, CLOSED}.
	ErrInvalidWorkingStatus = errors.New("workingStatus must be OPEN or CLOSED")
)
