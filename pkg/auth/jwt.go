package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/shashiranjanraj/shallerhub/config"
)

// Token lifetimes for the two-step OTP flow.
const (
	otpTokenTTL     = 15 * time.Minute
	sessionTokenTTL = time.Hour
)

// Claims holds the typed JWT payload.
//
// An OTP token carries only the mobile number; the session token issued
// after verification also carries the user id and role.
type Claims struct {
	MobileNumber string `json:"mobile_number,omitempty"`
	UserID       string `json:"user_id,omitempty"`
	Role         string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateOTPToken creates the short-lived token returned by send-otp.
// verify-otp must present it to prove both legs came from the same caller.
func GenerateOTPToken(mobileNumber string) (string, error) {
	claims := Claims{
		MobileNumber: mobileNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(otpTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// GenerateSessionToken creates the token handed out after OTP verification.
func GenerateSessionToken(userID, mobileNumber, role string) (string, error) {
	claims := Claims{
		MobileNumber: mobileNumber,
		UserID:       userID,
		Role:         role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateToken parses and validates a JWT string.
func ValidateToken(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
// Used for admin credentials; vendor logins still compare plaintext (legacy).
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
