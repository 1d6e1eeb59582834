package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/shallerhub/app/models"
	"github.com/shashiranjanraj/shallerhub/app/services"
	"github.com/shashiranjanraj/shallerhub/pkg/bind"
	"github.com/shashiranjanraj/shallerhub/pkg/response"
	"github.com/shashiranjanraj/shallerhub/pkg/scrub"
)

// UserController handles OTP login, profile, live location and addresses.
type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

type sendOTPRequest struct {
	MobileNumber string `json:"mobileNumber" validate:"required,digits=10"`
}

// SendOTP handles POST /api/user/send-otp.
func (c *UserController) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.users.SendOTP(r.Context(), scrub.Quotes(req.MobileNumber))
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "OTP sent", map[string]string{"token": token})
}

type verifyOTPRequest struct {
	Token string `json:"token" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// VerifyOTP handles POST /api/user/verify-otp. The token is the one handed
// out by send-otp; the mobile number is read from its claims.
func (c *UserController) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.users.VerifyOTP(r.Context(),
		scrub.Quotes(req.Token), scrub.Quotes(req.OTP))
	if err != nil {
		respondErr(w, err)
		return
	}

	response.Success(w, "OTP verified", map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Profile handles GET /api/user/profile.
func (c *UserController) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectID(w, r)
	if !ok {
		return
	}

	user, err := c.users.Profile(r.Context(), userID)
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Profile fetched", user)
}

// Users handles GET /api/admin/users — the operator console listing.
func (c *UserController) Users(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.Users(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Users fetched", users)
}

// User handles GET /api/admin/users/{id}.
func (c *UserController) User(w http.ResponseWriter, r *http.Request) {
	user, err := c.users.Profile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "User fetched", user)
}

type personalInfoRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"nullable,email"`
	Image    string `json:"image"`
}

// UpdatePersonalInfo handles PUT /api/user/personal-info.
func (c *UserController) UpdatePersonalInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectID(w, r)
	if !ok {
		return
	}

	var req personalInfoRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.users.UpdatePersonalInfo(r.Context(), userID, models.PersonalInfo{
		FullName: scrub.Quotes(req.FullName),
		Email:    scrub.Quotes(req.Email),
		Image:    scrub.Quotes(req.Image),
	})
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Personal info updated", user)
}

type locationRequest struct {
	Coordinates string `json:"coordinates" validate:"required"`
}

// UpdateLocation handles PUT /api/user/location. Malformed coordinates
// degrade to (0,0) instead of rejecting the ping.
func (c *UserController) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectID(w, r)
	if !ok {
		return
	}

	var req locationRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	lng, lat := scrub.Coordinates(req.Coordinates)
	user, err := c.users.UpdateLocation(r.Context(), userID, lng, lat)
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Location updated", user)
}

// ─── addresses ───────────────────────────────────────────────────────────

type addressRequest struct {
	Street      string   `json:"street" validate:"required"`
	City        string   `json:"city" validate:"required"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	PostalCode  string   `json:"postalCode"`
	AddressType string   `json:"addressType"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	FullAddress string   `json:"fullAddress"`
}

func (req *addressRequest) toModel() models.Address {
	return models.Address{
		Street:      scrub.Quotes(req.Street),
		City:        scrub.Quotes(req.City),
		State:       scrub.Quotes(req.State),
		Country:     scrub.Quotes(req.Country),
		PostalCode:  scrub.Quotes(req.PostalCode),
		AddressType: scrub.Quotes(req.AddressType),
		Lat:         req.Lat,
		Lng:         req.Lng,
		FullAddress: scrub.Quotes(req.FullAddress),
	}
}

// Addresses handles GET /api/user/addresses.
func (c *UserController) Addresses(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectID(w, r)
	if !ok {
		return
	}

	addrs, err := c.users.Addresses(r.Context(), userID)
	if err != nil {
		respondErr(w, err)
		return
	}
	if addrs == nil {
		addrs = []models.Address{}
	}
	response.Success(w, "Addresses fetched", addrs)
}

// AddAddress handles POST /api/user/addresses.
func (c *UserController) AddAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectID(w, r)
	if !ok {
		return
	}

	var req addressRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.users.AddAddress(r.Context(), userID, req.toModel())
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Created(w, "Address added", user)
}

// UpdateAddress handles PUT /api/user/addresses/{id}.
func (c *UserController) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectID(w, r)
	if !ok {
		return
	}

	var req addressRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.users.UpdateAddress(r.Context(), userID, chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Address updated", user)
}

// DeleteAddress handles DELETE /api/user/addresses/{id}.
func (c *UserController) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectID(w, r)
	if !ok {
		return
	}

	user, err := c.users.DeleteAddress(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Address deleted", user)
}
