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

// AdminController handles operator login, vendor onboarding and shop reviews.
type AdminController struct {
	admins *services.AdminService
}

func NewAdminController(admins *services.AdminService) *AdminController {
	return &AdminController{admins: admins}
}

type adminLoginRequest struct {
	AdminName string `json:"adminName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// Login handles POST /api/admin/login.
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	admin, token, err := c.admins.Login(r.Context(),
		scrub.Quotes(req.AdminName), scrub.Quotes(req.Email), req.Password)
	if err != nil {
		respondErr(w, err)
		return
	}

	response.Success(w, "Login successful", map[string]interface{}{
		"admin": admin,
		"token": token,
	})
}

type createVendorRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" validate:"required,min=6"`
}

// CreateVendor handles POST /api/admin/vendors.
func (c *AdminController) CreateVendor(w http.ResponseWriter, r *http.Request) {
	adminID, ok := subjectID(w, r)
	if !ok {
		return
	}

	var req createVendorRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	vendor, err := c.admins.CreateVendor(r.Context(), adminID, services.VendorInput{
		Name:        scrub.Quotes(req.Name),
		Email:       scrub.Quotes(req.Email),
		PhoneNumber: scrub.Quotes(req.PhoneNumber),
		Password:    req.Password,
	})
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Created(w, "Vendor created", vendor)
}

// Vendors handles GET /api/admin/vendors.
func (c *AdminController) Vendors(w http.ResponseWriter, r *http.Request) {
	adminID, ok := subjectID(w, r)
	if !ok {
		return
	}

	records, err := c.admins.Vendors(r.Context(), adminID)
	if err != nil {
		respondErr(w, err)
		return
	}
	if records == nil {
		records = []models.VendorRecord{}
	}
	response.Success(w, "Vendors fetched", records)
}

// Vendor handles GET /api/admin/vendors/{id}. The response carries both the
// shop's own rating/review and any admin overlay side by side.
func (c *AdminController) Vendor(w http.ResponseWriter, r *http.Request) {
	adminID, ok := subjectID(w, r)
	if !ok {
		return
	}

	vendor, err := c.admins.Vendor(r.Context(), adminID, chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Vendor fetched", vendor)
}

// DeleteVendor handles DELETE /api/admin/vendors/{id}.
func (c *AdminController) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	adminID, ok := subjectID(w, r)
	if !ok {
		return
	}

	if err := c.admins.DeleteVendor(r.Context(), adminID, chi.URLParam(r, "id")); err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Vendor deleted", nil)
}

type reviewShopRequest struct {
	Review string `json:"review"`
	Rating string `json:"rating"`
}

// ReviewShop handles PUT /api/admin/vendors/{id}/review. The correction is
// layered beside the shop's own numbers, never over them.
func (c *AdminController) ReviewShop(w http.ResponseWriter, r *http.Request) {
	adminID, ok := subjectID(w, r)
	if !ok {
		return
	}

	var req reviewShopRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	vendor, err := c.admins.ReviewShop(r.Context(), adminID, chi.URLParam(r, "id"),
		scrub.Int(req.Review), scrub.Float(req.Rating))
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Shop review updated", vendor)
}
