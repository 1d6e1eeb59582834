package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/shallerhub/app/services"
	"github.com/shashiranjanraj/shallerhub/pkg/bind"
	"github.com/shashiranjanraj/shallerhub/pkg/response"
	"github.com/shashiranjanraj/shallerhub/pkg/scrub"
)

// VendorController handles vendor login and shaller shop management.
type VendorController struct {
	vendors *services.VendorService
}

func NewVendorController(vendors *services.VendorService) *VendorController {
	return &VendorController{vendors: vendors}
}

type vendorLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/vendor/login.
func (c *VendorController) Login(w http.ResponseWriter, r *http.Request) {
	var req vendorLoginRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	vendor, token, err := c.vendors.Login(r.Context(), scrub.Quotes(req.Email), req.Password)
	if err != nil {
		respondErr(w, err)
		return
	}

	response.Success(w, "Login successful", map[string]interface{}{
		"vendor": vendor,
		"token":  token,
	})
}

// Profile handles GET /api/vendor/profile.
func (c *VendorController) Profile(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := subjectID(w, r)
	if !ok {
		return
	}

	vendor, err := c.vendors.Profile(r.Context(), vendorID)
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Profile fetched", vendor)
}

// shopRequest mirrors what the mobile client actually sends: every field is
// a string, numbers included, often wrapped in stray quotes. scrub repairs
// them; coordinates degrade to (0,0) rather than failing the request.
type shopRequest struct {
	ShopName      string `json:"shopName" validate:"required"`
	Address       string `json:"address"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Rating        string `json:"rating"`
	Review        string `json:"review"`
	WorkingStatus string `json:"workingStatus"`
	Image         string `json:"image"`
	Coordinates   string `json:"coordinates"`
}

// CreateShop handles POST /api/vendor/shaller. One shop per vendor; a second
// create is rejected without touching the first.
func (c *VendorController) CreateShop(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := subjectID(w, r)
	if !ok {
		return
	}

	var req shopRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	// Required again after scrubbing: `"\"\""` passes the tag but is empty.
	shopName := scrub.Quotes(req.ShopName)
	if shopName == "" {
		response.ValidationError(w, map[string]string{"shopName": "shopName is required"})
		return
	}

	lng, lat := scrub.Coordinates(req.Coordinates)
	vendor, err := c.vendors.CreateShop(r.Context(), vendorID, services.ShopInput{
		ShopName:      shopName,
		Address:       scrub.Quotes(req.Address),
		Description:   scrub.Quotes(req.Description),
		Category:      scrub.Quotes(req.Category),
		Rating:        scrub.Float(req.Rating),
		Review:        scrub.Int(req.Review),
		WorkingStatus: scrub.Quotes(req.WorkingStatus),
		Image:         scrub.Quotes(req.Image),
		Longitude:     lng,
		Latitude:      lat,
	})
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Created(w, "Shaller created", vendor)
}

type shopUpdateRequest struct {
	ShopName      *string `json:"shopName"`
	Address       *string `json:"address"`
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	Rating        *string `json:"rating"`
	Review        *string `json:"review"`
	WorkingStatus *string `json:"workingStatus"`
	Image         *string `json:"image"`
	Coordinates   *string `json:"coordinates"`
}

// UpdateShop handles PUT /api/vendor/shaller. Only the fields present in the
// body are applied.
func (c *VendorController) UpdateShop(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := subjectID(w, r)
	if !ok {
		return
	}

	var req shopUpdateRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	upd := services.ShopUpdate{}
	if req.ShopName != nil {
		v := scrub.Quotes(*req.ShopName)
		upd.ShopName = &v
	}
	if req.Address != nil {
		v := scrub.Quotes(*req.Address)
		upd.Address = &v
	}
	if req.Description != nil {
		v := scrub.Quotes(*req.Description)
		upd.Description = &v
	}
	if req.Category != nil {
		v := scrub.Quotes(*req.Category)
		upd.Category = &v
	}
	if req.Rating != nil {
		v := scrub.Float(*req.Rating)
		upd.Rating = &v
	}
	if req.Review != nil {
		v := scrub.Int(*req.Review)
		upd.Review = &v
	}
	if req.WorkingStatus != nil {
		v := scrub.Quotes(*req.WorkingStatus)
		upd.WorkingStatus = &v
	}
	if req.Image != nil {
		v := scrub.Quotes(*req.Image)
		upd.Image = &v
	}
	if req.Coordinates != nil {
		lng, lat := scrub.Coordinates(*req.Coordinates)
		upd.Longitude = &lng
		upd.Latitude = &lat
	}

	vendor, err := c.vendors.UpdateShop(r.Context(), vendorID, upd)
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Shaller updated", vendor)
}

type workingStatusRequest struct {
	WorkingStatus string `json:"workingStatus" validate:"required"`
}

// SetWorkingStatus handles PUT /api/vendor/shaller/status.
func (c *VendorController) SetWorkingStatus(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := subjectID(w, r)
	if !ok {
		return
	}

	var req workingStatusRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	vendor, err := c.vendors.SetWorkingStatus(r.Context(), vendorID, scrub.Quotes(req.WorkingStatus))
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Working status updated", vendor)
}
