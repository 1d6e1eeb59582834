package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/shallerhub/app/services"
	"github.com/shashiranjanraj/shallerhub/pkg/response"
	"github.com/shashiranjanraj/shallerhub/pkg/scrub"
)

// CatalogController handles the category → subcategory → item tree.
//
// Catalog writes come in as multipart forms because they can carry an image
// file, so these handlers read r.FormValue instead of binding JSON.
type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// ─── categories ──────────────────────────────────────────────────────────

// Categories handles GET /api/categories.
func (c *CatalogController) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := c.catalog.Categories(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Categories fetched", cats)
}

// Category handles GET /api/categories/{id}.
func (c *CatalogController) Category(w http.ResponseWriter, r *http.Request) {
	cat, err := c.catalog.Category(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Category fetched", cat)
}

// CreateCategory handles POST /api/categories.
func (c *CatalogController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	img, err := formImage(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	title := scrub.Quotes(r.FormValue("title"))
	if title == "" {
		response.ValidationError(w, map[string]string{"title": "title is required"})
		return
	}

	cat, err := c.catalog.CreateCategory(r.Context(), title, scrub.Quotes(r.FormValue("content")), img)
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Created(w, "Category created", cat)
}

// UpdateCategory handles PUT /api/categories/{id}.
func (c *CatalogController) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	img, err := formImage(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	cat, err := c.catalog.UpdateCategory(r.Context(), chi.URLParam(r, "id"),
		scrub.Quotes(r.FormValue("title")), scrub.Quotes(r.FormValue("content")), img)
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Category updated", cat)
}

// DeleteCategory handles DELETE /api/categories/{id}.
func (c *CatalogController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := c.catalog.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Category deleted", nil)
}

// ─── subcategories ───────────────────────────────────────────────────────

// AddSubCategory handles POST /api/categories/{id}/subcategories.
func (c *CatalogController) AddSubCategory(w http.ResponseWriter, r *http.Request) {
	img, err := formImage(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	title := scrub.Quotes(r.FormValue("title"))
	if title == "" {
		response.ValidationError(w, map[string]string{"title": "title is required"})
		return
	}

	cat, err := c.catalog.AddSubCategory(r.Context(), chi.URLParam(r, "id"), title, img)
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Created(w, "Subcategory created", cat)
}

// UpdateSubCategory handles PUT /api/subcategories/{id}.
func (c *CatalogController) UpdateSubCategory(w http.ResponseWriter, r *http.Request) {
	img, err := formImage(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	cat, err := c.catalog.UpdateSubCategory(r.Context(), chi.URLParam(r, "id"),
		scrub.Quotes(r.FormValue("title")), img)
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Subcategory updated", cat)
}

// DeleteSubCategory handles DELETE /api/subcategories/{id}.
func (c *CatalogController) DeleteSubCategory(w http.ResponseWriter, r *http.Request) {
	cat, err := c.catalog.DeleteSubCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Subcategory deleted", cat)
}

// ─── items ───────────────────────────────────────────────────────────────

// Items handles GET /api/subcategories/{id}/items.
func (c *CatalogController) Items(w http.ResponseWriter, r *http.Request) {
	items, err := c.catalog.Items(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Items fetched", items)
}

// CreateItem handles POST /api/subcategories/{id}/items.
func (c *CatalogController) CreateItem(w http.ResponseWriter, r *http.Request) {
	img, err := formImage(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	name := scrub.Quotes(r.FormValue("name"))
	if name == "" {
		response.ValidationError(w, map[string]string{"name": "name is required"})
		return
	}

	item, err := c.catalog.CreateItem(r.Context(), chi.URLParam(r, "id"),
		name, scrub.Quotes(r.FormValue("weight")), scrub.Quotes(r.FormValue("cost")), img)
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Created(w, "Item created", item)
}

// UpdateItem handles PUT /api/items/{id}.
func (c *CatalogController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	img, err := formImage(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	item, err := c.catalog.UpdateItem(r.Context(), chi.URLParam(r, "id"),
		scrub.Quotes(r.FormValue("name")), scrub.Quotes(r.FormValue("weight")),
		scrub.Quotes(r.FormValue("cost")), img)
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Item updated", item)
}

// DeleteItem handles DELETE /api/items/{id}.
func (c *CatalogController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := c.catalog.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Item deleted", nil)
}
