package services

import (
	"context"
	"fmt"
	"path"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/shallerhub/app/models"
	"github.com/shashiranjanraj/shallerhub/pkg/metrics"
)

// ImageUpload is an optional image attached to a catalog write.
type ImageUpload struct {
	Filename string
	Content  []byte
}

// CatalogService implements category, subcategory and item management.
type CatalogService struct {
	catalog CatalogStore
	images  ImageStore
}

func NewCatalogService(catalog CatalogStore, images ImageStore) *CatalogService {
	return &CatalogService{catalog: catalog, images: images}
}

// storeImage uploads the file under dir and returns its public URL. Any
// storage failure comes back wrapped in ErrUploadFailed.
func (s *CatalogService) storeImage(dir string, img *ImageUpload) (string, error) {
	if img == nil || len(img.Content) == 0 {
		return "", nil
	}

	name := primitive.NewObjectID().Hex() + path.Ext(img.Filename)
	key := path.Join(dir, name)
	if err := s.images.Put(key, img.Content); err != nil {
		metrics.Uploads.WithLabelValues("failed").Inc()
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	metrics.Uploads.WithLabelValues("success").Inc()
	return s.images.URL(key), nil
}

// ─── categories ──────────────────────────────────────────────────────────

// Categories returns the full catalog tree.
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.catalog.AllCategories(ctx)
}

// Category returns one category with its embedded subcategories.
func (s *CatalogService) Category(ctx context.Context, id string) (models.Category, error) {
	return s.catalog.FindCategory(ctx, id)
}

// CreateCategory adds a top-level category, uploading its image when given.
func (s *CatalogService) CreateCategory(ctx context.Context, title, content string, img *ImageUpload) (models.Category, error) {
	url, err := s.storeImage("categories", img)
	if err != nil {
		return models.Category{}, err
	}

	cat := models.Category{Title: title, Content: content, Image: url}
	if err := s.catalog.CreateCategory(ctx, &cat); err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// UpdateCategory edits title/content and optionally replaces the image.
func (s *CatalogService) UpdateCategory(ctx context.Context, id, title, content string, img *ImageUpload) (models.Category, error) {
	cat, err := s.catalog.FindCategory(ctx, id)
	if err != nil {
		return models.Category{}, err
	}

	if title != "" {
		cat.Title = title
	}
	if content != "" {
		cat.Content = content
	}
	if url, err := s.storeImage("categories", img); err != nil {
		return models.Category{}, err
	} else if url != "" {
		cat.Image = url
	}

	if err := s.catalog.UpdateCategory(ctx, &cat); err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// DeleteCategory removes a category. Items under its subcategories stay
// behind; there is no cascade.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.catalog.DeleteCategory(ctx, id)
}

// ─── subcategories ───────────────────────────────────────────────────────

// AddSubCategory embeds a new subcategory in the category.
func (s *CatalogService) AddSubCategory(ctx context.Context, categoryID, title string, img *ImageUpload) (models.Category, error) {
	cat, err := s.catalog.FindCategory(ctx, categoryID)
	if err != nil {
		return models.Category{}, err
	}

	url, err := s.storeImage("subcategories", img)
	if err != nil {
		return models.Category{}, err
	}

	cat.SubCategories = append(cat.SubCategories, models.SubCategory{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Image:     url,
		CreatedAt: time.Now(),
	})

	if err := s.catalog.UpdateCategory(ctx, &cat); err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// UpdateSubCategory edits an embedded subcategory, located through its
// parent category.
func (s *CatalogService) UpdateSubCategory(ctx context.Context, subCategoryID, title string, img *ImageUpload) (models.Category, error) {
	subOID, err := primitive.ObjectIDFromHex(subCategoryID)
	if err != nil {
		return models.Category{}, ErrNotFound
	}

	cat, err := s.catalog.FindCategoryBySubCategory(ctx, subOID)
	if err != nil {
		return models.Category{}, err
	}

	url, err := s.storeImage("subcategories", img)
	if err != nil {
		return models.Category{}, err
	}

	for i := range cat.SubCategories {
		if cat.SubCategories[i].ID != subOID {
			continue
		}
		if title != "" {
			cat.SubCategories[i].Title = title
		}
		if url != "" {
			cat.SubCategories[i].Image = url
		}
		break
	}

	if err := s.catalog.UpdateCategory(ctx, &cat); err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// DeleteSubCategory removes the embedded subcategory from its parent.
func (s *CatalogService) DeleteSubCategory(ctx context.Context, subCategoryID string) (models.Category, error) {
	subOID, err := primitive.ObjectIDFromHex(subCategoryID)
	if err != nil {
		return models.Category{}, ErrNotFound
	}

	cat, err := s.catalog.FindCategoryBySubCategory(ctx, subOID)
	if err != nil {
		return models.Category{}, err
	}

	kept := cat.SubCategories[:0:0]
	for _, sub := range cat.SubCategories {
		if sub.ID != subOID {
			kept = append(kept, sub)
		}
	}
	if kept == nil {
		kept = []models.SubCategory{}
	}
	cat.SubCategories = kept

	if err := s.catalog.UpdateCategory(ctx, &cat); err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// ─── items ───────────────────────────────────────────────────────────────

// Items lists every item under a subcategory.
func (s *CatalogService) Items(ctx context.Context, subCategoryID string) ([]models.Item, error) {
	subOID, err := primitive.ObjectIDFromHex(subCategoryID)
	if err != nil {
		return nil, ErrNotFound
	}

	items, err := s.catalog.ItemsBySubCategory(ctx, subOID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

// CreateItem adds an item to a subcategory. The subcategory must exist at
// create time; it is a soft reference afterwards.
func (s *CatalogService) CreateItem(ctx context.Context, subCategoryID, name, weight, cost string, img *ImageUpload) (models.Item, error) {
	subOID, err := primitive.ObjectIDFromHex(subCategoryID)
	if err != nil {
		return models.Item{}, ErrNotFound
	}
	if _, err := s.catalog.FindCategoryBySubCategory(ctx, subOID); err != nil {
		return models.Item{}, err
	}

	url, err := s.storeImage("items", img)
	if err != nil {
		return models.Item{}, err
	}

	item := models.Item{
		SubCategoryID: subOID,
		Name:          name,
		Weight:        weight,
		Cost:          cost,
		Image:         url,
	}
	if err := s.catalog.CreateItem(ctx, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// UpdateItem edits the non-empty fields of an item.
func (s *CatalogService) UpdateItem(ctx context.Context, id, name, weight, cost string, img *ImageUpload) (models.Item, error) {
	item, err := s.catalog.FindItem(ctx, id)
	if err != nil {
		return models.Item{}, err
	}

	if name != "" {
		item.Name = name
	}
	if weight != "" {
		item.Weight = weight
	}
	if cost != "" {
		item.Cost = cost
	}
	if url, err := s.storeImage("items", img); err != nil {
		return models.Item{}, err
	} else if url != "" {
		item.Image = url
	}

	if err := s.catalog.UpdateItem(ctx, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// DeleteItem removes an item.
func (s *CatalogService) DeleteItem(ctx context.Context, id string) error {
	return s.catalog.DeleteItem(ctx, id)
}
