// Package services holds the application's business rules. Services accept
// narrow store interfaces so tests can substitute in-memory fakes; the
// concrete implementations live in app/repositories.
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/shallerhub/app/models"
)

// AdminStore is the persistence surface the admin flows need.
type AdminStore interface {
	FindByID(ctx context.Context, id string) (models.Admin, error)
	FindByEmail(ctx context.Context, email string) (models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	Update(ctx context.Context, admin *models.Admin) error
}

// VendorStore is the persistence surface the vendor and feed flows need.
type VendorStore interface {
	FindByID(ctx context.Context, id string) (models.Vendor, error)
	FindByEmail(ctx context.Context, email string) (models.Vendor, error)
	Create(ctx context.Context, vendor *models.Vendor) error
	Update(ctx context.Context, vendor *models.Vendor) error
	DeleteByID(ctx context.Context, id string) error
	All(ctx context.Context) ([]models.Vendor, error)
}

// UserStore is the persistence surface the user flows need.
type UserStore interface {
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByMobile(ctx context.Context, mobile string) (models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	All(ctx context.Context) ([]models.User, error)
	ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error)
}

// CatalogStore is the persistence surface the catalog flows need.
type CatalogStore interface {
	FindCategory(ctx context.Context, id string) (models.Category, error)
	AllCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, cat *models.Category) error
	UpdateCategory(ctx context.Context, cat *models.Category) error
	DeleteCategory(ctx context.Context, id string) error
	FindCategoryBySubCategory(ctx context.Context, subID primitive.ObjectID) (models.Category, error)

	FindItem(ctx context.Context, id string) (models.Item, error)
	ItemsBySubCategory(ctx context.Context, subID primitive.ObjectID) ([]models.Item, error)
	CreateItem(ctx context.Context, item *models.Item) error
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, id string) error
}

// ImageStore is the slice of pkg/storage.Disk the catalog and profile flows
// use for image uploads.
type ImageStore interface {
	Put(path string, content []byte) error
	URL(path string) string
}
